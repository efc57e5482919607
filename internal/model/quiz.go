package model

import (
	"fmt"
	"strings"
	"time"
)

// Difficulty is the difficulty level of a question
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Valid reports whether d is one of the known levels
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Quiz is an authored, reusable set of questions
type Quiz struct {
	ID               string     `json:"id" bson:"_id,omitempty"`
	QuizTitle        string     `json:"quizTitle" bson:"quizTitle"`
	QuizDescription  string     `json:"quizDescription" bson:"quizDescription"`
	QuizTopicsList   []string   `json:"quizTopicsList" bson:"quizTopicsList"`
	QuizLanguage     string     `json:"quizLanguage" bson:"quizLanguage"`
	TemplateCategory string     `json:"templateCategory" bson:"templateCategory"`
	YoutubeChannel   string     `json:"youtubeChannel" bson:"youtubeChannel"` // source channel label
	Questions        []Question `json:"questions" bson:"questions"`
	ReadyForLive     bool       `json:"readyForLive" bson:"readyForLive"`
	CreatedAt        time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt" bson:"updatedAt"`
	CreatedBy        string     `json:"createdBy" bson:"createdBy"`
	UpdatedBy        string     `json:"updatedBy" bson:"updatedBy"`
}

// Question is a single multiple-choice question
type Question struct {
	QuestionText       string     `json:"questionText" bson:"questionText"`
	QuestionImageURL   string     `json:"questionImageUrl,omitempty" bson:"questionImageUrl,omitempty"`
	QuestionTopicsList []string   `json:"questionTopicsList" bson:"questionTopicsList"`
	Choices            []Choice   `json:"choices" bson:"choices"`
	AnswerExplanation  string     `json:"answerExplanation" bson:"answerExplanation"`
	TemplateCategory   string     `json:"templateCategory" bson:"templateCategory"`
	DifficultyLevel    Difficulty `json:"difficultyLevel" bson:"difficultyLevel"`
	QuestionLanguage   string     `json:"questionLanguage" bson:"questionLanguage"`
	ValidatedManually  bool       `json:"validatedManually" bson:"validatedManually"`
	CreatedAt          time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt" bson:"updatedAt"`
	CreatedBy          string     `json:"createdBy" bson:"createdBy"`
	UpdatedBy          string     `json:"updatedBy" bson:"updatedBy"`
}

// Choice is one answer option of a question. Index is its position in
// the question and is what responses are recorded against.
type Choice struct {
	ChoiceIndex     int        `json:"choiceIndex" bson:"choiceIndex"`
	ChoiceText      string     `json:"choiceText" bson:"choiceText"`
	ChoiceImageURL  string     `json:"choiceImageUrl,omitempty" bson:"choiceImageUrl,omitempty"`
	IsCorrectChoice bool       `json:"isCorrectChoice" bson:"isCorrectChoice"`
	Responses       []Response `json:"responses" bson:"responses"`
}

// CorrectChoiceIndex returns the first choice flagged correct
func (q *Question) CorrectChoiceIndex() OptionalIndex {
	for i, c := range q.Choices {
		if c.IsCorrectChoice {
			return SomeIndex(i)
		}
	}
	return NoIndex()
}

// MinChoices is the fewest choices a stored question may carry
const MinChoices = 4

// Validate checks the invariants every persisted quiz must hold.
// Multiple correct choices are accepted, zero is not.
func (q *Quiz) Validate() error {
	return ValidateQuestions(q.Questions)
}

// ValidateQuestions checks a question list the way Validate does
func ValidateQuestions(questions []Question) error {
	for i := range questions {
		question := &questions[i]
		if len(question.Choices) < MinChoices {
			return Validation(fmt.Sprintf("question %d must have at least %d choices", i, MinChoices))
		}
		if !question.CorrectChoiceIndex().Valid() {
			return Validation(fmt.Sprintf("question %d must have at least one correct choice", i))
		}
		if question.DifficultyLevel != "" && !question.DifficultyLevel.Valid() {
			return Validation(fmt.Sprintf("question %d has unknown difficulty level %q", i, question.DifficultyLevel))
		}
	}
	return nil
}

// Normalize fills defaults and rewrites derived fields before a write
func (q *Quiz) Normalize(now time.Time) {
	q.QuizTopicsList = NormalizeTopics(q.QuizTopicsList)
	if q.QuizTopicsList == nil {
		q.QuizTopicsList = []string{}
	}
	q.Questions = NormalizeQuestions(q.Questions, now)
}

// NormalizeQuestions fills question defaults and rewrites choice indices
// to their positions
func NormalizeQuestions(questions []Question, now time.Time) []Question {
	if questions == nil {
		return []Question{}
	}
	for i := range questions {
		question := &questions[i]
		question.QuestionTopicsList = NormalizeTopics(question.QuestionTopicsList)
		if question.QuestionTopicsList == nil {
			question.QuestionTopicsList = []string{}
		}
		if question.DifficultyLevel == "" {
			question.DifficultyLevel = DifficultyMedium
		}
		if question.CreatedAt.IsZero() {
			question.CreatedAt = now
		}
		if question.UpdatedAt.IsZero() {
			question.UpdatedAt = now
		}
		if question.Choices == nil {
			question.Choices = []Choice{}
		}
		for j := range question.Choices {
			question.Choices[j].ChoiceIndex = j
			if question.Choices[j].Responses == nil {
				question.Choices[j].Responses = []Response{}
			}
		}
	}
	return questions
}

// NormalizeTopics trims topics and drops blanks and repeats, keeping the
// order of first occurrence
func NormalizeTopics(topics []string) []string {
	if len(topics) == 0 {
		return topics
	}
	seen := make(map[string]struct{}, len(topics))
	out := make([]string, 0, len(topics))
	for _, t := range topics {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// MatchesTerm reports whether the lower-cased term is a substring of the
// title, description or any topic
func (q *Quiz) MatchesTerm(term string) bool {
	if strings.Contains(strings.ToLower(q.QuizTitle), term) ||
		strings.Contains(strings.ToLower(q.QuizDescription), term) {
		return true
	}
	for _, t := range q.QuizTopicsList {
		if strings.Contains(strings.ToLower(t), term) {
			return true
		}
	}
	return false
}

// CloneQuestions deep-copies questions so the copy shares no slices with
// the source. Recorded responses are not carried over.
func CloneQuestions(src []Question) []Question {
	return copyQuestions(src, false)
}

func copyQuestions(src []Question, keepResponses bool) []Question {
	if src == nil {
		return nil
	}
	out := make([]Question, len(src))
	for i, q := range src {
		if q.QuestionTopicsList != nil {
			q.QuestionTopicsList = append([]string{}, q.QuestionTopicsList...)
		}
		if q.Choices != nil {
			choices := make([]Choice, len(q.Choices))
			for j, c := range q.Choices {
				if keepResponses && c.Responses != nil {
					c.Responses = append([]Response{}, c.Responses...)
				} else {
					c.Responses = []Response{}
				}
				choices[j] = c
			}
			q.Choices = choices
		}
		out[i] = q
	}
	return out
}

// Clone returns a deep copy of the quiz
func (q *Quiz) Clone() *Quiz {
	c := *q
	if q.QuizTopicsList != nil {
		c.QuizTopicsList = append([]string{}, q.QuizTopicsList...)
	}
	c.Questions = copyQuestions(q.Questions, true)
	return &c
}
