package model

import (
	"strings"
	"time"
)

// GameStatus is the lifecycle state derived from a game's runtime fields
type GameStatus string

const (
	GameScheduled      GameStatus = "scheduled"
	GameOpen           GameStatus = "open"
	GameQuestionOpen   GameStatus = "question_open"
	GameQuestionClosed GameStatus = "question_closed"
	GameEnded          GameStatus = "ended"
)

// GameState holds the runtime fields of a quiz game. Lifecycle
// transitions persist only these fields.
type GameState struct {
	GameStartedAt       *time.Time    `json:"gameStartedAt,omitempty" bson:"gameStartedAt"`
	GameEndedAt         *time.Time    `json:"gameEndedAt,omitempty" bson:"gameEndedAt"`
	ActiveQuestionIndex OptionalIndex `json:"activeQuestionIndex" bson:"activeQuestionIndex" swaggertype:"integer"`
	QuestionStartedAt   *time.Time    `json:"questionStartedAt,omitempty" bson:"questionStartedAt"`
	IsQuestionOpen      bool          `json:"isQuestionOpen" bson:"isQuestionOpen"`
	CorrectChoiceIndex  OptionalIndex `json:"correctChoiceIndex" bson:"correctChoiceIndex" swaggertype:"integer"`
	IsGameOpen          bool          `json:"isGameOpen" bson:"isGameOpen"`
}

// QuizGame is a scheduled live session built from a quiz. Questions is a
// snapshot taken at creation and is never linked back to the quiz.
type QuizGame struct {
	ID                 string     `json:"id" bson:"_id,omitempty"`
	GameTitle          string     `json:"gameTitle" bson:"gameTitle"`
	GameScheduledStart *time.Time `json:"gameScheduledStart,omitempty" bson:"gameScheduledStart"`
	GameScheduledEnd   *time.Time `json:"gameScheduledEnd,omitempty" bson:"gameScheduledEnd"`
	GameState          `bson:",inline"`
	QuizID             string     `json:"quizId" bson:"quizId"`
	Questions          []Question `json:"questions" bson:"questions"`
	IntroImage         string     `json:"introImage" bson:"introImage"`
	CreatedAt          time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt" bson:"updatedAt"`
}

// Status derives the lifecycle state
func (g *QuizGame) Status() GameStatus {
	switch {
	case g.GameEndedAt != nil && !g.IsGameOpen:
		return GameEnded
	case !g.IsGameOpen:
		return GameScheduled
	case g.IsQuestionOpen:
		return GameQuestionOpen
	case g.ActiveQuestionIndex.Valid():
		return GameQuestionClosed
	default:
		return GameOpen
	}
}

// HasQuestion reports whether i indexes the snapshot
func (g *QuizGame) HasQuestion(i int) bool {
	return i >= 0 && i < len(g.Questions)
}

// HasChoice reports whether c indexes a choice of question q
func (g *QuizGame) HasChoice(q, c int) bool {
	return g.HasQuestion(q) && c >= 0 && c < len(g.Questions[q].Choices)
}

// MatchesTitle reports whether the lower-cased term is part of the title
func (g *QuizGame) MatchesTitle(term string) bool {
	return strings.Contains(strings.ToLower(g.GameTitle), term)
}

// NewGameState is the state of a freshly created game
func NewGameState() GameState {
	return GameState{
		ActiveQuestionIndex: NoIndex(),
		CorrectChoiceIndex:  NoIndex(),
	}
}

// QuizGameView is a game with its source quiz resolved. Quiz is nil when
// the quiz was deleted after the game was created.
type QuizGameView struct {
	*QuizGame
	Quiz *Quiz `json:"quiz"`
}

// Normalize fills snapshot defaults before a write
func (g *QuizGame) Normalize(now time.Time) {
	g.Questions = NormalizeQuestions(g.Questions, now)
}

// Clone returns a deep copy of the game including recorded responses
func (g *QuizGame) Clone() *QuizGame {
	c := *g
	c.Questions = copyQuestions(g.Questions, true)
	return &c
}
