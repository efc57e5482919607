package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleQuiz() *Quiz {
	return &Quiz{
		QuizTitle:       "Go Basics",
		QuizDescription: "Goroutines and channels",
		QuizTopicsList:  []string{" Go ", "Concurrency", "Go", ""},
		Questions: []Question{
			{
				QuestionText: "Which keyword starts a goroutine?",
				Choices: []Choice{
					{ChoiceIndex: 7, ChoiceText: "go"},
					{ChoiceText: "async", IsCorrectChoice: false},
					{ChoiceText: "spawn"},
					{ChoiceText: "thread"},
				},
			},
		},
	}
}

func TestQuizValidate(t *testing.T) {
	quiz := sampleQuiz()
	err := quiz.Validate()
	require.Error(t, err)
	assert.Equal(t, KindValidation, KindOf(err))
	assert.Contains(t, err.Error(), "question 0")

	quiz.Questions[0].Choices[0].IsCorrectChoice = true
	assert.NoError(t, quiz.Validate())

	// more than one correct choice is allowed
	quiz.Questions[0].Choices[2].IsCorrectChoice = true
	assert.NoError(t, quiz.Validate())

	quiz.Questions[0].DifficultyLevel = "Impossible"
	err = quiz.Validate()
	require.Error(t, err)
	assert.Equal(t, KindValidation, KindOf(err))
}

func TestQuizValidateChoiceCount(t *testing.T) {
	quiz := sampleQuiz()
	quiz.Questions[0].Choices[0].IsCorrectChoice = true
	quiz.Questions[0].Choices = quiz.Questions[0].Choices[:2]

	err := quiz.Validate()
	require.Error(t, err)
	assert.Equal(t, KindValidation, KindOf(err))
	assert.Contains(t, err.Error(), "at least 4 choices")

	err = ValidateQuestions([]Question{{QuestionText: "empty"}})
	require.Error(t, err)
	assert.Equal(t, KindValidation, KindOf(err))
}

func TestQuizValidateNoQuestions(t *testing.T) {
	assert.NoError(t, (&Quiz{QuizTitle: "empty"}).Validate())
}

func TestQuizNormalize(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	quiz := sampleQuiz()
	quiz.Normalize(now)

	assert.Equal(t, []string{"Go", "Concurrency"}, quiz.QuizTopicsList)

	q := quiz.Questions[0]
	assert.Equal(t, DifficultyMedium, q.DifficultyLevel)
	assert.Equal(t, now, q.CreatedAt)
	assert.Equal(t, now, q.UpdatedAt)
	assert.NotNil(t, q.QuestionTopicsList)
	for i, c := range q.Choices {
		assert.Equal(t, i, c.ChoiceIndex)
		assert.NotNil(t, c.Responses)
	}

	empty := &Quiz{}
	empty.Normalize(now)
	assert.NotNil(t, empty.Questions)
	assert.NotNil(t, empty.QuizTopicsList)
}

func TestQuestionCorrectChoiceIndex(t *testing.T) {
	q := Question{Choices: []Choice{{}, {IsCorrectChoice: true}, {IsCorrectChoice: true}}}
	assert.True(t, q.CorrectChoiceIndex().Is(1))

	assert.False(t, (&Question{}).CorrectChoiceIndex().Valid())
}

func TestCloneQuestionsIsIndependent(t *testing.T) {
	quiz := sampleQuiz()
	quiz.Normalize(time.Now())
	quiz.Questions[0].Choices[0].Responses = append(quiz.Questions[0].Choices[0].Responses, Response{Responder: Responder{UserName: "bob"}})

	snapshot := CloneQuestions(quiz.Questions)
	require.Len(t, snapshot, 1)
	assert.Empty(t, snapshot[0].Choices[0].Responses)

	snapshot[0].QuestionText = "changed"
	snapshot[0].Choices[1].ChoiceText = "changed"
	snapshot[0].QuestionTopicsList = append(snapshot[0].QuestionTopicsList, "x")

	assert.Equal(t, "Which keyword starts a goroutine?", quiz.Questions[0].QuestionText)
	assert.Equal(t, "async", quiz.Questions[0].Choices[1].ChoiceText)
	assert.Empty(t, quiz.Questions[0].QuestionTopicsList)
	assert.Len(t, quiz.Questions[0].Choices[0].Responses, 1)

	assert.Nil(t, CloneQuestions(nil))
}

func TestQuizClone(t *testing.T) {
	quiz := sampleQuiz()
	quiz.Normalize(time.Now())
	quiz.Questions[0].Choices[0].Responses = []Response{{Responder: Responder{UserName: "amy"}}}

	c := quiz.Clone()
	require.Len(t, c.Questions[0].Choices[0].Responses, 1)

	c.QuizTopicsList[0] = "Rust"
	c.Questions[0].Choices[0].Responses[0].UserName = "eve"
	assert.Equal(t, "Go", quiz.QuizTopicsList[0])
	assert.Equal(t, "amy", quiz.Questions[0].Choices[0].Responses[0].UserName)
}

func TestQuizMatchesTerm(t *testing.T) {
	quiz := sampleQuiz()
	assert.True(t, quiz.MatchesTerm("basics"))
	assert.True(t, quiz.MatchesTerm("channels"))
	assert.True(t, quiz.MatchesTerm("concurrency"))
	assert.False(t, quiz.MatchesTerm("python"))
}

func TestQuizPatchApply(t *testing.T) {
	quiz := sampleQuiz()
	title := "Advanced Go"
	ready := true
	patch := QuizPatch{QuizTitle: &title, ReadyForLive: &ready}
	patch.Apply(quiz)

	assert.Equal(t, "Advanced Go", quiz.QuizTitle)
	assert.True(t, quiz.ReadyForLive)
	assert.Equal(t, "Goroutines and channels", quiz.QuizDescription)
}
