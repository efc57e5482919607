package service_test

import (
	"context"
	"testing"
	"time"

	"quizgame/internal/model"
	"quizgame/internal/repository/memory"
	"quizgame/internal/service"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeClock is a settable time source shared by the services under test
type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 3, 1, 18, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

type fixture struct {
	quizRepo  *memory.QuizRepo
	gameRepo  *memory.GameRepo
	clock     *fakeClock
	quizzes   *service.QuizService
	games     *service.GameService
	responses *service.ResponseService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		quizRepo: memory.NewQuizRepo(),
		gameRepo: memory.NewGameRepo(),
		clock:    newFakeClock(),
	}
	logger := zap.NewNop()
	f.quizzes = service.NewQuizService(f.quizRepo, nil, logger)
	f.games = service.NewGameService(f.gameRepo, f.quizRepo, logger)
	f.responses = service.NewResponseService(f.gameRepo, logger)
	f.quizzes.SetClock(f.clock.Now)
	f.games.SetClock(f.clock.Now)
	f.responses.SetClock(f.clock.Now)
	return f
}

// fourChoiceQuiz has one question whose third choice is correct
func fourChoiceQuiz() *model.Quiz {
	return &model.Quiz{
		QuizTitle:       "Capitals",
		QuizDescription: "European capitals",
		QuizTopicsList:  []string{"Geography"},
		ReadyForLive:    true,
		Questions: []model.Question{
			{
				QuestionText: "Capital of Portugal?",
				Choices: []model.Choice{
					{ChoiceText: "Porto"},
					{ChoiceText: "Madrid"},
					{ChoiceText: "Lisbon", IsCorrectChoice: true},
					{ChoiceText: "Faro"},
				},
			},
		},
	}
}

func twoQuestionQuiz() *model.Quiz {
	quiz := fourChoiceQuiz()
	quiz.Questions = append(quiz.Questions, model.Question{
		QuestionText: "Capital of Norway?",
		Choices: []model.Choice{
			{ChoiceText: "Oslo", IsCorrectChoice: true},
			{ChoiceText: "Bergen"},
			{ChoiceText: "Trondheim"},
			{ChoiceText: "Stavanger"},
		},
	})
	return quiz
}

// choices builds a choice list with the correct index flagged
func choices(correct int, texts ...string) []model.Choice {
	out := make([]model.Choice, len(texts))
	for i, text := range texts {
		out[i] = model.Choice{ChoiceText: text, IsCorrectChoice: i == correct}
	}
	return out
}

func (f *fixture) createQuiz(t *testing.T, quiz *model.Quiz) *model.Quiz {
	t.Helper()
	created, err := f.quizzes.Create(context.Background(), quiz)
	require.NoError(t, err)
	return created
}

func (f *fixture) createGame(t *testing.T, quiz *model.Quiz) *model.QuizGame {
	t.Helper()
	game, err := f.games.CreateGame(context.Background(), service.CreateGameInput{QuizID: f.createQuiz(t, quiz).ID})
	require.NoError(t, err)
	return game
}

func (f *fixture) openQuestion(t *testing.T, gameID string, q int) {
	t.Helper()
	ctx := context.Background()
	_, err := f.games.StartGame(ctx, gameID)
	require.NoError(t, err)
	_, err = f.games.StartQuestion(ctx, gameID, q)
	require.NoError(t, err)
}

func requireKind(t *testing.T, err error, kind model.ErrorKind) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, kind, model.KindOf(err), "unexpected error: %v", err)
}
