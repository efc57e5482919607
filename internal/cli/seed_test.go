package cli

import (
	"context"
	"testing"

	"quizgame/internal/app"
	"quizgame/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSampleQuizzesAreValid(t *testing.T) {
	for _, quiz := range sampleQuizzes() {
		assert.NoError(t, quiz.Validate(), quiz.QuizTitle)
	}
}

func TestSeedQuizzes(t *testing.T) {
	ctx := context.Background()
	cfg, err := config.Load("")
	require.NoError(t, err)

	a, err := app.New(ctx, cfg, app.StoreMemory, zap.NewNop())
	require.NoError(t, err)
	defer a.Close(ctx)

	require.NoError(t, seedQuizzes(ctx, a, zap.NewNop()))

	all, err := a.QuizService.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, len(sampleQuizzes()))

	found, err := a.QuizService.Search(ctx, "python")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Data Science Essentials", found[0].QuizTitle)
}

func TestRootCommandWiring(t *testing.T) {
	cmd := newRootCmd()
	names := []string{}
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"serve", "seed"}, names)
	assert.NotNil(t, cmd.PersistentFlags().Lookup("store"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("config"))
}
