package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"quizgame/internal/cache"
	"quizgame/internal/model"
	"quizgame/internal/repository/memory"
	"quizgame/internal/service"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCreateQuiz(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	quiz, err := f.quizzes.Create(ctx, fourChoiceQuiz())
	require.NoError(t, err)
	assert.NotEmpty(t, quiz.ID)
	assert.Equal(t, f.clock.Now(), quiz.CreatedAt)
	assert.Equal(t, f.clock.Now(), quiz.UpdatedAt)
	assert.Equal(t, model.DifficultyMedium, quiz.Questions[0].DifficultyLevel)

	got, err := f.quizzes.GetByID(ctx, quiz.ID)
	require.NoError(t, err)
	assert.Equal(t, "Capitals", got.QuizTitle)
}

func TestCreateQuizWithoutCorrectChoice(t *testing.T) {
	f := newFixture(t)
	quiz := fourChoiceQuiz()
	quiz.Questions[0].Choices[2].IsCorrectChoice = false

	_, err := f.quizzes.Create(context.Background(), quiz)
	requireKind(t, err, model.KindValidation)

	all, err := f.quizzes.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestCreateQuizTooFewChoices(t *testing.T) {
	f := newFixture(t)
	quiz := fourChoiceQuiz()
	quiz.Questions[0].Choices = choices(0, "Lisbon", "Porto")

	_, err := f.quizzes.Create(context.Background(), quiz)
	requireKind(t, err, model.KindValidation)

	all, err := f.quizzes.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestUpdateQuiz(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	quiz := f.createQuiz(t, fourChoiceQuiz())
	createdAt := quiz.CreatedAt

	f.clock.Advance(time.Hour)
	replacement := fourChoiceQuiz()
	replacement.QuizTitle = "Capitals II"
	updated, err := f.quizzes.Update(ctx, quiz.ID, replacement)
	require.NoError(t, err)
	assert.Equal(t, "Capitals II", updated.QuizTitle)
	assert.Equal(t, createdAt, updated.CreatedAt)
	assert.Equal(t, f.clock.Now(), updated.UpdatedAt)

	broken := fourChoiceQuiz()
	broken.Questions[0].Choices[2].IsCorrectChoice = false
	_, err = f.quizzes.Update(ctx, quiz.ID, broken)
	requireKind(t, err, model.KindValidation)

	_, err = f.quizzes.Update(ctx, "65f0c0ffee0000000000abcd", fourChoiceQuiz())
	requireKind(t, err, model.KindNotFound)
}

func TestPatchQuiz(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	quiz := f.createQuiz(t, fourChoiceQuiz())

	desc := "Capitals of Europe"
	patched, err := f.quizzes.Patch(ctx, quiz.ID, &model.QuizPatch{QuizDescription: &desc})
	require.NoError(t, err)
	assert.Equal(t, "Capitals of Europe", patched.QuizDescription)
	assert.Equal(t, "Capitals", patched.QuizTitle)
	assert.Len(t, patched.Questions, 1)
}

func TestDeleteQuiz(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	quiz := f.createQuiz(t, fourChoiceQuiz())

	require.NoError(t, f.quizzes.Delete(ctx, quiz.ID))
	requireKind(t, f.quizzes.Delete(ctx, quiz.ID), model.KindNotFound)

	_, err := f.quizzes.GetByID(ctx, quiz.ID)
	requireKind(t, err, model.KindNotFound)
}

func TestSearchQuizzes(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.createQuiz(t, fourChoiceQuiz())

	other := fourChoiceQuiz()
	other.QuizTitle = "Rivers"
	other.QuizDescription = "Long rivers"
	other.QuizTopicsList = []string{"Hydrology"}
	f.createQuiz(t, other)

	tests := []struct {
		term string
		want []string
	}{
		{"CAPITALS", []string{"Capitals"}},
		{"long", []string{"Rivers"}},
		{"hydro", []string{"Rivers"}},
		{"  ", []string{"Capitals", "Rivers"}},
		{"a.b", nil},
		{"volcano", nil},
	}
	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			found, err := f.quizzes.Search(ctx, tt.term)
			require.NoError(t, err)
			var titles []string
			for _, q := range found {
				titles = append(titles, q.QuizTitle)
			}
			assert.ElementsMatch(t, tt.want, titles)
		})
	}
}

func TestSearchQuizzesCached(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	ctx := context.Background()
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	quizzes := service.NewQuizService(memory.NewQuizRepo(), cache.NewSearchCache(client, time.Minute), zap.NewNop())

	_, err = quizzes.Create(ctx, fourChoiceQuiz())
	require.NoError(t, err)

	found, err := quizzes.Search(ctx, "capitals")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.True(t, mr.Exists("quiz:search:1:capitals"))

	// a write bumps the generation so the next search sees it
	second := fourChoiceQuiz()
	second.QuizTitle = "More Capitals"
	_, err = quizzes.Create(ctx, second)
	require.NoError(t, err)

	found, err = quizzes.Search(ctx, "capitals")
	require.NoError(t, err)
	assert.Len(t, found, 2)
	assert.True(t, mr.Exists("quiz:search:2:capitals"))
}

func TestSearchQuizzesCacheDown(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	ctx := context.Background()
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	quizzes := service.NewQuizService(memory.NewQuizRepo(), cache.NewSearchCache(client, time.Minute), zap.NewNop())
	mr.Close()

	_, err = quizzes.Create(ctx, fourChoiceQuiz())
	require.NoError(t, err)

	found, err := quizzes.Search(ctx, "capitals")
	require.NoError(t, err)
	assert.Len(t, found, 1)
}

// slowQuizRepo holds its first search until released
type slowQuizRepo struct {
	*memory.QuizRepo
	once    sync.Once
	entered chan struct{}
	release chan struct{}
	ctxErr  error
}

func newSlowQuizRepo() *slowQuizRepo {
	return &slowQuizRepo{
		QuizRepo: memory.NewQuizRepo(),
		entered:  make(chan struct{}),
		release:  make(chan struct{}),
	}
}

func (r *slowQuizRepo) Search(ctx context.Context, term string) ([]*model.Quiz, error) {
	first := false
	r.once.Do(func() { first = true })
	if first {
		close(r.entered)
		<-r.release
		r.ctxErr = ctx.Err()
	}
	return r.QuizRepo.Search(ctx, term)
}

func TestSearchAfterWriteSkipsOlderFlight(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	ctx := context.Background()
	repo := newSlowQuizRepo()
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	quizzes := service.NewQuizService(repo, cache.NewSearchCache(client, time.Minute), zap.NewNop())

	_, err = quizzes.Create(ctx, fourChoiceQuiz())
	require.NoError(t, err)

	older := make(chan []*model.Quiz, 1)
	go func() {
		found, _ := quizzes.Search(ctx, "capitals")
		older <- found
	}()
	<-repo.entered

	second := fourChoiceQuiz()
	second.QuizTitle = "More Capitals"
	_, err = quizzes.Create(ctx, second)
	require.NoError(t, err)

	found, err := quizzes.Search(ctx, "capitals")
	require.NoError(t, err)
	assert.Len(t, found, 2)

	close(repo.release)
	assert.Len(t, <-older, 1)
}

func TestSearchFlightOutlivesCancelledCaller(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	repo := newSlowQuizRepo()
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	quizzes := service.NewQuizService(repo, cache.NewSearchCache(client, time.Minute), zap.NewNop())

	_, err = quizzes.Create(context.Background(), fourChoiceQuiz())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := quizzes.Search(ctx, "capitals")
		done <- err
	}()
	<-repo.entered
	cancel()
	close(repo.release)

	require.NoError(t, <-done)
	assert.NoError(t, repo.ctxErr)
	assert.True(t, mr.Exists("quiz:search:1:capitals"))
}
