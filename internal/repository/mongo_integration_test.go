package repository_test

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"quizgame/internal/model"
	"quizgame/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func TestMongoRepositories(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping Mongo integration test in short mode")
	}
	ctx := context.Background()
	requireDocker(t)

	uri, cleanup := startMongo(t, ctx)
	defer cleanup()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	require.NoError(t, err)
	defer client.Disconnect(ctx)

	db := client.Database("quiz-app-test")
	quizzes := repository.NewQuizRepo(db)
	games := repository.NewGameRepo(db)

	t.Run("QuizCRUD", func(t *testing.T) { testQuizCRUD(t, ctx, quizzes) })
	t.Run("GameState", func(t *testing.T) { testGameState(t, ctx, db, quizzes, games) })
	t.Run("ConcurrentResponses", func(t *testing.T) { testConcurrentResponses(t, ctx, games) })
}

func testQuizCRUD(t *testing.T, ctx context.Context, repo repository.QuizRepo) {
	quiz := liveQuiz("Capitals", time.Now().UTC())
	id, err := repo.Create(ctx, quiz)
	require.NoError(t, err)
	assert.Len(t, id, 24)

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "Capitals", got.QuizTitle)
	assert.True(t, got.Questions[0].Choices[2].IsCorrectChoice)

	missing, err := repo.GetByID(ctx, "not-hex")
	require.NoError(t, err)
	assert.Nil(t, missing)

	found, err := repo.Search(ctx, "CAPIT")
	require.NoError(t, err)
	assert.Len(t, found, 1)
	found, err = repo.Search(ctx, "geo")
	require.NoError(t, err)
	assert.Len(t, found, 1)
	found, err = repo.Search(ctx, "c.pitals")
	require.NoError(t, err)
	assert.Empty(t, found)

	got.QuizTitle = "Capitals II"
	require.NoError(t, repo.Update(ctx, got))
	got, err = repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Capitals II", got.QuizTitle)

	require.NoError(t, repo.Delete(ctx, id))
	assert.ErrorIs(t, repo.Delete(ctx, id), model.ErrNotFound)
	assert.ErrorIs(t, repo.Update(ctx, got), model.ErrNotFound)
}

func testGameState(t *testing.T, ctx context.Context, db *mongo.Database, quizzes repository.QuizRepo, games repository.GameRepo) {
	now := time.Now().UTC().Truncate(time.Millisecond)
	quiz := liveQuiz("Rivers", now)
	_, err := quizzes.Create(ctx, quiz)
	require.NoError(t, err)

	game := &model.QuizGame{
		GameTitle: "Rivers Live",
		GameState: model.NewGameState(),
		QuizID:    quiz.ID,
		Questions: model.CloneQuestions(quiz.Questions),
		CreatedAt: now,
		UpdatedAt: now,
	}
	id, err := games.Create(ctx, game)
	require.NoError(t, err)

	// absent indices are stored as -1
	var raw bson.M
	oid := mustOID(t, id)
	require.NoError(t, db.Collection("quizgames").FindOne(ctx, bson.M{"_id": oid}).Decode(&raw))
	assert.Equal(t, int32(-1), raw["activeQuestionIndex"])
	assert.Equal(t, int32(-1), raw["correctChoiceIndex"])

	_, err = games.AppendResponse(ctx, id, 0, 2, model.Response{Responder: model.Responder{UserName: "early"}})
	assert.ErrorIs(t, err, model.ErrQuestionClosed)

	state := game.GameState
	state.IsGameOpen = true
	state.GameStartedAt = &now
	state.ActiveQuestionIndex = model.SomeIndex(0)
	state.QuestionStartedAt = &now
	state.IsQuestionOpen = true
	state.CorrectChoiceIndex = model.SomeIndex(2)
	updated, err := games.SetState(ctx, id, state)
	require.NoError(t, err)
	assert.True(t, updated.ActiveQuestionIndex.Is(0))
	assert.True(t, updated.CorrectChoiceIndex.Is(2))
	assert.Equal(t, "Rivers Live", updated.GameTitle)

	updated, err = games.AppendResponse(ctx, id, 0, 2, model.Response{Responder: model.Responder{UserName: "alice"}, ResponseTime: "1500"})
	require.NoError(t, err)
	require.Len(t, updated.Questions[0].Choices[2].Responses, 1)
	assert.Equal(t, "alice", updated.Questions[0].Choices[2].Responses[0].UserName)

	// a whole-document update keeps the responses it was loaded with
	loaded, err := games.GetByID(ctx, id)
	require.NoError(t, err)
	loaded.GameTitle = "Renamed"
	require.NoError(t, games.Update(ctx, loaded))

	state.IsQuestionOpen = false
	_, err = games.SetState(ctx, id, state)
	require.NoError(t, err)
	_, err = games.AppendResponse(ctx, id, 0, 2, model.Response{Responder: model.Responder{UserName: "late"}})
	assert.ErrorIs(t, err, model.ErrQuestionClosed)

	_, err = games.AppendResponse(ctx, "65f0c0ffee0000000000abcd", 0, 2, model.Response{})
	assert.ErrorIs(t, err, model.ErrNotFound)
	_, err = games.SetState(ctx, "65f0c0ffee0000000000abcd", state)
	assert.ErrorIs(t, err, model.ErrNotFound)

	ended := state
	ended.GameEndedAt = &now
	ended.IsGameOpen = false
	_, err = games.SetState(ctx, id, ended)
	require.NoError(t, err)
	_, err = games.SetState(ctx, id, state)
	assert.ErrorIs(t, err, model.ErrGameEnded)

	found, err := games.SearchByTitle(ctx, "renam")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Len(t, found[0].Questions[0].Choices[2].Responses, 1)

	require.NoError(t, games.Delete(ctx, id))
	got, err := games.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func testConcurrentResponses(t *testing.T, ctx context.Context, games repository.GameRepo) {
	now := time.Now().UTC()
	state := model.NewGameState()
	state.IsGameOpen = true
	state.IsQuestionOpen = true
	state.ActiveQuestionIndex = model.SomeIndex(0)
	state.QuestionStartedAt = &now

	game := &model.QuizGame{
		GameTitle: "Burst",
		GameState: state,
		Questions: model.NormalizeQuestions(liveQuiz("Burst", now).Questions, now),
		CreatedAt: now,
		UpdatedAt: now,
	}
	id, err := games.Create(ctx, game)
	require.NoError(t, err)

	const n = 40
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := games.AppendResponse(ctx, id, 0, i%4, model.Response{Responder: model.Responder{UserName: fmt.Sprintf("user-%d", i)}})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	got, err := games.GetByID(ctx, id)
	require.NoError(t, err)
	total := 0
	for _, c := range got.Questions[0].Choices {
		total += len(c.Responses)
	}
	assert.Equal(t, n, total)
}

func liveQuiz(title string, now time.Time) *model.Quiz {
	quiz := &model.Quiz{
		QuizTitle:      title,
		QuizTopicsList: []string{"Geography"},
		Questions: []model.Question{
			{
				QuestionText: "Pick one",
				Choices: []model.Choice{
					{ChoiceText: "a"},
					{ChoiceText: "b"},
					{ChoiceText: "c", IsCorrectChoice: true},
					{ChoiceText: "d"},
				},
			},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	quiz.Normalize(now)
	return quiz
}

func startMongo(t *testing.T, ctx context.Context) (string, func()) {
	t.Helper()
	req := tc.ContainerRequest{
		Image:        "mongo:7",
		ExposedPorts: []string{"27017/tcp"},
		WaitingFor:   wait.ForListeningPort("27017/tcp").WithStartupTimeout(60 * time.Second),
	}
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		if strings.Contains(err.Error(), "Cannot connect to the Docker daemon") {
			t.Skipf("docker not available: %v", err)
		}
		t.Fatalf("start mongo: %v", err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("mongo host: %v", err)
	}
	port, err := container.MappedPort(ctx, "27017/tcp")
	if err != nil {
		t.Fatalf("mongo port: %v", err)
	}
	uri := fmt.Sprintf("mongodb://%s:%s", host, port.Port())
	return uri, func() {
		_ = container.Terminate(ctx)
	}
}

func requireDocker(t *testing.T) {
	t.Helper()
	if _, err := tc.NewDockerProvider(); err != nil {
		t.Skipf("docker not available: %v", err)
	}
}

func mustOID(t *testing.T, id string) primitive.ObjectID {
	t.Helper()
	oid, err := primitive.ObjectIDFromHex(id)
	require.NoError(t, err)
	return oid
}
