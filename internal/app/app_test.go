package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"quizgame/internal/config"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewMemoryStore(t *testing.T) {
	ctx := context.Background()
	cfg, err := config.Load("")
	require.NoError(t, err)

	a, err := New(ctx, cfg, StoreMemory, zap.NewNop())
	require.NoError(t, err)
	defer a.Close(ctx)

	rec := httptest.NewRecorder()
	a.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/quizzes", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestNewWithRedisCache(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	ctx := context.Background()
	cfg, err := config.Load("")
	require.NoError(t, err)
	cfg.Redis.Addr = mr.Addr()

	a, err := New(ctx, cfg, StoreMemory, zap.NewNop())
	require.NoError(t, err)
	defer a.Close(ctx)

	_, err = a.QuizService.Search(ctx, "anything")
	require.NoError(t, err)
	assert.True(t, mr.Exists("quiz:search:0:anything"))
}

func TestNewUnknownStore(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	_, err = New(context.Background(), cfg, "postgres", zap.NewNop())
	assert.Error(t, err)
}
