package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameStatus(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name  string
		state GameState
		want  GameStatus
	}{
		{"fresh", NewGameState(), GameScheduled},
		{"open", GameState{IsGameOpen: true, ActiveQuestionIndex: NoIndex()}, GameOpen},
		{"question open", GameState{IsGameOpen: true, IsQuestionOpen: true, ActiveQuestionIndex: SomeIndex(0)}, GameQuestionOpen},
		{"question closed", GameState{IsGameOpen: true, ActiveQuestionIndex: SomeIndex(1)}, GameQuestionClosed},
		{"ended", GameState{GameEndedAt: &now, ActiveQuestionIndex: SomeIndex(1)}, GameEnded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &QuizGame{GameState: tt.state}
			assert.Equal(t, tt.want, g.Status())
		})
	}
}

func TestGameBounds(t *testing.T) {
	g := &QuizGame{Questions: []Question{{Choices: []Choice{{}, {}}}}}

	assert.True(t, g.HasQuestion(0))
	assert.False(t, g.HasQuestion(1))
	assert.False(t, g.HasQuestion(-1))
	assert.True(t, g.HasChoice(0, 1))
	assert.False(t, g.HasChoice(0, 2))
	assert.False(t, g.HasChoice(1, 0))
}

func TestGameJSON(t *testing.T) {
	g := &QuizGame{ID: "g1", GameTitle: "Friday Quiz", GameState: NewGameState()}
	data, err := json.Marshal(g)
	require.NoError(t, err)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, float64(-1), raw["activeQuestionIndex"])
	assert.Equal(t, float64(-1), raw["correctChoiceIndex"])
	assert.Equal(t, false, raw["isGameOpen"])
	assert.Equal(t, "Friday Quiz", raw["gameTitle"])
	assert.NotContains(t, raw, "gameStartedAt")

	view := QuizGameView{QuizGame: g, Quiz: &Quiz{QuizTitle: "Source"}}
	data, err = json.Marshal(view)
	require.NoError(t, err)
	raw = nil
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "g1", raw["id"])
	assert.Equal(t, "Source", raw["quiz"].(map[string]interface{})["quizTitle"])
}

func TestElapsedMillis(t *testing.T) {
	start := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "2500", ElapsedMillis(start, start.Add(2500*time.Millisecond)))
	assert.Equal(t, "0", ElapsedMillis(start, start.Add(900*time.Microsecond)))
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNotFound, KindOf(NotFound("x")))
	assert.Equal(t, KindConflict, KindOf(Conflict("x")))
	assert.Equal(t, KindInternal, KindOf(assert.AnError))

	err := Internal("failed", assert.AnError)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, "failed: "+assert.AnError.Error(), err.Error())
}
