package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"quizgame/internal/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GameRepo is an in-memory implementation of repository.GameRepo
type GameRepo struct {
	mu    sync.RWMutex
	games map[string]*model.QuizGame
}

func NewGameRepo() *GameRepo {
	return &GameRepo{
		games: make(map[string]*model.QuizGame),
	}
}

func (r *GameRepo) Create(_ context.Context, game *model.QuizGame) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	game.ID = primitive.NewObjectID().Hex()
	r.games[game.ID] = game.Clone()
	return game.ID, nil
}

func (r *GameRepo) GetByID(_ context.Context, id string) (*model.QuizGame, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	game, ok := r.games[id]
	if !ok {
		return nil, nil
	}
	return game.Clone(), nil
}

func (r *GameRepo) List(_ context.Context) ([]*model.QuizGame, error) {
	return r.filter(func(*model.QuizGame) bool { return true }), nil
}

func (r *GameRepo) SearchByTitle(_ context.Context, term string) ([]*model.QuizGame, error) {
	term = strings.ToLower(term)
	return r.filter(func(g *model.QuizGame) bool { return g.MatchesTitle(term) }), nil
}

func (r *GameRepo) filter(keep func(*model.QuizGame) bool) []*model.QuizGame {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []*model.QuizGame{}
	for _, game := range r.games {
		if keep(game) {
			out = append(out, game.Clone())
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

func (r *GameRepo) Update(_ context.Context, game *model.QuizGame) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.games[game.ID]; !ok {
		return model.ErrNotFound
	}
	r.games[game.ID] = game.Clone()
	return nil
}

func (r *GameRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.games[id]; !ok {
		return model.ErrNotFound
	}
	delete(r.games, id)
	return nil
}

func (r *GameRepo) SetState(_ context.Context, id string, state model.GameState) (*model.QuizGame, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	game, ok := r.games[id]
	if !ok {
		return nil, model.ErrNotFound
	}
	if game.GameEndedAt != nil && state.GameEndedAt == nil {
		return nil, model.ErrGameEnded
	}
	game.GameState = state
	game.UpdatedAt = time.Now().UTC()
	return game.Clone(), nil
}

func (r *GameRepo) AppendResponse(_ context.Context, id string, q, c int, resp model.Response) (*model.QuizGame, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	game, ok := r.games[id]
	if !ok {
		return nil, model.ErrNotFound
	}
	if !game.IsQuestionOpen || !game.ActiveQuestionIndex.Is(q) || !game.HasChoice(q, c) {
		return nil, model.ErrQuestionClosed
	}
	choice := &game.Questions[q].Choices[c]
	choice.Responses = append(choice.Responses, resp)
	game.UpdatedAt = time.Now().UTC()
	return game.Clone(), nil
}
