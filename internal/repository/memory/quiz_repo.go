package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"quizgame/internal/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// QuizRepo is an in-memory implementation of repository.QuizRepo.
// Documents are copied in and out so callers never share state with the
// store.
type QuizRepo struct {
	mu      sync.RWMutex
	quizzes map[string]*model.Quiz
}

func NewQuizRepo() *QuizRepo {
	return &QuizRepo{
		quizzes: make(map[string]*model.Quiz),
	}
}

func (r *QuizRepo) Create(_ context.Context, quiz *model.Quiz) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	quiz.ID = primitive.NewObjectID().Hex()
	r.quizzes[quiz.ID] = quiz.Clone()
	return quiz.ID, nil
}

func (r *QuizRepo) GetByID(_ context.Context, id string) (*model.Quiz, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	quiz, ok := r.quizzes[id]
	if !ok {
		return nil, nil
	}
	return quiz.Clone(), nil
}

func (r *QuizRepo) List(_ context.Context) ([]*model.Quiz, error) {
	return r.filter(func(*model.Quiz) bool { return true }), nil
}

func (r *QuizRepo) Search(_ context.Context, term string) ([]*model.Quiz, error) {
	term = strings.ToLower(term)
	return r.filter(func(q *model.Quiz) bool { return q.MatchesTerm(term) }), nil
}

func (r *QuizRepo) filter(keep func(*model.Quiz) bool) []*model.Quiz {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []*model.Quiz{}
	for _, quiz := range r.quizzes {
		if keep(quiz) {
			out = append(out, quiz.Clone())
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

func (r *QuizRepo) Update(_ context.Context, quiz *model.Quiz) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.quizzes[quiz.ID]; !ok {
		return model.ErrNotFound
	}
	r.quizzes[quiz.ID] = quiz.Clone()
	return nil
}

func (r *QuizRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.quizzes[id]; !ok {
		return model.ErrNotFound
	}
	delete(r.quizzes, id)
	return nil
}
