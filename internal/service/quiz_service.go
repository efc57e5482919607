package service

import (
	"context"
	"errors"
	"quizgame/internal/cache"
	"quizgame/internal/model"
	"quizgame/internal/repository"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// QuizService handles the quiz catalog
type QuizService struct {
	quizRepo    repository.QuizRepo
	searchCache cache.SearchCache
	group       singleflight.Group
	logger      *zap.Logger
	now         func() time.Time
}

// NewQuizService creates a new quiz service
func NewQuizService(quizRepo repository.QuizRepo, searchCache cache.SearchCache, logger *zap.Logger) *QuizService {
	if searchCache == nil {
		searchCache = cache.NewNopSearchCache()
	}
	return &QuizService{
		quizRepo:    quizRepo,
		searchCache: searchCache,
		logger:      logger,
		now:         utcNow,
	}
}

// SetClock replaces the time source
func (s *QuizService) SetClock(now func() time.Time) {
	s.now = now
}

// Create validates and stores a new quiz
func (s *QuizService) Create(ctx context.Context, quiz *model.Quiz) (*model.Quiz, error) {
	if err := quiz.Validate(); err != nil {
		return nil, err
	}

	now := s.now()
	quiz.Normalize(now)
	quiz.CreatedAt = now
	quiz.UpdatedAt = now

	if _, err := s.quizRepo.Create(ctx, quiz); err != nil {
		return nil, model.Internal("failed to create quiz", err)
	}
	s.invalidateSearch(ctx)

	s.logger.Info("quiz created", zap.String("quizId", quiz.ID), zap.Int("questions", len(quiz.Questions)))
	return quiz, nil
}

// GetByID retrieves a quiz
func (s *QuizService) GetByID(ctx context.Context, id string) (*model.Quiz, error) {
	quiz, err := s.quizRepo.GetByID(ctx, id)
	if err != nil {
		return nil, model.Internal("failed to get quiz", err)
	}
	if quiz == nil {
		return nil, model.NotFound("Quiz not found")
	}
	return quiz, nil
}

// List retrieves every quiz
func (s *QuizService) List(ctx context.Context) ([]*model.Quiz, error) {
	quizzes, err := s.quizRepo.List(ctx)
	if err != nil {
		return nil, model.Internal("failed to list quizzes", err)
	}
	return quizzes, nil
}

// Search matches term case-insensitively against title, description and
// topics. A blank term returns the whole catalog.
func (s *QuizService) Search(ctx context.Context, term string) ([]*model.Quiz, error) {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return s.List(ctx)
	}

	cached, gen, hit, err := s.searchCache.Get(ctx, term)
	if err != nil {
		s.logger.Warn("search cache read failed", zap.String("term", term), zap.Error(err))
	}
	if hit {
		return cached, nil
	}

	// one flight per generation so a search after a write never joins a
	// read that started before it
	flightCtx := context.WithoutCancel(ctx)
	v, err, _ := s.group.Do(string(gen)+":"+term, func() (interface{}, error) {
		quizzes, err := s.quizRepo.Search(flightCtx, term)
		if err != nil {
			return nil, err
		}
		if gen != "" {
			if err := s.searchCache.Set(flightCtx, gen, term, quizzes); err != nil {
				s.logger.Warn("search cache write failed", zap.String("term", term), zap.Error(err))
			}
		}
		return quizzes, nil
	})
	if err != nil {
		return nil, model.Internal("failed to search quizzes", err)
	}
	return v.([]*model.Quiz), nil
}

// Update replaces a quiz. Creation audit fields are kept when omitted and
// updatedAt is always refreshed.
func (s *QuizService) Update(ctx context.Context, id string, quiz *model.Quiz) (*model.Quiz, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	quiz.ID = id
	if quiz.CreatedAt.IsZero() {
		quiz.CreatedAt = existing.CreatedAt
	}
	if quiz.CreatedBy == "" {
		quiz.CreatedBy = existing.CreatedBy
	}
	return s.save(ctx, quiz)
}

// Patch applies a partial update
func (s *QuizService) Patch(ctx context.Context, id string, patch *model.QuizPatch) (*model.Quiz, error) {
	quiz, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(quiz)
	return s.save(ctx, quiz)
}

func (s *QuizService) save(ctx context.Context, quiz *model.Quiz) (*model.Quiz, error) {
	if err := quiz.Validate(); err != nil {
		return nil, err
	}

	now := s.now()
	quiz.Normalize(now)
	quiz.UpdatedAt = now

	if err := s.quizRepo.Update(ctx, quiz); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NotFound("Quiz not found")
		}
		return nil, model.Internal("failed to update quiz", err)
	}
	s.invalidateSearch(ctx)

	s.logger.Info("quiz updated", zap.String("quizId", quiz.ID))
	return quiz, nil
}

// Delete removes a quiz. Games created from it keep their snapshot.
func (s *QuizService) Delete(ctx context.Context, id string) error {
	if err := s.quizRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.NotFound("Quiz not found")
		}
		return model.Internal("failed to delete quiz", err)
	}
	s.invalidateSearch(ctx)

	s.logger.Info("quiz deleted", zap.String("quizId", id))
	return nil
}

func (s *QuizService) invalidateSearch(ctx context.Context) {
	if err := s.searchCache.Invalidate(ctx); err != nil {
		s.logger.Warn("search cache invalidation failed", zap.Error(err))
	}
}

func utcNow() time.Time {
	return time.Now().UTC()
}
