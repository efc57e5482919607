package service

import (
	"context"
	"errors"
	"fmt"
	"quizgame/internal/model"
	"quizgame/internal/repository"
	"strings"
	"time"

	"go.uber.org/zap"
)

// CreateGameInput describes a game to schedule. A nil Questions slice
// means the quiz questions are snapshotted.
type CreateGameInput struct {
	QuizID         string
	GameTitle      string
	ScheduledStart *time.Time
	ScheduledEnd   *time.Time
	IntroImage     string
	Questions      []model.Question
}

// GameService drives the quiz game lifecycle:
// scheduled -> open -> question open <-> question closed -> ended.
// Every transition is a read, a precondition check and a write of the
// runtime fields only.
type GameService struct {
	gameRepo            repository.GameRepo
	quizRepo            repository.QuizRepo
	logger              *zap.Logger
	now                 func() time.Time
	requireReadyForLive bool
}

// NewGameService creates a new game service
func NewGameService(gameRepo repository.GameRepo, quizRepo repository.QuizRepo, logger *zap.Logger) *GameService {
	return &GameService{
		gameRepo: gameRepo,
		quizRepo: quizRepo,
		logger:   logger,
		now:      utcNow,
	}
}

// SetClock replaces the time source
func (s *GameService) SetClock(now func() time.Time) {
	s.now = now
}

// RequireReadyForLive makes CreateGame reject quizzes not flagged ready
func (s *GameService) RequireReadyForLive(require bool) {
	s.requireReadyForLive = require
}

// CreateGame schedules a new game from a quiz
func (s *GameService) CreateGame(ctx context.Context, in CreateGameInput) (*model.QuizGame, error) {
	quiz, err := s.quizRepo.GetByID(ctx, in.QuizID)
	if err != nil {
		return nil, model.Internal("failed to get quiz", err)
	}
	if quiz == nil {
		return nil, model.NotFound("Referenced quiz not found")
	}
	if s.requireReadyForLive && !quiz.ReadyForLive {
		return nil, model.Validation("quiz is not ready for live games")
	}

	questions := in.Questions
	if questions == nil {
		questions = model.CloneQuestions(quiz.Questions)
	} else {
		if err := model.ValidateQuestions(questions); err != nil {
			return nil, err
		}
		questions = model.CloneQuestions(questions)
	}

	title := in.GameTitle
	if strings.TrimSpace(title) == "" {
		title = quiz.QuizTitle
	}

	now := s.now()
	game := &model.QuizGame{
		GameTitle:          title,
		GameScheduledStart: in.ScheduledStart,
		GameScheduledEnd:   in.ScheduledEnd,
		GameState:          model.NewGameState(),
		QuizID:             quiz.ID,
		Questions:          questions,
		IntroImage:         in.IntroImage,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	game.Normalize(now)

	if _, err := s.gameRepo.Create(ctx, game); err != nil {
		return nil, model.Internal("failed to create quiz game", err)
	}

	s.logger.Info("quiz game created",
		zap.String("gameId", game.ID),
		zap.String("quizId", quiz.ID),
		zap.Int("questions", len(game.Questions)),
	)
	return game, nil
}

// GetGame retrieves a game with its source quiz resolved
func (s *GameService) GetGame(ctx context.Context, id string) (*model.QuizGameView, error) {
	game, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	quiz, err := s.quizRepo.GetByID(ctx, game.QuizID)
	if err != nil {
		return nil, model.Internal("failed to resolve quiz", err)
	}
	return &model.QuizGameView{QuizGame: game, Quiz: quiz}, nil
}

// ListGames retrieves every game
func (s *GameService) ListGames(ctx context.Context) ([]*model.QuizGame, error) {
	games, err := s.gameRepo.List(ctx)
	if err != nil {
		return nil, model.Internal("failed to list quiz games", err)
	}
	return games, nil
}

// SearchGames matches term against game titles. A blank term returns
// every game.
func (s *GameService) SearchGames(ctx context.Context, term string) ([]*model.QuizGame, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return s.ListGames(ctx)
	}
	games, err := s.gameRepo.SearchByTitle(ctx, term)
	if err != nil {
		return nil, model.Internal("failed to search quiz games", err)
	}
	return games, nil
}

// UpdateGame replaces the definition of a game. The runtime state is
// kept; only lifecycle operations change it. The question snapshot can
// only be replaced before the game starts.
func (s *GameService) UpdateGame(ctx context.Context, id string, game *model.QuizGame) (*model.QuizGame, error) {
	existing, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	questions, err := replaceQuestions(existing, game.Questions)
	if err != nil {
		return nil, err
	}
	game.ID = id
	game.GameState = existing.GameState
	game.CreatedAt = existing.CreatedAt
	game.Questions = questions
	if game.QuizID == "" {
		game.QuizID = existing.QuizID
	}
	return s.save(ctx, game, existing.QuizID)
}

// PatchGame applies a partial update to the definition of a game
func (s *GameService) PatchGame(ctx context.Context, id string, patch *model.QuizGamePatch) (*model.QuizGame, error) {
	game, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	var replacement []model.Question
	if patch.Questions != nil {
		replacement = *patch.Questions
		if replacement == nil {
			replacement = []model.Question{}
		}
	}
	questions, err := replaceQuestions(game, replacement)
	if err != nil {
		return nil, err
	}
	previousQuizID := game.QuizID
	patch.Apply(game)
	game.Questions = questions
	return s.save(ctx, game, previousQuizID)
}

// replaceQuestions returns the snapshot game should carry after an edit
// supplying questions. Nil keeps the current snapshot. Once the game has
// started its snapshot holds recorded responses and is frozen.
func replaceQuestions(game *model.QuizGame, questions []model.Question) ([]model.Question, error) {
	if questions == nil {
		return game.Questions, nil
	}
	if game.GameStartedAt != nil || game.GameEndedAt != nil {
		return nil, model.Conflict("questions cannot change once the quiz game has started")
	}
	if err := model.ValidateQuestions(questions); err != nil {
		return nil, err
	}
	return model.CloneQuestions(questions), nil
}

func (s *GameService) save(ctx context.Context, game *model.QuizGame, previousQuizID string) (*model.QuizGame, error) {
	if game.QuizID != previousQuizID {
		quiz, err := s.quizRepo.GetByID(ctx, game.QuizID)
		if err != nil {
			return nil, model.Internal("failed to get quiz", err)
		}
		if quiz == nil {
			return nil, model.NotFound("Referenced quiz not found")
		}
	}

	now := s.now()
	game.Normalize(now)
	game.UpdatedAt = now

	if err := s.gameRepo.Update(ctx, game); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NotFound("Quiz game not found")
		}
		return nil, model.Internal("failed to update quiz game", err)
	}
	s.logger.Info("quiz game updated", zap.String("gameId", game.ID))
	return game, nil
}

// DeleteGame removes a game
func (s *GameService) DeleteGame(ctx context.Context, id string) error {
	if err := s.gameRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.NotFound("Quiz game not found")
		}
		return model.Internal("failed to delete quiz game", err)
	}
	s.logger.Info("quiz game deleted", zap.String("gameId", id))
	return nil
}

// StartGame opens the game with no question selected. Starting an open
// game stamps a new start time; an ended game cannot be restarted.
func (s *GameService) StartGame(ctx context.Context, id string) (*model.QuizGame, error) {
	game, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if game.Status() == model.GameEnded {
		return nil, model.Conflict("quiz game has ended and cannot be restarted")
	}

	now := s.now()
	state := game.GameState
	state.GameStartedAt = &now
	state.IsGameOpen = true
	state.ActiveQuestionIndex = model.NoIndex()
	state.IsQuestionOpen = false
	state.QuestionStartedAt = nil
	state.CorrectChoiceIndex = model.NoIndex()

	return s.transition(ctx, id, state, "quiz game started")
}

// EndGame closes the game and any open question. Ending an ended game
// returns it unchanged.
func (s *GameService) EndGame(ctx context.Context, id string) (*model.QuizGame, error) {
	game, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if game.Status() == model.GameEnded {
		return game, nil
	}

	now := s.now()
	state := game.GameState
	state.GameEndedAt = &now
	state.IsGameOpen = false
	state.IsQuestionOpen = false

	return s.transition(ctx, id, state, "quiz game ended")
}

// StartQuestion makes question i the active, open question
func (s *GameService) StartQuestion(ctx context.Context, id string, i int) (*model.QuizGame, error) {
	game, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !game.HasQuestion(i) {
		return nil, questionOutOfRange(i, len(game.Questions))
	}
	if !game.IsGameOpen {
		return nil, model.Conflict("quiz game is not open")
	}

	now := s.now()
	state := game.GameState
	state.ActiveQuestionIndex = model.SomeIndex(i)
	state.QuestionStartedAt = &now
	state.IsQuestionOpen = true
	state.CorrectChoiceIndex = game.Questions[i].CorrectChoiceIndex()

	return s.transition(ctx, id, state, "question started", zap.Int("question", i))
}

// EndQuestion closes question i for responses. The active index is kept;
// moving on is another StartQuestion.
func (s *GameService) EndQuestion(ctx context.Context, id string, i int) (*model.QuizGame, error) {
	game, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !game.HasQuestion(i) {
		return nil, questionOutOfRange(i, len(game.Questions))
	}

	state := game.GameState
	state.IsQuestionOpen = false

	return s.transition(ctx, id, state, "question ended", zap.Int("question", i))
}

func (s *GameService) transition(ctx context.Context, id string, state model.GameState, msg string, fields ...zap.Field) (*model.QuizGame, error) {
	game, err := s.gameRepo.SetState(ctx, id, state)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NotFound("Quiz game not found")
		}
		if errors.Is(err, model.ErrGameEnded) {
			return nil, model.Conflict("quiz game has ended")
		}
		return nil, model.Internal("failed to update quiz game", err)
	}
	s.logger.Info(msg, append([]zap.Field{
		zap.String("gameId", id),
		zap.String("status", string(game.Status())),
	}, fields...)...)
	return game, nil
}

func (s *GameService) load(ctx context.Context, id string) (*model.QuizGame, error) {
	return loadGame(ctx, s.gameRepo, id)
}

func loadGame(ctx context.Context, repo repository.GameRepo, id string) (*model.QuizGame, error) {
	game, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, model.Internal("failed to get quiz game", err)
	}
	if game == nil {
		return nil, model.NotFound("Quiz game not found")
	}
	return game, nil
}

func questionOutOfRange(i, n int) error {
	return model.InvalidArgument(fmt.Sprintf("question index %d out of range [0, %d)", i, n))
}
