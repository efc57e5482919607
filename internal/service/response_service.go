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

// ResponseInput is a participant answer as submitted. An empty
// ResponseTime is computed from the question start.
type ResponseInput struct {
	model.Responder
	ResponseTime string
}

// ResponseService records participant responses against the open question
type ResponseService struct {
	gameRepo repository.GameRepo
	logger   *zap.Logger
	now      func() time.Time
}

// NewResponseService creates a new response service
func NewResponseService(gameRepo repository.GameRepo, logger *zap.Logger) *ResponseService {
	return &ResponseService{
		gameRepo: gameRepo,
		logger:   logger,
		now:      utcNow,
	}
}

// SetClock replaces the time source
func (s *ResponseService) SetClock(now func() time.Time) {
	s.now = now
}

// RecordResponse appends a response to choice c of question q. Question
// q must be the active question and open.
func (s *ResponseService) RecordResponse(ctx context.Context, gameID string, q, c int, in ResponseInput) (*model.Response, *model.QuizGame, error) {
	game, err := loadGame(ctx, s.gameRepo, gameID)
	if err != nil {
		return nil, nil, err
	}
	if !game.HasQuestion(q) {
		return nil, nil, questionOutOfRange(q, len(game.Questions))
	}
	if !game.HasChoice(q, c) {
		return nil, nil, model.InvalidArgument(fmt.Sprintf("choice index %d out of range [0, %d)", c, len(game.Questions[q].Choices)))
	}
	if !game.IsQuestionOpen {
		return nil, nil, model.Conflict("question is closed for responses")
	}
	if !game.ActiveQuestionIndex.Is(q) {
		return nil, nil, model.Conflict(fmt.Sprintf("question %d is not the active question", q))
	}

	now := s.now()
	responseTime := strings.TrimSpace(in.ResponseTime)
	if responseTime == "" {
		responseTime = "0"
		if game.QuestionStartedAt != nil {
			responseTime = model.ElapsedMillis(*game.QuestionStartedAt, now)
		}
	}

	resp := model.Response{
		Responder:       in.Responder,
		QuizGameID:      game.ID,
		RespondedAt:     now,
		ResponseTime:    responseTime,
		IsCorrectAnswer: game.Questions[q].Choices[c].IsCorrectChoice,
	}

	updated, err := s.gameRepo.AppendResponse(ctx, gameID, q, c, resp)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrNotFound):
			return nil, nil, model.NotFound("Quiz game not found")
		case errors.Is(err, model.ErrQuestionClosed):
			return nil, nil, model.Conflict("question is closed for responses")
		}
		return nil, nil, model.Internal("failed to record response", err)
	}

	s.logger.Debug("response recorded",
		zap.String("gameId", gameID),
		zap.Int("question", q),
		zap.Int("choice", c),
		zap.String("userName", resp.UserName),
		zap.String("responseTime", resp.ResponseTime),
	)
	return &resp, updated, nil
}
