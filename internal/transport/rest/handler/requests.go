package handler

import (
	"quizgame/internal/model"
	"quizgame/internal/service"
	"time"
)

// CreateGameRequest is the request body for creating a quiz game
type CreateGameRequest struct {
	QuizID             string           `json:"quizId" validate:"required,len=24,hexadecimal"`
	GameTitle          string           `json:"gameTitle" validate:"max=200"`
	GameScheduledStart *time.Time       `json:"gameScheduledStart"`
	GameScheduledEnd   *time.Time       `json:"gameScheduledEnd"`
	IntroImage         string           `json:"introImage"`
	Questions          []model.Question `json:"questions"`
}

func (req *CreateGameRequest) input() (service.CreateGameInput, error) {
	if err := validateBody(req); err != nil {
		return service.CreateGameInput{}, err
	}
	if err := checkSchedule(req.GameScheduledStart, req.GameScheduledEnd); err != nil {
		return service.CreateGameInput{}, err
	}
	in := service.CreateGameInput{
		QuizID:         req.QuizID,
		GameTitle:      req.GameTitle,
		ScheduledStart: req.GameScheduledStart,
		ScheduledEnd:   req.GameScheduledEnd,
		IntroImage:     req.IntroImage,
	}
	// an empty list is treated like an absent one
	if len(req.Questions) > 0 {
		in.Questions = req.Questions
	}
	return in, nil
}

// RecordResponseRequest is the request body for a participant response
type RecordResponseRequest struct {
	YtChannelID     string `json:"ytChannelId" validate:"max=128"`
	YtProfilePicURL string `json:"ytProfilePicUrl" validate:"omitempty,url"`
	UserName        string `json:"userName" validate:"max=200"`
	FirstName       string `json:"firstName" validate:"max=200"`
	LastName        string `json:"lastName" validate:"max=200"`
	ResponseTime    string `json:"responseTime" validate:"omitempty,number"`
}

func (req *RecordResponseRequest) input() (service.ResponseInput, error) {
	if err := validateBody(req); err != nil {
		return service.ResponseInput{}, err
	}
	return service.ResponseInput{
		Responder: model.Responder{
			YtChannelID:     req.YtChannelID,
			YtProfilePicURL: req.YtProfilePicURL,
			UserName:        req.UserName,
			FirstName:       req.FirstName,
			LastName:        req.LastName,
		},
		ResponseTime: req.ResponseTime,
	}, nil
}

// RecordResponseResponse is returned after a response is recorded
type RecordResponseResponse struct {
	Response *model.Response `json:"response"`
	Game     *model.QuizGame `json:"game"`
}

func checkSchedule(start, end *time.Time) error {
	if start != nil && end != nil && end.Before(*start) {
		return model.InvalidArgument("gameScheduledEnd must not be before gameScheduledStart")
	}
	return nil
}
