package model

import (
	"strconv"
	"time"
)

// Responder identifies the participant who answered
type Responder struct {
	YtChannelID     string `json:"ytChannelId" bson:"ytChannelId"`
	YtProfilePicURL string `json:"ytProfilePicUrl" bson:"ytProfilePicUrl"`
	UserName        string `json:"userName" bson:"userName"`
	FirstName       string `json:"firstName" bson:"firstName"`
	LastName        string `json:"lastName" bson:"lastName"`
}

// Response is a participant answer recorded against a choice. Responses
// are append-only.
type Response struct {
	Responder       `bson:",inline"`
	QuizGameID      string    `json:"quizGameId" bson:"quizGameId"`
	RespondedAt     time.Time `json:"respondedAt" bson:"respondedAt"`
	ResponseTime    string    `json:"responseTime" bson:"responseTime"` // milliseconds since the question opened
	IsCorrectAnswer bool      `json:"isCorrectAnswer" bson:"isCorrectAnswer"`
}

// ElapsedMillis formats the whole milliseconds between start and at
func ElapsedMillis(start, at time.Time) string {
	return strconv.FormatInt(at.Sub(start).Milliseconds(), 10)
}
