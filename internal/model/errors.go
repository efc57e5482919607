package model

import (
	"errors"
	"fmt"
)

// ErrorKind classifies application errors
type ErrorKind string

const (
	KindInternal        ErrorKind = "internal"
	KindNotFound        ErrorKind = "not_found"
	KindInvalidArgument ErrorKind = "invalid_argument"
	KindValidation      ErrorKind = "validation_error"
	KindConflict        ErrorKind = "conflict"
)

var (
	// ErrNotFound is returned by stores when no document matches
	ErrNotFound = errors.New("document not found")
	// ErrQuestionClosed is returned by stores when a guarded append finds
	// the question no longer open
	ErrQuestionClosed = errors.New("question is closed for responses")
	// ErrGameEnded is returned by stores when a state write finds the game
	// ended since it was read
	ErrGameEnded = errors.New("quiz game has ended")
)

// AppError is an error with a kind the transport maps to a status code
type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

func newError(kind ErrorKind, message string, err error) *AppError {
	return &AppError{Kind: kind, Message: message, Err: err}
}

func NotFound(message string) *AppError {
	return newError(KindNotFound, message, nil)
}

func InvalidArgument(message string) *AppError {
	return newError(KindInvalidArgument, message, nil)
}

func Validation(message string) *AppError {
	return newError(KindValidation, message, nil)
}

func Conflict(message string) *AppError {
	return newError(KindConflict, message, nil)
}

// Internal wraps an unexpected failure
func Internal(message string, err error) *AppError {
	return newError(KindInternal, message, err)
}

// KindOf returns the kind of err, KindInternal for foreign errors
func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}
