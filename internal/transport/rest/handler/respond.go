package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"quizgame/internal/model"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

var validate = validator.New()

// ErrorBody is the JSON shape of every error response
type ErrorBody struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// MessageBody is returned by deletes
type MessageBody struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, kind model.ErrorKind) {
	writeJSON(w, status, ErrorBody{Message: message, Error: string(kind)})
}

// writeAppError maps err to a status code. conflictStatus lets the
// response route report a closed question as a bad request.
func writeAppError(w http.ResponseWriter, logger *zap.Logger, err error, conflictStatus int) {
	var appErr *model.AppError
	if !errors.As(err, &appErr) || appErr.Kind == model.KindInternal {
		logger.Error("request failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Server error", model.KindInternal)
		return
	}

	status := http.StatusInternalServerError
	switch appErr.Kind {
	case model.KindNotFound:
		status = http.StatusNotFound
	case model.KindInvalidArgument, model.KindValidation:
		status = http.StatusBadRequest
	case model.KindConflict:
		status = conflictStatus
	}
	logger.Debug("request rejected", zap.String("kind", string(appErr.Kind)), zap.String("message", appErr.Message))
	writeError(w, status, appErr.Message, appErr.Kind)
}

// decodeBody decodes a JSON body into dst. An empty body is accepted
// when allowEmpty is set.
func decodeBody(r *http.Request, dst interface{}, allowEmpty bool) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if errors.Is(err, io.EOF) && allowEmpty {
		return nil
	}
	if err != nil {
		return model.InvalidArgument("invalid request body")
	}
	return nil
}

func validateBody(v interface{}) error {
	if err := validate.Struct(v); err != nil {
		return model.InvalidArgument(err.Error())
	}
	return nil
}

func pathIndex(r *http.Request, name string) (int, error) {
	raw := mux.Vars(r)[name]
	i, err := strconv.Atoi(raw)
	if err != nil {
		return 0, model.InvalidArgument("invalid " + name + ": " + raw)
	}
	return i, nil
}
