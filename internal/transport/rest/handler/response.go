package handler

import (
	"net/http"
	"quizgame/internal/service"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// ResponseHandler handles participant responses
type ResponseHandler struct {
	responseSvc *service.ResponseService
	logger      *zap.Logger
}

// NewResponseHandler creates a new response handler
func NewResponseHandler(responseSvc *service.ResponseService, logger *zap.Logger) *ResponseHandler {
	return &ResponseHandler{
		responseSvc: responseSvc,
		logger:      logger,
	}
}

// Record handles POST /api/quizgames/{id}/question/{index}/choice/{choice}/response
// @Summary Record a participant response
// @Tags responses
// @Accept json
// @Produce json
// @Param id path string true "Quiz game ID"
// @Param index path int true "Question index"
// @Param choice path int true "Choice index"
// @Param body body handler.RecordResponseRequest true "Request body"
// @Success 201 {object} handler.RecordResponseResponse
// @Failure 400 {object} handler.ErrorBody "Bad index or question closed"
// @Failure 404 {object} handler.ErrorBody "Quiz game not found"
// @Failure 500 {object} handler.ErrorBody "Server error"
// @Router /quizgames/{id}/question/{index}/choice/{choice}/response [post]
func (h *ResponseHandler) Record(w http.ResponseWriter, r *http.Request) {
	q, err := pathIndex(r, "index")
	if err != nil {
		writeAppError(w, h.logger, err, http.StatusBadRequest)
		return
	}
	c, err := pathIndex(r, "choice")
	if err != nil {
		writeAppError(w, h.logger, err, http.StatusBadRequest)
		return
	}

	var req RecordResponseRequest
	if err := decodeBody(r, &req, true); err != nil {
		writeAppError(w, h.logger, err, http.StatusBadRequest)
		return
	}
	in, err := req.input()
	if err != nil {
		writeAppError(w, h.logger, err, http.StatusBadRequest)
		return
	}

	resp, game, err := h.responseSvc.RecordResponse(r.Context(), mux.Vars(r)["id"], q, c, in)
	if err != nil {
		// a closed question is reported as a bad request on this route
		writeAppError(w, h.logger, err, http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusCreated, RecordResponseResponse{Response: resp, Game: game})
}
