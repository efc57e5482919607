package handler

import (
	"net/http"
	"quizgame/internal/model"
	"quizgame/internal/service"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// QuizHandler handles quiz catalog endpoints
type QuizHandler struct {
	quizSvc *service.QuizService
	logger  *zap.Logger
}

// NewQuizHandler creates a new quiz handler
func NewQuizHandler(quizSvc *service.QuizService, logger *zap.Logger) *QuizHandler {
	return &QuizHandler{
		quizSvc: quizSvc,
		logger:  logger,
	}
}

// List handles GET /api/quizzes
// @Summary List quizzes
// @Tags quizzes
// @Produce json
// @Success 200 {array} model.Quiz
// @Failure 500 {object} handler.ErrorBody "Server error"
// @Router /quizzes [get]
func (h *QuizHandler) List(w http.ResponseWriter, r *http.Request) {
	quizzes, err := h.quizSvc.List(r.Context())
	if err != nil {
		writeAppError(w, h.logger, err, http.StatusConflict)
		return
	}
	writeJSON(w, http.StatusOK, quizzes)
}

// Search handles GET /api/quizzes/search?term=
// @Summary Search quizzes by title, description or topic
// @Tags quizzes
// @Produce json
// @Param term query string false "Search term"
// @Success 200 {array} model.Quiz
// @Failure 500 {object} handler.ErrorBody "Server error"
// @Router /quizzes/search [get]
func (h *QuizHandler) Search(w http.ResponseWriter, r *http.Request) {
	quizzes, err := h.quizSvc.Search(r.Context(), r.URL.Query().Get("term"))
	if err != nil {
		writeAppError(w, h.logger, err, http.StatusConflict)
		return
	}
	writeJSON(w, http.StatusOK, quizzes)
}

// Get handles GET /api/quizzes/{id}
// @Summary Get a quiz
// @Tags quizzes
// @Produce json
// @Param id path string true "Quiz ID"
// @Success 200 {object} model.Quiz
// @Failure 404 {object} handler.ErrorBody "Quiz not found"
// @Failure 500 {object} handler.ErrorBody "Server error"
// @Router /quizzes/{id} [get]
func (h *QuizHandler) Get(w http.ResponseWriter, r *http.Request) {
	quiz, err := h.quizSvc.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeAppError(w, h.logger, err, http.StatusConflict)
		return
	}
	writeJSON(w, http.StatusOK, quiz)
}

// Create handles POST /api/quizzes
// @Summary Create a quiz
// @Tags quizzes
// @Accept json
// @Produce json
// @Param body body model.Quiz true "Request body"
// @Success 201 {object} model.Quiz
// @Failure 400 {object} handler.ErrorBody "Validation error"
// @Failure 500 {object} handler.ErrorBody "Server error"
// @Router /quizzes [post]
func (h *QuizHandler) Create(w http.ResponseWriter, r *http.Request) {
	var quiz model.Quiz
	if err := decodeBody(r, &quiz, false); err != nil {
		writeAppError(w, h.logger, err, http.StatusConflict)
		return
	}

	created, err := h.quizSvc.Create(r.Context(), &quiz)
	if err != nil {
		writeAppError(w, h.logger, err, http.StatusConflict)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// Update handles PUT /api/quizzes/{id}
// @Summary Replace a quiz
// @Tags quizzes
// @Accept json
// @Produce json
// @Param id path string true "Quiz ID"
// @Param body body model.Quiz true "Request body"
// @Success 200 {object} model.Quiz
// @Failure 400 {object} handler.ErrorBody "Validation error"
// @Failure 404 {object} handler.ErrorBody "Quiz not found"
// @Failure 500 {object} handler.ErrorBody "Server error"
// @Router /quizzes/{id} [put]
func (h *QuizHandler) Update(w http.ResponseWriter, r *http.Request) {
	var quiz model.Quiz
	if err := decodeBody(r, &quiz, false); err != nil {
		writeAppError(w, h.logger, err, http.StatusConflict)
		return
	}

	updated, err := h.quizSvc.Update(r.Context(), mux.Vars(r)["id"], &quiz)
	if err != nil {
		writeAppError(w, h.logger, err, http.StatusConflict)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// Patch handles PATCH /api/quizzes/{id}
// @Summary Update some fields of a quiz
// @Tags quizzes
// @Accept json
// @Produce json
// @Param id path string true "Quiz ID"
// @Param body body model.QuizPatch true "Request body"
// @Success 200 {object} model.Quiz
// @Failure 400 {object} handler.ErrorBody "Validation error"
// @Failure 404 {object} handler.ErrorBody "Quiz not found"
// @Failure 500 {object} handler.ErrorBody "Server error"
// @Router /quizzes/{id} [patch]
func (h *QuizHandler) Patch(w http.ResponseWriter, r *http.Request) {
	var patch model.QuizPatch
	if err := decodeBody(r, &patch, false); err != nil {
		writeAppError(w, h.logger, err, http.StatusConflict)
		return
	}

	updated, err := h.quizSvc.Patch(r.Context(), mux.Vars(r)["id"], &patch)
	if err != nil {
		writeAppError(w, h.logger, err, http.StatusConflict)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// Delete handles DELETE /api/quizzes/{id}
// @Summary Delete a quiz
// @Tags quizzes
// @Produce json
// @Param id path string true "Quiz ID"
// @Success 200 {object} handler.MessageBody
// @Failure 404 {object} handler.ErrorBody "Quiz not found"
// @Failure 500 {object} handler.ErrorBody "Server error"
// @Router /quizzes/{id} [delete]
func (h *QuizHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.quizSvc.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeAppError(w, h.logger, err, http.StatusConflict)
		return
	}
	writeJSON(w, http.StatusOK, MessageBody{Message: "Quiz deleted successfully"})
}
