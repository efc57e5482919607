package handler

import (
	"net/http"
	"quizgame/internal/model"
	"quizgame/internal/service"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// GameHandler handles quiz game endpoints, including the live lifecycle
type GameHandler struct {
	gameSvc *service.GameService
	logger  *zap.Logger
}

// NewGameHandler creates a new game handler
func NewGameHandler(gameSvc *service.GameService, logger *zap.Logger) *GameHandler {
	return &GameHandler{
		gameSvc: gameSvc,
		logger:  logger,
	}
}

// List handles GET /api/quizgames
// @Summary List quiz games
// @Tags quizgames
// @Produce json
// @Success 200 {array} model.QuizGame
// @Failure 500 {object} handler.ErrorBody "Server error"
// @Router /quizgames [get]
func (h *GameHandler) List(w http.ResponseWriter, r *http.Request) {
	games, err := h.gameSvc.ListGames(r.Context())
	if err != nil {
		writeAppError(w, h.logger, err, http.StatusConflict)
		return
	}
	writeJSON(w, http.StatusOK, games)
}

// Search handles GET /api/quizgames/search?term=
// @Summary Search quiz games by title
// @Tags quizgames
// @Produce json
// @Param term query string false "Search term"
// @Success 200 {array} model.QuizGame
// @Failure 500 {object} handler.ErrorBody "Server error"
// @Router /quizgames/search [get]
func (h *GameHandler) Search(w http.ResponseWriter, r *http.Request) {
	games, err := h.gameSvc.SearchGames(r.Context(), r.URL.Query().Get("term"))
	if err != nil {
		writeAppError(w, h.logger, err, http.StatusConflict)
		return
	}
	writeJSON(w, http.StatusOK, games)
}

// Get handles GET /api/quizgames/{id}
// @Summary Get a quiz game with its quiz
// @Tags quizgames
// @Produce json
// @Param id path string true "Quiz game ID"
// @Success 200 {object} model.QuizGameView
// @Failure 404 {object} handler.ErrorBody "Quiz game not found"
// @Failure 500 {object} handler.ErrorBody "Server error"
// @Router /quizgames/{id} [get]
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	view, err := h.gameSvc.GetGame(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeAppError(w, h.logger, err, http.StatusConflict)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// Create handles POST /api/quizgames
// @Summary Create a quiz game from a quiz
// @Tags quizgames
// @Accept json
// @Produce json
// @Param body body handler.CreateGameRequest true "Request body"
// @Success 201 {object} model.QuizGame
// @Failure 400 {object} handler.ErrorBody "Validation error"
// @Failure 404 {object} handler.ErrorBody "Quiz not found"
// @Failure 500 {object} handler.ErrorBody "Server error"
// @Router /quizgames [post]
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateGameRequest
	if err := decodeBody(r, &req, false); err != nil {
		writeAppError(w, h.logger, err, http.StatusConflict)
		return
	}
	in, err := req.input()
	if err != nil {
		writeAppError(w, h.logger, err, http.StatusConflict)
		return
	}

	game, err := h.gameSvc.CreateGame(r.Context(), in)
	if err != nil {
		writeAppError(w, h.logger, err, http.StatusConflict)
		return
	}
	writeJSON(w, http.StatusCreated, game)
}

// Update handles PUT /api/quizgames/{id}
// @Summary Replace a quiz game
// @Tags quizgames
// @Accept json
// @Produce json
// @Param id path string true "Quiz game ID"
// @Param body body model.QuizGame true "Request body"
// @Success 200 {object} model.QuizGame
// @Failure 400 {object} handler.ErrorBody "Validation error"
// @Failure 404 {object} handler.ErrorBody "Quiz game not found"
// @Failure 409 {object} handler.ErrorBody "Questions are frozen once the game starts"
// @Failure 500 {object} handler.ErrorBody "Server error"
// @Router /quizgames/{id} [put]
func (h *GameHandler) Update(w http.ResponseWriter, r *http.Request) {
	var game model.QuizGame
	if err := decodeBody(r, &game, false); err != nil {
		writeAppError(w, h.logger, err, http.StatusConflict)
		return
	}
	if err := checkSchedule(game.GameScheduledStart, game.GameScheduledEnd); err != nil {
		writeAppError(w, h.logger, err, http.StatusConflict)
		return
	}

	updated, err := h.gameSvc.UpdateGame(r.Context(), mux.Vars(r)["id"], &game)
	if err != nil {
		writeAppError(w, h.logger, err, http.StatusConflict)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// Patch handles PATCH /api/quizgames/{id}
// @Summary Update some fields of a quiz game
// @Tags quizgames
// @Accept json
// @Produce json
// @Param id path string true "Quiz game ID"
// @Param body body model.QuizGamePatch true "Request body"
// @Success 200 {object} model.QuizGame
// @Failure 400 {object} handler.ErrorBody "Validation error"
// @Failure 404 {object} handler.ErrorBody "Quiz game not found"
// @Failure 409 {object} handler.ErrorBody "Questions are frozen once the game starts"
// @Failure 500 {object} handler.ErrorBody "Server error"
// @Router /quizgames/{id} [patch]
func (h *GameHandler) Patch(w http.ResponseWriter, r *http.Request) {
	var patch model.QuizGamePatch
	if err := decodeBody(r, &patch, false); err != nil {
		writeAppError(w, h.logger, err, http.StatusConflict)
		return
	}
	if err := checkSchedule(patch.GameScheduledStart, patch.GameScheduledEnd); err != nil {
		writeAppError(w, h.logger, err, http.StatusConflict)
		return
	}

	updated, err := h.gameSvc.PatchGame(r.Context(), mux.Vars(r)["id"], &patch)
	if err != nil {
		writeAppError(w, h.logger, err, http.StatusConflict)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// Delete handles DELETE /api/quizgames/{id}
// @Summary Delete a quiz game
// @Tags quizgames
// @Produce json
// @Param id path string true "Quiz game ID"
// @Success 200 {object} handler.MessageBody
// @Failure 404 {object} handler.ErrorBody "Quiz game not found"
// @Failure 500 {object} handler.ErrorBody "Server error"
// @Router /quizgames/{id} [delete]
func (h *GameHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.gameSvc.DeleteGame(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeAppError(w, h.logger, err, http.StatusConflict)
		return
	}
	writeJSON(w, http.StatusOK, MessageBody{Message: "Quiz game deleted successfully"})
}

// Start handles POST /api/quizgames/{id}/start
// @Summary Open the game
// @Tags quizgames
// @Produce json
// @Param id path string true "Quiz game ID"
// @Success 200 {object} model.QuizGame
// @Failure 404 {object} handler.ErrorBody "Quiz game not found"
// @Failure 409 {object} handler.ErrorBody "Game has ended"
// @Failure 500 {object} handler.ErrorBody "Server error"
// @Router /quizgames/{id}/start [post]
func (h *GameHandler) Start(w http.ResponseWriter, r *http.Request) {
	game, err := h.gameSvc.StartGame(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeAppError(w, h.logger, err, http.StatusConflict)
		return
	}
	writeJSON(w, http.StatusOK, game)
}

// End handles POST /api/quizgames/{id}/end
// @Summary End the game
// @Tags quizgames
// @Produce json
// @Param id path string true "Quiz game ID"
// @Success 200 {object} model.QuizGame
// @Failure 404 {object} handler.ErrorBody "Quiz game not found"
// @Failure 500 {object} handler.ErrorBody "Server error"
// @Router /quizgames/{id}/end [post]
func (h *GameHandler) End(w http.ResponseWriter, r *http.Request) {
	game, err := h.gameSvc.EndGame(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeAppError(w, h.logger, err, http.StatusConflict)
		return
	}
	writeJSON(w, http.StatusOK, game)
}

// StartQuestion handles POST /api/quizgames/{id}/question/{index}/start
// @Summary Open a question
// @Tags quizgames
// @Produce json
// @Param id path string true "Quiz game ID"
// @Param index path int true "Question index"
// @Success 200 {object} model.QuizGame
// @Failure 400 {object} handler.ErrorBody "Question index out of range"
// @Failure 404 {object} handler.ErrorBody "Quiz game not found"
// @Failure 409 {object} handler.ErrorBody "Game is not open"
// @Failure 500 {object} handler.ErrorBody "Server error"
// @Router /quizgames/{id}/question/{index}/start [post]
func (h *GameHandler) StartQuestion(w http.ResponseWriter, r *http.Request) {
	i, err := pathIndex(r, "index")
	if err != nil {
		writeAppError(w, h.logger, err, http.StatusConflict)
		return
	}

	game, err := h.gameSvc.StartQuestion(r.Context(), mux.Vars(r)["id"], i)
	if err != nil {
		writeAppError(w, h.logger, err, http.StatusConflict)
		return
	}
	writeJSON(w, http.StatusOK, game)
}

// EndQuestion handles POST /api/quizgames/{id}/question/{index}/end
// @Summary Close a question
// @Tags quizgames
// @Produce json
// @Param id path string true "Quiz game ID"
// @Param index path int true "Question index"
// @Success 200 {object} model.QuizGame
// @Failure 400 {object} handler.ErrorBody "Question index out of range"
// @Failure 404 {object} handler.ErrorBody "Quiz game not found"
// @Failure 500 {object} handler.ErrorBody "Server error"
// @Router /quizgames/{id}/question/{index}/end [post]
func (h *GameHandler) EndQuestion(w http.ResponseWriter, r *http.Request) {
	i, err := pathIndex(r, "index")
	if err != nil {
		writeAppError(w, h.logger, err, http.StatusConflict)
		return
	}

	game, err := h.gameSvc.EndQuestion(r.Context(), mux.Vars(r)["id"], i)
	if err != nil {
		writeAppError(w, h.logger, err, http.StatusConflict)
		return
	}
	writeJSON(w, http.StatusOK, game)
}
