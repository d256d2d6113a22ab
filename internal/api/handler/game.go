package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"langman/internal/api/middleware"
	"langman/internal/api/request"
	"langman/internal/api/response"
	"langman/internal/model"
	"langman/internal/services/game"
)

// GameHandler handles game endpoints
type GameHandler struct {
	gameService *game.Service
}

// NewGameHandler creates a new game handler
func NewGameHandler(gameService *game.Service) *GameHandler {
	return &GameHandler{
		gameService: gameService,
	}
}

// Create handles POST /api/games
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity := middleware.MustGetIdentity(r.Context())

	var req request.CreateGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.Language == "" {
		WriteError(w, NewInvalidRequestError("language is required"))
		return
	}

	created, err := h.gameService.Create(r.Context(), identity, model.Language(req.Language))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.CreateGameResponse{
		Message:     "success",
		GameID:      string(created.GameID),
		AccessToken: created.AccessToken,
	})
}

// Get handles GET /api/games/{game_id}
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	identity := middleware.MustGetIdentity(r.Context())
	gameID := model.GameID(mux.Vars(r)["game_id"])

	view, err := h.gameService.Get(r.Context(), identity, gameID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameResponseFromView(view, identity.Name))
}

// Guess handles PUT /api/games/{game_id}
func (h *GameHandler) Guess(w http.ResponseWriter, r *http.Request) {
	identity := middleware.MustGetIdentity(r.Context())
	gameID := model.GameID(mux.Vars(r)["game_id"])

	var req request.GuessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	view, err := h.gameService.Guess(r.Context(), identity, gameID, req.Letter)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameResponseFromView(view, identity.Name))
}

// Delete handles DELETE /api/games/{game_id}
func (h *GameHandler) Delete(w http.ResponseWriter, r *http.Request) {
	identity := middleware.MustGetIdentity(r.Context())
	gameID := model.GameID(mux.Vars(r)["game_id"])

	deleted, err := h.gameService.Delete(r.Context(), identity, gameID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.DeleteGameResponseFor(deleted))
}
