package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shaqnxtgen/tic-tac-toe-web/internal/apperror"
	"github.com/shaqnxtgen/tic-tac-toe-web/internal/entity"
	"github.com/shaqnxtgen/tic-tac-toe-web/internal/repository"
	"github.com/shaqnxtgen/tic-tac-toe-web/internal/service"
)

type gamePlayService interface {
	StartGame(ctx context.Context, mode entity.Mode, difficulty entity.Difficulty) (*entity.Session, error)
	MakeMove(ctx context.Context, sessionID string, move entity.Move) (*service.TurnResult, error)
	GetGame(ctx context.Context, sessionID string) (*entity.Session, error)
}

type handlers struct {
	logger *slog.Logger

	gamePlayService gamePlayService
}

func newHandlers(logger *slog.Logger, gamePlayService gamePlayService) *handlers {
	return &handlers{
		logger:          logger,
		gamePlayService: gamePlayService,
	}
}

type newGameRequest struct {
	Mode       string `json:"mode"`
	Difficulty string `json:"difficulty"`
}

type makeMoveRequest struct {
	GameID string `json:"game_id"`
	Row    *int   `json:"row"`
	Col    *int   `json:"col"`
}

type gameResponse struct {
	GameID        string            `json:"game_id"`
	Mode          entity.Mode       `json:"mode"`
	Difficulty    entity.Difficulty `json:"difficulty,omitempty"`
	Board         [9]entity.Mark    `json:"board"`
	CurrentPlayer entity.Mark       `json:"current_player"`
	GameState     entity.Outcome    `json:"game_state"`
	AIMove        *entity.Move      `json:"ai_move,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func newGameResponse(session *entity.Session, aiMove *entity.Move) *gameResponse {
	return &gameResponse{
		GameID:        session.ID,
		Mode:          session.Mode,
		Difficulty:    session.Difficulty,
		Board:         session.Board.Grid,
		CurrentPlayer: session.Board.CurrentPlayer,
		GameState:     session.Board.Outcome(),
		AIMove:        aiMove,
	}
}

// NewGame - creates a game session; an empty body starts a local two-player
// game.
func (that *handlers) NewGame(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "NewGame")

	var payloadReq newGameRequest
	if err := json.NewDecoder(r.Body).Decode(&payloadReq); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	mode := entity.Mode(payloadReq.Mode)
	if mode == "" {
		mode = entity.ModeHuman
	}

	if !mode.IsValid() {
		writeError(w, http.StatusBadRequest, "invalid mode")
		return
	}

	difficulty := entity.Difficulty(payloadReq.Difficulty)
	if mode == entity.ModeAI {
		if difficulty == "" {
			difficulty = entity.DifficultyEasy
		}

		if !difficulty.IsValid() {
			writeError(w, http.StatusBadRequest, "invalid difficulty")
			return
		}
	} else {
		difficulty = ""
	}

	session, err := that.gamePlayService.StartGame(r.Context(), mode, difficulty)
	if err != nil {
		log.Error("failed to start game", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to start game")

		return
	}

	writeJSON(w, http.StatusOK, newGameResponse(session, nil))
}

// MakeMove - applies the caller's move and reports the resulting state,
// including the computer's reply in AI sessions.
func (that *handlers) MakeMove(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "MakeMove")

	var payloadReq makeMoveRequest
	if err := json.NewDecoder(r.Body).Decode(&payloadReq); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if payloadReq.GameID == "" {
		writeError(w, http.StatusBadRequest, "game_id is required")
		return
	}

	if payloadReq.Row == nil || payloadReq.Col == nil {
		writeError(w, http.StatusBadRequest, "row and col are required")
		return
	}

	move := entity.Move{Row: *payloadReq.Row, Col: *payloadReq.Col}

	result, err := that.gamePlayService.MakeMove(r.Context(), payloadReq.GameID, move)
	if errors.Is(err, repository.ErrSessionNotFound) {
		writeError(w, http.StatusNotFound, "game not found")
		return
	}

	if errors.Is(err, apperror.ErrInvalidMove) {
		writeError(w, http.StatusBadRequest, "invalid move")
		return
	}

	if errors.Is(err, apperror.ErrGameFinished) {
		writeError(w, http.StatusConflict, "game is already finished")
		return
	}

	if err != nil {
		log.Error("failed to make move", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to make move")

		return
	}

	writeJSON(w, http.StatusOK, newGameResponse(result.Session, result.AIMove))
}

// GetGame - returns the current state of a stored session.
func (that *handlers) GetGame(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "GetGame")

	gameID := chi.URLParam(r, "gameID")

	session, err := that.gamePlayService.GetGame(r.Context(), gameID)
	if errors.Is(err, repository.ErrSessionNotFound) {
		writeError(w, http.StatusNotFound, "game not found")
		return
	}

	if err != nil {
		log.Error("failed to get game", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to get game")

		return
	}

	writeJSON(w, http.StatusOK, newGameResponse(session, nil))
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
