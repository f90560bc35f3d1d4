package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shaqnxtgen/tic-tac-toe-web/internal/ai"
	"github.com/shaqnxtgen/tic-tac-toe-web/internal/apperror"
	"github.com/shaqnxtgen/tic-tac-toe-web/internal/entity"
)

// TurnResult carries the session state after a move, together with the
// computer's reply when one was played.
type TurnResult struct {
	Session *entity.Session
	AIMove  *entity.Move
}

type GamePlayService interface {
	StartGame(ctx context.Context, mode entity.Mode, difficulty entity.Difficulty) (*entity.Session, error)
	MakeMove(ctx context.Context, sessionID string, move entity.Move) (*TurnResult, error)
	GetGame(ctx context.Context, sessionID string) (*entity.Session, error)
}

type gamePlayService struct {
	logger *slog.Logger

	sessionService SessionService
}

func NewGamePlayService(logger *slog.Logger, sessionService SessionService) GamePlayService {
	return &gamePlayService{
		logger:         logger,
		sessionService: sessionService,
	}
}

func (that *gamePlayService) StartGame(ctx context.Context, mode entity.Mode, difficulty entity.Difficulty) (*entity.Session, error) {
	session, err := that.sessionService.CreateSession(ctx, mode, difficulty)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return session, nil
}

func (that *gamePlayService) GetGame(ctx context.Context, sessionID string) (*entity.Session, error) {
	session, err := that.sessionService.GetSessionByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session by id: %w", err)
	}

	return session, nil
}

// MakeMove applies the caller's move and, in an AI session, answers it with
// the computer's move for O before persisting.
func (that *gamePlayService) MakeMove(ctx context.Context, sessionID string, move entity.Move) (*TurnResult, error) {
	session, err := that.sessionService.GetSessionByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session by id: %w", err)
	}

	if session.Board.Outcome().IsTerminal() {
		return nil, apperror.ErrGameFinished
	}

	if !session.Board.ApplyMove(move.Row, move.Col) {
		return nil, apperror.ErrInvalidMove
	}

	result := &TurnResult{Session: session}

	if session.WithAI() && !session.Board.Outcome().IsTerminal() && session.Board.CurrentPlayer == entity.MarkO {
		botPlayer := ai.NewPlayer(session.Difficulty, entity.MarkO)

		if reply, ok := botPlayer.ChooseMove(session.Board); ok {
			session.Board.ApplyMove(reply.Row, reply.Col)
			result.AIMove = &reply
		}
	}

	if err = that.sessionService.UpdateSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}

	if session.Board.Outcome().IsTerminal() {
		that.cleanupSession(ctx, session)
	}

	return result, nil
}

// cleanupSession drops a finished session from storage. Deletion is best
// effort: on failure the session stays stored until its TTL expires.
func (that *gamePlayService) cleanupSession(ctx context.Context, session *entity.Session) {
	log := that.logger.With("method", "cleanupSession", "sessionID", session.ID)

	if err := that.sessionService.DeleteSession(ctx, session.ID); err != nil {
		log.Error("failed to delete session", "error", err)
	}
}
