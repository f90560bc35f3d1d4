package apperror

import "errors"

var (
	ErrGameFinished = errors.New("game is already finished")
	ErrInvalidMove  = errors.New("invalid move")
)
