package apperror

import "errors"

var (
	// ErrIllegalMove is a caller contract violation: a move was applied to an
	// occupied cell or to a cell outside the grid.
	ErrIllegalMove  = errors.New("illegal move")
	ErrInvalidBoard = errors.New("invalid board")

	ErrGameFinished = errors.New("game is already finished")
	ErrNotYourTurn  = errors.New("it's not your turn")
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrInvalidCell  = errors.New("invalid cell index")
	ErrInvalidMark  = errors.New("invalid mark")
	ErrGameNotFound = errors.New("game not found")
)
