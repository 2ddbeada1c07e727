package entity

import (
	"fmt"
	"time"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"

	// WinnerTie is stored as the winner of a drawn game.
	WinnerTie = "-"
)

// Game is a persisted match between a caller and the engine. Whose turn it is
// is never stored; it is always Board.Player().
type Game struct {
	ID        string    `json:"id"`
	Board     Board     `json:"board"`
	HumanMark Cell      `json:"human_mark"`
	BotMark   Cell      `json:"bot_mark"`
	Status    string    `json:"status"`
	Winner    string    `json:"winner,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func NewGame(id string, humanMark Cell, now time.Time) (*Game, error) {
	if !humanMark.IsMark() {
		return nil, fmt.Errorf("%w: %q", apperror.ErrInvalidMark, humanMark)
	}

	game := &Game{
		ID:        id,
		Board:     InitialState(),
		HumanMark: humanMark,
		BotMark:   humanMark.Opponent(),
		CreatedAt: now.UTC(),
	}
	game.UpdateGameState()

	return game, nil
}

// UpdateGameState refreshes the derived status fields from the board.
func (that *Game) UpdateGameState() {
	switch outcome := that.Board.Outcome(); outcome {
	// one player wins
	case XWins, OWins:
		winner, _ := that.Board.Winner()
		that.Winner = string(winner)
		that.Status = StatusFinished
	// tie
	case Draw:
		that.Winner = WinnerTie
		that.Status = StatusFinished
	// game continue
	default:
		that.Winner = ""
		that.Status = StatusOngoing
	}
}

// Play applies the mover's mark on the addressed cell. It reports user errors
// (finished game, wrong turn, bad or occupied cell) before touching the board.
func (that *Game) Play(mark Cell, move Move) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if that.Board.Player() != mark {
		return apperror.ErrNotYourTurn
	}

	if !move.InBounds() {
		return fmt.Errorf("%w: %s", apperror.ErrInvalidCell, move)
	}

	if that.Board.At(move) != Empty {
		return fmt.Errorf("%w: %s", apperror.ErrCellOccupied, move)
	}

	next, err := that.Board.Result(move)
	if err != nil {
		return fmt.Errorf("failed to apply move: %w", err)
	}

	that.Board = next
	that.UpdateGameState()

	return nil
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

// IsBotTurn reports whether the engine is the one to move.
func (that *Game) IsBotTurn() bool {
	return that.IsOngoing() && that.Board.Player() == that.BotMark
}
