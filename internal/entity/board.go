package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

// Cell is the content of a single square. A non-empty Cell doubles as the
// player who owns the mark.
type Cell string

const (
	Empty Cell = ""
	MarkX Cell = "X"
	MarkO Cell = "O"
)

// Size is the width and height of the grid.
const Size = 3

// Opponent returns the other mark. Empty has no opponent.
func (that Cell) Opponent() Cell {
	switch that {
	case MarkX:
		return MarkO
	case MarkO:
		return MarkX
	default:
		return Empty
	}
}

// IsMark reports whether the cell holds X or O.
func (that Cell) IsMark() bool {
	return that == MarkX || that == MarkO
}

// Move addresses one cell of the grid.
type Move struct {
	Row int `json:"row" yaml:"row"`
	Col int `json:"col" yaml:"col"`
}

func (that Move) InBounds() bool {
	return that.Row >= 0 && that.Row < Size && that.Col >= 0 && that.Col < Size
}

func (that Move) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
}

// Outcome is derived from a board and never stored on it.
type Outcome string

const (
	InProgress Outcome = "in_progress"
	XWins      Outcome = "x_wins"
	OWins      Outcome = "o_wins"
	Draw       Outcome = "draw"
)

// Lines are the rows, columns and diagonals that win when fully marked by one player.
var Lines = [8][3]Move{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Board is an immutable 3x3 grid. It is an array, so every assignment copies
// it and no two boards ever share storage.
type Board [Size][Size]Cell

// InitialState returns the empty board.
func InitialState() Board {
	return Board{}
}

// At returns the content of the addressed cell.
func (that Board) At(move Move) Cell {
	return that[move.Row][move.Col]
}

func (that Board) counts() (int, int) {
	var xCount, oCount int
	for _, row := range that {
		for _, cell := range row {
			switch cell {
			case MarkX:
				xCount++
			case MarkO:
				oCount++
			}
		}
	}

	return xCount, oCount
}

// Player returns the mark that moves next. X moves first and turns alternate,
// so the mover is derived from the mark counts alone.
func (that Board) Player() Cell {
	xCount, oCount := that.counts()
	if xCount == 0 && oCount == 0 {
		return MarkX
	}

	if xCount > oCount {
		return MarkO
	}

	return MarkX
}

// Actions returns every empty cell in row-major order. An empty slice means the board is full.
func (that Board) Actions() []Move {
	moves := make([]Move, 0, Size*Size)
	for i, row := range that {
		for j, cell := range row {
			if cell == Empty {
				moves = append(moves, Move{Row: i, Col: j})
			}
		}
	}

	return moves
}

// Result returns a new board with the mover's mark placed on the addressed cell.
// The receiver is left untouched.
func (that Board) Result(move Move) (Board, error) {
	if !move.InBounds() {
		return Board{}, fmt.Errorf("%w: %s is outside the board", apperror.ErrIllegalMove, move)
	}

	if cell := that.At(move); cell != Empty {
		return Board{}, fmt.Errorf("%w: %s is occupied by %s", apperror.ErrIllegalMove, move, cell)
	}

	next := that
	next[move.Row][move.Col] = that.Player()

	return next, nil
}

// Winner returns the mark holding a complete line, if any.
func (that Board) Winner() (Cell, bool) {
	for _, line := range Lines {
		a, b, c := that.At(line[0]), that.At(line[1]), that.At(line[2])
		if a != Empty && a == b && b == c {
			return a, true
		}
	}

	return Empty, false
}

// Full reports whether no empty cell remains.
func (that Board) Full() bool {
	for _, row := range that {
		for _, cell := range row {
			if cell == Empty {
				return false
			}
		}
	}

	return true
}

// Terminal reports whether the game is over: somebody won or the board is full.
func (that Board) Terminal() bool {
	if _, ok := that.Winner(); ok {
		return true
	}

	return that.Full()
}

// Utility scores a terminal board: 1 when X won, -1 when O won, 0 for a draw.
// It panics on a non-terminal board; callers check Terminal first.
func (that Board) Utility() int {
	if !that.Terminal() {
		panic(fmt.Sprintf("utility of non-terminal board %s", that))
	}

	winner, _ := that.Winner()
	switch winner {
	case MarkX:
		return 1
	case MarkO:
		return -1
	default:
		return 0
	}
}

// Outcome classifies the board.
func (that Board) Outcome() Outcome {
	if winner, ok := that.Winner(); ok {
		if winner == MarkX {
			return XWins
		}
		return OWins
	}

	if that.Full() {
		return Draw
	}

	return InProgress
}

// Validate checks that the board can be reached by legal play: X never trails
// O, X never leads by more than one, and at most one player holds a line.
func (that Board) Validate() error {
	xCount, oCount := that.counts()
	if xCount < oCount || xCount > oCount+1 {
		return fmt.Errorf("%w: %d X marks and %d O marks", apperror.ErrInvalidBoard, xCount, oCount)
	}

	var xLine, oLine bool
	for _, line := range Lines {
		a, b, c := that.At(line[0]), that.At(line[1]), that.At(line[2])
		if a != Empty && a == b && b == c {
			xLine = xLine || a == MarkX
			oLine = oLine || a == MarkO
		}
	}

	if xLine && oLine {
		return fmt.Errorf("%w: both players hold a line", apperror.ErrInvalidBoard)
	}

	return nil
}

// String renders the board row-major, one character per cell, '.' for empty.
func (that Board) String() string {
	var sb strings.Builder
	sb.Grow(Size * Size)

	for _, row := range that {
		for _, cell := range row {
			if cell == Empty {
				sb.WriteByte('.')
				continue
			}
			sb.WriteString(string(cell))
		}
	}

	return sb.String()
}

// ParseBoard reads the notation produced by String. '.', '-' and '_' mark
// empty cells and marks are case-insensitive. The result is validated.
func ParseBoard(notation string) (Board, error) {
	var board Board

	if len(notation) != Size*Size {
		return board, fmt.Errorf("%w: expected %d cells, got %d", apperror.ErrInvalidBoard, Size*Size, len(notation))
	}

	for i, ch := range []byte(notation) {
		var cell Cell
		switch ch {
		case '.', '-', '_':
			cell = Empty
		case 'x', 'X':
			cell = MarkX
		case 'o', 'O':
			cell = MarkO
		default:
			return Board{}, fmt.Errorf("%w: unexpected character %q at %d", apperror.ErrInvalidBoard, ch, i)
		}
		board[i/Size][i%Size] = cell
	}

	if err := board.Validate(); err != nil {
		return Board{}, err
	}

	return board, nil
}

func (that Board) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Board) UnmarshalText(text []byte) error {
	board, err := ParseBoard(string(text))
	if err != nil {
		return err
	}

	*that = board

	return nil
}
