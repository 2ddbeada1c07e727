package minimax

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

const (
	x = entity.MarkX
	o = entity.MarkO
	e = entity.Empty
)

func TestMinimax_TerminalBoard(t *testing.T) {
	t.Run("Won board", func(t *testing.T) {
		// Given: X already holds the top row
		board := entity.Board{{x, x, x}, {o, o, e}, {e, e, e}}

		// When: asking for a move
		_, ok := Minimax(board)

		// Then: there is nothing to play
		require.False(t, ok)
	})

	t.Run("Full board", func(t *testing.T) {
		board := entity.Board{{x, o, x}, {x, o, o}, {o, x, x}}

		_, ok := Minimax(board)

		require.False(t, ok)
		require.Equal(t, 0, MaxValue(board))
		require.Equal(t, 0, MinValue(board))
	})
}

func TestMinimax_InitialState(t *testing.T) {
	// When: searching the empty board
	move, value, ok := Search(entity.InitialState())

	// Then: X gets a move and perfect play is a draw
	require.True(t, ok)
	require.True(t, move.InBounds())
	require.Equal(t, 0, value)
	require.Equal(t, 0, Value(entity.InitialState()))
}

func TestMinimax_TakesTheWin(t *testing.T) {
	// Given: X can complete the main diagonal, any other move only draws
	board := entity.Board{
		{x, o, e},
		{x, x, o},
		{o, e, e},
	}
	require.Equal(t, x, board.Player())

	// When: X searches
	move, value, ok := Search(board)

	// Then: the winning corner is played
	require.True(t, ok)
	require.Equal(t, entity.Move{Row: 2, Col: 2}, move)
	require.Equal(t, 1, value)
}

func TestMinimax_BlocksTheThreat(t *testing.T) {
	// Given: X threatens the top row and O has the center
	board := entity.Board{
		{x, x, e},
		{e, o, e},
		{e, e, e},
	}
	require.Equal(t, o, board.Player())

	// When: O searches
	move, value, ok := Search(board)

	// Then: O blocks and holds the draw
	require.True(t, ok)
	require.Equal(t, entity.Move{Row: 0, Col: 2}, move)
	require.Equal(t, 0, value)
}

func TestMinimax_OWinsWhenItCan(t *testing.T) {
	// Given: O holds two of the middle row and X threatens the top row
	board := entity.Board{
		{x, x, e},
		{o, o, e},
		{e, e, x},
	}
	require.Equal(t, o, board.Player())

	// When: O searches
	move, value, ok := Search(board)
	require.True(t, ok)

	// Then: the chosen move keeps the forced win for O
	next, err := board.Result(move)
	require.NoError(t, err)
	require.Equal(t, -1, value)
	require.Equal(t, -1, MaxValue(next))
}

func TestMinimax_FirstBestMoveWins(t *testing.T) {
	// Given: every opening move of X draws under perfect play
	board := entity.InitialState()

	// When: X searches
	move, ok := Minimax(board)

	// Then: the first move in Actions order is kept
	require.True(t, ok)
	require.Equal(t, board.Actions()[0], move)
}

func TestMinimax_SelfPlayDraws(t *testing.T) {
	// Given: both players follow minimax from the empty board
	board := entity.InitialState()

	for !board.Terminal() {
		move, ok := Minimax(board)
		require.True(t, ok)

		var err error
		board, err = board.Result(move)
		require.NoError(t, err)
	}

	// Then: the game is a draw
	require.Equal(t, entity.Draw, board.Outcome())
}

func TestMinimax_XNeverLoses(t *testing.T) {
	// Given: X follows minimax and O tries every reply
	var explore func(board entity.Board)
	explore = func(board entity.Board) {
		if board.Terminal() {
			// Then: no line of play ends with O winning
			require.GreaterOrEqual(t, board.Utility(), 0, "board %s", board)
			return
		}

		if board.Player() == x {
			move, ok := Minimax(board)
			require.True(t, ok)
			explore(result(t, board, move))
			return
		}

		for _, move := range board.Actions() {
			explore(result(t, board, move))
		}
	}

	explore(entity.InitialState())
}

func TestMinimax_ONeverLoses(t *testing.T) {
	// Given: O follows minimax and X tries every move
	var explore func(board entity.Board)
	explore = func(board entity.Board) {
		if board.Terminal() {
			// Then: no line of play ends with X winning
			require.LessOrEqual(t, board.Utility(), 0, "board %s", board)
			return
		}

		if board.Player() == o {
			move, ok := Minimax(board)
			require.True(t, ok)
			explore(result(t, board, move))
			return
		}

		for _, move := range board.Actions() {
			explore(result(t, board, move))
		}
	}

	explore(entity.InitialState())
}

func TestSearch_ValueMatchesMoveValue(t *testing.T) {
	// Given: a position after two moves of each side
	board := entity.Board{
		{x, e, o},
		{e, x, e},
		{e, e, o},
	}

	// When: searching
	move, value, ok := Search(board)
	require.True(t, ok)

	// Then: the reported value is the value of the position and of the move
	require.Equal(t, Value(board), value)
	require.Equal(t, value, MinValue(result(t, board, move)))

	for _, other := range board.Actions() {
		require.LessOrEqual(t, MinValue(result(t, board, other)), value)
	}
}

func TestMinimax_Concurrent(t *testing.T) {
	// Given: one board shared by many goroutines
	board := entity.Board{{e, e, e}, {e, x, e}, {e, e, e}}
	expected, ok := Minimax(board)
	require.True(t, ok)

	const workers = 8
	moves := make([]entity.Move, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			moves[i], _ = Minimax(board)
		}()
	}
	wg.Wait()

	// Then: every search returns the same move and the board is untouched
	for _, move := range moves {
		require.Equal(t, expected, move)
	}
	require.Equal(t, entity.Board{{e, e, e}, {e, x, e}, {e, e, e}}, board)
}

func result(t *testing.T, board entity.Board, move entity.Move) entity.Board {
	t.Helper()

	next, err := board.Result(move)
	require.NoError(t, err)

	return next
}
