// Package minimax computes optimal tic-tac-toe play by exhaustive search of
// the game tree. X maximizes the utility, O minimizes it.
//
// The search is plain minimax without pruning or memoization; the tree below
// the empty board has fewer than 550k nodes, so every call runs to completion
// quickly. All functions are pure and safe for concurrent use.
package minimax

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

// MaxValue is the best utility X can force from the board against optimal O.
func MaxValue(board entity.Board) int {
	if board.Terminal() {
		return board.Utility()
	}

	moves := board.Actions()
	best := MinValue(mustResult(board, moves[0]))
	for _, move := range moves[1:] {
		best = max(best, MinValue(mustResult(board, move)))
	}

	return best
}

// MinValue is the best utility O can force from the board against optimal X.
func MinValue(board entity.Board) int {
	if board.Terminal() {
		return board.Utility()
	}

	moves := board.Actions()
	best := MaxValue(mustResult(board, moves[0]))
	for _, move := range moves[1:] {
		best = min(best, MaxValue(mustResult(board, move)))
	}

	return best
}

// Value is the game-theoretic value of the board for whoever is to move.
func Value(board entity.Board) int {
	if board.Player() == entity.MarkX {
		return MaxValue(board)
	}

	return MinValue(board)
}

// Minimax returns an optimal move for the player to move. It reports false
// when the board is terminal and there is nothing to play.
//
// Among equally valued moves the first one in Actions order wins.
func Minimax(board entity.Board) (entity.Move, bool) {
	move, _, ok := Search(board)
	return move, ok
}

// Search is Minimax that also returns the value the chosen move attains.
func Search(board entity.Board) (entity.Move, int, bool) {
	if board.Terminal() {
		return entity.Move{}, 0, false
	}

	maximizing := board.Player() == entity.MarkX

	var (
		bestMove  entity.Move
		bestValue int
	)

	for i, move := range board.Actions() {
		next := mustResult(board, move)

		var value int
		if maximizing {
			value = MinValue(next)
		} else {
			value = MaxValue(next)
		}

		if i == 0 || (maximizing && value > bestValue) || (!maximizing && value < bestValue) {
			bestMove, bestValue = move, value
		}
	}

	return bestMove, bestValue, true
}

// mustResult applies a move taken from board.Actions. A failure means the
// board model broke its own contract, so it is not recoverable.
func mustResult(board entity.Board, move entity.Move) entity.Board {
	next, err := board.Result(move)
	if err != nil {
		panic(fmt.Errorf("minimax: move %s from %s: %w", move, board, err))
	}

	return next
}
