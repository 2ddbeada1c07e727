package service

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/minimax"
)

var (
	ErrNotBotTurn       = errors.New("it's not the bot's turn")
	ErrNoAvailableMoves = errors.New("no available moves")
)

type BotService interface {
	MakeTurn(game *entity.Game) (entity.Move, error)
}

type searchObserver interface {
	ObserveSearch(player entity.Cell, elapsed time.Duration)
}

type botService struct {
	logger  *slog.Logger
	metrics searchObserver
}

// NewBotService returns a player that always answers with the minimax move.
func NewBotService(logger *slog.Logger, metrics searchObserver) BotService {
	return &botService{
		logger:  logger.With("component", "bot"),
		metrics: metrics,
	}
}

func (that *botService) MakeTurn(game *entity.Game) (entity.Move, error) {
	if !game.IsBotTurn() {
		return entity.Move{}, ErrNotBotTurn
	}

	start := time.Now()
	move, ok := minimax.Minimax(game.Board)
	elapsed := time.Since(start)
	that.metrics.ObserveSearch(game.BotMark, elapsed)

	if !ok {
		return entity.Move{}, ErrNoAvailableMoves
	}

	if err := game.Play(game.BotMark, move); err != nil {
		return entity.Move{}, fmt.Errorf("bot failed to make turn: %w", err)
	}

	that.logger.Debug("bot played", "game_id", game.ID, "move", move.String(), "elapsed", elapsed)

	return move, nil
}
