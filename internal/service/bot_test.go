package service

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/metrics"
)

var (
	testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))
	testNow    = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
)

func TestBotService_MakeTurn(t *testing.T) {
	t.Run("Bot takes the win", func(t *testing.T) {
		// Given: the bot plays O and can complete the middle row
		game, err := entity.NewGame("1", entity.MarkX, testNow)
		require.NoError(t, err)
		game.Board = entity.Board{
			{entity.MarkX, entity.Empty, entity.Empty},
			{entity.MarkO, entity.MarkO, entity.Empty},
			{entity.Empty, entity.MarkX, entity.MarkX},
		}

		reg := prometheus.NewRegistry()
		bot := NewBotService(testLogger, metrics.New(reg))

		// When: the bot moves
		_, err = bot.MakeTurn(game)
		require.NoError(t, err)

		// Then: the game is won by O and the search was counted
		require.True(t, game.IsFinished())
		require.Equal(t, string(entity.MarkO), game.Winner)

		count, err := testutil.GatherAndCount(reg, "tictactoe_minimax_searches_total")
		require.NoError(t, err)
		require.Equal(t, 1, count)
	})

	t.Run("Not the bot's turn", func(t *testing.T) {
		game, err := entity.NewGame("1", entity.MarkX, testNow)
		require.NoError(t, err)

		bot := NewBotService(testLogger, metrics.New(prometheus.NewRegistry()))

		_, err = bot.MakeTurn(game)

		require.ErrorIs(t, err, ErrNotBotTurn)
		require.Equal(t, entity.InitialState(), game.Board)
	})
}
