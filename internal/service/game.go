package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

type GameService interface {
	CreateGame(ctx context.Context, humanMark entity.Cell) (*entity.Game, error)
	GetGame(ctx context.Context, id string) (*entity.Game, error)
	MakeTurn(ctx context.Context, id string, move entity.Move) (*entity.Game, error)
	DeleteGame(ctx context.Context, id string) error
}

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type gameObserver interface {
	GameFinished(outcome entity.Outcome)
}

type gameService struct {
	logger *slog.Logger

	gameRepo   gameRepo
	botService BotService
	metrics    gameObserver

	now func() time.Time
}

func NewGameService(logger *slog.Logger, gameRepo gameRepo, botService BotService, metrics gameObserver) GameService {
	return &gameService{
		logger:     logger.With("component", "game"),
		gameRepo:   gameRepo,
		botService: botService,
		metrics:    metrics,
		now:        time.Now,
	}
}

// CreateGame starts a game for a caller playing humanMark. When the caller
// plays O the bot opens as X right away.
func (that *gameService) CreateGame(ctx context.Context, humanMark entity.Cell) (*entity.Game, error) {
	game, err := entity.NewGame(uuid.NewString(), humanMark, that.now())
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	if game.IsBotTurn() {
		if _, err = that.botService.MakeTurn(game); err != nil {
			return nil, fmt.Errorf("bot failed to open: %w", err)
		}
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}

	that.logger.Info("game created", "game_id", game.ID, "human_mark", humanMark)

	return game, nil
}

func (that *gameService) GetGame(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve game from storage: %w", err)
	}

	return game, nil
}

// MakeTurn plays the caller's move and, unless that ended the game, the bot's reply.
func (that *gameService) MakeTurn(ctx context.Context, id string, move entity.Move) (*entity.Game, error) {
	game, err := that.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}

	if err = game.Play(game.HumanMark, move); err != nil {
		return game, fmt.Errorf("failed to make turn: %w", err)
	}

	if game.IsBotTurn() {
		if _, err = that.botService.MakeTurn(game); err != nil {
			return nil, fmt.Errorf("bot failed to make turn: %w", err)
		}
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	if game.IsFinished() {
		outcome := game.Board.Outcome()
		that.metrics.GameFinished(outcome)
		that.logger.Info("game finished", "game_id", game.ID, "outcome", outcome)
	}

	return game, nil
}

func (that *gameService) DeleteGame(ctx context.Context, id string) error {
	if err := that.gameRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	return nil
}
