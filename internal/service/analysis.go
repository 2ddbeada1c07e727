package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/minimax"
)

// Analysis describes a position and the optimal reply for the player to move.
type Analysis struct {
	Board    entity.Board   `json:"board" yaml:"board"`
	Player   entity.Cell    `json:"player" yaml:"player"`
	Outcome  entity.Outcome `json:"outcome" yaml:"outcome"`
	Terminal bool           `json:"terminal" yaml:"terminal"`
	Utility  *int           `json:"utility,omitempty" yaml:"utility,omitempty"`
	Value    int            `json:"value" yaml:"value"`
	Move     *entity.Move   `json:"move,omitempty" yaml:"move,omitempty"`
}

type AnalysisService interface {
	Analyze(ctx context.Context, board entity.Board) (*Analysis, error)
}

type analysisService struct {
	metrics searchObserver
}

func NewAnalysisService(metrics searchObserver) AnalysisService {
	return &analysisService{
		metrics: metrics,
	}
}

func (that *analysisService) Analyze(ctx context.Context, board entity.Board) (*Analysis, error) {
	if err := board.Validate(); err != nil {
		return nil, fmt.Errorf("failed to validate board: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("analysis canceled: %w", err)
	}

	analysis := &Analysis{
		Board:    board,
		Player:   board.Player(),
		Outcome:  board.Outcome(),
		Terminal: board.Terminal(),
	}

	if analysis.Terminal {
		utility := board.Utility()
		analysis.Utility = &utility
		analysis.Value = utility

		return analysis, nil
	}

	start := time.Now()
	move, value, _ := minimax.Search(board)
	that.metrics.ObserveSearch(analysis.Player, time.Since(start))

	analysis.Value = value
	analysis.Move = &move

	return analysis, nil
}
