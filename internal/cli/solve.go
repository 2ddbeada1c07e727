package cli

import (
	"encoding/json"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/metrics"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/service"
)

const (
	outputJSON = "json"
	outputYAML = "yaml"
)

func newSolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve <board>",
		Short: "Print the optimal move for a board",
		Long: `Analyzes a board given as nine characters in row-major order,
using X, O and '.' for an empty cell. For example: tictactoe solve "XO.XXOO.."`,
		Example: `  tictactoe solve .........
  tictactoe solve XO.XXOO.. --output yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output, err := cmd.Flags().GetString("output")
			if err != nil {
				return fmt.Errorf("failed to read output flag: %w", err)
			}

			if output != outputJSON && output != outputYAML {
				return fmt.Errorf("unknown output format %q", output)
			}

			board, err := entity.ParseBoard(args[0])
			if err != nil {
				return fmt.Errorf("failed to parse board: %w", err)
			}

			analysisService := service.NewAnalysisService(metrics.New(prometheus.NewRegistry()))

			analysis, err := analysisService.Analyze(cmd.Context(), board)
			if err != nil {
				return fmt.Errorf("failed to analyze board: %w", err)
			}

			return writeAnalysis(cmd, output, analysis)
		},
	}

	cmd.Flags().StringP("output", "o", outputJSON, "Output format: json or yaml")

	return cmd
}

func writeAnalysis(cmd *cobra.Command, output string, analysis *service.Analysis) error {
	if output == outputYAML {
		encoder := yaml.NewEncoder(cmd.OutOrStdout())
		defer encoder.Close()

		if err := encoder.Encode(analysis); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}

		return nil
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(analysis); err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}

	return nil
}
