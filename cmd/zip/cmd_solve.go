package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"svw.info/zip/internal/ports"
	"svw.info/zip/internal/render"
)

var solvePathFlag []string

var solveCmd = &cobra.Command{
	Use:   "solve FILE",
	Short: "Solve a board file and print the path",
	Args:  cobra.ExactArgs(1),
	RunE:  runSolve,
}

func init() {
	solveCmd.Flags().StringArrayVar(&solvePathFlag, "path", nil, "seed partial path as repeated row,col")
}

func runSolve(cmd *cobra.Command, args []string) error {
	b, err := loadBoardFile(args[0])
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if cfg.Solver.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Solver.Timeout.Std())
		defer cancel()
	}

	s := newSolver(cfg.Solver)
	var (
		res   ports.Result
		stats ports.Stats
	)
	if len(solvePathFlag) > 0 {
		prefix, err := parseCoords(solvePathFlag)
		if err != nil {
			return err
		}
		res, stats, err = s.SolveFrom(ctx, b, prefix)
		if err != nil {
			return err
		}
	} else {
		res, stats = s.Solve(ctx, b)
	}

	logger.Info("search finished",
		zap.String("outcome", res.Outcome.String()),
		zap.Int("nodes", stats.Nodes),
		zap.Duration("dur", stats.Duration),
	)

	switch res.Outcome {
	case ports.Solved:
		fmt.Fprint(cmd.OutOrStdout(), render.Path(b, res.Path))
		return nil
	case ports.Cancelled:
		return fmt.Errorf("search cancelled after %d nodes", stats.Nodes)
	default:
		return fmt.Errorf("unsolvable (searched %d nodes)", stats.Nodes)
	}
}
