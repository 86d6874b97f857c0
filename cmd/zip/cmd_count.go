package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var countLimitFlag int

var countCmd = &cobra.Command{
	Use:   "count FILE",
	Short: "Count solutions (early stop at --limit)",
	Args:  cobra.ExactArgs(1),
	RunE:  runCount,
}

func init() {
	countCmd.Flags().IntVar(&countLimitFlag, "limit", 2, "stop after this many solutions (0 = count all)")
}

func runCount(cmd *cobra.Command, args []string) error {
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
	n, stats, err := s.CountSolutions(ctx, b, countLimitFlag)
	logger.Info("count finished",
		zap.Int("count", n),
		zap.Int("nodes", stats.Nodes),
		zap.Duration("dur", stats.Duration),
	)
	if err != nil {
		return fmt.Errorf("count stopped early at %d: %w", n, err)
	}
	if countLimitFlag > 0 && n >= countLimitFlag {
		fmt.Fprintf(cmd.OutOrStdout(), "at least %d solutions\n", n)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "%d solution(s)\n", n)
	}
	return nil
}
