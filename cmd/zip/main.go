package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"svw.info/zip/internal/config"
)

var (
	cfgPath    string
	engineFlag string
	levelFlag  string

	cfg    config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "zip",
	Short: "Zip grid-path puzzle solver",
	Long: `zip solves Zip puzzles: a path through an NxM grid that visits every
cell exactly once, passing through the numbered clue cells in increasing
order, starting at clue 1 and ending at the highest clue.

Board files are either whitespace text grids ("." = empty, decimal = clue)
or JSON ({"grid": [[...]]} or a bare matrix).`,
	SilenceUsage:      true,
	PersistentPreRunE: initRoot,
}

func initRoot(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgPath)
	if err != nil {
		return err
	}
	if engineFlag != "" {
		cfg.Solver.Engine = engineFlag
	}
	if levelFlag != "" {
		cfg.Logging.Level = levelFlag
	}
	logger, err = buildLogger(cfg.Logging)
	return err
}

func buildLogger(lc config.LoggingConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(lc.Level)
	if err != nil {
		return nil, fmt.Errorf("bad log level %q: %w", lc.Level, err)
	}
	var zc zap.Config
	if lc.JSON {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to YAML config file")
	rootCmd.PersistentFlags().StringVar(&engineFlag, "engine", "", "solver engine: recursive|iterative (overrides config)")
	rootCmd.PersistentFlags().StringVar(&levelFlag, "log-level", "", "debug|info|warn|error (overrides config)")

	rootCmd.AddCommand(serveCmd, solveCmd, movesCmd, checkCmd, countCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
