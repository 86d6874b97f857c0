package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"svw.info/zip/internal/hint"
)

var movesPathFlag []string

var movesCmd = &cobra.Command{
	Use:   "moves FILE",
	Short: "List legal next moves from a partial path",
	Args:  cobra.ExactArgs(1),
	RunE:  runMoves,
}

func init() {
	movesCmd.Flags().StringArrayVar(&movesPathFlag, "path", nil, "partial path as repeated row,col")
}

func runMoves(cmd *cobra.Command, args []string) error {
	b, err := loadBoardFile(args[0])
	if err != nil {
		return err
	}
	prefix, err := parseCoords(movesPathFlag)
	if err != nil {
		return err
	}
	h := hint.NewNextMove(newSolver(cfg.Solver))
	hh, found, err := h.Hint(b, prefix)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if !found {
		fmt.Fprintln(out, "no legal moves")
		return nil
	}
	fmt.Fprintln(out, hh.Message)
	for _, c := range hh.Cells {
		fmt.Fprintln(out, " ", c)
	}
	return nil
}
