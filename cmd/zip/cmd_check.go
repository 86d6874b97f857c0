package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"svw.info/zip/internal/render"
	"svw.info/zip/internal/validator"
)

var checkPathFlag []string

var checkCmd = &cobra.Command{
	Use:   "check FILE",
	Short: "Check a full path against a board",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().StringArrayVar(&checkPathFlag, "path", nil, "full path as repeated row,col")
	_ = checkCmd.MarkFlagRequired("path")
}

func runCheck(cmd *cobra.Command, args []string) error {
	b, err := loadBoardFile(args[0])
	if err != nil {
		return err
	}
	path, err := parseCoords(checkPathFlag)
	if err != nil {
		return err
	}
	ok, reason := validator.New().CheckPath(b, path)
	if !ok {
		return fmt.Errorf("invalid path: %s", reason)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "valid path")
	fmt.Fprint(cmd.OutOrStdout(), render.Path(b, path))
	return nil
}
