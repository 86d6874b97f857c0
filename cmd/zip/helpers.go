package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"svw.info/zip/internal/codec"
	"svw.info/zip/internal/config"
	"svw.info/zip/internal/domain"
	"svw.info/zip/internal/hint"
	"svw.info/zip/internal/ports"
	"svw.info/zip/internal/solver"
	"svw.info/zip/internal/usecase"
	"svw.info/zip/internal/validator"
)

func newSolver(sc config.SolverConfig) ports.Solver {
	switch sc.Engine {
	case "iterative":
		return &solver.Iterative{MaxNodes: sc.NodeBudget}
	default:
		return &solver.Recursive{MaxNodes: sc.NodeBudget}
	}
}

func newService(s ports.Solver, st ports.Storage) *usecase.Service {
	return usecase.NewService(s, validator.New(), hint.NewNextMove(s), st)
}

func loadBoardFile(path string) (*domain.Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return codec.Parse(data)
}

// parseCoords turns repeated "row,col" flag values into coordinates.
func parseCoords(args []string) ([]domain.Coordinate, error) {
	out := make([]domain.Coordinate, 0, len(args))
	for _, a := range args {
		parts := strings.Split(strings.TrimSpace(a), ",")
		if len(parts) != 2 {
			return nil, fmt.Errorf("bad coordinate %q, want row,col", a)
		}
		r, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return nil, fmt.Errorf("bad row in %q: %w", a, err)
		}
		c, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, fmt.Errorf("bad col in %q: %w", a, err)
		}
		out = append(out, domain.Coordinate{Row: r, Col: c})
	}
	return out, nil
}
