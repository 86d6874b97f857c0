package ports

import (
	"context"
	"time"

	"svw.info/zip/internal/domain"
)

// Stats captures performance characteristics of a search.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Outcome classifies how a search ended. Unsolvable and Cancelled are
// normal terminal results, not errors.
type Outcome int

const (
	Solved Outcome = iota
	Unsolvable
	Cancelled
)

func (o Outcome) String() string {
	switch o {
	case Solved:
		return "solved"
	case Unsolvable:
		return "unsolvable"
	case Cancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Result of a solve call. Path is set only when Outcome == Solved, and is
// then a permutation of all board coordinates.
type Result struct {
	Outcome Outcome
	Path    []domain.Coordinate
}

// Solver finds Hamiltonian paths through ordered clues.
type Solver interface {
	Solve(ctx context.Context, b *domain.Board) (Result, Stats)
	// SolveFrom resumes from a caller-seeded partial path. An invalid
	// prefix errors without searching.
	SolveFrom(ctx context.Context, b *domain.Board, prefix []domain.Coordinate) (Result, Stats, error)
	// CountSolutions counts full solutions, stopping early at limit.
	CountSolutions(ctx context.Context, b *domain.Board, limit int) (int, Stats, error)
	// LegalNextMoves applies the single-step move rules to a partial path.
	LegalNextMoves(b *domain.Board, prefix []domain.Coordinate) ([]domain.Coordinate, error)
}

// Validator checks a complete path against board rules.
type Validator interface {
	CheckPath(b *domain.Board, path []domain.Coordinate) (ok bool, reason string)
}

// Hinter suggests legal next moves for an interactive layer.
type Hinter interface {
	Hint(b *domain.Board, prefix []domain.Coordinate) (domain.Hint, bool, error)
}

// Storage persists and retrieves puzzles as JSON.
type Storage interface {
	Save(ctx context.Context, p *domain.Puzzle) error
	Load(ctx context.Context, id string) (*domain.Puzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
}
