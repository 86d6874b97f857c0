package solver

import (
	"context"
	"time"

	"svw.info/zip/internal/domain"
	"svw.info/zip/internal/ports"
)

// Recursive is the straightforward recursive backtracking engine.
// Recursion depth is bounded by the cell count, so the call stack stays
// shallow even on the largest supported boards.
type Recursive struct {
	// MaxNodes caps node expansions; 0 means unlimited. Exceeding the
	// budget ends the search with a Cancelled outcome.
	MaxNodes int
}

func NewRecursive() *Recursive { return &Recursive{} }

func (s *Recursive) Solve(ctx context.Context, b *domain.Board) (ports.Result, ports.Stats) {
	res, stats, _ := s.SolveFrom(ctx, b, nil)
	return res, stats
}

func (s *Recursive) SolveFrom(ctx context.Context, b *domain.Board, prefix []domain.Coordinate) (ports.Result, ports.Stats, error) {
	start := time.Now()
	st, err := seededState(b, prefix)
	if err != nil {
		return ports.Result{Outcome: ports.Unsolvable}, ports.Stats{Duration: time.Since(start)}, err
	}

	k := b.TotalCells()
	end, _ := b.ClueCoordinate(b.MaxClue())
	nodes := 0
	cancelled := false

	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil || (s.MaxNodes > 0 && nodes >= s.MaxNodes) {
			cancelled = true
			return false
		}
		nodes++
		if len(st.path) == k {
			return st.path[k-1] == end && st.nextClue == b.MaxClue()+1
		}
		cur := st.path[len(st.path)-1]
		for _, next := range b.AdjacentCells(cur) {
			if !st.candidateLegal(next) {
				continue
			}
			st.push(next)
			if dfs() {
				return true
			}
			st.pop()
			if cancelled {
				return false
			}
		}
		return false
	}

	stats := func() ports.Stats { return ports.Stats{Nodes: nodes, Duration: time.Since(start)} }
	if dfs() {
		return ports.Result{Outcome: ports.Solved, Path: st.snapshot()}, stats(), nil
	}
	if cancelled {
		return ports.Result{Outcome: ports.Cancelled}, stats(), nil
	}
	return ports.Result{Outcome: ports.Unsolvable}, stats(), nil
}

func (s *Recursive) CountSolutions(ctx context.Context, b *domain.Board, limit int) (int, ports.Stats, error) {
	return countSolutions(ctx, b, limit, s.MaxNodes)
}

func (s *Recursive) LegalNextMoves(b *domain.Board, prefix []domain.Coordinate) ([]domain.Coordinate, error) {
	return legalNextMoves(b, prefix)
}
