package solver

import (
	"context"
	"time"

	"svw.info/zip/internal/domain"
	"svw.info/zip/internal/ports"
)

// Iterative re-expresses the backtracking recursion as an explicit stack of
// (candidate-list, cursor) frames. Search order and semantics match the
// Recursive engine exactly; the two must return identical paths.
type Iterative struct {
	// MaxNodes caps node expansions; 0 means unlimited.
	MaxNodes int
}

func NewIterative() *Iterative { return &Iterative{} }

type frame struct {
	cands []domain.Coordinate
	next  int
}

func (s *Iterative) Solve(ctx context.Context, b *domain.Board) (ports.Result, ports.Stats) {
	res, stats, _ := s.SolveFrom(ctx, b, nil)
	return res, stats
}

func (s *Iterative) SolveFrom(ctx context.Context, b *domain.Board, prefix []domain.Coordinate) (ports.Result, ports.Stats, error) {
	start := time.Now()
	st, err := seededState(b, prefix)
	if err != nil {
		return ports.Result{Outcome: ports.Unsolvable}, ports.Stats{Duration: time.Since(start)}, err
	}

	k := b.TotalCells()
	end, _ := b.ClueCoordinate(b.MaxClue())
	nodes := 1 // the seeded tip counts as the first expansion
	outcome := ports.Unsolvable

	frames := make([]frame, 1, k)
	frames[0] = frame{cands: b.AdjacentCells(st.path[len(st.path)-1])}

loop:
	for {
		if ctx.Err() != nil || (s.MaxNodes > 0 && nodes > s.MaxNodes) {
			outcome = ports.Cancelled
			break
		}
		top := &frames[len(frames)-1]
		if len(st.path) == k {
			if st.path[k-1] == end && st.nextClue == b.MaxClue()+1 {
				outcome = ports.Solved
				break
			}
			top.next = len(top.cands) // dead end, force backtrack
		}
		advanced := false
		for top.next < len(top.cands) {
			next := top.cands[top.next]
			top.next++
			if !st.candidateLegal(next) {
				continue
			}
			st.push(next)
			frames = append(frames, frame{cands: b.AdjacentCells(next)})
			nodes++
			advanced = true
			break
		}
		if advanced {
			continue
		}
		frames = frames[:len(frames)-1]
		if len(frames) == 0 {
			break loop // root exhausted
		}
		st.pop()
	}

	stats := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if outcome == ports.Solved {
		return ports.Result{Outcome: ports.Solved, Path: st.snapshot()}, stats, nil
	}
	return ports.Result{Outcome: outcome}, stats, nil
}

func (s *Iterative) CountSolutions(ctx context.Context, b *domain.Board, limit int) (int, ports.Stats, error) {
	return countSolutions(ctx, b, limit, s.MaxNodes)
}

func (s *Iterative) LegalNextMoves(b *domain.Board, prefix []domain.Coordinate) ([]domain.Coordinate, error) {
	return legalNextMoves(b, prefix)
}
