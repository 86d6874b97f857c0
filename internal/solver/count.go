package solver

import (
	"context"
	"time"

	"svw.info/zip/internal/domain"
	"svw.info/zip/internal/ports"
)

// countSolutions counts complete paths, stopping early once limit is
// reached (limit <= 0 counts exhaustively). The prunes never reject a
// feasible branch, so the count is exact.
func countSolutions(ctx context.Context, b *domain.Board, limit, maxNodes int) (int, ports.Stats, error) {
	start := time.Now()
	st, err := seededState(b, nil)
	if err != nil {
		return 0, ports.Stats{Duration: time.Since(start)}, err
	}

	k := b.TotalCells()
	end, _ := b.ClueCoordinate(b.MaxClue())
	nodes := 0
	count := 0
	cancelled := false

	var dfs func() bool // true = stop the whole search
	dfs = func() bool {
		if ctx.Err() != nil || (maxNodes > 0 && nodes >= maxNodes) {
			cancelled = true
			return true
		}
		nodes++
		if len(st.path) == k {
			if st.path[k-1] == end && st.nextClue == b.MaxClue()+1 {
				count++
				if limit > 0 && count >= limit {
					return true
				}
			}
			return false
		}
		cur := st.path[len(st.path)-1]
		for _, next := range b.AdjacentCells(cur) {
			if !st.candidateLegal(next) {
				continue
			}
			st.push(next)
			stop := dfs()
			st.pop()
			if stop {
				return true
			}
		}
		return false
	}
	_ = dfs()

	stats := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if cancelled {
		if err := ctx.Err(); err != nil {
			return count, stats, err
		}
		return count, stats, ErrNodeBudget
	}
	return count, stats, nil
}
