package solver

import "svw.info/zip/internal/domain"

// Reachability pruning. Both checks are relaxations: they reject a
// candidate only when no continuation from it can cover the rest of the
// board, never a feasible branch.

// regionConnected reports whether every still-unvisited cell is reachable
// from next through unvisited cells. If stepping to next strands part of
// the empty region, no single continuing path can cover it.
func (st *searchState) regionConnected(next domain.Coordinate) bool {
	remaining := st.b.TotalCells() - len(st.path) // unvisited cells, next included
	if remaining <= 1 {
		return true
	}
	st.gen++
	q := st.queue[:0]
	start := st.b.Index(next)
	st.seen[start] = st.gen
	q = append(q, start)
	reached := 1
	for head := 0; head < len(q); head++ {
		for _, n := range st.b.AdjacentCells(st.coordOf(q[head])) {
			ni := st.b.Index(n)
			if st.visited[ni] || st.seen[ni] == st.gen {
				continue
			}
			st.seen[ni] = st.gen
			reached++
			q = append(q, ni)
		}
	}
	st.queue = q[:0]
	return reached == remaining
}

// cluesReachable walks the remaining clue chain next -> clue(m) ->
// clue(m+1) -> ... -> clue(K). Each leg must be traversable through
// unvisited cells without crossing a clue that would be consumed out of
// order (any unvisited clue numbered above the leg's target).
func (st *searchState) cluesReachable(next domain.Coordinate) bool {
	m := st.nextClue
	if cell := st.b.CellAt(next); cell.IsClue() && cell.Number == m {
		m++
	}
	from := next
	for ; m <= st.b.MaxClue(); m++ {
		target, _ := st.b.ClueCoordinate(m)
		if !st.reachable(from, target, m) {
			return false
		}
		from = target
	}
	return true
}

// reachable reports whether target can be reached from src through
// unvisited cells, skipping unvisited clue cells numbered above allow.
func (st *searchState) reachable(src, target domain.Coordinate, allow int) bool {
	if src == target {
		return true
	}
	ti := st.b.Index(target)
	st.gen++
	q := st.queue[:0]
	si := st.b.Index(src)
	st.seen[si] = st.gen
	q = append(q, si)
	for head := 0; head < len(q); head++ {
		for _, n := range st.b.AdjacentCells(st.coordOf(q[head])) {
			ni := st.b.Index(n)
			if ni == ti {
				st.queue = q[:0]
				return true
			}
			if st.visited[ni] || st.seen[ni] == st.gen {
				continue
			}
			if cell := st.b.CellAt(n); cell.IsClue() && cell.Number > allow {
				continue
			}
			st.seen[ni] = st.gen
			q = append(q, ni)
		}
	}
	st.queue = q[:0]
	return false
}

// candidateLegal bundles the per-step constraints with both prunes; shared
// by the engines and the legal-move projection.
func (st *searchState) candidateLegal(next domain.Coordinate) bool {
	return st.stepLegal(next) && st.regionConnected(next) && st.cluesReachable(next)
}
