package solver

import "svw.info/zip/internal/domain"

// legalNextMoves is the read-only single-step projection of the search:
// the same clue-order, endpoint, and reachability rules applied to just the
// next move. An empty partial path admits only the clue-1 cell.
func legalNextMoves(b *domain.Board, prefix []domain.Coordinate) ([]domain.Coordinate, error) {
	if len(prefix) == 0 {
		start, _ := b.ClueCoordinate(1)
		return []domain.Coordinate{start}, nil
	}
	st, err := seededState(b, prefix)
	if err != nil {
		return nil, err
	}
	if len(st.path) == b.TotalCells() {
		return nil, nil // path already complete
	}
	cur := st.path[len(st.path)-1]
	var out []domain.Coordinate
	for _, next := range b.AdjacentCells(cur) {
		if st.candidateLegal(next) {
			out = append(out, next)
		}
	}
	return out, nil
}
