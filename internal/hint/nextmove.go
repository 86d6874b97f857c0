package hint

import (
	"fmt"

	"svw.info/zip/internal/domain"
	"svw.info/zip/internal/ports"
)

// NextMove implements a minimal Hinter that names the legal next moves
// from a partial path.
type NextMove struct {
	Solver ports.Solver
}

func NewNextMove(s ports.Solver) *NextMove { return &NextMove{Solver: s} }

// Hint returns the legal continuations, if any.
func (h *NextMove) Hint(b *domain.Board, prefix []domain.Coordinate) (domain.Hint, bool, error) {
	moves, err := h.Solver.LegalNextMoves(b, prefix)
	if err != nil {
		return domain.Hint{}, false, err
	}
	if len(moves) == 0 {
		return domain.Hint{}, false, nil
	}
	var msg string
	if len(moves) == 1 {
		msg = fmt.Sprintf("Only %s continues the path", moves[0])
	} else {
		msg = fmt.Sprintf("%d cells continue the path", len(moves))
	}
	return domain.Hint{Message: msg, Cells: moves}, true, nil
}
