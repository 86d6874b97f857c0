package validator

import (
	"fmt"

	"svw.info/zip/internal/domain"
)

// PathValidator checks a complete path against the board rules.
type PathValidator struct{}

func New() *PathValidator { return &PathValidator{} }

// CheckPath verifies that path covers every cell exactly once, steps only
// between adjacent cells, starts at clue 1, visits clues in ascending
// order, and ends at the highest clue. The reason names the first
// violation found.
func (v *PathValidator) CheckPath(b *domain.Board, path []domain.Coordinate) (bool, string) {
	k := b.TotalCells()
	if len(path) != k {
		return false, fmt.Sprintf("expected %d steps, got %d", k, len(path))
	}
	if !b.InBounds(path[0]) {
		return false, fmt.Sprintf("path must start at clue 1, not %s", path[0])
	}
	if c0 := b.CellAt(path[0]); !c0.IsClue() || c0.Number != 1 {
		return false, fmt.Sprintf("path must start at clue 1, not %s", path[0])
	}
	seen := make([]bool, k)
	nextClue := 1
	for i, c := range path {
		if !b.InBounds(c) {
			return false, fmt.Sprintf("step %d: cell %s out of bounds", i+1, c)
		}
		if seen[b.Index(c)] {
			return false, fmt.Sprintf("step %d: cell %s repeated", i+1, c)
		}
		seen[b.Index(c)] = true
		if i > 0 && !c.Adjacent(path[i-1]) {
			return false, fmt.Sprintf("steps %d->%d not adjacent (%s -> %s)", i, i+1, path[i-1], c)
		}
		if cell := b.CellAt(c); cell.IsClue() {
			if cell.Number != nextClue {
				return false, fmt.Sprintf("step %d: clue %d out of order, expected clue %d", i+1, cell.Number, nextClue)
			}
			nextClue++
		}
	}
	if nextClue != b.MaxClue()+1 {
		return false, fmt.Sprintf("clue %d never reached", nextClue)
	}
	if cK := b.CellAt(path[k-1]); !cK.IsClue() || cK.Number != b.MaxClue() {
		return false, fmt.Sprintf("path must end at clue %d, not %s", b.MaxClue(), path[k-1])
	}
	return true, "OK"
}
