// Package solver implements the Zip path search: depth-first backtracking
// for a Hamiltonian path over the grid that visits clues 1..K in increasing
// order, starting at clue 1 and ending at clue K.
package solver

import (
	"errors"
	"fmt"

	"svw.info/zip/internal/domain"
)

// ErrNodeBudget is returned by CountSolutions when the configured node
// budget ran out before the search space was exhausted.
var ErrNodeBudget = errors.New("solver: node budget exhausted")

// searchState is the mutable state owned by one in-flight search: the path
// so far, a visited set kept in lockstep with it, and the next clue number
// the path must reach.
type searchState struct {
	b        *domain.Board
	path     []domain.Coordinate
	visited  []bool
	nextClue int

	// flood-fill scratch, reused across prune calls
	seen  []int
	gen   int
	queue []int
}

func newSearchState(b *domain.Board) *searchState {
	k := b.TotalCells()
	return &searchState{
		b:        b,
		path:     make([]domain.Coordinate, 0, k),
		visited:  make([]bool, k),
		nextClue: 1,
		seen:     make([]int, k),
		queue:    make([]int, 0, k),
	}
}

// seededState builds a state from a caller-supplied partial path, or from
// clue 1 when prefix is empty. An illegal prefix errors without searching.
func seededState(b *domain.Board, prefix []domain.Coordinate) (*searchState, error) {
	st := newSearchState(b)
	start, _ := b.ClueCoordinate(1)
	if len(prefix) == 0 {
		st.push(start)
		return st, nil
	}
	if prefix[0] != start {
		return nil, fmt.Errorf("partial path must start at clue 1 %s, got %s", start, prefix[0])
	}
	if len(prefix) > b.TotalCells() {
		return nil, fmt.Errorf("partial path has %d steps, board has %d cells", len(prefix), b.TotalCells())
	}
	st.push(start)
	for i, c := range prefix[1:] {
		if !b.InBounds(c) {
			return nil, fmt.Errorf("partial path step %d: %s out of bounds", i+2, c)
		}
		if !c.Adjacent(prefix[i]) {
			return nil, fmt.Errorf("partial path step %d: %s not adjacent to %s", i+2, c, prefix[i])
		}
		if !st.stepLegal(c) {
			return nil, fmt.Errorf("partial path step %d: illegal move to %s", i+2, c)
		}
		st.push(c)
	}
	return st, nil
}

func (st *searchState) push(c domain.Coordinate) {
	st.path = append(st.path, c)
	st.visited[st.b.Index(c)] = true
	if cell := st.b.CellAt(c); cell.IsClue() && cell.Number == st.nextClue {
		st.nextClue++
	}
}

// pop undoes the last push. A clue cell can only have been entered as the
// expected clue, so restoring nextClue is a plain decrement.
func (st *searchState) pop() {
	n := len(st.path) - 1
	c := st.path[n]
	st.path = st.path[:n]
	st.visited[st.b.Index(c)] = false
	if cell := st.b.CellAt(c); cell.IsClue() && cell.Number == st.nextClue-1 {
		st.nextClue--
	}
}

func (st *searchState) snapshot() []domain.Coordinate {
	return append([]domain.Coordinate(nil), st.path...)
}

// stepLegal applies the clue-order and endpoint constraints to a candidate
// that is already known to be in bounds and adjacent to the path tip.
func (st *searchState) stepLegal(next domain.Coordinate) bool {
	if st.visited[st.b.Index(next)] {
		return false
	}
	cell := st.b.CellAt(next)
	if !cell.IsClue() {
		return true
	}
	if cell.Number != st.nextClue {
		return false
	}
	// the terminal clue may only be entered as the final cell
	if cell.Number == st.b.MaxClue() && len(st.path)+1 < st.b.TotalCells() {
		return false
	}
	return true
}

func (st *searchState) coordOf(idx int) domain.Coordinate {
	return domain.Coordinate{Row: idx / st.b.Cols(), Col: idx % st.b.Cols()}
}
