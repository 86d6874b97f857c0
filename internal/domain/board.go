package domain

// Board is the immutable puzzle description: grid dimensions plus clue
// placement. Construct with NewBoard; a Board that exists is valid.
type Board struct {
	rows, cols int
	cells      []Cell             // row-major, rows*cols
	clues      map[int]Coordinate // 1..maxClue, contiguous
	maxClue    int
}

// NewBoard validates dimensions and clue placement. Clue numbers must form
// a contiguous range starting at 1, with at least 2 clues, each on a
// distinct in-bounds cell.
func NewBoard(rows, cols int, clues map[int]Coordinate) (*Board, error) {
	if rows <= 0 || cols <= 0 {
		return nil, invalidBoard(BadDimensions, "%dx%d", rows, cols)
	}
	if len(clues) < 2 {
		return nil, invalidBoard(TooFewClues, "got %d", len(clues))
	}
	b := &Board{
		rows:    rows,
		cols:    cols,
		cells:   make([]Cell, rows*cols),
		clues:   make(map[int]Coordinate, len(clues)),
		maxClue: len(clues),
	}
	for n := 1; n <= len(clues); n++ {
		at, ok := clues[n]
		if !ok {
			return nil, invalidBoard(NonContiguousClues, "clue %d missing from 1..%d", n, len(clues))
		}
		if !b.InBounds(at) {
			return nil, invalidBoard(OutOfBoundsClue, "clue %d at %s", n, at)
		}
		idx := at.Row*cols + at.Col
		if b.cells[idx].IsClue() {
			return nil, invalidBoard(DuplicateClueCoordinate, "clues %d and %d both at %s", b.cells[idx].Number, n, at)
		}
		b.cells[idx] = Cell{Kind: CellClue, Number: n}
		b.clues[n] = at
	}
	return b, nil
}

func (b *Board) Rows() int { return b.rows }
func (b *Board) Cols() int { return b.cols }

// TotalCells is k, the number of cells a complete path must cover.
func (b *Board) TotalCells() int { return b.rows * b.cols }

// MaxClue is K, the highest (and terminal) clue number.
func (b *Board) MaxClue() int { return b.maxClue }

// InBounds reports whether c lies on the grid.
func (b *Board) InBounds(c Coordinate) bool {
	return c.Row >= 0 && c.Row < b.rows && c.Col >= 0 && c.Col < b.cols
}

// Index flattens c to a row-major cell index. Callers must pass an
// in-bounds coordinate.
func (b *Board) Index(c Coordinate) int { return c.Row*b.cols + c.Col }

// CellAt returns the cell variant at c.
func (b *Board) CellAt(c Coordinate) Cell { return b.cells[b.Index(c)] }

// ClueCoordinate looks up where clue n sits.
func (b *Board) ClueCoordinate(n int) (Coordinate, bool) {
	at, ok := b.clues[n]
	return at, ok
}

// AdjacentCells returns the in-bounds 4-neighbors of c in the fixed
// up, down, left, right order.
func (b *Board) AdjacentCells(c Coordinate) []Coordinate {
	out := make([]Coordinate, 0, 4)
	for _, d := range neighborDeltas {
		n := Coordinate{Row: c.Row + d.Row, Col: c.Col + d.Col}
		if b.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}
