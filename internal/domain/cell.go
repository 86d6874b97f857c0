package domain

// CellKind discriminates the closed cell variant.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellClue
)

// Cell is either empty or carries a clue number.
type Cell struct {
	Kind   CellKind `json:"kind"`
	Number int      `json:"number,omitempty"` // valid only when Kind == CellClue
}

// IsClue reports whether the cell carries a clue.
func (c Cell) IsClue() bool { return c.Kind == CellClue }
