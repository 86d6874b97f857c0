package domain

// Puzzle is a persisted board with metadata.
type Puzzle struct {
	ID        string  `json:"id,omitempty"`
	Name      string  `json:"name,omitempty"`
	Rows      int     `json:"rows"`
	Cols      int     `json:"cols"`
	Grid      [][]int `json:"grid"` // 0 = empty, >0 = clue number
	CreatedAt int64   `json:"createdAt,omitempty"`
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	Rows      int    `json:"rows"`
	Cols      int    `json:"cols"`
	CreatedAt int64  `json:"createdAt"`
}

// Hint describes a next-move suggestion for an interactive layer.
type Hint struct {
	Message string       `json:"message,omitempty"`
	Cells   []Coordinate `json:"cells,omitempty"`
}
