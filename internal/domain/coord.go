package domain

import "fmt"

// Coordinate identifies a cell on the board, 0-indexed.
type Coordinate struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Adjacent reports whether o differs from c by exactly 1 in exactly one axis.
func (c Coordinate) Adjacent(o Coordinate) bool {
	dr, dc := c.Row-o.Row, c.Col-o.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr+dc == 1
}

// neighborDeltas is the fixed candidate order: up, down, left, right.
// Search results are reproducible because this order never changes.
var neighborDeltas = [4]Coordinate{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
