// Package codec deserializes board descriptions. Any failure to produce a
// valid Board surfaces as *domain.InvalidBoardError.
package codec

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"svw.info/zip/internal/domain"
)

// ParseGrid builds a Board from a rectangular matrix where 0 marks an empty
// cell and a positive value marks that clue number.
func ParseGrid(grid [][]int) (*domain.Board, error) {
	rows := len(grid)
	if rows == 0 {
		return nil, &domain.InvalidBoardError{Kind: domain.BadDimensions, Detail: "empty grid"}
	}
	cols := len(grid[0])
	clues := make(map[int]domain.Coordinate)
	for r, row := range grid {
		if len(row) != cols {
			return nil, &domain.InvalidBoardError{
				Kind:   domain.MalformedGrid,
				Detail: "row " + strconv.Itoa(r) + " has " + strconv.Itoa(len(row)) + " cells, want " + strconv.Itoa(cols),
			}
		}
		for c, v := range row {
			switch {
			case v == 0:
			case v > 0:
				at := domain.Coordinate{Row: r, Col: c}
				if prev, dup := clues[v]; dup {
					return nil, &domain.InvalidBoardError{
						Kind:   domain.DuplicateClueCoordinate,
						Detail: "clue " + strconv.Itoa(v) + " at both " + prev.String() + " and " + at.String(),
					}
				}
				clues[v] = at
			default:
				return nil, &domain.InvalidBoardError{
					Kind:   domain.MalformedGrid,
					Detail: "negative cell value " + strconv.Itoa(v) + " at " + domain.Coordinate{Row: r, Col: c}.String(),
				}
			}
		}
	}
	return domain.NewBoard(rows, cols, clues)
}

// ParseText builds a Board from a whitespace-separated grid where "." marks
// an empty cell and a decimal marks a clue number.
func ParseText(s string) (*domain.Board, error) {
	var grid [][]int
	for _, line := range strings.Split(s, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		row := make([]int, 0, len(fields))
		for _, f := range fields {
			if f == "." {
				row = append(row, 0)
				continue
			}
			v, err := strconv.Atoi(f)
			if err != nil || v <= 0 {
				return nil, &domain.InvalidBoardError{
					Kind:   domain.MalformedGrid,
					Detail: "bad cell token " + strconv.Quote(f),
				}
			}
			row = append(row, v)
		}
		grid = append(grid, row)
	}
	return ParseGrid(grid)
}

// gridDoc matches the JSON puzzle-file shape; a bare matrix is also accepted.
type gridDoc struct {
	Grid [][]int `json:"grid"`
}

// Parse sniffs JSON versus text-grid input and dispatches.
func Parse(data []byte) (*domain.Board, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		if trimmed[0] == '[' {
			var grid [][]int
			if err := json.Unmarshal(trimmed, &grid); err != nil {
				return nil, &domain.InvalidBoardError{Kind: domain.MalformedGrid, Detail: err.Error()}
			}
			return ParseGrid(grid)
		}
		var doc gridDoc
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return nil, &domain.InvalidBoardError{Kind: domain.MalformedGrid, Detail: err.Error()}
		}
		return ParseGrid(doc.Grid)
	}
	return ParseText(string(data))
}

// GridOf is the inverse of ParseGrid, used when persisting puzzles.
func GridOf(b *domain.Board) [][]int {
	grid := make([][]int, b.Rows())
	for r := range grid {
		grid[r] = make([]int, b.Cols())
		for c := range grid[r] {
			cell := b.CellAt(domain.Coordinate{Row: r, Col: c})
			if cell.IsClue() {
				grid[r][c] = cell.Number
			}
		}
	}
	return grid
}
