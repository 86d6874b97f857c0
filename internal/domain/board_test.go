package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoardValid(t *testing.T) {
	b, err := NewBoard(3, 4, map[int]Coordinate{
		1: {0, 0},
		2: {1, 2},
		3: {2, 3},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, b.Rows())
	assert.Equal(t, 4, b.Cols())
	assert.Equal(t, 12, b.TotalCells())
	assert.Equal(t, 3, b.MaxClue())

	cell := b.CellAt(Coordinate{1, 2})
	assert.True(t, cell.IsClue())
	assert.Equal(t, 2, cell.Number)
	assert.False(t, b.CellAt(Coordinate{0, 1}).IsClue())

	at, ok := b.ClueCoordinate(3)
	require.True(t, ok)
	assert.Equal(t, Coordinate{2, 3}, at)
	_, ok = b.ClueCoordinate(4)
	assert.False(t, ok)
}

func TestNewBoardRejects(t *testing.T) {
	cases := []struct {
		name  string
		rows  int
		cols  int
		clues map[int]Coordinate
		kind  BoardErrorKind
	}{
		{"zero rows", 0, 5, map[int]Coordinate{1: {0, 0}, 2: {0, 1}}, BadDimensions},
		{"negative cols", 4, -1, map[int]Coordinate{1: {0, 0}, 2: {0, 1}}, BadDimensions},
		{"one clue", 3, 3, map[int]Coordinate{1: {0, 0}}, TooFewClues},
		{"no clues", 3, 3, nil, TooFewClues},
		{"out of bounds", 3, 3, map[int]Coordinate{1: {0, 0}, 2: {3, 0}}, OutOfBoundsClue},
		{"gap in numbering", 3, 3, map[int]Coordinate{1: {0, 0}, 3: {2, 2}}, NonContiguousClues},
		{"not starting at 1", 3, 3, map[int]Coordinate{2: {0, 0}, 3: {2, 2}}, NonContiguousClues},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewBoard(tc.rows, tc.cols, tc.clues)
			var ibe *InvalidBoardError
			require.ErrorAs(t, err, &ibe)
			assert.Equal(t, tc.kind, ibe.Kind)
		})
	}
}

// The 4x4 layout with a reused clue coordinate must fail at construction.
func TestNewBoardDuplicateCoordinate(t *testing.T) {
	_, err := NewBoard(4, 4, map[int]Coordinate{
		1: {1, 3},
		2: {0, 1},
		3: {2, 3},
		4: {3, 1},
		5: {2, 2},
		6: {2, 3}, // same cell as clue 3
	})
	var ibe *InvalidBoardError
	require.True(t, errors.As(err, &ibe))
	assert.Equal(t, DuplicateClueCoordinate, ibe.Kind)
	assert.Contains(t, ibe.Detail, "(2,3)")
}

func TestAdjacentCellsOrder(t *testing.T) {
	b, err := NewBoard(3, 3, map[int]Coordinate{1: {0, 0}, 2: {2, 2}})
	require.NoError(t, err)

	// interior cell: up, down, left, right
	assert.Equal(t,
		[]Coordinate{{0, 1}, {2, 1}, {1, 0}, {1, 2}},
		b.AdjacentCells(Coordinate{1, 1}))
	// corner keeps the same relative order
	assert.Equal(t,
		[]Coordinate{{1, 0}, {0, 1}},
		b.AdjacentCells(Coordinate{0, 0}))
}

func TestCoordinateAdjacent(t *testing.T) {
	a := Coordinate{1, 1}
	assert.True(t, a.Adjacent(Coordinate{0, 1}))
	assert.True(t, a.Adjacent(Coordinate{1, 2}))
	assert.False(t, a.Adjacent(Coordinate{0, 0})) // diagonal
	assert.False(t, a.Adjacent(a))
	assert.False(t, a.Adjacent(Coordinate{3, 1}))
}
