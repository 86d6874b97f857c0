package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/zip/internal/codec"
	"svw.info/zip/internal/domain"
)

func board(t *testing.T) *domain.Board {
	t.Helper()
	b, err := codec.ParseGrid([][]int{
		{1, 0, 0},
		{0, 2, 0},
		{0, 0, 3},
	})
	require.NoError(t, err)
	return b
}

var goodPath = []domain.Coordinate{
	{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 1, Col: 1}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 1, Col: 2}, {Row: 2, Col: 2},
}

func TestCheckPathAccepts(t *testing.T) {
	ok, reason := New().CheckPath(board(t), goodPath)
	assert.True(t, ok, reason)
	assert.Equal(t, "OK", reason)
}

func TestCheckPathRejects(t *testing.T) {
	b := board(t)
	alter := func(mut func(p []domain.Coordinate)) []domain.Coordinate {
		p := append([]domain.Coordinate(nil), goodPath...)
		mut(p)
		return p
	}
	cases := []struct {
		name string
		path []domain.Coordinate
		want string
	}{
		{"too short", goodPath[:8], "expected 9 steps"},
		{"wrong start", alter(func(p []domain.Coordinate) { p[0], p[4] = p[4], p[0] }), "start at clue 1"},
		{"repeated cell", alter(func(p []domain.Coordinate) { p[3] = p[1] }), "repeated"},
		{"not adjacent", alter(func(p []domain.Coordinate) { p[3] = domain.Coordinate{Row: 2, Col: 2}; p[8] = domain.Coordinate{Row: 2, Col: 1} }), "not adjacent"},
		{"out of bounds", alter(func(p []domain.Coordinate) { p[5] = domain.Coordinate{Row: -1, Col: 0} }), "out of bounds"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ok, reason := New().CheckPath(b, tc.path)
			assert.False(t, ok)
			assert.Contains(t, reason, tc.want)
		})
	}
}

func TestCheckPathClueOrder(t *testing.T) {
	// path that covers everything but reaches clue 3 before clue 2
	b, err := codec.ParseGrid([][]int{
		{1, 0, 0},
		{0, 3, 0},
		{0, 0, 2},
	})
	require.NoError(t, err)
	ok, reason := New().CheckPath(b, goodPath)
	assert.False(t, ok)
	assert.Contains(t, reason, "out of order")
}

func TestCheckPathMustEndAtLastClue(t *testing.T) {
	// clue 3 sits mid-path, so the walk continues past the highest clue
	b, err := codec.ParseGrid([][]int{
		{1, 0, 0},
		{0, 2, 3},
		{0, 0, 0},
	})
	require.NoError(t, err)
	ok, reason := New().CheckPath(b, goodPath)
	assert.False(t, ok)
	assert.Contains(t, reason, "end at clue 3")
}
