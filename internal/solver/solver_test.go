package solver

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/zip/internal/codec"
	"svw.info/zip/internal/domain"
	"svw.info/zip/internal/ports"
	"svw.info/zip/internal/validator"
)

func mustBoard(t *testing.T, grid [][]int) *domain.Board {
	t.Helper()
	b, err := codec.ParseGrid(grid)
	require.NoError(t, err)
	return b
}

// diagonal clues on a 3x3: the engine must find the full 9-cell path.
var diag3 = [][]int{
	{1, 0, 0},
	{0, 2, 0},
	{0, 0, 3},
}

func checkSolution(t *testing.T, b *domain.Board, path []domain.Coordinate) {
	t.Helper()
	ok, reason := validator.New().CheckPath(b, path)
	require.True(t, ok, "solver returned an invalid path: %s", reason)
}

func TestSolveDiagonal3x3(t *testing.T) {
	b := mustBoard(t, diag3)
	res, stats := NewRecursive().Solve(context.Background(), b)
	require.Equal(t, ports.Solved, res.Outcome)
	checkSolution(t, b, res.Path)
	assert.Positive(t, stats.Nodes)

	// fixed candidate order (up, down, left, right) makes the first
	// solution predictable; this is the hand-verified zig-zag.
	want := []domain.Coordinate{
		{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 1, Col: 1}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 1, Col: 2}, {Row: 2, Col: 2},
	}
	assert.Equal(t, want, res.Path)
}

func TestSolveIsDeterministic(t *testing.T) {
	b := mustBoard(t, diag3)
	s := NewRecursive()
	first, _ := s.Solve(context.Background(), b)
	second, _ := s.Solve(context.Background(), b)
	assert.Equal(t, first.Path, second.Path)
}

func TestEnginesAgree(t *testing.T) {
	boards := [][][]int{
		diag3,
		{
			{0, 2, 0, 0},
			{0, 0, 0, 1},
			{0, 0, 5, 3},
			{0, 4, 0, 0},
		},
		{
			{1, 0},
			{0, 2},
		},
		{
			{0, 1},
			{0, 0},
			{2, 0},
		},
	}
	for _, grid := range boards {
		b := mustBoard(t, grid)
		rec, _ := NewRecursive().Solve(context.Background(), b)
		itr, _ := NewIterative().Solve(context.Background(), b)
		assert.Equal(t, rec.Outcome, itr.Outcome)
		assert.Equal(t, rec.Path, itr.Path)
		if rec.Outcome == ports.Solved {
			checkSolution(t, b, rec.Path)
		}
	}
}

// rows*cols == 2 with clues on both cells is solvable; the cells are
// necessarily adjacent.
func TestTwoCellBoard(t *testing.T) {
	b := mustBoard(t, [][]int{{1, 2}})
	res, _ := NewRecursive().Solve(context.Background(), b)
	require.Equal(t, ports.Solved, res.Outcome)
	assert.Equal(t, []domain.Coordinate{{Row: 0, Col: 0}, {Row: 0, Col: 1}}, res.Path)

	tall := mustBoard(t, [][]int{{2}, {1}})
	res, _ = NewRecursive().Solve(context.Background(), tall)
	require.Equal(t, ports.Solved, res.Outcome)
	assert.Equal(t, []domain.Coordinate{{Row: 1, Col: 0}, {Row: 0, Col: 0}}, res.Path)
}

func TestUnsolvableBoards(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
	}{
		// stepping off clue 1 either strands (0,0) or dead-ends in it
		{"stranded cell", [][]int{{0, 1, 0, 2}}},
		// 2x2 with diagonal clues: no 4-cell path joins equal-colored corners
		{"diagonal 2x2", [][]int{{1, 0}, {0, 2}}},
		// terminal clue in a corner pocket the path cannot finish in
		{"early terminal", [][]int{
			{1, 3, 0},
			{0, 0, 0},
			{0, 2, 0},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := mustBoard(t, tc.grid)
			res, stats := NewRecursive().Solve(context.Background(), b)
			assert.Equal(t, ports.Unsolvable, res.Outcome)
			assert.Nil(t, res.Path)
			// exhaustive proof must stay cheap on small boards
			assert.Less(t, stats.Nodes, 10_000)
		})
	}
}

func TestSolveLargerBoards(t *testing.T) {
	// clues lie in order along a serpentine cover, so a solution exists
	grids := [][][]int{
		{
			{1, 0, 0, 0, 0},
			{0, 0, 2, 0, 0},
			{0, 0, 0, 0, 0},
			{3, 0, 0, 0, 0},
			{0, 0, 0, 0, 4},
		},
		{
			{1, 0, 0, 0, 0, 0},
			{0, 0, 0, 2, 0, 0},
			{0, 0, 0, 0, 0, 0},
			{0, 0, 3, 0, 0, 0},
			{0, 0, 0, 0, 0, 0},
			{4, 0, 0, 0, 0, 0},
		},
	}
	for _, grid := range grids {
		b := mustBoard(t, grid)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		res, stats := NewRecursive().Solve(ctx, b)
		cancel()
		require.Equal(t, ports.Solved, res.Outcome, "nodes=%d", stats.Nodes)
		checkSolution(t, b, res.Path)
	}
}

func TestSolveFromSeededPrefix(t *testing.T) {
	b := mustBoard(t, diag3)
	prefix := []domain.Coordinate{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 2, Col: 0}}
	res, _, err := NewRecursive().SolveFrom(context.Background(), b, prefix)
	require.NoError(t, err)
	require.Equal(t, ports.Solved, res.Outcome)
	assert.Equal(t, prefix, res.Path[:len(prefix)])
	checkSolution(t, b, res.Path)
}

func TestSolveFromRejectsBadPrefix(t *testing.T) {
	b := mustBoard(t, diag3)
	cases := []struct {
		name   string
		prefix []domain.Coordinate
	}{
		{"wrong start", []domain.Coordinate{{Row: 0, Col: 1}}},
		{"not adjacent", []domain.Coordinate{{Row: 0, Col: 0}, {Row: 2, Col: 0}}},
		{"repeated cell", []domain.Coordinate{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 0, Col: 0}}},
		{"clue out of order", []domain.Coordinate{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 1, Col: 2}, {Row: 2, Col: 2}}},
		{"out of bounds", []domain.Coordinate{{Row: 0, Col: 0}, {Row: 0, Col: -1}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := NewRecursive().SolveFrom(context.Background(), b, tc.prefix)
			assert.Error(t, err)
		})
	}
}

// Cancellation must be observed within one node expansion, with no
// partial path leaking out.
func TestSolveCancelledImmediately(t *testing.T) {
	grid := make([][]int, 10)
	for r := range grid {
		grid[r] = make([]int, 10)
	}
	grid[0][0] = 1
	grid[9][9] = 2
	b := mustBoard(t, grid)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, stats := NewRecursive().Solve(ctx, b)
	assert.Equal(t, ports.Cancelled, res.Outcome)
	assert.Nil(t, res.Path)
	assert.LessOrEqual(t, stats.Nodes, 1)

	itres, itstats := NewIterative().Solve(ctx, b)
	assert.Equal(t, ports.Cancelled, itres.Outcome)
	assert.Nil(t, itres.Path)
	assert.LessOrEqual(t, itstats.Nodes, 2)
}

func TestNodeBudgetCancels(t *testing.T) {
	grid := make([][]int, 8)
	for r := range grid {
		grid[r] = make([]int, 8)
	}
	grid[0][0] = 1
	grid[7][7] = 2
	b := mustBoard(t, grid)

	s := &Recursive{MaxNodes: 5}
	res, stats := s.Solve(context.Background(), b)
	assert.Equal(t, ports.Cancelled, res.Outcome)
	assert.LessOrEqual(t, stats.Nodes, 5)
}

func TestCountSolutions(t *testing.T) {
	// only one way through a 1x2
	b := mustBoard(t, [][]int{{1, 2}})
	n, _, err := NewRecursive().CountSolutions(context.Background(), b, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	// 2x2 ending on an adjacent clue has exactly one covering path
	b = mustBoard(t, [][]int{{1, 2}, {0, 0}})
	n, _, err = NewRecursive().CountSolutions(context.Background(), b, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	// corner-to-corner 3x3 has several; the limit stops early
	b = mustBoard(t, [][]int{
		{1, 0, 0},
		{0, 0, 0},
		{0, 0, 2},
	})
	n, _, err = NewRecursive().CountSolutions(context.Background(), b, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	// unsolvable counts zero
	b = mustBoard(t, [][]int{{1, 0}, {0, 2}})
	n, _, err = NewRecursive().CountSolutions(context.Background(), b, 0)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestCountSolutionsCancelled(t *testing.T) {
	b := mustBoard(t, diag3)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := NewRecursive().CountSolutions(ctx, b, 0)
	assert.ErrorIs(t, err, context.Canceled)

	s := &Recursive{MaxNodes: 2}
	_, _, err = s.CountSolutions(context.Background(), b, 0)
	assert.ErrorIs(t, err, ErrNodeBudget)
}

// Repeated solves on the same immutable board agree.
func TestSolveIdempotent(t *testing.T) {
	b := mustBoard(t, [][]int{{1, 0}, {0, 2}})
	for i := 0; i < 3; i++ {
		res, _ := NewRecursive().Solve(context.Background(), b)
		assert.Equal(t, ports.Unsolvable, res.Outcome)
	}
}
