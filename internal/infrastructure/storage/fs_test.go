package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/zip/internal/domain"
)

var grid3 = [][]int{
	{1, 0, 0},
	{0, 2, 0},
	{0, 0, 3},
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	fs := NewFS(dir)
	ctx := context.Background()

	p := &domain.Puzzle{Name: "diag", Grid: grid3, CreatedAt: 42}
	require.NoError(t, fs.Save(ctx, p))
	assert.NotEmpty(t, p.ID, "Save assigns an id")
	assert.Equal(t, 3, p.Rows)
	assert.Equal(t, 3, p.Cols)

	// bucketed under the board-size directory
	_, err := os.Stat(filepath.Join(dir, "3x3", p.ID+".json"))
	require.NoError(t, err)

	got, err := fs.Load(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.Name, got.Name)
	assert.Equal(t, grid3, got.Grid)
	assert.Equal(t, int64(42), got.CreatedAt)
}

func TestSaveRejectsInvalidGrid(t *testing.T) {
	fs := NewFS(t.TempDir())
	p := &domain.Puzzle{Grid: [][]int{{1, 0}, {0, 3}}} // clue 2 missing
	err := fs.Save(context.Background(), p)
	var ibe *domain.InvalidBoardError
	require.ErrorAs(t, err, &ibe)
	assert.Equal(t, domain.NonContiguousClues, ibe.Kind)
}

func TestLoadMissing(t *testing.T) {
	fs := NewFS(t.TempDir())
	_, err := fs.Load(context.Background(), "nope")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadLegacyFlatLayout(t *testing.T) {
	dir := t.TempDir()
	data := []byte(`{"id":"old","grid":[[1,2],[0,0]]}`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "old.json"), data, 0o644))

	got, err := NewFS(dir).Load(context.Background(), "old")
	require.NoError(t, err)
	assert.Equal(t, "old", got.ID)
	assert.Equal(t, 2, got.Rows) // inferred from the grid
	assert.Equal(t, 2, got.Cols)
}

func TestList(t *testing.T) {
	dir := t.TempDir()
	fs := NewFS(dir)
	ctx := context.Background()

	require.NoError(t, fs.Save(ctx, &domain.Puzzle{Name: "a", Grid: grid3}))
	require.NoError(t, fs.Save(ctx, &domain.Puzzle{Name: "b", Grid: [][]int{{1, 2}}}))

	metas, err := fs.List(ctx)
	require.NoError(t, err)
	require.Len(t, metas, 2)
	names := []string{metas[0].Name, metas[1].Name}
	assert.ElementsMatch(t, []string{"a", "b"}, names)
}
