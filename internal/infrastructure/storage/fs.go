package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"svw.info/zip/internal/codec"
	"svw.info/zip/internal/domain"
)

// FS persists puzzles as JSON files bucketed by board size, e.g.
// data/5x5/<id>.json. Legacy flat files directly under the root are still
// readable.
type FS struct{ dir string }

func NewFS(dir string) *FS { return &FS{dir: dir} }

func sizeDir(rows, cols int) string { return fmt.Sprintf("%dx%d", rows, cols) }

var sizeDirRe = regexp.MustCompile(`^\d+x\d+$`)

func (s *FS) pathFor(p *domain.Puzzle) string {
	return filepath.Join(s.dir, sizeDir(p.Rows, p.Cols), strings.TrimSpace(p.ID)+".json")
}

// Save writes the puzzle, assigning a fresh id when missing. The grid is
// parsed first so invalid boards never reach disk.
func (s *FS) Save(ctx context.Context, p *domain.Puzzle) error {
	if p == nil {
		return errors.New("invalid puzzle: nil")
	}
	b, err := codec.ParseGrid(p.Grid)
	if err != nil {
		return err
	}
	p.Rows, p.Cols = b.Rows(), b.Cols()
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	target := s.pathFor(p)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	f, err := os.Create(target)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}

func (s *FS) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, errors.New("missing puzzle id")
	}
	var candidates []string
	if ents, err := os.ReadDir(s.dir); err == nil {
		for _, e := range ents {
			if e.IsDir() && sizeDirRe.MatchString(e.Name()) {
				candidates = append(candidates, filepath.Join(s.dir, e.Name(), id+".json"))
			}
		}
	}
	candidates = append(candidates, filepath.Join(s.dir, id+".json")) // legacy flat layout
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var out domain.Puzzle
		if err := json.Unmarshal(data, &out); err != nil {
			return nil, err
		}
		if out.Rows == 0 && len(out.Grid) > 0 {
			out.Rows = len(out.Grid)
			out.Cols = len(out.Grid[0])
		}
		return &out, nil
	}
	return nil, os.ErrNotExist
}

func (s *FS) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	var out []domain.PuzzleMeta
	scan := func(dir string) error {
		ents, err := os.ReadDir(dir)
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		for _, e := range ents {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
				continue
			}
			data, err := os.ReadFile(filepath.Join(dir, e.Name()))
			if err != nil {
				continue
			}
			var p domain.Puzzle
			if err := json.Unmarshal(data, &p); err != nil || p.ID == "" {
				continue
			}
			if p.Rows == 0 && len(p.Grid) > 0 {
				p.Rows = len(p.Grid)
				p.Cols = len(p.Grid[0])
			}
			out = append(out, domain.PuzzleMeta{
				ID:        p.ID,
				Name:      p.Name,
				Rows:      p.Rows,
				Cols:      p.Cols,
				CreatedAt: p.CreatedAt,
			})
		}
		return nil
	}

	ents, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	for _, e := range ents {
		if e.IsDir() && sizeDirRe.MatchString(e.Name()) {
			if err := scan(filepath.Join(s.dir, e.Name())); err != nil {
				return nil, err
			}
		}
	}
	if err := scan(s.dir); err != nil { // legacy flat files
		return nil, err
	}
	return out, nil
}
