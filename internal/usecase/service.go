package usecase

import (
	"context"
	"errors"

	"svw.info/zip/internal/domain"
	"svw.info/zip/internal/ports"
)

type Service struct {
	Solver    ports.Solver
	Validator ports.Validator
	Hinter    ports.Hinter
	Storage   ports.Storage
}

func NewService(s ports.Solver, v ports.Validator, h ports.Hinter, st ports.Storage) *Service {
	return &Service{Solver: s, Validator: v, Hinter: h, Storage: st}
}

var errNotConfigured = errors.New("usecase dependency not configured")

func (u *Service) Solve(ctx context.Context, b *domain.Board) (ports.Result, ports.Stats, error) {
	if u.Solver == nil {
		return ports.Result{}, ports.Stats{}, errNotConfigured
	}
	res, stats := u.Solver.Solve(ctx, b)
	return res, stats, nil
}

func (u *Service) SolveFrom(ctx context.Context, b *domain.Board, prefix []domain.Coordinate) (ports.Result, ports.Stats, error) {
	if u.Solver == nil {
		return ports.Result{}, ports.Stats{}, errNotConfigured
	}
	return u.Solver.SolveFrom(ctx, b, prefix)
}

func (u *Service) CountSolutions(ctx context.Context, b *domain.Board, limit int) (int, ports.Stats, error) {
	if u.Solver == nil {
		return 0, ports.Stats{}, errNotConfigured
	}
	return u.Solver.CountSolutions(ctx, b, limit)
}

func (u *Service) LegalMoves(b *domain.Board, prefix []domain.Coordinate) ([]domain.Coordinate, error) {
	if u.Solver == nil {
		return nil, errNotConfigured
	}
	return u.Solver.LegalNextMoves(b, prefix)
}

func (u *Service) CheckPath(b *domain.Board, path []domain.Coordinate) (bool, string, error) {
	if u.Validator == nil {
		return false, "", errNotConfigured
	}
	ok, reason := u.Validator.CheckPath(b, path)
	return ok, reason, nil
}

func (u *Service) Hint(b *domain.Board, prefix []domain.Coordinate) (domain.Hint, bool, error) {
	if u.Hinter == nil {
		return domain.Hint{}, false, errNotConfigured
	}
	return u.Hinter.Hint(b, prefix)
}

// Persistence
func (u *Service) Save(ctx context.Context, p *domain.Puzzle) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	return u.Storage.Save(ctx, p)
}

func (u *Service) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.Load(ctx, id)
}

func (u *Service) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.List(ctx)
}
