package usecase

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"svw.info/crossword/internal/board"
	"svw.info/crossword/internal/domain"
	"svw.info/crossword/internal/ports"
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

const tracerName = "crossword/usecase"

// Solve runs the configured engine under a span; solves can be slow,
// so they carry the interesting attributes.
func (u *Service) Solve(ctx context.Context, grid, words []string, opts domain.SolveOptions) (*domain.SolveResult, ports.Stats, error) {
	if u.Solver == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	ctx, span := otel.Tracer(tracerName).Start(ctx, "crossword.Solve",
		trace.WithAttributes(
			attribute.Int("grid_rows", len(grid)),
			attribute.Int("words", len(words)),
			attribute.Bool("no_reuse", opts.NoReuse),
		))
	defer span.End()
	res, st, err := u.Solver.Solve(ctx, grid, words, opts)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "solve aborted")
		return nil, st, err
	}
	span.SetAttributes(
		attribute.Bool("success", res.Success),
		attribute.Int("nodes", st.Nodes),
	)
	return res, st, nil
}

func (u *Service) Unique(ctx context.Context, grid, words []string, opts domain.SolveOptions) (bool, ports.Stats, error) {
	if u.Solver == nil {
		return false, ports.Stats{}, errNotConfigured
	}
	ctx, span := otel.Tracer(tracerName).Start(ctx, "crossword.Unique",
		trace.WithAttributes(
			attribute.Int("grid_rows", len(grid)),
			attribute.Bool("no_reuse", opts.NoReuse),
		))
	defer span.End()
	unique, st, err := u.Solver.Unique(ctx, grid, words, opts)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "uniqueness check aborted")
		return false, st, err
	}
	span.SetAttributes(
		attribute.Bool("unique", unique),
		attribute.Int("nodes", st.Nodes),
	)
	return unique, st, nil
}

// Parse exposes slot discovery for grid previews.
func (u *Service) Parse(ctx context.Context, grid []string) ([]domain.Slot, error) {
	_, slots, err := board.Parse(grid)
	return slots, err
}

func (u *Service) Validate(ctx context.Context, grid, words []string, noReuse bool) (bool, []domain.Conflict, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	return u.Validator.Validate(ctx, grid, words, noReuse)
}

func (u *Service) Hint(ctx context.Context, grid, words []string, noReuse bool) (domain.Hint, bool, error) {
	if u.Hinter == nil {
		return domain.Hint{}, false, errNotConfigured
	}
	return u.Hinter.Hint(ctx, grid, words, noReuse)
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
