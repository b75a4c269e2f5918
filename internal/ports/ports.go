package ports

import (
	"context"
	"time"

	"svw.info/crossword/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver fills a grid from a word list and can test uniqueness. Grid
// rows and words arrive raw; implementations parse and normalize.
type Solver interface {
	Solve(ctx context.Context, grid, words []string, opts domain.SolveOptions) (*domain.SolveResult, Stats, error)
	Unique(ctx context.Context, grid, words []string, opts domain.SolveOptions) (bool, Stats, error)
}

// Validator checks filled slots of a grid against the dictionary.
type Validator interface {
	Validate(ctx context.Context, grid, words []string, noReuse bool) (ok bool, conflicts []domain.Conflict, err error)
}

// Hinter reports a certain next step, if one exists.
type Hinter interface {
	Hint(ctx context.Context, grid, words []string, noReuse bool) (domain.Hint, bool, error)
}

// Storage persists and retrieves puzzles as JSON.
type Storage interface {
	Save(ctx context.Context, p *domain.Puzzle) error
	Load(ctx context.Context, id string) (*domain.Puzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
}
