package solver

import (
	"svw.info/crossword/internal/board"
	"svw.info/crossword/internal/dictionary"
	"svw.info/crossword/internal/domain"
)

// Problem is a parsed crossword ready to search: the live board, its
// slots in discovery order, and each slot's candidate words.
type Problem struct {
	Board   *board.Board
	Slots   []domain.Slot
	Domains [][]string
}

// NewProblem parses the grid, rejects grids with nothing to fill, and
// builds per-slot domains from the normalized word list.
func NewProblem(grid, words []string) (*Problem, error) {
	b, slots, err := board.Parse(grid)
	if err != nil {
		return nil, err
	}
	if len(slots) == 0 {
		return nil, &domain.ValidationError{Reason: "no slots: the grid has no run of 2 or more fillable cells"}
	}
	doms := dictionary.Domains(slots, dictionary.Normalize(words))
	return &Problem{Board: b, Slots: slots, Domains: doms}, nil
}
