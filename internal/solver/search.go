package solver

import (
	"errors"

	"svw.info/crossword/internal/domain"
)

// ErrNodeBudget is returned when a search exceeds its MaxNodes option.
// It is an abort, not a "no solution" verdict.
var ErrNodeBudget = errors.New("node budget exhausted")

// search is the mutable state both engines drive: the assignment, the
// node counter, and the abort flag. Words are never empty strings, so
// "" doubles as the unassigned sentinel.
type search struct {
	p        *Problem
	opts     domain.SolveOptions
	assigned []string // word per slot ID, "" while unassigned
	count    int      // how many slots are assigned
	nodes    int
	err      error // set once on ctx or budget abort
}

func newSearch(p *Problem, opts domain.SolveOptions) *search {
	return &search{p: p, opts: opts, assigned: make([]string, len(p.Slots))}
}

// visit counts one candidate attempt. It reports false when the node
// budget is gone, which aborts the whole search.
func (s *search) visit() bool {
	s.nodes++
	if s.opts.MaxNodes > 0 && s.nodes > s.opts.MaxNodes {
		s.err = ErrNodeBudget
		return false
	}
	if s.opts.OnProgress != nil && s.opts.ProgressEvery > 0 && s.nodes%s.opts.ProgressEvery == 0 {
		s.opts.OnProgress(domain.Progress{Nodes: s.nodes, Assigned: s.count, Slots: len(s.p.Slots)})
	}
	return true
}

// used reports whether a word is already assigned somewhere.
func (s *search) used(w string) bool {
	for _, a := range s.assigned {
		if a == w {
			return true
		}
	}
	return false
}

// nextSlot picks the unassigned slot with the fewest candidates that
// still fit the live grid. Ties keep the lowest ID, and a zero count
// wins immediately since that branch is already dead. The count
// deliberately ignores the no-reuse rule; only the candidate loop
// enforces it.
func (s *search) nextSlot() (slot, viable int) {
	best, bestCount := -1, -1
	for i := range s.p.Slots {
		if s.assigned[i] != "" {
			continue
		}
		n := 0
		for _, w := range s.p.Domains[i] {
			if s.p.Board.Consistent(s.p.Slots[i], w) {
				n++
			}
		}
		if bestCount == -1 || n < bestCount {
			best, bestCount = i, n
			if n == 0 {
				break
			}
		}
	}
	return best, bestCount
}

// result snapshots the outcome. On success the board keeps its
// placements; on failure every placement has been rolled back, so the
// rows equal the parsed input.
func (s *search) result(ok bool) *domain.SolveResult {
	res := &domain.SolveResult{
		Success:    ok,
		Grid:       s.p.Board.Rows(),
		Assignment: make(map[int]string, s.count),
		Slots:      s.p.Slots,
	}
	for i, w := range s.assigned {
		if w != "" {
			res.Assignment[i] = w
		}
	}
	return res
}
