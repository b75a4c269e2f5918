package solver

import (
	"context"
	"time"

	"svw.info/crossword/internal/domain"
	"svw.info/crossword/internal/ports"
)

// RecursiveSolver runs the backtracking search with native recursion.
type RecursiveSolver struct{}

func NewRecursiveSolver() *RecursiveSolver { return &RecursiveSolver{} }

func (e *RecursiveSolver) Solve(ctx context.Context, grid, words []string, opts domain.SolveOptions) (*domain.SolveResult, ports.Stats, error) {
	start := time.Now()
	p, err := NewProblem(grid, words)
	if err != nil {
		return nil, ports.Stats{}, err
	}
	s := newSearch(p, opts)

	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil {
			s.err = ctx.Err()
			return false
		}
		if s.count == len(s.p.Slots) {
			return true
		}
		i, n := s.nextSlot()
		if n == 0 {
			return false
		}
		slot := s.p.Slots[i]
		for _, w := range s.p.Domains[i] {
			if !s.visit() {
				return false
			}
			if s.opts.NoReuse && s.used(w) {
				continue
			}
			if !s.p.Board.Consistent(slot, w) {
				continue
			}
			rec := s.p.Board.Place(slot, w)
			s.assigned[i] = w
			s.count++
			if dfs() {
				return true
			}
			s.assigned[i] = ""
			s.count--
			s.p.Board.Undo(rec)
			if s.err != nil {
				return false
			}
		}
		return false
	}

	ok := dfs()
	st := ports.Stats{Nodes: s.nodes, Duration: time.Since(start)}
	if s.err != nil {
		return nil, st, s.err
	}
	return s.result(ok), st, nil
}

// Unique counts solutions up to 2 with the same machine Solve uses and
// reports whether exactly one exists.
func (e *RecursiveSolver) Unique(ctx context.Context, grid, words []string, opts domain.SolveOptions) (bool, ports.Stats, error) {
	start := time.Now()
	p, err := NewProblem(grid, words)
	if err != nil {
		return false, ports.Stats{}, err
	}
	s := newSearch(p, opts)
	count := 0

	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil {
			s.err = ctx.Err()
			return true // stop early
		}
		if s.count == len(s.p.Slots) {
			count++
			return count >= 2
		}
		i, n := s.nextSlot()
		if n == 0 {
			return false
		}
		slot := s.p.Slots[i]
		for _, w := range s.p.Domains[i] {
			if !s.visit() {
				return true
			}
			if s.opts.NoReuse && s.used(w) {
				continue
			}
			if !s.p.Board.Consistent(slot, w) {
				continue
			}
			rec := s.p.Board.Place(slot, w)
			s.assigned[i] = w
			s.count++
			stop := dfs()
			s.assigned[i] = ""
			s.count--
			s.p.Board.Undo(rec)
			if stop {
				return true
			}
		}
		return false
	}

	_ = dfs()
	st := ports.Stats{Nodes: s.nodes, Duration: time.Since(start)}
	if s.err != nil {
		return false, st, s.err
	}
	return count == 1, st, nil
}
