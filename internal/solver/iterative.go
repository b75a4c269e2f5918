package solver

import (
	"context"
	"time"

	"svw.info/crossword/internal/board"
	"svw.info/crossword/internal/domain"
	"svw.info/crossword/internal/ports"
)

// IterativeSolver runs the same search as RecursiveSolver on an
// explicit frame stack instead of the call stack. Results and node
// counts match the recursive engine on every input.
type IterativeSolver struct{}

func NewIterativeSolver() *IterativeSolver { return &IterativeSolver{} }

// frame is one depth of the search: the slot chosen there, the next
// candidate index, and the undo record while this depth's word is
// placed. The top frame holds no placement while its candidate loop
// runs; every frame below it does.
type frame struct {
	slot int
	next int
	rec  board.Undo
}

func (e *IterativeSolver) Solve(ctx context.Context, grid, words []string, opts domain.SolveOptions) (*domain.SolveResult, ports.Stats, error) {
	start := time.Now()
	p, err := NewProblem(grid, words)
	if err != nil {
		return nil, ports.Stats{}, err
	}
	s := newSearch(p, opts)
	ok := s.runIterative(ctx)
	st := ports.Stats{Nodes: s.nodes, Duration: time.Since(start)}
	if s.err != nil {
		return nil, st, s.err
	}
	return s.result(ok), st, nil
}

func (e *IterativeSolver) Unique(ctx context.Context, grid, words []string, opts domain.SolveOptions) (bool, ports.Stats, error) {
	start := time.Now()
	p, err := NewProblem(grid, words)
	if err != nil {
		return false, ports.Stats{}, err
	}
	s := newSearch(p, opts)
	count := s.countIterative(ctx, 2)
	st := ports.Stats{Nodes: s.nodes, Duration: time.Since(start)}
	if s.err != nil {
		return false, st, s.err
	}
	return count == 1, st, nil
}

// runIterative looks for the first solution.
func (s *search) runIterative(ctx context.Context) bool {
	var stack []frame

	// enter mirrors the head of one recursive step: the ctx gate, the
	// all-assigned check, then slot selection. It pushes the new frame
	// unless the depth is already decided.
	enter := func() (done, dead bool) {
		if ctx.Err() != nil {
			s.err = ctx.Err()
			return false, true
		}
		if s.count == len(s.p.Slots) {
			return true, false
		}
		i, n := s.nextSlot()
		if n == 0 {
			return false, true
		}
		stack = append(stack, frame{slot: i})
		return false, false
	}
	// unplace rolls back the top frame's placement.
	unplace := func() {
		f := &stack[len(stack)-1]
		s.assigned[f.slot] = ""
		s.count--
		s.p.Board.Undo(f.rec)
		f.rec = nil
	}
	// unwindAll restores the board after an abort, deepest placement
	// first. The top frame is already placement-free when called.
	unwindAll := func() {
		for len(stack) > 0 {
			stack = stack[:len(stack)-1]
			if len(stack) > 0 {
				unplace()
			}
		}
	}

	if done, dead := enter(); done || dead {
		return done
	}
	for len(stack) > 0 {
		f := &stack[len(stack)-1]
		slot := s.p.Slots[f.slot]
		dom := s.p.Domains[f.slot]
		placed := false
		for f.next < len(dom) {
			w := dom[f.next]
			f.next++
			if !s.visit() {
				break
			}
			if s.opts.NoReuse && s.used(w) {
				continue
			}
			if !s.p.Board.Consistent(slot, w) {
				continue
			}
			f.rec = s.p.Board.Place(slot, w)
			s.assigned[f.slot] = w
			s.count++
			placed = true
			break
		}
		if s.err != nil {
			unwindAll()
			return false
		}
		if !placed {
			// depth exhausted: drop it and retry the depth below with
			// its next candidate
			stack = stack[:len(stack)-1]
			if len(stack) > 0 {
				unplace()
			}
			continue
		}
		done, dead := enter()
		if done {
			return true
		}
		if dead {
			unplace()
			if s.err != nil {
				unwindAll()
				return false
			}
		}
	}
	return false
}

// countIterative counts solutions up to limit, backtracking through
// full assignments instead of stopping at the first.
func (s *search) countIterative(ctx context.Context, limit int) int {
	var stack []frame
	count := 0

	enter := func() (done, dead bool) {
		if ctx.Err() != nil {
			s.err = ctx.Err()
			return false, true
		}
		if s.count == len(s.p.Slots) {
			return true, false
		}
		i, n := s.nextSlot()
		if n == 0 {
			return false, true
		}
		stack = append(stack, frame{slot: i})
		return false, false
	}
	unplace := func() {
		f := &stack[len(stack)-1]
		s.assigned[f.slot] = ""
		s.count--
		s.p.Board.Undo(f.rec)
		f.rec = nil
	}
	unwindAll := func() {
		for len(stack) > 0 {
			stack = stack[:len(stack)-1]
			if len(stack) > 0 {
				unplace()
			}
		}
	}

	if done, dead := enter(); done || dead {
		if done {
			count++
		}
		return count
	}
	for len(stack) > 0 {
		f := &stack[len(stack)-1]
		slot := s.p.Slots[f.slot]
		dom := s.p.Domains[f.slot]
		placed := false
		for f.next < len(dom) {
			w := dom[f.next]
			f.next++
			if !s.visit() {
				break
			}
			if s.opts.NoReuse && s.used(w) {
				continue
			}
			if !s.p.Board.Consistent(slot, w) {
				continue
			}
			f.rec = s.p.Board.Place(slot, w)
			s.assigned[f.slot] = w
			s.count++
			placed = true
			break
		}
		if s.err != nil {
			unwindAll()
			return count
		}
		if !placed {
			stack = stack[:len(stack)-1]
			if len(stack) > 0 {
				unplace()
			}
			continue
		}
		done, dead := enter()
		if done {
			count++
			if count >= limit {
				unplace()
				unwindAll()
				return count
			}
			dead = true // found one, keep searching from here
		}
		if dead {
			unplace()
			if s.err != nil {
				unwindAll()
				return count
			}
		}
	}
	return count
}
