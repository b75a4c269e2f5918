package domain

// ValidationError reports structurally unusable input: an empty grid,
// ragged rows, or a grid with nothing to fill. It is distinct from a
// solvable-but-unsolved puzzle, which is a normal result, not an error.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return "invalid puzzle: " + e.Reason }
