package board

import "svw.info/crossword/internal/domain"

// scanSlots finds every maximal run of non-blocked cells with length at
// least 2. Across runs come first, top row to bottom; then down runs,
// leftmost column to rightmost. IDs are assigned in that order from 0,
// so a slot's ID is also its index in the returned slice.
func (b *Board) scanSlots() []domain.Slot {
	var out []domain.Slot
	for r := 0; r < b.height; r++ {
		for c := 0; c < b.width; {
			if b.cells[r][c] == Blocked {
				c++
				continue
			}
			start := c
			for c < b.width && b.cells[r][c] != Blocked {
				c++
			}
			if c-start >= 2 {
				cells := make([]domain.Cell, c-start)
				for i := range cells {
					cells[i] = domain.Cell{Row: r, Col: start + i}
				}
				out = append(out, domain.Slot{ID: len(out), Direction: domain.Across, Cells: cells})
			}
		}
	}
	for c := 0; c < b.width; c++ {
		for r := 0; r < b.height; {
			if b.cells[r][c] == Blocked {
				r++
				continue
			}
			start := r
			for r < b.height && b.cells[r][c] != Blocked {
				r++
			}
			if r-start >= 2 {
				cells := make([]domain.Cell, r-start)
				for i := range cells {
					cells[i] = domain.Cell{Row: start + i, Col: c}
				}
				out = append(out, domain.Slot{ID: len(out), Direction: domain.Down, Cells: cells})
			}
		}
	}
	return out
}
