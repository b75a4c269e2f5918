package board

import (
	"fmt"

	"svw.info/crossword/internal/domain"
)

// Cell markers. Any other byte in a parsed grid is fixed content that
// placed words must match.
const (
	Blocked byte = '#'
	Open    byte = '.'
)

// Board is a mutable crossword grid backed by a byte matrix.
type Board struct {
	cells  [][]byte
	height int
	width  int
}

// Parse builds a board from raw rows and discovers its slots. Rows must
// be non-empty and rectangular; the slot set may legally be empty.
func Parse(rows []string) (*Board, []domain.Slot, error) {
	if len(rows) == 0 {
		return nil, nil, &domain.ValidationError{Reason: "empty grid"}
	}
	width := len(rows[0])
	cells := make([][]byte, len(rows))
	for r, row := range rows {
		if len(row) != width {
			return nil, nil, &domain.ValidationError{
				Reason: fmt.Sprintf("ragged grid: row %d is %d wide, want %d", r, len(row), width),
			}
		}
		cells[r] = []byte(row)
	}
	b := &Board{cells: cells, height: len(rows), width: width}
	return b, b.scanSlots(), nil
}

func (b *Board) Height() int { return b.height }
func (b *Board) Width() int  { return b.width }

// At returns the byte at a cell. The caller keeps coordinates in range.
func (b *Board) At(c domain.Cell) byte { return b.cells[c.Row][c.Col] }

// Rows snapshots the grid as strings, one per row.
func (b *Board) Rows() []string {
	out := make([]string, b.height)
	for r, row := range b.cells {
		out[r] = string(row)
	}
	return out
}
