package board

import "svw.info/crossword/internal/domain"

// Prev records one cell's byte before a placement.
type Prev struct {
	Cell domain.Cell
	Ch   byte
}

// Undo is the record a placement returns; replaying it restores the
// grid exactly.
type Undo []Prev

// Consistent reports whether a word can go into a slot right now: the
// lengths match and every cell is still open or already holds the
// word's letter at that position.
func (b *Board) Consistent(s domain.Slot, word string) bool {
	if len(word) != len(s.Cells) {
		return false
	}
	for i, c := range s.Cells {
		if ch := b.cells[c.Row][c.Col]; ch != Open && ch != word[i] {
			return false
		}
	}
	return true
}

// Place writes the word into the slot and returns the undo record.
// Every cell's previous byte is saved, including cells the word does
// not change, so undo needs no knowledge of what was overwritten.
func (b *Board) Place(s domain.Slot, word string) Undo {
	rec := make(Undo, len(s.Cells))
	for i, c := range s.Cells {
		rec[i] = Prev{Cell: c, Ch: b.cells[c.Row][c.Col]}
		b.cells[c.Row][c.Col] = word[i]
	}
	return rec
}

// Undo restores the bytes a placement overwrote.
func (b *Board) Undo(rec Undo) {
	for _, p := range rec {
		b.cells[p.Cell.Row][p.Cell.Col] = p.Ch
	}
}
