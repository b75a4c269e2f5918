package validator

import (
	"context"
	"fmt"

	"svw.info/crossword/internal/board"
	"svw.info/crossword/internal/dictionary"
	"svw.info/crossword/internal/domain"
)

// DictValidator checks the filled slots of a grid against the word
// list: every completed slot must hold a dictionary word, and under
// no-reuse no word may appear in two slots. Slots with open cells are
// ignored; an in-progress fill is not a conflict.
type DictValidator struct{}

func New() *DictValidator { return &DictValidator{} }

func (v *DictValidator) Validate(ctx context.Context, grid, words []string, noReuse bool) (bool, []domain.Conflict, error) {
	b, slots, err := board.Parse(grid)
	if err != nil {
		return false, nil, err
	}
	dict := make(map[string]bool)
	for _, w := range dictionary.Normalize(words) {
		dict[w] = true
	}
	conf := make([]domain.Conflict, 0, 4)
	first := make(map[string]int) // word -> lowest slot ID holding it
	for _, s := range slots {
		w, filled := slotWord(b, s)
		if !filled {
			continue
		}
		if !dict[w] {
			conf = append(conf, domain.Conflict{
				SlotID: s.ID,
				Cells:  s.Cells,
				Reason: fmt.Sprintf("%q is not in the dictionary", w),
			})
			continue
		}
		if prev, seen := first[w]; seen {
			if noReuse {
				conf = append(conf, domain.Conflict{
					SlotID: s.ID,
					Cells:  s.Cells,
					Reason: fmt.Sprintf("%q is already used by slot %d", w, prev),
				})
			}
			continue
		}
		first[w] = s.ID
	}
	return len(conf) == 0, conf, nil
}

// slotWord reads the slot's content, reporting false while any cell is
// still open.
func slotWord(b *board.Board, s domain.Slot) (string, bool) {
	buf := make([]byte, len(s.Cells))
	for i, c := range s.Cells {
		ch := b.At(c)
		if ch == board.Open {
			return "", false
		}
		buf[i] = ch
	}
	return string(buf), true
}
