package hint

import (
	"context"
	"fmt"

	"svw.info/crossword/internal/board"
	"svw.info/crossword/internal/dictionary"
	"svw.info/crossword/internal/domain"
)

// Forced implements a minimal Hinter. It looks for a slot where the
// live grid leaves exactly one fitting word (a forced placement), and
// reports dead slots, where nothing fits anymore, as stuck.
type Forced struct{}

func NewForced() *Forced { return &Forced{} }

// Hint scans unfinished slots in ID order. A stuck slot anywhere wins,
// since it means the current fill cannot be completed; otherwise the
// first forced slot is suggested. Counting matches the search: viable
// means consistent with the grid, regardless of words used elsewhere.
func (h *Forced) Hint(ctx context.Context, grid, words []string, noReuse bool) (domain.Hint, bool, error) {
	b, slots, err := board.Parse(grid)
	if err != nil {
		return domain.Hint{}, false, err
	}
	doms := dictionary.Domains(slots, dictionary.Normalize(words))

	forced := -1
	var forcedWord string
	for _, s := range slots {
		if !hasOpenCell(b, s) {
			continue
		}
		n := 0
		var last string
		for _, w := range doms[s.ID] {
			if b.Consistent(s, w) {
				n++
				last = w
				if n > 1 {
					break
				}
			}
		}
		if n == 0 {
			return domain.Hint{
				Message: fmt.Sprintf("Nothing fits slot %d (%s); an earlier word must change", s.ID, s.Direction),
				SlotID:  s.ID,
				Cells:   s.Cells,
				Kind:    domain.HintStuck,
			}, true, nil
		}
		if n == 1 && forced == -1 {
			forced = s.ID
			forcedWord = last
		}
	}
	if forced >= 0 {
		s := slots[forced]
		return domain.Hint{
			Message: fmt.Sprintf("Only %q fits slot %d (%s)", forcedWord, s.ID, s.Direction),
			SlotID:  s.ID,
			Cells:   s.Cells,
			Word:    forcedWord,
			Kind:    domain.HintForced,
		}, true, nil
	}
	return domain.Hint{}, false, nil
}

func hasOpenCell(b *board.Board, s domain.Slot) bool {
	for _, c := range s.Cells {
		if b.At(c) == board.Open {
			return true
		}
	}
	return false
}
