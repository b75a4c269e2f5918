package httpadapter

import (
	"sort"

	"svw.info/crossword/internal/domain"
)

// clueNumber is display metadata: the standard crossword number for a
// cell where at least one slot starts. Slot IDs stay the engine's
// identity; numbers exist only for rendering.
type clueNumber struct {
	Row   int   `json:"row"`
	Col   int   `json:"col"`
	Num   int   `json:"num"`
	Slots []int `json:"slots"`
}

// numberCells walks slot starts in reading order and numbers them
// from 1. A cell starting both an across and a down slot gets one
// number covering both.
func numberCells(slots []domain.Slot) []clueNumber {
	byStart := make(map[domain.Cell][]int)
	for _, s := range slots {
		st := s.Start()
		byStart[st] = append(byStart[st], s.ID)
	}
	starts := make([]domain.Cell, 0, len(byStart))
	for c := range byStart {
		starts = append(starts, c)
	}
	sort.Slice(starts, func(i, j int) bool {
		if starts[i].Row != starts[j].Row {
			return starts[i].Row < starts[j].Row
		}
		return starts[i].Col < starts[j].Col
	})
	out := make([]clueNumber, 0, len(starts))
	for i, c := range starts {
		out = append(out, clueNumber{Row: c.Row, Col: c.Col, Num: i + 1, Slots: byStart[c]})
	}
	return out
}
