package board

import (
	"errors"
	"strings"
	"testing"

	"svw.info/crossword/internal/domain"
)

// A small grid with three across runs and two down runs.
var sample = []string{
	"#####",
	"#..##",
	"#..##",
	"##..#",
	"#####",
}

func TestParseDiscoversSlots(t *testing.T) {
	_, slots, err := Parse(sample)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	want := []domain.Slot{
		{ID: 0, Direction: domain.Across, Cells: []domain.Cell{{Row: 1, Col: 1}, {Row: 1, Col: 2}}},
		{ID: 1, Direction: domain.Across, Cells: []domain.Cell{{Row: 2, Col: 1}, {Row: 2, Col: 2}}},
		{ID: 2, Direction: domain.Across, Cells: []domain.Cell{{Row: 3, Col: 2}, {Row: 3, Col: 3}}},
		{ID: 3, Direction: domain.Down, Cells: []domain.Cell{{Row: 1, Col: 1}, {Row: 2, Col: 1}}},
		{ID: 4, Direction: domain.Down, Cells: []domain.Cell{{Row: 1, Col: 2}, {Row: 2, Col: 2}, {Row: 3, Col: 2}}},
	}
	if len(slots) != len(want) {
		t.Fatalf("got %d slots, want %d: %+v", len(slots), len(want), slots)
	}
	for i, s := range slots {
		w := want[i]
		if s.ID != w.ID || s.Direction != w.Direction {
			t.Fatalf("slot %d: got id=%d dir=%v, want id=%d dir=%v", i, s.ID, s.Direction, w.ID, w.Direction)
		}
		if len(s.Cells) != len(w.Cells) {
			t.Fatalf("slot %d: got %d cells, want %d", i, len(s.Cells), len(w.Cells))
		}
		for j := range s.Cells {
			if s.Cells[j] != w.Cells[j] {
				t.Fatalf("slot %d cell %d: got %+v, want %+v", i, j, s.Cells[j], w.Cells[j])
			}
		}
	}
}

func TestParseRejectsBadShapes(t *testing.T) {
	cases := []struct {
		name string
		rows []string
	}{
		{"no rows", nil},
		{"empty slice", []string{}},
		{"ragged", []string{"####", "#.#"}},
		{"ragged long", []string{"##", "###"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := Parse(tc.rows)
			var ve *domain.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("Parse(%q) err = %v, want ValidationError", tc.rows, err)
			}
		})
	}
}

func TestParseAllowsSlotlessGrids(t *testing.T) {
	// All runs have length 1, so nothing qualifies as a slot. That is
	// a valid parse; rejecting it is the problem builder's job.
	_, slots, err := Parse([]string{"###", "#.#", "###"})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("got %d slots, want 0: %+v", len(slots), slots)
	}
}

func TestSlotsAreMaximal(t *testing.T) {
	// Cross shape: one across run, one down run, no length-1 noise.
	_, slots, err := Parse([]string{
		"#.#",
		"...",
		"#.#",
	})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(slots) != 2 {
		t.Fatalf("got %d slots, want 2: %+v", len(slots), slots)
	}
	if slots[0].Direction != domain.Across || slots[0].Length() != 3 {
		t.Fatalf("slot 0 should be the full middle row: %+v", slots[0])
	}
	if slots[1].Direction != domain.Down || slots[1].Length() != 3 {
		t.Fatalf("slot 1 should be the full middle column: %+v", slots[1])
	}
}

func TestConsistent(t *testing.T) {
	b, slots, err := Parse([]string{"#AT##", "#..##", "#..##", "##..#", "#####"})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	// slots[0] is row 0 cols 1-2, holding "AT" as fixed content.
	cases := []struct {
		name string
		slot domain.Slot
		word string
		want bool
	}{
		{"matches fixed letters", slots[0], "AT", true},
		{"conflicts with fixed letter", slots[0], "AN", false},
		{"all open cells", slots[1], "NO", true},
		{"length mismatch", slots[1], "TOO", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.Consistent(tc.slot, tc.word); got != tc.want {
				t.Fatalf("Consistent(%v, %q) = %v, want %v", tc.slot.ID, tc.word, got, tc.want)
			}
		})
	}
}

func TestPlaceThenUndoRestores(t *testing.T) {
	b, slots, err := Parse(sample)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	before := strings.Join(b.Rows(), "\n")

	// Overlapping placements: the down slot crosses both across slots.
	u1 := b.Place(slots[4], "TOO")
	u2 := b.Place(slots[0], "AT")
	after := b.Rows()
	if after[1] != "#AT##" {
		t.Fatalf("row 1 after placements = %q, want %q", after[1], "#AT##")
	}

	b.Undo(u2)
	b.Undo(u1)
	if got := strings.Join(b.Rows(), "\n"); got != before {
		t.Fatalf("grid not restored:\ngot\n%s\nwant\n%s", got, before)
	}
}

func TestUndoRestoresOverwrittenLetters(t *testing.T) {
	b, slots, err := Parse(sample)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	// Place a word, then a crossing word that rewrites the shared cell,
	// then undo only the second. The first word must survive intact.
	b.Place(slots[0], "AT")
	u := b.Place(slots[4], "TOO")
	b.Undo(u)
	if got := b.Rows()[1]; got != "#AT##" {
		t.Fatalf("row 1 = %q, want %q", got, "#AT##")
	}
}

func TestReadGridSkipsBlankLines(t *testing.T) {
	in := "##\n\n#.\n   \n..\n"
	rows, err := ReadGrid(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadGrid failed: %v", err)
	}
	want := []string{"##", "#.", ".."}
	if len(rows) != len(want) {
		t.Fatalf("got %d rows, want %d: %q", len(rows), len(want), rows)
	}
	for i := range rows {
		if rows[i] != want[i] {
			t.Fatalf("row %d = %q, want %q", i, rows[i], want[i])
		}
	}
}

// FuzzParse checks structural invariants on arbitrary grid text.
func FuzzParse(f *testing.F) {
	f.Add("#####\n#..##\n#..##\n##..#\n#####")
	f.Add("..\n..")
	f.Add("#.#\n...\n#.#")
	f.Add("")
	f.Add("##\n###")

	f.Fuzz(func(t *testing.T, raw string) {
		rows := strings.Split(raw, "\n")
		b, slots, err := Parse(rows)
		if err != nil {
			var ve *domain.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("Parse returned a non-validation error: %v", err)
			}
			return
		}
		for i, s := range slots {
			if s.ID != i {
				t.Fatalf("slot %d has ID %d", i, s.ID)
			}
			if len(s.Cells) < 2 {
				t.Fatalf("slot %d shorter than 2: %+v", i, s)
			}
			for _, c := range s.Cells {
				if c.Row < 0 || c.Row >= b.Height() || c.Col < 0 || c.Col >= b.Width() {
					t.Fatalf("slot %d cell out of bounds: %+v", i, c)
				}
				if b.At(c) == Blocked {
					t.Fatalf("slot %d covers a blocked cell: %+v", i, c)
				}
			}
		}
		// Parsing must not alter the input rows.
		for i, row := range b.Rows() {
			if row != rows[i] {
				t.Fatalf("row %d changed by Parse: %q -> %q", i, rows[i], row)
			}
		}
	})
}
