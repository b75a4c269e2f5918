package domain

// Cell identifies a square on the grid.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Slot is a maximal run of at least two fillable cells. It is the unit
// a word is placed into. IDs follow discovery order: across slots row
// by row first, then down slots column by column.
type Slot struct {
	ID        int       `json:"id"`
	Direction Direction `json:"direction"`
	Cells     []Cell    `json:"cells"`
}

// Length is the number of cells, and therefore the required word length.
func (s Slot) Length() int { return len(s.Cells) }

// Start returns the first cell of the run.
func (s Slot) Start() Cell { return s.Cells[0] }

// SolveOptions tune a single solve call.
type SolveOptions struct {
	// NoReuse forbids assigning the same word to two slots.
	NoReuse bool `json:"noReuse,omitempty"`
	// MaxNodes aborts the search after that many candidate attempts.
	// Zero means unlimited.
	MaxNodes int `json:"maxNodes,omitempty"`
	// OnProgress, when set, is called synchronously every ProgressEvery
	// nodes from inside the search loop.
	ProgressEvery int            `json:"-"`
	OnProgress    func(Progress) `json:"-"`
}

// Progress is a snapshot reported during a long solve.
type Progress struct {
	Nodes    int `json:"nodes"`
	Assigned int `json:"assigned"`
	Slots    int `json:"slots"`
}

// SolveResult is the outcome of a solve. On success the grid rows carry
// the placed letters; on failure they are identical to the input.
type SolveResult struct {
	Success    bool           `json:"success"`
	Grid       []string       `json:"grid"`
	Assignment map[int]string `json:"assignment"`
	Slots      []Slot         `json:"slots"`
}

// Conflict pinpoints a filled slot that breaks the dictionary rules.
type Conflict struct {
	SlotID int    `json:"slotId"`
	Cells  []Cell `json:"cells,omitempty"`
	Reason string `json:"reason"`
}

// Hint describes a certain next step for the UI.
type Hint struct {
	Message string   `json:"message,omitempty"`
	SlotID  int      `json:"slotId"`
	Cells   []Cell   `json:"cells,omitempty"`
	Word    string   `json:"word,omitempty"`
	Kind    HintKind `json:"kind"`
}

// Puzzle is a persisted crossword with metadata.
type Puzzle struct {
	ID        string   `json:"id,omitempty"`
	Grid      []string `json:"grid"`
	Words     []string `json:"words"`
	NoReuse   bool     `json:"noReuse,omitempty"`
	CreatedAt int64    `json:"createdAt,omitempty"`
	// Optional user metadata
	Name  string `json:"name,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	Rows      int    `json:"rows"`
	Cols      int    `json:"cols"`
	Words     int    `json:"words"`
	CreatedAt int64  `json:"createdAt"`
}
