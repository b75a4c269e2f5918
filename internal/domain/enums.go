package domain

// Direction tells which way a slot runs.
type Direction int

const (
	Across Direction = iota
	Down
)

func (d Direction) String() string {
	if d == Down {
		return "down"
	}
	return "across"
}

// HintKind classifies what a hint is telling the player.
type HintKind int

const (
	HintForced HintKind = iota // exactly one word still fits the slot
	HintStuck                  // nothing fits; an earlier placement must change
)
