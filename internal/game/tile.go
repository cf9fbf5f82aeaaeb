package game

import "strconv"

// Kind is a tile's fixed identity, assigned once during board
// generation: KindMine, KindEmpty (no adjacent mines) or a clue
// value 1..8 equal to the number of adjacent mines.
type Kind int8

const (
	KindMine  Kind = -1
	KindEmpty Kind = 0
)

func (k Kind) IsClue() bool {
	return 1 <= k && k <= 8
}

func (k Kind) String() string {
	switch {
	case k == KindMine:
		return "*"
	case k == KindEmpty:
		return "."
	case k.IsClue():
		return strconv.Itoa(int(k))
	default:
		return "!"
	}
}

// Tile is one grid cell. Kind never changes after generation; Revealed
// and Flagged flip during play, and Exploded / WrongFlag are set only
// by the end-of-round sweep.
type Tile struct {
	X, Y      int
	Kind      Kind
	Revealed  bool
	Flagged   bool
	Exploded  bool
	WrongFlag bool
}

// TileState is the visual state a presentation layer should draw for a
// tile. It is derived from the tile flags; the core never touches
// images or colors.
type TileState int8

const (
	StateHidden TileState = iota
	StateFlagged
	StateEmpty
	StateClue1
	StateClue2
	StateClue3
	StateClue4
	StateClue5
	StateClue6
	StateClue7
	StateClue8
	StateMineExploded
	StateMineFlagged
	StateMineSwept
	StateWrongFlag
)

// State maps the tile's flags to its visual state.
func (t Tile) State() TileState {
	if !t.Revealed {
		if t.Flagged {
			return StateFlagged
		}
		return StateHidden
	}
	if t.WrongFlag {
		return StateWrongFlag
	}
	if t.Kind == KindMine {
		switch {
		case t.Exploded:
			return StateMineExploded
		case t.Flagged:
			return StateMineFlagged
		default:
			return StateMineSwept
		}
	}
	if t.Kind.IsClue() {
		return StateClue1 + TileState(t.Kind-1)
	}
	return StateEmpty
}

// Clue returns the clue digit for StateClue1..StateClue8 states and 0
// otherwise.
func (s TileState) Clue() int {
	if StateClue1 <= s && s <= StateClue8 {
		return int(s-StateClue1) + 1
	}
	return 0
}
