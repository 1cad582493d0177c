package fairyring

import "fmt"

// State is a life-cycle phase of a fungal cell.
type State uint8

const (
	Empty State = iota
	Spore
	Young
	Maturing
	Mushroom
	Older
	Decaying
	Dead1
	Dead2
	Inert
)

// StateCount is the number of valid states.
const StateCount = int(Inert) + 1

var stateNames = [StateCount]string{
	"empty", "spore", "young", "maturing", "mushroom",
	"older", "decaying", "dead1", "dead2", "inert",
}

// Valid reports whether s is one of the enumerated states.
func (s State) Valid() bool { return s <= Inert }

func (s State) String() string {
	if !s.Valid() {
		return fmt.Sprintf("state(%d)", uint8(s))
	}
	return stateNames[s]
}

// ReleasesToxin reports whether cells in this state emit toxin.
func (s State) ReleasesToxin() bool {
	return s == Maturing || s == Older || s == Decaying
}

// Fruiting reports whether s counts as a fruiting body for ring measurement.
func (s State) Fruiting() bool {
	return s == Mushroom || s == Older
}

// ParseState converts a state name or digit into a State.
func ParseState(name string) (State, error) {
	for i, n := range stateNames {
		if n == name || fmt.Sprint(i) == name {
			return State(i), nil
		}
	}
	return Empty, fmt.Errorf("unknown state %q", name)
}
