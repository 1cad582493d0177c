package fairyring

import (
	"fmt"

	"fungi-ca/internal/geometry"
	"fungi-ca/internal/toxin"
	"fungi-ca/pkg/core"
)

// Frame is the read-only view of time t handed to a policy while it computes
// time t+1. RNG is the sim's single random stream.
type Frame struct {
	States *Grid
	Toxins *toxin.Field
	Params Params
	Kernel toxin.Kernel
	RNG    *core.RNG
}

// Policy decides how one step advances. StateTransition is called once per
// active coordinate in row-major order; ToxinTransition runs after the whole
// next state grid is known.
type Policy interface {
	Name() string
	StateTransition(f *Frame, at geometry.Point) State
	ToxinTransition(f *Frame, next *Grid) *toxin.Field
}

// PolicyFor returns the policy implementing coupling c.
func PolicyFor(c Coupling) Policy {
	switch c {
	case CouplingThreshold:
		return Threshold{}
	case CouplingProbabilistic:
		return Probabilistic{}
	case CouplingToxinDeath:
		return ToxinDeath{}
	default:
		return Basic{}
	}
}

// Basic grows without any toxin feedback and keeps no toxin field.
type Basic struct{}

func (Basic) Name() string { return CouplingNone.String() }

func (Basic) StateTransition(f *Frame, at geometry.Point) State {
	return lifecycle(f, at, nil)
}

func (Basic) ToxinTransition(*Frame, *Grid) *toxin.Field { return toxin.NewField() }

// Threshold ignores Young neighbours while the toxicity at the cell exceeds
// the configured threshold. No draw is consumed for ignored neighbours.
type Threshold struct{}

func (Threshold) Name() string { return CouplingThreshold.String() }

func (Threshold) StateTransition(f *Frame, at geometry.Point) State {
	blocked := f.Toxins.At(at) > f.Params.ToxinThreshold
	return lifecycle(f, at, func() bool { return blocked })
}

func (Threshold) ToxinTransition(f *Frame, next *Grid) *toxin.Field {
	return emitToxins(f, next)
}

// Probabilistic ignores each Young neighbour with probability equal to the
// toxicity at the cell. The inhibition draw precedes the spread draw.
type Probabilistic struct{}

func (Probabilistic) Name() string { return CouplingProbabilistic.String() }

func (Probabilistic) StateTransition(f *Frame, at geometry.Point) State {
	tox := f.Toxins.At(at)
	return lifecycle(f, at, func() bool { return f.RNG.Chance(tox) })
}

func (Probabilistic) ToxinTransition(f *Frame, next *Grid) *toxin.Field {
	return emitToxins(f, next)
}

// ToxinDeath kills Spore through Older cells with probability equal to the
// local toxicity before the usual life cycle applies. Spread is unthrottled.
type ToxinDeath struct{}

func (ToxinDeath) Name() string { return CouplingToxinDeath.String() }

func (ToxinDeath) StateTransition(f *Frame, at geometry.Point) State {
	switch f.States.At(at) {
	case Spore, Young, Maturing, Mushroom, Older:
		if f.RNG.Chance(f.Toxins.At(at)) {
			return Dead1
		}
	}
	return lifecycle(f, at, nil)
}

func (ToxinDeath) ToxinTransition(f *Frame, next *Grid) *toxin.Field {
	return emitToxins(f, next)
}

// lifecycle applies the shared state table. Empty cells try to regrow from
// Young neighbours; blocked, when set, is consulted per Young neighbour and
// skips it when true.
func lifecycle(f *Frame, at geometry.Point, blocked func() bool) State {
	switch s := f.States.At(at); s {
	case Empty:
		return regrow(f, at, blocked)
	case Spore:
		if f.RNG.Chance(f.Params.SporulationProbability) {
			return Young
		}
		return Spore
	case Young:
		return Maturing
	case Maturing:
		if f.RNG.Chance(f.Params.MushroomProbability) {
			return Mushroom
		}
		return Older
	case Mushroom, Older:
		return Decaying
	case Decaying:
		return Dead1
	case Dead1:
		return Dead2
	case Dead2:
		return Empty
	case Inert:
		return Inert
	default:
		panic(fmt.Sprintf("fairyring: unknown state %d at %v", uint8(s), at))
	}
}

// regrow walks the Moore neighbours in MooreOffsets order. The first Young
// neighbour whose spread trial succeeds turns the cell Young.
func regrow(f *Frame, at geometry.Point, blocked func() bool) State {
	for _, off := range geometry.MooreOffsets {
		if f.States.At(at.Add(off)) != Young {
			continue
		}
		if blocked != nil && blocked() {
			continue
		}
		if f.RNG.Chance(f.Params.SpreadProbability / off.Norm()) {
			return Young
		}
	}
	return Empty
}

// emitToxins decays the previous field, marks every toxin-releasing cell of
// next as a full-strength source and convolves with the frame kernel.
func emitToxins(f *Frame, next *Grid) *toxin.Field {
	emitters := next.Collect(State.ReleasesToxin)
	isEmitter := func(p geometry.Point) bool { return next.At(p).ReleasesToxin() }
	return toxin.Step(f.Toxins, emitters, isEmitter, f.Params.ToxinDecay, f.Kernel)
}
