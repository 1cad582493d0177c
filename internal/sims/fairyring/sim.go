package fairyring

import (
	"github.com/juju/loggo"
	errgo "gopkg.in/errgo.v1"

	"fungi-ca/internal/core"
	"fungi-ca/internal/geometry"
	"fungi-ca/internal/toxin"
	pcore "fungi-ca/pkg/core"
)

var logger = loggo.GetLogger("fairyring.sim")

var (
	// ErrInvalidConfig is the cause of every configuration rejection.
	ErrInvalidConfig = errgo.New("invalid fairy-ring config")
	// ErrOutOfBounds is returned when a bounded sim is written outside its grid.
	ErrOutOfBounds = errgo.New("coordinate outside grid bounds")
	// ErrUnknownState is returned when a caller writes an invalid state value.
	ErrUnknownState = errgo.New("unknown cell state")
)

// Sim is a sparse fairy-ring automaton with a coupled toxin field.
type Sim struct {
	cfg    Config
	kernel toxin.Kernel

	bounded bool
	bounds  geometry.Rect

	// states[i] and toxins[i] hold time base+i. Without history only the
	// latest entry is kept.
	states []*Grid
	toxins []*toxin.Field
	base   int
	time   int

	rng *pcore.RNG

	showToxins bool
	view       *core.ByteGrid
}

// New creates an unbounded simulation starting from an empty grid at time 0.
func New(cfg Config) (*Sim, error) {
	s := &Sim{}
	if err := s.configure(cfg); err != nil {
		return nil, err
	}
	s.Reset(cfg.Seed)
	return s, nil
}

// NewBounded creates a simulation confined to [0,w)x[0,h).
func NewBounded(cfg Config, w, h int) (*Sim, error) {
	cfg.Width, cfg.Height = w, h
	s := &Sim{
		bounded: true,
		bounds:  geometry.Rect{Min: geometry.Pt(0, 0), Max: geometry.Pt(w-1, h-1)},
	}
	if err := s.configure(cfg); err != nil {
		return nil, err
	}
	s.Reset(cfg.Seed)
	return s, nil
}

func (s *Sim) configure(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return errgo.Mask(err, errgo.Is(ErrInvalidConfig))
	}
	k, err := cfg.DiffusionKernel()
	if err != nil {
		return errgo.WithCausef(err, ErrInvalidConfig, "diffusion kernel")
	}
	s.cfg = cfg
	s.kernel = k
	return nil
}

// Name implements core.Sim.
func (s *Sim) Name() string { return "fairyring" }

// Size implements core.Sim.
func (s *Sim) Size() core.Size { return core.Size{W: s.cfg.Width, H: s.cfg.Height} }

// Config returns the active configuration.
func (s *Sim) Config() Config { return s.cfg }

// Kernel returns the diffusion kernel in use.
func (s *Sim) Kernel() toxin.Kernel { return s.kernel }

// Bounded reports whether the grid is confined, and to which rectangle.
func (s *Sim) Bounded() (geometry.Rect, bool) { return s.bounds, s.bounded }

// Reconfigure replaces the configuration. It takes effect at the next Step;
// a new seed only takes effect at the next Reset. Bounded sims keep their
// bounds.
func (s *Sim) Reconfigure(cfg Config) error {
	if s.bounded {
		cfg.Width, cfg.Height = s.bounds.Dx(), s.bounds.Dy()
	}
	wasHistory := s.cfg.KeepHistory
	if err := s.configure(cfg); err != nil {
		return err
	}
	if wasHistory && !cfg.KeepHistory {
		s.states = s.states[len(s.states)-1:]
		s.toxins = s.toxins[len(s.toxins)-1:]
		s.base = s.time
	}
	logger.Infof("reconfigured: coupling=%s spread=%.3f decay=%.3f threshold=%.3f kernel=%d",
		cfg.Coupling, cfg.Params.SpreadProbability, cfg.Params.ToxinDecay,
		cfg.Params.ToxinThreshold, s.kernel.Size())
	return nil
}

// Reset clears the grid and toxin field, rewinds time to 0 and reseeds the
// random stream. A zero seed falls back to Config.Seed.
func (s *Sim) Reset(seed int64) {
	if seed == 0 {
		seed = s.cfg.Seed
	}
	s.rng = pcore.NewRNG(seed)
	s.states = []*Grid{NewGrid()}
	s.toxins = []*toxin.Field{toxin.NewField()}
	s.base = 0
	s.time = 0
	logger.Infof("reset with seed %d", seed)
}

// Inoculate places a Spore at the origin, or at the centre of a bounded grid.
func (s *Sim) Inoculate() {
	at := geometry.Pt(0, 0)
	if s.bounded {
		at = geometry.Pt(s.bounds.Dx()/2, s.bounds.Dy()/2)
	}
	s.State().Set(at, Spore)
}

// Time returns the number of steps taken since the last Reset.
func (s *Sim) Time() int { return s.time }

// State returns the current state grid. Callers must not keep it across Step.
func (s *Sim) State() *Grid { return s.states[len(s.states)-1] }

// Toxins returns the current toxin field.
func (s *Sim) Toxins() *toxin.Field { return s.toxins[len(s.toxins)-1] }

// StateAt returns the grid at time t when it is still retained.
func (s *Sim) StateAt(t int) (*Grid, bool) {
	i := t - s.base
	if i < 0 || i >= len(s.states) {
		return nil, false
	}
	return s.states[i], true
}

// ToxinsAt returns the toxin field at time t when it is still retained.
func (s *Sim) ToxinsAt(t int) (*toxin.Field, bool) {
	i := t - s.base
	if i < 0 || i >= len(s.toxins) {
		return nil, false
	}
	return s.toxins[i], true
}

// SetState writes a state into the current grid.
func (s *Sim) SetState(x, y int, st State) error {
	if !st.Valid() {
		return errgo.WithCausef(nil, ErrUnknownState, "state %d at (%d,%d)", uint8(st), x, y)
	}
	p := geometry.Pt(x, y)
	if s.bounded && !s.bounds.Contains(p) {
		return errgo.WithCausef(nil, ErrOutOfBounds, "(%d,%d) outside %dx%d", x, y, s.bounds.Dx(), s.bounds.Dy())
	}
	s.State().Set(p, st)
	return nil
}

// SetToxicity writes a toxin value into the current field. Values <= 0
// remove the entry.
func (s *Sim) SetToxicity(x, y int, v float64) error {
	p := geometry.Pt(x, y)
	if s.bounded && !s.bounds.Contains(p) {
		return errgo.WithCausef(nil, ErrOutOfBounds, "(%d,%d) outside %dx%d", x, y, s.bounds.Dx(), s.bounds.Dy())
	}
	s.Toxins().Set(p, v)
	return nil
}

// Step advances one tick: every active coordinate is evaluated against the
// frozen time-t grid, then the toxin field is rebuilt from the new grid.
func (s *Sim) Step() {
	policy := PolicyFor(s.cfg.Coupling)
	frame := &Frame{
		States: s.State(),
		Toxins: s.Toxins(),
		Params: s.cfg.Params,
		Kernel: s.kernel,
		RNG:    s.rng,
	}

	active := frame.States.Active()
	next := NewGrid()
	for _, at := range active {
		if s.bounded && !s.bounds.Contains(at) {
			continue
		}
		next.Set(at, policy.StateTransition(frame, at))
	}
	tox := policy.ToxinTransition(frame, next)
	if s.bounded {
		tox = s.clip(tox)
	}

	if s.cfg.KeepHistory {
		s.states = append(s.states, next)
		s.toxins = append(s.toxins, tox)
	} else {
		s.states[0] = next
		s.toxins[0] = tox
		s.base = s.time + 1
	}
	s.time++
	logger.Debugf("t=%d policy=%s active=%d occupied=%d toxins=%d",
		s.time, policy.Name(), len(active), next.Len(), tox.Len())
}

func (s *Sim) clip(f *toxin.Field) *toxin.Field {
	out := toxin.NewField()
	f.Each(func(p geometry.Point, v float64) {
		if s.bounds.Contains(p) {
			out.Set(p, v)
		}
	})
	return out
}

// FruitingPoints returns the Mushroom and Older coordinates of the current
// grid in row-major order.
func (s *Sim) FruitingPoints() []geometry.Point {
	return s.State().Collect(State.Fruiting)
}

// RingMetrics measures how well the current fruiting bodies form a ring. The
// hull is recomputed on every call. The second result is false when there
// are no fruiting bodies.
func (s *Sim) RingMetrics() (geometry.Ring, bool) {
	return geometry.MeasureRing(s.FruitingPoints())
}

func init() {
	core.Register("fairyring", func(cfg map[string]string) (core.Sim, error) {
		sim, err := New(FromMap(cfg))
		if err != nil {
			return nil, err
		}
		return sim, nil
	})
}
