package main

import (
	"time"

	errgo "gopkg.in/errgo.v1"

	"fungi-ca/internal/sims/fairyring"
)

type runOptions struct {
	Steps    int
	Interval time.Duration
	Seed     int64
	Coupling string
	Width    int
	Height   int
	Bounded  bool
	History  bool
	Padding  int
	Toxins   bool
	Color    bool
	Set      []string
	Log      string
}

func defaultOptions() runOptions {
	def := fairyring.DefaultConfig()
	return runOptions{
		Steps:    40,
		Seed:     def.Seed,
		Coupling: def.Coupling.String(),
		Width:    def.Width,
		Height:   def.Height,
		Padding:  fairyring.DefaultPadding,
		Color:    true,
		Log:      "<root>=WARNING",
	}
}

// config turns the flags into a validated simulation config. Unlike
// fairyring.FromMap, every bad value is an error.
func (o runOptions) config() (fairyring.Config, error) {
	cfg := fairyring.DefaultConfig()
	cfg.Width, cfg.Height = o.Width, o.Height
	cfg.Seed = o.Seed
	cfg.KeepHistory = o.History
	c, err := fairyring.ParseCoupling(o.Coupling)
	if err != nil {
		return cfg, errgo.Mask(err, errgo.Is(fairyring.ErrInvalidConfig))
	}
	cfg.Coupling = c
	for _, kv := range o.Set {
		if err := cfg.Set(kv); err != nil {
			return cfg, errgo.Mask(err, errgo.Is(fairyring.ErrInvalidConfig))
		}
	}
	if err := cfg.Validate(); err != nil {
		return cfg, errgo.Mask(err, errgo.Is(fairyring.ErrInvalidConfig))
	}
	return cfg, nil
}

func (o runOptions) newSim() (*fairyring.Sim, error) {
	cfg, err := o.config()
	if err != nil {
		return nil, errgo.Mask(err, errgo.Is(fairyring.ErrInvalidConfig))
	}
	var sim *fairyring.Sim
	if o.Bounded {
		sim, err = fairyring.NewBounded(cfg, cfg.Width, cfg.Height)
	} else {
		sim, err = fairyring.New(cfg)
	}
	if err != nil {
		return nil, errgo.Mask(err, errgo.Is(fairyring.ErrInvalidConfig))
	}
	sim.Inoculate()
	return sim, nil
}
