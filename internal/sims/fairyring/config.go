package fairyring

import (
	"math"
	"strconv"
	"strings"

	errgo "gopkg.in/errgo.v1"

	"fungi-ca/internal/toxin"
)

// Coupling selects how the toxin field feeds back into growth.
type Coupling int

const (
	// CouplingNone runs growth without a toxin field.
	CouplingNone Coupling = iota
	// CouplingThreshold blocks spread into cells above the toxin threshold.
	CouplingThreshold
	// CouplingProbabilistic blocks each spread attempt with probability equal
	// to the local toxicity.
	CouplingProbabilistic
	// CouplingToxinDeath kills living cells with probability equal to the
	// local toxicity.
	CouplingToxinDeath
)

var couplingNames = []string{"none", "threshold", "probabilistic", "death"}

func (c Coupling) String() string {
	if c < 0 || int(c) >= len(couplingNames) {
		return "coupling(" + strconv.Itoa(int(c)) + ")"
	}
	return couplingNames[c]
}

// Couplings lists the coupling names accepted by ParseCoupling.
func Couplings() []string {
	return append([]string(nil), couplingNames...)
}

// ParseCoupling resolves a coupling by name.
func ParseCoupling(name string) (Coupling, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range couplingNames {
		if n == name {
			return Coupling(i), nil
		}
	}
	return CouplingNone, errgo.WithCausef(nil, ErrInvalidConfig, "unknown coupling %q", name)
}

// Params holds the scalar rates of the growth model.
type Params struct {
	// SporulationProbability is the per-step chance a Spore becomes Young.
	SporulationProbability float64

	// MushroomProbability is the chance a Maturing cell fruits.
	MushroomProbability float64

	// SpreadProbability is the orthogonal spread chance; diagonal neighbours
	// use it divided by sqrt(2).
	SpreadProbability float64

	ToxinDecay     float64
	ToxinThreshold float64

	KernelSize  int
	KernelSigma float64
}

// Config controls a fairy-ring simulation.
type Config struct {
	// Width and Height size the viewer window. Bounded sims also use them as
	// grid bounds.
	Width  int
	Height int

	Seed        int64
	Coupling    Coupling
	KeepHistory bool

	Params Params

	// Kernel overrides the Gaussian built from Params when non-nil.
	Kernel *toxin.Kernel
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:    75,
		Height:   75,
		Seed:     1,
		Coupling: CouplingThreshold,
		Params: Params{
			SporulationProbability: 1.0,
			MushroomProbability:    0.7,
			SpreadProbability:      0.5,
			ToxinDecay:             0.05,
			ToxinThreshold:         0.3,
			KernelSize:             5,
			KernelSigma:            1,
		},
	}
}

// Validate reports the first out-of-range value.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errgo.WithCausef(nil, ErrInvalidConfig, "size %dx%d must be positive", c.Width, c.Height)
	}
	if c.Coupling < CouplingNone || c.Coupling > CouplingToxinDeath {
		return errgo.WithCausef(nil, ErrInvalidConfig, "unknown coupling %d", int(c.Coupling))
	}
	p := c.Params
	probs := []struct {
		name string
		v    float64
	}{
		{"sporulation_probability", p.SporulationProbability},
		{"mushroom_probability", p.MushroomProbability},
		{"spread_probability", p.SpreadProbability},
	}
	for _, pr := range probs {
		if math.IsNaN(pr.v) || pr.v < 0 || pr.v > 1 {
			return errgo.WithCausef(nil, ErrInvalidConfig, "%s %v outside [0,1]", pr.name, pr.v)
		}
	}
	if math.IsNaN(p.ToxinDecay) || p.ToxinDecay < 0 {
		return errgo.WithCausef(nil, ErrInvalidConfig, "toxin_decay %v must be non-negative", p.ToxinDecay)
	}
	if math.IsNaN(p.ToxinThreshold) || p.ToxinThreshold < 0 {
		return errgo.WithCausef(nil, ErrInvalidConfig, "toxin_threshold %v must be non-negative", p.ToxinThreshold)
	}
	if _, err := c.DiffusionKernel(); err != nil {
		return errgo.WithCausef(err, ErrInvalidConfig, "diffusion kernel")
	}
	return nil
}

// DiffusionKernel returns the explicit kernel or the Gaussian described by
// Params.
func (c Config) DiffusionKernel() (toxin.Kernel, error) {
	if c.Kernel != nil {
		if c.Kernel.IsZero() {
			return toxin.Kernel{}, errgo.WithCausef(nil, toxin.ErrInvalidKernel, "empty kernel")
		}
		return *c.Kernel, nil
	}
	return toxin.Gaussian(c.Params.KernelSize, c.Params.KernelSigma)
}

// ApplyParameter sets a single named scalar. Kernel parameters drop any
// explicit kernel so the Gaussian is rebuilt. The result is not validated.
func (c *Config) ApplyParameter(key string, v float64) bool {
	switch key {
	case "spread_probability":
		c.Params.SpreadProbability = v
	case "sporulation_probability":
		c.Params.SporulationProbability = v
	case "mushroom_probability":
		c.Params.MushroomProbability = v
	case "toxin_decay":
		c.Params.ToxinDecay = v
	case "toxin_threshold":
		c.Params.ToxinThreshold = v
	case "kernel_sigma":
		c.Params.KernelSigma = v
		c.Kernel = nil
	case "kernel_size":
		c.Params.KernelSize = int(math.Round(v))
		c.Kernel = nil
	default:
		return false
	}
	return true
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparsable or out-of-range entries keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["coupling"]; ok {
		if parsed, err := ParseCoupling(v); err == nil {
			c.Coupling = parsed
		}
	}
	if v, ok := cfg["history"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.KeepHistory = parsed
		}
	}
	for _, key := range floatKeys {
		v, ok := cfg[key]
		if !ok {
			continue
		}
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			continue
		}
		next := c
		next.ApplyParameter(key, parsed)
		if next.Validate() == nil {
			c = next
		}
	}
	return c
}

var floatKeys = []string{
	"spread_probability",
	"sporulation_probability",
	"mushroom_probability",
	"toxin_decay",
	"toxin_threshold",
	"kernel_size",
	"kernel_sigma",
}

// ToMap is the inverse of FromMap. An explicit Kernel is not represented.
func (c Config) ToMap() map[string]string {
	f := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	return map[string]string{
		"w":                       strconv.Itoa(c.Width),
		"h":                       strconv.Itoa(c.Height),
		"seed":                    strconv.FormatInt(c.Seed, 10),
		"coupling":                c.Coupling.String(),
		"history":                 strconv.FormatBool(c.KeepHistory),
		"spread_probability":      f(c.Params.SpreadProbability),
		"sporulation_probability": f(c.Params.SporulationProbability),
		"mushroom_probability":    f(c.Params.MushroomProbability),
		"toxin_decay":             f(c.Params.ToxinDecay),
		"toxin_threshold":         f(c.Params.ToxinThreshold),
		"kernel_size":             strconv.Itoa(c.Params.KernelSize),
		"kernel_sigma":            f(c.Params.KernelSigma),
	}
}

// Set applies one "key=value" setting using the FromMap keys. Unlike FromMap
// it reports malformed or unknown entries. The result is not validated.
func (c *Config) Set(kv string) error {
	key, value, ok := strings.Cut(kv, "=")
	key, value = strings.TrimSpace(key), strings.TrimSpace(value)
	if !ok || key == "" {
		return errgo.WithCausef(nil, ErrInvalidConfig, "%q is not key=value", kv)
	}
	var err error
	switch key {
	case "w":
		c.Width, err = strconv.Atoi(value)
	case "h":
		c.Height, err = strconv.Atoi(value)
	case "seed":
		c.Seed, err = strconv.ParseInt(value, 10, 64)
	case "history":
		c.KeepHistory, err = strconv.ParseBool(value)
	case "coupling":
		c.Coupling, err = ParseCoupling(value)
	default:
		var v float64
		if v, err = strconv.ParseFloat(value, 64); err == nil && !c.ApplyParameter(key, v) {
			return errgo.WithCausef(nil, ErrInvalidConfig, "unknown parameter %q", key)
		}
	}
	if err != nil {
		return errgo.WithCausef(err, ErrInvalidConfig, "%s=%s", key, value)
	}
	return nil
}
