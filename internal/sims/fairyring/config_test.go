package fairyring

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	errgo "gopkg.in/errgo.v1"

	"fungi-ca/internal/toxin"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"spread above one", func(c *Config) { c.Params.SpreadProbability = 1.1 }},
		{"negative sporulation", func(c *Config) { c.Params.SporulationProbability = -0.1 }},
		{"mushroom above one", func(c *Config) { c.Params.MushroomProbability = 2 }},
		{"negative decay", func(c *Config) { c.Params.ToxinDecay = -1 }},
		{"negative threshold", func(c *Config) { c.Params.ToxinThreshold = -0.5 }},
		{"even kernel", func(c *Config) { c.Params.KernelSize = 4 }},
		{"zero sigma", func(c *Config) { c.Params.KernelSigma = 0 }},
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"bad coupling", func(c *Config) { c.Coupling = Coupling(9) }},
		{"empty kernel", func(c *Config) { c.Kernel = &toxin.Kernel{} }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); errgo.Cause(err) != ErrInvalidConfig {
				t.Fatalf("expected ErrInvalidConfig, got %v", err)
			}
			if _, err := New(cfg); errgo.Cause(err) != ErrInvalidConfig {
				t.Fatalf("New: expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestExplicitKernelOverridesGaussian(t *testing.T) {
	cfg := DefaultConfig()
	k := toxin.Identity()
	cfg.Kernel = &k
	cfg.Params.KernelSize = 4
	sim, err := New(cfg)
	if err != nil {
		t.Fatalf("explicit kernel must win over Gaussian params: %v", err)
	}
	if sim.Kernel().Size() != 1 {
		t.Fatalf("kernel size = %d, want 1", sim.Kernel().Size())
	}
}

func TestFromMap(t *testing.T) {
	got := FromMap(map[string]string{
		"w":                    "120",
		"h":                    "-3",
		"seed":                 "99",
		"coupling":             "probabilistic",
		"history":              "true",
		"spread_probability":   "0.25",
		"toxin_decay":          "0.1",
		"kernel_size":          "7",
		"kernel_sigma":         "1.5",
		"mushroom_probability": "abc",
		"toxin_threshold":      "-1",
	})
	want := DefaultConfig()
	want.Width = 120
	want.Seed = 99
	want.Coupling = CouplingProbabilistic
	want.KeepHistory = true
	want.Params.SpreadProbability = 0.25
	want.Params.ToxinDecay = 0.1
	want.Params.KernelSize = 7
	want.Params.KernelSigma = 1.5
	if diff := cmp.Diff(want, got, cmpopts.IgnoreUnexported(toxin.Kernel{})); diff != "" {
		t.Fatalf("FromMap mismatch (-want +got):\n%s", diff)
	}
	if FromMap(nil) != DefaultConfig() {
		t.Fatal("nil map must yield defaults")
	}
}

func TestToMapFeedsFromMap(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 31
	cfg.Seed = -4
	cfg.Coupling = CouplingToxinDeath
	cfg.Params.KernelSigma = 0.75
	if got := FromMap(cfg.ToMap()); got != cfg {
		t.Fatalf("FromMap(ToMap()) = %+v, want %+v", got, cfg)
	}
}

func TestConfigSet(t *testing.T) {
	cfg := DefaultConfig()
	for _, kv := range []string{"w=40", "seed = 5", "coupling=none", "history=true", "toxin_decay=0.2"} {
		if err := cfg.Set(kv); err != nil {
			t.Fatalf("Set(%q): %v", kv, err)
		}
	}
	want := DefaultConfig()
	want.Width = 40
	want.Seed = 5
	want.Coupling = CouplingNone
	want.KeepHistory = true
	want.Params.ToxinDecay = 0.2
	if diff := cmp.Diff(want, cfg, cmpopts.IgnoreUnexported(toxin.Kernel{})); diff != "" {
		t.Fatalf("Set mismatch (-want +got):\n%s", diff)
	}

	for _, kv := range []string{"w", "=1", "h=tall", "coupling=glue", "colour=1", "spread_probability=x"} {
		if err := cfg.Set(kv); errgo.Cause(err) != ErrInvalidConfig {
			t.Fatalf("Set(%q): expected ErrInvalidConfig, got %v", kv, err)
		}
	}
}

func TestParseCoupling(t *testing.T) {
	for _, name := range Couplings() {
		c, err := ParseCoupling(name)
		if err != nil || c.String() != name {
			t.Fatalf("ParseCoupling(%q) = %v, %v", name, c, err)
		}
	}
	if _, err := ParseCoupling("osmosis"); errgo.Cause(err) != ErrInvalidConfig {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestSetFloatParameterClampsAndRejects(t *testing.T) {
	sim := newTestSim(t, nil)
	if !sim.SetFloatParameter("spread_probability", 3) {
		t.Fatal("expected spread update to succeed")
	}
	if got := sim.Config().Params.SpreadProbability; got != 1 {
		t.Fatalf("spread = %v, want clamp to 1", got)
	}
	if sim.SetFloatParameter("gravity", 1) {
		t.Fatal("unknown keys must be rejected")
	}
	if !sim.SetIntParameter("kernel_size", 6) {
		t.Fatal("expected kernel size update to succeed")
	}
	if sim.Kernel().Size() != 7 {
		t.Fatalf("kernel size = %d, want even size rounded up to 7", sim.Kernel().Size())
	}
	p, ok := sim.Parameters().Lookup("kernel_size")
	if !ok || p.Value != "7" {
		t.Fatalf("snapshot kernel_size = %+v", p)
	}
}
