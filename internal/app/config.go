package app

import (
	"strconv"
	"strings"

	"github.com/integrii/flaggy"
	errgo "gopkg.in/errgo.v1"
)

// ErrBadOption is the cause of malformed --set values.
var ErrBadOption = errgo.New("bad sim option")

// Config represents the command-line parameters for the application.
type Config struct {
	Sim      string
	Scale    int
	TPS      int
	Seed     int64
	HUDWidth int

	// Log is a loggo specification such as "<root>=INFO;fairyring.sim=DEBUG".
	Log string

	// Set holds key=value pairs forwarded to the sim factory.
	Set []string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "fairyring", Scale: 8, TPS: 10, Seed: 42, HUDWidth: 240, Log: "<root>=WARNING"}
}

// Bind attaches the configuration to the provided parser.
func (c *Config) Bind(p *flaggy.Parser) {
	p.String(&c.Sim, "", "sim", "simulation to run")
	p.Int(&c.Scale, "", "scale", "pixel scale multiplier")
	p.Int(&c.TPS, "", "tps", "simulation steps per second")
	p.Int64(&c.Seed, "", "seed", "seed for simulation reset")
	p.Int(&c.HUDWidth, "", "hud", "width of the parameter panel, 0 hides it")
	p.String(&c.Log, "", "log", "loggo logging specification")
	p.StringSlice(&c.Set, "o", "set", "sim option key=value, repeatable")
}

// Options parses Set into the map handed to a core.Factory. The seed flag is
// forwarded unless an explicit seed option is present.
func (c *Config) Options() (map[string]string, error) {
	opts := make(map[string]string, len(c.Set)+1)
	for _, kv := range c.Set {
		key, value, ok := strings.Cut(kv, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, errgo.WithCausef(nil, ErrBadOption, "%q is not key=value", kv)
		}
		opts[key] = strings.TrimSpace(value)
	}
	if _, ok := opts["seed"]; !ok && c.Seed != 0 {
		opts["seed"] = strconv.FormatInt(c.Seed, 10)
	}
	return opts, nil
}
