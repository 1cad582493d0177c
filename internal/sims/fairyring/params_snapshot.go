package fairyring

import (
	"strconv"

	"fungi-ca/internal/core"
)

func (s *Sim) Parameters() core.ParameterSnapshot {
	params := s.cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", s.cfg.Width),
				intParam("h", "Height", s.cfg.Height),
				int64Param("seed", "Seed", s.cfg.Seed),
				boolParam("history", "Keep history", s.cfg.KeepHistory),
				{Key: "coupling", Label: "Coupling", Type: core.ParamTypeChoice, Value: s.cfg.Coupling.String()},
			},
		},
		{
			Name: "Growth",
			Params: []core.Parameter{
				floatParam("sporulation_probability", "Spore to young", params.SporulationProbability),
				floatParam("spread_probability", "Spread chance", params.SpreadProbability),
				floatParam("mushroom_probability", "Mushroom chance", params.MushroomProbability),
			},
		},
		{
			Name: "Toxin",
			Params: []core.Parameter{
				floatParam("toxin_decay", "Toxin decay", params.ToxinDecay),
				floatParam("toxin_threshold", "Toxin threshold", params.ToxinThreshold),
				intParam("kernel_size", "Kernel size", s.kernel.Size()),
				floatParam("kernel_sigma", "Kernel sigma", params.KernelSigma),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the values the HUD may adjust live.
func (s *Sim) ParameterControls() []core.ParameterControl {
	unit := func(key, label string) core.ParameterControl {
		return core.ParameterControl{
			Key: key, Label: label, Type: core.ParamTypeFloat,
			Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true,
		}
	}
	return []core.ParameterControl{
		unit("spread_probability", "Spread"),
		unit("sporulation_probability", "Spore->young"),
		unit("mushroom_probability", "Mushroom"),
		unit("toxin_decay", "Decay"),
		unit("toxin_threshold", "Threshold"),
		{Key: "kernel_size", Label: "Kernel", Type: core.ParamTypeInt, Step: 2, Min: 1, Max: 15, HasMin: true, HasMax: true},
		{Key: "kernel_sigma", Label: "Sigma", Type: core.ParamTypeFloat, Step: 0.1, Min: 0.1, Max: 5, HasMin: true, HasMax: true},
	}
}

func (s *Sim) control(key string) (core.ParameterControl, bool) {
	for _, c := range s.ParameterControls() {
		if c.Key == key {
			return c, true
		}
	}
	return core.ParameterControl{}, false
}

// SetFloatParameter updates a named rate, clamped to its control bounds.
// It reports false for unknown keys and for values the config rejects.
func (s *Sim) SetFloatParameter(key string, value float64) bool {
	c, ok := s.control(key)
	if !ok {
		logger.Warningf("unknown parameter %q", key)
		return false
	}
	cfg := s.cfg
	cfg.ApplyParameter(key, c.Clamp(value))
	if err := s.Reconfigure(cfg); err != nil {
		logger.Warningf("rejected %s=%v: %v", key, value, err)
		return false
	}
	return true
}

// SetIntParameter updates an integer parameter. Even kernel sizes round up
// to the next odd size.
func (s *Sim) SetIntParameter(key string, value int) bool {
	if key == "kernel_size" && value%2 == 0 {
		value++
	}
	return s.SetFloatParameter(key, float64(value))
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}
