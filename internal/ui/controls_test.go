package ui

import (
	"testing"

	"fungi-ca/internal/core"
	"fungi-ca/internal/geometry"
)

func snapshotWith(params ...core.Parameter) core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{Name: "test", Params: params}}}
}

func TestControlRefreshAndTarget(t *testing.T) {
	state := controlState{control: core.ParameterControl{
		Key: "spread_probability", Type: core.ParamTypeFloat,
		Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true,
	}}
	state.refresh(snapshotWith(core.Parameter{Key: "spread_probability", Value: "0.98"}))
	if !state.hasValue || state.value != "0.98" {
		t.Fatalf("refresh: %+v", state)
	}
	next, ok := state.target(1)
	if !ok || next != 1 {
		t.Fatalf("target(+1) = %v, %v; want clamp to 1", next, ok)
	}
	state.floatValue = 1
	if _, ok := state.target(1); ok {
		t.Fatal("no change expected at the upper bound")
	}
	next, ok = state.target(-1)
	if !ok || next < 0.949 || next > 0.951 {
		t.Fatalf("target(-1) = %v, %v", next, ok)
	}
}

func TestIntControlStepsRound(t *testing.T) {
	state := controlState{control: core.ParameterControl{
		Key: "kernel_size", Type: core.ParamTypeInt, Step: 2, Min: 1, Max: 15, HasMin: true, HasMax: true,
	}}
	state.refresh(snapshotWith(core.Parameter{Key: "kernel_size", Value: "5"}))
	if next, ok := state.target(1); !ok || next != 7 {
		t.Fatalf("target(+1) = %v, %v", next, ok)
	}
	state.refresh(snapshotWith())
	if state.hasValue || state.value != "--" {
		t.Fatal("missing parameter must clear the value")
	}
	if _, ok := state.target(1); ok {
		t.Fatal("controls without a value must not adjust")
	}
}

func TestFormatFloatPrecision(t *testing.T) {
	tests := []struct {
		step float64
		want string
	}{
		{0.0005, "0.1235"},
		{0.005, "0.123"},
		{0.05, "0.12"},
		{0.5, "0.1"},
	}
	for _, tc := range tests {
		if got := formatFloat(core.ParameterControl{Step: tc.step}, 0.123456); got != tc.want {
			t.Fatalf("step %v: got %q want %q", tc.step, got, tc.want)
		}
	}
}

func TestProjectCentresPixelBlocks(t *testing.T) {
	view := geometry.Rect{Min: geometry.Pt(-10, -5), Max: geometry.Pt(9, 4)}
	x, y := project(geometry.Pt(-10, -5), view, 4)
	if x != 2 || y != 2 {
		t.Fatalf("top-left = (%v,%v), want (2,2)", x, y)
	}
	x, y = project(geometry.Pt(0, 0), view, 3)
	if x != 31.5 || y != 16.5 {
		t.Fatalf("origin = (%v,%v), want (31.5,16.5)", x, y)
	}
}
