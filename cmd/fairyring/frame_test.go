package main

import (
	"strings"
	"testing"

	"github.com/logrusorgru/aurora"
)

func TestFrameRendersStateMatrix(t *testing.T) {
	o := defaultOptions()
	sim, err := o.newSim()
	if err != nil {
		t.Fatalf("newSim: %v", err)
	}
	plain := aurora.NewAurora(false)
	want := "0 0 0 0 0\n0 0 0 0 0\n0 0 1 0 0\n0 0 0 0 0\n0 0 0 0 0\n"
	if got := frame(plain, sim, o.Padding, false); got != want {
		t.Fatalf("frame:\n%s\nwant:\n%s", got, want)
	}
	if got := frame(plain, sim, o.Padding, false); got != sim.Render(o.Padding, false) {
		t.Fatal("plain frame must match Sim.Render")
	}
}

func TestFrameRendersToxins(t *testing.T) {
	o := defaultOptions()
	sim, err := o.newSim()
	if err != nil {
		t.Fatalf("newSim: %v", err)
	}
	if err := sim.SetToxicity(1, 0, 0.26); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(frame(aurora.NewAurora(false), sim, 1, true), "\n")
	if len(lines) != 4 || lines[1] != "0.0 0.0 0.3" {
		t.Fatalf("toxin frame = %q", lines)
	}
}

func TestSummaryWithoutFruiting(t *testing.T) {
	o := defaultOptions()
	sim, err := o.newSim()
	if err != nil {
		t.Fatalf("newSim: %v", err)
	}
	if got, want := summary(aurora.NewAurora(false), sim), "t=0 cells=1 fruiting=0 ring=--"; got != want {
		t.Fatalf("summary = %q, want %q", got, want)
	}
}
