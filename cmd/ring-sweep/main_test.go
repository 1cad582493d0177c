package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	errgo "gopkg.in/errgo.v1"

	"fungi-ca/internal/sims/fairyring"
	"fungi-ca/internal/storage"
)

func testOptions() sweepOptions {
	return sweepOptions{
		Axes:    []string{"spread_probability=0.2,0.8", "toxin_decay=0:0.1:2"},
		Set:     []string{"coupling=death"},
		Runs:    2,
		Steps:   8,
		Workers: 2,
		Store:   "memory",
	}
}

func TestSweepPackagesRun(t *testing.T) {
	saved, err := sweep(testOptions())
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if len(saved.Records) != 4 || len(saved.Axes) != 2 {
		t.Fatalf("got %d records over %d axes, want 4 over 2", len(saved.Records), len(saved.Axes))
	}
	if saved.ID == "" || saved.SchemaVersion != storage.CurrentSchemaVersion {
		t.Fatalf("run not stamped: %+v", saved)
	}
	if saved.Base["coupling"] != "death" {
		t.Fatalf("base coupling = %q, want death", saved.Base["coupling"])
	}
}

func TestSweepRejectsBadInput(t *testing.T) {
	for _, edit := range []func(*sweepOptions){
		func(o *sweepOptions) { o.Axes = []string{"spread_probability"} },
		func(o *sweepOptions) { o.Set = []string{"coupling=glue"} },
		func(o *sweepOptions) { o.Axes = []string{"spread_probability=0.5,1.5"} },
	} {
		o := testOptions()
		edit(&o)
		if _, err := sweep(o); errgo.Cause(err) != fairyring.ErrInvalidConfig {
			t.Fatalf("expected ErrInvalidConfig, got %v", err)
		}
	}
}

func TestRunSavesListsAndShows(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	o := testOptions()

	var out bytes.Buffer
	if err := run(ctx, &out, store, o); err != nil {
		t.Fatalf("run: %v", err)
	}
	ids, err := store.ListSweeps(ctx)
	if err != nil || len(ids) != 1 {
		t.Fatalf("ListSweeps = %v, %v; want one id", ids, err)
	}
	if !strings.Contains(out.String(), ids[0]) {
		t.Fatalf("output does not mention sweep id:\n%s", out.String())
	}

	out.Reset()
	o.Show = ids[0]
	if err := run(ctx, &out, store, o); err != nil {
		t.Fatalf("show: %v", err)
	}
	if got := strings.Count(out.String(), "spread_probability="); got != 4 {
		t.Fatalf("show printed %d records, want 4:\n%s", got, out.String())
	}

	o.Show = "missing"
	if err := run(ctx, &out, store, o); err == nil {
		t.Fatal("expected error for unknown sweep id")
	}
}

func TestCheckOptions(t *testing.T) {
	tests := []struct {
		name string
		edit func(*sweepOptions)
		ok   bool
	}{
		{"sweep", func(o *sweepOptions) {}, true},
		{"no axes", func(o *sweepOptions) { o.Axes = nil }, false},
		{"list memory", func(o *sweepOptions) { o.List = true }, false},
		{"show default store", func(o *sweepOptions) { o.Show = "abc"; o.Store = "" }, false},
		{"list sqlite", func(o *sweepOptions) { o.List = true; o.Store = "sqlite"; o.Axes = nil }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := testOptions()
			tt.edit(&o)
			if err := o.check(); (err == nil) != tt.ok {
				t.Fatalf("check() = %v, want ok=%v", err, tt.ok)
			}
		})
	}
}
