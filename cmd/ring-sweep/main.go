// Command ring-sweep measures how often fairy rings form across a grid of
// model parameters and stores the aggregated results.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/integrii/flaggy"
	"github.com/juju/loggo"
	"github.com/logrusorgru/aurora"
	errgo "gopkg.in/errgo.v1"

	"fungi-ca/internal/sims/fairyring"
	"fungi-ca/internal/storage"
)

var logger = loggo.GetLogger("fairyring.cmd")

type sweepOptions struct {
	Axes    []string
	Set     []string
	Runs    int
	Steps   int
	Workers int
	Store   string
	DBPath  string
	Show    string
	List    bool
	Color   bool
	Log     string
}

func main() {
	o := sweepOptions{
		Runs:    5,
		Steps:   60,
		Workers: runtime.NumCPU(),
		Store:   "memory",
		DBPath:  "ring-sweep.db",
		Color:   true,
		Log:     "<root>=INFO",
	}
	flaggy.SetName("ring-sweep")
	flaggy.SetDescription("Sweep fairy-ring model parameters and classify ring formation")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.StringSlice(&o.Axes, "a", "axis", "swept parameter, key=lo:hi:n or key=a,b,c; repeatable")
	flaggy.StringSlice(&o.Set, "o", "set", "base config key=value, repeatable")
	flaggy.Int(&o.Runs, "r", "runs", "replicate runs per parameter point")
	flaggy.Int(&o.Steps, "s", "steps", "steps per run")
	flaggy.Int(&o.Workers, "w", "workers", "number of worker goroutines")
	flaggy.String(&o.Store, "", "store", "result store [memory|sqlite]; memory lasts one process, so --list and --show need sqlite")
	flaggy.String(&o.DBPath, "", "db", "sqlite database path")
	flaggy.String(&o.Show, "", "show", "print a stored sweep by id instead of running one")
	flaggy.Bool(&o.List, "l", "list", "list stored sweep ids")
	flaggy.Bool(&o.Color, "", "color", "colourise output")
	flaggy.String(&o.Log, "", "log", "loggo logging specification")
	flaggy.Parse()

	if err := loggo.ConfigureLoggers(o.Log); err != nil {
		flaggy.ShowHelpAndExit("bad --log value: " + err.Error())
	}
	if err := o.check(); err != nil {
		flaggy.ShowHelpAndExit(err.Error())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	store, err := storage.NewStore(o.Store, o.DBPath)
	if err != nil {
		flaggy.ShowHelpAndExit(err.Error())
	}
	defer storage.CloseIfSupported(store)

	if err := run(ctx, os.Stdout, store, o); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// check rejects flag combinations that cannot do anything useful.
func (o sweepOptions) check() error {
	reading := o.List || o.Show != ""
	if reading && (o.Store == "" || o.Store == "memory") {
		return errgo.New("--list and --show read earlier sweeps and need --store sqlite")
	}
	if !reading && len(o.Axes) == 0 {
		return errgo.New("at least one --axis is required")
	}
	return nil
}

func run(ctx context.Context, w io.Writer, store storage.Store, o sweepOptions) error {
	if err := store.Init(ctx); err != nil {
		return errgo.Notef(err, "init store")
	}
	au := aurora.NewAurora(o.Color)
	switch {
	case o.List:
		ids, err := store.ListSweeps(ctx)
		if err != nil {
			return errgo.Mask(err)
		}
		for _, id := range ids {
			fmt.Fprintln(w, id)
		}
		return nil
	case o.Show != "":
		saved, ok, err := store.GetSweep(ctx, o.Show)
		if err != nil {
			return errgo.Mask(err, errgo.Is(storage.ErrVersionMismatch))
		}
		if !ok {
			return errgo.Newf("no sweep %q", o.Show)
		}
		printSweep(w, au, saved)
		return nil
	}

	saved, err := sweep(o)
	if err != nil {
		return errgo.Mask(err, errgo.Is(fairyring.ErrInvalidConfig))
	}
	if err := store.SaveSweep(ctx, saved); err != nil {
		return errgo.Notef(err, "save sweep")
	}
	logger.Infof("saved sweep %s (%d points) to %s store", saved.ID, len(saved.Records), o.Store)
	printSweep(w, au, saved)
	return nil
}

// sweep runs the parameter grid described by o and packages it for storage.
func sweep(o sweepOptions) (storage.SweepRun, error) {
	base := fairyring.DefaultConfig()
	for _, kv := range o.Set {
		if err := base.Set(kv); err != nil {
			return storage.SweepRun{}, errgo.Mask(err, errgo.Is(fairyring.ErrInvalidConfig))
		}
	}
	var axes []fairyring.SweepAxis
	for _, spec := range o.Axes {
		axis, err := fairyring.ParseAxis(spec)
		if err != nil {
			return storage.SweepRun{}, errgo.Mask(err, errgo.Is(fairyring.ErrInvalidConfig))
		}
		axes = append(axes, axis)
	}

	start := time.Now()
	records, err := fairyring.ParameterGrid(base, axes, o.Runs, o.Steps, o.Workers)
	if err != nil {
		return storage.SweepRun{}, errgo.Mask(err, errgo.Is(fairyring.ErrInvalidConfig))
	}
	logger.Infof("swept %d points x %d runs in %v", len(records), o.Runs, time.Since(start).Round(time.Millisecond))

	saved := storage.SweepRun{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Steps:     o.Steps,
		Runs:      max(o.Runs, 1),
		Base:      base.ToMap(),
		Records:   records,
	}
	for _, a := range axes {
		saved.Axes = append(saved.Axes, storage.Axis{Key: a.Key, Values: a.Values})
	}
	return storage.Stamp(saved), nil
}

func printSweep(w io.Writer, au aurora.Aurora, saved storage.SweepRun) {
	axes := make([]fairyring.SweepAxis, len(saved.Axes))
	for i, a := range saved.Axes {
		axes[i] = fairyring.SweepAxis{Key: a.Key, Values: a.Values}
	}
	fmt.Fprintf(w, "sweep %s: %d runs x %d steps, coupling=%s\n",
		saved.ID, saved.Runs, saved.Steps, saved.Base["coupling"])
	for _, rec := range saved.Records {
		verdict := au.Faint("no ring").String()
		if rec.FairyRing {
			verdict = au.Green("fairy ring").Bold().String()
		}
		fmt.Fprintf(w, "%-40s ratio=%.3f±%.3f share=%.2f defined=%d/%d d=%.1f %s\n",
			rec.Label(axes), rec.MeanRatio, rec.StdRatio, rec.RingShare,
			rec.Defined, rec.Runs, rec.MeanDiameter, verdict)
	}
}
