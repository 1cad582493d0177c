// Command fairyring runs a fairy-ring simulation in the terminal.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/integrii/flaggy"
	"github.com/juju/loggo"
	"github.com/logrusorgru/aurora"

	"fungi-ca/internal/core"
	"fungi-ca/internal/sims/fairyring"
)

var logger = loggo.GetLogger("fairyring.cmd")

const clearScreen = "\033[H\033[2J"

func main() {
	o := defaultOptions()
	flaggy.SetName("fairyring")
	flaggy.SetDescription("Grow a fungal colony from a single spore and report its ring shape")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.Int(&o.Steps, "s", "steps", "number of steps to simulate")
	flaggy.Duration(&o.Interval, "i", "interval", "delay between animated frames, for example 150ms; 0 prints only the final frame")
	flaggy.Int64(&o.Seed, "", "seed", "random seed")
	flaggy.String(&o.Coupling, "c", "coupling", "toxin coupling [none|threshold|probabilistic|death]")
	flaggy.Int(&o.Width, "x", "width", "grid width (bounds when --bounded)")
	flaggy.Int(&o.Height, "y", "height", "grid height (bounds when --bounded)")
	flaggy.Bool(&o.Bounded, "b", "bounded", "confine the colony to the width x height grid")
	flaggy.Bool(&o.History, "", "history", "retain every step")
	flaggy.Int(&o.Padding, "p", "padding", "margin around the occupied area")
	flaggy.Bool(&o.Toxins, "t", "toxins", "print the toxin field instead of states")
	flaggy.Bool(&o.Color, "", "color", "colourise output")
	flaggy.StringSlice(&o.Set, "o", "set", "model parameter key=value, repeatable")
	flaggy.String(&o.Log, "", "log", "loggo logging specification")
	flaggy.Parse()

	if err := loggo.ConfigureLoggers(o.Log); err != nil {
		flaggy.ShowHelpAndExit("bad --log value: " + err.Error())
	}
	sim, err := o.newSim()
	if err != nil {
		flaggy.ShowHelpAndExit(err.Error())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := run(ctx, sim, o); err != nil && err != context.Canceled {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, sim *fairyring.Sim, o runOptions) error {
	au := aurora.NewAurora(o.Color)
	pace := core.FixedStepEvery(o.Interval)
	for sim.Time() < o.Steps {
		if o.Interval > 0 {
			if err := pace.Wait(ctx); err != nil {
				return err
			}
			fmt.Print(clearScreen, frame(au, sim, o.Padding, o.Toxins), summary(au, sim), "\n")
		} else if ctx.Err() != nil {
			return ctx.Err()
		}
		sim.Step()
		if sim.State().Len() == 0 {
			logger.Infof("colony died out at t=%d", sim.Time())
			break
		}
	}
	if o.Interval > 0 {
		fmt.Print(clearScreen)
	}
	fmt.Print(frame(au, sim, o.Padding, o.Toxins))
	fmt.Println(summary(au, sim))
	return nil
}
