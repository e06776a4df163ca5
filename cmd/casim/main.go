package main

import (
	"log"
	"strings"
	"time"

	"github.com/integrii/flaggy"

	"simca/internal/presets"
	"simca/internal/runner"
	"simca/internal/view"
	"simca/pkg/automaton"
)

// A glider heading south-east plus a blinker, enough to keep a small field
// busy for a while.
var testSample = [][2]int{
	{5, 5}, {6, 6}, {4, 7}, {5, 7}, {6, 7},
	{12, 3}, {12, 4}, {12, 5},
}

type envOptions struct {
	width       int
	height      int
	interval    time.Duration
	maxSteps    int
	preset      string
	seed        int64
	interactive bool
	randomData  bool
}

func main() {
	eo := initOptions()

	factory, _ := presets.Lookup(eo.preset)
	sim, err := automaton.New(eo.width, eo.height, factory())
	if err != nil {
		log.Fatal(err)
	}

	var stateCh chan runner.Status
	if !eo.interactive {
		stateCh = make(chan runner.Status, 10)
	}

	r := runner.New(sim, runner.Options{Interval: eo.interval, MaxSteps: eo.maxSteps}, stateCh)

	if eo.randomData {
		r.Randomize(eo.seed)
	} else {
		r.Settle(testSample)
	}

	if eo.interactive {
		v := view.NewConsoleUI()
		r.RegisterViewer(v)
		v.Start()
		r.Close()
		return
	}

	v := view.NewConsoleOut()
	r.RegisterViewer(v)
	v.Start()

	r.Run()
	for st := range stateCh {
		if st.Mode == runner.ModeDone {
			break
		}
	}
	r.Close()
	close(stateCh)
}

func initOptions() *envOptions {
	eo := &envOptions{
		width:    40,
		height:   15,
		interval: 100 * time.Millisecond,
		maxSteps: 1000,
		preset:   "life",
		seed:     time.Now().UnixNano(),
	}

	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.Int(&eo.width, "x", "width", "Width of the simulation field")
	flaggy.Int(&eo.height, "y", "height", "Height of the simulation field")
	flaggy.Duration(&eo.interval, "i", "interval", "Pause between steps, for example 150ms")
	flaggy.Int(&eo.maxSteps, "s", "maxSteps", "Limit the simulation to maxSteps")
	flaggy.String(&eo.preset, "p", "preset", "Rule preset ["+strings.Join(presets.Names(), "|")+"]")
	flaggy.Int64(&eo.seed, "d", "seed", "Seed for random settling")
	flaggy.Bool(&eo.interactive, "n", "interactive", "Start interactive mode")
	flaggy.Bool(&eo.randomData, "r", "random", "Settle with random data")

	flaggy.Parse()

	if _, ok := presets.Lookup(eo.preset); !ok {
		flaggy.ShowHelpAndExit("unknown preset")
	}

	return eo
}
