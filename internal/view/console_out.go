package view

import (
	"fmt"
	"sort"
	"time"

	"simca/internal/runner"
)

// ConsoleOut is a plain non-interactive progress printer.
type ConsoleOut struct {
	r         *runner.Runner
	startTime time.Time
}

// NewConsoleOut returns a console printer viewer.
func NewConsoleOut() *ConsoleOut {
	return &ConsoleOut{}
}

// Refresh prints progress and, once finished, the final summary.
func (c *ConsoleOut) Refresh() {
	st := c.r.Status()
	if st.Mode == runner.ModeDone {
		totalTime := time.Since(c.startTime).Round(time.Millisecond)
		resultData := map[string]interface{}{
			"Last step":  st.Step,
			"Total time": totalTime,
			"Live cells": st.LiveCells,
		}
		fmt.Println("\nFinished:")
		c.printHashData(resultData)
	} else if st.Mode == runner.ModeRun {
		if st.Step > 0 && st.Step%10 == 0 {
			fmt.Printf("  Steps done: %v\n", st.Step)
		}
	}
}

// Register prints the configuration the runner was started with.
func (c *ConsoleOut) Register(r *runner.Runner) {
	c.r = r
	size := r.Size()
	o := r.Options()
	fmt.Println("Running configuration:")
	fmt.Printf("  Dimension: %v x %v\n", size.W, size.H)
	fmt.Printf("  Interval: %v\n", o.Interval)
	fmt.Printf("  Max steps: %v\n", o.MaxSteps)
}

// Start records the start time.
func (c *ConsoleOut) Start() {
	c.startTime = time.Now()
	fmt.Println("\nSimulation started...")
}

func (c *ConsoleOut) printHashData(d map[string]interface{}) {
	propNames := make([]string, 0, len(d))
	for k := range d {
		propNames = append(propNames, k)
	}
	sort.Strings(propNames)
	for _, propName := range propNames {
		fmt.Printf("  %s: %v\n", propName, d[propName])
	}
}
