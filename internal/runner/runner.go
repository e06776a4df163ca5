// Package runner owns the host-side control loop around a simulator: timing,
// run/stop/step commands and status reporting. The simulator itself is
// single-threaded, so every access is funneled through one command channel
// serviced by one goroutine.
package runner

import (
	"sync"
	"time"

	"simca/pkg/automaton"
	"simca/pkg/core"
)

// Mode is the runner's control state at a concrete moment.
type Mode int

const (
	ModeManual Mode = iota
	ModeStep
	ModeRun
	ModeDone
)

func (m Mode) String() string {
	switch m {
	case ModeManual:
		return "waiting"
	case ModeStep:
		return "stepping"
	case ModeRun:
		return "running"
	case ModeDone:
		return "finished"
	}
	return "unknown"
}

// Options configures the run loop.
type Options struct {
	Interval time.Duration // pause between steps in run mode
	MaxSteps int           // stop after this many generations, 0 = unbounded
}

// DefaultOptions mirror a comfortable terminal simulation.
var DefaultOptions = Options{
	Interval: 100 * time.Millisecond,
	MaxSteps: 1000,
}

// Status describes the simulation at a concrete moment.
type Status struct {
	Step      int
	Mode      Mode
	LiveCells int
	StepTime  time.Duration
}

// Viewer is anything that can display the simulation; the runner calls
// Refresh after every state change.
type Viewer interface {
	Refresh()
	Register(r *Runner)
	Start()
}

// Runner wraps one simulator with a command loop.
type Runner struct {
	sim  *automaton.Simulator
	opts Options

	state struct {
		Status
		sync.Mutex
	}
	// snapshot of the active grid, refreshed after every mutation so viewers
	// can read without entering the command loop.
	area struct {
		grid *core.BoolGrid
		sync.Mutex
	}

	stateCh   chan Status
	controlCh chan func()
	closeCh   chan bool
	views     []Viewer
}

// New creates a Runner and starts its command loop. stateCh may be nil when
// the caller does not want status updates.
func New(sim *automaton.Simulator, opts Options, stateCh chan Status) *Runner {
	r := &Runner{
		sim:       sim,
		opts:      opts,
		stateCh:   stateCh,
		controlCh: make(chan func(), 1),
		closeCh:   make(chan bool, 1),
	}
	r.state.LiveCells = sim.LiveCells()
	r.area.grid = sim.Grid()
	go r.mainLoop()
	return r
}

// RegisterViewer attaches a viewer; the runner will call Refresh on it when
// the state changes.
func (r *Runner) RegisterViewer(v Viewer) {
	r.views = append(r.views, v)
	v.Register(r)
}

// Options returns the runner configuration.
func (r *Runner) Options() Options { return r.opts }

// Size returns the simulated grid dimensions.
func (r *Runner) Size() core.Size { return r.sim.Size() }

// Status returns the current status.
func (r *Runner) Status() Status {
	r.state.Lock()
	defer r.state.Unlock()
	return r.state.Status
}

// Grid returns the latest grid snapshot. The snapshot is owned by the
// runner; callers must treat it as read-only.
func (r *Runner) Grid() *core.BoolGrid {
	r.area.Lock()
	defer r.area.Unlock()
	return r.area.grid
}

// Step advances one generation; returns immediately.
func (r *Runner) Step() { r.controlCh <- func() { r.step(ModeStep) } }

// Run starts free-running stepping at the configured interval; returns
// immediately.
func (r *Runner) Run() { r.controlCh <- r.run }

// Stop halts a free run; returns immediately.
func (r *Runner) Stop() { r.controlCh <- r.stop }

// Clear kills all cells and resets the step counter; returns immediately.
func (r *Runner) Clear() { r.controlCh <- r.clear }

// Randomize reseeds the grid from the provided seed; returns immediately.
func (r *Runner) Randomize(seed int64) {
	r.controlCh <- func() {
		size := r.sim.Size()
		g := core.NewBoolGrid(size.W, size.H)
		core.FillBinary(core.NewRNG(seed).Source(), g.Cells())
		r.sim.SetGrid(g)
		r.resetCounters()
	}
}

// Settle brings the listed cells to life. Coordinates outside the grid are
// ignored, so templates can be larger than the field.
func (r *Runner) Settle(coords [][2]int) {
	r.controlCh <- func() {
		for _, c := range coords {
			_ = r.sim.SetCell(c[0], c[1], true)
		}
		r.refreshState()
	}
}

// Toggle flips the cell at (x, y); out-of-range clicks are ignored.
func (r *Runner) Toggle(x, y int) {
	r.controlCh <- func() {
		alive, err := r.sim.Cell(x, y)
		if err != nil {
			return
		}
		_ = r.sim.SetCell(x, y, !alive)
		r.refreshState()
	}
}

// Close stops the command loop; returns immediately.
func (r *Runner) Close() { r.closeCh <- true }

func (r *Runner) mainLoop() {
	closed := false
	for !closed {
		select {
		case cmd := <-r.controlCh:
			cmd()
		case closed = <-r.closeCh:
		}
	}
	close(r.closeCh)
	close(r.controlCh)
}

func (r *Runner) run() {
	r.switchMode(ModeRun)
	go func() {
		done := make(chan struct{}, 1)
		for r.Status().Mode == ModeRun {
			r.controlCh <- func() {
				r.step(ModeRun)
				done <- struct{}{}
			}
			<-done
			if r.opts.Interval > 0 {
				time.Sleep(r.opts.Interval)
			}
		}
	}()
}

func (r *Runner) stop() {
	if r.Status().Mode == ModeRun {
		r.switchMode(ModeManual)
	}
}

// step runs inside the command loop. The run terminates when the step bound
// is reached or the universe went static or empty.
func (r *Runner) step(mode Mode) {
	st := r.Status()
	if st.Mode == ModeDone {
		return
	}
	// A queued run-loop tick may land after Stop was processed.
	if mode == ModeRun && st.Mode != ModeRun {
		return
	}
	if r.opts.MaxSteps != 0 && st.Step >= r.opts.MaxSteps {
		r.switchMode(ModeDone)
		return
	}

	before := r.Grid()
	start := time.Now()
	r.sim.Step()
	elapsed := time.Since(start)

	after := r.sim.Grid()
	changed := !before.Equal(after)
	live := after.Popcount()

	r.area.Lock()
	r.area.grid = after
	r.area.Unlock()

	r.state.Lock()
	r.state.Step++
	r.state.LiveCells = live
	r.state.StepTime = elapsed
	r.state.Unlock()

	next := mode
	if !changed || live == 0 {
		next = ModeDone
	} else if mode == ModeStep {
		next = ModeManual
	}
	r.switchMode(next)
}

func (r *Runner) clear() {
	r.sim.Clear()
	r.resetCounters()
}

func (r *Runner) resetCounters() {
	r.state.Lock()
	r.state.Step = 0
	r.state.StepTime = 0
	r.state.Unlock()
	r.refreshState()
	r.switchMode(ModeManual)
}

// refreshState re-snapshots the grid, updates the live count and notifies
// the viewers.
func (r *Runner) refreshState() {
	g := r.sim.Grid()
	r.area.Lock()
	r.area.grid = g
	r.area.Unlock()
	r.state.Lock()
	r.state.LiveCells = g.Popcount()
	r.state.Unlock()
	r.refreshViews()
}

// switchMode records the new mode, publishes the status and refreshes the
// viewers.
func (r *Runner) switchMode(to Mode) {
	r.state.Lock()
	r.state.Mode = to
	st := r.state.Status
	r.state.Unlock()
	if r.stateCh != nil {
		r.stateCh <- st
	}
	r.refreshViews()
}

func (r *Runner) refreshViews() {
	for _, v := range r.views {
		v.Refresh()
	}
}
