package evaluator

import (
	"github.com/vk/scenegridgo/internal/activator"
)

// runtime is the mutable per-graph record: the live state holder plus the
// bookkeeping the host engine would keep in its own scheduler.
type runtime struct {
	graph *activator.Graph
	state activator.StateHolder

	// clock bookkeeping for ClockSensor / TimeSensor.
	clockStart int
	clockValid bool

	// fired marks TimeSensors that already fired this run.
	fired map[string]bool

	// prevSignal holds last-tick sensor values for edge detection.
	prevSignal map[string]bool

	// heldTicks counts consecutive true ticks per sustained controller.
	heldTicks map[string]int

	// held accumulates the region controller's sustained-detect seconds.
	held float64
}

func newRuntime(g *activator.Graph) *runtime {
	return &runtime{
		graph:      g,
		state:      g.State,
		fired:      make(map[string]bool),
		prevSignal: make(map[string]bool),
		heldTicks:  make(map[string]int),
	}
}

// property reads a state-holder field by its host property name.
func (rt *runtime) property(name string) string {
	switch name {
	case "status":
		return rt.state.Status.String()
	case "enabled":
		if rt.state.Enabled {
			return "True"
		}
		return "False"
	}
	return ""
}

// setProperty writes a state-holder field by its host property name.
func (rt *runtime) setProperty(name, value string) {
	switch name {
	case "status":
		if value == activator.StatusStart.String() {
			rt.state.Status = activator.StatusStart
		} else {
			rt.state.Status = activator.StatusStop
		}
	case "enabled":
		rt.state.Enabled = value == "True"
	}
}

// updateClock keeps the timeline clock in step with the status field: it
// starts counting on Start, rewinds when the run is stopped.
func (rt *runtime) updateClock(tick int) {
	switch rt.state.Status {
	case activator.StatusStart:
		if !rt.clockValid {
			rt.clockStart = tick
			rt.clockValid = true
		}
	case activator.StatusStop:
		rt.clockValid = false
	}
}

// restart rewinds the graph for a fresh run: status Start, clock invalidated
// so the next tick re-seeds it, and every time sensor re-armed.
func (rt *runtime) restart() {
	rt.state.Status = activator.StatusStart
	rt.clockValid = false
	rt.fired = make(map[string]bool)
}
