package evaluator

import (
	"math"

	"cogentcore.org/core/math32"

	"github.com/vk/scenegridgo/internal/activator"
	"github.com/vk/scenegridgo/internal/model"
	"github.com/vk/scenegridgo/internal/names"
)

// DefaultTickRate is the simulated frame duration in seconds.
const DefaultTickRate = 1.0 / 60

// Dispatch is one journal entry: an action dispatched by a graph's actuator
// on a given tick.
type Dispatch struct {
	Tick   int
	Graph  string
	Node   string
	Action model.Action
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithTickRate sets the simulated frame duration in seconds.
func WithTickRate(seconds float64) Option {
	return func(e *Evaluator) { e.tickRate = seconds }
}

// Evaluator polls every node of every registered graph once per Tick call.
type Evaluator struct {
	tickRate float64
	tick     int

	runtimes []*runtime
	byName   map[string]*runtime

	positions map[string]math32.Vector3
	clicked   map[string]bool

	journal []Dispatch

	// deferred holds cross-graph effects applied after the current tick.
	deferred []func()
}

// New builds an evaluator over the given compiled graphs.
func New(graphs []*activator.Graph, opts ...Option) *Evaluator {
	e := &Evaluator{
		tickRate:  DefaultTickRate,
		byName:    make(map[string]*runtime),
		positions: make(map[string]math32.Vector3),
		clicked:   make(map[string]bool),
	}
	for _, opt := range opts {
		opt(e)
	}
	for _, g := range graphs {
		rt := newRuntime(g)
		e.runtimes = append(e.runtimes, rt)
		e.byName[g.BaseObjectName] = rt
	}
	return e
}

// SetPosition places a host object for subsequent ticks.
func (e *Evaluator) SetPosition(hostObject string, x, y, z float32) {
	e.positions[hostObject] = math32.Vec3(x, y, z)
}

// Click injects a recognized click on a host object for the next tick only.
func (e *Evaluator) Click(hostObject string) {
	e.clicked[hostObject] = true
}

// State returns a copy of the named graph's current state holder.
func (e *Evaluator) State(baseObjectName string) (activator.StateHolder, bool) {
	rt, ok := e.byName[baseObjectName]
	if !ok {
		return activator.StateHolder{}, false
	}
	return rt.state, true
}

// Journal returns every dispatch so far, in dispatch order.
func (e *Evaluator) Journal() []Dispatch { return e.journal }

// Tick advances the simulation one frame: every node of every graph is
// polled once. Only ordering within one graph is meaningful.
func (e *Evaluator) Tick() {
	for _, rt := range e.runtimes {
		e.evalGraph(rt)
	}
	for _, apply := range e.deferred {
		apply()
	}
	e.deferred = nil
	e.clicked = make(map[string]bool)
	e.tick++
}

// Run advances the simulation n frames.
func (e *Evaluator) Run(n int) {
	for i := 0; i < n; i++ {
		e.Tick()
	}
}

// Elapsed returns the simulated seconds since the evaluator started.
func (e *Evaluator) Elapsed() float64 { return float64(e.tick) * e.tickRate }

func (e *Evaluator) evalGraph(rt *runtime) {
	rt.updateClock(e.tick)

	signals := make(map[string]bool)
	for _, s := range rt.graph.Sensors() {
		signals[s.NodeName()] = e.evalSensor(rt, s)
	}

	for _, c := range rt.graph.Controllers() {
		switch ctrl := c.(type) {
		case *activator.LogicController:
			fire := e.evalLogic(rt, ctrl, signals)
			if fire {
				for _, out := range rt.graph.Outputs(ctrl.Name) {
					e.fireActuator(rt, out)
				}
			}
		case *activator.ScriptController:
			e.evalScript(rt, ctrl, signals)
		}
	}
}

func (e *Evaluator) evalSensor(rt *runtime, s activator.Sensor) bool {
	switch sensor := s.(type) {
	case *activator.PropertySensor:
		value := rt.property(sensor.Property) == sensor.Value
		if sensor.Pulse {
			return value
		}
		prev := rt.prevSignal[sensor.Name]
		rt.prevSignal[sensor.Name] = value
		return value && !prev
	case *activator.ClickSensor:
		return e.clicked[sensor.Target]
	case *activator.DelaySensor:
		return e.tick == sensor.Ticks
	case *activator.ClockSensor:
		return rt.clockValid
	case *activator.TimeSensor:
		if !rt.clockValid || rt.fired[sensor.Name] {
			return false
		}
		elapsed := float64(e.tick-rt.clockStart) * e.tickRate
		if elapsed >= sensor.At {
			rt.fired[sensor.Name] = true
			return true
		}
		return false
	}
	return false
}

func (e *Evaluator) evalLogic(rt *runtime, c *activator.LogicController, signals map[string]bool) bool {
	raw := c.Op == activator.OpAnd
	for _, in := range rt.graph.Inputs(c.Name) {
		if c.Op == activator.OpAnd {
			raw = raw && signals[in]
		} else {
			raw = raw || signals[in]
		}
	}
	if c.Sustain <= 0 {
		return raw
	}
	if !raw {
		rt.heldTicks[c.Name] = 0
		return false
	}
	rt.heldTicks[c.Name]++
	need := int(math.Ceil(c.Sustain / e.tickRate))
	return rt.heldTicks[c.Name] >= need
}

func (e *Evaluator) evalScript(rt *runtime, c *activator.ScriptController, signals map[string]bool) {
	switch {
	case c.Region != nil:
		e.evalRegion(rt, c, signals)
	case c.Click != nil:
		e.evalClick(rt, c, signals)
	}
}

// evalRegion mirrors the emitted detection script: re-arm on a false detect,
// accumulate the sustained window, then transition Stop to Start.
func (e *Evaluator) evalRegion(rt *runtime, c *activator.ScriptController, signals map[string]bool) {
	d := c.Region
	positions := make([]math32.Vector3, 0, len(d.Objects))
	for _, hostObject := range d.Objects {
		positions = append(positions, e.positions[hostObject])
	}
	detect := model.DetectAggregate(d.Box, d.DetectAny, positions)

	if !detect {
		rt.held = 0
		if rt.state.Status == activator.StatusStart {
			rt.state.Status = activator.StatusStop
		}
		return
	}
	if d.Duration > 0 {
		rt.held += e.tickRate
		if rt.held < d.Duration {
			return
		}
	}
	if rt.state.Enabled && rt.state.Status == activator.StatusStop {
		rt.state.Status = activator.StatusStart
	}
}

// evalClick mirrors the emitted click script: advance and wrap the counter,
// route dispatch to the new count's binding or the any-count fallback, and
// disable after the first dispatch when configured to.
func (e *Evaluator) evalClick(rt *runtime, c *activator.ScriptController, signals map[string]bool) {
	inputs := rt.graph.Inputs(c.Name)
	for _, in := range inputs {
		if !signals[in] {
			return
		}
	}

	d := c.Click
	count := rt.state.Clicks + 1
	if d.Reset >= 0 && count == d.Reset {
		count = 0
	}
	rt.state.Clicks = count

	actuator := ""
	for _, bound := range d.Counts {
		if bound == count {
			actuator = "dispatch_" + itoa(count)
			break
		}
	}
	if actuator == "" && d.HasAny {
		actuator = "dispatch_any"
	}
	if actuator == "" {
		return
	}
	e.fireActuator(rt, actuator)
	if !d.RemainEnabled {
		e.deferred = append(e.deferred, func() { rt.state.Enabled = false })
	}
}

func (e *Evaluator) fireActuator(rt *runtime, name string) {
	switch act := rt.graph.Node(name).(type) {
	case *activator.ActionActuator:
		for _, action := range act.Actions {
			e.journal = append(e.journal, Dispatch{
				Tick:   e.tick,
				Graph:  rt.graph.BaseObjectName,
				Node:   name,
				Action: action,
			})
			e.applyCrossGraph(action)
		}
	case *activator.PropertyActuator:
		property, value := act.Property, act.Value
		e.deferred = append(e.deferred, func() { rt.setProperty(property, value) })
	}
}

// applyCrossGraph queues the effects a dispatched action has on other
// graphs. They land after the tick, observed on the next one.
func (e *Evaluator) applyCrossGraph(action model.Action) {
	switch a := action.(type) {
	case model.TimelineAction:
		target, ok := e.byName[names.ForTimeline(a.Timeline)]
		if !ok {
			return
		}
		if a.Operation == model.TimelineStart {
			e.deferred = append(e.deferred, func() { target.restart() })
		} else {
			e.deferred = append(e.deferred, func() { target.state.Status = activator.StatusStop })
		}
	case model.EventTriggerAction:
		target, ok := e.byName[names.ForTrigger(a.Trigger)]
		if !ok {
			return
		}
		e.deferred = append(e.deferred, func() { target.state.Enabled = a.Enable })
	}
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
