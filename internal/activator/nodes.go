package activator

import (
	"github.com/vk/scenegridgo/internal/model"
	"github.com/vk/scenegridgo/internal/script"
)

// Node is one element of a compiled graph. Nodes are pure descriptions; the
// host engine (or the reference evaluator) interprets them each tick.
type Node interface {
	// NodeName returns the node's name, unique within its graph.
	NodeName() string
}

// Sensor nodes produce a boolean signal each tick.
type Sensor interface {
	Node
	isSensor()
}

// Controller nodes combine sensor signals and drive actuators.
type Controller interface {
	Node
	isController()
}

// Actuator nodes apply an effect when their controller fires.
type Actuator interface {
	Node
	isActuator()
}

// PropertySensor reads a state-holder field and compares it to Value.
// With Pulse set it re-asserts the comparison every evaluation tick, so
// downstream logic always sees a fresh read; without Pulse it signals only
// on the false-to-true transition.
type PropertySensor struct {
	Name     string
	Property string
	Value    string
	Pulse    bool
}

// NodeName implements Node.
func (s *PropertySensor) NodeName() string { return s.Name }

func (*PropertySensor) isSensor() {}

// ClickSensor signals on a recognized click on the target object.
type ClickSensor struct {
	Name   string
	Target string
}

// NodeName implements Node.
func (s *ClickSensor) NodeName() string { return s.Name }

func (*ClickSensor) isSensor() {}

// DelaySensor signals once, Ticks ticks after the scene starts.
type DelaySensor struct {
	Name  string
	Ticks int
}

// NodeName implements Node.
func (s *DelaySensor) NodeName() string { return s.Name }

func (*DelaySensor) isSensor() {}

// ClockSensor is a timeline's scheduled-clock source. It starts counting
// when the state holder's status flips to Start and rewinds on the next
// Stop-to-Start transition.
type ClockSensor struct {
	Name string
}

// NodeName implements Node.
func (s *ClockSensor) NodeName() string { return s.Name }

func (*ClockSensor) isSensor() {}

// TimeSensor signals the instant the timeline clock crosses At seconds.
// Firing is edge-triggered: at most once per timeline run, not on every
// subsequent tick the threshold remains crossed.
type TimeSensor struct {
	Name string
	At   float64
}

// NodeName implements Node.
func (s *TimeSensor) NodeName() string { return s.Name }

func (*TimeSensor) isSensor() {}

// LogicOp is the combination rule of a LogicController.
type LogicOp int

// Combination rules.
const (
	OpAnd LogicOp = iota
	OpOr
)

// LogicController combines its linked sensors under Op. Sustain, when
// positive, gates the output: the combined signal must hold continuously for
// Sustain seconds before the controller fires, and the continuous-hold
// counter rewinds on the first false tick.
type LogicController struct {
	Name    string
	Op      LogicOp
	Sustain float64
}

// NodeName implements Node.
func (c *LogicController) NodeName() string { return c.Name }

func (*LogicController) isController() {}

// ScriptController holds a typed predicate description that is lowered to
// host-script text by the script package. The description stays structured
// here so the predicate is testable independently of text generation.
type ScriptController struct {
	Name string

	// Module is the host script entry point, e.g. "trigger_door.detect_event".
	Module string

	// Exactly one of the descriptors is set.
	Region *script.RegionDescriptor
	Click  *script.ClickDescriptor
}

// NodeName implements Node.
func (c *ScriptController) NodeName() string { return c.Name }

func (*ScriptController) isController() {}

// PropertyActuator assigns a state-holder field when fired.
type PropertyActuator struct {
	Name     string
	Property string
	Value    string
}

// NodeName implements Node.
func (a *PropertyActuator) NodeName() string { return a.Name }

func (*PropertyActuator) isActuator() {}

// ActionActuator dispatches an ordered action list when fired.
type ActionActuator struct {
	Name    string
	Actions []model.Action
}

// NodeName implements Node.
func (a *ActionActuator) NodeName() string { return a.Name }

func (*ActionActuator) isActuator() {}
