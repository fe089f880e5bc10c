package activator

import (
	"fmt"

	"github.com/vk/scenegridgo/internal/errs"
	"github.com/vk/scenegridgo/internal/model"
	"github.com/vk/scenegridgo/internal/names"
)

// TimelineActivator lowers a timeline into a behavior graph: one state
// holder, one scheduled-clock source, and per scheduled action an
// edge-triggered elapsed-time condition wired to that action's dispatch.
type TimelineActivator struct {
	timeline *model.Timeline
	graph    *Graph
	linked   bool
}

// NewTimeline returns an uncompiled activator for tl.
func NewTimeline(tl *model.Timeline) *TimelineActivator {
	return &TimelineActivator{timeline: tl}
}

// Graph returns the compiled graph, nil before CreateNodes.
func (a *TimelineActivator) Graph() *Graph { return a.graph }

// CreateNodes allocates the state holder and all nodes. Compiling an empty
// timeline is legal and produces a graph that never dispatches.
func (a *TimelineActivator) CreateNodes(env Env) error {
	base := names.ForTimeline(a.timeline.Name)
	if err := env.Namespace.Claim(base); err != nil {
		return fmt.Errorf("timeline %q: %w", a.timeline.Name, err)
	}

	g := newGraph(a.timeline.Name, base, a.timeline.Name)
	g.State = StateHolder{Enabled: true}
	if a.timeline.StartImmediately {
		g.State.Status = StatusStart
	}

	if err := g.AddSensor(&ClockSensor{Name: "clock"}); err != nil {
		return err
	}
	if err := g.AddSensor(&PropertySensor{
		Name: "running", Property: "status", Value: StatusStart.String(), Pulse: true,
	}); err != nil {
		return err
	}
	for i, entry := range a.timeline.Actions() {
		if err := g.AddSensor(&TimeSensor{Name: fmt.Sprintf("at_%d", i), At: entry.Time}); err != nil {
			return err
		}
		if err := g.AddController(&LogicController{Name: fmt.Sprintf("fire_%d", i), Op: OpAnd}); err != nil {
			return err
		}
		if err := g.AddActuator(&ActionActuator{
			Name:    fmt.Sprintf("dispatch_%d", i),
			Actions: []model.Action{entry.Action},
		}); err != nil {
			return err
		}
	}

	a.graph = g
	return nil
}

// LinkNodes wires each elapsed-time condition through its controller to its
// dispatch actuator.
func (a *TimelineActivator) LinkNodes() error {
	if a.graph == nil {
		return errs.NewPrecondition("LinkNodes", "CreateNodes")
	}
	for i := 0; i < a.timeline.Len(); i++ {
		fire := fmt.Sprintf("fire_%d", i)
		if err := a.graph.Connect("running", fire); err != nil {
			return err
		}
		if err := a.graph.Connect(fmt.Sprintf("at_%d", i), fire); err != nil {
			return err
		}
		if err := a.graph.Connect(fire, fmt.Sprintf("dispatch_%d", i)); err != nil {
			return err
		}
	}
	a.linked = true
	return nil
}

// WriteLogic emits nothing: timeline conditions are fully expressed by
// static nodes.
func (a *TimelineActivator) WriteLogic() (string, error) {
	if !a.linked {
		return "", errs.NewPrecondition("WriteLogic", "LinkNodes")
	}
	return "", nil
}

// Compile runs the full protocol and returns the graph.
func (a *TimelineActivator) Compile(env Env) (*Graph, error) {
	if err := a.CreateNodes(env); err != nil {
		return nil, err
	}
	if err := a.LinkNodes(); err != nil {
		return nil, err
	}
	logic, err := a.WriteLogic()
	if err != nil {
		return nil, err
	}
	a.graph.logic = logic
	return a.graph, nil
}
