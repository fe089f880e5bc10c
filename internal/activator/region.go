package activator

import (
	"fmt"

	"github.com/vk/scenegridgo/internal/errs"
	"github.com/vk/scenegridgo/internal/model"
	"github.com/vk/scenegridgo/internal/names"
	"github.com/vk/scenegridgo/internal/script"
)

// RegionActivator lowers a spatial region trigger into a behavior graph: an
// enabled-pulse sensor feeding a script controller that evaluates the
// containment predicate against live object positions each tick, plus the
// dispatch wiring on the Stop-to-Start transition.
type RegionActivator struct {
	trigger *model.RegionTrigger
	graph   *Graph
	linked  bool
}

// NewRegion returns an uncompiled activator for rt.
func NewRegion(rt *model.RegionTrigger) *RegionActivator {
	return &RegionActivator{trigger: rt}
}

// Graph returns the compiled graph, nil before CreateNodes.
func (a *RegionActivator) Graph() *Graph { return a.graph }

// CreateNodes resolves the tracked object set and allocates all nodes.
// An unresolvable tracked name fails the whole compilation; it must not
// degrade into an always-false detect condition.
func (a *RegionActivator) CreateNodes(env Env) error {
	t := a.trigger
	base := names.ForTrigger(t.Name)
	if err := env.Namespace.Claim(base); err != nil {
		return fmt.Errorf("region trigger %q: %w", t.Name, err)
	}

	var objects []string
	seen := make(map[string]bool)
	for _, tracked := range t.Tracked {
		resolved, err := env.Resolver.ResolveObjects(tracked)
		if err != nil {
			return fmt.Errorf("region trigger %q: %w", t.Name, err)
		}
		for _, name := range resolved {
			if seen[name] {
				continue
			}
			seen[name] = true
			objects = append(objects, names.ForObject(name))
		}
	}

	g := newGraph(t.Name, base, t.Name)
	g.State = StateHolder{Enabled: t.Enabled}

	if err := g.AddSensor(&PropertySensor{
		Name: "enabled_sensor", Property: "enabled", Value: "True", Pulse: true,
	}); err != nil {
		return err
	}
	if err := g.AddController(&ScriptController{
		Name:   "detect",
		Module: base + ".detect_event",
		Region: &script.RegionDescriptor{
			Module:    base + ".detect_event",
			Box:       t.Box,
			DetectAny: t.DetectAny,
			Objects:   objects,
			Duration:  t.Duration,
		},
	}); err != nil {
		return err
	}
	// Dispatch rides the Stop-to-Start edge, so a sustained detect does not
	// re-dispatch every tick.
	if err := g.AddSensor(&PropertySensor{
		Name: "status_sensor", Property: "status", Value: StatusStart.String(),
	}); err != nil {
		return err
	}
	if err := g.AddController(&LogicController{Name: "on_start", Op: OpAnd}); err != nil {
		return err
	}
	if err := g.AddActuator(&ActionActuator{Name: "dispatch", Actions: t.Actions}); err != nil {
		return err
	}
	if !t.RemainEnabled {
		if err := g.AddActuator(&PropertyActuator{
			Name: "disable", Property: "enabled", Value: "False",
		}); err != nil {
			return err
		}
	}

	a.graph = g
	return nil
}

// LinkNodes wires the enabled pulse into detection and the start edge into
// dispatch.
func (a *RegionActivator) LinkNodes() error {
	if a.graph == nil {
		return errs.NewPrecondition("LinkNodes", "CreateNodes")
	}
	if err := a.graph.Connect("enabled_sensor", "detect"); err != nil {
		return err
	}
	if err := a.graph.Connect("status_sensor", "on_start"); err != nil {
		return err
	}
	if err := a.graph.Connect("on_start", "dispatch"); err != nil {
		return err
	}
	if !a.trigger.RemainEnabled {
		if err := a.graph.Connect("on_start", "disable"); err != nil {
			return err
		}
	}
	a.linked = true
	return nil
}

// WriteLogic emits the containment detection script.
func (a *RegionActivator) WriteLogic() (string, error) {
	if !a.linked {
		return "", errs.NewPrecondition("WriteLogic", "LinkNodes")
	}
	detect, ok := a.graph.Node("detect").(*ScriptController)
	if !ok {
		return "", errs.NewPrecondition("WriteLogic", "CreateNodes")
	}
	return script.EmitRegionDetect(detect.Region)
}

// Compile runs the full protocol and returns the graph.
func (a *RegionActivator) Compile(env Env) (*Graph, error) {
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
