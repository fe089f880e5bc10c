package activator

import (
	"fmt"
	"strconv"

	"github.com/vk/scenegridgo/internal/errs"
	"github.com/vk/scenegridgo/internal/model"
	"github.com/vk/scenegridgo/internal/names"
	"github.com/vk/scenegridgo/internal/script"
)

// ClickActivator lowers a clickable link into a behavior graph: a click
// sensor on the target object feeding a script controller that owns the
// click-count bookkeeping, with one dispatch actuator per bound count.
type ClickActivator struct {
	link   *model.ClickLink
	target string
	graph  *Graph
	linked bool
}

// NewClick returns an uncompiled activator for link, attached to the
// authored object named target.
func NewClick(link *model.ClickLink, target string) *ClickActivator {
	return &ClickActivator{link: link, target: target}
}

// Graph returns the compiled graph, nil before CreateNodes.
func (a *ClickActivator) Graph() *Graph { return a.graph }

// CreateNodes verifies the target object exists and allocates all nodes.
func (a *ClickActivator) CreateNodes(env Env) error {
	if _, err := env.Resolver.ResolveObjects(a.target); err != nil {
		return fmt.Errorf("link on %q: %w", a.target, err)
	}
	base := names.ForTrigger(a.target + "_link")
	if err := env.Namespace.Claim(base); err != nil {
		return fmt.Errorf("link on %q: %w", a.target, err)
	}

	l := a.link
	targetObject := names.ForObject(a.target)
	g := newGraph(a.target, base, a.target)
	g.State = StateHolder{Enabled: l.Enabled}

	if err := g.AddSensor(&ClickSensor{Name: "click_sensor", Target: targetObject}); err != nil {
		return err
	}
	if err := g.AddSensor(&PropertySensor{
		Name: "enabled_sensor", Property: "enabled", Value: "True", Pulse: true,
	}); err != nil {
		return err
	}

	counts := l.BoundCounts()
	_, hasAny := l.OnClick[model.AnyClick]
	if err := g.AddController(&ScriptController{
		Name:   "click",
		Module: base + ".handle_click",
		Click: &script.ClickDescriptor{
			Module:        base + ".handle_click",
			Target:        targetObject,
			Counts:        counts,
			HasAny:        hasAny,
			Reset:         l.Reset,
			RemainEnabled: l.RemainEnabled,
		},
	}); err != nil {
		return err
	}

	for _, count := range counts {
		if err := g.AddActuator(&ActionActuator{
			Name:    "dispatch_" + strconv.Itoa(count),
			Actions: l.OnClick[count],
		}); err != nil {
			return err
		}
	}
	if hasAny {
		if err := g.AddActuator(&ActionActuator{
			Name:    "dispatch_any",
			Actions: l.OnClick[model.AnyClick],
		}); err != nil {
			return err
		}
	}

	a.graph = g
	return nil
}

// LinkNodes wires the click and enabled sensors into the bookkeeping
// controller and the controller into every dispatch actuator.
func (a *ClickActivator) LinkNodes() error {
	if a.graph == nil {
		return errs.NewPrecondition("LinkNodes", "CreateNodes")
	}
	if err := a.graph.Connect("click_sensor", "click"); err != nil {
		return err
	}
	if err := a.graph.Connect("enabled_sensor", "click"); err != nil {
		return err
	}
	for _, count := range a.link.BoundCounts() {
		if err := a.graph.Connect("click", "dispatch_"+strconv.Itoa(count)); err != nil {
			return err
		}
	}
	if _, hasAny := a.link.OnClick[model.AnyClick]; hasAny {
		if err := a.graph.Connect("click", "dispatch_any"); err != nil {
			return err
		}
	}
	a.linked = true
	return nil
}

// WriteLogic emits the click bookkeeping script.
func (a *ClickActivator) WriteLogic() (string, error) {
	if !a.linked {
		return "", errs.NewPrecondition("WriteLogic", "LinkNodes")
	}
	click, ok := a.graph.Node("click").(*ScriptController)
	if !ok {
		return "", errs.NewPrecondition("WriteLogic", "CreateNodes")
	}
	return script.EmitClickDispatch(click.Click)
}

// Compile runs the full protocol and returns the graph.
func (a *ClickActivator) Compile(env Env) (*Graph, error) {
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
