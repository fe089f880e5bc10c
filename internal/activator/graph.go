package activator

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/vk/scenegridgo/internal/errs"
)

// Link is a directed edge between two named nodes of one graph: sensor to
// controller, or controller to actuator.
type Link struct {
	From string
	To   string
}

// Graph is the compiled output for one timeline, trigger or link: a state
// holder, typed nodes, the links between them, and any generated script
// text. A graph is owned exclusively by the record that produced it and is
// keyed to a unique base object name in the host namespace.
type Graph struct {
	ID uuid.UUID

	// Name is the authored name of the source record.
	Name string

	// BaseObjectName is the logic carrier's identity in the host namespace.
	BaseObjectName string

	// Target is the authored name of the object the graph is attached to.
	Target string

	// State is the initial state holder the host materializes.
	State StateHolder

	sensors     []Sensor
	controllers []Controller
	actuators   []Actuator
	links       []Link
	index       map[string]Node
	logic       string
}

func newGraph(name, baseObjectName, target string) *Graph {
	return &Graph{
		ID:             uuid.New(),
		Name:           name,
		BaseObjectName: baseObjectName,
		Target:         target,
		index:          make(map[string]Node),
	}
}

func (g *Graph) add(n Node) error {
	name := n.NodeName()
	if _, exists := g.index[name]; exists {
		return fmt.Errorf("duplicate node name %q in graph %q", name, g.Name)
	}
	g.index[name] = n
	return nil
}

// AddSensor registers a sensor node. Node names are unique per graph.
func (g *Graph) AddSensor(s Sensor) error {
	if err := g.add(s); err != nil {
		return err
	}
	g.sensors = append(g.sensors, s)
	return nil
}

// AddController registers a controller node.
func (g *Graph) AddController(c Controller) error {
	if err := g.add(c); err != nil {
		return err
	}
	g.controllers = append(g.controllers, c)
	return nil
}

// AddActuator registers an actuator node.
func (g *Graph) AddActuator(a Actuator) error {
	if err := g.add(a); err != nil {
		return err
	}
	g.actuators = append(g.actuators, a)
	return nil
}

// Connect links two existing nodes. Linking a node that has not been created
// is a protocol violation.
func (g *Graph) Connect(from, to string) error {
	if _, ok := g.index[from]; !ok {
		return errs.NewPrecondition(fmt.Sprintf("linking %q", from), "node creation")
	}
	if _, ok := g.index[to]; !ok {
		return errs.NewPrecondition(fmt.Sprintf("linking %q", to), "node creation")
	}
	g.links = append(g.links, Link{From: from, To: to})
	return nil
}

// Node returns the named node, or nil.
func (g *Graph) Node(name string) Node { return g.index[name] }

// Sensors returns the graph's sensors in creation order.
func (g *Graph) Sensors() []Sensor { return g.sensors }

// Controllers returns the graph's controllers in creation order.
func (g *Graph) Controllers() []Controller { return g.controllers }

// Actuators returns the graph's actuators in creation order.
func (g *Graph) Actuators() []Actuator { return g.actuators }

// Links returns every edge in creation order.
func (g *Graph) Links() []Link { return g.links }

// Inputs returns the names of nodes linked into the named node.
func (g *Graph) Inputs(name string) []string {
	var in []string
	for _, l := range g.links {
		if l.To == name {
			in = append(in, l.From)
		}
	}
	return in
}

// Outputs returns the names of nodes the named node links to.
func (g *Graph) Outputs(name string) []string {
	var out []string
	for _, l := range g.links {
		if l.From == name {
			out = append(out, l.To)
		}
	}
	return out
}

// Logic returns the generated host-script source, empty for graphs whose
// conditions are fully expressed by static nodes.
func (g *Graph) Logic() string { return g.logic }
