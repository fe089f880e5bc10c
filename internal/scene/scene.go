package scene

import (
	"context"
	"fmt"

	"cogentcore.org/core/math32"

	"github.com/vk/scenegridgo/internal/activator"
	"github.com/vk/scenegridgo/internal/ctxlog"
	"github.com/vk/scenegridgo/internal/errs"
	"github.com/vk/scenegridgo/internal/model"
	"github.com/vk/scenegridgo/internal/names"
)

// Scene is one project's complete authored content. Collections keep
// authoring order; compilation is deterministic because of it.
type Scene struct {
	objects     []*model.Object
	objectIndex map[string]*model.Object

	groupOrder []string
	groups     map[string][]string

	timelines     []*model.Timeline
	timelineIndex map[string]*model.Timeline

	triggers     []*model.RegionTrigger
	triggerIndex map[string]*model.RegionTrigger

	namespace *Namespace
}

// New returns an empty scene with a fresh namespace.
func New() *Scene {
	return &Scene{
		objectIndex:   make(map[string]*model.Object),
		groups:        make(map[string][]string),
		timelineIndex: make(map[string]*model.Timeline),
		triggerIndex:  make(map[string]*model.RegionTrigger),
		namespace:     NewNamespace(),
	}
}

// Namespace returns the scene's host namespace.
func (s *Scene) Namespace() *Namespace { return s.namespace }

// Objects returns the authored objects in authoring order.
func (s *Scene) Objects() []*model.Object { return s.objects }

// Timelines returns the authored timelines in authoring order.
func (s *Scene) Timelines() []*model.Timeline { return s.timelines }

// Triggers returns the authored region triggers in authoring order.
func (s *Scene) Triggers() []*model.RegionTrigger { return s.triggers }

// Groups returns the defined group names in authoring order.
func (s *Scene) Groups() []string { return s.groupOrder }

// GroupMembers returns the named group's members in authored order, or nil.
func (s *Scene) GroupMembers(name string) []string { return s.groups[name] }

// Object returns the named object, or nil.
func (s *Scene) Object(name string) *model.Object { return s.objectIndex[name] }

// Timeline returns the named timeline, or nil.
func (s *Scene) Timeline(name string) *model.Timeline { return s.timelineIndex[name] }

// AddObject validates o, claims its host name and adds it to the scene.
func (s *Scene) AddObject(o *model.Object) error {
	if err := names.Check(o.Name); err != nil {
		return fmt.Errorf("object: %w", err)
	}
	if err := o.Validate(); err != nil {
		return fmt.Errorf("object %q: %w", o.Name, err)
	}
	if _, exists := s.objectIndex[o.Name]; exists {
		return fmt.Errorf("object %q already defined", o.Name)
	}
	if err := s.namespace.Claim(names.ForObject(o.Name)); err != nil {
		return err
	}
	s.objects = append(s.objects, o)
	s.objectIndex[o.Name] = o
	return nil
}

// AddGroup defines a named, ordered object group. Members must already be
// defined.
func (s *Scene) AddGroup(name string, members []string) error {
	if err := names.Check(name); err != nil {
		return fmt.Errorf("group: %w", err)
	}
	if _, exists := s.groups[name]; exists {
		return fmt.Errorf("group %q already defined", name)
	}
	for _, member := range members {
		if _, ok := s.objectIndex[member]; !ok {
			return errs.NewUnresolvedReference(member)
		}
	}
	if err := s.namespace.Claim(names.ForGroup(name)); err != nil {
		return err
	}
	s.groupOrder = append(s.groupOrder, name)
	s.groups[name] = append([]string(nil), members...)
	return nil
}

// AddTimeline adds a timeline. Its host name is claimed at compile time.
func (s *Scene) AddTimeline(tl *model.Timeline) error {
	if err := names.Check(tl.Name); err != nil {
		return fmt.Errorf("timeline: %w", err)
	}
	if _, exists := s.timelineIndex[tl.Name]; exists {
		return fmt.Errorf("timeline %q already defined", tl.Name)
	}
	s.timelines = append(s.timelines, tl)
	s.timelineIndex[tl.Name] = tl
	return nil
}

// AddTrigger adds a region trigger. Its host name is claimed at compile time.
func (s *Scene) AddTrigger(rt *model.RegionTrigger) error {
	if err := names.Check(rt.Name); err != nil {
		return fmt.Errorf("trigger: %w", err)
	}
	if _, exists := s.triggerIndex[rt.Name]; exists {
		return fmt.Errorf("trigger %q already defined", rt.Name)
	}
	s.triggers = append(s.triggers, rt)
	s.triggerIndex[rt.Name] = rt
	return nil
}

// ResolveObjects expands an object or group name to the ordered,
// deduplicated set of authored object names it denotes.
func (s *Scene) ResolveObjects(nameOrGroup string) ([]string, error) {
	if members, ok := s.groups[nameOrGroup]; ok {
		var out []string
		seen := make(map[string]bool)
		for _, member := range members {
			if !seen[member] {
				seen[member] = true
				out = append(out, member)
			}
		}
		return out, nil
	}
	if _, ok := s.objectIndex[nameOrGroup]; ok {
		return []string{nameOrGroup}, nil
	}
	return nil, errs.NewUnresolvedReference(nameOrGroup)
}

// GetPosition returns the authored position of the named object.
func (s *Scene) GetPosition(name string) (math32.Vector3, bool) {
	o, ok := s.objectIndex[name]
	if !ok {
		return math32.Vector3{}, false
	}
	return o.Placement.Position, true
}

// CompileAll lowers every timeline, region trigger and clickable link into
// its behavior graph, in authoring order. The first failure aborts the
// whole compilation; a partially compiled scene is not emitted.
func (s *Scene) CompileAll(ctx context.Context) ([]*activator.Graph, error) {
	logger := ctxlog.FromContext(ctx)
	env := activator.Env{Resolver: s, Namespace: s.namespace}

	var graphs []*activator.Graph
	for _, tl := range s.timelines {
		logger.Debug("Compiling timeline.", "name", tl.Name, "actions", tl.Len())
		g, err := activator.NewTimeline(tl).Compile(env)
		if err != nil {
			return nil, err
		}
		graphs = append(graphs, g)
	}
	for _, rt := range s.triggers {
		logger.Debug("Compiling region trigger.", "name", rt.Name)
		g, err := activator.NewRegion(rt).Compile(env)
		if err != nil {
			return nil, err
		}
		graphs = append(graphs, g)
	}
	for _, o := range s.objects {
		if o.Link == nil {
			continue
		}
		logger.Debug("Compiling click link.", "object", o.Name)
		g, err := activator.NewClick(o.Link, o.Name).Compile(env)
		if err != nil {
			return nil, err
		}
		graphs = append(graphs, g)
	}
	logger.Debug("Scene compilation complete.", "graph_count", len(graphs))
	return graphs, nil
}
