// Package scene aggregates a project's authored content — objects, groups,
// timelines, region triggers, clickable links — into a single workspace view
// and compiles all of it into behavior graphs.
//
// The scene owns the process-wide host namespace: every materialized object
// and every compiled logic carrier claims its host name here, and collisions
// are rejected at allocation time instead of surfacing as host load
// failures. The scene also supplies the resolver collaborators (object and
// group expansion, position lookup) the activator compiler and the reference
// evaluator consume.
package scene
