// Package activator lowers declarative scene records (timelines, spatial
// region triggers, clickable links) into behavior graphs the host engine's
// frame loop can evaluate.
//
// # Compile protocol
//
// Every variant follows the same strictly ordered protocol:
//
//  1. CreateNodes — allocate the state holder and the sensor, controller and
//     actuator nodes.
//  2. LinkNodes — wire sensors to controllers and controllers to actuators.
//  3. WriteLogic — emit generated script text for variants whose detect
//     condition cannot be expressed by static nodes alone.
//
// Driving the protocol out of order is a programmer error and returns
// *errs.PreconditionError. Compile runs all three steps and claims the
// graph's base object name in the scene namespace.
//
// # Output shape
//
// The compiled Graph is a description, not a program: a state holder
// (enabled, status, click count), typed sensor/controller/actuator nodes and
// the links between them. The host engine polls every node once per tick;
// only ordering within one graph (enabled pulse before detect before
// dispatch) is guaranteed. The evaluator package provides a reference
// implementation of that polling for tests and previews.
package activator
