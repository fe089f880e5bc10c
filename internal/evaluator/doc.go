// Package evaluator is a reference implementation of the host engine's
// cooperative fixed-tick frame loop, used by tests and the CLI preview mode.
//
// The production runtime never runs this code: the compiler emits a
// description (nodes, links, state holders, script text) that the host
// engine schedules itself. This package interprets that same description so
// the compiled semantics — edge-triggered timeline firing, sustained
// detection windows, click-count bookkeeping, disable-on-fire — can be
// exercised without a host engine.
//
// Tick evaluation has no error channel. Every node evaluation is a total
// function over the current world and state-holder values; anything that
// could fail (unknown names, malformed records) was rejected at compile
// time. Ordering is guaranteed only within one graph: enabled pulse before
// detect before dispatch. Effects that cross graphs (a dispatched timeline
// start, a trigger disable) are applied after the tick and observed on the
// next one.
package evaluator
