// Package script lowers typed predicate descriptions into host-script source.
//
// Variants whose detect condition cannot be expressed as a static node graph
// (spatial containment with multi-object aggregation, click-count
// bookkeeping) carry a descriptor on their ScriptController; this package is
// the single point where those descriptors become text for the host's script
// loader. Nothing else in the repository assembles script strings, which
// keeps the predicates testable independently of text generation.
//
// Emitted source is Tengo. Every emitter parses its own output before
// returning it; a syntax error in generated text is a bug here, surfaced as
// an error rather than shipped to the host.
package script
