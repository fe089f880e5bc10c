// Package errs defines the error taxonomy shared across scene authoring,
// compilation and persistence.
//
// The split matters because each class surfaces at a different moment:
// validation errors at record construction, precondition errors when the
// compile protocol is driven out of order, document errors when loading a
// persisted project, and reference errors when a trigger names an object the
// scene does not contain. Tick evaluation of a compiled graph has no error
// channel at all; anything that could fail there must be caught by one of
// these classes first.
package errs

import "fmt"

// ValidationError reports a malformed record: a negative timeline time, a
// color component outside 0-255, an action parameter of the wrong kind.
// It is raised at construction or insertion time, never during evaluation.
type ValidationError struct {
	Field  string
	Reason string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("validation: %s", e.Reason)
	}
	return fmt.Sprintf("validation: %s: %s", e.Field, e.Reason)
}

// NewValidation builds a ValidationError for the given field.
func NewValidation(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// PreconditionError reports a violation of the activator compile protocol:
// linking nodes before they were created, or emitting logic before the graph
// was compiled. It always indicates a programmer error and is never retried.
type PreconditionError struct {
	Op      string
	Missing string
}

// Error implements the error interface.
func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s called before %s", e.Op, e.Missing)
}

// NewPrecondition builds a PreconditionError naming the out-of-order
// operation and the step that should have run first.
func NewPrecondition(op, missing string) *PreconditionError {
	return &PreconditionError{Op: op, Missing: missing}
}

// MalformedDocumentError reports a persisted project document missing
// required structure, such as a LinkRoot element without its Link child or a
// Timeline element without a name. It is surfaced to the caller of the
// deserialization layer, never swallowed.
type MalformedDocumentError struct {
	Element string
	Reason  string
}

// Error implements the error interface.
func (e *MalformedDocumentError) Error() string {
	return fmt.Sprintf("malformed document: %s: %s", e.Element, e.Reason)
}

// NewMalformedDocument builds a MalformedDocumentError for the given element.
func NewMalformedDocument(element, format string, args ...any) *MalformedDocumentError {
	return &MalformedDocumentError{Element: element, Reason: fmt.Sprintf(format, args...)}
}

// UnresolvedReferenceError reports an object or group name referenced by a
// trigger that cannot be resolved against the scene at compile time. The
// trigger's compilation fails outright; it must not degrade into an
// always-false detect condition.
type UnresolvedReferenceError struct {
	Name string
}

// Error implements the error interface.
func (e *UnresolvedReferenceError) Error() string {
	return fmt.Sprintf("unresolved reference: %q", e.Name)
}

// NewUnresolvedReference builds an UnresolvedReferenceError for name.
func NewUnresolvedReference(name string) *UnresolvedReferenceError {
	return &UnresolvedReferenceError{Name: name}
}
