package activator

// Status is the activation phase of a compiled graph's state holder.
type Status int

const (
	// StatusStop means the graph is armed and waiting for its detect
	// condition.
	StatusStop Status = iota
	// StatusStart means the detect condition fired and the graph's actions
	// are dispatching.
	StatusStart
)

// String returns the host property spelling.
func (s Status) String() string {
	if s == StatusStart {
		return "Start"
	}
	return "Stop"
}

// StateHolder is the small per-graph record persisting across ticks in the
// host's object-property system. Exactly two logical fields drive
// activation: Enabled and Status. Clicks exists only for click links.
//
// Status is monotone per activation cycle: it moves Stop to Start only when
// the detect condition holds while Enabled is true, and returns to Stop only
// when the detect condition has gone false again.
type StateHolder struct {
	Enabled bool
	Status  Status
	Clicks  int
}
