package script

import "github.com/vk/scenegridgo/internal/model"

// RegionDescriptor is the typed form of a spatial detect condition: an
// axis-aligned box, a containment mode, an aggregation rule and the resolved
// host names of the tracked objects. The emitter lowers it to script; the
// evaluator interprets it directly.
type RegionDescriptor struct {
	// Module is the entry point the host calls each tick,
	// e.g. "trigger_door.detect_event".
	Module string

	Box       model.RegionBox
	DetectAny bool

	// Objects are resolved host object names, in scene order.
	Objects []string

	// Duration, when positive, requires the containment condition to hold
	// continuously for that many seconds before the transition.
	Duration float64
}

// ClickDescriptor is the typed form of a click link's bookkeeping: which
// counts have bound action lists, the any-count fallback, the reset wrap
// value and the disable-after-fire flag.
type ClickDescriptor struct {
	// Module is the entry point the host calls per recognized click,
	// e.g. "object_sign.handle_click".
	Module string

	// Target is the clickable object's host name.
	Target string

	// Counts are the exact click counts with bound action lists, ascending.
	Counts []int

	// HasAny marks an any-count fallback binding.
	HasAny bool

	// Reset is the counter value at which the counter wraps to zero;
	// negative means never.
	Reset int

	// RemainEnabled false disables the link after its first dispatch.
	RemainEnabled bool
}
