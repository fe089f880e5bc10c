package names

import (
	"fmt"
	"regexp"
	"strings"
)

// Kind classifies the host entity a generated name belongs to.
type Kind string

// Name kinds, doubling as the generated prefix.
const (
	KindObject   Kind = "object"
	KindGroup    Kind = "group"
	KindTrigger  Kind = "trigger"
	KindTimeline Kind = "timeline"
	KindMaterial Kind = "material"
	KindSound    Kind = "sound"
	KindLight    Kind = "light"
)

// identRegex matches authored names safe to embed in host identifiers and
// generated script source.
var identRegex = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// Check reports whether an authored name is usable in the host namespace.
func Check(name string) error {
	if name == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if !identRegex.MatchString(name) {
		return fmt.Errorf("invalid name %q: must match %s", name, identRegex.String())
	}
	return nil
}

// For generates the host-namespace name for an authored name of the given kind.
func For(kind Kind, name string) string {
	return fmt.Sprintf("%s_%s", kind, name)
}

// ForObject generates the host name of a scene object.
func ForObject(name string) string { return For(KindObject, name) }

// ForGroup generates the host name of an object group.
func ForGroup(name string) string { return For(KindGroup, name) }

// ForTrigger generates the host name of a trigger's logic carrier.
func ForTrigger(name string) string { return For(KindTrigger, name) }

// ForTimeline generates the host name of a timeline's logic carrier.
func ForTimeline(name string) string { return For(KindTimeline, name) }

// ForMaterial generates the host name of an imported material.
func ForMaterial(name string) string { return For(KindMaterial, name) }

// ForSound generates the host name of a loaded sound.
func ForSound(name string) string { return For(KindSound, name) }

// Parse splits a generated host name back into its kind and authored name.
func Parse(hostName string) (Kind, string, error) {
	prefix, rest, found := strings.Cut(hostName, "_")
	if !found || rest == "" {
		return "", "", fmt.Errorf("invalid host name format: %q", hostName)
	}
	switch kind := Kind(prefix); kind {
	case KindObject, KindGroup, KindTrigger, KindTimeline, KindMaterial, KindSound, KindLight:
		return kind, rest, nil
	default:
		return "", "", fmt.Errorf("unknown host name kind in %q", hostName)
	}
}
