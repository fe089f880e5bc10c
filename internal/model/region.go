// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the spatial region trigger and its containment predicate.
package model

import "cogentcore.org/core/math32"

// ContainmentMode selects which side of the region box counts as contained.
type ContainmentMode int

const (
	// ModeInside treats a point within the box bounds as contained.
	ModeInside ContainmentMode = iota
	// ModeOutside treats a point beyond any box bound as contained.
	ModeOutside
)

// String returns the mode's document spelling.
func (m ContainmentMode) String() string {
	if m == ModeOutside {
		return "Outside"
	}
	return "Inside"
}

// ParseContainmentMode maps a document spelling back to a ContainmentMode.
func ParseContainmentMode(s string) (ContainmentMode, bool) {
	switch s {
	case "Inside":
		return ModeInside, true
	case "Outside":
		return ModeOutside, true
	}
	return ModeInside, false
}

// RegionBox is an axis-aligned volume given by two opposite corners, in any
// corner order, plus a containment mode. Per-axis bounds are normalized to
// lo = min(c1, c2), hi = max(c1, c2) before testing.
type RegionBox struct {
	Corner1 math32.Vector3
	Corner2 math32.Vector3
	Mode    ContainmentMode
}

// Bounds returns the normalized axis-aligned bounds of the box.
func (b RegionBox) Bounds() math32.Box3 {
	bounds := math32.B3Empty()
	bounds.ExpandByPoint(b.Corner1)
	bounds.ExpandByPoint(b.Corner2)
	return bounds
}

// Contains reports whether p is contained under the box's mode. Bounds are
// inclusive: a point exactly on a face is inside.
func (b RegionBox) Contains(p math32.Vector3) bool {
	inside := b.Bounds().ContainsPoint(p)
	if b.Mode == ModeOutside {
		return !inside
	}
	return inside
}

// RegionTrigger activates when tracked objects enter or leave an axis-aligned
// box. Tracked holds object names or a single group reference; resolution to
// concrete objects happens at compile time against the scene.
type RegionTrigger struct {
	Name string
	TriggerSpec

	Box RegionBox

	// Tracked names the watched objects, or one group.
	Tracked []string

	// DetectAny selects OR aggregation across tracked objects; false
	// requires every tracked object to satisfy the predicate.
	DetectAny bool
}

// NewRegionTrigger returns a region trigger with authoring defaults.
func NewRegionTrigger(name string) *RegionTrigger {
	return &RegionTrigger{Name: name, TriggerSpec: DefaultTriggerSpec(), DetectAny: true}
}

// Detect evaluates the aggregate containment predicate over live positions.
// It is a total function: it cannot fail, only report false.
//
// An empty position set detects false in both modes. The vacuous-truth
// alternative for the all-objects mode would let a trigger with nothing to
// track fire every tick.
func (t *RegionTrigger) Detect(positions []math32.Vector3) bool {
	return DetectAggregate(t.Box, t.DetectAny, positions)
}

// DetectAggregate is the aggregate containment predicate shared by the model
// and the reference evaluator: OR across positions when detectAny, AND
// otherwise, false for an empty set in both modes.
func DetectAggregate(box RegionBox, detectAny bool, positions []math32.Vector3) bool {
	if len(positions) == 0 {
		return false
	}
	if detectAny {
		for _, p := range positions {
			if box.Contains(p) {
				return true
			}
		}
		return false
	}
	for _, p := range positions {
		if !box.Contains(p) {
			return false
		}
	}
	return true
}
