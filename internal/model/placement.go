// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines static object placement: position plus rotation intent.
package model

import (
	"cogentcore.org/core/math32"

	"github.com/vk/scenegridgo/internal/errs"
)

// RotationMode selects how a placement's rotation is interpreted by the host.
type RotationMode int

const (
	// RotateNone applies no rotation.
	RotateNone RotationMode = iota
	// RotateLookAt orients the object to face the rotation vector.
	RotateLookAt
	// RotateAxis rotates by Angle degrees around the rotation vector.
	RotateAxis
)

// String returns the mode's document spelling.
func (m RotationMode) String() string {
	switch m {
	case RotateLookAt:
		return "LookAt"
	case RotateAxis:
		return "Axis"
	}
	return "None"
}

// ParseRotationMode maps a document spelling back to a RotationMode.
func ParseRotationMode(s string) (RotationMode, bool) {
	switch s {
	case "None", "":
		return RotateNone, true
	case "LookAt":
		return RotateLookAt, true
	case "Axis":
		return RotateAxis, true
	}
	return RotateNone, false
}

// Placement is a static transform for an object: a position and a rotation
// intent. Interpolation between placements is the host engine's job; the
// model only records endpoints.
type Placement struct {
	Position       math32.Vector3
	RotationMode   RotationMode
	RotationVector math32.Vector3
	Angle          float64

	// Relative marks the position as an offset from the object's current
	// placement rather than an absolute coordinate.
	Relative bool
}

// Color is an RGB triple with 0-255 components, as authored in documents.
type Color [3]int

// Validate checks each component's range.
func (c Color) Validate(field string) error {
	for i, comp := range c {
		if comp < 0 || comp > 255 {
			return errs.NewValidation(field, "component %d out of range 0-255: %d", i, comp)
		}
	}
	return nil
}
