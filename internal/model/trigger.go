// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the attributes shared by every trigger variant.
package model

// TriggerSpec carries the attributes common to all activation sources.
//
// Duration distinguishes instantaneous from sustained triggers: 0 fires the
// moment the detect condition first holds, >0 requires the condition to hold
// continuously for that many seconds before firing. RemainEnabled false
// forces enabled to false exactly once, immediately after the first
// successful activation.
type TriggerSpec struct {
	Enabled       bool
	RemainEnabled bool
	Duration      float64
	Actions       []Action
}

// DefaultTriggerSpec returns the authoring defaults: enabled, remaining
// enabled, instantaneous, no actions.
func DefaultTriggerSpec() TriggerSpec {
	return TriggerSpec{Enabled: true, RemainEnabled: true}
}
