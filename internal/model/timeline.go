// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the Timeline record: a name, a start flag, and a
// time-ordered choreography of actions.
package model

import (
	"sort"

	"github.com/vk/scenegridgo/internal/errs"
)

// TimedAction pairs an action with its start time, in seconds from the
// moment the timeline starts.
type TimedAction struct {
	Time   float64
	Action Action
}

// Timeline is an ordered event list keyed by start time. Iteration order is
// non-decreasing in time; insertion order among equal times is preserved.
// A timeline is built during authoring, compiled once, and never mutated
// after compilation.
type Timeline struct {
	Name             string
	StartImmediately bool

	actions []TimedAction
}

// NewTimeline returns an empty timeline.
func NewTimeline(name string, startImmediately bool) *Timeline {
	return &Timeline{Name: name, StartImmediately: startImmediately}
}

// Insert adds an action at the given start time, keeping the sort invariant.
// A negative time is rejected; it never reaches compilation.
func (t *Timeline) Insert(at float64, action Action) error {
	if at < 0 {
		return errs.NewValidation("start time", "must be >= 0, got %v", at)
	}
	if action == nil {
		return errs.NewValidation("action", "must not be nil")
	}
	// Upper bound keeps equal-time entries in insertion order.
	i := sort.Search(len(t.actions), func(i int) bool {
		return t.actions[i].Time > at
	})
	t.actions = append(t.actions, TimedAction{})
	copy(t.actions[i+1:], t.actions[i:])
	t.actions[i] = TimedAction{Time: at, Action: action}
	return nil
}

// Len reports the number of scheduled actions.
func (t *Timeline) Len() int { return len(t.actions) }

// Actions returns the scheduled actions in non-decreasing time order. The
// returned slice is a copy; callers may range over it repeatedly or mutate it
// without disturbing the timeline.
func (t *Timeline) Actions() []TimedAction {
	out := make([]TimedAction, len(t.actions))
	copy(out, t.actions)
	return out
}
