// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the closed set of discrete actions a scene can dispatch.
package model

// ActionKind identifies one of the closed set of action variants. New kinds
// are added by extending this set, not by open subclassing.
type ActionKind int

const (
	// KindMove relocates an object to a new placement over a duration.
	KindMove ActionKind = iota
	// KindSound starts or stops a named sound.
	KindSound
	// KindGroupVisibility shows or hides every member of a named group.
	KindGroupVisibility
	// KindTimeline starts or stops a named timeline.
	KindTimeline
	// KindEventTrigger enables or disables another trigger.
	KindEventTrigger
	// KindReset restores an object to its authored placement and visibility.
	KindReset
)

// String returns the kind's document element name.
func (k ActionKind) String() string {
	switch k {
	case KindMove:
		return "ObjectChange"
	case KindSound:
		return "SoundRef"
	case KindGroupVisibility:
		return "GroupRef"
	case KindTimeline:
		return "TimerChange"
	case KindEventTrigger:
		return "Event"
	case KindReset:
		return "Restart"
	}
	return "Unknown"
}

// Action is one discrete effect. Actions are value-like and immutable once
// constructed; the timeline, link or trigger referencing an action owns the
// reference, and sharing one action value between several owners is fine.
type Action interface {
	// Kind reports which variant this action is.
	Kind() ActionKind
	// Target returns the name of the scene entity the action affects.
	Target() string

	isAction()
}

// SoundOperation selects what a SoundAction does to its sound.
type SoundOperation int

// Sound operations.
const (
	SoundStart SoundOperation = iota
	SoundStop
)

// String returns the operation's document spelling.
func (op SoundOperation) String() string {
	if op == SoundStop {
		return "Stop"
	}
	return "Start"
}

// TimelineOperation selects what a TimelineAction does to its timeline.
type TimelineOperation int

// Timeline operations.
const (
	TimelineStart TimelineOperation = iota
	TimelineStop
)

// String returns the operation's document spelling.
func (op TimelineOperation) String() string {
	if op == TimelineStop {
		return "stop"
	}
	return "start"
}

// MoveAction relocates an object to Destination, interpolated by the host
// over Duration seconds (0 = snap).
type MoveAction struct {
	Object      string
	Destination Placement
	Duration    float64
}

// Kind implements Action.
func (MoveAction) Kind() ActionKind { return KindMove }

// Target implements Action.
func (a MoveAction) Target() string { return a.Object }

func (MoveAction) isAction() {}

// SoundAction starts or stops the named sound.
type SoundAction struct {
	Sound     string
	Operation SoundOperation
}

// Kind implements Action.
func (SoundAction) Kind() ActionKind { return KindSound }

// Target implements Action.
func (a SoundAction) Target() string { return a.Sound }

func (SoundAction) isAction() {}

// GroupVisibilityAction shows or hides every object in the named group,
// fading over Duration seconds.
type GroupVisibilityAction struct {
	Group    string
	Visible  bool
	Duration float64
}

// Kind implements Action.
func (GroupVisibilityAction) Kind() ActionKind { return KindGroupVisibility }

// Target implements Action.
func (a GroupVisibilityAction) Target() string { return a.Group }

func (GroupVisibilityAction) isAction() {}

// TimelineAction starts or stops the named timeline.
type TimelineAction struct {
	Timeline  string
	Operation TimelineOperation
}

// Kind implements Action.
func (TimelineAction) Kind() ActionKind { return KindTimeline }

// Target implements Action.
func (a TimelineAction) Target() string { return a.Timeline }

func (TimelineAction) isAction() {}

// EventTriggerAction enables or disables another trigger by name.
type EventTriggerAction struct {
	Trigger string
	Enable  bool
}

// Kind implements Action.
func (EventTriggerAction) Kind() ActionKind { return KindEventTrigger }

// Target implements Action.
func (a EventTriggerAction) Target() string { return a.Trigger }

func (EventTriggerAction) isAction() {}

// ResetAction restores the named object to its authored placement and
// visibility.
type ResetAction struct {
	Object string
}

// Kind implements Action.
func (ResetAction) Kind() ActionKind { return KindReset }

// Target implements Action.
func (a ResetAction) Target() string { return a.Object }

func (ResetAction) isAction() {}
