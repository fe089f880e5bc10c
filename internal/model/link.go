// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the clickable link record and its click-count logic.
package model

import (
	"sort"

	"github.com/vk/scenegridgo/internal/errs"
)

// AnyClick is the sentinel click count binding an action list to every click
// that has no exact-count binding.
const AnyClick = -1

// ClickLink makes an object clickable. Clicks are counted from zero; each
// recognized click increments the counter by exactly one, wrapping to zero
// the instant it reaches Reset (when Reset >= 0). OnClick binds counter
// values to the action lists dispatched when the counter lands on them.
//
// EnabledColor and SelectedColor are presentation state for the host's
// highlighting; they never influence the click-count machine.
type ClickLink struct {
	TriggerSpec

	EnabledColor  Color
	SelectedColor Color

	OnClick map[int][]Action

	// Reset is the counter value at which the counter wraps to zero;
	// negative means never.
	Reset int
}

// NewClickLink returns a link with authoring defaults: enabled, remaining
// enabled after activation, never resetting, with the stock highlight colors.
func NewClickLink() *ClickLink {
	return &ClickLink{
		TriggerSpec:   DefaultTriggerSpec(),
		EnabledColor:  Color{0, 128, 255},
		SelectedColor: Color{255, 0, 0},
		OnClick:       make(map[int][]Action),
		Reset:         -1,
	}
}

// Bind appends actions to the list dispatched at the given click count.
// AnyClick binds the fallback list.
func (l *ClickLink) Bind(count int, actions ...Action) error {
	if count < AnyClick {
		return errs.NewValidation("click count", "must be >= 0 or AnyClick, got %d", count)
	}
	if l.OnClick == nil {
		l.OnClick = make(map[int][]Action)
	}
	l.OnClick[count] = append(l.OnClick[count], actions...)
	return nil
}

// Validate checks the presentation colors and click bindings.
func (l *ClickLink) Validate() error {
	if err := l.EnabledColor.Validate("enabled color"); err != nil {
		return err
	}
	if err := l.SelectedColor.Validate("selected color"); err != nil {
		return err
	}
	for count := range l.OnClick {
		if count < AnyClick {
			return errs.NewValidation("click count", "must be >= 0 or AnyClick, got %d", count)
		}
	}
	return nil
}

// NextCount returns the counter value after one recognized click at count.
func (l *ClickLink) NextCount(count int) int {
	next := count + 1
	if l.Reset >= 0 && next == l.Reset {
		return 0
	}
	return next
}

// ActionsForCount returns the action list dispatched when the counter lands
// on count: the exact-count binding if present, else the AnyClick binding,
// else nil.
func (l *ClickLink) ActionsForCount(count int) []Action {
	if actions, ok := l.OnClick[count]; ok {
		return actions
	}
	return l.OnClick[AnyClick]
}

// BoundCounts returns the exact click counts with bindings, sorted ascending,
// excluding the AnyClick sentinel. Deterministic ordering for emission.
func (l *ClickLink) BoundCounts() []int {
	counts := make([]int, 0, len(l.OnClick))
	for count := range l.OnClick {
		if count != AnyClick {
			counts = append(counts, count)
		}
	}
	sort.Ints(counts)
	return counts
}
