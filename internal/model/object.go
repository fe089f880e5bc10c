// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the static scene object record.
package model

// Object is one piece of static scene content: a named thing with a
// placement, an optional clickable link, and presentation attributes the
// host applies at load.
type Object struct {
	Name      string
	Placement Placement
	Visible   bool
	Scale     float64
	Color     Color

	// Link, when set, makes the object clickable.
	Link *ClickLink
}

// NewObject returns an object with authoring defaults: visible, unit scale,
// white.
func NewObject(name string) *Object {
	return &Object{Name: name, Visible: true, Scale: 1, Color: Color{255, 255, 255}}
}

// Validate checks the object's presentation attributes and link, if any.
func (o *Object) Validate() error {
	if err := o.Color.Validate("color"); err != nil {
		return err
	}
	if o.Link != nil {
		return o.Link.Validate()
	}
	return nil
}
