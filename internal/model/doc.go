// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package model holds the declarative scene records: objects, actions, timed
// sequences, clickable links and spatial region triggers.
//
// # Core Concepts
//
// The model is built around a few kinds of record:
//
//   - Action: one discrete effect (move, sound, group visibility, timeline
//     control, trigger firing, reset). A closed tagged-variant set.
//
//   - Timeline: a named, time-ordered choreography of actions.
//
//   - RegionTrigger / ClickLink: activation sources. A region trigger fires on
//     spatial containment of tracked objects; a click link fires on click
//     counts.
//
//   - Object / Placement: the static scene content the above reference.
//
// Records here are pure data plus the pure logic that belongs to them: sorted
// timeline insertion, the containment predicate, the click-count transition.
// They carry no host-engine state. Lowering a record into a runnable behavior
// graph is the activator package's job, and (de)serialization lives in w3dxml
// and hclscene. Records are built during authoring and never mutated once
// compilation starts.
package model
