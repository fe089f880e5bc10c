// Package hclscene is the HCL authoring front-end: it parses scene files
// (object, group, timeline and region_trigger blocks) and translates them
// into scene records.
//
// The split mirrors the persistence layer: schema structs decode the raw
// blocks, translation builds validated model records, and all scene-level
// checks (name rules, duplicates, group membership) stay in the scene
// package.
package hclscene
