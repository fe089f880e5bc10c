// Package config defines the application configuration: which project to
// load, where compiled output goes, and how the process logs. Values merge in
// a fixed precedence — built-in defaults, then an optional scenegridgo.yaml
// file, then command-line flags.
package config
