// Package app contains the core application logic: it wires the logger,
// loads a project in either authoring format, compiles every timeline,
// trigger and link into its behavior graph, and writes the compiled output.
// It is decoupled from any specific entrypoint like a CLI or server.
package app
