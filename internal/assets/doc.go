// Package assets provides a process-lifetime cache of imported asset files.
//
// Hosts import model and material files once and share the handle between
// every object referencing the same filename. The cache makes that
// memoization explicit: GetOrImport runs the importer on first sight of a
// filename and returns the cached handle on every later request, counting
// references. There is no eviction; imported assets live as long as the
// process.
package assets
