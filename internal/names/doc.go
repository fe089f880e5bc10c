/*
Package names provides the host-namespace naming scheme for generated scene
entities, based on the canonical format `kind_authoredname`.

Every object, trigger, timeline, material or sound the compiler creates in
the host engine lives in one flat, process-wide namespace. This package
enforces the name schema and centralizes all formatting and parsing logic so
collisions can be detected at allocation time rather than surfacing as host
load failures.
*/
package names
