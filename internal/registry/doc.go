// Package registry provides the central "glue" for the puzzle modules.
//
// The Registry maps the puzzle identifiers used in manifests (e.g. "2020/07")
// to the compiled Go solvers that answer each part, together with the typed
// parameters those solvers accept.
//
// During application startup, every module registers its puzzle and the
// loaded manifest is validated against the registry, so that unknown puzzle
// ids and ill-typed parameters are reported before any solver runs.
package registry
