// Package config defines the format-agnostic manifest model for the
// application, along with the Loader interface for reading manifests from
// various sources.
//
// A manifest lists the puzzles to run, where each puzzle's input comes from,
// the parameters its solvers take, and the answers they are expected to
// produce. `config.Model` is the single source of truth for the `registry`
// and `runner` packages. Concrete loaders for HCL, TOML and YAML live in
// separate packages.
package config
