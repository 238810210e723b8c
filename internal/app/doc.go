// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the primary execution lifecycle
// (load manifests, validate them against the compiled solvers, run, report),
// decoupled from any specific entrypoint like a CLI.
package app
