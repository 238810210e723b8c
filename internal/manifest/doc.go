// Package manifest loads puzzle manifests written in any supported format.
//
// The format is chosen by file extension:
//
//   - .hcl          `puzzle "<id>" { ... }` blocks, see package hcl
//   - .toml         a `[[puzzle]]` array of tables
//   - .yaml / .yml  a top-level `puzzles:` sequence
//
// All three decode into the same config.Model, so a manifest can be moved
// between formats without changing what runs. Unknown keys are rejected in
// every format.
package manifest
