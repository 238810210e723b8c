// Package integration_tests holds end-to-end tests that drive the app through
// manifests written to disk. The tests live in subdirectories grouped by
// concern.
package integration_tests
