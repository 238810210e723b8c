// Package cli is responsible for parsing command-line arguments, validating
// user input, and handling process-level concerns like exit codes. It
// translates the cobra command tree into the application's internal
// configuration and maps failures to ExitError codes: 1 when a run fails,
// 2 for usage errors.
package cli
