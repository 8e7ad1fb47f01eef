// Package errors provides error handling conventions for the banterctl CLI.
//
// This package defines sentinel errors for common failure conditions,
// an ExitError type for CLI exit code handling, and exit code constants
// following standard Unix conventions.
//
// # Sentinel Errors
//
// Sentinel errors allow callers to check for specific error conditions
// using [errors.Is]:
//
//	if errors.Is(err, banterrors.ErrChannelNotFound) {
//	    // handle missing channel
//	}
//
// # Exit Codes
//
//   - ExitSuccess (0): Command completed successfully
//   - ExitUser (1): User-related error (invalid input, validation, etc.)
//   - ExitSystem (2): System-related error (I/O, permissions, etc.)
package errors
