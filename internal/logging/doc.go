// Package logging builds the slog loggers used across libris.
//
// It supports a compact console format for interactive use and JSON for
// machine consumption, fans output to stderr plus a log file under the
// configured log directory, and supplies typed attribute helpers plus
// component-scoped loggers so records stay greppable.
package logging
