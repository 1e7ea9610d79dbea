// Package logging assembles structured slog loggers and formatting helpers used
// across movie-search.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing (including size-based rotation of log files), and exposes
// context-aware helpers so handlers automatically tag log lines with request
// correlation IDs and the catalog operation being served. A no-op logger is
// provided for tests and wiring code that cannot fail.
package logging
