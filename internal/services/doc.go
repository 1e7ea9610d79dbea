// Package services defines shared utilities consumed by the catalog
// operations, the HTTP router, and the CLI.
//
// Key responsibilities:
//   - Context helpers that stamp request correlation identifiers and the
//     catalog operation name for logging.
//   - Structured error markers plus the Wrap helper that classify failures
//     (configuration, validation, upstream, timeout) so the router can map
//     them onto HTTP status codes in one place.
//
// Use these helpers when adding new operations so error reporting and
// observability stay uniform across handlers.
package services
