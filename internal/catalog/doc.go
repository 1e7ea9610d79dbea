// Package catalog turns TMDB responses into the normalized records served by
// the HTTP API and the CLI.
//
// Each operation validates its inputs, performs exactly one upstream call
// through a tmdb.Upstream under a bounded deadline, maps every item through
// the per-kind field table in kinds.go and assembles the response shape.
// Missing upstream fields never fail a request; they surface as nulls.
// Errors are classified with the internal/services markers so the router can
// map them onto status codes.
package catalog
