// Package config loads, normalizes, and validates movie-search configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// TMDB_API_KEY and MOVIESEARCH_BIND. The Config type centralizes every knob
// the server and CLI need so upstream credentials, listener settings, and
// log routing are discovered in one pass.
//
// A missing TMDB key is deliberately not a load error: the server still
// starts and reports the misconfiguration per request.
package config
