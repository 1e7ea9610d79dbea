// Package tmdb provides the minimal TMDB API client behind the catalog
// endpoints.
//
// It authenticates requests with an api_key query parameter and exposes multi
// search, trending and curated (popular / top rated) lists, and per-item detail
// lookups with appended sub-resources. Payloads decode into pointer-heavy
// types so callers can tell an absent field from an empty one. Any non-2xx
// response is returned as a *StatusError; nothing is retried.
package tmdb
