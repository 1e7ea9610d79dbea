// Package server exposes the catalog over HTTP.
//
// The router is a gorilla/mux tree with five GET routes. Every request
// passes through request-id, access-log and CORS middleware before routing,
// so unknown paths (404), wrong methods (405) and preflight requests also
// carry an X-Request-ID and the CORS headers. Handlers parse query
// parameters, call one catalog operation and write JSON; failures are
// written as {"error": message} with the status derived from the
// internal/services markers.
package server
