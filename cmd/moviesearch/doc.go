// Command moviesearch runs the movie-search HTTP API and offers CLI access to
// the same catalog operations.
package main
