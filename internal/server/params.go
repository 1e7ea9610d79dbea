package server

import (
	"net/http"
	"strconv"

	"github.com/wook89/movie-search/internal/services"
)

const defaultLimit = 10

func requiredParam(r *http.Request, name string) (string, error) {
	values := r.URL.Query()
	if !values.Has(name) {
		return "", services.Wrap(services.ErrValidation, "server", "params", name+" is required", nil)
	}
	return values.Get(name), nil
}

// stringParam returns the query value as sent, or fallback only when the
// parameter is absent. An empty value is still a value.
func stringParam(r *http.Request, name, fallback string) string {
	values := r.URL.Query()
	if !values.Has(name) {
		return fallback
	}
	return values.Get(name)
}

func intParam(r *http.Request, name string, fallback int) (int, error) {
	values := r.URL.Query()
	if !values.Has(name) {
		return fallback, nil
	}
	value, err := strconv.Atoi(values.Get(name))
	if err != nil {
		return 0, services.Wrap(services.ErrValidation, "server", "params", name+" must be an integer", err)
	}
	return value, nil
}

func int64Value(name, raw string) (int64, error) {
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, services.Wrap(services.ErrValidation, "server", "params", name+" must be an integer", err)
	}
	return value, nil
}
