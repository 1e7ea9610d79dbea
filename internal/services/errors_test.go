package services_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/wook89/movie-search/internal/services"
)

func TestWrapIncludesContext(t *testing.T) {
	base := errors.New("boom")
	err := services.Wrap(services.ErrUpstream, "catalog", "search", "upstream request failed", base)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, services.ErrUpstream) {
		t.Fatalf("expected marker to be retained, got %v", err)
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected wrapped error to contain base error, got %v", err)
	}
	msg := err.Error()
	for _, fragment := range []string{"catalog", "search", "upstream request failed", "boom"} {
		if !strings.Contains(msg, fragment) {
			t.Fatalf("expected %q in error string %q", fragment, msg)
		}
	}
}

func TestWrapNilMarkerDefaultsToUpstream(t *testing.T) {
	err := services.Wrap(nil, "", "", "", nil)
	if !errors.Is(err, services.ErrUpstream) {
		t.Fatalf("expected upstream marker, got %v", err)
	}
	if !strings.Contains(err.Error(), "service failure") {
		t.Fatalf("expected placeholder detail, got %q", err.Error())
	}
}

func TestHTTPStatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, http.StatusOK},
		{"validation", services.Wrap(services.ErrValidation, "catalog", "rankings", "bad", nil), http.StatusBadRequest},
		{"configuration", services.Wrap(services.ErrConfiguration, "catalog", "search", "missing", nil), http.StatusInternalServerError},
		{"timeout", services.Wrap(services.ErrTimeout, "catalog", "details", "slow", nil), http.StatusGatewayTimeout},
		{"upstream", services.Wrap(services.ErrUpstream, "catalog", "details", "down", nil), http.StatusBadGateway},
		{"canceled", services.Wrap(services.ErrCanceled, "catalog", "search", "gone", context.Canceled), services.StatusClientClosedRequest},
		{"plain", errors.New("other"), http.StatusInternalServerError},
		{"rewrapped", fmt.Errorf("outer: %w", services.Wrap(services.ErrValidation, "", "", "bad", nil)), http.StatusBadRequest},
	}
	for _, tc := range cases {
		if got := services.HTTPStatus(tc.err); got != tc.want {
			t.Fatalf("%s: got %d want %d", tc.name, got, tc.want)
		}
	}
}

func TestPublicMessage(t *testing.T) {
	err := services.Wrap(services.ErrConfiguration, "catalog", "search", "TMDB_API_KEY is missing", nil)
	if got := services.PublicMessage(err); got != "TMDB_API_KEY is missing" {
		t.Fatalf("unexpected public message %q", got)
	}
	if got := services.PublicMessage(errors.New("secret detail")); got != "internal server error" {
		t.Fatalf("expected generic message, got %q", got)
	}
}
