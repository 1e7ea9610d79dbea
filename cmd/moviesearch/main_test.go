package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/wook89/movie-search/internal/instance"
)

type cliTestEnv struct {
	configPath string
	stateDir   string
	tmdb       *httptest.Server
}

func setupCLITestEnv(t *testing.T, apiKey string) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	home := filepath.Join(base, "home")
	if err := os.MkdirAll(home, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", home)
	t.Setenv("TMDB_API_KEY", "")
	t.Setenv("MOVIESEARCH_BIND", "")

	tmdb := httptest.NewServer(http.HandlerFunc(fakeTMDBHandler))
	t.Cleanup(tmdb.Close)

	env := &cliTestEnv{
		configPath: filepath.Join(base, "config.toml"),
		stateDir:   filepath.Join(base, "state"),
		tmdb:       tmdb,
	}
	content := fmt.Sprintf(
		"[server]\nstate_dir = %q\n\n[tmdb]\napi_key = %q\nbase_url = %q\n",
		env.stateDir, apiKey, tmdb.URL+"/3",
	)
	if err := os.WriteFile(env.configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return env
}

func fakeTMDBHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	switch {
	case r.URL.Path == "/3/search/multi":
		_, _ = io.WriteString(w, `{"results":[
			{"id":603,"media_type":"movie","title":"Matrix","release_date":"1999-03-31","vote_average":8.2},
			{"id":9,"media_type":"collection","name":"Hidden"},
			{"id":7,"media_type":"person","name":"Keanu","known_for_department":"Acting"}
		]}`)
	case strings.HasSuffix(r.URL.Path, "/movie/popular"), strings.HasSuffix(r.URL.Path, "/movie/top_rated"):
		_, _ = io.WriteString(w, `{"results":[{"id":1,"title":"First"},{"id":2,"title":"Second"},{"id":3,"title":"Third"}]}`)
	case r.URL.Path == "/3/movie/603":
		_, _ = io.WriteString(w, `{"id":603,"title":"Matrix","genres":[{"name":"SF"}],
			"videos":{"results":[{"key":"abc","site":"YouTube","type":"Trailer"}]}}`)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

func TestSearchCommandRendersTable(t *testing.T) {
	env := setupCLITestEnv(t, "key")

	out, _, err := runCLI(t, []string{"search", "matrix"}, env.configPath)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	requireContains(t, out, "Matrix")
	requireContains(t, out, "1999-03-31")
	requireContains(t, out, "Acting")
	if strings.Contains(out, "Hidden") {
		t.Fatalf("unknown kinds should be filtered: %s", out)
	}
}

func TestRankingsCommandJSON(t *testing.T) {
	env := setupCLITestEnv(t, "key")

	out, _, err := runCLI(t, []string{"rankings", "--limit", "2", "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("rankings: %v", err)
	}
	var payload struct {
		Type    string `json:"type"`
		Region  string `json:"region"`
		Results []struct {
			Rank      int    `json:"rank"`
			MediaType string `json:"media_type"`
		} `json:"results"`
	}
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("decode rankings json: %v\n%s", err, out)
	}
	if payload.Type != "popular" || payload.Region != "KR" || len(payload.Results) != 2 {
		t.Fatalf("unexpected payload: %+v", payload)
	}
	for i, result := range payload.Results {
		if result.Rank != i+1 || result.MediaType != "movie" {
			t.Fatalf("unexpected result %d: %+v", i, result)
		}
	}
}

func TestDetailsCommand(t *testing.T) {
	env := setupCLITestEnv(t, "key")

	out, _, err := runCLI(t, []string{"details", "movie", "603"}, env.configPath)
	if err != nil {
		t.Fatalf("details: %v", err)
	}
	requireContains(t, out, "https://www.youtube.com/watch?v=abc")
	requireContains(t, out, "SF")

	if _, _, err := runCLI(t, []string{"details", "movie", "abc"}, env.configPath); err == nil {
		t.Fatal("expected error for non-numeric id")
	}
	_, _, err = runCLI(t, []string{"details", "book", "1"}, env.configPath)
	if err == nil || !strings.Contains(err.Error(), "Invalid media_type") {
		t.Fatalf("expected invalid media type error, got %v", err)
	}
}

func TestQueryWithoutAPIKeyFails(t *testing.T) {
	env := setupCLITestEnv(t, "")

	_, _, err := runCLI(t, []string{"autocomplete", "ma"}, env.configPath)
	if err == nil || !strings.Contains(err.Error(), "TMDB_API_KEY is missing") {
		t.Fatalf("expected missing key error, got %v", err)
	}
}

func TestConfigInitAndValidate(t *testing.T) {
	env := setupCLITestEnv(t, "")

	out, _, err := runCLI(t, []string{"config", "validate"}, env.configPath)
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "Configuration valid")
	requireContains(t, out, "no TMDB API key")

	target := filepath.Join(t.TempDir(), "config.toml")
	out, _, err = runCLI(t, []string{"config", "init", "--path", target}, "")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	if _, _, err := runCLI(t, []string{"config", "init", "--path", target}, ""); err == nil {
		t.Fatal("expected error when config already exists")
	}
	if _, _, err := runCLI(t, []string{"config", "init", "--path", target, "--overwrite"}, ""); err != nil {
		t.Fatalf("config init --overwrite: %v", err)
	}
}

func TestStatusCommand(t *testing.T) {
	env := setupCLITestEnv(t, "key")

	out, _, err := runCLI(t, []string{"status"}, env.configPath)
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	requireContains(t, out, "not running")
	requireContains(t, out, "tmdb api key  configured")

	lock, err := instance.Acquire(env.stateDir)
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}
	t.Cleanup(func() { _ = lock.Release() })

	out, _, err = runCLI(t, []string{"status", "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("status --json: %v", err)
	}
	var report statusReport
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("decode status: %v", err)
	}
	if !report.Running || report.PID != os.Getpid() || !report.TMDBKeyReady {
		t.Fatalf("unexpected report: %+v", report)
	}

	_, _, err = runCLI(t, []string{"serve", "--bind", "127.0.0.1:0"}, env.configPath)
	if err == nil || !strings.Contains(err.Error(), "already running") {
		t.Fatalf("expected serve to refuse while locked, got %v", err)
	}
}

func TestRenderRecordsHandlesNulls(t *testing.T) {
	out := renderRecords(nil, false)
	if out != "No results" {
		t.Fatalf("unexpected empty render %q", out)
	}
	if got := formatRating(nil); got != missingValue {
		t.Fatalf("unexpected rating %q", got)
	}
	value := 7.25
	if got := formatRating(&value); got != strconv.FormatFloat(7.25, 'f', 1, 64) {
		t.Fatalf("unexpected rating %q", got)
	}
}

func TestRenderStatusAlignsAndColors(t *testing.T) {
	lines := statusLines(statusReport{Running: true, PID: 42, Bind: "127.0.0.1:8080"})

	plain := renderStatus(lines, false)
	want := "server        running (pid 42)\n" +
		"bind          127.0.0.1:8080\n" +
		"tmdb api key  missing\n" +
		"lock          -\n" +
		"config        -\n"
	if plain != want {
		t.Fatalf("unexpected status block:\n%s", plain)
	}

	colored := renderStatus(lines, true)
	requireContains(t, colored, colorGreen+"running (pid 42)"+colorReset)
	requireContains(t, colored, colorAmber+"missing"+colorReset)
}

func TestRankingsFlagsOverrideConfiguredDefaults(t *testing.T) {
	env := setupCLITestEnv(t, "key")

	out, _, err := runCLI(t, []string{"rankings", "--region", "", "--list-type", "top_rated", "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("rankings: %v", err)
	}
	var result struct {
		Type   string `json:"type"`
		Region string `json:"region"`
	}
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("decode rankings: %v", err)
	}
	if result.Type != "top_rated" || result.Region != "" {
		t.Fatalf("unexpected rankings header: %+v", result)
	}
}
