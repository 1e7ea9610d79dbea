package catalog_test

import (
	"encoding/json"
	"testing"

	"github.com/wook89/movie-search/internal/catalog"
	"github.com/wook89/movie-search/internal/tmdb"
)

const imageBase = "https://image.tmdb.org/t/p"

func strPtr(v string) *string { return &v }

func int64Ptr(v int64) *int64 { return &v }

func floatPtr(v float64) *float64 { return &v }

func TestImageURL(t *testing.T) {
	got := catalog.ImageURL(imageBase+"/", catalog.SizeList, strPtr("/p.jpg"))
	if got == nil || *got != "https://image.tmdb.org/t/p/w342/p.jpg" {
		t.Fatalf("unexpected url %v", got)
	}
	if catalog.ImageURL(imageBase, catalog.SizeList, strPtr("")) != nil {
		t.Fatal("expected nil for empty path")
	}
	if catalog.ImageURL(imageBase, catalog.SizeList, nil) != nil {
		t.Fatal("expected nil for absent path")
	}
}

func TestNormalizeMovieAndTV(t *testing.T) {
	n := catalog.Normalizer{ImageBase: imageBase}

	movie := n.Normalize(tmdb.Item{
		ID:           int64Ptr(603),
		MediaType:    "movie",
		Title:        strPtr("Matrix"),
		ReleaseDate:  strPtr("1999-03-31"),
		FirstAirDate: strPtr("ignored"),
		PosterPath:   strPtr("/m.jpg"),
		Overview:     strPtr("Neo"),
		VoteAverage:  floatPtr(8.2),
	}, catalog.SizeList)
	if *movie.Title != "Matrix" || *movie.ReleaseDate != "1999-03-31" || *movie.Overview != "Neo" {
		t.Fatalf("unexpected movie record: %#v", movie)
	}
	if *movie.PosterURL != imageBase+"/w342/m.jpg" {
		t.Fatalf("unexpected poster url %q", *movie.PosterURL)
	}

	show := n.Normalize(tmdb.Item{
		MediaType:    "tv",
		Name:         strPtr("Show"),
		ReleaseDate:  strPtr("ignored"),
		FirstAirDate: strPtr("2020-01-01"),
		PosterPath:   strPtr(""),
	}, catalog.SizeList)
	if *show.Title != "Show" || *show.ReleaseDate != "2020-01-01" {
		t.Fatalf("unexpected tv record: %#v", show)
	}
	if show.PosterURL != nil {
		t.Fatalf("expected nil poster for empty path, got %q", *show.PosterURL)
	}
	if show.ID != nil || show.VoteAverage != nil || show.Overview != nil {
		t.Fatalf("expected absent fields to stay nil: %#v", show)
	}
}

func TestNormalizeTitleFallsBackToName(t *testing.T) {
	n := catalog.Normalizer{ImageBase: imageBase}
	record := n.Normalize(tmdb.Item{MediaType: "movie", Title: strPtr(""), Name: strPtr("Fallback")}, catalog.SizeList)
	if record.Title == nil || *record.Title != "Fallback" {
		t.Fatalf("expected name fallback, got %v", record.Title)
	}
	record = n.Normalize(tmdb.Item{MediaType: "movie"}, catalog.SizeList)
	if record.Title != nil {
		t.Fatalf("expected nil title, got %q", *record.Title)
	}
}

func TestNormalizePerson(t *testing.T) {
	n := catalog.Normalizer{ImageBase: imageBase}
	record := n.Normalize(tmdb.Item{
		MediaType:   "person",
		Name:        strPtr("Keanu"),
		PosterPath:  strPtr("/wrong.jpg"),
		ProfilePath: strPtr("/k.jpg"),
		KnownFor: []tmdb.KnownFor{
			{Name: strPtr("A")},
			{Title: strPtr("B")},
			{},
		},
	}, catalog.SizeList)

	if record.ReleaseDate == nil || *record.ReleaseDate != "" {
		t.Fatalf("expected empty department, got %v", record.ReleaseDate)
	}
	if record.Overview == nil || *record.Overview != "주요 출연작: A, B" {
		t.Fatalf("unexpected overview %v", record.Overview)
	}
	if record.PosterURL == nil || *record.PosterURL != imageBase+"/w342/k.jpg" {
		t.Fatalf("expected profile path poster, got %v", record.PosterURL)
	}

	actor := n.Normalize(tmdb.Item{MediaType: "person", KnownForDepartment: strPtr("Acting")}, catalog.SizeList)
	if *actor.ReleaseDate != "Acting" {
		t.Fatalf("unexpected department %q", *actor.ReleaseDate)
	}
	if actor.Overview == nil || *actor.Overview != "" {
		t.Fatalf("expected empty overview without credits, got %v", actor.Overview)
	}
}

func TestNormalizeUnknownKindPassesThrough(t *testing.T) {
	n := catalog.Normalizer{ImageBase: imageBase}
	record := n.Normalize(tmdb.Item{
		ID:          int64Ptr(9),
		MediaType:   "collection",
		Name:        strPtr("Box set"),
		PosterPath:  strPtr("/c.jpg"),
		Overview:    strPtr("hidden"),
		VoteAverage: floatPtr(5),
	}, catalog.SizeList)
	if record.MediaType != "collection" || *record.Title != "Box set" || *record.ID != 9 {
		t.Fatalf("unexpected passthrough record: %#v", record)
	}
	if record.ReleaseDate != nil || record.Overview != nil || record.PosterURL != nil {
		t.Fatalf("expected kind-derived fields to be nil: %#v", record)
	}
	if record.VoteAverage == nil || *record.VoteAverage != 5 {
		t.Fatalf("expected vote average to pass through, got %v", record.VoteAverage)
	}
}

func TestSuggestionOmitsOverviewAndVotes(t *testing.T) {
	n := catalog.Normalizer{ImageBase: imageBase}
	suggestion := n.Suggest(tmdb.Item{
		MediaType:   "movie",
		Title:       strPtr("Matrix"),
		PosterPath:  strPtr("/m.jpg"),
		Overview:    strPtr("Neo"),
		VoteAverage: floatPtr(8),
	}, catalog.SizeSuggestion)

	raw, err := json.Marshal(suggestion)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"overview", "vote_average", "rank"} {
		if _, ok := fields[key]; ok {
			t.Fatalf("suggestion unexpectedly carries %q: %s", key, raw)
		}
	}
	if fields["poster_url"] != imageBase+"/w154/m.jpg" {
		t.Fatalf("unexpected poster url %v", fields["poster_url"])
	}
}

func TestRecordJSONKeepsNulls(t *testing.T) {
	n := catalog.Normalizer{ImageBase: imageBase}
	raw, err := json.Marshal(n.Normalize(tmdb.Item{MediaType: "movie"}, catalog.SizeList))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"id":null,"title":null,"release_date":null,"overview":null,"vote_average":null,"poster_url":null,"media_type":"movie"}`
	if string(raw) != want {
		t.Fatalf("unexpected json\n got: %s\nwant: %s", raw, want)
	}
}
