package catalog

import (
	"strings"

	"github.com/wook89/movie-search/internal/tmdb"
)

// Image size tokens understood by the TMDB image CDN.
const (
	SizeList       = "w342"
	SizeSuggestion = "w154"
	SizePoster     = "w780"
	SizeBackdrop   = "w1280"
)

// Record is the unified shape for search and ranking results.
type Record struct {
	ID          *int64   `json:"id"`
	Title       *string  `json:"title"`
	ReleaseDate *string  `json:"release_date"`
	Overview    *string  `json:"overview"`
	VoteAverage *float64 `json:"vote_average"`
	PosterURL   *string  `json:"poster_url"`
	MediaType   string   `json:"media_type"`
	Rank        int      `json:"rank,omitempty"`
}

// Suggestion is the reduced shape returned by autocomplete.
type Suggestion struct {
	ID          *int64  `json:"id"`
	Title       *string `json:"title"`
	ReleaseDate *string `json:"release_date"`
	PosterURL   *string `json:"poster_url"`
	MediaType   string  `json:"media_type"`
}

// Normalizer maps upstream items onto Record and Suggestion.
type Normalizer struct {
	ImageBase string
}

type extracted struct {
	title       *string
	releaseDate *string
	posterPath  *string
	overview    *string
}

func extract(item tmdb.Item) extracted {
	out := extracted{title: orElse(item.Title, item.Name)}
	fields, ok := kinds[Kind(item.MediaType)]
	if !ok {
		return out
	}
	out.releaseDate = fields.releaseDate(item)
	out.posterPath = fields.posterPath(item)
	out.overview = fields.overview(item)
	return out
}

// Normalize builds a full record. Unknown kinds keep their id, title,
// vote_average and media_type; every kind-derived field is null.
func (n Normalizer) Normalize(item tmdb.Item, size string) Record {
	fields := extract(item)
	return Record{
		ID:          item.ID,
		Title:       fields.title,
		ReleaseDate: fields.releaseDate,
		Overview:    fields.overview,
		VoteAverage: item.VoteAverage,
		PosterURL:   ImageURL(n.ImageBase, size, fields.posterPath),
		MediaType:   item.MediaType,
	}
}

// Suggest builds the autocomplete shape from the same extraction as Normalize.
func (n Normalizer) Suggest(item tmdb.Item, size string) Suggestion {
	fields := extract(item)
	return Suggestion{
		ID:          item.ID,
		Title:       fields.title,
		ReleaseDate: fields.releaseDate,
		PosterURL:   ImageURL(n.ImageBase, size, fields.posterPath),
		MediaType:   item.MediaType,
	}
}

// ImageURL joins an image path onto the CDN base at the given size. It
// returns nil when path is absent or empty.
func ImageURL(base, size string, path *string) *string {
	if path == nil || *path == "" {
		return nil
	}
	return ptr(strings.TrimRight(base, "/") + "/" + size + *path)
}
