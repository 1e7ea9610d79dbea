package catalog

import (
	"strings"

	"github.com/wook89/movie-search/internal/tmdb"
)

// Kind is the media_type discriminator of an upstream item.
type Kind string

const (
	KindMovie  Kind = tmdb.MediaMovie
	KindTV     Kind = tmdb.MediaTV
	KindPerson Kind = tmdb.MediaPerson
)

const knownForPrefix = "주요 출연작: "

// fieldSet selects the kind-specific source of each derived field.
type fieldSet struct {
	releaseDate func(tmdb.Item) *string
	posterPath  func(tmdb.Item) *string
	overview    func(tmdb.Item) *string
}

var kinds = map[Kind]fieldSet{
	KindMovie: {
		releaseDate: func(it tmdb.Item) *string { return it.ReleaseDate },
		posterPath:  func(it tmdb.Item) *string { return it.PosterPath },
		overview:    func(it tmdb.Item) *string { return it.Overview },
	},
	KindTV: {
		releaseDate: func(it tmdb.Item) *string { return it.FirstAirDate },
		posterPath:  func(it tmdb.Item) *string { return it.PosterPath },
		overview:    func(it tmdb.Item) *string { return it.Overview },
	},
	KindPerson: {
		releaseDate: personDepartment,
		posterPath:  func(it tmdb.Item) *string { return it.ProfilePath },
		overview:    personOverview,
	},
}

// Known reports whether k is one of movie, tv or person.
func (k Kind) Known() bool {
	_, ok := kinds[k]
	return ok
}

// IsRankable reports whether curated lists exist for k.
func (k Kind) IsRankable() bool {
	return k == KindMovie || k == KindTV
}

func personDepartment(it tmdb.Item) *string {
	if it.KnownForDepartment == nil {
		return ptr("")
	}
	return it.KnownForDepartment
}

func personOverview(it tmdb.Item) *string {
	titles := make([]string, 0, len(it.KnownFor))
	for _, credit := range it.KnownFor {
		if title := orElse(credit.Title, credit.Name); title != nil && *title != "" {
			titles = append(titles, *title)
		}
	}
	if len(titles) == 0 {
		return ptr("")
	}
	return ptr(knownForPrefix + strings.Join(titles, ", "))
}

// orElse returns a when it holds a non-empty string, otherwise b as given.
func orElse(a, b *string) *string {
	if a != nil && *a != "" {
		return a
	}
	return b
}

func ptr[T any](v T) *T { return &v }
