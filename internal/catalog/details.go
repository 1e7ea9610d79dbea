package catalog

import (
	"github.com/wook89/movie-search/internal/tmdb"
)

const youtubeWatchURL = "https://www.youtube.com/watch?v="

// Detail is the single-item shape served by the details endpoint.
type Detail struct {
	ID          *int64    `json:"id"`
	Title       *string   `json:"title"`
	Overview    *string   `json:"overview"`
	PosterURL   *string   `json:"poster_url"`
	BackdropURL *string   `json:"backdrop_url"`
	ReleaseDate *string   `json:"release_date"`
	VoteAverage *float64  `json:"vote_average"`
	Genres      []*string `json:"genres"`
	TrailerURL  *string   `json:"trailer_url"`
	Keywords    []*string `json:"keywords"`
	MediaType   string    `json:"media_type"`
}

func (n Normalizer) detail(kind Kind, d *tmdb.Details) Detail {
	poster := d.PosterPath
	if kind == KindPerson {
		poster = d.ProfilePath
	}
	return Detail{
		ID:          d.ID,
		Title:       orElse(d.Title, d.Name),
		Overview:    orElse(d.Overview, d.Biography),
		PosterURL:   ImageURL(n.ImageBase, SizePoster, poster),
		BackdropURL: ImageURL(n.ImageBase, SizeBackdrop, d.BackdropPath),
		ReleaseDate: orElse(d.ReleaseDate, d.FirstAirDate),
		VoteAverage: d.VoteAverage,
		Genres:      names(d.Genres),
		TrailerURL:  trailerURL(d.Videos),
		Keywords:    keywordNames(d.Keywords),
		MediaType:   string(kind),
	}
}

// trailerURL picks the first YouTube trailer in upstream order.
func trailerURL(videos *tmdb.VideoList) *string {
	if videos == nil {
		return nil
	}
	for _, video := range videos.Results {
		if video.Site == "YouTube" && video.Type == "Trailer" {
			return ptr(youtubeWatchURL + video.Key)
		}
	}
	return nil
}

// keywordNames reads movie keywords, falling back to the tv results list
// when the movie list is empty.
func keywordNames(list *tmdb.KeywordList) []*string {
	if list == nil {
		return []*string{}
	}
	if len(list.Keywords) > 0 {
		return names(list.Keywords)
	}
	return names(list.Results)
}

func names(items []tmdb.Named) []*string {
	out := make([]*string, 0, len(items))
	for _, item := range items {
		out = append(out, item.Name)
	}
	return out
}
