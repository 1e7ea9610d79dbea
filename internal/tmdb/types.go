package tmdb

// Media types reported by TMDB in the media_type discriminator.
const (
	MediaMovie  = "movie"
	MediaTV     = "tv"
	MediaPerson = "person"
)

// Item is one entry of a TMDB result list. Which fields are populated depends
// on MediaType; lists that are not multi-typed (trending, popular, top rated)
// leave MediaType empty or fixed.
type Item struct {
	ID                 *int64     `json:"id"`
	MediaType          string     `json:"media_type"`
	Title              *string    `json:"title"`
	Name               *string    `json:"name"`
	ReleaseDate        *string    `json:"release_date"`
	FirstAirDate       *string    `json:"first_air_date"`
	PosterPath         *string    `json:"poster_path"`
	ProfilePath        *string    `json:"profile_path"`
	Overview           *string    `json:"overview"`
	VoteAverage        *float64   `json:"vote_average"`
	KnownForDepartment *string    `json:"known_for_department"`
	KnownFor           []KnownFor `json:"known_for"`
}

// KnownFor is a title a person is credited on, as embedded in person results.
type KnownFor struct {
	ID        *int64  `json:"id"`
	MediaType string  `json:"media_type"`
	Title     *string `json:"title"`
	Name      *string `json:"name"`
}

// Page models the TMDB paginated list response.
type Page struct {
	Page         int    `json:"page"`
	Results      []Item `json:"results"`
	TotalPages   int    `json:"total_pages"`
	TotalResults int    `json:"total_results"`
}

// Named is the {id, name} object TMDB uses for genres and keywords.
type Named struct {
	ID   *int64  `json:"id"`
	Name *string `json:"name"`
}

// Video is one entry of the appended videos resource.
type Video struct {
	Key  string `json:"key"`
	Site string `json:"site"`
	Type string `json:"type"`
	Name string `json:"name"`
}

// VideoList wraps appended videos.
type VideoList struct {
	Results []Video `json:"results"`
}

// KeywordList wraps appended keywords. Movies populate Keywords, TV shows
// populate Results.
type KeywordList struct {
	Keywords []Named `json:"keywords"`
	Results  []Named `json:"results"`
}

// Details is the detail payload for a movie, show or person.
type Details struct {
	ID           *int64       `json:"id"`
	Title        *string      `json:"title"`
	Name         *string      `json:"name"`
	Overview     *string      `json:"overview"`
	Biography    *string      `json:"biography"`
	PosterPath   *string      `json:"poster_path"`
	ProfilePath  *string      `json:"profile_path"`
	BackdropPath *string      `json:"backdrop_path"`
	ReleaseDate  *string      `json:"release_date"`
	FirstAirDate *string      `json:"first_air_date"`
	VoteAverage  *float64     `json:"vote_average"`
	Genres       []Named      `json:"genres"`
	Videos       *VideoList   `json:"videos"`
	Keywords     *KeywordList `json:"keywords"`
}
