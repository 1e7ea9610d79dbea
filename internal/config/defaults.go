package config

const (
	defaultBind                       = "127.0.0.1:8000"
	defaultStateDir                   = "~/.local/state/moviesearch"
	defaultTMDBBaseURL                = "https://api.themoviedb.org/3"
	defaultTMDBImageBaseURL           = "https://image.tmdb.org/t/p"
	defaultTMDBLanguage               = "ko-KR"
	defaultTMDBRegion                 = "KR"
	defaultRequestTimeoutSeconds      = 10
	defaultAutocompleteTimeoutSeconds = 8
	defaultLogFormat                  = "console"
	defaultLogLevel                   = "info"
	defaultLogMaxSizeMB               = 50
	defaultLogMaxBackups              = 5
	defaultLogRetentionDays           = 30
)

var defaultCORSOrigins = []string{"http://localhost:5173"}

// Default returns a Config populated with repository defaults.
func Default() Config {
	origins := make([]string, len(defaultCORSOrigins))
	copy(origins, defaultCORSOrigins)
	return Config{
		Server: Server{
			Bind:        defaultBind,
			CORSOrigins: origins,
			StateDir:    defaultStateDir,
		},
		TMDB: TMDB{
			BaseURL:                    defaultTMDBBaseURL,
			ImageBaseURL:               defaultTMDBImageBaseURL,
			Language:                   defaultTMDBLanguage,
			Region:                     defaultTMDBRegion,
			RequestTimeoutSeconds:      defaultRequestTimeoutSeconds,
			AutocompleteTimeoutSeconds: defaultAutocompleteTimeoutSeconds,
		},
		Logging: Logging{
			Format:        defaultLogFormat,
			Level:         defaultLogLevel,
			MaxSizeMB:     defaultLogMaxSizeMB,
			MaxBackups:    defaultLogMaxBackups,
			RetentionDays: defaultLogRetentionDays,
		},
	}
}
