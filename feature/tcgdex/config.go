package tcgdex

// Config holds configuration for the TCGdex API client.
type Config struct {
	// BaseURL is the root of the TCGdex REST API (without language segment).
	BaseURL string `mapstructure:"base_url" default:"https://api.tcgdex.net/v2"`
	// Language is the dataset language used for all queries (en, fr, de, es, it, pt).
	Language string `mapstructure:"language" default:"en"`
	// TimeoutSeconds is the per-request timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"20"`
	// UserAgent identifies this application to the API.
	UserAgent string `mapstructure:"user_agent" default:"tcg-catalog/1.0"`
}
