package configs

import "time"

// Kwai configures access to the Kwai Ads marketing API. The refresh token,
// client id and secret are exchanged at AuthURL for short lived access
// tokens. AccessToken may seed the first token so that startup does not
// require a refresh round-trip.
type Kwai struct {
	BaseURL      string `env:"BASE_URL" envDefault:"https://developers.kwai.com/rest/n/mapi"`
	AuthURL      string `env:"AUTH_URL" envDefault:"https://developers.kwai.com/oauth/token"`
	AccessToken  string `env:"ACCESS_TOKEN"`
	RefreshToken string `env:"REFRESH_TOKEN"`
	ClientID     string `env:"CLIENT_ID"`
	ClientSecret string `env:"SECRET_KEY"`
	CorpID       string `env:"CORP_ID"`

	// RequestTimeout bounds every call to the platform, token refresh included.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"15s"`
	// RateLimit is the sustained number of requests per second, Burst the
	// number allowed at once.
	RateLimit float64 `env:"RATE_LIMIT" envDefault:"10"`
	Burst     int     `env:"BURST" envDefault:"5"`
	PageSize  int     `env:"PAGE_SIZE" envDefault:"100"`
	// TimeZone is sent with report queries as timeZoneIana.
	TimeZone string `env:"TIME_ZONE" envDefault:"UTC-3"`
}
