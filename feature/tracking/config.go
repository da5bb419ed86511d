package tracking

// Config holds configuration for the shipment tracking client.
type Config struct {
	// BaseURL is the courier tracking API base URL.
	BaseURL string `mapstructure:"base_url" default:"https://www.xpressbees.com"`
	// TimeoutSeconds is the upstream request timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"10"`
	// Enabled toggles the tracking proxy feature.
	Enabled bool `mapstructure:"enabled" default:"true"`
}
