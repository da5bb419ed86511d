package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"4000"`
	// ApiKey is the secret key required to access the API.
	ApiKey string `mapstructure:"api_key" default:""`
	// BodyLimit is the maximum accepted request body size in megabytes.
	// Order exports can be large, so the default is generous.
	BodyLimit int `mapstructure:"body_limit_mb" default:"10"`
}
