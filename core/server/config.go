package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// BodyLimitMB caps request body size (avatar uploads).
	BodyLimitMB int `mapstructure:"body_limit_mb" default:"8"`
}

// BodyLimitBytes returns the request body cap in bytes, falling back to the
// default when the configured value is unusable.
func (c Config) BodyLimitBytes() int {
	mb := c.BodyLimitMB
	if mb <= 0 {
		mb = 8
	}
	return mb * 1024 * 1024
}
