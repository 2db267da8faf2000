package config

import "time"

// Config holds runtime settings for the Ancora CLI.
//
// Fields:
//   - ServerEndpointAddr: host:port of the sync gRPC endpoint.
//   - DatabasePath: filesystem path of the local SQLite store.
//   - UserID / AccessToken: identity supplied by the external auth layer;
//     both empty means offline-only operation.
//   - OnlineCheckInterval: how often the client probes server reachability.
type Config struct {
	ServerEndpointAddr  string
	DatabasePath        string
	UserID              string
	AccessToken         string
	OnlineCheckInterval time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.DatabasePath = "ancora.db"
	c.OnlineCheckInterval = 3 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
