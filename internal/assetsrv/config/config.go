package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

type ConfigParam struct {
	ServerPort      string  `toml:"server_port"`
	HandleCORS      bool    `toml:"handle_cors"`
	CORSOrigin      string  `toml:"cors_origin"`
	RateLimitRPS    float64 `toml:"rate_limit_rps"`
	RateLimitBurst  int     `toml:"rate_limit_burst"`
	MaxInFlight     int64   `toml:"max_in_flight"`
	QueueWaitMs     int     `toml:"queue_wait_ms"`
	ShutdownGraceS  int     `toml:"shutdown_grace_s"`
	StorageHost     string  `toml:"storage_host"`
	StoragePort     string  `toml:"storage_port"`
	RequestTimeoutS int     `toml:"request_timeout_s"`
}

var cfg *ConfigParam

func Config() *ConfigParam {
	return cfg
}

// StorageURL returns the websocket endpoint of the storage backend.
func (c *ConfigParam) StorageURL() string {
	return fmt.Sprintf("ws://%s:%s/rpc", c.StorageHost, c.StoragePort)
}

func LoadConfig(filename string) error {
	if filename == "" {
		cfg = defaultConfig()
		applyEnvOverrides(cfg)
		return nil
	}
	// Read the config file
	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("error reading config file: %v", err)
	}
	// Parse the config file
	cp := defaultConfig()
	if _, err := toml.Decode(string(content), cp); err != nil {
		return fmt.Errorf("error parsing config file: %v", err)
	}
	applyEnvOverrides(cp)
	cfg = cp
	return nil
}

func defaultConfig() *ConfigParam {
	return &ConfigParam{
		ServerPort:      "8000",
		HandleCORS:      true,
		CORSOrigin:      "*",
		RateLimitRPS:    100,
		RateLimitBurst:  200,
		MaxInFlight:     128,
		QueueWaitMs:     250,
		ShutdownGraceS:  10,
		StorageHost:     "localhost",
		StoragePort:     "50051",
		RequestTimeoutS: 15,
	}
}

// Deployment keeps the env names the service family has always used for the
// storage endpoint.
func applyEnvOverrides(c *ConfigParam) {
	if v := os.Getenv("STORAGE_HOST_RPC"); v != "" {
		c.StorageHost = v
	}
	if v := os.Getenv("STORAGE_PORT_RPC"); v != "" {
		c.StoragePort = v
	}
	if v := os.Getenv("REST_PORT"); v != "" {
		c.ServerPort = v
	}
}

func init() {
	err := LoadConfig("")
	if err != nil {
		panic(err)
	}
}
