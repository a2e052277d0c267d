package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/gophjournal/internal/flagx"
	"github.com/dmitrijs2005/gophjournal/internal/timex"
)

// JSONConfig is the file form of Config. Durations accept "1h" as well as
// integer nanoseconds. Absent keys keep the current value.
type JSONConfig struct {
	ListenAddr      string          `json:"listen_addr"`
	DatabaseDSN     string          `json:"database_dsn"`
	Storage         string          `json:"storage"`
	SecretKey       string          `json:"secret_key"`
	TokenTTL        *timex.Duration `json:"token_ttl"`
	LogLevel        string          `json:"log_level"`
	AllowedOrigins  []string        `json:"allowed_origins"`
	ShutdownTimeout *timex.Duration `json:"shutdown_timeout"`
}

func parseJSON(config *Config) error {
	path := flagx.ConfigPath(EnvConfigFile)
	if path == "" {
		return nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	c := &JSONConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	setString(&config.ListenAddr, c.ListenAddr)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.Storage, c.Storage)
	setString(&config.SecretKey, c.SecretKey)
	setString(&config.LogLevel, c.LogLevel)
	if c.TokenTTL != nil {
		config.TokenTTL = c.TokenTTL.Duration
	}
	if c.ShutdownTimeout != nil {
		config.ShutdownTimeout = c.ShutdownTimeout.Duration
	}
	if len(c.AllowedOrigins) > 0 {
		config.AllowedOrigins = c.AllowedOrigins
	}
	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
