package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/dmitrijs2005/gophjournal/internal/client/api"
)

// EnvConfigFile names the JSON config file when no flag does.
const EnvConfigFile = "GOPHJOURNAL_CONFIG"

// S3Config is used by "export s3://bucket/key". An empty Endpoint means
// AWS itself; set it for MinIO and friends.
type S3Config struct {
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
}

type Config struct {
	ServerURL      string
	RequestTimeout time.Duration
	DBPath         string
	QuotesFile     string
	LogLevel       string
	S3             S3Config
}

// LoadDefaults populates c with defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = api.DefaultBaseURL
	c.RequestTimeout = 10 * time.Second
	c.DBPath = defaultDBPath()
	c.QuotesFile = ""
	c.LogLevel = "warn"
	c.S3 = S3Config{Region: "us-east-1"}
}

func defaultDBPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "gophjournal.db"
	}
	return filepath.Join(dir, "gophjournal", "journal.db")
}

// LoadConfig builds a Config from defaults, the JSON file and os.Args.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJSON(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
