package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds everything read from the process environment at startup.
type Config struct {
	StorageEndpoint  string // host:port of the object storage service
	StorageAccessKey string
	StorageSecretKey string
	StorageUseSSL    bool
	StoragePublicURL string // base for public object URLs; derived from endpoint if empty

	DBPath string
	Port   string
}

// Load reads configuration from the environment, with an optional .env file.
// The storage endpoint and keys are required; the process must not serve
// requests without them.
func Load() (*Config, error) {
	// .env is a local convenience, absence is fine
	_ = godotenv.Load()

	cfg := &Config{
		StorageEndpoint:  os.Getenv("STORAGE_ENDPOINT"),
		StorageAccessKey: os.Getenv("STORAGE_ACCESS_KEY"),
		StorageSecretKey: os.Getenv("STORAGE_SECRET_KEY"),
		StorageUseSSL:    os.Getenv("STORAGE_USE_SSL") == "true",
		StoragePublicURL: os.Getenv("STORAGE_PUBLIC_URL"),
		DBPath:           os.Getenv("DB_PATH"),
		Port:             os.Getenv("PORT"),
	}

	var missing []string
	if cfg.StorageEndpoint == "" {
		missing = append(missing, "STORAGE_ENDPOINT")
	}
	if cfg.StorageAccessKey == "" {
		missing = append(missing, "STORAGE_ACCESS_KEY")
	}
	if cfg.StorageSecretKey == "" {
		missing = append(missing, "STORAGE_SECRET_KEY")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	if cfg.StoragePublicURL == "" {
		scheme := "http"
		if cfg.StorageUseSSL {
			scheme = "https"
		}
		cfg.StoragePublicURL = fmt.Sprintf("%s://%s", scheme, cfg.StorageEndpoint)
	}
	cfg.StoragePublicURL = strings.TrimRight(cfg.StoragePublicURL, "/")

	if cfg.DBPath == "" {
		cfg.DBPath = "journal.db"
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	return cfg, nil
}
