package config

import (
	"flag"
	"os"
	"path/filepath"
	"regexp"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	// Server-side settings
	DatabaseDSN    string `env:"DATABASE_URI"`
	AuthSecret     string `env:"AUTH_SECRET"`
	DataDir        string `env:"DATA_DIR"` // directory for record store asset files
	AssetMaxSizeMB int    `env:"ASSET_MAX_SIZE_MB"`

	// Shared settings
	BaseURL     string `env:"BASE_URL"`
	EnableHTTPS bool   `env:"ENABLE_HTTPS"`

	// Client-side settings
	ServerURL     string `env:"-"`
	ClientDataDir string `env:"CLIENT_DATA_DIR"` // staging area and staging index
	CacheDir      string `env:"CACHE_DIR"`       // image cache directory
	TokenFile     string `env:"TOKEN_FILE"`
	Version       bool   `env:"-"` // show client version and exit (flag only)
}

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// Flags only take effect when the env variables above are unset.
	// Server flags
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database connection string")
	flag.StringVar(&cfg.AuthSecret, "auth-secret", cfg.AuthSecret, "secret used to sign auth tokens")
	flag.StringVar(&cfg.DataDir, "data-dir", cfg.DataDir, "directory for stored asset files (server)")
	flag.IntVar(&cfg.AssetMaxSizeMB, "asset-max-mb", cfg.AssetMaxSizeMB, "maximum accepted asset upload size in MB (server)")
	// Shared/client flags
	flag.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "base URL of the record store server (host:port)")
	flag.BoolVar(&cfg.EnableHTTPS, "https", cfg.EnableHTTPS, "enable HTTPS (client: prefer https scheme for BaseURL)")
	// Client flags
	flag.StringVar(&cfg.ClientDataDir, "client-data", cfg.ClientDataDir, "directory for staged documents (client)")
	flag.StringVar(&cfg.CacheDir, "cache-dir", cfg.CacheDir, "directory for the image cache (client)")
	flag.StringVar(&cfg.TokenFile, "token-file", cfg.TokenFile, "path to auth token file (client)")
	flag.BoolVar(&cfg.Version, "version", cfg.Version, "Show client version and exit")

	flag.Parse()

	// Defaults
	if cfg.AuthSecret == "" {
		cfg.AuthSecret = "dev-secret-key"
	}
	if cfg.AssetMaxSizeMB <= 0 {
		cfg.AssetMaxSizeMB = 16
	}
	// validate BaseURL: must be in "address:port" (no scheme, no path). Otherwise use default.
	hostPortRe := regexp.MustCompile(`^[A-Za-z0-9\.\-]+:\d{1,5}$`)
	if !hostPortRe.MatchString(cfg.BaseURL) {
		cfg.BaseURL = "localhost:8081"
	}

	if cfg.EnableHTTPS {
		cfg.ServerURL = "https://" + cfg.BaseURL
	} else {
		cfg.ServerURL = "http://" + cfg.BaseURL
	}

	// Fill directory defaults if empty
	home, _ := os.UserHomeDir()
	if cfg.DataDir == "" {
		cfg.DataDir = filepath.Join(home, "homecrew-data")
	}
	if cfg.ClientDataDir == "" {
		cfg.ClientDataDir = filepath.Join(home, ".homecrew")
	}
	if cfg.CacheDir == "" {
		cfg.CacheDir = filepath.Join(cfg.ClientDataDir, "imagecache")
	}
	if cfg.TokenFile == "" {
		cfg.TokenFile = filepath.Join(home, ".homecrew_token")
	}

	return cfg
}
