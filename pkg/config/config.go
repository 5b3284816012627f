// Package config loads the optional itol configuration file. The file
// carries account defaults and endpoint overrides so they don't have to
// be repeated on every invocation; every value can still be overridden
// by a command-line flag.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/ibiology/itol/pkg/errors"
	"github.com/ibiology/itol/pkg/itol"
	"github.com/ibiology/itol/pkg/logging"
)

// Config is the content of config.toml.
type Config struct {
	// Account defaults applied to uploads.
	UploadID    string `toml:"upload_id"`
	ProjectName string `toml:"project_name"`

	// Download defaults.
	Format string `toml:"format"`

	// Endpoint overrides, mainly for testing against a mirror.
	UploadURL   string `toml:"upload_url"`
	DownloadURL string `toml:"download_url"`

	// TimeoutSeconds bounds every batch call. Zero keeps the client
	// default.
	TimeoutSeconds int `toml:"timeout_seconds"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{Format: "pdf"}
}

// Path returns the configuration file location under the XDG config
// directory.
func Path() string {
	return filepath.Join(xdg.ConfigHome, "itol", "config.toml")
}

// Load reads the configuration file at path, falling back to Path()
// when empty. A missing file yields the defaults; a malformed file is
// an error.
func Load(path string) (*Config, error) {
	logger := logging.GetLogger("config")

	if path == "" {
		path = Path()
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug().Str("path", path).Msg("No config file, using defaults")
			return Default(), nil
		}
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "cannot read config file %s", path)
	}

	cfg := Default()
	if err := toml.Unmarshal(raw, cfg); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "cannot parse config file %s", path)
	}
	logger.Debug().Str("path", path).Msg("Config file loaded")
	return cfg, nil
}

// NewClient builds a transport client honoring the configured endpoint
// and timeout overrides.
func (c *Config) NewClient() *itol.Client {
	client := itol.NewClient()
	if c.UploadURL != "" {
		client.UploadURL = c.UploadURL
	}
	if c.DownloadURL != "" {
		client.DownloadURL = c.DownloadURL
	}
	if c.TimeoutSeconds > 0 {
		client.HTTPClient.Timeout = time.Duration(c.TimeoutSeconds) * time.Second
	}
	return client
}
