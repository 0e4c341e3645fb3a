// Package config loads ttaw settings from a TOML file and the environment.
package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/ilyakaznacheev/cleanenv"

	"github.com/verte-zerg/ttaw/internal/cmudict"
	"github.com/verte-zerg/ttaw/internal/model"
)

// Config is the root configuration.
type Config struct {
	Dictionary DictionaryConfig `toml:"dictionary"`
	Log        LogConfig        `toml:"log"`
}

// DictionaryConfig controls where pronunciations come from and where the
// parsed copy is cached. An unset URL means cmudict.DefaultURL.
type DictionaryConfig struct {
	URL     string        `toml:"url"     env:"TTAW_DICT_URL"`
	Cache   string        `toml:"cache"   env:"TTAW_DICT_CACHE"`
	Format  string        `toml:"format"  env:"TTAW_DICT_FORMAT"  env-default:"json"`
	Timeout time.Duration `toml:"timeout" env:"TTAW_DICT_TIMEOUT" env-default:"60s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `toml:"level"  env:"TTAW_LOG_LEVEL"  env-default:"warn"`
	Format string `toml:"format" env:"TTAW_LOG_FORMAT" env-default:"text"`
}

// Load reads configuration from path and the environment.
// Priority: ENV > TOML > defaults (via env-default tags). A missing file is
// not an error; configuration then comes from ENV + defaults only.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := cleanenv.ReadConfig(path, &cfg); err != nil {
				return nil, fmt.Errorf("config: read %s: %w", path, err)
			}
			cfg.fillDefaults()
			return &cfg, nil
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("config: stat %s: %w", path, err)
		}
	}
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}
	cfg.fillDefaults()
	return &cfg, nil
}

// fillDefaults covers values that cannot live in an env-default tag.
func (c *Config) fillDefaults() {
	if c.Dictionary.URL == "" {
		c.Dictionary.URL = cmudict.DefaultURL
	}
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Dictionary: DictionaryConfig{
			URL:     cmudict.DefaultURL,
			Format:  model.FormatJSON,
			Timeout: 60 * time.Second,
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// Validate checks values that cleanenv cannot.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Dictionary.URL) == "" {
		return fmt.Errorf("dictionary.url must not be empty")
	}
	switch c.Dictionary.Format {
	case model.FormatJSON, model.FormatSQLite:
	default:
		return fmt.Errorf("dictionary.format must be %q or %q (got %q)", model.FormatJSON, model.FormatSQLite, c.Dictionary.Format)
	}
	if c.Dictionary.Timeout <= 0 {
		return fmt.Errorf("dictionary.timeout must be > 0 (got %s)", c.Dictionary.Timeout)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error (got %q)", c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json (got %q)", c.Log.Format)
	}
	return nil
}

// Source resolves the dictionary settings, filling in the default cache path
// for the configured format.
func (c *Config) Source() model.Source {
	path := c.Dictionary.Cache
	if path == "" {
		path = DefaultCachePath(c.Dictionary.Format)
	}
	return model.Source{
		URL:       c.Dictionary.URL,
		CachePath: path,
		Format:    c.Dictionary.Format,
		Timeout:   c.Dictionary.Timeout,
	}
}

// Template renders a commented config file holding the default values.
func Template() (string, error) {
	var buf bytes.Buffer
	buf.WriteString("# ttaw configuration\n")
	buf.WriteString("# Environment variables (TTAW_*) override these values; CLI flags override both.\n")
	buf.WriteString("# dictionary.format is \"json\" or \"sqlite\". An empty dictionary.cache uses the XDG cache dir.\n\n")
	if err := toml.NewEncoder(&buf).Encode(Default()); err != nil {
		return "", fmt.Errorf("failed to encode config template: %w", err)
	}
	return buf.String(), nil
}
