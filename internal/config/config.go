// Package config loads fnpack settings from fnpack.yaml and FNPACK_
// environment variables.
package config

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/mouse-blink/fnpack/internal/adapter"
	"github.com/mouse-blink/fnpack/internal/domain"
)

// EnvPrefix prefixes every environment variable override.
const EnvPrefix = "FNPACK"

// Config represents the fnpack configuration.
type Config struct {
	FunctionsDir string              `mapstructure:"functions_dir"`
	ServerModule string              `mapstructure:"server_module"`
	SourceMaps   bool                `mapstructure:"sourcemaps"`
	Parallel     int                 `mapstructure:"parallel"`
	Output       string              `mapstructure:"output"`
	Ignore       domain.IgnorePolicy `mapstructure:"ignore"`
	Watch        WatchConfig         `mapstructure:"watch"`
}

// WatchConfig represents watch mode configuration.
type WatchConfig struct {
	Debounce time.Duration `mapstructure:"debounce"`
}

// IgnorePolicy returns the default ignore policy extended with the
// configured entries.
func (c *Config) IgnorePolicy() domain.IgnorePolicy {
	return domain.DefaultIgnorePolicy().Merge(c.Ignore)
}

// Load reads configFile, or fnpack.yaml/fnpack.yml from searchDirs (the
// working directory when none are given). A missing default file is not
// an error.
func Load(configFile string, searchDirs ...string) (*Config, error) {
	v := viper.New()

	v.SetDefault("functions_dir", "convex")
	v.SetDefault("server_module", domain.DefaultServerModule)
	v.SetDefault("sourcemaps", false)
	v.SetDefault("parallel", 0)
	v.SetDefault("output", "")
	v.SetDefault("ignore.dirs", []string{})
	v.SetDefault("ignore.files", []string{})
	v.SetDefault("watch.debounce", adapter.DefaultDebounce)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("fnpack")
		v.SetConfigType("yaml")

		if len(searchDirs) == 0 {
			searchDirs = []string{"."}
		}

		for _, dir := range searchDirs {
			v.AddConfigPath(dir)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func validateConfig(cfg *Config) error {
	if strings.TrimSpace(cfg.FunctionsDir) == "" {
		return fmt.Errorf("functions_dir must not be empty")
	}

	if strings.TrimSpace(cfg.ServerModule) == "" {
		return fmt.Errorf("server_module must not be empty")
	}

	if cfg.Parallel < 0 {
		return fmt.Errorf("parallel must be >= 0, got: %d", cfg.Parallel)
	}

	if cfg.Output != "" && filepath.Ext(cfg.Output) != ".zip" {
		return fmt.Errorf("output must be a .zip file, got: %s", cfg.Output)
	}

	if cfg.Watch.Debounce < 0 {
		return fmt.Errorf("watch.debounce must not be negative, got: %s", cfg.Watch.Debounce)
	}

	for _, pattern := range cfg.Ignore.Files {
		if _, err := path.Match(pattern, ""); err != nil {
			return fmt.Errorf("ignore.files pattern %q is invalid: %w", pattern, err)
		}
	}

	return nil
}
