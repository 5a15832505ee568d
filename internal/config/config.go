// Package config loads the cookietrack.toml configuration file with
// environment-variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Config is the full application configuration.
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Storage StorageConfig `toml:"storage"`
	Season  SeasonConfig  `toml:"season"`
}

type ServerConfig struct {
	Port int `toml:"port"`
}

type StorageConfig struct {
	DBPath string `toml:"db_path"`
}

type SeasonConfig struct {
	DataDir            string `toml:"data_dir"`
	TroopID            string `toml:"troop_id"`
	ScoutCountOverride int    `toml:"scout_count_override"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server:  ServerConfig{Port: 8080},
		Storage: StorageConfig{DBPath: "cookietrack.db"},
		Season:  SeasonConfig{DataDir: "season"},
	}
}

// Load reads path (when it exists) over the defaults, then applies
// environment overrides. A missing config file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, &cfg); err != nil {
				return cfg, fmt.Errorf("decode %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return cfg, fmt.Errorf("stat %s: %w", path, err)
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("COOKIETRACK_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil && p > 0 {
			cfg.Server.Port = p
		}
	}
	if v := os.Getenv("COOKIETRACK_DB"); v != "" {
		cfg.Storage.DBPath = v
	}
	if v := os.Getenv("COOKIETRACK_DATA_DIR"); v != "" {
		cfg.Season.DataDir = v
	}
	if v := os.Getenv("COOKIETRACK_TROOP_ID"); v != "" {
		cfg.Season.TroopID = v
	}
}
