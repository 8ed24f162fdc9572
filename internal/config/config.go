package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Data     DataConfig     `toml:"data"`
	Cache    CacheConfig    `toml:"cache"`
	Logging  LoggingConfig  `toml:"logging"`
}

type ServerConfig struct {
	Name      string `toml:"name"`
	StartTime int64  // set at boot, not from config
}

type DatabaseConfig struct {
	WorldDSN        string        `toml:"world_dsn"`
	CharactersDSN   string        `toml:"characters_dsn"`
	AuthDSN         string        `toml:"auth_dsn"`
	MaxOpenConns    int           `toml:"max_open_conns"`
	MaxIdleConns    int           `toml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `toml:"conn_max_lifetime"`
	ReadOnly        bool          `toml:"read_only"` // restrict queries to SELECT/SHOW/DESCRIBE/EXPLAIN
}

type DataConfig struct {
	DBCDir    string `toml:"dbc_dir"`    // directory containing Spell.dbc
	MapsDir   string `toml:"maps_dir"`   // directory containing MMMXXYY.map tiles
	MapIndex  string `toml:"map_index"`  // optional maps.yaml with display names
	SourceDir string `toml:"source_dir"` // optional AzerothCore checkout for C++ excerpts
}

type CacheConfig struct {
	LookupEntries int64 `toml:"lookup_entries"` // cap for memoized id→record / id→name lookups
}

type LoggingConfig struct {
	Level      string `toml:"level"`
	Format     string `toml:"format"` // "json" or "console"
	File       string `toml:"file"`   // optional rotating log file for tool calls
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
	MaxAgeDays int    `toml:"max_age_days"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Default returns the built-in configuration, used as the base for Load
// and standalone when no config file exists.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Name:      "AzerothMCP",
			StartTime: time.Now().Unix(),
		},
		Database: DatabaseConfig{
			WorldDSN:        "acore:acore@tcp(localhost:3306)/acore_world?parseTime=true",
			CharactersDSN:   "acore:acore@tcp(localhost:3306)/acore_characters?parseTime=true",
			AuthDSN:         "acore:acore@tcp(localhost:3306)/acore_auth?parseTime=true",
			MaxOpenConns:    10,
			MaxIdleConns:    2,
			ConnMaxLifetime: 30 * time.Minute,
			ReadOnly:        true,
		},
		Data: DataConfig{
			DBCDir:  "data/dbc",
			MapsDir: "data/maps",
		},
		Cache: CacheConfig{
			LookupEntries: 1000,
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "console",
			MaxSizeMB:  20,
			MaxBackups: 3,
			MaxAgeDays: 14,
		},
	}
}
