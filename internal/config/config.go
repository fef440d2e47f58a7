// Package config loads levelmgr settings from the environment and an
// optional .env file.
package config

import (
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/KirkDiggler/level-manager/internal/errors"
)

// Snapshot stores
const (
	StoreFile   = "file"
	StoreRedis  = "redis"
	StoreSQLite = "sqlite"
)

// DefaultEnvFile is read by Load when no file is named
const DefaultEnvFile = ".env"

// Stores lists the supported snapshot stores
func Stores() []string {
	return []string{StoreFile, StoreRedis, StoreSQLite}
}

// Config holds every setting of the tool
type Config struct {
	Store      string `env:"LEVELMGR_STORE" envDefault:"file"`
	Dir        string `env:"LEVELMGR_DIR" envDefault:"."`
	Format     string `env:"LEVELMGR_FORMAT" envDefault:"json"`
	RedisAddr  string `env:"LEVELMGR_REDIS_ADDR" envDefault:"localhost:6379"`
	SQLitePath string `env:"LEVELMGR_SQLITE_PATH" envDefault:"levelmgr.db"`
	LogLevel   string `env:"LEVELMGR_LOG_LEVEL" envDefault:"warn"`
}

// Load reads the named env files (DefaultEnvFile if none), then parses the
// environment. Missing env files are skipped; variables already set in the
// environment win over file values.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{DefaultEnvFile}
	}
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, errors.WrapWithCodef(err, errors.CodeInvalidArgument, "failed to read %s", file)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "parse env")
	}
	return cfg, nil
}

// Validate checks the settings the selected store needs
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("store", c.Store, Stores(), vb)

	switch c.Store {
	case StoreFile:
		errors.ValidateRequired("dir", c.Dir, vb)
		errors.ValidateEnum("format", c.Format, []string{"json", "yaml"}, vb)
	case StoreRedis:
		errors.ValidateRequired("redis_addr", c.RedisAddr, vb)
	case StoreSQLite:
		errors.ValidateRequired("sqlite_path", c.SQLitePath, vb)
	}

	if _, err := c.SlogLevel(); err != nil {
		vb.Field("log_level", "must be one of: debug, info, warn, error")
	}
	return vb.Build()
}

// SlogLevel parses LogLevel
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelWarn, errors.InvalidArgumentf("unknown log level %q", c.LogLevel)
	}
	return level, nil
}
