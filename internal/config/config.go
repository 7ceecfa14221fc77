package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"hunterline/internal/storage"
)

const (
	StoreSQLite = "sqlite"
	StoreFile   = "file"
)

// Config is read from HL_* environment variables. Empty paths fall back to
// locations under the user's home directory.
type Config struct {
	Store           string        `env:"HL_STORE"            envDefault:"sqlite"`
	DBPath          string        `env:"HL_DB_PATH"`
	DataDir         string        `env:"HL_DATA_DIR"`
	HTTPAddr        string        `env:"HL_HTTP_ADDR"        envDefault:":8080"`
	LogLevel        string        `env:"HL_LOG_LEVEL"        envDefault:"info"`
	LogFormat       string        `env:"HL_LOG_FORMAT"       envDefault:"text"`
	ShutdownTimeout time.Duration `env:"HL_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Load reads an optional .env file from the working directory, then parses
// the environment. Variables already set win over .env entries.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return Parse()
}

// Parse reads the environment without touching .env.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.Store = strings.ToLower(strings.TrimSpace(cfg.Store))
	cfg.LogFormat = strings.ToLower(strings.TrimSpace(cfg.LogFormat))

	if cfg.DBPath == "" {
		p, err := storage.DefaultDBPath()
		if err != nil {
			return Config{}, err
		}
		cfg.DBPath = p
	}
	if cfg.DataDir == "" {
		d, err := storage.DefaultDataDir()
		if err != nil {
			return Config{}, err
		}
		cfg.DataDir = d
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Store {
	case StoreSQLite, StoreFile:
	default:
		return fmt.Errorf("HL_STORE: unknown store %q (want sqlite or file)", c.Store)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("HL_LOG_FORMAT: unknown format %q (want text or json)", c.LogFormat)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.ShutdownTimeout <= 0 {
		return errors.New("HL_SHUTDOWN_TIMEOUT must be positive")
	}
	return nil
}

// Level is the parsed HL_LOG_LEVEL, Info when unparseable.
func (c Config) Level() slog.Level {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

// Logger builds the process logger. Output goes to w (stderr for the CLI).
func (c Config) Logger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.Level()}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("HL_LOG_LEVEL: %w", err)
	}
	return l, nil
}
