package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds the showcase client settings.
type Config struct {
	APIBase         string
	Timeout         time.Duration
	CredentialsPath string
	LogDir          string
	LogLevel        string
	Preview         bool
	PageQuery       string
	PollInterval    time.Duration
	Carousel        Carousel
}

// Carousel configures the homepage carousel.
type Carousel struct {
	Autoplay bool
	Interval time.Duration
}

const (
	defaultConfigPath      = "~/.config/showcase/config.toml"
	defaultAPIBase         = "http://127.0.0.1:8080/"
	defaultTimeout         = 10 * time.Second
	defaultCredentialsPath = "~/.config/showcase/credentials.toml"
	defaultLogDir          = "~/.local/state/showcase"
	defaultLogLevel        = "info"
	defaultPollInterval    = 30 * time.Second
	defaultCarouselTick    = 3 * time.Second

	logFileName = "showcase.log"
)

type rawConfig struct {
	APIBase         string `toml:"api_base"`
	TimeoutMS       int    `toml:"timeout_ms"`
	CredentialsPath string `toml:"credentials_path"`
	LogDir          string `toml:"log_dir"`
	LogLevel        string `toml:"log_level"`
	Preview         bool   `toml:"preview"`
	PageQuery       string `toml:"page_query"`
	PollSeconds     int    `toml:"poll_seconds"`
	Carousel        struct {
		Autoplay   *bool `toml:"autoplay"`
		IntervalMS int   `toml:"interval_ms"`
	} `toml:"carousel"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		APIBase:         defaultAPIBase,
		Timeout:         defaultTimeout,
		CredentialsPath: mustExpand(defaultCredentialsPath),
		LogDir:          mustExpand(defaultLogDir),
		LogLevel:        defaultLogLevel,
		PollInterval:    defaultPollInterval,
		Carousel:        Carousel{Autoplay: true, Interval: defaultCarouselTick},
	}
}

// DefaultPath returns the unexpanded default config location.
func DefaultPath() string {
	return defaultConfigPath
}

// Load reads the config at path, or the default location when path is blank.
// A missing file yields Default().
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw rawConfig
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return raw.resolve(), nil
}

func (raw rawConfig) resolve() Config {
	cfg := Default()

	if v := strings.TrimSpace(raw.APIBase); v != "" {
		cfg.APIBase = v
	}
	if raw.TimeoutMS > 0 {
		cfg.Timeout = time.Duration(raw.TimeoutMS) * time.Millisecond
	}
	if v := strings.TrimSpace(raw.CredentialsPath); v != "" {
		cfg.CredentialsPath = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.LogDir); v != "" {
		cfg.LogDir = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.LogLevel); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	cfg.Preview = raw.Preview
	cfg.PageQuery = strings.TrimSpace(raw.PageQuery)
	if raw.PollSeconds > 0 {
		cfg.PollInterval = time.Duration(raw.PollSeconds) * time.Second
	}
	if raw.Carousel.Autoplay != nil {
		cfg.Carousel.Autoplay = *raw.Carousel.Autoplay
	}
	if raw.Carousel.IntervalMS > 0 {
		cfg.Carousel.Interval = time.Duration(raw.Carousel.IntervalMS) * time.Millisecond
	}
	return cfg
}

// LogPath returns the file the application logger writes to.
func (c Config) LogPath() string {
	if strings.TrimSpace(c.LogDir) == "" {
		return filepath.Join(mustExpand(defaultLogDir), logFileName)
	}
	return filepath.Join(c.LogDir, logFileName)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return ExpandPath(defaultConfigPath)
	}
	return ExpandPath(path)
}

func mustExpand(path string) string {
	expanded, err := ExpandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

// ExpandPath resolves a leading ~ to the home directory and returns an
// absolute path.
func ExpandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
