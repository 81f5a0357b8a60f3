package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type IEX struct {
	BaseURL              string `json:"base_url"`
	LogoBaseURL          string `json:"logo_base_url"`
	Token                string `json:"token"`
	ListLimit            int    `json:"list_limit"`
	TimeoutMs            int    `json:"timeout_ms"`
	MaxRequestsPerMinute int    `json:"max_requests_per_minute"`
	Burst                int    `json:"burst"`
	MinRequestIntervalMs int    `json:"min_request_interval_ms"`
}

// Timeout returns the per-request timeout.
func (c IEX) Timeout() time.Duration { return time.Duration(c.TimeoutMs) * time.Millisecond }

// MinInterval returns the minimum spacing between requests.
func (c IEX) MinInterval() time.Duration {
	return time.Duration(c.MinRequestIntervalMs) * time.Millisecond
}

type Server struct {
	Port string `json:"port"`
}

type Log struct {
	Level  string `json:"level"`
	Pretty bool   `json:"pretty"`
	File   string `json:"file"` // used by the terminal app, which owns stdout
}

type Config struct {
	IEX    IEX    `json:"iex"`
	Server Server `json:"server"`
	Log    Log    `json:"log"`
}

func Default() Config {
	return Config{
		IEX: IEX{
			BaseURL:     "https://sandbox.iexapis.com/stable",
			LogoBaseURL: "https://storage.googleapis.com/iex/api/logos",
			ListLimit:   20,
			TimeoutMs:   2000,
			Burst:       1,
		},
		Server: Server{Port: "8080"},
		Log:    Log{Level: "info", File: "stocks.log"},
	}
}

// Load reads JSON config from path. If path is empty, config.json in the
// working directory is used when present. A .env file is loaded into the
// environment first, then environment variables override file values.
func Load(path string) (Config, error) {
	cfg := Default()
	_ = godotenv.Load()

	if path == "" {
		if _, err := os.Stat("config.json"); err == nil {
			path = "config.json"
		}
	}
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err == nil {
			if err := json.Unmarshal(b, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config: %w", err)
			}
		}
	}
	applyEnv(&cfg)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks that the values needed to reach the API are usable.
func (c Config) Validate() error {
	if strings.TrimSpace(c.IEX.BaseURL) == "" {
		return fmt.Errorf("iex.base_url is required")
	}
	if strings.TrimSpace(c.IEX.LogoBaseURL) == "" {
		return fmt.Errorf("iex.logo_base_url is required")
	}
	if c.IEX.ListLimit <= 0 {
		return fmt.Errorf("iex.list_limit must be positive, got %d", c.IEX.ListLimit)
	}
	if c.IEX.TimeoutMs <= 0 {
		return fmt.Errorf("iex.timeout_ms must be positive, got %d", c.IEX.TimeoutMs)
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("IEX_TOKEN"); v != "" {
		cfg.IEX.Token = v
	}
	if v := os.Getenv("IEX_BASE_URL"); v != "" {
		cfg.IEX.BaseURL = strings.TrimRight(v, "/")
	}
	if v := os.Getenv("IEX_LOGO_BASE_URL"); v != "" {
		cfg.IEX.LogoBaseURL = strings.TrimRight(v, "/")
	}
	if x, ok := envInt("IEX_LIST_LIMIT"); ok && x > 0 {
		cfg.IEX.ListLimit = x
	}
	if x, ok := envInt("IEX_TIMEOUT_MS"); ok && x > 0 {
		cfg.IEX.TimeoutMs = x
	}
	if x, ok := envInt("IEX_MAX_RPM"); ok && x >= 0 {
		cfg.IEX.MaxRequestsPerMinute = x
	}
	if x, ok := envInt("IEX_BURST"); ok && x > 0 {
		cfg.IEX.Burst = x
	}
	if x, ok := envInt("IEX_MIN_INTERVAL_MS"); ok && x >= 0 {
		cfg.IEX.MinRequestIntervalMs = x
	}
	if v := os.Getenv("PORT"); v != "" {
		cfg.Server.Port = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = strings.ToLower(v)
	}
	if v, ok := envBool("LOG_PRETTY"); ok {
		cfg.Log.Pretty = v
	}
	if v := os.Getenv("LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
}

func envInt(key string) (int, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	x, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, false
	}
	return x, true
}

func envBool(key string) (bool, bool) {
	switch strings.ToLower(os.Getenv(key)) {
	case "1", "true", "yes", "y":
		return true, true
	case "0", "false", "no", "n":
		return false, true
	}
	return false, false
}
