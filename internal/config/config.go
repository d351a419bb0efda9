// Package config loads environment configuration for the placement service.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	defaultListenAddr     = "0.0.0.0:8790"
	defaultDataDir        = "./data"
	defaultPasswordMode   = true
	defaultViewportWidth  = 800
	defaultViewportHeight = 800
)

// Config holds runtime configuration values.
type Config struct {
	ListenAddr       string
	UIPassword       string
	PasswordMode     bool
	DataDir          string
	DelimitationPath string
	DBPath           string
	TuningPath       string
	ViewportWidth    int
	ViewportHeight   int
}

// Load reads configuration from ./data/.env and environment variables.
func Load() (Config, error) {
	cfg := Config{
		ListenAddr:     defaultListenAddr,
		DataDir:        defaultDataDir,
		PasswordMode:   defaultPasswordMode,
		ViewportWidth:  defaultViewportWidth,
		ViewportHeight: defaultViewportHeight,
	}

	if err := loadEnvFile(filepath.Join(cfg.DataDir, ".env")); err != nil {
		return Config{}, err
	}

	cfg.ListenAddr = envString("LISTEN_ADDR", cfg.ListenAddr)
	cfg.DataDir = envString("DATA_DIR", cfg.DataDir)
	cfg.DelimitationPath = envString("DELIMITATION_PATH", filepath.Join(cfg.DataDir, "delimitation.json"))
	cfg.DBPath = envString("DB_PATH", filepath.Join(cfg.DataDir, "designs.db"))
	cfg.TuningPath = envString("TUNING_PATH", filepath.Join(cfg.DataDir, "tuning.yaml"))
	cfg.UIPassword = strings.TrimSpace(os.Getenv("UI_PASSWORD"))
	cfg.PasswordMode = envBool("PASSWORD_MODE", cfg.PasswordMode)

	width, err := envInt("VIEWPORT_WIDTH", cfg.ViewportWidth)
	if err != nil {
		return Config{}, err
	}
	if width <= 0 {
		return Config{}, fmt.Errorf("VIEWPORT_WIDTH must be > 0")
	}
	cfg.ViewportWidth = width

	height, err := envInt("VIEWPORT_HEIGHT", cfg.ViewportHeight)
	if err != nil {
		return Config{}, err
	}
	if height <= 0 {
		return Config{}, fmt.Errorf("VIEWPORT_HEIGHT must be > 0")
	}
	cfg.ViewportHeight = height

	if cfg.PasswordMode && cfg.UIPassword == "" {
		return Config{}, errors.New("UI_PASSWORD is required")
	}

	return cfg, nil
}

// envString returns an env override when present, otherwise a default.
func envString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// envInt returns an int env override when present, otherwise a default.
func envInt(key string, def int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return value, nil
}

// envBool returns a bool env override when present, otherwise a default.
func envBool(key string, def bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	switch strings.ToLower(raw) {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return def
	}
}

// loadEnvFile loads KEY=VALUE pairs from a .env file.
func loadEnvFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}

	for _, line := range strings.Split(string(data), "\n") {
		key, value, ok := parseEnvLine(line)
		if !ok {
			continue
		}
		if _, exists := os.LookupEnv(key); !exists {
			if err := os.Setenv(key, value); err != nil {
				return err
			}
		}
	}

	return nil
}

// parseEnvLine parses a single .env line into key/value.
func parseEnvLine(line string) (string, string, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}
	line = strings.TrimSpace(strings.TrimPrefix(line, "export "))
	key, value, ok := strings.Cut(line, "=")
	if !ok {
		return "", "", false
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return "", "", false
	}
	return key, strings.Trim(strings.TrimSpace(value), `"'`), true
}
