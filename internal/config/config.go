// Package config loads environment configuration for joykeys.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

const (
	defaultListenAddr = "127.0.0.1:8732"
	defaultDataDir    = "./data"
	defaultQuantizer  = "table"
	defaultTray       = true
)

// Config holds runtime configuration values.
type Config struct {
	ListenAddr  string
	DataDir     string
	ConfigPath  string
	ProfilePath string
	Quantizer   string
	TrayEnabled bool
	SkipCalib   bool
}

// Load reads configuration from ./data/.env and environment variables.
func Load() (Config, error) {
	cfg := Config{
		ListenAddr:  defaultListenAddr,
		DataDir:     defaultDataDir,
		ConfigPath:  filepath.Join(defaultDataDir, "stick.cfg"),
		ProfilePath: filepath.Join(defaultDataDir, "profile.yaml"),
		Quantizer:   defaultQuantizer,
		TrayEnabled: defaultTray,
	}

	if err := loadEnvFile(filepath.Join(cfg.DataDir, ".env")); err != nil {
		return Config{}, err
	}

	cfg.ListenAddr = envString("JOYKEYS_LISTEN_ADDR", cfg.ListenAddr)
	cfg.DataDir = envString("JOYKEYS_DATA_DIR", cfg.DataDir)
	cfg.ConfigPath = envString("JOYKEYS_CONFIG_PATH", filepath.Join(cfg.DataDir, "stick.cfg"))
	cfg.ProfilePath = envString("JOYKEYS_PROFILE_PATH", filepath.Join(cfg.DataDir, "profile.yaml"))
	cfg.Quantizer = normalizeQuantizer(envString("JOYKEYS_QUANTIZER", cfg.Quantizer))
	cfg.TrayEnabled = envBool("JOYKEYS_TRAY", cfg.TrayEnabled)
	cfg.SkipCalib = envBool("JOYKEYS_SKIP_CALIBRATION", cfg.SkipCalib)

	return cfg, nil
}

// normalizeQuantizer ensures a supported quantizer value.
func normalizeQuantizer(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "trig":
		return "trig"
	default:
		return "table"
	}
}

// envString returns an env override when present, otherwise a default.
func envString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
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
	if strings.HasPrefix(line, "export ") {
		line = strings.TrimSpace(strings.TrimPrefix(line, "export "))
	}
	parts := strings.SplitN(line, "=", 2)
	if len(parts) != 2 {
		return "", "", false
	}
	key := strings.TrimSpace(parts[0])
	value := strings.TrimSpace(parts[1])
	if key == "" {
		return "", "", false
	}
	value = strings.Trim(value, `"'`)
	return key, value, true
}
