// Package config loads the demo's settings from a flat TOML file of
// key = value pairs. Unknown keys are ignored; a missing file yields the
// defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type Config struct {
	EnableLogger bool
	Banner       string
	ShowCursor   bool
}

type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

func DefaultConfig() Config {
	return Config{
		EnableLogger: false,
		Banner:       "SCB DEMO",
		ShowCursor:   false,
	}
}

func configPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "scb", "config.toml"), nil
}

// LoadConfig reads the config file, falling back to DefaultConfig when
// the file is missing or unreadable.
func LoadConfig() Config {
	cfg := DefaultConfig()

	path, err := configPath()
	if err != nil {
		return cfg
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}
	if parsed, err := ParseConfig(string(data)); err == nil {
		cfg = parsed
	}
	return cfg
}

// SaveConfig writes cfg as a TOML file, creating the config directory if
// needed.
func SaveConfig(cfg Config) error {
	path, err := configPath()
	if err != nil {
		return fmt.Errorf("failed to locate config dir: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "enable_logger = %t\n", cfg.EnableLogger)
	fmt.Fprintf(&b, "banner = %q\n", cfg.Banner)
	fmt.Fprintf(&b, "show_cursor = %t\n", cfg.ShowCursor)

	return os.WriteFile(path, []byte(b.String()), 0o644)
}

// ParseConfig parses flat TOML key/value data into a Config, starting
// from the defaults.
func ParseConfig(data string) (Config, error) {
	cfg := DefaultConfig()

	for i, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return cfg, &ParseError{Line: i + 1, Msg: "invalid key-value pair"}
		}
		key := strings.TrimSpace(parts[0])
		value, err := parseValue(strings.TrimSpace(parts[1]))
		if err != nil {
			return cfg, &ParseError{Line: i + 1, Msg: err.Error()}
		}

		switch key {
		case "enable_logger":
			if v, ok := value.(bool); ok {
				cfg.EnableLogger = v
			}
		case "banner":
			if v, ok := value.(string); ok {
				cfg.Banner = v
			}
		case "show_cursor":
			if v, ok := value.(bool); ok {
				cfg.ShowCursor = v
			}
		}
	}

	return cfg, nil
}

func parseValue(value string) (any, error) {
	if strings.HasPrefix(value, `"`) && strings.HasSuffix(value, `"`) && len(value) >= 2 {
		return value[1 : len(value)-1], nil
	}
	if num, err := strconv.Atoi(value); err == nil {
		return num, nil
	}
	if value == "true" {
		return true, nil
	}
	if value == "false" {
		return false, nil
	}
	return nil, fmt.Errorf("unrecognized value: %s", value)
}
