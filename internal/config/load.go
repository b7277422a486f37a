package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// EnvConfig names the environment variable holding a config file path. It
// is consulted when no -config flag is given.
const EnvConfig = "VGOTOOL_CONFIG"

// Load loads configuration with priority: defaults < file < flags.
// The file is the -config flag, else $VGOTOOL_CONFIG, else the first of
// ./vgotool.yaml and ConfigDir()/vgotool.yaml that exists. flags may be nil.
func Load(flags *Flags) (*Config, error) {
	cfg := Default()

	path := flags.ConfigPath()
	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path == "" {
		path = findConfigFile()
	}

	if path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", path, err)
		}
	}

	applyFlags(cfg, flags)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func findConfigFile() string {
	for _, path := range []string{
		"vgotool.yaml",
		filepath.Join(ConfigDir(), "vgotool.yaml"),
	} {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "UniVGO")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "UniVGO")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "univgo")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "univgo")
	}
}

// loadFromFile merges a YAML file into cfg. Unknown keys are an error so
// typos do not silently fall back to defaults.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
