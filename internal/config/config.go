// Package config handles vgotool configuration loading and management.
package config

import (
	"fmt"
	"time"

	"github.com/Faultbox/univgo/internal/logger"
	"github.com/Faultbox/univgo/pkg/texture"
	"github.com/Faultbox/univgo/pkg/vgo"
)

// Config holds all tool settings.
type Config struct {
	Export  ExportConfig  `yaml:"export"`
	Import  ImportConfig  `yaml:"import"`
	Watch   WatchConfig   `yaml:"watch"`
	Logging LoggingConfig `yaml:"logging"`
}

// ExportConfig holds settings for writing VGO files.
type ExportConfig struct {
	Generator     string `yaml:"generator"`
	TextureFormat string `yaml:"texture_format"` // png or webp
	OutputExt     string `yaml:"output_ext"`     // .vgo, .glb or .gltf
}

// ImportConfig holds settings for reading VGO files.
type ImportConfig struct {
	ShowMeshes          bool `yaml:"show_meshes"`
	UpdateWhenOffscreen bool `yaml:"update_when_offscreen"`
	StrictColliders     bool `yaml:"strict_colliders"`
}

// WatchConfig holds settings for the folder watcher.
type WatchConfig struct {
	Pattern  string        `yaml:"pattern"`
	Debounce time.Duration `yaml:"debounce"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
	JSON    bool   `yaml:"json"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Export: ExportConfig{
			Generator:     vgo.DefaultGenerator,
			TextureFormat: string(texture.FormatPNG),
			OutputExt:     ".vgo",
		},
		Import: ImportConfig{
			ShowMeshes: true,
		},
		Watch: WatchConfig{
			Pattern:  "*.vgo.yaml",
			Debounce: 500 * time.Millisecond,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate checks values that cannot be checked by the YAML decoder.
func (c *Config) Validate() error {
	if _, err := texture.ParseFormat(c.Export.TextureFormat); err != nil {
		return fmt.Errorf("export.texture_format: %w", err)
	}
	switch c.Export.OutputExt {
	case ".vgo", ".glb", ".gltf":
	default:
		return fmt.Errorf("export.output_ext: unsupported extension %q", c.Export.OutputExt)
	}
	if _, err := logger.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	if c.Watch.Debounce < 0 {
		return fmt.Errorf("watch.debounce: negative duration %s", c.Watch.Debounce)
	}
	return nil
}

// Exporter returns an exporter configured from the export section.
func (c *Config) Exporter() (*vgo.Exporter, error) {
	format, err := texture.ParseFormat(c.Export.TextureFormat)
	if err != nil {
		return nil, err
	}
	return &vgo.Exporter{Generator: c.Export.Generator, TextureFormat: format}, nil
}

// ImportOptions returns the import section as importer options.
func (c *Config) ImportOptions() vgo.ImportOptions {
	return vgo.ImportOptions{
		ShowMeshes:          c.Import.ShowMeshes,
		UpdateWhenOffscreen: c.Import.UpdateWhenOffscreen,
		StrictColliders:     c.Import.StrictColliders,
	}
}

// FileConfig returns the log file settings.
func (c *Config) FileConfig() logger.FileConfig {
	if c.Logging.LogFile == "" {
		return logger.FileConfig{}
	}
	fc := logger.DefaultFileConfig(c.Logging.LogFile)
	fc.JSON = c.Logging.JSON
	return fc
}
