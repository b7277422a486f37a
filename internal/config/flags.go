package config

import (
	"flag"
	"time"
)

// Flags are the command-line overrides shared by every subcommand.
type Flags struct {
	Config   *string
	Debug    *bool
	Format   *string
	Strict   *bool
	LogFile  *string
	Debounce *time.Duration
}

// RegisterFlags defines the shared flags on fs.
func RegisterFlags(fs *flag.FlagSet) *Flags {
	return &Flags{
		Config:   fs.String("config", "", "Path to config file"),
		Debug:    fs.Bool("debug", false, "Enable debug logging"),
		Format:   fs.String("format", "", "Texture format for re-encoded textures (png, webp)"),
		Strict:   fs.Bool("strict", false, "Fail on collider shape mismatches"),
		LogFile:  fs.String("log", "", "Write logs to this file"),
		Debounce: fs.Duration("debounce", 0, "Watch debounce interval"),
	}
}

// ConfigPath returns the explicit config path if provided via --config flag.
func (f *Flags) ConfigPath() string {
	if f == nil || f.Config == nil {
		return ""
	}
	return *f.Config
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config, f *Flags) {
	if f == nil {
		return
	}
	if f.Debug != nil && *f.Debug {
		cfg.Logging.Level = "debug"
	}
	if f.Format != nil && *f.Format != "" {
		cfg.Export.TextureFormat = *f.Format
	}
	if f.Strict != nil && *f.Strict {
		cfg.Import.StrictColliders = true
	}
	if f.LogFile != nil && *f.LogFile != "" {
		cfg.Logging.LogFile = *f.LogFile
	}
	if f.Debounce != nil && *f.Debounce > 0 {
		cfg.Watch.Debounce = *f.Debounce
	}
}
