// Package config loads the ssvfill application configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/javajack/ssvfill"
)

// FileName is the config file looked up next to the executable.
const FileName = "config.toml"

// AppConfig is the application configuration.
type AppConfig struct {
	Server   ServerConfig   `toml:"server"`
	Defaults DefaultsConfig `toml:"defaults"`
	Output   OutputConfig   `toml:"output"`
	Log      LogConfig      `toml:"log"`
}

// ServerConfig configures the HTTP surface.
type ServerConfig struct {
	Port          int   `toml:"port"`
	DevMode       bool  `toml:"dev_mode"`
	MaxUploadSize int64 `toml:"max_upload_size"`
}

// DefaultsConfig holds form defaults for optional run parameters.
type DefaultsConfig struct {
	InspStart  int     `toml:"insp_start"`
	InspEnd    int     `toml:"insp_end"`
	Multiplier float64 `toml:"multiplier"`
}

// OutputConfig configures the generated workbook.
type OutputConfig struct {
	FileName        string `toml:"file_name"`
	HeaderFill      string `toml:"header_fill"`
	PermissiveRange bool   `toml:"permissive_range"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `toml:"level"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *AppConfig {
	p := ssvfill.DefaultParams()
	return &AppConfig{
		Server: ServerConfig{
			Port:          8501,
			MaxUploadSize: 32 << 20,
		},
		Defaults: DefaultsConfig{
			InspStart:  p.InspStart,
			InspEnd:    p.InspEnd,
			Multiplier: p.Multiplier,
		},
		Output: OutputConfig{
			FileName:   ssvfill.DefaultFileName,
			HeaderFill: ssvfill.DefaultHeaderFill,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Params returns run parameters prefilled with the configured defaults.
func (c *AppConfig) Params() ssvfill.Params {
	return ssvfill.Params{
		InspStart:  c.Defaults.InspStart,
		InspEnd:    c.Defaults.InspEnd,
		Multiplier: c.Defaults.Multiplier,
	}
}

// Options returns the pipeline options implied by the output section.
func (c *AppConfig) Options() []ssvfill.Option {
	return []ssvfill.Option{
		ssvfill.WithHeaderFill(c.Output.HeaderFill),
		ssvfill.WithPermissiveRange(c.Output.PermissiveRange),
	}
}

// Load reads path over the defaults. An empty path looks for config.toml next
// to the executable; a missing file there is not an error.
func Load(path string) (*AppConfig, error) {
	cfg := DefaultConfig()
	explicit := path != ""
	if !explicit {
		exe, err := os.Executable()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(filepath.Dir(exe), FileName)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %q: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %q: %w", path, err)
	}
	return cfg, nil
}
