package config

import (
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/jsphweid/ragakey/constants"
	"github.com/jsphweid/ragakey/mask"
	"github.com/jsphweid/ragakey/model"
)

type ServerConfig struct {
	Port           int      `mapstructure:"port" toml:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins" toml:"allowed_origins"`
}

type ChartConfig struct {
	CellSize int `mapstructure:"cell_size" toml:"cell_size"`
}

// Config holds all runtime configuration. Values come from .ragakey.toml,
// RAGAKEY_* env vars, and CLI flags bound in cmd.
type Config struct {
	Mask    string       `mapstructure:"mask" toml:"mask"`
	OutDir  string       `mapstructure:"out_dir" toml:"out_dir"`
	Verbose bool         `mapstructure:"verbose" toml:"verbose"`
	Server  ServerConfig `mapstructure:"server" toml:"server"`
	Chart   ChartConfig  `mapstructure:"chart" toml:"chart"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("mask", mask.Format(mask.Default()))
	v.SetDefault("out_dir", constants.DefaultOutDir)
	v.SetDefault("verbose", false)
	v.SetDefault("server.port", constants.DefaultPort)
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("chart.cell_size", constants.DefaultCellSize)
}

// Load reads configuration from the global viper instance, applying built-in
// defaults for any value not set by config file, environment, or flags.
func Load() (Config, error) {
	return LoadFrom(viper.GetViper())
}

func LoadFrom(v *viper.Viper) (Config, error) {
	setDefaults(v)
	return decode(v)
}

// decode reads the current values out of v. Defaults must already be set.
func decode(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func Default() Config {
	cfg, _ := LoadFrom(viper.New())
	return cfg
}

func (c Config) Validate() error {
	if _, err := mask.Parse(c.Mask); err != nil {
		return fmt.Errorf("config mask: %w", err)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("config server.port %d out of range", c.Server.Port)
	}
	if c.Chart.CellSize < 10 {
		return fmt.Errorf("config chart.cell_size %d too small (min 10)", c.Chart.CellSize)
	}
	return nil
}

// QualityMask parses the configured mask. Validate has already accepted it
// for any Config returned by Load.
func (c Config) QualityMask() (model.QualityMask, error) {
	return mask.Parse(c.Mask)
}

// Save writes cfg as TOML, creating parent directories as needed.
func Save(path string, cfg Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	data, err := Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func Marshal(cfg Config) ([]byte, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("marshaling config: %w", err)
	}
	return data, nil
}
