// Package config loads optional staged configuration: a default warning
// threshold and named stage presets runnable via --preset.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/stagedtimer/staged/internal/duration"
	"github.com/stagedtimer/staged/internal/errors"
	"github.com/stagedtimer/staged/internal/timer"
)

const (
	// ConfigDir is the directory for the config file, under the home dir.
	ConfigDir = ".config/staged"
	// ConfigFile is the config file name.
	ConfigFile = "config.yaml"
)

// PresetStage is one stage entry in a preset: a name and a duration token
// in the same grammar the --time flag accepts.
type PresetStage struct {
	Name string `mapstructure:"name" yaml:"name"`
	Time string `mapstructure:"time" yaml:"time"`
}

// Preset is a named, reusable stage list.
type Preset struct {
	Stages []PresetStage `mapstructure:"stages" yaml:"stages"`
}

// Config holds the optional settings read from the config file.
type Config struct {
	// Warn is the default warning threshold in duration grammar.
	// Empty means disabled; the --warn flag overrides it.
	Warn string `mapstructure:"warn" yaml:"warn,omitempty"`
	// Presets maps preset names to stage lists.
	Presets map[string]Preset `mapstructure:"presets" yaml:"presets,omitempty"`
}

// DefaultPath returns the default config file location
// (~/.config/staged/config.yaml). Empty string if the home directory
// cannot be determined.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ConfigDir, ConfigFile)
}

// Load reads config from the given path, or from DefaultPath when path is
// empty. A missing file is not an error: the zero config is returned so
// the timer runs fine without any configuration.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
		if path == "" {
			return &Config{}, nil
		}
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &Config{}, nil
	}

	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to read config file "+path,
			"Check the file is valid YAML")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to parse config file "+path,
			"Check the warn and presets fields match the expected shape")
	}

	return &cfg, nil
}

// WarnSeconds resolves the configured default warning threshold.
// Zero when unset.
func (c *Config) WarnSeconds() (int, error) {
	if c.Warn == "" {
		return 0, nil
	}
	seconds, err := duration.Parse(c.Warn)
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Invalid warn value '%s' in config", c.Warn),
			"Use the duration grammar: seconds, M:S, or H:M:S")
	}
	return seconds, nil
}

// Stages resolves a named preset into a stage list, parsing each duration
// token. The result goes through the same timer validation as flag-built
// stage lists.
func (c *Config) Stages(preset string) ([]timer.Stage, error) {
	p, ok := c.Presets[preset]
	if !ok {
		return nil, errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown preset '%s'", preset),
			"List presets in "+DefaultPath()+" or add one with 'staged init'")
	}
	if len(p.Stages) == 0 {
		return nil, errors.New(errors.ErrConfig,
			fmt.Sprintf("Preset '%s' has no stages", preset),
			"Add at least one name/time entry to the preset")
	}

	stages := make([]timer.Stage, 0, len(p.Stages))
	for _, ps := range p.Stages {
		seconds, err := duration.Parse(ps.Time)
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				fmt.Sprintf("Invalid time '%s' for stage '%s' in preset '%s'", ps.Time, ps.Name, preset),
				"Use the duration grammar: seconds, M:S, or H:M:S")
		}
		stages = append(stages, timer.Stage{Name: ps.Name, Duration: seconds})
	}

	return stages, nil
}

// Write marshals the config to YAML and writes it to path, creating parent
// directories as needed. Used by 'staged init'.
func Write(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to serialize config",
			"")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to create config directory "+filepath.Dir(path),
			"Check directory permissions")
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to write config file "+path,
			"Check file permissions")
	}

	return nil
}
