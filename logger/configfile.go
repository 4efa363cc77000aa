package logger

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
	"github.com/titanous/json5"
)

// ErrUnsupportedConfig is returned by LoadConfigFile for unknown file extensions.
var ErrUnsupportedConfig = errors.New("logger: unsupported config file format")

// FileConfig is the content of a config file. Nil fields were not set and
// leave the Config they are applied to unchanged.
type FileConfig struct {
	FileName        *string `mapstructure:"file_name"`
	FilePath        *string `mapstructure:"file_path"`
	Profile         *string `mapstructure:"profile"`
	PrintToConsole  *bool   `mapstructure:"print_to_console"`
	TimestampFormat *string `mapstructure:"timestamp_format"`
	NoColor         *bool   `mapstructure:"no_color"`
	IncludeCaller   *bool   `mapstructure:"include_caller"`
	// RetentionDays is read by the sweeper, not by the Logger.
	RetentionDays *int `mapstructure:"retention_days"`
}

// LoadConfigFile reads a YAML (.yaml, .yml), JSON5 (.json, .json5) or TOML
// (.toml) config file. Unknown keys are an error.
func LoadConfigFile(path string) (FileConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return FileConfig{}, fmt.Errorf("logger: read config: %w", err)
	}

	raw := map[string]any{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &raw)
	case ".json", ".json5":
		err = json5.Unmarshal(b, &raw)
	case ".toml":
		err = toml.Unmarshal(b, &raw)
	default:
		return FileConfig{}, fmt.Errorf("%w: %s", ErrUnsupportedConfig, path)
	}
	if err != nil {
		return FileConfig{}, fmt.Errorf("logger: parse config %s: %w", path, err)
	}

	fc, err := decodeFileConfig(raw)
	if err != nil {
		return FileConfig{}, fmt.Errorf("logger: decode config %s: %w", path, err)
	}
	return fc, nil
}

func decodeFileConfig(raw map[string]any) (FileConfig, error) {
	var fc FileConfig
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &fc,
		ErrorUnused:      true,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return FileConfig{}, err
	}
	if err := dec.Decode(raw); err != nil {
		return FileConfig{}, err
	}
	return fc, nil
}

// Apply returns cfg with every field set in fc overridden.
func (fc FileConfig) Apply(cfg Config) Config {
	if fc.FileName != nil {
		cfg.FileName = *fc.FileName
	}
	if fc.FilePath != nil {
		cfg.FilePath = *fc.FilePath
	}
	if fc.Profile != nil {
		cfg.Profile = *fc.Profile
	}
	if fc.PrintToConsole != nil {
		cfg.DisableConsole = !*fc.PrintToConsole
	}
	if fc.TimestampFormat != nil {
		cfg.TimestampFormat = *fc.TimestampFormat
	}
	if fc.NoColor != nil {
		cfg.NoColor = *fc.NoColor
	}
	if fc.IncludeCaller != nil {
		cfg.IncludeCaller = *fc.IncludeCaller
	}
	return cfg
}
