package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	LayoutRows        = "rows"
	LayoutColumnMajor = "column-major"

	EnvPrefix = "EUCLID"
)

type Config struct {
	LogLevel    string `mapstructure:"log_level"`
	LogEncoding string `mapstructure:"log_encoding"`
	// digits printed after the decimal point
	Precision int `mapstructure:"precision"`
	// how matrices are printed, rows or column-major
	Layout string `mapstructure:"layout"`
	// CLI angles are given in degree
	Degrees bool `mapstructure:"degrees"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "info")
	v.SetDefault("log_encoding", "console")
	v.SetDefault("precision", 4)
	v.SetDefault("layout", LayoutRows)
	v.SetDefault("degrees", false)
}

// Load reads cfgFile if given, otherwise an optional euclid.yaml in the working directory.
// EUCLID_* environment variables override file values.
func Load(v *viper.Viper, cfgFile string) (*Config, error) {
	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("euclid")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &config, nil
}

func validate(c *Config) error {
	if c.Precision < 0 || c.Precision > 17 {
		return fmt.Errorf("precision %d outside [0, 17]", c.Precision)
	}
	if c.Layout != LayoutRows && c.Layout != LayoutColumnMajor {
		return fmt.Errorf("unknown layout %q", c.Layout)
	}
	return nil
}
