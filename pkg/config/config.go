// Package config loads the CLI settings from flags and an optional YAML
// config file.
package config

import (
	"log/slog"

	"github.com/Manu343726/sizeof/pkg/logging"
	"github.com/Manu343726/sizeof/pkg/memory"
	"github.com/Manu343726/sizeof/pkg/report"
	"github.com/spf13/viper"
)

// Config keys
const (
	KeyMethod   = "method"
	KeyFormat   = "format"
	KeyLogLevel = "log.level"
	KeyLogFile  = "log.file"
)

type Log struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

type Config struct {
	Method string `mapstructure:"method"`
	Format string `mapstructure:"format"`
	Log    Log    `mapstructure:"log"`
}

// Registers the default value of every key
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyMethod, string(memory.MethodSizeof))
	v.SetDefault(KeyFormat, string(report.FormatText))
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyLogFile, "")
}

// Reads the config file into v. An empty file means no config file: the
// settings then come from flags and defaults only. Returns the path of the
// file used, if any.
func ReadFile(v *viper.Viper, file string) (string, error) {
	if file == "" {
		return "", nil
	}

	v.SetConfigFile(file)

	if err := v.ReadInConfig(); err != nil {
		return "", err
	}

	return v.ConfigFileUsed(), nil
}

// Decodes and validates the settings held by v
func Load(v *viper.Viper) (Config, error) {
	var cfg Config

	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if _, err := memory.ParseMethod(c.Method); err != nil {
		return err
	}

	if _, err := report.ParseFormat(c.Format); err != nil {
		return err
	}

	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return err
	}

	return nil
}

// The configured size computation method
func (c *Config) SizeMethod() memory.Method {
	method, _ := memory.ParseMethod(c.Method)
	return method
}

// The configured report format
func (c *Config) ReportFormat() report.Format {
	format, _ := report.ParseFormat(c.Format)
	return format
}

// The configured log level
func (c *Config) LogLevel() slog.Level {
	level, _ := logging.ParseLevel(c.Log.Level)
	return level
}
