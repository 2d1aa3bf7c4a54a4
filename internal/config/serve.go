package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

// ServeConfig holds the settings of the HTTP server.
type ServeConfig struct {
	Addr         string        `mapstructure:"CAREBALANCE_ADDR"`
	LogFormat    string        `mapstructure:"CAREBALANCE_LOG_FORMAT"`
	LogLevel     string        `mapstructure:"CAREBALANCE_LOG_LEVEL"`
	ReadTimeout  time.Duration `mapstructure:"CAREBALANCE_READ_TIMEOUT"`
	WriteTimeout time.Duration `mapstructure:"CAREBALANCE_WRITE_TIMEOUT"`
}

// LoadServe reads server settings from the environment and an optional .env file.
func LoadServe() (*ServeConfig, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	v.SetDefault("CAREBALANCE_ADDR", ":8080")
	v.SetDefault("CAREBALANCE_LOG_FORMAT", "json")
	v.SetDefault("CAREBALANCE_LOG_LEVEL", "info")
	v.SetDefault("CAREBALANCE_READ_TIMEOUT", "10s")
	v.SetDefault("CAREBALANCE_WRITE_TIMEOUT", "10s")

	v.BindEnv("CAREBALANCE_ADDR")
	v.BindEnv("CAREBALANCE_LOG_FORMAT")
	v.BindEnv("CAREBALANCE_LOG_LEVEL")
	v.BindEnv("CAREBALANCE_READ_TIMEOUT")
	v.BindEnv("CAREBALANCE_WRITE_TIMEOUT")

	if err := v.ReadInConfig(); err != nil && !optionalConfigMissing(err) {
		return nil, fmt.Errorf("read .env: %w", err)
	}

	cfg := &ServeConfig{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal serve config: %w", err)
	}
	if cfg.Addr == "" {
		return nil, fmt.Errorf("CAREBALANCE_ADDR must not be empty")
	}
	return cfg, nil
}

// optionalConfigMissing reports whether err only says the .env file is absent.
func optionalConfigMissing(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
}
