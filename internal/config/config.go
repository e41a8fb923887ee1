// Package config loads the tokenizer gateway's configuration, following
// the viper-based loader in Conduit's internal/cli/config/config.go:
// defaults set first, then an optional YAML file, then environment
// overrides.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config is the tokenizer gateway's full runtime configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Log      LogConfig      `mapstructure:"log"`
	Tokenize TokenizeConfig `mapstructure:"tokenize"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// RedisConfig configures the per-kind token counters.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// AuthConfig configures the JWT guard on /v1/stats.
type AuthConfig struct {
	SecretKey string `mapstructure:"secret_key"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Development bool   `mapstructure:"development"`
	Level       string `mapstructure:"level"`
}

// TokenizeConfig configures the default Parse options the gateway uses
// when a request doesn't override them.
type TokenizeConfig struct {
	StickyLink bool `mapstructure:"sticky_link"`
}

// Load reads tokenizer.yml/tokenizer.yaml from the current directory if
// present, applying defaults first and environment overrides last.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("auth.secret_key", "")
	v.SetDefault("log.development", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("tokenize.sticky_link", false)

	v.SetConfigName("tokenizer")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("TOKENIZER")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", cfg.Server.Port)
	}
	return nil
}
