package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Storage   StorageConfig
	JWT       JWTConfig
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	CORS      CORSConfig
	Log       LogConfig
}

type ServerConfig struct {
	Port           int `mapstructure:"port"`
	TimeoutSeconds int `mapstructure:"timeoutSeconds"`
}

type StorageConfig struct {
	Dir string `mapstructure:"dir"`
}

type JWTConfig struct {
	Secret      string `mapstructure:"secret"`
	ExpiryHours int    `mapstructure:"expiry_hours"`
}

type RateLimitConfig struct {
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	Burst             int     `mapstructure:"burst"`
}

type CORSConfig struct {
	Origins []string `mapstructure:"origins"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// envOverrides are applied on top of the config file, so deployments can
// tweak settings without shipping a new YAML.
type envOverrides struct {
	Port      int    `envconfig:"PORT"`
	DataDir   string `envconfig:"DATA_DIR"`
	JWTSecret string `envconfig:"JWT_SECRET"`
	LogLevel  string `envconfig:"LOG_LEVEL"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.timeoutSeconds", 30)
	viper.SetDefault("storage.dir", "data")
	viper.SetDefault("jwt.secret", "dev-secret-change-me")
	viper.SetDefault("jwt.expiry_hours", 24)
	viper.SetDefault("rate_limit.requests_per_second", 100)
	viper.SetDefault("rate_limit.burst", 200)
	viper.SetDefault("log.level", "info")

	if err := viper.ReadInConfig(); err != nil {
		// a missing config file falls back to defaults + env
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	var env envOverrides
	if err := envconfig.Process("carelink", &env); err != nil {
		return nil, fmt.Errorf("failed to read environment overrides: %w", err)
	}
	if env.Port != 0 {
		config.Server.Port = env.Port
	}
	if env.DataDir != "" {
		config.Storage.Dir = env.DataDir
	}
	if env.JWTSecret != "" {
		config.JWT.Secret = env.JWTSecret
	}
	if env.LogLevel != "" {
		config.Log.Level = env.LogLevel
	}

	return &config, nil
}
