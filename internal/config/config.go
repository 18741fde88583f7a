package config

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	AppPort         int    `mapstructure:"APP_PORT"`
	DatabasePath    string `mapstructure:"DATABASE_PATH"`
	StoreBackend    string `mapstructure:"STORE_BACKEND"`
	RedisAddr       string `mapstructure:"REDIS_ADDR"`
	Generator       string `mapstructure:"GENERATOR"`
	GeneratorURL    string `mapstructure:"GENERATOR_URL"`
	ReplyMinDelayMs int    `mapstructure:"REPLY_MIN_DELAY_MS"`
	ReplyMaxDelayMs int    `mapstructure:"REPLY_MAX_DELAY_MS"`
	LoginCode       string `mapstructure:"LOGIN_CODE"`
	LogLevel        string `mapstructure:"LOG_LEVEL"`
}

func LoadConfig() (*Config, error) {
	viper.SetDefault("APP_PORT", 8000)
	viper.SetDefault("DATABASE_PATH", "./data/spark.db")
	viper.SetDefault("STORE_BACKEND", "sqlite")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("GENERATOR", "mock")
	viper.SetDefault("GENERATOR_URL", "http://localhost:11434")
	viper.SetDefault("REPLY_MIN_DELAY_MS", 1000)
	viper.SetDefault("REPLY_MAX_DELAY_MS", 3000)
	viper.SetDefault("LOGIN_CODE", "123456")
	viper.SetDefault("LOG_LEVEL", "INFO")

	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./backend")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
