package config

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	ServerPort  string `mapstructure:"SERVER_PORT"`
	DBPath      string `mapstructure:"DB_PATH"`
	LogDir      string `mapstructure:"LOG_DIR"`
}

// LoadConfig reads configuration from the environment, with an optional
// .env file in path. Every key has a default suited to local
// single-user use.
func LoadConfig(path string) (config Config, err error) {
	// .env is optional; ignore a missing file.
	_ = godotenv.Load()

	viper.AddConfigPath(path)
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("DB_PATH", "wellnesstracker.db")
	viper.SetDefault("LOG_DIR", "logs")

	viper.AutomaticEnv()

	if err = viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
		err = nil
	}

	err = viper.Unmarshal(&config)
	return
}
