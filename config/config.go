package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration.
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	ServerPort  string `mapstructure:"SERVER_PORT"`

	// Database
	DBHost     string `mapstructure:"DB_HOST"`
	DBPort     string `mapstructure:"DB_PORT"`
	DBUser     string `mapstructure:"DB_USER"`
	DBPassword string `mapstructure:"DB_PASSWORD"`
	DBName     string `mapstructure:"DB_NAME"`

	// Redis
	RedisHost     string `mapstructure:"REDIS_HOST"`
	RedisPort     string `mapstructure:"REDIS_PORT"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`

	// Groq API
	GroqAPIKey      string `mapstructure:"GROQ_API_KEY"`
	GroqAPIEndpoint string `mapstructure:"GROQ_API_ENDPOINT"`
	GroqModel       string `mapstructure:"GROQ_MODEL"`

	// JWT
	JWTSecret string `mapstructure:"JWT_SECRET"`
}

// LoadConfig reads configuration from a .env file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	viper.SetDefault("SERVER_PORT", "5000")
	viper.SetDefault("GROQ_API_ENDPOINT", "https://api.groq.com/openai/v1")
	viper.SetDefault("GROQ_MODEL", "llama-3.3-70b-versatile")

	viper.AutomaticEnv()

	err = viper.ReadInConfig()
	if err != nil {
		// A missing config file is fine, values come from the environment.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
		err = nil
	}

	err = viper.Unmarshal(&config)
	return
}

// GetDBConnString returns the MySQL DSN.
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

// GetRedisConnString returns the Redis address.
func (c *Config) GetRedisConnString() string {
	return fmt.Sprintf("%s:%s", c.RedisHost, c.RedisPort)
}
