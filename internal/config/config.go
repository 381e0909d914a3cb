package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	DBHost     string
	DBPort     int
	DBUser     string
	DBPassword string
	DBName     string

	// DatabaseURL, when set, overrides the DB_* fields.
	DatabaseURL string

	OpenAIKey     string
	OpenAIModel   string
	OpenAIBaseURL string

	Port       string
	AuthSecret string

	// GenWorkers bounds how many employees the bulk endpoints
	// process at once. 1 keeps generation strictly sequential.
	GenWorkers int
}

func Load() *Config {
	return &Config{
		DBHost:     getenv("DB_HOST", "localhost"),
		DBPort:     envInt("DB_PORT", 5432),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),

		DatabaseURL: os.Getenv("DATABASE_URL"),

		OpenAIKey:     os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:   getenv("OPENAI_MODEL", "gpt-4"),
		OpenAIBaseURL: getenv("OPENAI_BASE_URL", "https://api.openai.com/v1"),

		Port:       getenv("PORT", "8080"),
		AuthSecret: os.Getenv("AUTH_SECRET"),

		GenWorkers: envInt("GEN_WORKERS", 1),
	}
}

func (c *Config) ConnString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName,
	)
}

func getenv(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func envInt(k string, def int) int {
	v, err := strconv.Atoi(os.Getenv(k))
	if err != nil {
		return def
	}
	return v
}
