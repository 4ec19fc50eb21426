package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/warblehq/warbler/backend/pkg/logger"
)

type Config struct {
	Port            string
	Env             string
	PostgresConnStr string
	JWTSecret       string
	BcryptCost      int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		logger.Log.Info("No .env file found, assuming environment variables are set.")
	}

	return &Config{
		Port:            getEnv("PORT", "8080"),
		Env:             getEnv("ENV", "development"),
		PostgresConnStr: getEnv("POSTGRES_CONN_STR", ""),
		JWTSecret:       getEnv("JWT_SECRET", "supersecretjwtkey"),
		BcryptCost:      getEnvInt("BCRYPT_COST", 0),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
