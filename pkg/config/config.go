package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort      string
	GCloudProject   string
	Environment     string
	CredentialsFile string
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		GCloudProject:   getEnv("GCLOUD_PROJECT_ID", ""),
		Environment:     getEnv("ENVIRONMENT", "development"),
		CredentialsFile: getEnv("GCLOUD_CREDENTIALS_FILE", ""),
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
