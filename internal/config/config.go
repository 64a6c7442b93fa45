package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Storage backend selectors. The backend is an explicit configuration value
// consumed by the composition root; nothing reads it after startup.
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
)

type Config struct {
	HTTPPort       string
	StorageBackend string
	MemorySeedFile string

	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string
}

func ProcessEnvironmentVariables() (*Config, error) {
	// Optional .env for local development; absence is not an error.
	_ = godotenv.Load()

	// In all cases the default behavior should be for the docker compose setup
	env := Config{
		HTTPPort:         "9446",
		StorageBackend:   BackendMemory,
		PostgresAddress:  "localhost",
		PostgresPort:     "5433",
		PostgresDB:       "postgres",
		PostgresUsername: "postgres",
		PostgresPassword: "testpassword",
	}

	envHTTPPort := os.Getenv("HTTP_PORT")
	envStorageBackend := os.Getenv("STORAGE_BACKEND")
	envMemorySeedFile := os.Getenv("MEMORY_SEED_FILE")
	envPostgresAddress := os.Getenv("POSTGRES_ADDRESS")
	envPostgresPort := os.Getenv("POSTGRES_PORT")
	envPostgresDB := os.Getenv("POSTGRES_DB")
	envPostgresUsername := os.Getenv("POSTGRES_USERNAME")
	envPostgresPassword := os.Getenv("POSTGRES_PASSWORD")

	if len(envHTTPPort) != 0 {
		env.HTTPPort = envHTTPPort
	}

	if len(envStorageBackend) != 0 {
		env.StorageBackend = envStorageBackend
	}

	if len(envMemorySeedFile) != 0 {
		env.MemorySeedFile = envMemorySeedFile
	}

	if len(envPostgresAddress) != 0 {
		env.PostgresAddress = envPostgresAddress
	}

	if len(envPostgresPort) != 0 {
		env.PostgresPort = envPostgresPort
	}

	if len(envPostgresDB) != 0 {
		env.PostgresDB = envPostgresDB
	}

	if len(envPostgresUsername) != 0 {
		env.PostgresUsername = envPostgresUsername
	}

	if len(envPostgresPassword) != 0 {
		env.PostgresPassword = envPostgresPassword
	}

	if env.StorageBackend != BackendMemory && env.StorageBackend != BackendPostgres {
		return nil, fmt.Errorf("unknown STORAGE_BACKEND %q", env.StorageBackend)
	}

	return &env, nil
}
