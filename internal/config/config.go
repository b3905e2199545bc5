package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port            string
	RedisAddress    string
	RedisPassword   string
	CacheTTL        time.Duration
	OperatorWorkers int
	MaxMonths       int
	LogLevel        string
}

func ProcessEnvironmentVariables() (*Config, error) {
	// Defaults run a single instance with an in-memory plan cache
	env := Config{
		Port:            "9446",
		RedisAddress:    "",
		CacheTTL:        time.Hour,
		OperatorWorkers: 4,
		MaxMonths:       600,
		LogLevel:        "info",
	}

	envPort := os.Getenv("PORT")
	envRedisAddress := os.Getenv("REDIS_ADDRESS")
	envRedisPassword := os.Getenv("REDIS_PASSWORD")
	envCacheTTL := os.Getenv("CACHE_TTL_SECONDS")
	envOperatorWorkers := os.Getenv("OPERATOR_WORKERS")
	envMaxMonths := os.Getenv("MAX_MONTHS")
	envLogLevel := os.Getenv("LOG_LEVEL")

	if len(envPort) != 0 {
		env.Port = envPort
	}

	if len(envRedisAddress) != 0 {
		env.RedisAddress = envRedisAddress
	}

	if len(envRedisPassword) != 0 {
		env.RedisPassword = envRedisPassword
	}

	if len(envCacheTTL) != 0 {
		seconds, err := positiveInt("CACHE_TTL_SECONDS", envCacheTTL)
		if err != nil {
			return nil, err
		}
		env.CacheTTL = time.Duration(seconds) * time.Second
	}

	if len(envOperatorWorkers) != 0 {
		workers, err := positiveInt("OPERATOR_WORKERS", envOperatorWorkers)
		if err != nil {
			return nil, err
		}
		env.OperatorWorkers = workers
	}

	if len(envMaxMonths) != 0 {
		months, err := positiveInt("MAX_MONTHS", envMaxMonths)
		if err != nil {
			return nil, err
		}
		env.MaxMonths = months
	}

	if len(envLogLevel) != 0 {
		env.LogLevel = envLogLevel
	}

	return &env, nil
}

func positiveInt(name, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	if n < 1 {
		return 0, fmt.Errorf("%s: must be positive, got %d", name, n)
	}
	return n, nil
}
