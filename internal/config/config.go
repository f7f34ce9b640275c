package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

var (
	// ErrEnvFileNotFound is returned when the .env file is not found
	ErrEnvFileNotFound = errors.New(".env file not found")

	// loadOnce ensures .env is loaded only once
	loadOnce sync.Once
)

// LoadEnv loads environment variables from the .env file. Variables already
// present in the environment keep their values.
func LoadEnv() error {
	var err error
	loadOnce.Do(func() {
		if loadErr := godotenv.Load(); loadErr != nil {
			if os.IsNotExist(loadErr) {
				err = ErrEnvFileNotFound
				return
			}
			err = fmt.Errorf("error loading .env file: %w", loadErr)
		}
	})
	return err
}

// Get retrieves an environment variable with a fallback value
func Get(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

// MustGet retrieves an environment variable or returns an error if it's not set.
// Used for settings without which the service cannot start.
func MustGet(key string) (string, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return "", fmt.Errorf("required environment variable %s is not set", key)
	}
	return value, nil
}

// GetInt retrieves an integer environment variable with a fallback value
func GetInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if result, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
			return result
		}
	}
	return fallback
}

// GetFloat retrieves a float environment variable with a fallback value
func GetFloat(key string, fallback float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if result, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err == nil {
			return result
		}
	}
	return fallback
}

// GetBool retrieves a boolean environment variable with a fallback value
func GetBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		value = strings.ToLower(value)
		if value == "true" || value == "1" || value == "yes" || value == "y" {
			return true
		}
		if value == "false" || value == "0" || value == "no" || value == "n" {
			return false
		}
	}
	return fallback
}
