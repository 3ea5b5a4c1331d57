// Package config loads run defaults from the environment and an optional .env file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables read by Load.
const (
	EnvNozzleDiameter   = "FLOWNORM_NOZZLE_DIAMETER"
	EnvFilamentDiameter = "FLOWNORM_FILAMENT_DIAMETER"
	EnvLogLevel         = "FLOWNORM_LOG_LEVEL"
	EnvDecimals         = "FLOWNORM_DECIMALS"
)

// DefaultDecimals is the feed numeral precision when nothing else is set.
const DefaultDecimals = 3

// Config holds defaults that flags and positional arguments override.
// A zero diameter means the operator is asked for it.
type Config struct {
	NozzleDiameter   float64
	FilamentDiameter float64
	LogLevel         string
	Decimals         int
}

// Load reads .env from the working directory when present, then the
// FLOWNORM_* variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	return FromEnv()
}

// FromEnv builds a Config from the process environment only.
func FromEnv() (*Config, error) {
	nozzle, err := envFloat(EnvNozzleDiameter)
	if err != nil {
		return nil, err
	}

	filament, err := envFloat(EnvFilamentDiameter)
	if err != nil {
		return nil, err
	}

	decimals := DefaultDecimals

	if raw := strings.TrimSpace(os.Getenv(EnvDecimals)); raw != "" {
		decimals, err = strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", EnvDecimals, err)
		}
	}

	return &Config{
		NozzleDiameter:   nozzle,
		FilamentDiameter: filament,
		LogLevel:         firstNonEmpty(strings.TrimSpace(os.Getenv(EnvLogLevel)), "info"),
		Decimals:         decimals,
	}, nil
}

func envFloat(key string) (float64, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return 0, nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}

	if v <= 0 {
		return 0, fmt.Errorf("%s: %v must be positive", key, v)
	}

	return v, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
