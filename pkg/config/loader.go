package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Load populates v from the environment after loading .env files.
//
// With no paths the default .env file is loaded when present; a missing file
// is not an error. Explicit paths must all exist.
//
// Example:
//
//	type LogConfig struct {
//		Level  string `env:"LOG_LEVEL" envDefault:"info"`
//		Format string `env:"LOG_FORMAT" envDefault:"text"`
//	}
//
//	var cfg LogConfig
//	err := config.Load(&cfg, "testdata/.env")
func Load[T any](v *T, paths ...string) error {
	if v == nil {
		return ErrNilPointer
	}

	if len(paths) == 0 {
		// The default .env file is optional.
		_ = godotenv.Load()
	} else if err := godotenv.Load(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
// This is useful for configurations that are required for the application to start.
func MustLoad[T any](v *T, paths ...string) {
	if err := Load(v, paths...); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}
