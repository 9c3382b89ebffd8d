// Package config loads configuration from environment variables and .env files.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - .env files are loaded first. Variables already present in the process
//     environment are never overwritten.
//   - The environment is then parsed into any struct using field tags.
//
// # Usage
//
//	type Config struct {
//	    Separator string `env:"SLUG_SEPARATOR" envDefault:"-"`
//	    MaxLength int    `env:"SLUG_MAX_LENGTH" envDefault:"0"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    // handle error
//	}
//
// Without explicit paths Load reads `.env` from the working directory if it
// exists. With paths, every file must exist and earlier files win.
//
// # Replacement tables
//
// LoadReplacements reads a flat YAML mapping of search strings to replacements,
// suitable for slug.CustomReplace:
//
//	"&": and
//	"@": at
//	"ß": ss
//
// # Error Handling
//
// Errors are joined with one of the package sentinels so callers can use
// errors.Is: ErrNilPointer, ErrLoadingEnvFile, ErrParsingConfig and
// ErrReadingReplacements.
package config
