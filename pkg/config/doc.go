// Package config loads typed configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - Load parses the environment into any struct annotated with `env` tags,
//     reading the default `.env` file once per process if it exists.
//   - Each configuration type is parsed once and cached by value.
//   - LoadEnv reads additional .env files; later files win.
//   - MustLoad and MustLoadEnv panic on failure.
//   - ResetCache and ForceReloadConfig re-read the environment, mostly in tests.
//
// # Usage
//
//	type Config struct {
//	    MaxDepth  int    `env:"FORMGUARD_MAX_DEPTH" envDefault:"100"`
//	    SchemaDir string `env:"FORMGUARD_SCHEMA_DIR"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// Subsequent calls with the same type are served from the cache.
//
// # Error Handling
//
// Sentinel errors can be compared with `errors.Is`:
//
//   - `ErrParsingConfig` – env vars could not be parsed into the struct.
//   - `ErrConfigNotLoaded` – the type was not cached after parsing.
//   - `ErrNilPointer` – nil pointer passed to Load.
//   - `ErrLoadingEnvFile` – an .env file could not be read.
package config
