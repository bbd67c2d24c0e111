// Package config loads typed configuration from environment variables.
//
// It combines github.com/joho/godotenv, which reads optional .env files into
// the process environment, with github.com/caarlos0/env/v11, which parses the
// environment into structs annotated with `env` and `envDefault` tags.
//
//	type Settings struct {
//	    LogLevel string        `env:"FORMKIT_LOG_LEVEL" envDefault:"info"`
//	    Timeout  time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"30s"`
//	}
//
//	var s Settings
//	if err := config.Load(&s); err != nil {
//	    log.Fatal(err)
//	}
//
// Each configuration type is parsed once and cached for the life of the
// process; LoadEnv and ResetCache drop the cache so tests and CLIs that read
// an explicit env file see fresh values.
//
// Errors wrap ErrParsingConfig, ErrLoadingEnvFile or ErrNilPointer and can be
// checked with errors.Is.
package config
