// Package config loads application configuration from environment variables
// into tagged structs, using github.com/caarlos0/env/v11 for parsing and
// github.com/joho/godotenv for .env files.
//
// Every config type is parsed once per process and cached; concurrent first
// calls block until the single parse finishes and then share its result.
//
//	type AppConfig struct {
//		Name string `env:"APP_NAME" envDefault:"subject-demo"`
//		Port int    `env:"PORT" envDefault:"8080"`
//	}
//
//	var cfg AppConfig
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// LoadEnv reads explicit .env files before the first Load. Reset clears the
// cache, which is mostly useful in tests.
package config
