// Package environment names the application environments (development,
// staging, production) and parses them from configuration.
//
// Environment implements encoding.TextUnmarshaler, so it can be used directly
// as a field type in env-tagged config structs:
//
//	type AppConfig struct {
//		Env environment.Environment `env:"APP_ENV" envDefault:"development"`
//	}
package environment
