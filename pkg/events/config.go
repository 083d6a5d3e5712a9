package events

import "fmt"

// Config holds environment-driven registry settings.
type Config struct {
	ErrorPolicy    string `env:"EVENTS_ERROR_POLICY" envDefault:"propagate"` // "propagate" or "isolate"
	HandleStrategy string `env:"EVENTS_HANDLE_STRATEGY" envDefault:"uuid"`   // "uuid" or "sequential"
}

// Options converts the config into registry options.
func (c Config) Options() ([]Option, error) {
	policy, err := ParseErrorPolicy(c.ErrorPolicy)
	if err != nil {
		return nil, err
	}

	var gen HandleGenerator
	switch c.HandleStrategy {
	case "uuid", "":
		gen = UUIDHandles()
	case "sequential":
		gen = SequentialHandles()
	default:
		return nil, fmt.Errorf("%w: unknown handle strategy %q", ErrInvalidConfig, c.HandleStrategy)
	}

	return []Option{WithErrorPolicy(policy), WithHandleGenerator(gen)}, nil
}

// NewFromConfig creates a registry from cfg. Options passed explicitly are
// applied after the config and win on conflict.
func NewFromConfig[T any](cfg Config, opts ...Option) (*Registry[T], error) {
	base, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	return New[T](append(base, opts...)...), nil
}
