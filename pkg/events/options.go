package events

import (
	"context"
	"fmt"
	"log/slog"
)

// ErrorPolicy decides what Publish does when a subscriber fails.
type ErrorPolicy int

const (
	// PolicyPropagate stops the fan-out at the first failing subscriber and
	// returns its error. Panics are not recovered.
	PolicyPropagate ErrorPolicy = iota
	// PolicyIsolate runs every subscriber, recovering panics, and returns all
	// failures joined once the fan-out is complete.
	PolicyIsolate
)

func (p ErrorPolicy) String() string {
	switch p {
	case PolicyPropagate:
		return "propagate"
	case PolicyIsolate:
		return "isolate"
	default:
		return fmt.Sprintf("ErrorPolicy(%d)", int(p))
	}
}

func (p ErrorPolicy) LogValue() slog.Value {
	return slog.StringValue(p.String())
}

// ParseErrorPolicy maps "propagate" and "isolate" to their policies.
func ParseErrorPolicy(s string) (ErrorPolicy, error) {
	switch s {
	case "propagate", "":
		return PolicyPropagate, nil
	case "isolate":
		return PolicyIsolate, nil
	default:
		return 0, fmt.Errorf("%w: unknown error policy %q", ErrInvalidConfig, s)
	}
}

// ErrorHandler observes subscriber failures under PolicyIsolate.
type ErrorHandler func(ctx context.Context, err *SubscriberError)

// Option configures a Registry.
type Option func(*options)

type options struct {
	logger          *slog.Logger
	generator       HandleGenerator
	policy          ErrorPolicy
	onError         ErrorHandler
	metricsCallback func(channel string, subscribers int)
}

func defaultOptions() *options {
	return &options{
		logger:    slog.New(slog.DiscardHandler),
		generator: UUIDHandles(),
		policy:    PolicyPropagate,
	}
}

// WithLogger sets the logger used for subscription lifecycle and isolated
// failures. Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithHandleGenerator replaces the default UUID generator. Nil is ignored.
func WithHandleGenerator(g HandleGenerator) Option {
	return func(o *options) {
		if g != nil {
			o.generator = g
		}
	}
}

func WithErrorPolicy(p ErrorPolicy) Option {
	return func(o *options) { o.policy = p }
}

// WithErrorHandler registers a hook invoked for each failure under PolicyIsolate.
func WithErrorHandler(h ErrorHandler) Option {
	return func(o *options) { o.onError = h }
}

// WithMetricsCallback is called with the channel's subscriber count after
// every subscribe and unsubscribe.
func WithMetricsCallback(fn func(channel string, subscribers int)) Option {
	return func(o *options) { o.metricsCallback = fn }
}
