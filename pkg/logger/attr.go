package logger

import (
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error records err under the key "error".
// A nil error yields an empty Attr, which slog drops.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Errors groups the non-nil errors under "errors", keyed by their position.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Channel records an event channel name under "channel".
func Channel(name string) slog.Attr {
	return slog.String("channel", name)
}

// Handle records a subscription handle under "handle".
// Accepts any string-kinded handle type.
func Handle[H ~string](h H) slog.Attr {
	return slog.String("handle", string(h))
}

// Subscribers records a subscriber count under "subscribers".
func Subscribers(n int) slog.Attr {
	return slog.Int("subscribers", n)
}

// Payload records a published payload under "payload".
func Payload(v any) slog.Attr {
	return slog.Any("payload", v)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}
