package events

import (
	"context"
	"sync"
)

var (
	defaultOnce     sync.Once
	defaultMu       sync.RWMutex
	defaultRegistry *Registry[any]
)

// Default returns the process-wide registry, creating it on first use.
func Default() *Registry[any] {
	defaultOnce.Do(func() {
		defaultMu.Lock()
		if defaultRegistry == nil {
			defaultRegistry = New[any]()
		}
		defaultMu.Unlock()
	})

	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultRegistry
}

// SetDefault replaces the process-wide registry. Nil is ignored.
func SetDefault(r *Registry[any]) {
	if r == nil {
		return
	}
	defaultOnce.Do(func() {})
	defaultMu.Lock()
	defaultRegistry = r
	defaultMu.Unlock()
}

// Subscribe registers cb on the default registry.
func Subscribe(channel string, cb Callback[any]) (Handle, error) {
	return Default().Subscribe(channel, cb)
}

// Unsubscribe removes h from the default registry.
func Unsubscribe(h Handle) bool {
	return Default().Unsubscribe(h)
}

// Publish fans payload out on the default registry.
func Publish(ctx context.Context, channel string, payload any) error {
	return Default().Publish(ctx, channel, payload)
}
