package events

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/dmitrymomot/subject/pkg/logger"
)

// Callback handles a payload published on a channel.
type Callback[T any] func(ctx context.Context, payload T) error

type subscription[T any] struct {
	handle   Handle
	callback Callback[T]
}

// Registry decouples publishers from subscribers through named channels.
// Delivery is synchronous: Publish returns once every subscriber has been called.
// All methods are safe for concurrent use.
type Registry[T any] struct {
	mu       sync.RWMutex
	channels map[string][]subscription[T]
	owners   map[Handle]string // handle -> channel name
	opts     *options
}

// New creates an empty registry.
func New[T any](opts ...Option) *Registry[T] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return &Registry[T]{
		channels: make(map[string][]subscription[T]),
		owners:   make(map[Handle]string),
		opts:     o,
	}
}

// Subscribe appends cb to the channel's subscriber list, creating the channel
// on first use, and returns a handle that removes exactly this subscription.
func (r *Registry[T]) Subscribe(channel string, cb Callback[T]) (Handle, error) {
	if channel == "" {
		return "", ErrEmptyChannel
	}
	if cb == nil {
		return "", ErrNilCallback
	}

	h := r.opts.generator()

	r.mu.Lock()
	if _, taken := r.owners[h]; taken || h == "" {
		r.mu.Unlock()
		return "", fmt.Errorf("%w: %q", ErrDuplicateHandle, h)
	}
	r.channels[channel] = append(r.channels[channel], subscription[T]{handle: h, callback: cb})
	r.owners[h] = channel
	count := len(r.channels[channel])
	r.mu.Unlock()

	r.opts.logger.Debug("subscribed",
		logger.Channel(channel),
		logger.Handle(h),
		logger.Subscribers(count),
	)
	if r.opts.metricsCallback != nil {
		r.opts.metricsCallback(channel, count)
	}

	return h, nil
}

// Unsubscribe removes the subscription identified by h.
// Unknown or already removed handles are ignored; the result reports whether
// anything was removed. The channel itself stays registered even when empty.
func (r *Registry[T]) Unsubscribe(h Handle) bool {
	r.mu.Lock()
	channel, ok := r.owners[h]
	if !ok {
		r.mu.Unlock()
		return false
	}
	delete(r.owners, h)

	subs := r.channels[channel]
	idx := slices.IndexFunc(subs, func(s subscription[T]) bool { return s.handle == h })
	if idx >= 0 {
		subs = slices.Delete(subs, idx, idx+1)
	}
	r.channels[channel] = subs
	count := len(subs)
	r.mu.Unlock()

	r.opts.logger.Debug("unsubscribed",
		logger.Channel(channel),
		logger.Handle(h),
		logger.Subscribers(count),
	)
	if r.opts.metricsCallback != nil {
		r.opts.metricsCallback(channel, count)
	}

	return true
}

// Publish calls every current subscriber of channel with payload, in
// subscription order, on the caller's goroutine. Publishing to an unknown or
// empty channel is a no-op.
//
// Subscriptions added or removed by a callback apply from the next Publish.
// Failure handling follows the registry's ErrorPolicy.
func (r *Registry[T]) Publish(ctx context.Context, channel string, payload T) error {
	r.mu.RLock()
	subs := slices.Clone(r.channels[channel])
	r.mu.RUnlock()

	if len(subs) == 0 {
		return nil
	}

	if r.opts.policy == PolicyIsolate {
		return r.fanOutIsolated(ctx, channel, subs, payload)
	}

	for _, s := range subs {
		if err := s.callback(ctx, payload); err != nil {
			return &SubscriberError{Channel: channel, Handle: s.handle, Err: err}
		}
	}
	return nil
}

func (r *Registry[T]) fanOutIsolated(ctx context.Context, channel string, subs []subscription[T], payload T) error {
	var errs []error
	for _, s := range subs {
		err := invokeRecovered(ctx, s.callback, payload)
		if err == nil {
			continue
		}

		serr := &SubscriberError{Channel: channel, Handle: s.handle, Err: err}
		r.opts.logger.ErrorContext(ctx, "subscriber failed",
			logger.Channel(channel),
			logger.Handle(s.handle),
			logger.Error(err),
		)
		if r.opts.onError != nil {
			r.opts.onError(ctx, serr)
		}
		errs = append(errs, serr)
	}
	return errors.Join(errs...)
}

func invokeRecovered[T any](ctx context.Context, cb Callback[T], payload T) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: %v", ErrSubscriberPanic, rec)
		}
	}()
	return cb(ctx, payload)
}

// Channels returns the names of every channel ever subscribed to, sorted.
func (r *Registry[T]) Channels() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.channels))
	for name := range r.channels {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// SubscriberCount returns the number of live subscriptions on channel.
func (r *Registry[T]) SubscriberCount(channel string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.channels[channel])
}

// Policy reports the registry's error policy.
func (r *Registry[T]) Policy() ErrorPolicy {
	return r.opts.policy
}
