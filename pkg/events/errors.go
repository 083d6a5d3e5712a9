package events

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyChannel    = errors.New("events: channel name is empty")
	ErrNilCallback     = errors.New("events: callback is nil")
	ErrDuplicateHandle = errors.New("events: handle generator produced a handle that is already in use")
	ErrSubscriberPanic = errors.New("events: subscriber panicked")
	ErrInvalidConfig   = errors.New("events: invalid configuration")
)

// SubscriberError reports a callback failure during Publish.
type SubscriberError struct {
	Channel string
	Handle  Handle
	Err     error
}

func (e *SubscriberError) Error() string {
	return fmt.Sprintf("events: subscriber %s on channel %q failed: %v", e.Handle, e.Channel, e.Err)
}

func (e *SubscriberError) Unwrap() error {
	return e.Err
}
