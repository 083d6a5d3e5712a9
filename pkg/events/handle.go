package events

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// Handle identifies a single subscription across the whole registry.
// The zero value is never issued.
type Handle string

// HandleGenerator produces handles for new subscriptions.
// Implementations must be safe for concurrent use and must not repeat a value
// for the lifetime of the registry they are attached to.
type HandleGenerator func() Handle

// UUIDHandles returns a generator backed by random (v4) UUIDs.
func UUIDHandles() HandleGenerator {
	return func() Handle {
		return Handle(uuid.NewString())
	}
}

// SequentialHandles returns a generator issuing "1", "2", "3", ...
// Each call creates an independent counter.
func SequentialHandles() HandleGenerator {
	var seq atomic.Uint64
	return func() Handle {
		return Handle(strconv.FormatUint(seq.Add(1), 10))
	}
}
