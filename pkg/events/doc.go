// Package events provides an in-process publish/subscribe registry with named
// channels and synchronous fan-out.
//
// A Registry keeps, per channel, an ordered list of callbacks. Subscribe
// appends a callback and returns a Handle; Unsubscribe removes exactly the
// subscription a handle names; Publish calls every current subscriber of a
// channel, in subscription order, before returning.
//
// # Usage
//
//	reg := events.New[string]()
//
//	h, err := reg.Subscribe("orders", func(ctx context.Context, id string) error {
//		fmt.Println("order placed:", id)
//		return nil
//	})
//	if err != nil {
//		return err
//	}
//	defer reg.Unsubscribe(h)
//
//	if err := reg.Publish(ctx, "orders", "ord_42"); err != nil {
//		return err
//	}
//
// # Handles
//
// Handles are unique across the registry, not only within a channel, so
// Unsubscribe needs nothing but the handle. UUIDHandles is the default;
// SequentialHandles issues an increasing counter and is convenient in tests.
// Unknown or already removed handles are ignored.
//
// # Error Handling
//
// With PolicyPropagate (the default) the first callback returning an error
// stops the fan-out, and Publish returns that error wrapped in a
// *SubscriberError. A panicking callback panics through Publish.
//
// With PolicyIsolate every subscriber is called regardless of failures.
// Errors and recovered panics (ErrSubscriberPanic) are logged, passed to the
// ErrorHandler if one is set, and returned joined after the fan-out.
//
// Publishing to a channel nobody subscribed to is not an error.
//
// # Concurrency
//
// All methods are safe for concurrent use. Publish delivers a snapshot of the
// subscriber list taken when it starts, without holding any lock while
// callbacks run, so callbacks may subscribe or unsubscribe freely; such
// changes apply from the next Publish. A callback that blocks blocks Publish.
//
// # Default registry
//
// Default returns a process-wide Registry[any] created once on first access.
// The package-level Subscribe, Unsubscribe and Publish functions use it.
package events
