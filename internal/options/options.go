// Package options provides the generic functional-option plumbing shared by
// the configurable packages in this module.
package options

// Option configures a target of type T and may reject an invalid setting.
type Option[T any] func(T) error

// NoError adapts a setter that cannot fail into an Option.
func NoError[T any](fn func(T)) Option[T] {
	return func(target T) error {
		fn(target)
		return nil
	}
}

// Apply runs the options against the target in order, stopping at the first
// error.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if err := opt(target); err != nil {
			return err
		}
	}

	return nil
}
