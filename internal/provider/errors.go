package provider

import (
	"errors"
	"fmt"
)

// ErrUnknownBackend is returned by the factory for an unrecognized
// DATA_PROVIDER value.
var ErrUnknownBackend = errors.New("unknown data provider backend")

// NotConfiguredError reports an operation against a backend that is selected
// but not wired to its store. It always names the backend and points the
// operator at the setup documentation, so "backend missing" is never
// mistaken for "no data".
type NotConfiguredError struct {
	Backend   string
	Operation string
}

func (e *NotConfiguredError) Error() string {
	return fmt.Sprintf("%s provider is not configured (operation %s): see docs/PROVIDERS.md for setup",
		e.Backend, e.Operation)
}

// IsNotConfigured reports whether err is a backend-not-configured failure.
func IsNotConfigured(err error) bool {
	var nce *NotConfiguredError
	return errors.As(err, &nce)
}
