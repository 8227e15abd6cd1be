package imagine

import (
	"errors"
	"fmt"
)

// ConfigError indicates a missing or unusable credential. It is raised
// synchronously before any network attempt and is not retried.
type ConfigError struct {
	Provider string // "google", "openai", "anthropic"
	Msg      string
}

// Error returns the error message.
func (e *ConfigError) Error() string {
	if e.Provider != "" {
		return fmt.Sprintf("%s: %s", e.Provider, e.Msg)
	}
	return e.Msg
}

// NewConfigError creates a configuration error for the given provider.
func NewConfigError(provider, msg string) *ConfigError {
	return &ConfigError{Provider: provider, Msg: msg}
}

// RemoteError wraps a transport or service failure from a model
// endpoint. It is surfaced to the user as a dismissible message and is
// never retried automatically.
type RemoteError struct {
	Provider string // which backend failed
	Op       string // "enhance" or "generate"
	Err      error  // underlying error
}

// Error returns a formatted message describing the remote failure.
func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s %s error: %v", e.Provider, e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *RemoteError) Unwrap() error {
	return e.Err
}

// NewRemoteError wraps err as a remote failure of op against provider.
func NewRemoteError(provider, op string, err error) *RemoteError {
	return &RemoteError{Provider: provider, Op: op, Err: err}
}

// PersistenceError wraps a local storage failure. The history cache
// absorbs these; they never reach session state.
type PersistenceError struct {
	Op  string // "load", "save" or "clear"
	Err error
}

// Error returns a formatted message describing the storage failure.
func (e *PersistenceError) Error() string {
	return fmt.Sprintf("history %s error: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// IsConfig returns true if the error or any wrapped error is a
// configuration error.
func IsConfig(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}

// IsRemote returns true if the error or any wrapped error is a remote
// service failure.
func IsRemote(err error) bool {
	var re *RemoteError
	return errors.As(err, &re)
}

// IsPersistence returns true if the error or any wrapped error is a
// local storage failure.
func IsPersistence(err error) bool {
	var pe *PersistenceError
	return errors.As(err, &pe)
}
