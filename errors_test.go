package imagine

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigError(t *testing.T) {
	t.Run("names the provider", func(t *testing.T) {
		err := NewConfigError("google", "API key is missing")
		assert.Equal(t, "google: API key is missing", err.Error())
	})

	t.Run("provider optional", func(t *testing.T) {
		err := &ConfigError{Msg: "no credential"}
		assert.Equal(t, "no credential", err.Error())
	})

	t.Run("detected through wrapping", func(t *testing.T) {
		err := fmt.Errorf("starting up: %w", NewConfigError("openai", "API key is missing"))
		assert.True(t, IsConfig(err))
		assert.False(t, IsRemote(err))
	})
}

func TestRemoteError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewRemoteError("google", "generate", cause)

	t.Run("formats provider and op", func(t *testing.T) {
		assert.Equal(t, "google generate error: connection refused", err.Error())
	})

	t.Run("unwraps to cause", func(t *testing.T) {
		assert.True(t, errors.Is(err, cause))
	})

	t.Run("detected through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("session: %w", err)
		assert.True(t, IsRemote(wrapped))
		assert.False(t, IsConfig(wrapped))
	})
}

func TestPersistenceError(t *testing.T) {
	cause := errors.New("disk full")
	err := &PersistenceError{Op: "save", Err: cause}

	assert.Equal(t, "history save error: disk full", err.Error())
	assert.True(t, errors.Is(err, cause))
	assert.True(t, IsPersistence(err))
	assert.False(t, IsRemote(err))
}
