package imagine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDataURI(t *testing.T) {
	t.Run("encodes bytes with mime type", func(t *testing.T) {
		uri := EncodeDataURI([]byte("abc"), "image/jpeg")
		assert.Equal(t, "data:image/jpeg;base64,YWJj", uri)
	})

	t.Run("defaults mime type to png", func(t *testing.T) {
		uri := EncodeDataURI([]byte("abc"), "")
		assert.Equal(t, "data:image/png;base64,YWJj", uri)
	})
}

func TestDecodeDataURI(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		uri := EncodeDataURI([]byte("payload"), "image/webp")
		data, mimeType, err := DecodeDataURI(uri)
		require.NoError(t, err)
		assert.Equal(t, []byte("payload"), data)
		assert.Equal(t, "image/webp", mimeType)
	})

	t.Run("rejects non data URIs", func(t *testing.T) {
		_, _, err := DecodeDataURI("https://example.com/image.png")
		assert.Error(t, err)
	})

	t.Run("rejects missing payload", func(t *testing.T) {
		_, _, err := DecodeDataURI("data:image/png;base64")
		assert.Error(t, err)
	})

	t.Run("rejects non-base64 encodings", func(t *testing.T) {
		_, _, err := DecodeDataURI("data:text/plain,hello")
		assert.Error(t, err)
	})

	t.Run("rejects invalid base64", func(t *testing.T) {
		_, _, err := DecodeDataURI("data:image/png;base64,!!!")
		assert.Error(t, err)
	})
}
