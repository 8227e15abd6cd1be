package google

import (
	"context"
	"encoding/base64"
	"testing"

	"github.com/spetersoncode/imagine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_MissingKey(t *testing.T) {
	_, err := New(context.Background(), "")
	require.Error(t, err)
	assert.True(t, imagine.IsConfig(err))
}

func TestReferenceParts(t *testing.T) {
	t.Run("converts to inline blobs", func(t *testing.T) {
		refs := []imagine.ReferenceImage{
			{
				Data:     base64.StdEncoding.EncodeToString([]byte("one")),
				MimeType: "image/png",
			},
			{
				Data:     base64.StdEncoding.EncodeToString([]byte("two")),
				MimeType: "image/jpeg",
			},
		}
		parts := referenceParts(refs)
		require.Len(t, parts, 2)
		assert.Equal(t, []byte("one"), parts[0].InlineData.Data)
		assert.Equal(t, "image/png", parts[0].InlineData.MIMEType)
		assert.Equal(t, "image/jpeg", parts[1].InlineData.MIMEType)
	})

	t.Run("skips undecodable entries", func(t *testing.T) {
		refs := []imagine.ReferenceImage{
			{Data: "!!! not base64 !!!", MimeType: "image/png"},
			{Data: base64.StdEncoding.EncodeToString([]byte("ok")), MimeType: "image/png"},
		}
		parts := referenceParts(refs)
		require.Len(t, parts, 1)
		assert.Equal(t, []byte("ok"), parts[0].InlineData.Data)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, referenceParts(nil))
	})
}
