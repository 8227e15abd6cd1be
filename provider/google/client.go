// Package google implements the imagine provider contracts on the
// Google GenAI SDK. It is the reference backend: Gemini Flash for
// prompt enhancement and Gemini Flash Image for rendering.
package google

import (
	"context"

	"github.com/spetersoncode/imagine"
	"google.golang.org/genai"
)

// Client wraps the Google GenAI SDK to implement
// imagine.PromptEnhancer and imagine.ImageGenerator.
type Client struct {
	client     *genai.Client
	textModel  TextModel
	imageModel ImageModel
}

// New creates a new Google GenAI client with the given API key.
// A missing key fails fast before any network attempt.
func New(ctx context.Context, apiKey string, opts ...ClientOption) (*Client, error) {
	if apiKey == "" {
		return nil, imagine.NewConfigError("google", "API key is missing")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	c := &Client{
		client:     client,
		textModel:  DefaultTextModel,
		imageModel: DefaultImageModel,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// ClientOption configures the Google client.
type ClientOption func(*Client)

// WithTextModel sets the model used for prompt enhancement.
func WithTextModel(model TextModel) ClientOption {
	return func(c *Client) {
		c.textModel = model
	}
}

// WithImageModel sets the model used for image generation.
func WithImageModel(model ImageModel) ClientOption {
	return func(c *Client) {
		c.imageModel = model
	}
}

// referenceParts converts attached reference images into inline data
// parts. Entries whose base64 payload does not decode are skipped.
func referenceParts(refs []imagine.ReferenceImage) []*genai.Part {
	parts := make([]*genai.Part, 0, len(refs))
	for _, ref := range refs {
		data, err := ref.Bytes()
		if err != nil {
			continue
		}
		parts = append(parts, &genai.Part{
			InlineData: &genai.Blob{
				MIMEType: ref.MimeType,
				Data:     data,
			},
		})
	}
	return parts
}

var _ imagine.PromptEnhancer = (*Client)(nil)
var _ imagine.ImageGenerator = (*Client)(nil)
