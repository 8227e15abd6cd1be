// Package openai implements the imagine provider contracts on the
// OpenAI SDK: chat completions for prompt enhancement and the Images
// API (DALL-E) for rendering.
package openai

import (
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/spetersoncode/imagine"
)

// Client wraps the OpenAI SDK to implement imagine.PromptEnhancer and
// imagine.ImageGenerator.
type Client struct {
	client     *openai.Client
	textModel  TextModel
	imageModel ImageModel
}

// New creates a new OpenAI client with the given API key.
// A missing key fails fast before any network attempt.
func New(apiKey string, opts ...ClientOption) (*Client, error) {
	if apiKey == "" {
		return nil, imagine.NewConfigError("openai", "API key is missing")
	}
	client := openai.NewClient(option.WithAPIKey(apiKey))
	c := &Client{
		client:     &client,
		textModel:  DefaultTextModel,
		imageModel: DefaultImageModel,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// ClientOption configures the OpenAI client.
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

var _ imagine.PromptEnhancer = (*Client)(nil)
var _ imagine.ImageGenerator = (*Client)(nil)
