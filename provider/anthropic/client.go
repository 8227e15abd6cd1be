// Package anthropic implements prompt enhancement on the Anthropic SDK.
//
// Anthropic exposes no image-generation endpoint, so this backend
// implements only imagine.PromptEnhancer; pair it with the google or
// openai generator.
package anthropic

import (
	"context"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/spetersoncode/imagine"
)

// Client wraps the Anthropic SDK to implement imagine.PromptEnhancer.
type Client struct {
	client *anthropic.Client
	model  TextModel
}

// New creates a new Anthropic client with the given API key.
// A missing key fails fast before any network attempt.
func New(apiKey string, opts ...ClientOption) (*Client, error) {
	if apiKey == "" {
		return nil, imagine.NewConfigError("anthropic", "API key is missing")
	}
	client := anthropic.NewClient(option.WithAPIKey(apiKey))
	c := &Client{
		client: &client,
		model:  DefaultTextModel,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// ClientOption configures the Anthropic client.
type ClientOption func(*Client)

// WithModel sets the model used for prompt enhancement.
func WithModel(model TextModel) ClientOption {
	return func(c *Client) {
		c.model = model
	}
}

// EnhancePrompt expands the user's raw prompt into a detailed image
// description via the Messages API. Reference images ride along as
// base64 image blocks. The response text is returned verbatim.
func (c *Client) EnhancePrompt(ctx context.Context, req imagine.EnhanceRequest) (string, error) {
	blocks := []anthropic.ContentBlockParamUnion{
		anthropic.NewTextBlock(imagine.EnhanceInstruction(req)),
	}
	for _, ref := range req.References {
		blocks = append(blocks, anthropic.NewImageBlockBase64(ref.MimeType, ref.Data))
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model.String()),
		MaxTokens: 1024,
		System: []anthropic.TextBlockParam{
			{Text: imagine.EnhancerSystemInstruction},
		},
		Messages: []anthropic.MessageParam{
			{Role: anthropic.MessageParamRoleUser, Content: blocks},
		},
		Temperature: anthropic.Float(imagine.EnhanceTemperature),
	}

	resp, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return "", imagine.NewRemoteError("anthropic", "enhance", err)
	}

	text := ""
	for _, block := range resp.Content {
		if block.Type == "text" {
			text += block.Text
		}
	}
	return text, nil
}

var _ imagine.PromptEnhancer = (*Client)(nil)
