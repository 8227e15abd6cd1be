package google

import (
	"context"

	"github.com/spetersoncode/imagine"
	"google.golang.org/genai"
)

// EnhancePrompt expands the user's raw prompt into a detailed image
// description using Gemini Flash. The response text is returned
// verbatim: the persona asks for a structured layout, but the client is
// structure-agnostic and never parses it.
func (c *Client) EnhancePrompt(ctx context.Context, req imagine.EnhanceRequest) (string, error) {
	parts := []*genai.Part{genai.NewPartFromText(imagine.EnhanceInstruction(req))}
	parts = append(parts, referenceParts(req.References)...)

	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	temp := float32(imagine.EnhanceTemperature)
	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(imagine.EnhancerSystemInstruction, genai.RoleUser),
		Temperature:       &temp,
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.textModel.String(), contents, config)
	if err != nil {
		return "", imagine.NewRemoteError("google", "enhance", err)
	}

	text := ""
	if len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
		for _, part := range resp.Candidates[0].Content.Parts {
			if part.Text != "" {
				text += part.Text
			}
		}
	}
	return text, nil
}
