package openai

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/spetersoncode/imagine"
)

// EnhancePrompt expands the user's raw prompt into a detailed image
// description via chat completions. Reference images ride along as
// data-URI image parts. The response text is returned verbatim.
func (c *Client) EnhancePrompt(ctx context.Context, req imagine.EnhanceRequest) (string, error) {
	var userMessage openai.ChatCompletionMessageParamUnion
	instruction := imagine.EnhanceInstruction(req)
	if len(req.References) > 0 {
		parts := []openai.ChatCompletionContentPartUnionParam{
			openai.TextContentPart(instruction),
		}
		for _, ref := range req.References {
			parts = append(parts, openai.ImageContentPart(openai.ChatCompletionContentPartImageImageURLParam{
				URL: fmt.Sprintf("data:%s;base64,%s", ref.MimeType, ref.Data),
			}))
		}
		userMessage = openai.ChatCompletionMessageParamUnion{
			OfUser: &openai.ChatCompletionUserMessageParam{
				Content: openai.ChatCompletionUserMessageParamContentUnion{
					OfArrayOfContentParts: parts,
				},
			},
		}
	} else {
		userMessage = openai.UserMessage(instruction)
	}

	params := openai.ChatCompletionNewParams{
		Model: c.textModel.String(),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(imagine.EnhancerSystemInstruction),
			userMessage,
		},
		Temperature: openai.Float(imagine.EnhanceTemperature),
	}

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", imagine.NewRemoteError("openai", "enhance", err)
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}
