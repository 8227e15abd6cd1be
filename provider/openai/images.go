package openai

import (
	"context"
	"encoding/base64"
	"log/slog"
	"sync"

	"github.com/openai/openai-go"
	"github.com/spetersoncode/imagine"
)

// GenerateImages renders req.Count variations by issuing that many
// independent Images API requests concurrently (DALL-E 3 rejects n>1).
// Failing sub-requests are logged and excluded; results are collected
// in completion order. Reference images are not supported by the Images
// API and are ignored here.
func (c *Client) GenerateImages(ctx context.Context, req imagine.GenerateRequest) ([]string, error) {
	count := req.Count
	if count <= 0 {
		count = 1
	}

	ratio := imagine.ResolveAspectRatio(req.Prompt, req.AspectRatio)

	params := openai.ImageGenerateParams{
		Model:          openai.ImageModel(c.imageModel.String()),
		Prompt:         req.Prompt,
		Size:           sizeForAspectRatio(ratio),
		N:              openai.Int(1),
		ResponseFormat: openai.ImageGenerateParamsResponseFormatB64JSON,
	}

	results := make(chan string, count)
	var wg sync.WaitGroup
	for i := 0; i < count; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			url, err := c.generateOne(ctx, params)
			if err != nil {
				slog.Warn("image sub-request failed", "provider", "openai", "error", err)
				return
			}
			if url == "" {
				slog.Warn("image sub-request returned no image data", "provider", "openai")
				return
			}
			results <- url
		}()
	}
	wg.Wait()
	close(results)

	urls := make([]string, 0, count)
	for url := range results {
		urls = append(urls, url)
	}
	return urls, nil
}

// generateOne issues a single Images API request and returns the result
// as a data URI, or "" when the response carries no image.
func (c *Client) generateOne(ctx context.Context, params openai.ImageGenerateParams) (string, error) {
	resp, err := c.client.Images.Generate(ctx, params)
	if err != nil {
		return "", imagine.NewRemoteError("openai", "generate", err)
	}
	for _, img := range resp.Data {
		if img.B64JSON != "" {
			data, err := base64.StdEncoding.DecodeString(img.B64JSON)
			if err != nil {
				return "", imagine.NewRemoteError("openai", "generate", err)
			}
			return imagine.EncodeDataURI(data, "image/png"), nil
		}
		if img.URL != "" {
			return img.URL, nil
		}
	}
	return "", nil
}

// sizeForAspectRatio maps a supported aspect ratio onto the nearest
// DALL-E 3 size.
func sizeForAspectRatio(ratio string) openai.ImageGenerateParamsSize {
	switch ratio {
	case "3:4", "9:16":
		return openai.ImageGenerateParamsSize1024x1792
	case "4:3", "16:9":
		return openai.ImageGenerateParamsSize1792x1024
	default:
		return openai.ImageGenerateParamsSize1024x1024
	}
}
