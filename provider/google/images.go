package google

import (
	"context"
	"log/slog"
	"sync"

	"github.com/spetersoncode/imagine"
	"google.golang.org/genai"
)

// GenerateImages renders req.Count variations by issuing that many
// independent Flash Image requests concurrently. Each sub-request fails
// closed: a transport error or a response without inline image bytes is
// logged and excluded rather than aborting the batch. Results are
// collected in completion order. All sub-requests share the same
// resolved aspect ratio and reference set.
func (c *Client) GenerateImages(ctx context.Context, req imagine.GenerateRequest) ([]string, error) {
	count := req.Count
	if count <= 0 {
		count = 1
	}

	ratio := imagine.ResolveAspectRatio(req.Prompt, req.AspectRatio)

	parts := []*genai.Part{genai.NewPartFromText(req.Prompt)}
	parts = append(parts, referenceParts(req.References)...)
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	config := &genai.GenerateContentConfig{
		ImageConfig: &genai.ImageConfig{AspectRatio: ratio},
	}

	results := make(chan string, count)
	var wg sync.WaitGroup
	for i := 0; i < count; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			url, err := c.generateOne(ctx, contents, config)
			if err != nil {
				slog.Warn("image sub-request failed", "provider", "google", "error", err)
				return
			}
			if url == "" {
				slog.Warn("image sub-request returned no inline image", "provider", "google")
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

// generateOne issues a single Flash Image request and returns the first
// inline-data part as a data URI, or "" when the response carries none.
func (c *Client) generateOne(ctx context.Context, contents []*genai.Content, config *genai.GenerateContentConfig) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.imageModel.String(), contents, config)
	if err != nil {
		return "", imagine.NewRemoteError("google", "generate", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", nil
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if part.InlineData != nil && len(part.InlineData.Data) > 0 {
			return imagine.EncodeDataURI(part.InlineData.Data, part.InlineData.MIMEType), nil
		}
	}
	return "", nil
}
