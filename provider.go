package imagine

import "context"

// EnhanceRequest carries everything the enhancement endpoint needs to
// expand a raw prompt.
type EnhanceRequest struct {
	// Prompt is the user's raw prompt text.
	Prompt string
	// Style is the selected visual style. "None" or empty means no
	// style preference.
	Style string
	// AspectRatio is the requested ratio, e.g. "16:9". Optional.
	AspectRatio string
	// References are user-attached guidance images. Optional.
	References []ReferenceImage
}

// GenerateRequest carries everything the image endpoint needs to render
// a batch of variations.
type GenerateRequest struct {
	// Prompt is the effective (possibly enhanced) prompt text.
	Prompt string
	// Count is the number of independent variations to request.
	Count int
	// AspectRatio is the requested ratio. A marker inside Prompt may
	// override it; see ResolveAspectRatio.
	AspectRatio string
	// References are shared by every sub-request. Optional.
	References []ReferenceImage
}

// PromptEnhancer expands a raw user prompt into a richly detailed
// description via a remote text-generation call.
//
// The returned text is treated as opaque downstream: implementations
// must not parse or validate its structure.
type PromptEnhancer interface {
	EnhancePrompt(ctx context.Context, req EnhanceRequest) (string, error)
}

// ImageGenerator renders 0..Count image variations from a prompt.
//
// Each of the Count sub-requests is independent: a failing sub-request
// is excluded from the result rather than aborting the batch, and
// results are returned in completion order. A zero-length result is not
// itself an error; callers decide how to treat it.
type ImageGenerator interface {
	GenerateImages(ctx context.Context, req GenerateRequest) ([]string, error)
}
