package openai

// TextModel represents an OpenAI chat model used for prompt
// enhancement.
type TextModel string

const (
	GPT4o     TextModel = "gpt-4o"
	GPT4oMini TextModel = "gpt-4o-mini"

	// DefaultTextModel is the recommended enhancement model.
	DefaultTextModel TextModel = GPT4oMini
)

// String returns the model identifier string.
func (m TextModel) String() string { return string(m) }

// ImageModel represents an OpenAI image model.
//
// DALL-E 3 only supports n=1 per request, so the generator fans out
// independent requests the same way the Gemini backend does.
type ImageModel string

const (
	DallE3 ImageModel = "dall-e-3"
	DallE2 ImageModel = "dall-e-2"

	// DefaultImageModel is the recommended image model.
	DefaultImageModel ImageModel = DallE3
)

// String returns the model identifier string.
func (m ImageModel) String() string { return string(m) }
