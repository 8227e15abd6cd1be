package google

// TextModel represents a Gemini text model used for prompt enhancement.
type TextModel string

const (
	Gemini25Flash     TextModel = "gemini-2.5-flash"
	Gemini25FlashLite TextModel = "gemini-2.5-flash-lite"
	Gemini25Pro       TextModel = "gemini-2.5-pro"

	// DefaultTextModel is the recommended enhancement model.
	DefaultTextModel TextModel = Gemini25Flash
)

// String returns the model identifier string.
func (m TextModel) String() string { return string(m) }

// ImageModel represents a Gemini image-generation model.
//
// Flash Image returns one variation per request and rejects multiple
// candidates, which is why the generator fans out independent requests
// instead of asking for N candidates.
type ImageModel string

const (
	Gemini25FlashImage ImageModel = "gemini-2.5-flash-image"
	Gemini3ProImage    ImageModel = "gemini-3-pro-image-preview"

	// DefaultImageModel is the recommended image model.
	DefaultImageModel ImageModel = Gemini25FlashImage
)

// String returns the model identifier string.
func (m ImageModel) String() string { return string(m) }
