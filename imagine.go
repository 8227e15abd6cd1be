package imagine

import (
	"time"

	"github.com/google/uuid"
)

// Status represents the current phase of a generation session.
type Status string

const (
	StatusIdle       Status = "IDLE"
	StatusEnhancing  Status = "ENHANCING"
	StatusGenerating Status = "GENERATING"
	StatusComplete   Status = "COMPLETE"
	StatusError      Status = "ERROR"
)

// Busy returns true while an enhance or generate call is in flight.
func (s Status) Busy() bool {
	return s == StatusEnhancing || s == StatusGenerating
}

// GeneratedImage is a single rendered result. Immutable once created;
// it is removed only by history eviction or an explicit clear.
type GeneratedImage struct {
	// ID is unique within the gallery for the lifetime of the process.
	ID string `json:"id"`
	// URL is a data URI or remote URL for the image.
	URL string `json:"url"`
	// Prompt is the effective prompt the image was rendered from.
	Prompt string `json:"prompt"`
	// Timestamp is the creation time in epoch milliseconds.
	Timestamp int64 `json:"timestamp"`
}

// NewGeneratedImage wraps an image URL with a fresh ID and the current
// timestamp.
func NewGeneratedImage(url, prompt string, now time.Time) GeneratedImage {
	return GeneratedImage{
		ID:        uuid.New().String(),
		URL:       url,
		Prompt:    prompt,
		Timestamp: now.UnixMilli(),
	}
}

// State is the complete session record. Every session operation replaces
// the whole record atomically; callers always observe a consistent
// snapshot.
type State struct {
	OriginalPrompt  string           `json:"originalPrompt"`
	EnhancedPrompt  string           `json:"enhancedPrompt"`
	GeneratedImages []GeneratedImage `json:"generatedImages"`
	Status          Status           `json:"status"`
	Error           string           `json:"error,omitempty"`
	SelectedStyle   string           `json:"selectedStyle"`
	AspectRatio     string           `json:"aspectRatio"`
}

// Styles lists the selectable visual styles offered to the user.
var Styles = []string{
	"Photorealistic",
	"3D Render",
	"Anime",
	"Cinematic",
	"Digital Art",
	"Oil Painting",
	"Cyberpunk",
	"Minimalist",
	"Vintage",
}

// AspectRatio pairs a display label with the ratio value sent to the
// image model.
type AspectRatio struct {
	Label string
	Value string
}

// AspectRatios lists the selectable aspect ratios. The values are
// exactly the set the image endpoint supports.
var AspectRatios = []AspectRatio{
	{Label: "Square (1:1)", Value: "1:1"},
	{Label: "Portrait (3:4)", Value: "3:4"},
	{Label: "Landscape (4:3)", Value: "4:3"},
	{Label: "Story (9:16)", Value: "9:16"},
	{Label: "Wide (16:9)", Value: "16:9"},
}
