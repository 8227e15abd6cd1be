package anthropic

// TextModel represents an Anthropic model used for prompt enhancement.
type TextModel string

const (
	ClaudeSonnet45 TextModel = "claude-sonnet-4-5"
	ClaudeHaiku45  TextModel = "claude-haiku-4-5"

	// DefaultTextModel is the recommended enhancement model.
	DefaultTextModel TextModel = ClaudeHaiku45
)

// String returns the model identifier string.
func (m TextModel) String() string { return string(m) }
