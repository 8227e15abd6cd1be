// Package session orchestrates the enhance→generate workflow around a
// single mutable state record.
//
// Every operation is one atomic replace of the record: pending fields
// are read before the network await and written after, so callers
// always observe a consistent snapshot. The session does not enforce
// mutual exclusion between operations; front ends gate on
// State().Status.Busy() instead.
package session

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/spetersoncode/imagine"
	"github.com/spetersoncode/imagine/history"
)

// DefaultVariations is the number of image variations requested when
// the caller does not specify a count.
const DefaultVariations = 4

// ErrNoImages is returned when a generation batch yields zero images.
var ErrNoImages = errors.New("no images returned")

const (
	enhanceFailedMsg  = "Failed to enhance prompt. Please try again."
	generateFailedMsg = "Failed to generate images. Please try again."
	noImagesMsg       = "No images were returned from the model."
)

// Session is the generation-session state machine. Exactly one instance
// exists per active session.
type Session struct {
	mu        sync.Mutex
	state     imagine.State
	refs      *imagine.ReferenceStore
	enhancer  imagine.PromptEnhancer
	generator imagine.ImageGenerator
	cache     *history.Cache
	now       func() time.Time
}

// Option configures a Session.
type Option func(*Session)

// WithClock overrides the timestamp source. Tests use this for
// deterministic timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		s.now = now
	}
}

// New creates an idle session. The cache may be nil, in which case
// history is kept in memory only.
func New(enhancer imagine.PromptEnhancer, generator imagine.ImageGenerator, cache *history.Cache, opts ...Option) *Session {
	if cache == nil {
		cache = history.New(nil)
	}
	s := &Session{
		state: imagine.State{
			Status:          imagine.StatusIdle,
			GeneratedImages: []imagine.GeneratedImage{},
			AspectRatio:     imagine.DefaultAspectRatio,
		},
		refs:      imagine.NewReferenceStore(),
		enhancer:  enhancer,
		generator: generator,
		cache:     cache,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns a snapshot of the session record.
func (s *Session) State() imagine.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := s.state
	snapshot.GeneratedImages = make([]imagine.GeneratedImage, len(s.state.GeneratedImages))
	copy(snapshot.GeneratedImages, s.state.GeneratedImages)
	return snapshot
}

// References returns the session's reference image store.
func (s *Session) References() *imagine.ReferenceStore {
	return s.refs
}

// SetPrompt replaces the original prompt text.
func (s *Session) SetPrompt(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.OriginalPrompt = text
}

// ReusePrompt copies a past prompt back into the original prompt slot.
func (s *Session) ReusePrompt(text string) {
	s.SetPrompt(text)
}

// SetStyle selects a visual style. "None" or empty means no preference.
func (s *Session) SetStyle(style string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.SelectedStyle = style
}

// SetAspectRatio selects the requested aspect ratio.
func (s *Session) SetAspectRatio(ratio string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.AspectRatio = ratio
}

// DismissError clears the user-visible error message. Status is left
// as-is.
func (s *Session) DismissError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Error = ""
}

// LoadHistory populates the gallery from persisted storage. Called once
// at startup; corrupt or missing storage yields an empty gallery.
func (s *Session) LoadHistory(ctx context.Context) {
	images := s.cache.Load(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.GeneratedImages = images
}

// ClearHistory empties the gallery and removes the persisted record.
// Asking the user for confirmation is the caller's concern.
func (s *Session) ClearHistory(ctx context.Context) {
	s.mu.Lock()
	s.state.GeneratedImages = []imagine.GeneratedImage{}
	s.mu.Unlock()
	_ = s.cache.Clear(ctx)
}

// Enhance asks the text model to expand the original prompt. A blank
// prompt with no reference images is a silent no-op. On success the
// enhanced text is stored and the session returns to idle; on failure
// the prior enhanced text is left unchanged.
func (s *Session) Enhance(ctx context.Context) error {
	s.mu.Lock()
	refs := s.refs.Images()
	if strings.TrimSpace(s.state.OriginalPrompt) == "" && len(refs) == 0 {
		s.mu.Unlock()
		return nil
	}
	req := imagine.EnhanceRequest{
		Prompt:      s.state.OriginalPrompt,
		Style:       s.state.SelectedStyle,
		AspectRatio: s.state.AspectRatio,
		References:  refs,
	}
	s.state.Status = imagine.StatusEnhancing
	s.state.Error = ""
	s.mu.Unlock()

	text, err := s.enhancer.EnhancePrompt(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state.Status = imagine.StatusError
		s.state.Error = userMessage(err, enhanceFailedMsg)
		return err
	}
	s.state.EnhancedPrompt = text
	s.state.Status = imagine.StatusIdle
	return nil
}

// Generate renders count image variations from the effective prompt:
// the enhanced text when non-blank, else the original. A blank
// effective prompt with no reference images is a silent no-op. A batch
// with zero results is treated as a failure. New images are prepended
// to the gallery in completion order and the gallery is handed to the
// history cache.
func (s *Session) Generate(ctx context.Context, count int) error {
	if count <= 0 {
		count = DefaultVariations
	}

	s.mu.Lock()
	effective := s.state.EnhancedPrompt
	if strings.TrimSpace(effective) == "" {
		effective = s.state.OriginalPrompt
	}
	refs := s.refs.Images()
	if strings.TrimSpace(effective) == "" && len(refs) == 0 {
		s.mu.Unlock()
		return nil
	}
	req := imagine.GenerateRequest{
		Prompt:      effective,
		Count:       count,
		AspectRatio: s.state.AspectRatio,
		References:  refs,
	}
	s.state.Status = imagine.StatusGenerating
	s.state.Error = ""
	s.mu.Unlock()

	urls, err := s.generator.GenerateImages(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state.Status = imagine.StatusError
		s.state.Error = userMessage(err, generateFailedMsg)
		return err
	}
	if len(urls) == 0 {
		s.state.Status = imagine.StatusError
		s.state.Error = noImagesMsg
		return ErrNoImages
	}

	batch := make([]imagine.GeneratedImage, 0, len(urls))
	now := s.now()
	for _, url := range urls {
		batch = append(batch, imagine.NewGeneratedImage(url, effective, now))
	}
	s.state.GeneratedImages = append(batch, s.state.GeneratedImages...)
	s.state.Status = imagine.StatusComplete
	s.cache.Save(s.state.GeneratedImages)
	return nil
}

// userMessage maps an operation error to the dismissible message shown
// to the user. Configuration errors name the problem directly; remote
// failures get the generic retry message.
func userMessage(err error, fallback string) string {
	if imagine.IsConfig(err) {
		return err.Error()
	}
	return fallback
}
