package imagine

import (
	"encoding/base64"
	"sync"

	"github.com/google/uuid"
)

// MaxReferenceImages is the hard cap on concurrently held reference
// images.
const MaxReferenceImages = 4

// ReferenceImage is a user-supplied image used to visually guide
// enhancement and generation. It lives only in memory for the current
// session.
type ReferenceImage struct {
	ID         string `json:"id"`
	Data       string `json:"data"` // base64-encoded bytes
	MimeType   string `json:"mimeType"`
	PreviewURL string `json:"previewUrl"`
}

// Bytes returns the decoded image bytes.
func (r ReferenceImage) Bytes() ([]byte, error) {
	return base64.StdEncoding.DecodeString(r.Data)
}

// ReferenceStore holds the session's attached reference images. It is
// the exclusive owner of its entries and enforces the
// MaxReferenceImages cap: adds beyond the cap are silently truncated to
// the remaining slot count.
type ReferenceStore struct {
	mu     sync.RWMutex
	images []ReferenceImage
}

// NewReferenceStore creates an empty reference store.
func NewReferenceStore() *ReferenceStore {
	return &ReferenceStore{images: make([]ReferenceImage, 0, MaxReferenceImages)}
}

// Add converts raw image bytes into reference entries and appends them.
// It returns the entries actually admitted, which may be fewer than
// given when the cap would be exceeded.
func (s *ReferenceStore) Add(files ...ReferenceFile) []ReferenceImage {
	s.mu.Lock()
	defer s.mu.Unlock()

	remaining := MaxReferenceImages - len(s.images)
	if remaining <= 0 {
		return nil
	}
	if len(files) > remaining {
		files = files[:remaining]
	}

	added := make([]ReferenceImage, 0, len(files))
	for _, f := range files {
		mimeType := f.MimeType
		if mimeType == "" {
			mimeType = "image/png"
		}
		img := ReferenceImage{
			ID:         uuid.New().String(),
			Data:       base64.StdEncoding.EncodeToString(f.Data),
			MimeType:   mimeType,
			PreviewURL: EncodeDataURI(f.Data, mimeType),
		}
		added = append(added, img)
	}
	s.images = append(s.images, added...)
	return added
}

// ReferenceFile is the raw input to Add: image bytes plus MIME type.
type ReferenceFile struct {
	Data     []byte
	MimeType string
}

// Remove deletes the entry with the given ID. Unknown IDs are ignored.
func (s *ReferenceStore) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, img := range s.images {
		if img.ID == id {
			s.images = append(s.images[:i], s.images[i+1:]...)
			return
		}
	}
}

// Images returns a copy of the current entries.
func (s *ReferenceStore) Images() []ReferenceImage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]ReferenceImage, len(s.images))
	copy(result, s.images)
	return result
}

// Len returns the number of held entries.
func (s *ReferenceStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.images)
}

// Clear removes all entries.
func (s *ReferenceStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.images = s.images[:0]
}
