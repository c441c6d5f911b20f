package images

import (
	"sync"

	"github.com/google/uuid"
)

// Preview is the locally held content behind a preview reference
type Preview struct {
	ContentType string
	Data        []byte
}

// PreviewStore hands out object-URL style references ("blob:<uuid>") for
// staged images. A reference stays valid until revoked.
type PreviewStore struct {
	previews map[string]Preview
	mu       sync.RWMutex
}

func NewPreviewStore() *PreviewStore {
	return &PreviewStore{
		previews: make(map[string]Preview),
	}
}

// Create registers data and returns its reference
func (s *PreviewStore) Create(data []byte, contentType string) (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	ref := "blob:" + id.String()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.previews[ref] = Preview{ContentType: contentType, Data: data}
	return ref, nil
}

func (s *PreviewStore) Get(ref string) (Preview, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.previews[ref]
	return p, ok
}

// Revoke releases the content behind ref; unknown refs are ignored
func (s *PreviewStore) Revoke(ref string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.previews, ref)
}

func (s *PreviewStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.previews)
}
