package form

import (
	"fmt"

	"github.com/ecoleta/registrar/internal/models"
)

// StageImage replaces the staged photo and its preview together and returns
// the new preview reference. The previous preview is revoked.
func (s *Session) StageImage(file *models.ImageFile) (string, error) {
	if file == nil {
		return "", ErrNoImage
	}

	ref, err := s.deps.Previews.Create(file.Data, file.ContentType)
	if err != nil {
		return "", fmt.Errorf("failed to create preview: %w", err)
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		s.deps.Previews.Revoke(ref)
		return "", ErrClosed
	}
	old := s.previewRef
	s.staged, s.previewRef = file, ref
	s.mu.Unlock()

	if old != "" {
		s.deps.Previews.Revoke(old)
	}
	return ref, nil
}
