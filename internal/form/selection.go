package form

import (
	"fmt"
	"slices"
)

// ToggleItem flips the membership of a category in the selection and
// reports whether it is now selected
func (s *Session) ToggleItem(id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.hasCategory(id) {
		return false, fmt.Errorf("%w: %d", ErrUnknownCategory, id)
	}

	if i := slices.Index(s.selected, id); i >= 0 {
		s.selected = slices.Delete(s.selected, i, i+1)
		return false, nil
	}
	s.selected = append(s.selected, id)
	return true, nil
}

func (s *Session) hasCategory(id int) bool {
	for _, c := range s.categories {
		if c.ID == id {
			return true
		}
	}
	return false
}
