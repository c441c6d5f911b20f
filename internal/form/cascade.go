package form

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ecoleta/registrar/internal/metrics"
)

// SelectRegion selects a state by its short code ("" clears it).
//
// Changing the region drops the current locality list and locality
// selection at once, then fetches the localities for the new region. The
// response is applied only if that region is still selected when it
// arrives. A failed fetch is logged and leaves the list empty.
func (s *Session) SelectRegion(ctx context.Context, id string) error {
	s.mu.Lock()
	if id == s.selectedRegion {
		s.mu.Unlock()
		return nil
	}
	if id != "" && !s.hasRegion(id) {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrUnknownRegion, id)
	}
	s.selectedRegion = id
	s.localities = nil
	s.selectedLocality = ""
	s.mu.Unlock()

	if id == "" {
		return nil
	}

	localities, err := s.deps.Regions.FetchLocalities(ctx, id)
	if err != nil {
		slog.Warn("Failed to fetch localities", "region", id, "err", err)
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selectedRegion != id {
		metrics.StaleLocalitiesTotal.Inc()
		slog.Debug("Discarding stale localities", "region", id, "selected", s.selectedRegion)
		return nil
	}
	s.localities = localities
	return nil
}

// SelectLocality selects a city by name from the current list ("" clears it)
func (s *Session) SelectLocality(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if name != "" && !s.hasLocality(name) {
		if len(s.localities) == 0 {
			return fmt.Errorf("%w: %s (no localities loaded for region %q)", ErrUnknownLocality, name, s.selectedRegion)
		}
		return fmt.Errorf("%w: %s", ErrUnknownLocality, name)
	}
	s.selectedLocality = name
	return nil
}

func (s *Session) hasRegion(id string) bool {
	for _, r := range s.regions {
		if r.ID == id {
			return true
		}
	}
	return false
}

func (s *Session) hasLocality(name string) bool {
	for _, l := range s.localities {
		if l.Name == name {
			return true
		}
	}
	return false
}
