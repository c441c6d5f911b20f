package form

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/ecoleta/registrar/internal/metrics"
	"github.com/ecoleta/registrar/internal/models"
)

const confirmationMessage = "Collection point created!"

// Payload assembles the outbound payload from the current state
func (s *Session) Payload() *models.OutboundPayload {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]string, 0, len(s.selected))
	for _, id := range s.selected {
		ids = append(ids, strconv.Itoa(id))
	}

	p := &models.OutboundPayload{
		Name:      s.contact.Name,
		Email:     s.contact.Email,
		WhatsApp:  s.contact.WhatsApp,
		Latitude:  s.markedPosition.LatitudeString(),
		Longitude: s.markedPosition.LongitudeString(),
		City:      s.selectedLocality,
		State:     s.selectedRegion,
		Items:     strings.Join(ids, ","),
	}
	if s.staged != nil {
		img := *s.staged
		p.Image = &img
	}
	return p
}

// Submit sends the form as one request. On success the operator is notified
// and sent to the landing route. On failure the error is returned and the
// form is left as it was.
func (s *Session) Submit(ctx context.Context) (*models.CreatedPoint, error) {
	payload := s.Payload()

	created, err := s.deps.Writer.CreatePoint(ctx, payload)
	if err != nil {
		metrics.SubmissionsTotal.WithLabelValues("failure").Inc()
		slog.Error("Collection point submission failed", "name", payload.Name, "err", err)
		return nil, fmt.Errorf("failed to submit collection point: %w", err)
	}
	metrics.SubmissionsTotal.WithLabelValues("success").Inc()

	s.mu.Lock()
	s.route = LandingRoute
	s.mu.Unlock()

	if s.deps.Notifier != nil {
		s.deps.Notifier.Notify(confirmationMessage)
	}
	if s.deps.Navigator != nil {
		s.deps.Navigator.Navigate(LandingRoute)
	}
	return created, nil
}
