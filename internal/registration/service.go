package registration

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ecoleta/registrar/internal/form"
	"github.com/ecoleta/registrar/internal/models"
)

// ImageLoader loads a photo from a path or URL
type ImageLoader interface {
	Load(ctx context.Context, source string) (*models.ImageFile, error)
}

// Service registers collection points from drafts, one form session each
type Service struct {
	deps   form.Deps
	images ImageLoader
}

// Outcome is the result of registering one draft
type Outcome struct {
	Draft          models.PointDraft
	Payload        *models.OutboundPayload
	Created        *models.CreatedPoint
	Error          string
	ProcessingTime time.Duration
}

func NewService(deps form.Deps, images ImageLoader) *Service {
	return &Service{deps: deps, images: images}
}

// NewSession creates an activated form session
func (s *Service) NewSession(ctx context.Context) *form.Session {
	session := form.New(s.deps)
	session.Activate(ctx)
	return session
}

// Register fills a fresh form from draft and submits it. With dryRun the
// assembled payload is returned without being sent.
func (s *Service) Register(ctx context.Context, draft models.PointDraft, dryRun bool) Outcome {
	start := time.Now()
	outcome := Outcome{Draft: draft}

	session := s.NewSession(ctx)
	defer session.Close()

	if err := Apply(ctx, session, draft, s.images); err != nil {
		outcome.Error = err.Error()
		outcome.ProcessingTime = time.Since(start)
		return outcome
	}

	outcome.Payload = session.Payload()
	if !dryRun {
		created, err := session.Submit(ctx)
		if err != nil {
			outcome.Error = err.Error()
		}
		outcome.Created = created
	}

	outcome.ProcessingTime = time.Since(start)
	slog.Debug("Draft processed", "name", draft.Name, "dry_run", dryRun, "error", outcome.Error, "duration", outcome.ProcessingTime)
	return outcome
}

// Apply replays a draft through the form operations, in the order an
// operator would fill the page
func Apply(ctx context.Context, session *form.Session, draft models.PointDraft, images ImageLoader) error {
	contact := []struct {
		field form.ContactField
		value string
	}{
		{form.FieldName, draft.Name},
		{form.FieldEmail, draft.Email},
		{form.FieldWhatsApp, draft.WhatsApp},
	}
	for _, c := range contact {
		if err := session.UpdateContact(c.field, c.value); err != nil {
			return err
		}
	}

	if err := session.SelectRegion(ctx, draft.State); err != nil {
		return err
	}
	if err := session.SelectLocality(draft.City); err != nil {
		return err
	}

	for _, id := range draft.Items {
		selected, err := session.ToggleItem(int(id))
		if err != nil {
			return err
		}
		if !selected {
			slog.Warn("Item listed twice in draft; it ends up deselected", "item", id, "name", draft.Name)
		}
	}

	if pos, ok := draft.Position(); ok {
		if err := session.MarkPosition(pos); err != nil {
			return fmt.Errorf("invalid position %v: %w", pos, err)
		}
	}

	if draft.Image != "" {
		if images == nil {
			return fmt.Errorf("no image loader configured for %s", draft.Image)
		}
		img, err := images.Load(ctx, draft.Image)
		if err != nil {
			return fmt.Errorf("failed to load image: %w", err)
		}
		if _, err := session.StageImage(img); err != nil {
			return err
		}
	}

	return nil
}
