// Package form holds the state machine behind the collection point
// registration form: one Session per form, with explicit slices for the
// fetched lists, the user's selections, the staged photo and the map marker.
package form

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/ecoleta/registrar/internal/images"
	"github.com/ecoleta/registrar/internal/models"
)

// LandingRoute is where the form navigates after a successful submission
const LandingRoute = "/"

var (
	ErrUnknownRegion     = errors.New("unknown region")
	ErrUnknownLocality   = errors.New("unknown locality")
	ErrUnknownCategory   = errors.New("unknown category")
	ErrUnknownField      = errors.New("unknown contact field")
	ErrInvalidCoordinate = errors.New("coordinate out of range")
	ErrNoImage           = errors.New("no image to stage")
	ErrClosed            = errors.New("form closed")
)

type CategorySource interface {
	FetchCategories(ctx context.Context) ([]models.Category, error)
}

type RegionSource interface {
	FetchRegions(ctx context.Context) ([]models.Region, error)
	FetchLocalities(ctx context.Context, regionID string) ([]models.Locality, error)
}

// Locator is the device position capability
type Locator interface {
	CurrentPosition(ctx context.Context) (models.Coordinate, error)
}

type PointWriter interface {
	CreatePoint(ctx context.Context, p *models.OutboundPayload) (*models.CreatedPoint, error)
}

// PreviewStore derives and releases local preview references
type PreviewStore interface {
	Create(data []byte, contentType string) (string, error)
	Revoke(ref string)
}

type Navigator interface {
	Navigate(route string)
}

type Notifier interface {
	Notify(message string)
}

// Deps are the collaborators of a Session. Locator, Previews, Navigator and
// Notifier are optional.
type Deps struct {
	Categories CategorySource
	Regions    RegionSource
	Locator    Locator
	Writer     PointWriter
	Previews   PreviewStore
	Navigator  Navigator
	Notifier   Notifier
}

// Session is the state of one registration form. Every transition holds mu;
// network calls are made without it.
type Session struct {
	deps Deps

	mu        sync.Mutex
	activated bool

	categories []models.Category
	regions    []models.Region
	localities []models.Locality

	selectedRegion   string
	selectedLocality string

	defaultCenter    models.Coordinate
	markedPosition   models.Coordinate
	positionAdjusted bool

	contact  models.ContactInfo
	selected []int

	staged     *models.ImageFile
	previewRef string

	route  string
	closed bool
}

// New creates a Session; nothing is fetched until Activate
func New(deps Deps) *Session {
	if deps.Previews == nil {
		deps.Previews = images.NewPreviewStore()
	}
	return &Session{deps: deps}
}

// State is a point-in-time copy of a Session, safe to render
type State struct {
	Categories       []models.Category  `json:"categories"`
	Regions          []models.Region    `json:"regions"`
	Localities       []models.Locality  `json:"localities"`
	SelectedRegion   string             `json:"selected_region"`
	SelectedLocality string             `json:"selected_locality"`
	DefaultCenter    models.Coordinate  `json:"default_center"`
	MarkedPosition   models.Coordinate  `json:"marked_position"`
	Contact          models.ContactInfo `json:"contact"`
	SelectedItems    []int              `json:"selected_items"`
	Image            *models.ImageFile  `json:"image,omitempty"`
	PreviewRef       string             `json:"preview_ref,omitempty"`
	Route            string             `json:"route,omitempty"`
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := State{
		Categories:       slices.Clone(s.categories),
		Regions:          slices.Clone(s.regions),
		Localities:       slices.Clone(s.localities),
		SelectedRegion:   s.selectedRegion,
		SelectedLocality: s.selectedLocality,
		DefaultCenter:    s.defaultCenter,
		MarkedPosition:   s.markedPosition,
		Contact:          s.contact,
		SelectedItems:    slices.Clone(s.selected),
		PreviewRef:       s.previewRef,
		Route:            s.route,
	}
	if s.staged != nil {
		img := *s.staged
		st.Image = &img
	}
	return st
}

// ContactField names one of the contact inputs
type ContactField string

const (
	FieldName     ContactField = "name"
	FieldEmail    ContactField = "email"
	FieldWhatsApp ContactField = "whatsapp"
)

// UpdateContact sets one contact field, leaving the others untouched
func (s *Session) UpdateContact(field ContactField, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch field {
	case FieldName:
		s.contact.Name = value
	case FieldEmail:
		s.contact.Email = value
	case FieldWhatsApp:
		s.contact.WhatsApp = value
	default:
		return ErrUnknownField
	}
	return nil
}

// MarkPosition moves the map marker. Once moved, geolocation no longer
// overrides it.
func (s *Session) MarkPosition(c models.Coordinate) error {
	if !c.Valid() {
		return ErrInvalidCoordinate
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.markedPosition = c
	s.positionAdjusted = true
	return nil
}

// CenterOn sets the default map center reported by the device. Like a
// geolocation result, it moves the marker only if the user has not.
func (s *Session) CenterOn(c models.Coordinate) error {
	if !c.Valid() {
		return ErrInvalidCoordinate
	}
	s.applyDefaultCenter(c)
	return nil
}

func (s *Session) applyDefaultCenter(c models.Coordinate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.defaultCenter = c
	if !s.positionAdjusted {
		s.markedPosition = c
	}
}

// Close releases the staged image preview. Images staged afterwards are
// refused.
func (s *Session) Close() {
	s.mu.Lock()
	s.closed = true
	ref := s.previewRef
	s.staged, s.previewRef = nil, ""
	s.mu.Unlock()

	if ref != "" {
		s.deps.Previews.Revoke(ref)
	}
}
