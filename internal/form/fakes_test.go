package form

import (
	"context"
	"errors"
	"sync"

	"github.com/ecoleta/registrar/internal/images"
	"github.com/ecoleta/registrar/internal/models"
)

var errNetwork = errors.New("network down")

type fakeCatalog struct {
	categories []models.Category
	err        error

	mu    sync.Mutex
	calls int
}

func (f *fakeCatalog) FetchCategories(ctx context.Context) ([]models.Category, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	return f.categories, f.err
}

type fakeRegions struct {
	regions    []models.Region
	localities map[string][]models.Locality
	regionsErr error
	cityErr    error
	// gates block FetchLocalities for a region until closed
	gates map[string]chan struct{}

	mu    sync.Mutex
	calls []string
}

func (f *fakeRegions) FetchRegions(ctx context.Context) ([]models.Region, error) {
	return f.regions, f.regionsErr
}

func (f *fakeRegions) FetchLocalities(ctx context.Context, id string) ([]models.Locality, error) {
	f.mu.Lock()
	f.calls = append(f.calls, id)
	gate := f.gates[id]
	f.mu.Unlock()

	if gate != nil {
		<-gate
	}
	if f.cityErr != nil {
		return nil, f.cityErr
	}
	return f.localities[id], nil
}

func (f *fakeRegions) fetched() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

type fakeLocator struct {
	pos  models.Coordinate
	err  error
	gate chan struct{}
}

func (f *fakeLocator) CurrentPosition(ctx context.Context) (models.Coordinate, error) {
	if f.gate != nil {
		<-f.gate
	}
	return f.pos, f.err
}

type fakeWriter struct {
	err      error
	payloads []*models.OutboundPayload
}

func (f *fakeWriter) CreatePoint(ctx context.Context, p *models.OutboundPayload) (*models.CreatedPoint, error) {
	f.payloads = append(f.payloads, p)
	if f.err != nil {
		return nil, f.err
	}
	return &models.CreatedPoint{ID: 7}, nil
}

type recorder struct {
	routes   []string
	messages []string
}

func (r *recorder) Navigate(route string) { r.routes = append(r.routes, route) }
func (r *recorder) Notify(message string) { r.messages = append(r.messages, message) }

type fixture struct {
	catalog  *fakeCatalog
	regions  *fakeRegions
	locator  *fakeLocator
	writer   *fakeWriter
	previews *images.PreviewStore
	ui       *recorder
	session  *Session
}

func newFixture() *fixture {
	f := &fixture{
		catalog: &fakeCatalog{categories: []models.Category{
			{ID: 1, Title: "Lâmpadas", ImageRef: "lampadas.svg"},
			{ID: 2, Title: "Pilhas e Baterias", ImageRef: "baterias.svg"},
			{ID: 5, Title: "Resíduos Orgânicos", ImageRef: "organicos.svg"},
		}},
		regions: &fakeRegions{
			regions: []models.Region{{ID: "RJ", Name: "Rio de Janeiro"}, {ID: "SP", Name: "São Paulo"}},
			localities: map[string][]models.Locality{
				"SP": {{ID: 3550308, Name: "São Paulo"}, {ID: 3509502, Name: "Campinas"}},
				"RJ": {{ID: 3304557, Name: "Rio de Janeiro"}, {ID: 3303302, Name: "Niterói"}},
			},
			gates: map[string]chan struct{}{},
		},
		locator:  &fakeLocator{pos: models.Coordinate{Latitude: -23.55, Longitude: -46.63}},
		writer:   &fakeWriter{},
		previews: images.NewPreviewStore(),
		ui:       &recorder{},
	}
	f.session = New(Deps{
		Categories: f.catalog,
		Regions:    f.regions,
		Locator:    f.locator,
		Writer:     f.writer,
		Previews:   f.previews,
		Navigator:  f.ui,
		Notifier:   f.ui,
	})
	return f
}
