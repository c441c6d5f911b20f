package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/ecoleta/registrar/internal/config"
	"github.com/ecoleta/registrar/internal/form"
	"github.com/ecoleta/registrar/internal/geolocation"
	"github.com/ecoleta/registrar/internal/ibge"
	"github.com/ecoleta/registrar/internal/images"
	"github.com/ecoleta/registrar/internal/models"
	"github.com/ecoleta/registrar/internal/registration"
	"github.com/ecoleta/registrar/internal/registry"
)

// clients are the outbound collaborators built from one configuration
type clients struct {
	registry *registry.Client
	ibge     *ibge.Client
	locator  form.Locator
	fetcher  *images.Fetcher
	previews *images.PreviewStore
}

func newClients(cfg config.Config) *clients {
	return &clients{
		registry: registry.NewClient(cfg.RegistryURL, cfg.HTTPTimeout),
		ibge:     ibge.NewClient(cfg.IBGEURL, cfg.HTTPTimeout),
		locator:  newLocator(cfg),
		fetcher:  images.NewFetcher(cfg.HTTPTimeout),
		previews: images.NewPreviewStore(),
	}
}

// newLocator prefers a fixed position, then IP geolocation. An empty
// GEOLOCATION_URL behaves like a denied permission.
func newLocator(cfg config.Config) form.Locator {
	if cfg.Latitude != nil && cfg.Longitude != nil {
		return geolocation.Static{Position: &models.Coordinate{Latitude: *cfg.Latitude, Longitude: *cfg.Longitude}}
	}
	if cfg.GeolocationURL == "" {
		return geolocation.Static{}
	}
	return geolocation.NewIPLocator(cfg.GeolocationURL, cfg.HTTPTimeout)
}

func (c *clients) formDeps(nav form.Navigator, notifier form.Notifier) form.Deps {
	return form.Deps{
		Categories: c.registry,
		Regions:    c.ibge,
		Locator:    c.locator,
		Writer:     c.registry,
		Previews:   c.previews,
		Navigator:  nav,
		Notifier:   notifier,
	}
}

func (c *clients) service(nav form.Navigator, notifier form.Notifier) *registration.Service {
	return registration.NewService(c.formDeps(nav, notifier), c.fetcher)
}

// printNotifier shows form notifications to the operator
type printNotifier struct {
	w io.Writer
}

func (n printNotifier) Notify(message string) {
	fmt.Fprintln(n.w, message)
}

// logNotifier records form notifications where nobody is watching
type logNotifier struct{}

func (logNotifier) Notify(message string) {
	slog.Info(message)
}

// logNavigator records the route a form moved to
type logNavigator struct{}

func (logNavigator) Navigate(route string) {
	slog.Debug("Form navigated", "route", route)
}
