package geolocation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/ecoleta/registrar/internal/metrics"
	"github.com/ecoleta/registrar/internal/models"
	"github.com/paulmach/orb"
)

// ErrUnavailable is returned when no position can be determined
var ErrUnavailable = errors.New("position unavailable")

// Static reports a fixed position; the zero value denies access
type Static struct {
	Position *models.Coordinate
}

// CurrentPosition returns the configured position or ErrUnavailable
func (s Static) CurrentPosition(ctx context.Context) (models.Coordinate, error) {
	if s.Position == nil {
		return models.Coordinate{}, ErrUnavailable
	}
	return *s.Position, nil
}

// IPLocator resolves an approximate position from the caller's public IP
// using an ip-api.com compatible endpoint
type IPLocator struct {
	URL        string
	httpClient *http.Client
}

type ipResponse struct {
	Status  string  `json:"status"`
	Message string  `json:"message"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// NewIPLocator creates a new IP based locator
func NewIPLocator(url string, timeout time.Duration) *IPLocator {
	return &IPLocator{
		URL:        url,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// CurrentPosition queries the endpoint once
func (l *IPLocator) CurrentPosition(ctx context.Context) (models.Coordinate, error) {
	t0 := time.Now()
	p, err := l.lookup(ctx)
	metrics.ObserveFetch("geolocation", time.Since(t0).Milliseconds(), err)
	if err != nil {
		return models.Coordinate{}, err
	}
	return models.CoordinateFromPoint(p), nil
}

func (l *IPLocator) lookup(ctx context.Context) (orb.Point, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.URL, nil)
	if err != nil {
		return orb.Point{}, fmt.Errorf("failed to create geolocation request: %w", err)
	}

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return orb.Point{}, fmt.Errorf("failed to query geolocation: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return orb.Point{}, fmt.Errorf("geolocation API returned status %d", resp.StatusCode)
	}

	var r ipResponse
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return orb.Point{}, fmt.Errorf("failed to decode geolocation response: %w", err)
	}

	if r.Status != "success" {
		slog.Debug("Geolocation lookup denied", "status", r.Status, "message", r.Message)
		return orb.Point{}, ErrUnavailable
	}

	return orb.Point{r.Lon, r.Lat}, nil
}
