package ibge

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/ecoleta/registrar/internal/metrics"
	"github.com/ecoleta/registrar/internal/models"
)

// Client fetches states (UF) and their municipalities from the IBGE
// localidades API
type Client struct {
	BaseURL    string
	httpClient *http.Client
}

type ibgeState struct {
	ID    int    `json:"id"`
	Sigla string `json:"sigla"`
	Nome  string `json:"nome"`
}

type ibgeCity struct {
	ID   int    `json:"id"`
	Nome string `json:"nome"`
}

// NewClient creates a new IBGE client
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// FetchRegions returns every state, sorted by name
func (c *Client) FetchRegions(ctx context.Context) ([]models.Region, error) {
	t0 := time.Now()
	var states []ibgeState
	err := c.get(ctx, c.BaseURL+"/estados", &states)
	metrics.ObserveFetch("regions", time.Since(t0).Milliseconds(), err)
	if err != nil {
		return nil, err
	}

	regions := make([]models.Region, 0, len(states))
	for _, s := range states {
		regions = append(regions, models.Region{ID: s.Sigla, Name: s.Nome})
	}
	sort.Slice(regions, func(i, j int) bool { return regions[i].Name < regions[j].Name })

	slog.Debug("Fetched regions", "count", len(regions))
	return regions, nil
}

// FetchLocalities returns the municipalities of the state identified by uf
func (c *Client) FetchLocalities(ctx context.Context, uf string) ([]models.Locality, error) {
	t0 := time.Now()
	var cities []ibgeCity
	err := c.get(ctx, fmt.Sprintf("%s/estados/%s/municipios", c.BaseURL, url.PathEscape(uf)), &cities)
	metrics.ObserveFetch("localities", time.Since(t0).Milliseconds(), err)
	if err != nil {
		return nil, err
	}

	localities := make([]models.Locality, 0, len(cities))
	for _, city := range cities {
		localities = append(localities, models.Locality{ID: city.ID, Name: city.Nome})
	}

	slog.Debug("Fetched localities", "uf", uf, "count", len(localities))
	return localities, nil
}

func (c *Client) get(ctx context.Context, u string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to create IBGE request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch from IBGE: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("IBGE API returned status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode IBGE response: %w", err)
	}
	return nil
}
