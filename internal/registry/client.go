package registry

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ecoleta/registrar/internal/metrics"
	"github.com/ecoleta/registrar/internal/models"
)

// Client talks to the collection point registry backend
type Client struct {
	BaseURL    string
	httpClient *http.Client
}

// StatusError is returned when the registry answers with a non-2xx status
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("registry returned status %d: %s", e.StatusCode, e.Body)
}

// NewClient creates a new registry client
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// FetchCategories fetches the selectable material categories
func (c *Client) FetchCategories(ctx context.Context) ([]models.Category, error) {
	t0 := time.Now()
	categories, err := c.fetchCategories(ctx)
	metrics.ObserveFetch("items", time.Since(t0).Milliseconds(), err)
	return categories, err
}

func (c *Client) fetchCategories(ctx context.Context) ([]models.Category, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/items", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create items request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch items: %w", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	var categories []models.Category
	if err := json.NewDecoder(resp.Body).Decode(&categories); err != nil {
		return nil, fmt.Errorf("failed to decode items response: %w", err)
	}

	slog.Debug("Fetched categories", "count", len(categories))
	return categories, nil
}

// CreatePoint posts one collection point as a multipart body.
// Any 2xx answer is a success; the body is decoded leniently.
func (c *Client) CreatePoint(ctx context.Context, p *models.OutboundPayload) (*models.CreatedPoint, error) {
	var body bytes.Buffer
	contentType, err := EncodePayload(&body, p)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/points", &body)
	if err != nil {
		return nil, fmt.Errorf("failed to create points request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to post point: %w", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	created := &models.CreatedPoint{}
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if len(data) > 0 {
		if err := json.Unmarshal(data, created); err != nil {
			slog.Debug("Unparseable points response body", "err", err)
		}
	}

	slog.Info("Collection point created", "id", created.ID, "name", p.Name)
	return created, nil
}

// UploadURL resolves a category image reference to its public URL
func (c *Client) UploadURL(image string) string {
	return fmt.Sprintf("%s/uploads/%s", c.BaseURL, url.PathEscape(image))
}

func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	return &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
}
