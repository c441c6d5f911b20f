package images

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/ecoleta/registrar/internal/models"
)

// MaxImageSize is the largest photo accepted for staging
const MaxImageSize = 10 * 1024 * 1024

var (
	ErrNotImage = errors.New("file is not an image")
	ErrTooLarge = errors.New("image too large (max 10MB)")
)

// Fetcher loads collection point photos from disk or over HTTP
type Fetcher struct {
	HTTPClient *http.Client
}

// NewFetcher creates a new image fetcher
func NewFetcher(timeout time.Duration) *Fetcher {
	return &Fetcher{
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Load reads an image from a local path or an http(s) URL
func (f *Fetcher) Load(ctx context.Context, source string) (*models.ImageFile, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return f.Download(ctx, source)
	}
	return ReadFile(source)
}

// Download fetches an image from a URL
func (f *Fetcher) Download(ctx context.Context, imageURL string) (*models.ImageFile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create image request: %w", err)
	}

	resp, err := f.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to download image: HTTP %d", resp.StatusCode)
	}

	data, err := readLimited(resp.Body)
	if err != nil {
		return nil, err
	}

	filename := path.Base(resp.Request.URL.Path)
	if filename == "" || filename == "/" || filename == "." {
		filename = "image.jpg"
	}

	return NewImageFile(filename, data)
}

// ReadFile reads an image from disk
func ReadFile(imagePath string) (*models.ImageFile, error) {
	file, err := os.Open(imagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer file.Close()

	data, err := readLimited(file)
	if err != nil {
		return nil, err
	}

	return NewImageFile(filepath.Base(imagePath), data)
}

// NewImageFile sniffs the content type of data and probes its dimensions.
// Data that does not sniff as image/* is rejected.
func NewImageFile(filename string, data []byte) (*models.ImageFile, error) {
	if len(data) > MaxImageSize {
		return nil, ErrTooLarge
	}

	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		return nil, fmt.Errorf("%w: %s is %s", ErrNotImage, filename, contentType)
	}

	width, height, err := dimensions(data)
	if err != nil {
		slog.Warn("Failed to get image dimensions", "filename", filename, "error", err)
	}

	return &models.ImageFile{
		Name:        filename,
		ContentType: contentType,
		Width:       width,
		Height:      height,
		Data:        data,
	}, nil
}

func readLimited(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxImageSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read image data: %w", err)
	}
	if len(data) > MaxImageSize {
		return nil, ErrTooLarge
	}
	return data, nil
}

func dimensions(data []byte) (int, int, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0, err
	}
	return cfg.Width, cfg.Height, nil
}
