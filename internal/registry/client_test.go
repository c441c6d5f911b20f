package registry

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ecoleta/registrar/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchCategories(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/items", r.URL.Path)
		_, _ = w.Write([]byte(`[{"id":1,"title":"Lâmpadas","image":"lampadas.svg"},{"id":2,"title":"Pilhas e Baterias","image":"baterias.svg"}]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", time.Second)
	categories, err := c.FetchCategories(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []models.Category{
		{ID: 1, Title: "Lâmpadas", ImageRef: "lampadas.svg"},
		{ID: 2, Title: "Pilhas e Baterias", ImageRef: "baterias.svg"},
	}, categories)
}

func TestFetchCategoriesStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, time.Second).FetchCategories(context.Background())

	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusInternalServerError, se.StatusCode)
	assert.Equal(t, "boom", se.Body)
}

func TestCreatePoint(t *testing.T) {
	tests := []struct {
		name      string
		image     *models.ImageFile
		wantImage bool
	}{
		{name: "without image"},
		{
			name:      "with image",
			image:     &models.ImageFile{Name: "front.png", ContentType: "image/png", Data: []byte("pngdata")},
			wantImage: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got *http.Request
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				require.NoError(t, r.ParseMultipartForm(1<<20))
				got = r
				w.WriteHeader(http.StatusCreated)
				_, _ = w.Write([]byte(`{"id":42}`))
			}))
			defer srv.Close()

			payload := &models.OutboundPayload{
				Name:      "Eco Center",
				Email:     "a@b.com",
				WhatsApp:  "11999999999",
				Latitude:  "-23.5",
				Longitude: "-46.6",
				City:      "São Paulo",
				State:     "SP",
				Items:     "2,5",
				Image:     tt.image,
			}

			created, err := NewClient(srv.URL, time.Second).CreatePoint(context.Background(), payload)
			require.NoError(t, err)
			assert.Equal(t, 42, created.ID)

			require.NotNil(t, got)
			assert.Equal(t, "/points", got.URL.Path)
			assert.Equal(t, "Eco Center", got.FormValue("name"))
			assert.Equal(t, "-23.5", got.FormValue("latitude"))
			assert.Equal(t, "São Paulo", got.FormValue("city"))
			assert.Equal(t, "SP", got.FormValue("state"))
			assert.Equal(t, "2,5", got.FormValue("items"))

			files := got.MultipartForm.File["image"]
			if !tt.wantImage {
				assert.Empty(t, files)
				return
			}
			require.Len(t, files, 1)
			assert.Equal(t, "front.png", files[0].Filename)
			assert.Equal(t, "image/png", files[0].Header.Get("Content-Type"))
			f, err := files[0].Open()
			require.NoError(t, err)
			defer f.Close()
			data, _ := io.ReadAll(f)
			assert.Equal(t, "pngdata", string(data))
		})
	}
}

func TestCreatePointIgnoresUnparseableBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	created, err := NewClient(srv.URL, time.Second).CreatePoint(context.Background(), &models.OutboundPayload{})
	require.NoError(t, err)
	assert.Zero(t, created.ID)
}

func TestCreatePointFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid", http.StatusBadRequest)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, time.Second).CreatePoint(context.Background(), &models.OutboundPayload{})
	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusBadRequest, se.StatusCode)
}

func TestUploadURL(t *testing.T) {
	c := NewClient("http://localhost:3333", time.Second)
	assert.Equal(t, "http://localhost:3333/uploads/oleo.svg", c.UploadURL("oleo.svg"))
}
