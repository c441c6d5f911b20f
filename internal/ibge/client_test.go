package ibge

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ecoleta/registrar/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/estados", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id":35,"sigla":"SP","nome":"São Paulo"},{"id":12,"sigla":"AC","nome":"Acre"}]`))
	})
	mux.HandleFunc("/estados/SP/municipios", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id":3550308,"nome":"São Paulo"},{"id":3509502,"nome":"Campinas"}]`))
	})
	mux.HandleFunc("/estados/XX/municipios", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchRegions(t *testing.T) {
	srv := newServer(t)

	regions, err := NewClient(srv.URL, time.Second).FetchRegions(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []models.Region{
		{ID: "AC", Name: "Acre"},
		{ID: "SP", Name: "São Paulo"},
	}, regions)
}

func TestFetchLocalities(t *testing.T) {
	srv := newServer(t)

	localities, err := NewClient(srv.URL, time.Second).FetchLocalities(context.Background(), "SP")
	require.NoError(t, err)

	assert.Equal(t, []models.Locality{
		{ID: 3550308, Name: "São Paulo"},
		{ID: 3509502, Name: "Campinas"},
	}, localities)
}

func TestFetchLocalitiesError(t *testing.T) {
	srv := newServer(t)

	_, err := NewClient(srv.URL, time.Second).FetchLocalities(context.Background(), "XX")
	assert.ErrorContains(t, err, "status 404")
}
