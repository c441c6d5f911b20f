package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"REGISTRY_URL", "IBGE_URL", "GEOLOCATION_URL", "HTTP_TIMEOUT", "GEOLOCATION_LAT", "GEOLOCATION_LNG"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultRegistryURL, cfg.RegistryURL)
	assert.Equal(t, DefaultIBGEURL, cfg.IBGEURL)
	assert.Equal(t, DefaultGeolocationURL, cfg.GeolocationURL)
	assert.Equal(t, DefaultHTTPTimeout, cfg.HTTPTimeout)
	assert.Nil(t, cfg.Latitude)
	assert.Nil(t, cfg.Longitude)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("REGISTRY_URL", "http://registry.test")
	t.Setenv("HTTP_TIMEOUT", "5s")
	t.Setenv("GEOLOCATION_LAT", "-23.5")
	t.Setenv("GEOLOCATION_LNG", "-46.6")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://registry.test", cfg.RegistryURL)
	assert.Equal(t, 5*time.Second, cfg.HTTPTimeout)
	require.NotNil(t, cfg.Latitude)
	assert.Equal(t, -23.5, *cfg.Latitude)
	assert.Equal(t, -46.6, *cfg.Longitude)
}

func TestLoadPartialPositionIgnored(t *testing.T) {
	t.Setenv("GEOLOCATION_LAT", "-23.5")
	t.Setenv("GEOLOCATION_LNG", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Nil(t, cfg.Latitude)
}

func TestLoadInvalid(t *testing.T) {
	t.Setenv("HTTP_TIMEOUT", "soon")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("HTTP_TIMEOUT", "")
	t.Setenv("GEOLOCATION_LAT", "north")
	_, err = Load()
	assert.Error(t, err)
}
