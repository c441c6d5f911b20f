package models

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

func TestCoordinateValid(t *testing.T) {
	tests := []struct {
		name  string
		coord Coordinate
		want  bool
	}{
		{"zero", Coordinate{}, true},
		{"sao paulo", Coordinate{Latitude: -23.5, Longitude: -46.6}, true},
		{"corner", Coordinate{Latitude: 90, Longitude: 180}, true},
		{"latitude out of range", Coordinate{Latitude: 91, Longitude: 0}, false},
		{"longitude out of range", Coordinate{Latitude: 0, Longitude: -181}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.coord.Valid())
		})
	}
}

func TestCoordinatePointRoundTrip(t *testing.T) {
	c := Coordinate{Latitude: -23.5, Longitude: -46.6}
	p := c.Point()

	assert.Equal(t, orb.Point{-46.6, -23.5}, p)
	assert.Equal(t, c, CoordinateFromPoint(p))
}

func TestCoordinateStrings(t *testing.T) {
	c := Coordinate{Latitude: -23.5, Longitude: -46.6}
	assert.Equal(t, "-23.5", c.LatitudeString())
	assert.Equal(t, "-46.6", c.LongitudeString())

	assert.Equal(t, "0", Coordinate{}.LatitudeString())
}

func TestPointDraftPosition(t *testing.T) {
	lat, lng := -23.5, -46.6

	_, ok := PointDraft{Latitude: &lat}.Position()
	assert.False(t, ok)

	c, ok := PointDraft{Latitude: &lat, Longitude: &lng}.Position()
	assert.True(t, ok)
	assert.Equal(t, Coordinate{Latitude: -23.5, Longitude: -46.6}, c)
}

func TestPayloadFieldsOrder(t *testing.T) {
	p := &OutboundPayload{Name: "n", Items: "2,5"}
	fields := p.Fields()

	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"name", "email", "whatsapp", "latitude", "longitude", "city", "state", "items"}, names)
	assert.Equal(t, "2,5", fields[7].Value)
}
