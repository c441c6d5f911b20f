package models

import (
	"strconv"

	"github.com/paulmach/orb"
)

// Category is a recyclable-material type a collection point accepts
type Category struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	ImageRef string `json:"image"`
}

// Region is a first-level administrative division (UF)
type Region struct {
	ID   string `json:"id"` // short code, e.g. "SP"
	Name string `json:"name"`
}

// Locality is a city scoped to a Region
type Locality struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Coordinate is a WGS84 latitude/longitude pair
type Coordinate struct {
	Latitude  float64 `json:"latitude" yaml:"latitude"`
	Longitude float64 `json:"longitude" yaml:"longitude"`
}

var world = orb.Bound{Min: orb.Point{-180, -90}, Max: orb.Point{180, 90}}

// CoordinateFromPoint converts an orb point (lon, lat) to a Coordinate
func CoordinateFromPoint(p orb.Point) Coordinate {
	return Coordinate{Latitude: p.Lat(), Longitude: p.Lon()}
}

// Point returns the coordinate as an orb point
func (c Coordinate) Point() orb.Point {
	return orb.Point{c.Longitude, c.Latitude}
}

// Valid reports whether the coordinate lies within the world bound
func (c Coordinate) Valid() bool {
	return world.Contains(c.Point())
}

// IsZero reports whether c is the zero coordinate
func (c Coordinate) IsZero() bool {
	return c.Latitude == 0 && c.Longitude == 0
}

// LatitudeString formats the latitude with the shortest representation
func (c Coordinate) LatitudeString() string {
	return strconv.FormatFloat(c.Latitude, 'f', -1, 64)
}

// LongitudeString formats the longitude with the shortest representation
func (c Coordinate) LongitudeString() string {
	return strconv.FormatFloat(c.Longitude, 'f', -1, 64)
}

// ContactInfo holds the free-text contact fields of a collection point
type ContactInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	WhatsApp string `json:"whatsapp"`
}

// ImageFile is a staged photo held client-side until submission
type ImageFile struct {
	Name        string `json:"name"`
	ContentType string `json:"content_type"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Data        []byte `json:"-"`
}

// CreatedPoint is what the registry answered for a created point.
// Only ID is read and it may be empty.
type CreatedPoint struct {
	ID int `json:"id"`
}

// PointDraft describes one registration as read from a draft file or flags
type PointDraft struct {
	Name      string   `json:"name" yaml:"name" parquet:"name"`
	Email     string   `json:"email" yaml:"email" parquet:"email"`
	WhatsApp  string   `json:"whatsapp" yaml:"whatsapp" parquet:"whatsapp"`
	State     string   `json:"state" yaml:"state" parquet:"state"`
	City      string   `json:"city" yaml:"city" parquet:"city"`
	Latitude  *float64 `json:"latitude,omitempty" yaml:"latitude,omitempty" parquet:"latitude,optional"`
	Longitude *float64 `json:"longitude,omitempty" yaml:"longitude,omitempty" parquet:"longitude,optional"`
	Items     []int64  `json:"items" yaml:"items" parquet:"items,list"`
	Image     string   `json:"image,omitempty" yaml:"image,omitempty" parquet:"image,optional"` // path or URL
}

// Position returns the draft coordinate, if both parts are set
func (d PointDraft) Position() (Coordinate, bool) {
	if d.Latitude == nil || d.Longitude == nil {
		return Coordinate{}, false
	}
	return Coordinate{Latitude: *d.Latitude, Longitude: *d.Longitude}, true
}
