package model

import (
	"math"

	"github.com/a-bouts/geo-nav/latlon"
)

// Leg is the body of the two point calculations.
type Leg struct {
	From        *latlon.GeoCoordinate `json:"from"`
	To          *latlon.GeoCoordinate `json:"to"`
	Loxodrome   bool                  `json:"loxodrome"`
	EarthRadius *float64              `json:"earthRadius"`
}

type Between struct {
	From        *latlon.GeoCoordinate `json:"from"`
	To          *latlon.GeoCoordinate `json:"to"`
	Fraction    *float64              `json:"fraction"`
	EarthRadius *float64              `json:"earthRadius"`
}

type Destination struct {
	From        *latlon.GeoCoordinate `json:"from"`
	Distance    *float64              `json:"distance"`
	Bearing     *float64              `json:"bearing"`
	Loxodrome   bool                  `json:"loxodrome"`
	EarthRadius *float64              `json:"earthRadius"`
}

type Coordinate struct {
	Coordinate  *latlon.GeoCoordinate `json:"coordinate"`
	EarthRadius *float64              `json:"earthRadius"`
}

type Distance struct {
	Path          string  `json:"path"`
	Meters        float64 `json:"meters"`
	Kilometers    float64 `json:"kilometers"`
	NauticalMiles float64 `json:"nauticalMiles"`
}

type Bearing struct {
	Path    string  `json:"path"`
	Kind    string  `json:"kind"`
	Bearing float64 `json:"bearing"`
}

type Point struct {
	Point *latlon.GeoCoordinate `json:"point"`
	Known bool                  `json:"known"`
	Text  string                `json:"text"`
}

type Conversion struct {
	Conversion string  `json:"conversion"`
	Value      float64 `json:"value"`
	Result     float64 `json:"result"`
}

type Error struct {
	Error string `json:"error"`
}

func Path(loxodrome bool) latlon.Path {
	if loxodrome {
		return latlon.Loxodrome
	}
	return latlon.GreatCircle
}

// Value returns *v, or NaN when it was not sent.
func Value(v *float64) float64 {
	if v == nil {
		return math.NaN()
	}
	return *v
}

// WithRadius sets the requested earth radius on the coordinates which were
// sent.
func WithRadius(radius *float64, coordinates ...*latlon.GeoCoordinate) {
	if radius == nil {
		return
	}
	for _, c := range coordinates {
		if c != nil {
			c.SetEarthRadius(*radius)
		}
	}
}
