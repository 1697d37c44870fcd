package latlon

import (
	"math"
	"strconv"
	"strings"
)

// R is the mean earth radius in meters.
const R = 6371e3

const unknown = "unknown"

// LatLon is a known position in decimal degrees.
type LatLon struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Config holds the optional fields a GeoCoordinate is built from.
// A nil field leaves the matching value unknown.
type Config struct {
	Latitude           *float64 `json:"latitude"`
	Longitude          *float64 `json:"longitude"`
	Altitude           *float64 `json:"altitude"`
	HorizontalAccuracy *float64 `json:"horizontalAccuracy"`
	VerticalAccuracy   *float64 `json:"verticalAccuracy"`
	Speed              *float64 `json:"speed"`
	Course             *float64 `json:"course"`
}

// Float returns a pointer to v, for filling a Config.
func Float(v float64) *float64 {
	return &v
}

type value struct {
	v     float64
	known bool
}

func valueOf(v float64) value {
	if math.IsNaN(v) {
		return value{}
	}
	return value{v: v, known: true}
}

func (o value) get() (float64, bool) {
	return o.v, o.known
}

func (o value) ptr() *float64 {
	if !o.known {
		return nil
	}
	return Float(o.v)
}

func deref(p *float64) float64 {
	if p == nil {
		return math.NaN()
	}
	return *p
}

// GeoCoordinate is a position with the auxiliary values a GPS fix carries.
//
// Every value may be unknown. Setters never fail: a value outside its
// domain, or NaN, is stored as unknown and must be checked by reading it
// back. The zero value is an unknown coordinate using the mean earth radius.
//
// A GeoCoordinate must not be modified concurrently. Calculations only read
// their operands and always return new coordinates.
type GeoCoordinate struct {
	latitude           value
	longitude          value
	altitude           value
	horizontalAccuracy value
	verticalAccuracy   value
	speed              value
	course             value
	earthRadius        value
}

// New builds a coordinate from c, running every value through its setter.
func New(c Config) *GeoCoordinate {
	g := &GeoCoordinate{}
	g.SetLatitude(deref(c.Latitude))
	g.SetLongitude(deref(c.Longitude))
	g.SetAltitude(deref(c.Altitude))
	g.SetHorizontalAccuracy(deref(c.HorizontalAccuracy))
	g.SetVerticalAccuracy(deref(c.VerticalAccuracy))
	g.SetSpeed(deref(c.Speed))
	g.SetCourse(deref(c.Course))
	return g
}

// At builds a coordinate from a latitude and a longitude only.
func At(lat, lon float64) *GeoCoordinate {
	g := &GeoCoordinate{}
	g.SetLatitude(lat)
	g.SetLongitude(lon)
	return g
}

// Latitude in decimal degrees.
func (g *GeoCoordinate) Latitude() (float64, bool) { return g.latitude.get() }

// Longitude in decimal degrees.
func (g *GeoCoordinate) Longitude() (float64, bool) { return g.longitude.get() }

// Altitude in meters.
func (g *GeoCoordinate) Altitude() (float64, bool) { return g.altitude.get() }

// HorizontalAccuracy in meters.
func (g *GeoCoordinate) HorizontalAccuracy() (float64, bool) { return g.horizontalAccuracy.get() }

// VerticalAccuracy in meters.
func (g *GeoCoordinate) VerticalAccuracy() (float64, bool) { return g.verticalAccuracy.get() }

// Speed in meters per second.
func (g *GeoCoordinate) Speed() (float64, bool) { return g.speed.get() }

// Course in decimal degrees relative to true north.
func (g *GeoCoordinate) Course() (float64, bool) { return g.course.get() }

// EarthRadius in meters used by the calculations of g.
func (g *GeoCoordinate) EarthRadius() float64 {
	if r, ok := g.earthRadius.get(); ok {
		return r
	}
	return R
}

func (g *GeoCoordinate) SetLatitude(lat float64) {
	if lat > 90 || lat < -90 {
		lat = math.NaN()
	}
	g.latitude = valueOf(lat)
}

func (g *GeoCoordinate) SetLongitude(lon float64) {
	if lon > 180 || lon < -180 {
		lon = math.NaN()
	}
	g.longitude = valueOf(lon)
}

func (g *GeoCoordinate) SetAltitude(alt float64) {
	g.altitude = valueOf(alt)
}

func (g *GeoCoordinate) SetHorizontalAccuracy(acc float64) {
	g.horizontalAccuracy = valueOf(acc)
}

func (g *GeoCoordinate) SetVerticalAccuracy(acc float64) {
	g.verticalAccuracy = valueOf(acc)
}

func (g *GeoCoordinate) SetSpeed(speed float64) {
	if speed < 0 {
		speed = math.NaN()
	}
	g.speed = valueOf(speed)
}

// SetCourse accepts [0, 360]; 360 itself is kept as is.
func (g *GeoCoordinate) SetCourse(course float64) {
	if course > 360 || course < 0 {
		course = math.NaN()
	}
	g.course = valueOf(course)
}

// SetEarthRadius sets the radius in meters. NaN restores the mean earth
// radius. Zero or negative radii are stored unchecked.
func (g *GeoCoordinate) SetEarthRadius(r float64) {
	g.earthRadius = valueOf(r)
}

// IsKnown reports whether both latitude and longitude are set.
func (g *GeoCoordinate) IsKnown() bool {
	return g != nil && g.latitude.known && g.longitude.known
}

func (g *GeoCoordinate) IsUnknown() bool {
	return !g.IsKnown()
}

// LatLon returns the position of g if it is known.
func (g *GeoCoordinate) LatLon() (LatLon, bool) {
	if g.IsUnknown() {
		return LatLon{}, false
	}
	return LatLon{Lat: g.latitude.v, Lon: g.longitude.v}, true
}

// Config returns the values of g in their constructor form.
func (g *GeoCoordinate) Config() Config {
	return Config{
		Latitude:           g.latitude.ptr(),
		Longitude:          g.longitude.ptr(),
		Altitude:           g.altitude.ptr(),
		HorizontalAccuracy: g.horizontalAccuracy.ptr(),
		VerticalAccuracy:   g.verticalAccuracy.ptr(),
		Speed:              g.speed.ptr(),
		Course:             g.course.ptr(),
	}
}

// Equals compares positions only. Two unknown latitudes (or longitudes)
// are equal.
func (g *GeoCoordinate) Equals(other *GeoCoordinate) bool {
	if g == nil || other == nil {
		return false
	}
	return g.latitude == other.latitude && g.longitude == other.longitude
}

func (g *GeoCoordinate) String() string {
	return g.describe(false)
}

// StringWithUnits is String with the unit of each known value appended.
func (g *GeoCoordinate) StringWithUnits() string {
	return g.describe(true)
}

func (g *GeoCoordinate) describe(withUnits bool) string {
	if g.IsUnknown() {
		return unknown
	}

	lon := number(g.longitude.v)
	lat := number(g.latitude.v)
	alt := optional(g.altitude)
	course := optional(g.course)
	speed := optional(g.speed)
	vAcc := optional(g.verticalAccuracy)
	hAcc := optional(g.horizontalAccuracy)

	if withUnits {
		lon += " Deg"
		lat += " Deg"
		alt = withUnit(alt, " m")
		course = withUnit(course, " Deg")
		speed = withUnit(speed, " m/s")
		vAcc = withUnit(vAcc, "m")
		hAcc = withUnit(hAcc, "m")
	}

	return "long: " + lon + ", lat: " + lat +
		", alt: " + alt + ", course: " + course + ", speed: " + speed +
		", vertAcc: " + vAcc + ", horzAcc: " + hAcc
}

// number prints the shortest representation of v, switching to an exponent
// below 1e-6 and from 1e21 up: 1e-7, 1.5e+21.
func number(v float64) string {
	if a := math.Abs(v); a != 0 && (a < 1e-6 || a >= 1e21) {
		s := strconv.FormatFloat(v, 'e', -1, 64)
		i := strings.IndexByte(s, 'e')
		// exponent sign is always present, its digits are not padded
		return s[:i+2] + strings.TrimLeft(s[i+2:], "0")
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// optional renders zero as unknown too.
func optional(o value) string {
	if !o.known || o.v == 0 {
		return unknown
	}
	return number(o.v)
}

func withUnit(s, u string) string {
	if s == unknown {
		return s
	}
	return s + u
}
