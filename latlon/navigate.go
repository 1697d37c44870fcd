package latlon

import "math"

// Path selects the line followed between two coordinates.
type Path int

const (
	// GreatCircle is the shortest path on the sphere, its bearing changes
	// along the way.
	GreatCircle Path = iota
	// Loxodrome (rhumb line) keeps a constant bearing.
	Loxodrome
)

func (p Path) String() string {
	if p == Loxodrome {
		return "loxodrome"
	}
	return "great-circle"
}

type navigator interface {
	DistanceTo(from, to LatLon, r float64) float64
	InitialBearingTo(from, to LatLon) float64
	FinalBearingTo(from, to LatLon) float64
	MidpointTo(from, to LatLon) LatLon
	Destination(from LatLon, distance, bearing, r float64) LatLon
}

func (p Path) navigator() navigator {
	if p == Loxodrome {
		return rhumbLine{}
	}
	return greatCircle{}
}

// positions returns both positions when g and other are known.
func (g *GeoCoordinate) positions(other *GeoCoordinate) (LatLon, LatLon, bool) {
	from, ok := g.LatLon()
	if !ok {
		return LatLon{}, LatLon{}, false
	}
	to, ok := other.LatLon()
	if !ok {
		return LatLon{}, LatLon{}, false
	}
	return from, to, true
}

// derive builds a result coordinate sharing the earth radius of g. It
// returns nil when the computed position is not a valid one.
func (g *GeoCoordinate) derive(ll LatLon) *GeoCoordinate {
	n := &GeoCoordinate{earthRadius: g.earthRadius}
	n.SetLatitude(ll.Lat)
	n.SetLongitude(ll.Lon)
	if n.IsUnknown() {
		return nil
	}
	return n
}

// DistanceTo returns the distance in meters from g to other along path.
// Altitudes are ignored. ok is false when either position is unknown.
func (g *GeoCoordinate) DistanceTo(other *GeoCoordinate, path Path) (float64, bool) {
	from, to, ok := g.positions(other)
	if !ok {
		return 0, false
	}
	return path.navigator().DistanceTo(from, to, g.EarthRadius()), true
}

// InitialBearingTo returns the bearing in [0, 360) to follow when leaving g
// for other.
func (g *GeoCoordinate) InitialBearingTo(other *GeoCoordinate, path Path) (float64, bool) {
	from, to, ok := g.positions(other)
	if !ok {
		return 0, false
	}
	return path.navigator().InitialBearingTo(from, to), true
}

// FinalBearingTo returns the bearing in [0, 360) held when reaching other.
func (g *GeoCoordinate) FinalBearingTo(other *GeoCoordinate, path Path) (float64, bool) {
	from, to, ok := g.positions(other)
	if !ok {
		return 0, false
	}
	return path.navigator().FinalBearingTo(from, to), true
}

// MidBearingTo returns the bearing held at the midpoint between g and other.
func (g *GeoCoordinate) MidBearingTo(other *GeoCoordinate, path Path) (float64, bool) {
	if g.IsUnknown() || other.IsUnknown() {
		return 0, false
	}
	if path == Loxodrome {
		return g.FinalBearingTo(other, Loxodrome)
	}
	return g.FinalBearingTo(g.MidPointTo(other, GreatCircle), GreatCircle)
}

// MidPointTo returns the point halfway between g and other along path, or
// nil.
func (g *GeoCoordinate) MidPointTo(other *GeoCoordinate, path Path) *GeoCoordinate {
	from, to, ok := g.positions(other)
	if !ok {
		return nil
	}
	return g.derive(path.navigator().MidpointTo(from, to))
}

// PointBetween returns the point at fraction f of the great circle distance
// from g to other: 0 is g, 1 is other. A NaN fraction is taken as 1.
func (g *GeoCoordinate) PointBetween(other *GeoCoordinate, f float64) *GeoCoordinate {
	from, to, ok := g.positions(other)
	if !ok {
		return nil
	}
	if math.IsNaN(f) {
		f = 1
	}
	return g.derive(greatCircle{}.Between(from, to, f))
}

// DestinationPoint returns the point reached after distance meters on the
// initial bearing (degrees) along path. It returns nil when g is unknown or
// distance or bearing are not finite.
func (g *GeoCoordinate) DestinationPoint(distance, bearing float64, path Path) *GeoCoordinate {
	from, ok := g.LatLon()
	if !ok {
		return nil
	}
	if !finite(distance) || !finite(bearing) {
		return nil
	}
	return g.derive(path.navigator().Destination(from, distance, bearing, g.EarthRadius()))
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
