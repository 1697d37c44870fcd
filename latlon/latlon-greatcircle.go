package latlon

import (
	"math"

	"github.com/a-bouts/geo-nav/unit"
)

type greatCircle struct{}

func (greatCircle) DistanceTo(from, to LatLon, r float64) float64 {
	φ1 := unit.ToRadians(from.Lat)
	φ2 := unit.ToRadians(to.Lat)
	Δφ := φ2 - φ1

	Δλ := unit.ToRadians(to.Lon - from.Lon)

	return r * angularDistance(φ1, φ2, Δφ, Δλ)
}

// angularDistance is the haversine central angle in radians.
func angularDistance(φ1, φ2, Δφ, Δλ float64) float64 {
	a := math.Sin(Δφ/2)*math.Sin(Δφ/2) + math.Cos(φ1)*math.Cos(φ2)*math.Sin(Δλ/2)*math.Sin(Δλ/2)
	return 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

func (greatCircle) InitialBearingTo(from, to LatLon) float64 {
	φ1 := unit.ToRadians(from.Lat)
	φ2 := unit.ToRadians(to.Lat)

	Δλ := unit.ToRadians(to.Lon - from.Lon)
	x := math.Cos(φ1)*math.Sin(φ2) - math.Sin(φ1)*math.Cos(φ2)*math.Cos(Δλ)
	y := math.Sin(Δλ) * math.Cos(φ2)
	θ := math.Atan2(y, x)

	return unit.Wrap360(unit.ToDegrees(θ))
}

// FinalBearingTo is the reverse of the initial bearing taken from the
// destination.
func (gc greatCircle) FinalBearingTo(from, to LatLon) float64 {
	return unit.Wrap360(gc.InitialBearingTo(to, from) + 180)
}

func (greatCircle) MidpointTo(from, to LatLon) LatLon {
	φ1 := unit.ToRadians(from.Lat)
	λ1 := unit.ToRadians(from.Lon)
	φ2 := unit.ToRadians(to.Lat)
	Δλ := unit.ToRadians(to.Lon - from.Lon)

	bx := math.Cos(φ2) * math.Cos(Δλ)
	by := math.Cos(φ2) * math.Sin(Δλ)
	x := math.Sqrt((math.Cos(φ1)+bx)*(math.Cos(φ1)+bx) + by*by)
	y := math.Sin(φ1) + math.Sin(φ2)

	φm := math.Atan2(y, x)
	λm := λ1 + math.Atan2(by, math.Cos(φ1)+bx)

	return LatLon{Lat: unit.ToDegrees(φm), Lon: unit.Wrap180(unit.ToDegrees(λm))}
}

func (greatCircle) Destination(from LatLon, distance, bearing, r float64) LatLon {
	φ1 := unit.ToRadians(from.Lat)
	λ1 := unit.ToRadians(from.Lon)
	θ := unit.ToRadians(bearing)

	δ := distance / r

	sinφ2 := math.Sin(φ1)*math.Cos(δ) + math.Cos(φ1)*math.Sin(δ)*math.Cos(θ)
	φ2 := math.Asin(sinφ2)
	y := math.Sin(θ) * math.Sin(δ) * math.Cos(φ1)
	x := math.Cos(δ) - math.Sin(φ1)*sinφ2
	λ2 := λ1 + math.Atan2(y, x)

	return LatLon{Lat: unit.ToDegrees(φ2), Lon: unit.Wrap180(unit.ToDegrees(λ2))}
}

// Between interpolates along the great circle, f being the fraction of the
// distance covered from `from`.
func (greatCircle) Between(from, to LatLon, f float64) LatLon {
	φ1 := unit.ToRadians(from.Lat)
	λ1 := unit.ToRadians(from.Lon)
	φ2 := unit.ToRadians(to.Lat)
	λ2 := unit.ToRadians(to.Lon)

	δ := angularDistance(φ1, φ2, φ2-φ1, λ2-λ1)
	if δ == 0 {
		return from
	}

	a := math.Sin((1-f)*δ) / math.Sin(δ)
	b := math.Sin(f*δ) / math.Sin(δ)

	x := a*math.Cos(φ1)*math.Cos(λ1) + b*math.Cos(φ2)*math.Cos(λ2)
	y := a*math.Cos(φ1)*math.Sin(λ1) + b*math.Cos(φ2)*math.Sin(λ2)
	z := a*math.Sin(φ1) + b*math.Sin(φ2)

	φ := math.Atan2(z, math.Sqrt(x*x+y*y))
	λ := math.Atan2(y, x)

	return LatLon{Lat: unit.ToDegrees(φ), Lon: unit.Wrap180(unit.ToDegrees(λ))}
}
