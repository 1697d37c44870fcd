package latlon

import (
	"math"

	"github.com/a-bouts/geo-nav/unit"
)

const π = math.Pi

// Below this isometric latitude difference the course is taken as E-W and
// the Mercator stretch factor Δφ/Δψ (0/0) is replaced by cos φ.
const ε = 10e-12

type rhumbLine struct{}

// isometric returns the Mercator projected latitude difference between φ1
// and φ2.
func isometric(φ1, φ2 float64) float64 {
	return math.Log(math.Tan(φ2/2+π/4) / math.Tan(φ1/2+π/4))
}

func stretch(Δφ, Δψ, φ1 float64) float64 {
	if math.Abs(Δψ) > ε {
		return Δφ / Δψ
	}
	return math.Cos(φ1)
}

func (rhumbLine) DistanceTo(from, to LatLon, r float64) float64 {
	φ1 := unit.ToRadians(from.Lat)
	φ2 := unit.ToRadians(to.Lat)
	Δφ := φ2 - φ1

	Δλ := unit.ToRadians(math.Abs(to.Lon - from.Lon))
	if Δλ > π {
		Δλ -= 2 * π
	}

	q := stretch(Δφ, isometric(φ1, φ2), φ1)

	// pythagoras on the stretched Mercator projection
	δ := math.Sqrt(Δφ*Δφ + q*q*Δλ*Δλ)

	return δ * r
}

func (rhumbLine) InitialBearingTo(from, to LatLon) float64 {
	φ1 := unit.ToRadians(from.Lat)
	φ2 := unit.ToRadians(to.Lat)

	// take the shorter way across the anti-meridian
	Δλ := unit.ToRadians(to.Lon - from.Lon)
	if Δλ > π {
		Δλ -= 2 * π
	}
	if Δλ < -π {
		Δλ += 2 * π
	}

	θ := math.Atan2(Δλ, isometric(φ1, φ2))

	return unit.Wrap360(unit.ToDegrees(θ))
}

// FinalBearingTo equals the initial bearing: a rhumb line keeps its course.
func (rl rhumbLine) FinalBearingTo(from, to LatLon) float64 {
	return rl.InitialBearingTo(from, to)
}

func (rhumbLine) MidpointTo(from, to LatLon) LatLon {
	φ1 := unit.ToRadians(from.Lat)
	λ1 := unit.ToRadians(from.Lon)
	φ2 := unit.ToRadians(to.Lat)
	λ2 := unit.ToRadians(to.Lon)

	if math.Abs(λ2-λ1) > π {
		λ1 += 2 * π
	}

	φm := (φ1 + φ2) / 2
	f1 := math.Tan(π/4 + φ1/2)
	f2 := math.Tan(π/4 + φ2/2)
	fm := math.Tan(π/4 + φm/2)
	λm := ((λ2-λ1)*math.Log(fm) + λ1*math.Log(f2) - λ2*math.Log(f1)) / math.Log(f2/f1)

	// along a parallel of latitude
	if math.IsNaN(λm) || math.IsInf(λm, 0) {
		λm = (λ1 + λ2) / 2
	}

	return LatLon{Lat: unit.ToDegrees(φm), Lon: unit.Wrap180(unit.ToDegrees(λm))}
}

func (rhumbLine) Destination(from LatLon, distance, bearing, r float64) LatLon {
	φ1 := unit.ToRadians(from.Lat)
	λ1 := unit.ToRadians(from.Lon)
	θ := unit.ToRadians(bearing)

	δ := distance / r

	Δφ := δ * math.Cos(θ)
	φ2 := φ1 + Δφ

	// past a pole
	if math.Abs(φ2) > π/2 {
		if φ2 > 0 {
			φ2 = π - φ2
		} else {
			φ2 = -π - φ2
		}
	}

	q := stretch(Δφ, isometric(φ1, φ2), φ1)

	Δλ := δ * math.Sin(θ) / q
	λ2 := λ1 + Δλ

	return LatLon{Lat: unit.ToDegrees(φ2), Lon: unit.Wrap180(unit.ToDegrees(λ2))}
}
