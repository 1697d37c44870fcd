package latlon

import (
	"math"
	"testing"
)

func round(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}

func TestDistanceTo(t *testing.T) {
	p1 := At(50.0664, -5.7147)
	p2 := At(58.6441, -3.07)
	d, ok := p1.DistanceTo(p2, GreatCircle)
	if !ok || math.Abs(d-968900) > 500 {
		t.Errorf("%s.DistanceTo(%s) = %f, %t; want 968900", p1, p2, d, ok)
	}

	p1 = At(52.205, 0.119)
	p2 = At(48.857, 2.351)
	d, _ = p1.DistanceTo(p2, GreatCircle)
	if math.Round(d) != 404279 {
		t.Errorf("%s.DistanceTo(%s) = %f; want 404279", p1, p2, d)
	}
}

func TestDistanceToIsSymmetric(t *testing.T) {
	points := []*GeoCoordinate{
		At(52.205, 0.119),
		At(48.857, 2.351),
		At(-33.8688, 151.2093),
		At(40.7128, -74.006),
		At(0, 179.5),
		At(-89, -179.5),
	}
	for _, a := range points {
		for _, b := range points {
			ab, _ := a.DistanceTo(b, GreatCircle)
			ba, _ := b.DistanceTo(a, GreatCircle)
			if math.Abs(ab-ba) > 1e-6*math.Max(ab, 1) {
				t.Errorf("%s -> %s = %f; reverse = %f", a, b, ab, ba)
			}
		}
	}
}

func TestDistanceToSelf(t *testing.T) {
	for _, p := range []*GeoCoordinate{At(0, 0), At(51.127, 1.338), At(-90, 180), At(90, -180)} {
		for _, path := range []Path{GreatCircle, Loxodrome} {
			d, ok := p.DistanceTo(p, path)
			if !ok || d != 0 {
				t.Errorf("%s.DistanceTo(self, %s) = %f, %t; want 0, true", p, path, d, ok)
			}
		}
	}
}

func TestDistanceToUsesEarthRadius(t *testing.T) {
	p1 := At(0, 0)
	p1.SetEarthRadius(1)
	d, _ := p1.DistanceTo(At(0, 90), GreatCircle)
	if math.Abs(d-math.Pi/2) > 1e-12 {
		t.Errorf("DistanceTo on unit sphere = %f; want π/2", d)
	}
}

func TestRhumbDistanceTo(t *testing.T) {
	p1 := At(51.127, 1.338)
	p2 := At(50.964, 1.853)
	d, _ := p1.DistanceTo(p2, Loxodrome)
	if math.Round(d) != 40308 {
		t.Errorf("%s.rhumbDistanceTo(%s) = %f; want 40308", p1, p2, d)
	}

	// across the anti-meridian, along the equator
	p1 = At(0, 179)
	p2 = At(0, -179)
	d, _ = p1.DistanceTo(p2, Loxodrome)
	if math.Round(d) != 222390 {
		t.Errorf("%s.rhumbDistanceTo(%s) = %f; want 222390", p1, p2, d)
	}
	gc, _ := p1.DistanceTo(p2, GreatCircle)
	if math.Abs(gc-d) > 1e-6 {
		t.Errorf("great circle %f and rhumb %f differ along the equator", gc, d)
	}
}

func TestInitialBearingTo(t *testing.T) {
	p1 := At(50.0664, -5.7147)
	p2 := At(58.6441, -3.07)
	b, ok := p1.InitialBearingTo(p2, GreatCircle)
	if !ok || math.Abs(b-9.1) > 0.5 {
		t.Errorf("%s.InitialBearingTo(%s) = %f, %t; want 9.1", p1, p2, b, ok)
	}

	p1 = At(52.205, 0.119)
	p2 = At(48.857, 2.351)
	b, _ = p1.InitialBearingTo(p2, GreatCircle)
	if round(b, 1) != 156.2 {
		t.Errorf("%s.InitialBearingTo(%s) = %f; want 156.2", p1, p2, b)
	}

	b, _ = At(0, 0).InitialBearingTo(At(0, -10), GreatCircle)
	if math.Round(b) != 270 {
		t.Errorf("bearing due west = %f; want 270", b)
	}
}

func TestRhumbBearingTo(t *testing.T) {
	p1 := At(51.127, 1.338)
	p2 := At(50.964, 1.853)
	b, _ := p1.InitialBearingTo(p2, Loxodrome)
	if round(b, 1) != 116.7 {
		t.Errorf("%s.rhumbBearingTo(%s) = %f; want 116.7", p1, p2, b)
	}

	p1 = At(-5, 175)
	p2 = At(5, -175)
	b, _ = p1.InitialBearingTo(p2, Loxodrome)
	if math.Round(b) != 45.0 {
		t.Errorf("%s.rhumbBearingTo(%s) = %f; want 45", p1, p2, b)
	}

	p1 = At(-5, -175)
	p2 = At(5, 175)
	b, _ = p1.InitialBearingTo(p2, Loxodrome)
	if math.Round(b) != 315.0 {
		t.Errorf("%s.rhumbBearingTo(%s) = %f; want 315", p1, p2, b)
	}
}

func TestFinalBearingTo(t *testing.T) {
	p1 := At(52.205, 0.119)
	p2 := At(48.857, 2.351)
	b, ok := p1.FinalBearingTo(p2, GreatCircle)
	if !ok || round(b, 1) != 157.9 {
		t.Errorf("%s.FinalBearingTo(%s) = %f, %t; want 157.9", p1, p2, b, ok)
	}

	initial, _ := p1.InitialBearingTo(p2, Loxodrome)
	final, _ := p1.FinalBearingTo(p2, Loxodrome)
	if initial != final {
		t.Errorf("rhumb final bearing %f != initial bearing %f", final, initial)
	}
}

func TestMidBearingTo(t *testing.T) {
	p1 := At(52.205, 0.119)
	p2 := At(48.857, 2.351)

	b, ok := p1.MidBearingTo(p2, GreatCircle)
	if !ok || round(b, 2) != 157.07 {
		t.Errorf("%s.MidBearingTo(%s) = %f, %t; want 157.07", p1, p2, b, ok)
	}

	b, _ = p1.MidBearingTo(p2, Loxodrome)
	want, _ := p1.InitialBearingTo(p2, Loxodrome)
	if b != want {
		t.Errorf("%s.rhumbMidBearingTo(%s) = %f; want %f", p1, p2, b, want)
	}

	if _, ok := p1.MidBearingTo(&GeoCoordinate{}, GreatCircle); ok {
		t.Errorf("MidBearingTo(unknown) succeeded")
	}
}

func TestMidPointTo(t *testing.T) {
	p1 := At(52.205, 0.119)
	p2 := At(48.857, 2.351)
	m := p1.MidPointTo(p2, GreatCircle)
	if m == nil {
		t.Fatalf("%s.MidPointTo(%s) = nil", p1, p2)
	}
	lat, _ := m.Latitude()
	lon, _ := m.Longitude()
	if round(lat, 4) != 50.5363 || round(lon, 4) != 1.2746 {
		t.Errorf("%s.MidPointTo(%s) = {%f,%f}; want {50.5363,1.2746}", p1, p2, lat, lon)
	}

	m = At(0, 179).MidPointTo(At(0, -179), GreatCircle)
	lon, _ = m.Longitude()
	if math.Abs(math.Abs(lon)-180) > 1e-9 {
		t.Errorf("midpoint across the anti-meridian at lon %f; want 180", lon)
	}
}

func TestRhumbMidPointTo(t *testing.T) {
	p1 := At(51.127, 1.338)
	p2 := At(50.964, 1.853)
	m := p1.MidPointTo(p2, Loxodrome)
	lat, _ := m.Latitude()
	lon, _ := m.Longitude()
	if round(lat, 4) != 51.0455 || round(lon, 4) != 1.5957 {
		t.Errorf("%s.rhumbMidPointTo(%s) = {%f,%f}; want {51.0455,1.5957}", p1, p2, lat, lon)
	}

	// parallel of latitude across the anti-meridian
	m = At(0, 179).MidPointTo(At(0, -179), Loxodrome)
	if m == nil {
		t.Fatalf("rhumb midpoint along the equator = nil")
	}
	lat, _ = m.Latitude()
	lon, _ = m.Longitude()
	if math.Abs(lat) > 1e-9 || math.Abs(math.Abs(lon)-180) > 1e-9 {
		t.Errorf("rhumb midpoint along the equator = {%f,%f}; want {0,180}", lat, lon)
	}

	m = At(40, 10).MidPointTo(At(40, 20), Loxodrome)
	lon, _ = m.Longitude()
	if math.Abs(lon-15) > 1e-9 {
		t.Errorf("rhumb midpoint along 40N at lon %f; want 15", lon)
	}
}

func TestMidPointToKeepsOperands(t *testing.T) {
	p1 := New(Config{Latitude: Float(10), Longitude: Float(10), Speed: Float(5)})
	p2 := At(20, 20)
	p1.SetEarthRadius(1000)

	m := p1.MidPointTo(p2, GreatCircle)
	if m == p1 || m == p2 {
		t.Fatalf("MidPointTo returned an operand")
	}
	if !p2.Equals(At(20, 20)) || !p1.Equals(At(10, 10)) {
		t.Errorf("MidPointTo modified its operands")
	}
	if _, ok := m.Speed(); ok {
		t.Errorf("midpoint carries a speed")
	}
	if r := m.EarthRadius(); r != 1000 {
		t.Errorf("midpoint earth radius = %f; want 1000", r)
	}
}

func TestPointBetween(t *testing.T) {
	p1 := At(52.205, 0.119)
	p2 := At(48.857, 2.351)

	p := p1.PointBetween(p2, 0.25)
	lat, _ := p.Latitude()
	lon, _ := p.Longitude()
	if round(lat, 4) != 51.3721 || round(lon, 4) != 0.7073 {
		t.Errorf("%s.PointBetween(%s, 0.25) = {%f,%f}; want {51.3721,0.7073}", p1, p2, lat, lon)
	}

	pairs := [][2]*GeoCoordinate{
		{p1, p2},
		{At(-33.8688, 151.2093), At(40.7128, -74.006)},
		{At(0, 179), At(10, -170)},
	}
	for _, pair := range pairs {
		a, b := pair[0], pair[1]
		for f, want := range map[float64]*GeoCoordinate{0: a, 1: b, math.NaN(): b} {
			got := a.PointBetween(b, f)
			if d, _ := got.DistanceTo(want, GreatCircle); d > 1e-3 {
				t.Errorf("%s.PointBetween(%s, %f) = %s; %f m away from %s", a, b, f, got, d, want)
			}
		}
	}

	same := p1.PointBetween(At(52.205, 0.119), 0.5)
	if same == nil || !same.Equals(p1) {
		t.Errorf("PointBetween identical points = %v; want %s", same, p1)
	}
}

func TestDestinationPoint(t *testing.T) {
	p1 := At(51.4778, -0.0015)
	p2 := p1.DestinationPoint(7794, 300.7, GreatCircle)
	lat, _ := p2.Latitude()
	lon, _ := p2.Longitude()
	if round(lat, 4) != 51.5135 || round(lon, 4) != -0.0983 {
		t.Errorf("%s.DestinationPoint(7794, 300.7) = {%f,%f}; want {51.5135,-0.0983}", p1, lat, lon)
	}

	p2 = At(0, 179).DestinationPoint(R*math.Pi/90, 90, GreatCircle)
	lon, _ = p2.Longitude()
	if round(lon, 6) != -179 {
		t.Errorf("DestinationPoint across the anti-meridian at lon %f; want -179", lon)
	}
}

func TestDestinationPointRoundTrip(t *testing.T) {
	starts := []*GeoCoordinate{At(0, 0), At(52.205, 0.119), At(-45, 170), At(70, -120)}
	for _, a := range starts {
		for _, bearing := range []float64{0, 45, 90, 135, 180, 225, 270, 315} {
			for _, d := range []float64{1, 1000, 250000, 2000000} {
				b := a.DestinationPoint(d, bearing, GreatCircle)
				back, ok := b.DistanceTo(a, GreatCircle)
				if !ok || math.Abs(back-d) > 1e-6*d+1e-6 {
					t.Errorf("%s.DestinationPoint(%f, %f) is %f m away; want %f", a, d, bearing, back, d)
				}
			}
		}
	}
}

func TestRhumbDestinationPoint(t *testing.T) {
	p1 := At(51.127, 1.338)
	p2 := p1.DestinationPoint(40300.0, 116.7, Loxodrome)
	lat, _ := p2.Latitude()
	lon, _ := p2.Longitude()
	if round(lat, 4) != 50.9642 || round(lon, 4) != 1.8530 {
		t.Errorf("%s.rhumbDestinationPoint(40300.0, 116.7) = {%f,%f}; want {50.9642,1.8530}", p1, lat, lon)
	}

	// east along the equator
	p2 = At(0, 0).DestinationPoint(R*math.Pi/2, 90, Loxodrome)
	lat, _ = p2.Latitude()
	lon, _ = p2.Longitude()
	if math.Abs(lat) > 1e-9 || math.Abs(lon-90) > 1e-9 {
		t.Errorf("rhumb destination due east = {%f,%f}; want {0,90}", lat, lon)
	}

	// past the north pole
	p2 = At(89, 0).DestinationPoint(R*math.Pi/90, 0, Loxodrome)
	lat, _ = p2.Latitude()
	if math.Abs(lat-89) > 1e-9 {
		t.Errorf("rhumb destination past the pole at lat %f; want 89", lat)
	}

	// past the south pole
	p2 = At(-89, 0).DestinationPoint(R*math.Pi/90, 180, Loxodrome)
	if p2 == nil {
		t.Fatalf("rhumb destination past the south pole = nil")
	}
	lat, _ = p2.Latitude()
	if math.Abs(lat+89) > 1e-9 {
		t.Errorf("rhumb destination past the south pole at lat %f; want -89", lat)
	}
}

func TestDestinationPointInvalid(t *testing.T) {
	// a rhumb line has no defined longitude leaving a pole
	if d := At(-90, 0).DestinationPoint(100000, 0, Loxodrome); d != nil {
		t.Errorf("rhumb DestinationPoint from the south pole = %s; want nil", d)
	}
	if d := At(-90, 0).DestinationPoint(100000, 0, GreatCircle); d == nil {
		t.Errorf("great circle DestinationPoint from the south pole = nil")
	}

	p := At(10, 10)
	if d := p.DestinationPoint(math.NaN(), 10, GreatCircle); d != nil {
		t.Errorf("DestinationPoint(NaN, 10) = %s; want nil", d)
	}
	if d := p.DestinationPoint(1000, math.NaN(), Loxodrome); d != nil {
		t.Errorf("DestinationPoint(1000, NaN) = %s; want nil", d)
	}
	if d := p.DestinationPoint(math.Inf(1), 0, GreatCircle); d != nil {
		t.Errorf("DestinationPoint(+Inf, 0) = %s; want nil", d)
	}
	if d := New(Config{}).DestinationPoint(1000, 10, GreatCircle); d != nil {
		t.Errorf("unknown.DestinationPoint = %s; want nil", d)
	}
}

func TestUnknownOperands(t *testing.T) {
	known := At(10, 10)
	operands := map[string][2]*GeoCoordinate{
		"unknown other":    {known, New(Config{})},
		"nil other":        {known, nil},
		"unknown receiver": {New(Config{Longitude: Float(5)}), known},
		"nil receiver":     {nil, known},
	}

	for name, o := range operands {
		a, b := o[0], o[1]
		for _, path := range []Path{GreatCircle, Loxodrome} {
			if _, ok := a.DistanceTo(b, path); ok {
				t.Errorf("%s: DistanceTo(%s) succeeded", name, path)
			}
			if _, ok := a.InitialBearingTo(b, path); ok {
				t.Errorf("%s: InitialBearingTo(%s) succeeded", name, path)
			}
			if _, ok := a.FinalBearingTo(b, path); ok {
				t.Errorf("%s: FinalBearingTo(%s) succeeded", name, path)
			}
			if _, ok := a.MidBearingTo(b, path); ok {
				t.Errorf("%s: MidBearingTo(%s) succeeded", name, path)
			}
			if m := a.MidPointTo(b, path); m != nil {
				t.Errorf("%s: MidPointTo(%s) = %s", name, path, m)
			}
		}
		if p := a.PointBetween(b, 0.5); p != nil {
			t.Errorf("%s: PointBetween = %s", name, p)
		}
	}
}

func TestLongitudesAreNormalised(t *testing.T) {
	a := At(10, 170)
	for _, bearing := range []float64{0, 60, 90, 120, 240, 270, 300} {
		for _, path := range []Path{GreatCircle, Loxodrome} {
			p := a.DestinationPoint(3000000, bearing, path)
			lon, ok := p.Longitude()
			if !ok || lon <= -180 || lon > 180 {
				t.Errorf("DestinationPoint(%f, %s) longitude %f, %t", bearing, path, lon, ok)
			}
			b, ok := a.InitialBearingTo(p, path)
			if !ok || b < 0 || b >= 360 {
				t.Errorf("InitialBearingTo(%s) = %f, %t; want [0, 360)", path, b, ok)
			}
		}
	}
}
