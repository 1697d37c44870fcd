package unit

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

const π = math.Pi

const (
	nmInKm      = 1.852
	feetInMeter = 3.28084
	feetInFL    = 100.0
)

var ErrUnknownConversion = errors.New("unknown conversion")

func ToRadians(a float64) float64 {
	return a * π / 180.0
}

func ToDegrees(a float64) float64 {
	return a * 180.0 / π
}

func MeterToKm(m float64) float64 {
	return m / 1000
}

func KmToMeter(km float64) float64 {
	return km * 1000
}

// NmToKm converts nautical miles to kilometers, and knots to km/h.
func NmToKm(nm float64) float64 {
	return nm * nmInKm
}

// KmToNm converts kilometers to nautical miles, and km/h to knots.
func KmToNm(km float64) float64 {
	return km / nmInKm
}

func MeterToFeet(m float64) float64 {
	return m * feetInMeter
}

func FeetToMeter(ft float64) float64 {
	return ft / feetInMeter
}

// FeetToFL converts an altitude in feet to a flight level.
func FeetToFL(ft float64) float64 {
	return ft / feetInFL
}

func FLToFeet(fl float64) float64 {
	return fl * feetInFL
}

var conversions = map[string]func(float64) float64{
	"deg-to-rad": ToRadians,
	"rad-to-deg": ToDegrees,
	"coursify":   Coursify,
	"track-back": TrackBack,
	"m-to-km":    MeterToKm,
	"km-to-m":    KmToMeter,
	"nm-to-km":   NmToKm,
	"km-to-nm":   KmToNm,
	"m-to-ft":    MeterToFeet,
	"ft-to-m":    FeetToMeter,
	"ft-to-fl":   FeetToFL,
	"fl-to-ft":   FLToFeet,
	"wrap360":    Wrap360,
	"wrap180":    Wrap180,
}

// Convert applies the conversion registered under name to v.
func Convert(name string, v float64) (float64, error) {
	f, ok := conversions[name]
	if !ok {
		return 0, fmt.Errorf("%q: %w", name, ErrUnknownConversion)
	}
	return f(v), nil
}

// Conversions lists the names accepted by Convert.
func Conversions() []string {
	names := make([]string, 0, len(conversions))
	for name := range conversions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
