package unit

import "math"

// Coursify brings any angle back to a course in [0, 360).
// -20 gives 340, 400 gives 40. 360 gives 0.
func Coursify(course float64) float64 {
	if course > 0 {
		for course > 360 {
			course -= 360
		}
		if course == 360 {
			course = 0
		}
		return course
	}

	for course < -360 {
		course += 360
	}
	if course != 0 {
		course += 360
	}
	return course
}

// TrackBack returns the reciprocal course.
func TrackBack(course float64) float64 {
	return Coursify(course - 180)
}

// Wrap360 normalises a bearing in degrees to [0, 360).
func Wrap360(d float64) float64 {
	b := math.Mod(d, 360)
	if b < 0 {
		b += 360
	}
	if b == 360 {
		return 0
	}
	return b
}

// Wrap180 normalises a longitude in degrees to (-180, 180].
func Wrap180(d float64) float64 {
	l := math.Mod(d+180, 360)
	if l <= 0 {
		l += 360
	}
	return l - 180
}
