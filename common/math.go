package common

import "math"

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Repeat loops t so that it is never larger than length and never smaller than 0.
func Repeat(t, length float64) float64 {
	return Clamp(t-math.Floor(t/length)*length, 0, length)
}

// DeltaAngle returns the shortest signed difference between two angles in degrees.
func DeltaAngle(current, target float64) float64 {
	delta := Repeat(target-current, 360)
	if delta > 180 {
		delta -= 360
	}
	return delta
}

// NormalizeAngle wraps degrees into (-180, 180].
func NormalizeAngle(deg float64) float64 {
	for deg > 180 {
		deg -= 360
	}
	for deg <= -180 {
		deg += 360
	}
	return deg
}

func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Forward returns the unit heading on the X/Z plane for a yaw in degrees.
// Yaw 0 faces +Z and increases clockwise when seen from above.
func Forward(yawDeg float64) (x, z float64) {
	r := Radians(yawDeg)
	return math.Sin(r), math.Cos(r)
}

// Right returns the unit strafe direction for a yaw in degrees.
func Right(yawDeg float64) (x, z float64) {
	r := Radians(yawDeg)
	return math.Cos(r), -math.Sin(r)
}
