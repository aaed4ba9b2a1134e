package glm

import (
	"math"

	"github.com/oliverbestmann/geomalg/num"
)

// Rad is an angle in radians.
type Rad float64

func DegToRad[T numeric](deg T) Rad {
	return Rad(float64(deg) * (math.Pi / 180))
}

func RadToDeg[T numeric](rad Rad) (deg T) {
	return T(rad * (180 / math.Pi))
}

// sincos evaluates in the precision of T.
func sincos[T float](angle Rad) (sin, cos T) {
	return num.Sincos(T(angle))
}

// sincosAs evaluates in float64 and converts the results to T.
func sincosAs[T numeric](angle Rad) (sin, cos T) {
	s, c := math.Sincos(float64(angle))
	return T(s), T(c)
}
