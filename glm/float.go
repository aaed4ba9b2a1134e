package glm

import (
	"fmt"

	"github.com/oliverbestmann/geomalg/num"
)

type float interface {
	num.FloatNumber
}

type signed interface {
	num.SignedNumber
}

type numeric interface {
	num.Number
}

// term formats a non-leading coefficient of a sum, always with a sign.
func term[T numeric](value T) string {
	if value < 0 {
		return fmt.Sprint(value)
	}

	return "+" + fmt.Sprint(value)
}
