package vector_math

import (
	"math"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats/scalar"
)

var logger = zap.NewNop()

// SetLogger installs the logger used for fallback paths (degenerate axes, slerp guards). It is meant
// to be called once during start-up, a nil logger restores the no-op default.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

// ToRad is a helper function to turn degree to radians
func ToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// ToDeg is a helper function to turn radians to degree
func ToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

func approx(a, b, tol float64) bool {
	return scalar.EqualWithinAbs(a, b, tol)
}
