package vector_math

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"go.uber.org/zap/zapcore"
)

func TestQuaternionIdentity(t *testing.T) {
	q := NewQuaternion()
	require.Equal(t, Quaternion{W: 1}, q)
	require.True(t, q.Matrix().Equal(Identity()))
	require.Equal(t, Vector3{X: 1, Y: 2, Z: 3}, q.MulVector3(Vector3{X: 1, Y: 2, Z: 3}))
}

func TestQuaternionQuarterTurn(t *testing.T) {
	q := NewQuaternionRotateAxis(math.Pi/2, Vector3{Z: 1})
	require.True(t, q.MulVector3(Vector3{X: 1}).ApproxEqual(Vector3{Y: 1}, eps))
	require.InDelta(t, 1.0, q.Magnitude(), eps)
}

func TestQuaternionMatchesMatrixRotation(t *testing.T) {
	axes := []Vector3{{X: 1}, {Y: 1}, {Z: 1}, {X: 1, Y: 2, Z: -0.5}, {X: -3, Y: 0.1, Z: 0.7}}
	angles := []float64{0, 0.1, 0.8, math.Pi / 2, 2.5, -1.3}
	vectors := []Vector3{{X: 1}, {X: 0.3, Y: -1, Z: 2}, {X: -5, Y: 4, Z: 0.25}}

	for _, axis := range axes {
		for _, angle := range angles {
			q := NewQuaternionRotateAxis(angle, axis)
			qm := q.Matrix()
			m := NewRotateAxis(angle, axis)
			require.True(t, qm.ApproxEqual(m, eps), "axis %s angle %v", axis, angle)
			for _, v := range vectors {
				require.True(t, qm.MulVector3(v).ApproxEqual(m.MulVector3(v), eps))
				require.True(t, q.MulVector3(v).ApproxEqual(m.MulVector3(v), eps))
			}
		}
	}
}

func TestQuaternionMatrixKeepsIdentityBorder(t *testing.T) {
	m := NewQuaternionRotateEuler(0.4, -0.2, 1.1).Matrix()
	require.Equal(t, [7]float64{0, 0, 0, 0, 0, 0, 1}, [7]float64{m.D, m.H, m.L, m.M, m.N, m.O, m.P})
}

func TestQuaternionMul(t *testing.T) {
	a := NewQuaternionRotateAxis(0.3, Vector3{Y: 1})
	b := NewQuaternionRotateAxis(0.5, Vector3{Y: 1})
	require.True(t, a.Mul(b).ApproxEqual(NewQuaternionRotateAxis(0.8, Vector3{Y: 1}), eps))

	// composition order matches matrix composition
	c := NewQuaternionRotateAxis(1.1, Vector3{X: 1})
	require.True(t, a.Mul(c).Matrix().ApproxEqual(a.Matrix().Mul(c.Matrix()), eps))
	require.True(t, NewQuaternion().RotateAxis(1.1, Vector3{X: 1}).ApproxEqual(c, eps))

	inPlace := a
	inPlace.MulInPlace(c)
	require.Equal(t, a.Mul(c), inPlace)

	// a non-unit operand yields a non-unit result
	require.InDelta(t, 2.0, a.Mul(Quaternion{W: 2}).Magnitude(), eps)
}

func TestQuaternionEulerRoundTrip(t *testing.T) {
	tests := []struct {
		heading, attitude, bank float64
	}{
		{0.3, 0.4, -0.7},
		{-2.0, 1.2, 2.5},
		{1.0, -1.0, 0.2},
		{0, 0, 0},
		{3.0, -1.5, -3.0},
	}
	for _, tt := range tests {
		q := NewQuaternionRotateEuler(tt.heading, tt.attitude, tt.bank)
		h, a, b := q.Euler()
		require.InDelta(t, tt.heading, h, 1e-6)
		require.InDelta(t, tt.attitude, a, 1e-6)
		require.InDelta(t, tt.bank, b, 1e-6)

		require.True(t, q.Matrix().ApproxEqual(NewRotateEuler(tt.heading, tt.attitude, tt.bank), eps))
		require.True(t, NewQuaternion().RotateEuler(tt.heading, tt.attitude, tt.bank).ApproxEqual(q, eps))
	}
}

func TestQuaternionEulerGimbalLock(t *testing.T) {
	h, a, b := NewQuaternionRotateEuler(0.3, math.Pi/2, 0).Euler()
	require.InDelta(t, 0.3, h, 1e-9)
	require.Equal(t, math.Pi/2, a)
	require.Equal(t, 0.0, b)

	h, a, b = NewQuaternionRotateEuler(0.3, -math.Pi/2, 0).Euler()
	require.InDelta(t, 0.3, h, 1e-9)
	require.Equal(t, -math.Pi/2, a)
	require.Equal(t, 0.0, b)
}

func TestQuaternionEulerGimbalThreshold(t *testing.T) {
	tests := []struct {
		name     string
		attitude float64
		locked   bool
	}{
		// x*y + z*w = sin(attitude)/2 for bank 0, locked above 0.4999
		{"just inside north", math.Pi/2 - 1e-3, true},
		{"just inside south", -(math.Pi/2 - 1e-3), true},
		{"just outside north", math.Pi/2 - 0.05, false},
		{"just outside south", -(math.Pi/2 - 0.05), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := NewQuaternionRotateEuler(0.3, tt.attitude, 0)
			test := q.X*q.Y + q.Z*q.W
			h, a, b := q.Euler()
			if tt.locked {
				require.Greater(t, math.Abs(test), gimbalThreshold)
				require.Less(t, math.Abs(test), 0.5)
				require.Equal(t, math.Copysign(math.Pi/2, tt.attitude), a)
				require.Equal(t, 0.0, b)
				require.InDelta(t, 0.3, h, 1e-3)
				return
			}
			require.Less(t, math.Abs(test), gimbalThreshold)
			require.InDelta(t, tt.attitude, a, 1e-9)
			require.InDelta(t, 0.3, h, 1e-9)
			require.InDelta(t, 0.0, b, 1e-9)
		})
	}
}

func TestQuaternionAngleAxis(t *testing.T) {
	angle, axis := NewQuaternionRotateAxis(math.Pi/2, Vector3{Y: 3}).AngleAxis()
	require.InDelta(t, math.Pi/2, angle, eps)
	require.True(t, axis.ApproxEqual(Vector3{Y: 1}, eps))

	angle, axis = NewQuaternion().AngleAxis()
	require.Equal(t, 0.0, angle)
	require.Equal(t, Vector3{X: 1}, axis)

	// drifted quaternions are renormalized first
	angle, axis = Quaternion{W: 2}.AngleAxis()
	require.Equal(t, 0.0, angle)
	require.Equal(t, Vector3{X: 1}, axis)
}

func TestQuaternionNormalize(t *testing.T) {
	q := Quaternion{W: 1, X: 1, Y: 1, Z: 1}
	require.Equal(t, Quaternion{W: 0.5, X: 0.5, Y: 0.5, Z: 0.5}, q.Normalized())
	require.Equal(t, Quaternion{W: 1, X: 1, Y: 1, Z: 1}, q)

	q.Normalize()
	require.InDelta(t, 1.0, q.Magnitude(), eps)

	zero := Quaternion{}
	zero.Normalize()
	require.Equal(t, Quaternion{}, zero)
	require.Equal(t, Quaternion{}, Quaternion{}.Normalized())
}

func TestQuaternionConjugated(t *testing.T) {
	q := NewQuaternionRotateAxis(0.9, Vector3{X: 1, Y: 1})
	require.True(t, q.Mul(q.Conjugated()).ApproxEqual(NewQuaternion(), eps))
}

func TestInterpolate(t *testing.T) {
	q := NewQuaternionRotateEuler(0.2, 0.3, 0.4)
	require.Equal(t, q, Interpolate(q, q, 0.5))

	start := NewQuaternion()
	end := NewQuaternionRotateAxis(math.Pi/2, Vector3{Z: 1})
	mid := Interpolate(start, end, 0.5)
	require.True(t, mid.ApproxEqual(NewQuaternionRotateAxis(math.Pi/4, Vector3{Z: 1}), eps))
	require.True(t, Interpolate(start, end, 0).ApproxEqual(start, eps))
	require.True(t, Interpolate(start, end, 1).ApproxEqual(end, eps))

	// close inputs snap to the target
	near := NewQuaternionRotateAxis(0.001, Vector3{Z: 1})
	require.Equal(t, near, Interpolate(start, near, 0.25))
}

func TestInterpolateOppositeIsUnnormalizedAverage(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	defer SetLogger(nil)

	got := Interpolate(NewQuaternion(), Quaternion{W: -1}, 0.3)
	require.Equal(t, Quaternion{}, got)
	require.Equal(t, 1, logs.FilterMessage("slerp inputs nearly opposite, averaging").Len())
}

func TestTransformByQuaternion(t *testing.T) {
	q := NewQuaternionRotateAxis(math.Pi, Vector3{Z: 1})
	got := TransformByQuaternion(q, points{{X: 1}})
	require.True(t, got[0].ApproxEqual(Vector3{X: -1}, eps))
}

func TestQuaternionLinmath(t *testing.T) {
	q := Quaternion{W: 1, X: 2, Y: 3, Z: 4}
	lq := q.ToLinmath()
	require.Equal(t, float32(1), lq[3])
	require.Equal(t, q, QuaternionFromLinmath(lq))
}

func TestQuaternionString(t *testing.T) {
	require.Equal(t, "Quaternion(real=1.00, imag=<0.00, 0.00, 0.00>)", NewQuaternion().String())
}
