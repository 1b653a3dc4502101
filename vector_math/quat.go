package vector_math

import (
	"fmt"
	"math"

	"go.uber.org/zap"
)

// Quaternion naming and conventions follow
// http://www.euclideanspace.com/maths/algebra/realNormedAlgebra/quaternions
// W is the real part, (X, Y, Z) the imaginary parts.
type Quaternion struct {
	W, X, Y, Z float64
}

// QuaternionTransformable is implemented by values that know how to rotate themselves by a quaternion.
type QuaternionTransformable[T any] interface {
	ApplyQuaternion(q Quaternion) T
}

// TransformByQuaternion delegates to t's own quaternion transform.
func TransformByQuaternion[T QuaternionTransformable[T]](q Quaternion, t T) T {
	return t.ApplyQuaternion(q)
}

const (
	// below this the rotation axis can not be recovered reliably
	angleAxisEpsilon = 0.001
	gimbalThreshold  = 0.4999
	slerpEpsilon     = 0.01
)

// NewQuaternion returns the identity rotation.
func NewQuaternion() Quaternion {
	return Quaternion{W: 1}
}

func (q Quaternion) String() string {
	return fmt.Sprintf("Quaternion(real=%.2f, imag=<%.2f, %.2f, %.2f>)", q.W, q.X, q.Y, q.Z)
}

func (q Quaternion) ApproxEqual(o Quaternion, tol float64) bool {
	return approx(q.W, o.W, tol) && approx(q.X, o.X, tol) && approx(q.Y, o.Y, tol) && approx(q.Z, o.Z, tol)
}

// Mul is the Hamilton product q * o, i.e. rotate by o first, then by q.
func (q Quaternion) Mul(o Quaternion) Quaternion {
	return Quaternion{
		X: q.X*o.W + q.Y*o.Z - q.Z*o.Y + q.W*o.X,
		Y: -q.X*o.Z + q.Y*o.W + q.Z*o.X + q.W*o.Y,
		Z: q.X*o.Y - q.Y*o.X + q.Z*o.W + q.W*o.Z,
		W: -q.X*o.X - q.Y*o.Y - q.Z*o.Z + q.W*o.W,
	}
}

func (q *Quaternion) MulInPlace(o Quaternion) *Quaternion {
	*q = q.Mul(o)
	return q
}

// MulVector3 rotates v by q using the expanded form of q * v * q^-1.
func (q Quaternion) MulVector3(v Vector3) Vector3 {
	w, x, y, z := q.W, q.X, q.Y, q.Z
	vx, vy, vz := v.X, v.Y, v.Z
	return Vector3{
		X: w*w*vx + 2*y*w*vz - 2*z*w*vy +
			x*x*vx + 2*y*x*vy + 2*z*x*vz -
			z*z*vx - y*y*vx,
		Y: 2*x*y*vx + y*y*vy + 2*z*y*vz +
			2*w*z*vx - z*z*vy + w*w*vy -
			2*x*w*vz - x*x*vy,
		Z: 2*x*z*vx + 2*y*z*vy +
			z*z*vz - 2*w*y*vx - y*y*vz +
			2*w*x*vy - x*x*vz + w*w*vz,
	}
}

func (q Quaternion) Dot(o Quaternion) float64 {
	return q.W*o.W + q.X*o.X + q.Y*o.Y + q.Z*o.Z
}

func (q Quaternion) Magnitude() float64 {
	return math.Sqrt(q.MagnitudeSquared())
}

func (q Quaternion) MagnitudeSquared() float64 {
	return q.Dot(q)
}

func (q Quaternion) Conjugated() Quaternion {
	return Quaternion{W: q.W, X: -q.X, Y: -q.Y, Z: -q.Z}
}

// Normalize scales q to unit length in place. A zero quaternion is left untouched.
func (q *Quaternion) Normalize() *Quaternion {
	d := q.Magnitude()
	if d != 0 {
		q.W /= d
		q.X /= d
		q.Y /= d
		q.Z /= d
	}
	return q
}

func (q Quaternion) Normalized() Quaternion {
	q.Normalize()
	return q
}

func (q Quaternion) RotateAxis(angle float64, axis Vector3) Quaternion {
	return q.Mul(NewQuaternionRotateAxis(angle, axis))
}

func (q Quaternion) RotateEuler(heading, attitude, bank float64) Quaternion {
	return q.Mul(NewQuaternionRotateEuler(heading, attitude, bank))
}

// AngleAxis recovers the rotation angle and axis. Near the identity the axis is undefined and
// (1, 0, 0) is returned, callers should check the angle first.
func (q Quaternion) AngleAxis() (float64, Vector3) {
	if q.W > 1 {
		q = q.Normalized()
	}
	w := math.Max(-1, math.Min(1, q.W))
	angle := 2 * math.Acos(w)
	s := math.Sqrt(1 - w*w)
	if s < angleAxisEpsilon {
		logger.Debug("rotation axis undefined, using x-axis", zap.Float64("angle", angle))
		return angle, Vector3{X: 1}
	}
	return angle, Vector3{X: q.X / s, Y: q.Y / s, Z: q.Z / s}
}

// Euler returns heading, attitude and bank. Close to the poles (gimbal lock) the bank is pinned to
// zero and the whole rotation is expressed through the heading.
func (q Quaternion) Euler() (heading, attitude, bank float64) {
	t := q.X*q.Y + q.Z*q.W
	switch {
	case t > gimbalThreshold:
		return 2 * math.Atan2(q.X, q.W), math.Pi / 2, 0
	case t < -gimbalThreshold:
		return -2 * math.Atan2(q.X, q.W), -math.Pi / 2, 0
	}
	sqx := q.X * q.X
	sqy := q.Y * q.Y
	sqz := q.Z * q.Z
	heading = math.Atan2(2*q.Y*q.W-2*q.X*q.Z, 1-2*sqy-2*sqz)
	attitude = math.Asin(2 * t)
	bank = math.Atan2(2*q.X*q.W-2*q.Y*q.Z, 1-2*sqx-2*sqz)
	return heading, attitude, bank
}

// Matrix fills the rotation block of an identity matrix.
func (q Quaternion) Matrix() Matrix4 {
	xx := q.X * q.X
	xy := q.X * q.Y
	xz := q.X * q.Z
	xw := q.X * q.W
	yy := q.Y * q.Y
	yz := q.Y * q.Z
	yw := q.Y * q.W
	zz := q.Z * q.Z
	zw := q.Z * q.W

	m := Identity()
	m.A = 1 - 2*(yy+zz)
	m.B = 2 * (xy - zw)
	m.C = 2 * (xz + yw)
	m.E = 2 * (xy + zw)
	m.F = 1 - 2*(xx+zz)
	m.G = 2 * (yz - xw)
	m.I = 2 * (xz - yw)
	m.J = 2 * (yz + xw)
	m.K = 1 - 2*(xx+yy)
	return m
}

// NewQuaternionRotateAxis uses the half-angle form, the axis is normalized before use.
func NewQuaternionRotateAxis(angle float64, axis Vector3) Quaternion {
	u := axis.Normalized()
	s, c := math.Sincos(angle / 2)
	return Quaternion{
		W: c,
		X: u.X * s,
		Y: u.Y * s,
		Z: u.Z * s,
	}
}

func NewQuaternionRotateEuler(heading, attitude, bank float64) Quaternion {
	s1, c1 := math.Sincos(heading / 2)
	s2, c2 := math.Sincos(attitude / 2)
	s3, c3 := math.Sincos(bank / 2)
	return Quaternion{
		W: c1*c2*c3 - s1*s2*s3,
		X: s1*s2*c3 + c1*c2*s3,
		Y: s1*c2*c3 + c1*s2*s3,
		Z: c1*s2*c3 - s1*c2*s3,
	}
}

// Interpolate performs a spherical linear interpolation from q1 (t=0) to q2 (t=1).
//
// Two guards apply before the slerp weights: nearly identical inputs return q2, and nearly opposite
// inputs return the plain average (q1+q2)/2. The average is not renormalized.
func Interpolate(q1, q2 Quaternion, t float64) Quaternion {
	cosTheta := q1.Dot(q2)
	// rounding may push the dot product of unit inputs just past +-1
	theta := math.Acos(math.Max(-1, math.Min(1, cosTheta)))
	if math.Abs(theta) < slerpEpsilon {
		return q2
	}

	sinTheta := math.Sin(theta)
	if math.Abs(sinTheta) < slerpEpsilon {
		logger.Debug("slerp inputs nearly opposite, averaging", zap.Float64("theta", theta))
		return Quaternion{
			W: (q1.W + q2.W) * 0.5,
			X: (q1.X + q2.X) * 0.5,
			Y: (q1.Y + q2.Y) * 0.5,
			Z: (q1.Z + q2.Z) * 0.5,
		}
	}

	ratio1 := math.Sin((1-t)*theta) / sinTheta
	ratio2 := math.Sin(t*theta) / sinTheta
	return Quaternion{
		W: q1.W*ratio1 + q2.W*ratio2,
		X: q1.X*ratio1 + q2.X*ratio2,
		Y: q1.Y*ratio1 + q2.Y*ratio2,
		Z: q1.Z*ratio1 + q2.Z*ratio2,
	}
}
