package vector_math

import (
	"fmt"
	"math"
)

func NewScale(x, y, z float64) Matrix4 {
	sm := Identity()
	sm.A = x
	sm.F = y
	sm.K = z
	return sm
}

func NewTranslate(x, y, z float64) Matrix4 {
	tm := Identity()
	tm.D = x
	tm.H = y
	tm.L = z
	return tm
}

func NewRotateX(rad float64) Matrix4 {
	s, c := math.Sincos(rad)
	m := Identity()
	m.F, m.G = c, -s
	m.J, m.K = s, c
	return m
}

func NewRotateY(rad float64) Matrix4 {
	s, c := math.Sincos(rad)
	m := Identity()
	m.A, m.C = c, s
	m.I, m.K = -s, c
	return m
}

func NewRotateZ(rad float64) Matrix4 {
	s, c := math.Sincos(rad)
	m := Identity()
	m.A, m.B = c, -s
	m.E, m.F = s, c
	return m
}

// NewRotateAxis implemented after the glRotate man page. The axis is normalized before use.
func NewRotateAxis(rad float64, axis Vector3) Matrix4 {
	u := axis.Normalized()
	x, y, z := u.X, u.Y, u.Z
	sinT, cosT := math.Sincos(rad)
	c1 := 1 - cosT

	rm := Identity()
	rm.A = x*x*c1 + cosT
	rm.B = x*y*c1 - z*sinT
	rm.C = x*z*c1 + y*sinT

	rm.E = y*x*c1 + z*sinT
	rm.F = y*y*c1 + cosT
	rm.G = y*z*c1 - x*sinT

	rm.I = x*z*c1 - y*sinT
	rm.J = y*z*c1 + x*sinT
	rm.K = z*z*c1 + cosT
	return rm
}

// NewRotateEuler builds the heading (Y), attitude (Z), bank (X) rotation from the full angles,
// implemented after http://www.euclideanspace.com/
func NewRotateEuler(heading, attitude, bank float64) Matrix4 {
	sh, ch := math.Sincos(heading)
	sa, ca := math.Sincos(attitude)
	sb, cb := math.Sincos(bank)

	m := Identity()
	m.A = ch * ca
	m.B = sh*sb - ch*sa*cb
	m.C = ch*sa*sb + sh*cb
	m.E = sa
	m.F = ca * cb
	m.G = -ca * sb
	m.I = -sh * ca
	m.J = sh*sa*cb + ch*sb
	m.K = -sh*sa*sb + ch*cb
	return m
}

// NewPerspective implemented after: https://registry.khronos.org/OpenGL-Refpages/gl2.1/xhtml/gluPerspective.xml
func NewPerspective(fovy, aspect, zNear, zFar float64) (Matrix4, error) {
	if zNear == 0 || zNear == zFar {
		return Matrix4{}, fmt.Errorf("%w: perspective with near=%v far=%v", ErrDegenerateInput, zNear, zFar)
	}
	f := 1 / math.Tan(fovy/2)
	m := Identity()
	m.A = f / aspect
	m.F = f
	m.K = (zFar + zNear) / (zNear - zFar)
	m.L = 2 * zFar * zNear / (zNear - zFar)
	m.O = -1
	m.P = 0
	return m, nil
}
