package model

import (
	"fmt"
	"math"

	vm "euclid/vector_math"

	"go.uber.org/zap"
)

const (
	CAM_PERSPECTIVE_PROJECTION  = iota
	CAM_ORTHOGRAPHIC_PROJECTION = iota
)

const parallelEpsilon = 1e-12

// Camera looks down its local -Z axis. Orientation rotates local into world space.
type Camera struct {
	ProjectionType int

	// Projection matrix precursors, Fov in degree
	Fov    float64
	Aspect float64
	Near   float64
	Far    float64

	Pos         vm.Vector3
	Orientation vm.Quaternion
	LookTarget  *vm.Vector3
	Up          vm.Vector3
}

func NewCamera(fov float64, near float64, far float64) *Camera {
	return &Camera{
		Fov:         fov,
		Aspect:      1,
		Near:        near,
		Far:         far,
		Orientation: vm.NewQuaternion(),
		LookTarget:  nil,
		Up:          vm.Vector3{Y: 1},
	}
}

func (c *Camera) Move(v vm.Vector3) {
	c.Pos = c.Pos.Add(v)
}

// Turn rotates the camera around an axis given in its own frame.
func (c *Camera) Turn(deg float64, axis vm.Vector3) {
	c.Orientation = c.Orientation.RotateAxis(vm.ToRad(deg), axis).Normalized()
}

func (c *Camera) SetTarget(v vm.Vector3) {
	c.LookTarget = &v
}

func (c *Camera) LookDir() vm.Vector3 {
	if c.LookTarget != nil {
		return c.LookTarget.Sub(c.Pos).Normalized()
	}
	return c.Orientation.MulVector3(vm.Vector3{Z: -1})
}

func (c *Camera) GetProjection() (vm.Matrix4, error) {
	switch c.ProjectionType {
	case CAM_PERSPECTIVE_PROJECTION:
		return vm.NewPerspective(vm.ToRad(c.Fov), c.Aspect, c.Near, c.Far)
	case CAM_ORTHOGRAPHIC_PROJECTION:
		return newOrthographicProjection(
			vm.Vector3{X: -c.Aspect, Y: -1, Z: c.Near}, vm.Vector3{X: c.Aspect, Y: 1, Z: c.Far},
		)
	default:
		zap.L().Warn("Failed to select projection type, returning identity.", zap.Int("type", c.ProjectionType))
		return vm.Identity(), nil
	}
}

func (c *Camera) GetView() vm.Matrix4 {
	if c.LookTarget != nil {
		return NewTargetView(c.Pos, *c.LookTarget, c.Up)
	}
	// inverse of the rigid camera transform: rotate back, then undo the position
	return c.Orientation.Conjugated().Matrix().Translate(-c.Pos.X, -c.Pos.Y, -c.Pos.Z)
}

// newOrthographicProjection maps the cuboid spanning from lbn (Left-Bottom-Near) to rtf (Right-Top-Far)
// onto the canonical view volume [-1,1]^3. The camera looks down -Z, so near and far are distances
// along that axis.
// -------------------------------------------------------------
// Setting the orthographic view volume to have the same aspect ratio as the viewport will avoid stretching
// any points. To do this, let the following term be true: "right - left = aspect * (top - bottom)".
func newOrthographicProjection(lbn vm.Vector3, rtf vm.Vector3) (vm.Matrix4, error) {
	w := rtf.X - lbn.X
	h := rtf.Y - lbn.Y
	d := rtf.Z - lbn.Z
	if w == 0 || h == 0 || d == 0 {
		return vm.Matrix4{}, fmt.Errorf("%w: orthographic volume %s to %s", vm.ErrDegenerateInput, lbn, rtf)
	}
	mScale := vm.NewScale(2/w, 2/h, -2/d)
	mTrans := vm.NewTranslate(-(rtf.X+lbn.X)/2, -(rtf.Y+lbn.Y)/2, (rtf.Z+lbn.Z)/2)
	return mScale.Mul(mTrans), nil
}

// NewDirectionView implemented after http://www.opengl.org/sdk/docs/man2/xhtml/gluLookAt.xml
func NewDirectionView(pos vm.Vector3, dir vm.Vector3, up vm.Vector3) vm.Matrix4 {
	// construct orthonormal basis vectors
	f := dir.Normalized()
	s := f.Cross(up)
	if s.MagnitudeSquared() < parallelEpsilon {
		alt := vm.Vector3{Y: 1}
		if math.Abs(f.Y) > 0.9 {
			alt = vm.Vector3{Z: 1}
		}
		zap.L().Warn("Up vector is parallel to the view direction, using another up axis.",
			zap.Stringer("dir", dir), zap.Stringer("up", up), zap.Stringer("alt", alt))
		s = f.Cross(alt)
	}
	s = s.Normalized()
	u := s.Cross(f)
	m := vm.Identity()
	m.A, m.B, m.C = s.X, s.Y, s.Z
	m.E, m.F, m.G = u.X, u.Y, u.Z
	m.I, m.J, m.K = -f.X, -f.Y, -f.Z
	m.D = -s.Dot(pos)
	m.H = -u.Dot(pos)
	m.L = f.Dot(pos)
	return m
}

func NewTargetView(pos vm.Vector3, target vm.Vector3, up vm.Vector3) vm.Matrix4 {
	d := target.Sub(pos)
	if d.IsZero() {
		zap.L().Debug("Failed to calculate view direction, target - position = [0,0,0]. Setting d to -z-axis.")
		d = vm.Vector3{Z: -1}
	}
	return NewDirectionView(pos, d, up)
}

// NewAngleView builds a view matrix from a position and heading/attitude/bank angles in degree.
func NewAngleView(pos vm.Vector3, rot vm.Vector3) vm.Matrix4 {
	q := vm.NewQuaternionRotateEuler(vm.ToRad(rot.X), vm.ToRad(rot.Y), vm.ToRad(rot.Z))
	return q.Conjugated().Matrix().Translate(-pos.X, -pos.Y, -pos.Z)
}

// HorizontalFov returns the horizontal field of view in degree that matches the vertical Fov.
func (c *Camera) HorizontalFov() float64 {
	return vm.ToDeg(2 * math.Atan(math.Tan(vm.ToRad(c.Fov)/2)*c.Aspect))
}
