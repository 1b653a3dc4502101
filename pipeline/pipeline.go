package pipeline

import (
	"fmt"
	"io"
	"os"

	vm "euclid/vector_math"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Pipeline is an ordered list of transforms read from YAML. Angles are radians unless Degrees is set.
type Pipeline struct {
	Degrees bool   `yaml:"degrees"`
	Steps   []Step `yaml:"steps"`
}

// Step holds exactly one transform.
type Step struct {
	Translate   []float64    `yaml:"translate,omitempty"`
	Scale       []float64    `yaml:"scale,omitempty"`
	RotateX     *float64     `yaml:"rotate_x,omitempty"`
	RotateY     *float64     `yaml:"rotate_y,omitempty"`
	RotateZ     *float64     `yaml:"rotate_z,omitempty"`
	RotateAxis  *AxisAngle   `yaml:"rotate_axis,omitempty"`
	RotateEuler *Euler       `yaml:"rotate_euler,omitempty"`
	Quaternion  *QuatStep    `yaml:"quaternion,omitempty"`
	Perspective *Perspective `yaml:"perspective,omitempty"`
}

type AxisAngle struct {
	Angle float64   `yaml:"angle"`
	Axis  []float64 `yaml:"axis"`
}

type Euler struct {
	Heading  float64 `yaml:"heading"`
	Attitude float64 `yaml:"attitude"`
	Bank     float64 `yaml:"bank"`
}

// QuatStep is either an axis-angle or an Euler rotation, applied through its quaternion matrix.
type QuatStep struct {
	Angle    *float64  `yaml:"angle,omitempty"`
	Axis     []float64 `yaml:"axis,omitempty"`
	Heading  *float64  `yaml:"heading,omitempty"`
	Attitude *float64  `yaml:"attitude,omitempty"`
	Bank     *float64  `yaml:"bank,omitempty"`
}

type Perspective struct {
	FovY   float64 `yaml:"fov_y"`
	Aspect float64 `yaml:"aspect"`
	Near   float64 `yaml:"near"`
	Far    float64 `yaml:"far"`
}

func Load(r io.Reader) (*Pipeline, error) {
	var p Pipeline
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("failed to decode pipeline: %w", err)
	}
	return &p, nil
}

func LoadFile(path string) (*Pipeline, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// Compose post-multiplies every step onto the identity in file order, so the last step is the first
// one applied to a point.
func (p *Pipeline) Compose() (vm.Matrix4, error) {
	m := vm.Identity()
	for i, s := range p.Steps {
		sm, err := s.matrix(p.angle)
		if err != nil {
			return vm.Matrix4{}, fmt.Errorf("step %d: %w", i, err)
		}
		m.MulInPlace(sm)
	}
	zap.L().Debug("Composed pipeline", zap.Int("steps", len(p.Steps)), zap.Stringer("matrix", m))
	return m, nil
}

func (p *Pipeline) angle(a float64) float64 {
	if p.Degrees {
		return vm.ToRad(a)
	}
	return a
}

func (s Step) kinds() []string {
	var k []string
	if s.Translate != nil {
		k = append(k, "translate")
	}
	if s.Scale != nil {
		k = append(k, "scale")
	}
	if s.RotateX != nil {
		k = append(k, "rotate_x")
	}
	if s.RotateY != nil {
		k = append(k, "rotate_y")
	}
	if s.RotateZ != nil {
		k = append(k, "rotate_z")
	}
	if s.RotateAxis != nil {
		k = append(k, "rotate_axis")
	}
	if s.RotateEuler != nil {
		k = append(k, "rotate_euler")
	}
	if s.Quaternion != nil {
		k = append(k, "quaternion")
	}
	if s.Perspective != nil {
		k = append(k, "perspective")
	}
	return k
}

func (s Step) matrix(angle func(float64) float64) (vm.Matrix4, error) {
	k := s.kinds()
	if len(k) != 1 {
		return vm.Matrix4{}, fmt.Errorf("%w: step needs exactly one transform, got %v", vm.ErrTypeMismatch, k)
	}

	switch {
	case s.Translate != nil:
		v, err := vm.Vector3FromSlice(s.Translate)
		if err != nil {
			return vm.Matrix4{}, err
		}
		return vm.NewTranslate(v.X, v.Y, v.Z), nil
	case s.Scale != nil:
		v, err := vm.Vector3FromSlice(s.Scale)
		if err != nil {
			return vm.Matrix4{}, err
		}
		return vm.NewScale(v.X, v.Y, v.Z), nil
	case s.RotateX != nil:
		return vm.NewRotateX(angle(*s.RotateX)), nil
	case s.RotateY != nil:
		return vm.NewRotateY(angle(*s.RotateY)), nil
	case s.RotateZ != nil:
		return vm.NewRotateZ(angle(*s.RotateZ)), nil
	case s.RotateAxis != nil:
		axis, err := vm.Vector3FromSlice(s.RotateAxis.Axis)
		if err != nil {
			return vm.Matrix4{}, err
		}
		return vm.NewRotateAxis(angle(s.RotateAxis.Angle), axis), nil
	case s.RotateEuler != nil:
		e := s.RotateEuler
		return vm.NewRotateEuler(angle(e.Heading), angle(e.Attitude), angle(e.Bank)), nil
	case s.Quaternion != nil:
		q, err := s.Quaternion.quaternion(angle)
		if err != nil {
			return vm.Matrix4{}, err
		}
		return q.Matrix(), nil
	default:
		pp := s.Perspective
		return vm.NewPerspective(angle(pp.FovY), pp.Aspect, pp.Near, pp.Far)
	}
}

func (q *QuatStep) quaternion(angle func(float64) float64) (vm.Quaternion, error) {
	axisForm := q.Angle != nil || q.Axis != nil
	eulerForm := q.Heading != nil || q.Attitude != nil || q.Bank != nil
	switch {
	case axisForm && !eulerForm:
		if q.Angle == nil {
			return vm.Quaternion{}, fmt.Errorf("%w: quaternion axis without angle", vm.ErrTypeMismatch)
		}
		axis, err := vm.Vector3FromSlice(q.Axis)
		if err != nil {
			return vm.Quaternion{}, err
		}
		return vm.NewQuaternionRotateAxis(angle(*q.Angle), axis), nil
	case eulerForm && !axisForm:
		return vm.NewQuaternionRotateEuler(angle(deref(q.Heading)), angle(deref(q.Attitude)), angle(deref(q.Bank))), nil
	default:
		return vm.Quaternion{}, fmt.Errorf("%w: quaternion needs either angle/axis or heading/attitude/bank", vm.ErrTypeMismatch)
	}
}

func deref(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
