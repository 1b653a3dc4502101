package vector_math

import (
	"fmt"
	"math"
)

type Vector3 struct {
	X, Y, Z float64
}

// Axis selects a single component of a Vector3 for swizzled reads.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func NewVector3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// Vector3FromSlice builds a vector from a sequence of exactly three values.
func Vector3FromSlice(s []float64) (Vector3, error) {
	if len(s) != 3 {
		return Vector3{}, shapeErr("expected 3 components, got %d", len(s))
	}
	return Vector3{X: s[0], Y: s[1], Z: s[2]}, nil
}

func (v Vector3) String() string {
	return fmt.Sprintf("Vector3(%.2f, %.2f, %.2f)", v.X, v.Y, v.Z)
}

func (v Vector3) Equal(w Vector3) bool {
	return v.X == w.X && v.Y == w.Y && v.Z == w.Z
}

// EqualSeq compares v against a length-3 sequence component-wise.
func (v Vector3) EqualSeq(s []float64) (bool, error) {
	w, err := Vector3FromSlice(s)
	if err != nil {
		return false, err
	}
	return v.Equal(w), nil
}

func (v Vector3) ApproxEqual(w Vector3, tol float64) bool {
	return approx(v.X, w.X, tol) && approx(v.Y, w.Y, tol) && approx(v.Z, w.Z, tol)
}

func (v Vector3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// Sequence access

func (v Vector3) Get(i int) (float64, error) {
	switch i {
	case 0:
		return v.X, nil
	case 1:
		return v.Y, nil
	case 2:
		return v.Z, nil
	}
	return 0, shapeErr("index %d out of range [0,3)", i)
}

func (v *Vector3) Set(i int, value float64) error {
	switch i {
	case 0:
		v.X = value
	case 1:
		v.Y = value
	case 2:
		v.Z = value
	default:
		return shapeErr("index %d out of range [0,3)", i)
	}
	return nil
}

// Slice returns the components in X, Y, Z order.
func (v Vector3) Slice() []float64 {
	return []float64{v.X, v.Y, v.Z}
}

// Swizzle returns the selected components in the requested order, e.g. Swizzle(AxisZ, AxisX) is (z, x).
func (v Vector3) Swizzle(axes ...Axis) []float64 {
	out := make([]float64, len(axes))
	for i, a := range axes {
		switch a {
		case AxisX:
			out[i] = v.X
		case AxisY:
			out[i] = v.Y
		case AxisZ:
			out[i] = v.Z
		}
	}
	return out
}

// SwizzleString parses selectors like "zx" or "xxyz" and returns the matching components.
func (v Vector3) SwizzleString(sel string) ([]float64, error) {
	if sel == "" {
		return nil, fmt.Errorf("%w: empty swizzle selector", ErrTypeMismatch)
	}
	axes := make([]Axis, 0, len(sel))
	for _, c := range sel {
		switch c {
		case 'x':
			axes = append(axes, AxisX)
		case 'y':
			axes = append(axes, AxisY)
		case 'z':
			axes = append(axes, AxisZ)
		default:
			return nil, fmt.Errorf("%w: invalid swizzle selector %q", ErrTypeMismatch, sel)
		}
	}
	return v.Swizzle(axes...), nil
}

// Arithmetic

func (v Vector3) Add(w Vector3) Vector3 {
	return Vector3{
		X: v.X + w.X,
		Y: v.Y + w.Y,
		Z: v.Z + w.Z,
	}
}

func (v Vector3) AddSeq(s []float64) (Vector3, error) {
	w, err := Vector3FromSlice(s)
	if err != nil {
		return Vector3{}, err
	}
	return v.Add(w), nil
}

func (v Vector3) Sub(w Vector3) Vector3 {
	return Vector3{
		X: v.X - w.X,
		Y: v.Y - w.Y,
		Z: v.Z - w.Z,
	}
}

func (v Vector3) SubSeq(s []float64) (Vector3, error) {
	w, err := Vector3FromSlice(s)
	if err != nil {
		return Vector3{}, err
	}
	return v.Sub(w), nil
}

// RSubSeq returns s - v.
func (v Vector3) RSubSeq(s []float64) (Vector3, error) {
	w, err := Vector3FromSlice(s)
	if err != nil {
		return Vector3{}, err
	}
	return w.Sub(v), nil
}

// Mul is the component-wise product.
func (v Vector3) Mul(w Vector3) Vector3 {
	return Vector3{
		X: v.X * w.X,
		Y: v.Y * w.Y,
		Z: v.Z * w.Z,
	}
}

func (v Vector3) Scale(factor float64) Vector3 {
	return Vector3{
		X: v.X * factor,
		Y: v.Y * factor,
		Z: v.Z * factor,
	}
}

func (v Vector3) Div(divisor float64) Vector3 {
	return Vector3{
		X: v.X / divisor,
		Y: v.Y / divisor,
		Z: v.Z / divisor,
	}
}

// RDiv divides the scalar by every component, (n/x, n/y, n/z).
func (v Vector3) RDiv(n float64) Vector3 {
	return Vector3{
		X: n / v.X,
		Y: n / v.Y,
		Z: n / v.Z,
	}
}

// FloorDiv divides every component by divisor and rounds toward negative infinity.
func (v Vector3) FloorDiv(divisor float64) Vector3 {
	return Vector3{
		X: math.Floor(v.X / divisor),
		Y: math.Floor(v.Y / divisor),
		Z: math.Floor(v.Z / divisor),
	}
}

func (v Vector3) RFloorDiv(n float64) Vector3 {
	return Vector3{
		X: math.Floor(n / v.X),
		Y: math.Floor(n / v.Y),
		Z: math.Floor(n / v.Z),
	}
}

func (v Vector3) Neg() Vector3 {
	return Vector3{X: -v.X, Y: -v.Y, Z: -v.Z}
}

func (v *Vector3) AddInPlace(w Vector3) *Vector3 {
	v.X += w.X
	v.Y += w.Y
	v.Z += w.Z
	return v
}

func (v *Vector3) SubInPlace(w Vector3) *Vector3 {
	v.X -= w.X
	v.Y -= w.Y
	v.Z -= w.Z
	return v
}

func (v *Vector3) ScaleInPlace(factor float64) *Vector3 {
	v.X *= factor
	v.Y *= factor
	v.Z *= factor
	return v
}

func (v Vector3) Magnitude() float64 {
	return math.Sqrt(v.MagnitudeSquared())
}

func (v Vector3) MagnitudeSquared() float64 {
	return (v.X * v.X) + (v.Y * v.Y) + (v.Z * v.Z)
}

// Normalize scales v to unit length in place. A zero vector is left untouched.
func (v *Vector3) Normalize() *Vector3 {
	l := v.Magnitude()
	if l != 0 {
		v.X /= l
		v.Y /= l
		v.Z /= l
	}
	return v
}

// Normalized returns a unit-length copy of v, or v itself when it has zero length.
func (v Vector3) Normalized() Vector3 {
	v.Normalize()
	return v
}

func (v Vector3) Dot(w Vector3) float64 {
	return (v.X * w.X) + (v.Y * w.Y) + (v.Z * w.Z)
}

// Cross follows the right-hand rule.
func (v Vector3) Cross(w Vector3) Vector3 {
	return Vector3{
		X: (v.Y * w.Z) - (v.Z * w.Y),
		Y: -(v.X * w.Z) + (v.Z * w.X),
		Z: (v.X * w.Y) - (v.Y * w.X),
	}
}

// Reflect mirrors v about the plane with the given normal. The normal is expected to be unit length.
func (v Vector3) Reflect(normal Vector3) Vector3 {
	d := 2 * v.Dot(normal)
	return Vector3{
		X: v.X - d*normal.X,
		Y: v.Y - d*normal.Y,
		Z: v.Z - d*normal.Z,
	}
}
