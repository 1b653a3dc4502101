package vector_math

import (
	"fmt"
)

// Matrix4 is a 4x4 matrix stored row-major:
//
//	a b c d
//	e f g h
//	i j k l
//	m n o p
//
// Flattened reads (ColumnMajor, At, Range) are column-major so the values can be handed to graphics
// APIs directly. Use NewMatrix4 or Identity to obtain a usable value, the zero value is the zero matrix.
type Matrix4 struct {
	A, B, C, D float64
	E, F, G, H float64
	I, J, K, L float64
	M, N, O, P float64
}

// Matrix4Transformable is implemented by values that know how to transform themselves by a matrix.
type Matrix4Transformable[T any] interface {
	ApplyMatrix4(m Matrix4) T
}

// TransformByMatrix4 delegates to t's own matrix transform.
func TransformByMatrix4[T Matrix4Transformable[T]](m Matrix4, t T) T {
	return t.ApplyMatrix4(m)
}

func NewMatrix4() Matrix4 {
	return Identity()
}

func Identity() Matrix4 {
	return Matrix4{
		A: 1,
		F: 1,
		K: 1,
		P: 1,
	}
}

// NewMatrix4FromColumnMajor rebuilds a matrix from exactly 16 column-major values.
func NewMatrix4FromColumnMajor(values []float64) (Matrix4, error) {
	m := Identity()
	if err := m.SetColumnMajor(values, 0, 16); err != nil {
		return Matrix4{}, err
	}
	return m, nil
}

func (m Matrix4) Mul(o Matrix4) Matrix4 {
	return Matrix4{
		A: m.A*o.A + m.B*o.E + m.C*o.I + m.D*o.M,
		B: m.A*o.B + m.B*o.F + m.C*o.J + m.D*o.N,
		C: m.A*o.C + m.B*o.G + m.C*o.K + m.D*o.O,
		D: m.A*o.D + m.B*o.H + m.C*o.L + m.D*o.P,

		E: m.E*o.A + m.F*o.E + m.G*o.I + m.H*o.M,
		F: m.E*o.B + m.F*o.F + m.G*o.J + m.H*o.N,
		G: m.E*o.C + m.F*o.G + m.G*o.K + m.H*o.O,
		H: m.E*o.D + m.F*o.H + m.G*o.L + m.H*o.P,

		I: m.I*o.A + m.J*o.E + m.K*o.I + m.L*o.M,
		J: m.I*o.B + m.J*o.F + m.K*o.J + m.L*o.N,
		K: m.I*o.C + m.J*o.G + m.K*o.K + m.L*o.O,
		L: m.I*o.D + m.J*o.H + m.K*o.L + m.L*o.P,

		M: m.M*o.A + m.N*o.E + m.O*o.I + m.P*o.M,
		N: m.M*o.B + m.N*o.F + m.O*o.J + m.P*o.N,
		O: m.M*o.C + m.N*o.G + m.O*o.K + m.P*o.O,
		P: m.M*o.D + m.N*o.H + m.O*o.L + m.P*o.P,
	}
}

// MulInPlace sets m to m * o.
func (m *Matrix4) MulInPlace(o Matrix4) *Matrix4 {
	*m = m.Mul(o)
	return m
}

// MulVector3 transforms v by the upper-left 3x3 block only. Translation and the projective row are
// ignored, which is what a direction vector needs.
func (m Matrix4) MulVector3(v Vector3) Vector3 {
	return Vector3{
		X: m.A*v.X + m.B*v.Y + m.C*v.Z,
		Y: m.E*v.X + m.F*v.Y + m.G*v.Z,
		Z: m.I*v.X + m.J*v.Y + m.K*v.Z,
	}
}

// TransformPoint applies the full affine transform to v using a homogeneous coordinate of 1.
func (m Matrix4) TransformPoint(v Vector3) Vector3 {
	return Vector3{
		X: m.A*v.X + m.B*v.Y + m.C*v.Z + m.D,
		Y: m.E*v.X + m.F*v.Y + m.G*v.Z + m.H,
		Z: m.I*v.X + m.J*v.Y + m.K*v.Z + m.L,
	}
}

func (m Matrix4) Transpose() Matrix4 {
	return Matrix4{
		A: m.A, B: m.E, C: m.I, D: m.M,
		E: m.B, F: m.F, G: m.J, H: m.N,
		I: m.C, J: m.G, K: m.K, L: m.O,
		M: m.D, N: m.H, O: m.L, P: m.P,
	}
}

func (m Matrix4) Equal(o Matrix4) bool {
	return m == o
}

func (m Matrix4) ApproxEqual(o Matrix4, tol float64) bool {
	a, b := m.ColumnMajor(), o.ColumnMajor()
	for i := range a {
		if !approx(a[i], b[i], tol) {
			return false
		}
	}
	return true
}

// Post-multiplying helpers, each returns m * New<Op>(...) and leaves m untouched.

func (m Matrix4) Scale(x, y, z float64) Matrix4 {
	return m.Mul(NewScale(x, y, z))
}

func (m Matrix4) Translate(x, y, z float64) Matrix4 {
	return m.Mul(NewTranslate(x, y, z))
}

func (m Matrix4) RotateX(angle float64) Matrix4 {
	return m.Mul(NewRotateX(angle))
}

func (m Matrix4) RotateY(angle float64) Matrix4 {
	return m.Mul(NewRotateY(angle))
}

func (m Matrix4) RotateZ(angle float64) Matrix4 {
	return m.Mul(NewRotateZ(angle))
}

func (m Matrix4) RotateAxis(angle float64, axis Vector3) Matrix4 {
	return m.Mul(NewRotateAxis(angle, axis))
}

func (m Matrix4) RotateEuler(heading, attitude, bank float64) Matrix4 {
	return m.Mul(NewRotateEuler(heading, attitude, bank))
}

// Flattened access

// ColumnMajor unrolls m as [a,e,i,m, b,f,j,n, c,g,k,o, d,h,l,p].
func (m Matrix4) ColumnMajor() [16]float64 {
	return [16]float64{
		m.A, m.E, m.I, m.M,
		m.B, m.F, m.J, m.N,
		m.C, m.G, m.K, m.O,
		m.D, m.H, m.L, m.P,
	}
}

// ColumnMajor32 is ColumnMajor narrowed to float32 for GPU buffers.
func (m Matrix4) ColumnMajor32() [16]float32 {
	var out [16]float32
	for i, f := range m.ColumnMajor() {
		out[i] = float32(f)
	}
	return out
}

func (m Matrix4) At(i int) (float64, error) {
	if i < 0 || i >= 16 {
		return 0, shapeErr("index %d out of range [0,16)", i)
	}
	return m.ColumnMajor()[i], nil
}

// Range returns the flattened elements in [start, end).
func (m Matrix4) Range(start, end int) ([]float64, error) {
	if start < 0 || end > 16 || start > end {
		return nil, shapeErr("range [%d,%d) outside [0,16)", start, end)
	}
	flat := m.ColumnMajor()
	out := make([]float64, end-start)
	copy(out, flat[start:end])
	return out, nil
}

func (m *Matrix4) SetAt(i int, value float64) error {
	return m.SetRange(i, i+1, []float64{value})
}

// SetRange overwrites the flattened elements in [start, end). values must hold exactly end-start elements.
func (m *Matrix4) SetRange(start, end int, values []float64) error {
	if start < 0 || end > 16 || start > end {
		return shapeErr("range [%d,%d) outside [0,16)", start, end)
	}
	if len(values) != end-start {
		return shapeErr("key length != value length (%d != %d)", end-start, len(values))
	}
	flat := m.ColumnMajor()
	copy(flat[start:end], values)
	m.setColumnMajor(flat)
	return nil
}

// SetColumnMajor writes length values starting at flattened position offset.
func (m *Matrix4) SetColumnMajor(values []float64, offset, length int) error {
	return m.SetRange(offset, offset+length, values)
}

func (m *Matrix4) setColumnMajor(f [16]float64) {
	m.A, m.E, m.I, m.M = f[0], f[1], f[2], f[3]
	m.B, m.F, m.J, m.N = f[4], f[5], f[6], f[7]
	m.C, m.G, m.K, m.O = f[8], f[9], f[10], f[11]
	m.D, m.H, m.L, m.P = f[12], f[13], f[14], f[15]
}

// Description functions

func (m Matrix4) String() string {
	return fmt.Sprintf(
		"Matrix4([% 8.2f % 8.2f % 8.2f % 8.2f\n"+
			"         % 8.2f % 8.2f % 8.2f % 8.2f\n"+
			"         % 8.2f % 8.2f % 8.2f % 8.2f\n"+
			"         % 8.2f % 8.2f % 8.2f % 8.2f])",
		m.A, m.B, m.C, m.D,
		m.E, m.F, m.G, m.H,
		m.I, m.J, m.K, m.L,
		m.M, m.N, m.O, m.P,
	)
}

// Rows returns m as four rows, convenient for printing.
func (m Matrix4) Rows() [4][4]float64 {
	return [4][4]float64{
		{m.A, m.B, m.C, m.D},
		{m.E, m.F, m.G, m.H},
		{m.I, m.J, m.K, m.L},
		{m.M, m.N, m.O, m.P},
	}
}
