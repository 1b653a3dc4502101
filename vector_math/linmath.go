package vector_math

import (
	"github.com/xlab/linmath"
)

// Conversions to the float32 linmath types used by the Vulkan demos. linmath stores matrices as
// four column vectors, so lm[col][row] holds the element at (row, col).

func (v Vector3) ToLinmath() linmath.Vec3 {
	return linmath.Vec3{float32(v.X), float32(v.Y), float32(v.Z)}
}

func Vector3FromLinmath(v linmath.Vec3) Vector3 {
	return Vector3{X: float64(v[0]), Y: float64(v[1]), Z: float64(v[2])}
}

func (m Matrix4) ToLinmath() linmath.Mat4x4 {
	var lm linmath.Mat4x4
	flat := m.ColumnMajor32()
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			lm[col][row] = flat[col*4+row]
		}
	}
	return lm
}

func Matrix4FromLinmath(lm linmath.Mat4x4) Matrix4 {
	var flat [16]float64
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			flat[col*4+row] = float64(lm[col][row])
		}
	}
	var m Matrix4
	m.setColumnMajor(flat)
	return m
}

// ToLinmath returns q in linmath's (x, y, z, w) layout.
func (q Quaternion) ToLinmath() linmath.Quat {
	return linmath.Quat{float32(q.X), float32(q.Y), float32(q.Z), float32(q.W)}
}

func QuaternionFromLinmath(lq linmath.Quat) Quaternion {
	return Quaternion{W: float64(lq[3]), X: float64(lq[0]), Y: float64(lq[1]), Z: float64(lq[2])}
}
