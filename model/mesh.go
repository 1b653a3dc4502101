package model

import (
	"math"

	vm "euclid/vector_math"

	vk "github.com/goki/vulkan"
)

type Mesh struct {
	Vertices []Vertex
	VIndices []uint32
	ModelMat vm.Matrix4
}

func NewMesh(v []Vertex, id []uint32) *Mesh {
	return &Mesh{
		Vertices: v,
		VIndices: id,
		ModelMat: vm.Identity(),
	}
}

// ApplyMatrix4 returns a copy of the mesh with every vertex moved by m. Indices are shared, the model
// matrix is carried over unchanged.
func (m *Mesh) ApplyMatrix4(t vm.Matrix4) *Mesh {
	out := &Mesh{
		Vertices: make([]Vertex, len(m.Vertices)),
		VIndices: m.VIndices,
		ModelMat: m.ModelMat,
	}
	for i, v := range m.Vertices {
		out.Vertices[i] = vm.TransformByMatrix4(t, v)
	}
	return out
}

func (m *Mesh) ApplyQuaternion(q vm.Quaternion) *Mesh {
	out := &Mesh{
		Vertices: make([]Vertex, len(m.Vertices)),
		VIndices: m.VIndices,
		ModelMat: m.ModelMat,
	}
	for i, v := range m.Vertices {
		out.Vertices[i] = vm.TransformByQuaternion(q, v)
	}
	return out
}

// Baked returns the mesh in world space, i.e. with ModelMat applied and reset to identity.
func (m *Mesh) Baked() *Mesh {
	out := m.ApplyMatrix4(m.ModelMat)
	out.ModelMat = vm.Identity()
	return out
}

// Bounds returns the axis aligned bounding box of all vertex positions. An empty mesh yields two zero vectors.
func (m *Mesh) Bounds() (vm.Vector3, vm.Vector3) {
	if len(m.Vertices) == 0 {
		return vm.Vector3{}, vm.Vector3{}
	}
	lo := vm.Vector3{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)}
	hi := vm.Vector3{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)}
	for _, v := range m.Vertices {
		lo = vm.Vector3{X: math.Min(lo.X, v.Pos.X), Y: math.Min(lo.Y, v.Pos.Y), Z: math.Min(lo.Z, v.Pos.Z)}
		hi = vm.Vector3{X: math.Max(hi.X, v.Pos.X), Y: math.Max(hi.Y, v.Pos.Y), Z: math.Max(hi.Z, v.Pos.Z)}
	}
	return lo, hi
}

// GetVBufferBytes returns the raw bytes representing all vertices for this mesh.
// Mainly used to execute vk.Memcopy(..., src []byte) to move memory from CPU to GPU
func (m *Mesh) GetVBufferBytes() []byte {
	f := make([]float32, 0, len(m.Vertices)*6)
	for _, v := range m.Vertices {
		vf := v.Floats()
		f = append(f, vf[:]...)
	}
	return rawBytes(f)
}

// GetVBufferSize returns the size required for keeping the vertices in device memory.
func (m *Mesh) GetVBufferSize() vk.DeviceSize {
	return vk.DeviceSize(len(m.Vertices) * VertexStride)
}

// GetIdxBufferBytes returns the raw bytes representing the indices used to address vertex data for this mesh.
func (m *Mesh) GetIdxBufferBytes() []byte {
	return rawBytes(m.VIndices)
}

func (m *Mesh) GetIdxBufferSize() vk.DeviceSize {
	return vk.DeviceSize(len(m.VIndices) * 4)
}
