package model

import (
	vm "euclid/vector_math"

	vk "github.com/goki/vulkan"
)

// VertexStride is the packed size of a Vertex on the GPU: two float32 triples, no padding.
const VertexStride = 2 * 3 * 4

type Vertex struct {
	Pos   vm.Vector3
	Color vm.Vector3
}

// ApplyMatrix4 moves the position as a point, color is untouched.
func (v Vertex) ApplyMatrix4(m vm.Matrix4) Vertex {
	v.Pos = m.TransformPoint(v.Pos)
	return v
}

func (v Vertex) ApplyQuaternion(q vm.Quaternion) Vertex {
	v.Pos = q.MulVector3(v.Pos)
	return v
}

// Floats returns the vertex in the layout described by GetVertexAttributeDescriptions.
func (v Vertex) Floats() [6]float32 {
	return [6]float32{
		float32(v.Pos.X), float32(v.Pos.Y), float32(v.Pos.Z),
		float32(v.Color.X), float32(v.Color.Y), float32(v.Color.Z),
	}
}

func GetVertexBindingDescription() vk.VertexInputBindingDescription {
	return vk.VertexInputBindingDescription{
		Binding:   0,
		Stride:    VertexStride,
		InputRate: vk.VertexInputRateVertex,
	}
}

func GetVertexAttributeDescriptions() []vk.VertexInputAttributeDescription {
	return []vk.VertexInputAttributeDescription{
		{
			Location: 0,
			Binding:  0,
			Format:   vk.FormatR32g32b32Sfloat,
			Offset:   0,
		},
		{
			Location: 1,
			Binding:  0,
			Format:   vk.FormatR32g32b32Sfloat,
			Offset:   3 * 4,
		},
	}
}
