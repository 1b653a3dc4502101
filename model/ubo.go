package model

import (
	vm "euclid/vector_math"

	vk "github.com/goki/vulkan"
	"github.com/xlab/linmath"
)

// matrixByteSize is a 4x4 float32 matrix as seen by the shaders.
const matrixByteSize = 16 * 4

// UniformBufferObject is a tightly packed struct that will be transferred to the GPU, every matrix in
// column-major order.
type UniformBufferObject struct {
	Model      vm.Matrix4
	View       vm.Matrix4
	Projection vm.Matrix4 // 192byte calculated size
}

// NewUniformBufferObject collects the matrices needed to draw mesh through cam.
func NewUniformBufferObject(mesh *Mesh, cam *Camera) (*UniformBufferObject, error) {
	proj, err := cam.GetProjection()
	if err != nil {
		return nil, err
	}
	return &UniformBufferObject{
		Model:      mesh.ModelMat,
		View:       cam.GetView(),
		Projection: proj,
	}, nil
}

// SizeOfUbo returns size of the UniformBufferObject as laid out by Bytes.
func SizeOfUbo() vk.DeviceSize {
	return vk.DeviceSize(3 * matrixByteSize)
}

// Bytes packs the three matrices as linmath.Mat4x4, which stores column vectors, i.e. the layout the
// shaders expect.
func (u *UniformBufferObject) Bytes() []byte {
	return rawBytes([3]linmath.Mat4x4{
		u.Model.ToLinmath(),
		u.View.ToLinmath(),
		u.Projection.ToLinmath(),
	})
}

// ModelPushConstantsSize reports the memory size required for all push constants that a mesh expects to
// get bound. For now only the Mesh.ModelMat (4x4) needs to be provided.
func ModelPushConstantsSize() uint32 {
	return matrixByteSize
}

// ModelPushConstantRange describes the model matrix push constant for the pipeline layout.
func ModelPushConstantRange() vk.PushConstantRange {
	return vk.PushConstantRange{
		StageFlags: vk.ShaderStageFlags(vk.ShaderStageVertexBit),
		Offset:     0,
		Size:       ModelPushConstantsSize(),
	}
}

// PushConstantBytes returns the model matrix of m ready for vk.CmdPushConstants.
func (m *Mesh) PushConstantBytes() []byte {
	return rawBytes(m.ModelMat.ToLinmath())
}
