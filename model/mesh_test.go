package model

import (
	"encoding/binary"
	"math"
	"testing"

	vm "euclid/vector_math"

	"github.com/stretchr/testify/require"
)

func TestMeshApplyMatrix4(t *testing.T) {
	cube := NewCubeMesh()
	moved := vm.TransformByMatrix4(vm.NewTranslate(1, 0, 0), cube)

	lo, hi := moved.Bounds()
	require.Equal(t, vm.Vector3{X: 0.5, Y: -0.5, Z: -0.5}, lo)
	require.Equal(t, vm.Vector3{X: 1.5, Y: 0.5, Z: 0.5}, hi)
	require.Equal(t, cube.Vertices[0].Color, moved.Vertices[0].Color)

	lo, _ = cube.Bounds()
	require.Equal(t, vm.Vector3{X: -0.5, Y: -0.5, Z: -0.5}, lo, "source mesh must stay untouched")
}

func TestMeshApplyQuaternion(t *testing.T) {
	plane := NewGridPlane()
	turned := plane.ApplyQuaternion(vm.NewQuaternionRotateAxis(math.Pi/2, vm.Vector3{Z: 1}))
	require.True(t, turned.Vertices[0].Pos.ApproxEqual(vm.Vector3{X: 1, Y: -1}, eps))

	lo, hi := turned.Bounds()
	require.True(t, lo.ApproxEqual(vm.Vector3{X: -1, Y: -1}, eps))
	require.True(t, hi.ApproxEqual(vm.Vector3{X: 1, Y: 1}, eps))
}

func TestMeshBaked(t *testing.T) {
	cube := NewCubeMesh()
	cube.ModelMat = vm.NewScale(2, 2, 2)
	baked := cube.Baked()

	lo, hi := baked.Bounds()
	require.Equal(t, vm.Vector3{X: -1, Y: -1, Z: -1}, lo)
	require.Equal(t, vm.Vector3{X: 1, Y: 1, Z: 1}, hi)
	require.True(t, baked.ModelMat.Equal(vm.Identity()))
}

func TestEmptyMeshBounds(t *testing.T) {
	lo, hi := NewMesh(nil, nil).Bounds()
	require.True(t, lo.IsZero())
	require.True(t, hi.IsZero())
}

func TestMeshBuffers(t *testing.T) {
	cube := NewCubeMesh()
	vb := cube.GetVBufferBytes()
	require.Len(t, vb, 8*VertexStride)
	require.EqualValues(t, len(vb), cube.GetVBufferSize())
	require.Equal(t, float32(-0.5), math.Float32frombits(binary.LittleEndian.Uint32(vb[0:4])))
	// color of vertex 0 follows its position
	require.Equal(t, float32(1), math.Float32frombits(binary.LittleEndian.Uint32(vb[12:16])))

	ib := cube.GetIdxBufferBytes()
	require.Len(t, ib, 36*4)
	require.EqualValues(t, len(ib), cube.GetIdxBufferSize())
	require.Equal(t, uint32(2), binary.LittleEndian.Uint32(ib[0:4]))
}

func TestVertexDescriptions(t *testing.T) {
	b := GetVertexBindingDescription()
	require.EqualValues(t, VertexStride, b.Stride)

	attrs := GetVertexAttributeDescriptions()
	require.Len(t, attrs, 2)
	require.EqualValues(t, 0, attrs[0].Offset)
	require.EqualValues(t, 12, attrs[1].Offset)
	require.EqualValues(t, 1, attrs[1].Location)
}
