package stl

import (
	"bytes"
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"

	"euclid/model"
	vm "euclid/vector_math"

	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cube := model.NewCubeMesh()
	var buf bytes.Buffer
	require.NoError(t, WriteStl(&buf, "cube", cube))
	require.Equal(t, headerSize+4+12*stride, buf.Len())

	mesh, err := ReadStl(&buf)
	require.NoError(t, err)
	require.Len(t, mesh.Vertices, 36)
	require.Len(t, mesh.VIndices, 36)
	require.Equal(t, uint32(35), mesh.VIndices[35])

	lo, hi := mesh.Bounds()
	require.Equal(t, vm.Vector3{X: -0.5, Y: -0.5, Z: -0.5}, lo)
	require.Equal(t, vm.Vector3{X: 0.5, Y: 0.5, Z: 0.5}, hi)

	// first facet is 2,1,0 of the front face, its normal points along -Z
	require.Equal(t, cube.Vertices[2].Pos, mesh.Vertices[0].Pos)
	require.True(t, mesh.Vertices[0].Color.ApproxEqual(vm.Vector3{Z: -1}, 1e-6))
	require.True(t, mesh.ModelMat.Equal(vm.Identity()))
}

func TestTransformedRoundTrip(t *testing.T) {
	plane := model.NewGridPlane().ApplyMatrix4(vm.NewTranslate(0, 0, 2).Scale(3, 3, 3))
	var buf bytes.Buffer
	require.NoError(t, WriteStl(&buf, "plane", plane))

	mesh, err := ReadStl(&buf)
	require.NoError(t, err)
	lo, hi := mesh.Bounds()
	require.Equal(t, vm.Vector3{X: -3, Y: -3, Z: 2}, lo)
	require.Equal(t, vm.Vector3{X: 3, Y: 3, Z: 2}, hi)
}

func TestReadTruncated(t *testing.T) {
	_, err := ReadStl(bytes.NewReader(make([]byte, 10)))
	require.ErrorIs(t, err, ErrTruncated)

	var buf bytes.Buffer
	require.NoError(t, WriteStl(&buf, "cube", model.NewCubeMesh()))
	_, err = ReadStl(bytes.NewReader(buf.Bytes()[:buf.Len()-1]))
	require.ErrorIs(t, err, ErrTruncated)

	// header claiming the maximum triangle count without any facets behind it
	head := make([]byte, headerSize+4)
	binary.LittleEndian.PutUint32(head[headerSize:], math.MaxUint32)
	_, err = ReadStl(bytes.NewReader(head))
	require.ErrorIs(t, err, ErrTruncated)

	path := filepath.Join(t.TempDir(), "huge.stl")
	require.NoError(t, os.WriteFile(path, head, 0o644))
	_, err = ReadStlFile(path)
	require.ErrorIs(t, err, ErrTruncated)

	require.NoError(t, os.WriteFile(path, head[:20], 0o644))
	_, err = ReadStlFile(path)
	require.ErrorIs(t, err, ErrTruncated)
}

func TestWriteBadIndices(t *testing.T) {
	mesh := model.NewMesh([]model.Vertex{{}}, []uint32{0, 0})
	require.ErrorIs(t, WriteStl(&bytes.Buffer{}, "", mesh), vm.ErrShapeMismatch)

	mesh = model.NewMesh([]model.Vertex{{}}, []uint32{0, 0, 1})
	require.ErrorIs(t, WriteStl(&bytes.Buffer{}, "", mesh), vm.ErrShapeMismatch)
}
