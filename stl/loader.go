package stl

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"euclid/model"
	vm "euclid/vector_math"

	"go.uber.org/zap"
)

const (
	headerSize = 80
	// normal, three vertices and a 2 byte attribute
	stride = 50
)

var ErrTruncated = errors.New("stl: truncated file")

func ReadStlFile(path string) (*model.Mesh, error) {
	zap.L().Info("Reading stl file", zap.String("path", path))
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if info.Size() < headerSize+4 {
		return nil, fmt.Errorf("%w: %s has %d bytes", ErrTruncated, path, info.Size())
	}
	return ReadStl(f)
}

// ReadStl decodes a binary STL stream. Every facet becomes three vertices colored by the facet normal.
func ReadStl(r io.Reader) (*model.Mesh, error) {
	head := make([]byte, headerSize+4)
	if _, err := io.ReadFull(r, head); err != nil {
		return nil, fmt.Errorf("%w: reading header: %v", ErrTruncated, err)
	}
	tCnt := binary.LittleEndian.Uint32(head[headerSize:])

	// the count is untrusted, only grow the buffer as far as the data goes
	want := int64(tCnt) * stride
	body, err := io.ReadAll(io.LimitReader(r, want))
	if err != nil {
		return nil, fmt.Errorf("reading %d triangles: %w", tCnt, err)
	}
	if int64(len(body)) != want {
		return nil, fmt.Errorf("%w: expected %d triangles, got %d bytes", ErrTruncated, tCnt, len(body))
	}
	zap.L().Debug("Successfully read stl file",
		zap.ByteString("header", head[:headerSize]),
		zap.Uint32("triangles", tCnt),
		zap.Int("bytes", len(body)),
	)
	return toMesh(body, tCnt), nil
}

func toMesh(bytes []byte, triangleCnt uint32) *model.Mesh {
	v := make([]model.Vertex, 0, triangleCnt*3)
	id := make([]uint32, 0, triangleCnt*3)

	for i := 0; i+stride <= len(bytes); i += stride {
		normal := toVector3(bytes[i : i+12])
		for k := 0; k < 3; k++ {
			off := i + 12 + k*12
			id = append(id, uint32(len(v)))
			v = append(v, model.Vertex{
				Pos:   toVector3(bytes[off : off+12]),
				Color: normal,
			})
		}
	}

	return model.NewMesh(v, id)
}

// WriteStl encodes mesh triangles as binary STL, recomputing facet normals from the winding.
func WriteStl(w io.Writer, header string, mesh *model.Mesh) error {
	if len(mesh.VIndices)%3 != 0 {
		return fmt.Errorf("%w: index count %d is not a multiple of 3", vm.ErrShapeMismatch, len(mesh.VIndices))
	}
	head := make([]byte, headerSize+4)
	copy(head[:headerSize], header)
	binary.LittleEndian.PutUint32(head[headerSize:], uint32(len(mesh.VIndices)/3))
	if _, err := w.Write(head); err != nil {
		return err
	}

	rec := make([]byte, stride)
	for t := 0; t < len(mesh.VIndices); t += 3 {
		var p [3]vm.Vector3
		for k := range p {
			idx := int(mesh.VIndices[t+k])
			if idx >= len(mesh.Vertices) {
				return fmt.Errorf("%w: index %d outside %d vertices", vm.ErrShapeMismatch, idx, len(mesh.Vertices))
			}
			p[k] = mesh.Vertices[idx].Pos
		}
		n := p[1].Sub(p[0]).Cross(p[2].Sub(p[0])).Normalized()
		putVector3(rec[0:12], n)
		for k := range p {
			putVector3(rec[12+k*12:24+k*12], p[k])
		}
		rec[48], rec[49] = 0, 0
		if _, err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

func toVector3(bytes []byte) vm.Vector3 {
	return vm.Vector3{
		X: float64(toFloat32(bytes[:4])),
		Y: float64(toFloat32(bytes[4:8])),
		Z: float64(toFloat32(bytes[8:12])),
	}
}

func toFloat32(bytes []byte) float32 {
	bits := binary.LittleEndian.Uint32(bytes)
	float := math.Float32frombits(bits)
	return float
}

func putVector3(dst []byte, v vm.Vector3) {
	binary.LittleEndian.PutUint32(dst[0:4], math.Float32bits(float32(v.X)))
	binary.LittleEndian.PutUint32(dst[4:8], math.Float32bits(float32(v.Y)))
	binary.LittleEndian.PutUint32(dst[8:12], math.Float32bits(float32(v.Z)))
}
