package model

import vm "euclid/vector_math"

// NewCubeMesh returns a unit cube centered on the origin.
func NewCubeMesh() *Mesh {

	// 8 vertices * 24 Byte = 192 Byte on the GPU
	v := []Vertex{
		{ // [0]
			Pos:   vm.Vector3{X: -0.5, Y: -0.5, Z: -0.5},
			Color: vm.Vector3{X: 1, Y: 0, Z: 0},
		},
		{ // [1]
			Pos:   vm.Vector3{X: 0.5, Y: -0.5, Z: -0.5},
			Color: vm.Vector3{X: 0, Y: 1, Z: 0},
		},
		{ // [2]
			Pos:   vm.Vector3{X: 0.5, Y: 0.5, Z: -0.5},
			Color: vm.Vector3{X: 0, Y: 0, Z: 1},
		},
		{ // [3]
			Pos:   vm.Vector3{X: -0.5, Y: 0.5, Z: -0.5},
			Color: vm.Vector3{X: 1, Y: 0.5, Z: 1},
		},
		{ // [4]
			Pos:   vm.Vector3{X: -0.5, Y: -0.5, Z: 0.5},
			Color: vm.Vector3{X: 1, Y: 0.5, Z: 0.5},
		},
		{ // [5]
			Pos:   vm.Vector3{X: 0.5, Y: -0.5, Z: 0.5},
			Color: vm.Vector3{X: 0.5, Y: 1, Z: 0.5},
		},
		{ // [6]
			Pos:   vm.Vector3{X: 0.5, Y: 0.5, Z: 0.5},
			Color: vm.Vector3{X: 0.5, Y: 0.5, Z: 1},
		},
		{ // [7]
			Pos:   vm.Vector3{X: -0.5, Y: 0.5, Z: 0.5},
			Color: vm.Vector3{X: 0, Y: 0.5, Z: 0},
		},
	}

	id := []uint32{
		2, 1, 0, 0, 3, 2, // front
		5, 1, 6, 1, 2, 6, // right
		4, 5, 6, 7, 4, 6, // back
		4, 7, 0, 0, 7, 3, // left
		0, 1, 5, 5, 4, 0, // top
		3, 7, 6, 2, 3, 6, // bottom
	}

	return NewMesh(v, id)
}

// NewGridPlane returns a 2x2 quad in the XY plane.
func NewGridPlane() *Mesh {
	v := []Vertex{
		{Pos: vm.Vector3{X: -1, Y: -1}, Color: vm.Vector3{X: 1}},
		{Pos: vm.Vector3{X: -1, Y: 1}, Color: vm.Vector3{Y: 1}},
		{Pos: vm.Vector3{X: 1, Y: 1}, Color: vm.Vector3{Z: 1}},
		{Pos: vm.Vector3{X: 1, Y: -1}, Color: vm.Vector3{X: 1, Y: 0.5, Z: 1}},
	}

	id := []uint32{
		0, 1, 2,
		2, 3, 0,
	}

	return NewMesh(v, id)
}
