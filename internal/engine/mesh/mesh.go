// Package mesh generates the vertex data for the primitive shapes the scene
// is drawn with. Vertices are interleaved as position (x, y, z) followed by
// texture coordinates (u, v).
package mesh

import "github.com/chewxy/math32"

// Stride is the number of floats per vertex.
const Stride = 5

// Quad returns a 1x1 quad on the XY plane centered at the origin, as two
// triangles. It matches the picking rectangle.
func Quad() []float32 {
	return []float32{
		-0.5, -0.5, 0, 0, 0,
		0.5, -0.5, 0, 1, 0,
		0.5, 0.5, 0, 1, 1,

		-0.5, -0.5, 0, 0, 0,
		0.5, 0.5, 0, 1, 1,
		-0.5, 0.5, 0, 0, 1,
	}
}

// Disc returns a unit-radius disc on the XY plane as a triangle fan:
// the center followed by segments+1 rim vertices (the first repeated to close).
func Disc(segments int) []float32 {
	if segments < 3 {
		segments = 3
	}
	v := make([]float32, 0, (segments+2)*Stride)
	v = append(v, 0, 0, 0, 0.5, 0.5)
	for i := 0; i <= segments; i++ {
		a := 2 * math32.Pi * float32(i%segments) / float32(segments)
		x, y := math32.Cos(a), math32.Sin(a)
		v = append(v, x, y, 0, 0.5+x/2, 0.5+y/2)
	}
	return v
}

// Cube returns a unit cube spanning [-0.5, 0.5] on every axis as 12 triangles.
func Cube() []float32 {
	corners := [8][3]float32{
		{-0.5, -0.5, -0.5}, {0.5, -0.5, -0.5}, {0.5, 0.5, -0.5}, {-0.5, 0.5, -0.5},
		{-0.5, -0.5, 0.5}, {0.5, -0.5, 0.5}, {0.5, 0.5, 0.5}, {-0.5, 0.5, 0.5},
	}
	faces := [6][4]int{
		{4, 5, 6, 7}, // +Z
		{1, 0, 3, 2}, // -Z
		{5, 1, 2, 6}, // +X
		{0, 4, 7, 3}, // -X
		{7, 6, 2, 3}, // +Y
		{0, 1, 5, 4}, // -Y
	}
	uv := [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	v := make([]float32, 0, 36*Stride)
	for _, f := range faces {
		for _, i := range [6]int{0, 1, 2, 0, 2, 3} {
			c := corners[f[i]]
			v = append(v, c[0], c[1], c[2], uv[i][0], uv[i][1])
		}
	}
	return v
}

// Count returns the number of vertices in interleaved data.
func Count(v []float32) int32 {
	return int32(len(v) / Stride)
}
