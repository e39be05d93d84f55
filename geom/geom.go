// Package geom generates the point lists for the solids and lines of a scene.
//
// Generators append to a [Buffer]. Solids are emitted as triangles, three
// consecutive points per triangle, wound counter-clockwise when seen from
// outside the solid so that back-face culling can use the sign of the
// triangle normal. Lines are emitted as edges, two consecutive points per
// edge.
package geom

import (
	"math"

	"github.com/gogpu/mdl/matrix"
)

// DefaultStep is the tessellation step count for spheres and tori.
const DefaultStep = 20

// Buffer is the scratch geometry accumulated by one command before it is
// transformed and handed to a rendering back-end.
//
// Buffer is not safe for concurrent use.
type Buffer struct {
	Points []matrix.Point
}

// Reset empties the buffer, keeping its storage.
func (b *Buffer) Reset() {
	b.Points = b.Points[:0]
}

// Len returns the number of points in the buffer.
func (b *Buffer) Len() int {
	return len(b.Points)
}

// Transform applies m to every point in the buffer.
func (b *Buffer) Transform(m matrix.Mat4) {
	m.Apply(b.Points)
}

// AddTriangle appends the triangle (p0, p1, p2).
func (b *Buffer) AddTriangle(p0, p1, p2 matrix.Point) {
	b.Points = append(b.Points, p0, p1, p2)
}

// AddEdge appends the edge from (x0, y0, z0) to (x1, y1, z1).
func (b *Buffer) AddEdge(x0, y0, z0, x1, y1, z1 float64) {
	b.Points = append(b.Points, matrix.Pt(x0, y0, z0), matrix.Pt(x1, y1, z1))
}

// addQuad appends the quad (p0, p1, p2, p3), given counter-clockwise, as two
// triangles.
func (b *Buffer) addQuad(p0, p1, p2, p3 matrix.Point) {
	b.AddTriangle(p0, p1, p2)
	b.AddTriangle(p0, p2, p3)
}

// AddBox appends a box whose front top-left corner is (x, y, z). The box
// extends w along +x, h along -y and d along -z.
func (b *Buffer) AddBox(x, y, z, w, h, d float64) {
	x0, x1 := x, x+w
	y0, y1 := y, y-h
	z0, z1 := z, z-d

	// front, back
	b.addQuad(matrix.Pt(x0, y1, z0), matrix.Pt(x1, y1, z0), matrix.Pt(x1, y0, z0), matrix.Pt(x0, y0, z0))
	b.addQuad(matrix.Pt(x1, y1, z1), matrix.Pt(x0, y1, z1), matrix.Pt(x0, y0, z1), matrix.Pt(x1, y0, z1))
	// right, left
	b.addQuad(matrix.Pt(x1, y1, z0), matrix.Pt(x1, y1, z1), matrix.Pt(x1, y0, z1), matrix.Pt(x1, y0, z0))
	b.addQuad(matrix.Pt(x0, y1, z1), matrix.Pt(x0, y1, z0), matrix.Pt(x0, y0, z0), matrix.Pt(x0, y0, z1))
	// top, bottom
	b.addQuad(matrix.Pt(x0, y0, z0), matrix.Pt(x1, y0, z0), matrix.Pt(x1, y0, z1), matrix.Pt(x0, y0, z1))
	b.addQuad(matrix.Pt(x0, y1, z1), matrix.Pt(x1, y1, z1), matrix.Pt(x1, y1, z0), matrix.Pt(x0, y1, z0))
}

// AddSphere appends a sphere of radius r centred on (cx, cy, cz).
// step is the number of longitudinal slices and latitudinal bands; values
// below 3 are raised to 3.
func (b *Buffer) AddSphere(cx, cy, cz, r float64, step int) {
	step = max(step, 3)

	// grid[i][j]: longitude i in [0, step), latitude j in [0, step].
	at := func(i, j int) matrix.Point {
		phi := 2 * math.Pi * float64(i%step) / float64(step)
		theta := math.Pi * float64(j) / float64(step)
		sinT, cosT := math.Sincos(theta)
		sinP, cosP := math.Sincos(phi)
		return matrix.Pt(cx+r*cosT, cy+r*sinT*cosP, cz+r*sinT*sinP)
	}

	for i := 0; i < step; i++ {
		for j := 0; j < step; j++ {
			p00, p01 := at(i, j), at(i, j+1)
			p10, p11 := at(i+1, j), at(i+1, j+1)
			if j != step-1 {
				b.AddTriangle(p00, p01, p11)
			}
			if j != 0 {
				b.AddTriangle(p00, p11, p10)
			}
		}
	}
}

// AddTorus appends a torus centred on (cx, cy, cz). r1 is the radius of the
// tube cross-section and r2 the distance from the centre to the middle of
// the tube; the torus lies around the y axis. step values below 3 are raised
// to 3.
func (b *Buffer) AddTorus(cx, cy, cz, r1, r2 float64, step int) {
	step = max(step, 3)

	at := func(i, j int) matrix.Point {
		phi := 2 * math.Pi * float64(i%step) / float64(step)
		theta := 2 * math.Pi * float64(j%step) / float64(step)
		sinT, cosT := math.Sincos(theta)
		sinP, cosP := math.Sincos(phi)
		ring := r1*cosT + r2
		return matrix.Pt(cx+cosP*ring, cy+r1*sinT, cz-sinP*ring)
	}

	for i := 0; i < step; i++ {
		for j := 0; j < step; j++ {
			p00, p01 := at(i, j), at(i, j+1)
			p10, p11 := at(i+1, j), at(i+1, j+1)
			b.AddTriangle(p00, p10, p11)
			b.AddTriangle(p00, p11, p01)
		}
	}
}

// Normal returns the (unnormalised) normal of the triangle (p0, p1, p2),
// (p1-p0) x (p2-p0).
func Normal(p0, p1, p2 matrix.Point) [3]float64 {
	ax, ay, az := p1[0]-p0[0], p1[1]-p0[1], p1[2]-p0[2]
	bx, by, bz := p2[0]-p0[0], p2[1]-p0[1], p2[2]-p0[2]
	return [3]float64{
		ay*bz - az*by,
		az*bx - ax*bz,
		ax*by - ay*bx,
	}
}
