// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package r2delaunay implements planar Delaunay triangulations with per-vertex
// adjacency, built on Bowyer-Watson insertion.

package r2delaunay

import (
	"fmt"

	"github.com/2dChan/r2delaunay/bowyerwatson"
	"github.com/golang/geo/r2"
)

const (
	defaultEps = bowyerwatson.Epsilon
)

type Triangulation struct {
	Vertices []r2.Point
	// NOTE: Vertices of each triangle are sorted in CCW.
	Triangles [][3]int

	// NOTE: Sort in CCW per vertex. For hull vertices each fan starts at the
	// triangle following a hull edge; a vertex may have several fans or none.
	IncidentTriangleIndices []int
	IncidentTriangleOffsets []int

	// NOTE: Sort in CCW per vertex.
	NeighborIndices []int
	NeighborOffsets []int
}

type TriangulationOptions struct {
	Eps float64
}

type TriangulationOption func(*TriangulationOptions) error

// WithEps sets the minimal separation between input vertices on either axis.
func WithEps(eps float64) TriangulationOption {
	return func(o *TriangulationOptions) error {
		if eps <= 0 {
			return fmt.Errorf("WithEps: eps must be positive, got %v", eps)
		}
		o.Eps = eps
		return nil
	}
}

// NewTriangulation computes the Delaunay triangulation of vertices.
// Errors from the underlying computation wrap bowyerwatson.ErrInvalidInput
// or bowyerwatson.ErrDegenerateGeometry.
func NewTriangulation(vertices []r2.Point, setters ...TriangulationOption) (*Triangulation, error) {
	opts := TriangulationOptions{
		Eps: defaultEps,
	}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return nil, err
		}
	}

	numVertices := len(vertices)
	points := make([]bowyerwatson.Point, numVertices)
	for i, v := range vertices {
		points[i] = bowyerwatson.Point(v)
	}
	tris, err := bowyerwatson.TriangulateIndices(points, bowyerwatson.WithEps(opts.Eps))
	if err != nil {
		return nil, fmt.Errorf("r2delaunay: %w", err)
	}

	numTriangles := len(tris)
	dt := &Triangulation{
		Vertices:                vertices,
		Triangles:               tris,
		IncidentTriangleIndices: make([]int, numTriangles*3),
		IncidentTriangleOffsets: make([]int, numVertices+1),
		NeighborOffsets:         make([]int, numVertices+1),
	}

	for _, t := range tris {
		for _, idx := range t {
			dt.IncidentTriangleOffsets[idx+1]++
		}
	}
	for i := range numVertices {
		dt.IncidentTriangleOffsets[i+1] += dt.IncidentTriangleOffsets[i]
	}

	nxt := make([]int, numVertices)
	copy(nxt, dt.IncidentTriangleOffsets[:numVertices])
	for i := range numTriangles {
		sortTriangleVerticesCCW(&dt.Triangles[i], dt.Vertices)
		for _, v := range dt.Triangles[i] {
			dt.IncidentTriangleIndices[nxt[v]] = i
			nxt[v]++
		}
	}

	dt.NeighborIndices = make([]int, 0, numTriangles*3+numVertices)
	for i := range numVertices {
		incidentTriangles := dt.IncidentTriangles(i)
		sortIncidentTriangleIndicesCCW(i, incidentTriangles, dt.Triangles)
		dt.NeighborIndices = appendNeighbors(dt.NeighborIndices, i, incidentTriangles, dt.Triangles)
		dt.NeighborOffsets[i+1] = len(dt.NeighborIndices)
	}

	return dt, nil
}

func (dt *Triangulation) IncidentTriangles(vIdx int) []int {
	if vIdx < 0 || vIdx+1 >= len(dt.IncidentTriangleOffsets) {
		panic("IncidentTriangles: vIdx out of range")
	}
	start := dt.IncidentTriangleOffsets[vIdx]
	end := dt.IncidentTriangleOffsets[vIdx+1]
	return dt.IncidentTriangleIndices[start:end]
}

func (dt *Triangulation) Neighbors(vIdx int) []int {
	if vIdx < 0 || vIdx+1 >= len(dt.NeighborOffsets) {
		panic("Neighbors: vIdx out of range")
	}
	start := dt.NeighborOffsets[vIdx]
	end := dt.NeighborOffsets[vIdx+1]
	return dt.NeighborIndices[start:end]
}

func (dt *Triangulation) TriangleVertices(tIdx int) (r2.Point, r2.Point, r2.Point) {
	if tIdx < 0 || tIdx >= len(dt.Triangles) {
		panic("TriangleVertices: tIdx out of bounds")
	}
	t := dt.Triangles[tIdx]
	return dt.Vertices[t[0]], dt.Vertices[t[1]], dt.Vertices[t[2]]
}

// NumVertices returns the number of vertices, including any vertex left
// without incident triangles.
func (dt *Triangulation) NumVertices() int {
	return len(dt.Vertices)
}

// Star returns the view of the vertex at index i.
// It returns an error if the index is out of range.
func (dt *Triangulation) Star(i int) (Star, error) {
	if i < 0 || i >= len(dt.Vertices) {
		return Star{}, fmt.Errorf("Star: index %d out of range [0 %d)", i, len(dt.Vertices))
	}
	return Star{idx: i, dt: dt}, nil
}

func sortTriangleVerticesCCW(t *[3]int, v []r2.Point) {
	p0, p1, p2 := v[t[0]], v[t[1]], v[t[2]]
	if p1.Sub(p0).Cross(p2.Sub(p0)) < 0 {
		t[1], t[2] = t[2], t[1]
	}
}

// sortIncidentTriangleIndicesCCW orders the triangles around vIdx into fans,
// each triangle following its predecessor counter-clockwise. A vertex whose
// hull triangles were dropped can have several open fans; they are laid out
// one after another. An open fan starts at a triangle whose next vertex is
// not the previous vertex of any other remaining triangle.
func sortIncidentTriangleIndicesCCW(vIdx int, incidentTris []int, tris [][3]int) {
	n := len(incidentTris)
	for start := 0; start < n; {
		for i := start; i < n; i++ {
			nxt := NextVertex(tris[incidentTris[i]], vIdx)
			shared := false
			for j := start; j < n; j++ {
				if j != i && PrevVertex(tris[incidentTris[j]], vIdx) == nxt {
					shared = true
					break
				}
			}
			if !shared {
				incidentTris[start], incidentTris[i] = incidentTris[i], incidentTris[start]
				break
			}
		}

		end := start + 1
		for ; end < n; end++ {
			prv := PrevVertex(tris[incidentTris[end-1]], vIdx)
			found := false
			for j := end; j < n; j++ {
				if NextVertex(tris[incidentTris[j]], vIdx) == prv {
					incidentTris[end], incidentTris[j] = incidentTris[j], incidentTris[end]
					found = true
					break
				}
			}
			if !found {
				break
			}
		}
		start = end
	}
}

// appendNeighbors appends the link of vIdx in CCW order, given its fans as
// sorted by sortIncidentTriangleIndicesCCW. An open fan contributes one more
// neighbour than it has triangles.
func appendNeighbors(dst []int, vIdx int, incidentTris []int, tris [][3]int) []int {
	n := len(incidentTris)
	for start := 0; start < n; {
		end := start + 1
		for end < n && NextVertex(tris[incidentTris[end]], vIdx) == PrevVertex(tris[incidentTris[end-1]], vIdx) {
			end++
		}

		first := NextVertex(tris[incidentTris[start]], vIdx)
		last := PrevVertex(tris[incidentTris[end-1]], vIdx)
		if first != last {
			dst = append(dst, first)
		}
		for _, tIdx := range incidentTris[start:end] {
			dst = append(dst, PrevVertex(tris[tIdx], vIdx))
		}
		start = end
	}
	return dst
}

func PrevVertex(t [3]int, vIdx int) int {
	switch vIdx {
	case t[0]:
		return t[2]
	case t[1]:
		return t[0]
	case t[2]:
		return t[1]
	}
	panic("PrevVertex: vIdx not in triangle")
}

func NextVertex(t [3]int, vIdx int) int {
	switch vIdx {
	case t[0]:
		return t[1]
	case t[1]:
		return t[2]
	case t[2]:
		return t[0]
	}
	panic("NextVertex: vIdx not in triangle")
}
