// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package r2delaunay

import (
	"fmt"

	"github.com/golang/geo/r2"
)

// Star represents the triangles and neighbors around one vertex. It is a view
// structure for accessing a vertex in a Triangulation.
// The star's index corresponds to the index of its vertex in the Triangulation's Vertices.
type Star struct {
	idx int
	dt  *Triangulation
}

// VertexIndex returns the index of the vertex in the Triangulation's Vertices.
func (s Star) VertexIndex() int {
	return s.idx
}

// Vertex returns the center vertex of the star.
func (s Star) Vertex() r2.Point {
	return s.dt.Vertices[s.idx]
}

// NumTriangles returns the number of triangles incident to the vertex.
func (s Star) NumTriangles() int {
	return s.dt.IncidentTriangleOffsets[s.idx+1] - s.dt.IncidentTriangleOffsets[s.idx]
}

// TriangleIndices returns the indices of the incident triangles in the
// Triangulation's Triangles, sorted in counter-clockwise order.
func (s Star) TriangleIndices() []int {
	return s.dt.IncidentTriangles(s.idx)
}

// Triangle returns the vertices of the incident triangle at the specified index.
// It returns an error if the index is out of range.
func (s Star) Triangle(i int) ([3]r2.Point, error) {
	indices := s.TriangleIndices()
	if i < 0 || i >= len(indices) {
		return [3]r2.Point{}, fmt.Errorf("Triangle: index %d out of range [0 %d)", i, len(indices))
	}
	a, b, c := s.dt.TriangleVertices(indices[i])
	return [3]r2.Point{a, b, c}, nil
}

// NumNeighbors returns the number of vertices joined to this one by an edge.
// This equals NumTriangles for interior vertices. A boundary vertex adds one
// per open fan, and a vertex without triangles has no neighbors.
func (s Star) NumNeighbors() int {
	return s.dt.NeighborOffsets[s.idx+1] - s.dt.NeighborOffsets[s.idx]
}

// NeighborIndices returns the indices of the neighboring vertices, sorted in
// counter-clockwise order within each fan.
func (s Star) NeighborIndices() []int {
	return s.dt.Neighbors(s.idx)
}

// Neighbor returns the star of the neighboring vertex at the specified index.
// It returns an error if the index is out of range.
func (s Star) Neighbor(i int) (Star, error) {
	indices := s.NeighborIndices()
	if i < 0 || i >= len(indices) {
		return Star{}, fmt.Errorf("Neighbor: index %d out of range [0 %d)", i, len(indices))
	}
	return s.dt.Star(indices[i])
}

// OnHull reports whether the vertex lies on the boundary of the triangulation.
// A vertex that lost all of its triangles counts as a boundary vertex.
func (s Star) OnHull() bool {
	return s.NumTriangles() == 0 || s.NumNeighbors() != s.NumTriangles()
}
