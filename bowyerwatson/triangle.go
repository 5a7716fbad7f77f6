// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package bowyerwatson

import (
	"fmt"

	"github.com/golang/geo/r2"
)

// Triangle is an immutable triangle with its circumcircle precomputed.
type Triangle struct {
	A, B, C Point

	// Center is the circumcenter, Radius2 the squared circumradius.
	Center  Point
	Radius2 float64

	edges [3]Edge
}

// NewTriangle builds the triangle (a, b, c). It returns an error wrapping
// ErrDegenerateGeometry if the points are collinear.
func NewTriangle(a, b, c Point) (Triangle, error) {
	center, err := circumcenter(a, b, c)
	if err != nil {
		return Triangle{}, err
	}
	return Triangle{
		A:       a,
		B:       b,
		C:       c,
		Center:  center,
		Radius2: center.DistanceSquared(a),
		edges:   [3]Edge{{a, b}, {b, c}, {c, a}},
	}, nil
}

// Edges returns the edges (a,b), (b,c), (c,a).
func (t Triangle) Edges() [3]Edge {
	return t.edges
}

func (t Triangle) HasEdge(e Edge) bool {
	for _, te := range t.edges {
		if te.Equal(e) {
			return true
		}
	}
	return false
}

func (t Triangle) HasVertex(p Point) bool {
	return t.A.Equal(p) || t.B.Equal(p) || t.C.Equal(p)
}

// HasVertexFrom reports whether t shares at least one vertex with o.
func (t Triangle) HasVertexFrom(o Triangle) bool {
	return t.HasVertex(o.A) || t.HasVertex(o.B) || t.HasVertex(o.C)
}

func (t Triangle) String() string {
	return fmt.Sprintf("Triangle((%v, %v), (%v, %v), (%v, %v))", t.A.X, t.A.Y, t.B.X, t.B.Y, t.C.X, t.C.Y)
}

func circumcenter(a, b, c Point) (Point, error) {
	d := 2 * (a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y))
	if d == 0 {
		return Point{}, fmt.Errorf("bowyerwatson: collinear points %v, %v, %v: %w", a, b, c, ErrDegenerateGeometry)
	}

	ra, rb, rc := r2.Point(a), r2.Point(b), r2.Point(c)
	a2, b2, c2 := ra.Dot(ra), rb.Dot(rb), rc.Dot(rc)
	num := r2.Point{
		X: a2*(b.Y-c.Y) + b2*(c.Y-a.Y) + c2*(a.Y-b.Y),
		Y: a2*(c.X-b.X) + b2*(a.X-c.X) + c2*(b.X-a.X),
	}
	center := Point{X: num.X / d, Y: num.Y / d}
	if !center.isFinite() {
		return Point{}, fmt.Errorf("bowyerwatson: circumcenter of %v, %v, %v overflows: %w", a, b, c, ErrDegenerateGeometry)
	}
	return center, nil
}
