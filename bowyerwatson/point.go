// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package bowyerwatson

import (
	"math"

	"github.com/golang/geo/r2"
)

// Epsilon is the per-coordinate tolerance used by Point.Equal.
//
// The tolerance is absolute and does not scale with magnitude, unlike a
// relative comparison: far from the origin neighbouring float64 values are
// more than Epsilon apart and equality becomes exact, while near the origin
// distinct coordinates within Epsilon of each other compare equal.
//
// Tolerance-based equality is not transitive: callers must keep input points
// pairwise separated by more than Epsilon, otherwise vertex and edge
// comparisons may disagree with each other.
const Epsilon = 1e-9

// Point is a float64 2d point used in the triangulation.
type Point r2.Point

// DistanceSquared returns the squared euclidean distance between p and q.
func (p Point) DistanceSquared(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return dx*dx + dy*dy
}

// InCircumcircle reports whether p lies inside or on the circumcircle of t.
func (p Point) InCircumcircle(t Triangle) bool {
	return p.DistanceSquared(t.Center) <= t.Radius2
}

// Equal reports whether p and q coincide within Epsilon.
func (p Point) Equal(q Point) bool {
	return p.EqualWithin(q, Epsilon)
}

// EqualWithin reports whether p and q coincide within eps on both axes.
func (p Point) EqualWithin(q Point, eps float64) bool {
	return math.Abs(p.X-q.X) <= eps && math.Abs(p.Y-q.Y) <= eps
}

func (p Point) isFinite() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

func (p Point) sub(q Point) Point {
	return Point(r2.Point(p).Sub(r2.Point(q)))
}

// cross returns the z component of (b-a) x (c-a).
func cross(a, b, c Point) float64 {
	return r2.Point(b.sub(a)).Cross(r2.Point(c.sub(a)))
}
