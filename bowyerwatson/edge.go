// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package bowyerwatson

// Edge is an unordered pair of points.
type Edge struct {
	A, B Point
}

// Equal reports whether e and o join the same two points, in either direction.
func (e Edge) Equal(o Edge) bool {
	return (e.A.Equal(o.A) && e.B.Equal(o.B)) || (e.A.Equal(o.B) && e.B.Equal(o.A))
}

// edgeKey identifies an edge by the arena indices of its endpoints.
type edgeKey struct {
	lo, hi int
}

func newEdgeKey(u, v int) edgeKey {
	if u > v {
		u, v = v, u
	}
	return edgeKey{lo: u, hi: v}
}
