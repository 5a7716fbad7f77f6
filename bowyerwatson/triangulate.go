// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package bowyerwatson computes planar Delaunay triangulations by incremental
// Bowyer-Watson insertion.
//
// Points are inserted one at a time into a triangulation seeded with a
// super-triangle. Triangles whose circumcircle contains the new point are
// removed and the resulting cavity is re-triangulated around the point.
// Triangles touching the super-triangle are dropped at the end.
//
// Arithmetic is plain float64; the circumcircle test is inclusive, so
// cocircular inputs produce one of the valid triangulations depending on
// insertion order.
package bowyerwatson

import (
	"fmt"
	"sort"
)

// face is a triangle of the working triangulation. v holds arena indices,
// scaffold is set when any of them belongs to the super-triangle.
type face struct {
	v        [3]int
	tri      Triangle
	scaffold bool
}

// Triangulate returns the Delaunay triangulation of points. Triangle order is
// unspecified but deterministic for a given input sequence.
//
// The super-triangle hugs the bounding box, so a hull edge whose only empty
// circles are very large may be lost together with its triangle. When no
// triangle survives, e.g. for three nearly collinear points, Triangulate
// returns an error wrapping ErrDegenerateGeometry instead of an empty result.
func Triangulate(points []Point, setters ...Option) ([]Triangle, error) {
	faces, err := triangulate(points, setters)
	if err != nil {
		return nil, err
	}

	tris := make([]Triangle, len(faces))
	for i, f := range faces {
		tris[i] = f.tri
	}
	return tris, nil
}

// TriangulateIndices is like Triangulate but returns each triangle as the
// indices of its vertices in points.
func TriangulateIndices(points []Point, setters ...Option) ([][3]int, error) {
	faces, err := triangulate(points, setters)
	if err != nil {
		return nil, err
	}

	tris := make([][3]int, len(faces))
	for i, f := range faces {
		tris[i] = f.v
	}
	return tris, nil
}

func triangulate(points []Point, setters []Option) ([]face, error) {
	opts, err := newOptions(setters)
	if err != nil {
		return nil, err
	}
	if err := validate(points, opts.Eps); err != nil {
		return nil, err
	}

	super, err := SuperTriangle(points)
	if err != nil {
		return nil, err
	}

	n := len(points)
	arena := make([]Point, n, n+3)
	copy(arena, points)
	arena = append(arena, super.A, super.B, super.C)

	faces := []face{{v: [3]int{n, n + 1, n + 2}, tri: super, scaffold: true}}
	bad := make([]bool, 0, len(faces))
	for i := range n {
		p := arena[i]

		bad = bad[:0]
		var badIdx []int
		for j, f := range faces {
			in := p.InCircumcircle(f.tri)
			bad = append(bad, in)
			if in {
				badIdx = append(badIdx, j)
			}
		}
		if len(badIdx) == 0 {
			return nil, fmt.Errorf("bowyerwatson: point %d %v outside every circumcircle: %w", i, p, ErrDegenerateGeometry)
		}

		boundary, err := cavityBoundary(faces, badIdx)
		if err != nil {
			return nil, fmt.Errorf("bowyerwatson: inserting point %d: %w", i, err)
		}

		next := make([]face, 0, len(faces)-len(badIdx)+len(boundary))
		for j, f := range faces {
			if !bad[j] {
				next = append(next, f)
			}
		}
		for _, e := range boundary {
			tri, err := NewTriangle(p, arena[e[0]], arena[e[1]])
			if err != nil {
				return nil, fmt.Errorf("bowyerwatson: inserting point %d: %w", i, err)
			}
			next = append(next, face{
				v:        [3]int{i, e[0], e[1]},
				tri:      tri,
				scaffold: e[0] >= n || e[1] >= n,
			})
		}
		faces = next
	}

	out := faces[:0]
	for _, f := range faces {
		if !f.scaffold {
			out = append(out, f)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("bowyerwatson: no triangle of %d points clears the super-triangle: %w", n, ErrDegenerateGeometry)
	}
	return out, nil
}

// cavityBoundary returns the edges owned by exactly one of the bad faces, in
// the order they appear in the bad faces and oriented as in their owner.
func cavityBoundary(faces []face, badIdx []int) ([][2]int, error) {
	counts := make(map[edgeKey]int, 3*len(badIdx))
	for _, j := range badIdx {
		v := faces[j].v
		for k := range 3 {
			key := newEdgeKey(v[k], v[(k+1)%3])
			counts[key]++
			if counts[key] > 2 {
				return nil, fmt.Errorf("edge (%d, %d) shared by more than two cavity triangles: %w",
					key.lo, key.hi, ErrDegenerateGeometry)
			}
		}
	}

	var boundary [][2]int
	for _, j := range badIdx {
		v := faces[j].v
		for k := range 3 {
			u, w := v[k], v[(k+1)%3]
			if counts[newEdgeKey(u, w)] == 1 {
				boundary = append(boundary, [2]int{u, w})
			}
		}
	}
	return boundary, nil
}

// validate rejects inputs that cannot be triangulated.
func validate(points []Point, eps float64) error {
	if len(points) < 3 {
		return fmt.Errorf("bowyerwatson: %d points given, at least 3 required: %w", len(points), ErrInvalidInput)
	}
	for i, p := range points {
		if !p.isFinite() {
			return fmt.Errorf("bowyerwatson: point %d %v is not finite: %w", i, p, ErrInvalidInput)
		}
	}

	order := make([]int, len(points))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		return points[order[i]].X < points[order[j]].X
	})
	for i, a := range order {
		for _, b := range order[i+1:] {
			if points[b].X-points[a].X > eps {
				break
			}
			if points[a].EqualWithin(points[b], eps) {
				lo, hi := min(a, b), max(a, b)
				return fmt.Errorf("bowyerwatson: points %d and %d coincide within %v: %w", lo, hi, eps, ErrInvalidInput)
			}
		}
	}

	a, b := points[0], points[1]
	for _, c := range points[2:] {
		if cross(a, b, c) != 0 {
			return nil
		}
	}
	return fmt.Errorf("bowyerwatson: all %d points are collinear: %w", len(points), ErrDegenerateGeometry)
}
