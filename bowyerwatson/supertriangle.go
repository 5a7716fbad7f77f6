// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package bowyerwatson

import (
	"fmt"

	"github.com/golang/geo/r2"
)

// SuperTriangle returns a triangle strictly enclosing every point of points,
// built around their bounding box. Its vertices are listed counter-clockwise.
func SuperTriangle(points []Point) (Triangle, error) {
	if len(points) == 0 {
		return Triangle{}, fmt.Errorf("bowyerwatson: bounding box of empty point set: %w", ErrInvalidInput)
	}

	r2points := make([]r2.Point, len(points))
	for i, p := range points {
		r2points[i] = r2.Point(p)
	}
	bounds := r2.RectFromPoints(r2points...)
	lo, hi := bounds.Lo(), bounds.Hi()
	dx := (hi.X - lo.X) / 2

	p1 := Point{X: lo.X - dx - 1, Y: lo.Y - 1}
	p2 := Point{X: hi.X + dx + 1, Y: lo.Y - 1}
	p3 := Point{X: lo.X + dx, Y: hi.Y + (hi.Y - lo.Y) + 1}

	return NewTriangle(p1, p2, p3)
}
