// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package bowyerwatson

import "errors"

var (
	// ErrInvalidInput is returned for inputs the triangulation cannot start from:
	// fewer than 3 points, non-finite coordinates or coincident points.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDegenerateGeometry is returned when a triangle would be built from
	// collinear points, or when more than two cavity triangles share an edge.
	ErrDegenerateGeometry = errors.New("degenerate geometry")
)
