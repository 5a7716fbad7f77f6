// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package utils provides utility functions for generating planar point sets for triangulation.

package utils

import (
	"math/rand"

	"github.com/golang/geo/r2"
)

const (
	framedLo = 0.2
	framedHi = 0.8
)

// GenerateRandomPoints generates cnt random points in the unit square [0, 1)².
// The seed parameter ensures reproducibility.
func GenerateRandomPoints(cnt int, seed int64) []r2.Point {
	//nolint:gosec
	random := rand.New(rand.NewSource(seed))
	points := make([]r2.Point, cnt)

	for i := range cnt {
		points[i] = r2.Point{X: random.Float64(), Y: random.Float64()}
	}

	return points
}

// GenerateFramedPoints generates the four corners of the unit square followed by
// cnt-4 random points in [0.2, 0.8)². The convex hull of the result is the unit
// square, and every hull edge keeps a small empty circle, so the triangulation
// covers the whole hull. For cnt < 4 only the first cnt corners are returned.
// The seed parameter ensures reproducibility.
func GenerateFramedPoints(cnt int, seed int64) []r2.Point {
	corners := []r2.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	if cnt <= len(corners) {
		return corners[:max(cnt, 0)]
	}

	//nolint:gosec
	random := rand.New(rand.NewSource(seed))
	points := make([]r2.Point, cnt)
	copy(points, corners)

	for i := len(corners); i < cnt; i++ {
		points[i] = r2.Point{
			X: framedLo + random.Float64()*(framedHi-framedLo),
			Y: framedLo + random.Float64()*(framedHi-framedLo),
		}
	}

	return points
}
