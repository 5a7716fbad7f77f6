package r2delaunay

import (
	"testing"

	"github.com/golang/geo/r2"
	"github.com/google/go-cmp/cmp"
)

// Star

func TestStar_VertexIndex(t *testing.T) {
	dt := mustNewTriangulation(t, 100)
	for i := range dt.Vertices {
		s, err := dt.Star(i)
		if err != nil {
			t.Fatalf("dt.Star(%d) error = %v, want nil", i, err)
		}
		if got := s.VertexIndex(); got != i {
			t.Errorf("s.VertexIndex() = %v, want %v", got, i)
		}
	}
}

func TestStar_Vertex(t *testing.T) {
	dt := mustNewTriangulation(t, 100)
	for i, want := range dt.Vertices {
		s, err := dt.Star(i)
		if err != nil {
			t.Fatalf("dt.Star(%d) error = %v, want nil", i, err)
		}
		if got := s.Vertex(); got != want {
			t.Errorf("s.Vertex() = %v, want %v", got, want)
		}
	}
}

func TestStar_TriangleIndices(t *testing.T) {
	dt := mustNewTriangulation(t, 100)
	for i := range dt.Vertices {
		s, err := dt.Star(i)
		if err != nil {
			t.Fatalf("dt.Star(%d) error = %v, want nil", i, err)
		}
		want := dt.IncidentTriangleIndices[dt.IncidentTriangleOffsets[i]:dt.IncidentTriangleOffsets[i+1]]
		got := s.TriangleIndices()
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("s.TriangleIndices() mismatch (-want +got):\n%s", diff)
		}
		if s.NumTriangles() != len(want) {
			t.Errorf("s.NumTriangles() = %v, want %v", s.NumTriangles(), len(want))
		}
	}
}

func TestStar_Triangle(t *testing.T) {
	dt := mustNewTriangulation(t, 100)
	for i := range dt.Vertices {
		s, err := dt.Star(i)
		if err != nil {
			t.Fatalf("dt.Star(%d) error = %v, want nil", i, err)
		}
		for j, tIdx := range s.TriangleIndices() {
			got, err := s.Triangle(j)
			if err != nil {
				t.Fatalf("s.Triangle(%d) error = %v, want nil", j, err)
			}
			a, b, c := dt.TriangleVertices(tIdx)
			if diff := cmp.Diff([3]r2.Point{a, b, c}, got); diff != "" {
				t.Errorf("s.Triangle(%d) mismatch (-want +got):\n%s", j, diff)
			}
		}

		if _, err := s.Triangle(-1); err == nil {
			t.Errorf("s.Triangle(-1) error = nil, want non-nil")
		}
		if _, err := s.Triangle(s.NumTriangles()); err == nil {
			t.Errorf("s.Triangle(%d) error = nil, want non-nil", s.NumTriangles())
		}
	}
}

func TestStar_NeighborIndices(t *testing.T) {
	dt := mustNewTriangulation(t, 100)
	for i := range dt.Vertices {
		s, err := dt.Star(i)
		if err != nil {
			t.Fatalf("dt.Star(%d) error = %v, want nil", i, err)
		}
		want := dt.NeighborIndices[dt.NeighborOffsets[i]:dt.NeighborOffsets[i+1]]
		got := s.NeighborIndices()
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("s.NeighborIndices() mismatch (-want +got, star %d):\n%s", i, diff)
		}
		if s.NumNeighbors() != len(want) {
			t.Errorf("s.NumNeighbors() = %v, want %v", s.NumNeighbors(), len(want))
		}
	}
}

func TestStar_Neighbor(t *testing.T) {
	dt := mustNewTriangulation(t, 100)
	for i := range dt.Vertices {
		s, err := dt.Star(i)
		if err != nil {
			t.Fatalf("dt.Star(%d) error = %v, want nil", i, err)
		}
		for j, nIdx := range s.NeighborIndices() {
			got, err := s.Neighbor(j)
			if err != nil {
				t.Fatal(err)
			}
			if got.VertexIndex() != nIdx {
				t.Errorf("s.Neighbor(%d).VertexIndex() = %v, want %v", j, got.VertexIndex(), nIdx)
			}
		}
		if _, err := s.Neighbor(-1); err == nil {
			t.Errorf("s.Neighbor(-1) error = nil, want non-nil")
		}
		if _, err = s.Neighbor(s.NumNeighbors()); err == nil {
			t.Errorf("s.Neighbor(%d) error = nil, want non-nil", s.NumNeighbors())
		}
	}
}

func TestStar_OnHull(t *testing.T) {
	dt := mustNewTriangulation(t, 100)
	for i := range dt.Vertices {
		s, err := dt.Star(i)
		if err != nil {
			t.Fatalf("dt.Star(%d) error = %v, want nil", i, err)
		}

		// Corners of the frame come first.
		want := i < 4
		if got := s.OnHull(); got != want {
			t.Errorf("dt.Star(%d).OnHull() = %v, want %v", i, got, want)
		}

		wantNeighbors := s.NumTriangles()
		if want {
			wantNeighbors++
		}
		if got := s.NumNeighbors(); got != wantNeighbors {
			t.Errorf("dt.Star(%d).NumNeighbors() = %v, want %v", i, got, wantNeighbors)
		}
	}
}

func TestStar_OnHullWithoutTriangles(t *testing.T) {
	// Vertex 3 lost its only triangles to the super-triangle.
	dt := &Triangulation{
		Vertices:                []r2.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 5, Y: 5}},
		Triangles:               [][3]int{{0, 1, 2}},
		IncidentTriangleIndices: []int{0, 0, 0},
		IncidentTriangleOffsets: []int{0, 1, 2, 3, 3},
		NeighborIndices:         []int{1, 2, 2, 0, 0, 1},
		NeighborOffsets:         []int{0, 2, 4, 6, 6},
	}

	s, err := dt.Star(3)
	if err != nil {
		t.Fatalf("dt.Star(3) error = %v, want nil", err)
	}
	if s.NumTriangles() != 0 || s.NumNeighbors() != 0 {
		t.Errorf("dt.Star(3) has %d triangles and %d neighbors, want 0 and 0", s.NumTriangles(), s.NumNeighbors())
	}
	if !s.OnHull() {
		t.Errorf("dt.Star(3).OnHull() = false, want true")
	}

	for i := range 3 {
		s, err := dt.Star(i)
		if err != nil {
			t.Fatalf("dt.Star(%d) error = %v, want nil", i, err)
		}
		if !s.OnHull() {
			t.Errorf("dt.Star(%d).OnHull() = false, want true", i)
		}
	}
}

func TestStar_VerifyNeighborsCCW(t *testing.T) {
	dt := mustNewTriangulation(t, 100)

	for i := range dt.NumVertices() {
		s, err := dt.Star(i)
		if err != nil {
			t.Fatalf("dt.Star(%d) error = %v, want nil", i, err)
		}

		center := s.Vertex()
		n := s.NumNeighbors()
		pairs := n
		if s.OnHull() {
			pairs = n - 1
		}
		for j := range pairs {
			c, err := s.Neighbor(j)
			if err != nil {
				t.Fatalf("s.Neighbor(%d) error = %v, want nil", j, err)
			}
			nx, err := s.Neighbor((j + 1) % n)
			if err != nil {
				t.Fatalf("s.Neighbor(%d) error = %v, want nil", (j+1)%n, err)
			}

			cross := c.Vertex().Sub(center).Cross(nx.Vertex().Sub(center))
			if cross <= 0 {
				t.Errorf("dt.Star(%d) Neighbors %d,%d not sorted in CCW", i, j, (j+1)%n)
			}
		}
	}
}
