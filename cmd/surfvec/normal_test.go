package main

import (
	"math"
	"testing"
)

// planarGrid builds a grid of points in the z=5 plane with a little
// in-plane spread.
func planarGrid() [][3]float64 {
	var coords [][3]float64
	for i := 0; i < 10; i++ {
		for j := 0; j < 10; j++ {
			coords = append(coords, [3]float64{float64(i), float64(j) * 2, 5})
		}
	}
	return coords
}

func almostEqual(a, b [3]float64) bool {
	for k := 0; k < 3; k++ {
		if math.Abs(a[k]-b[k]) > 1e-9 {
			return false
		}
	}
	return true
}

func TestNormalPCAFlatPlane(t *testing.T) {
	normal, centroid := normalPCA(planarGrid())
	if !almostEqual(normal, [3]float64{0, 0, 1}) {
		t.Errorf("normal of a z=5 plane: got %v, want (0,0,1)", normal)
	}
	if math.Abs(centroid[2]-5) > 1e-9 {
		t.Errorf("centroid z: got %v, want 5", centroid[2])
	}
}

func TestNormalPCATiltedPlane(t *testing.T) {
	// Points spanning the plane z = x: normal is (-1,0,1)/sqrt(2),
	// flipped to positive z.
	var coords [][3]float64
	for i := 0; i < 20; i++ {
		for j := 0; j < 20; j++ {
			x := float64(i)
			coords = append(coords, [3]float64{x, float64(j), x})
		}
	}
	normal, _ := normalPCA(coords)
	want := [3]float64{-1 / math.Sqrt2, 0, 1 / math.Sqrt2}
	for k := 0; k < 3; k++ {
		if math.Abs(normal[k]-want[k]) > 1e-6 {
			t.Fatalf("tilted plane normal: got %v, want %v", normal, want)
		}
	}
}

func TestNormalCentroidPointsUp(t *testing.T) {
	// Two well-separated layers along z.
	var coords [][3]float64
	for i := 0; i < 50; i++ {
		coords = append(coords, [3]float64{float64(i), 0, 0})
		coords = append(coords, [3]float64{float64(i), 0, 10})
	}
	normal, _ := normalCentroid(coords)
	if normal[2] <= 0 {
		t.Errorf("centroid-method normal should point up, got %v", normal)
	}
}

func TestSurfacePointsOrthogonal(t *testing.T) {
	normal := [3]float64{0, 0, 1}
	centroid := [3]float64{1, 2, 3}
	p1, p2, p3 := surfacePoints(normal, centroid)

	if !almostEqual(p1, centroid) {
		t.Errorf("first point should be the centroid, got %v", p1)
	}
	var v2, v3 [3]float64
	for k := 0; k < 3; k++ {
		v2[k] = p2[k] - centroid[k]
		v3[k] = p3[k] - centroid[k]
	}
	// Both tangents lie in the plane, 10 Angstroms out, orthogonal to
	// each other.
	for _, v := range [][3]float64{v2, v3} {
		if math.Abs(v[2]) > 1e-9 {
			t.Errorf("tangent leaves the surface plane: %v", v)
		}
		n := math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
		if math.Abs(n-10) > 1e-9 {
			t.Errorf("tangent length: got %v, want 10", n)
		}
	}
	dot := v2[0]*v3[0] + v2[1]*v3[1] + v2[2]*v3[2]
	if math.Abs(dot) > 1e-9 {
		t.Errorf("tangents not orthogonal: dot = %v", dot)
	}
}
