package main

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// normalPCA fits a plane through the atom coordinates and returns its
// normal: the eigenvector of the coordinate covariance matrix with the
// smallest eigenvalue, oriented along positive z.
func normalPCA(coords [][3]float64) (normal, centroid [3]float64) {
	centroid = mean(coords)

	var cov [3][3]float64
	for _, c := range coords {
		var d [3]float64
		for k := 0; k < 3; k++ {
			d[k] = c[k] - centroid[k]
		}
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				cov[i][j] += d[i] * d[j]
			}
		}
	}
	n := float64(len(coords))
	sym := mat.NewSymDense(3, nil)
	for i := 0; i < 3; i++ {
		for j := i; j < 3; j++ {
			sym.SetSym(i, j, cov[i][j]/n)
		}
	}

	var eig mat.EigenSym
	if !eig.Factorize(sym, true) {
		// Degenerate coordinates; fall back to the flat-slab assumption.
		return normalZAxis(coords)
	}
	var vecs mat.Dense
	eig.VectorsTo(&vecs)

	// Eigenvalues come out ascending; the first eigenvector spans the
	// direction of least variance, which is the plane normal.
	for k := 0; k < 3; k++ {
		normal[k] = vecs.At(k, 0)
	}
	return unitUp(normal), centroid
}

// normalZAxis assumes a flat slab in the xy plane.
func normalZAxis(coords [][3]float64) (normal, centroid [3]float64) {
	return [3]float64{0, 0, 1}, mean(coords)
}

// normalCentroid points from the mean of the lowest atom layer to the
// mean of the highest, sampling the top and bottom tenth (at least 10
// atoms each) by z coordinate.
func normalCentroid(coords [][3]float64) (normal, centroid [3]float64) {
	centroid = mean(coords)

	byZ := make([][3]float64, len(coords))
	copy(byZ, coords)
	sort.Slice(byZ, func(i, j int) bool { return byZ[i][2] < byZ[j][2] })

	sample := len(coords) / 10
	if sample < 10 {
		sample = 10
	}
	if sample > len(byZ) {
		sample = len(byZ)
	}
	bottom := mean(byZ[:sample])
	top := mean(byZ[len(byZ)-sample:])

	for k := 0; k < 3; k++ {
		normal[k] = top[k] - bottom[k]
	}
	return unitUp(normal), centroid
}

// surfacePoints expands a normal and centroid into the three-point
// descriptor: the centroid and two points 10 Angstroms away along
// orthogonal in-plane tangents.
func surfacePoints(normal, centroid [3]float64) (p1, p2, p3 [3]float64) {
	arbitrary := [3]float64{1, 0, 0}
	if math.Abs(normal[0]) >= 0.9 {
		arbitrary = [3]float64{0, 1, 0}
	}
	t1 := unit(cross(normal, arbitrary))
	t2 := unit(cross(normal, t1))

	p1 = centroid
	for k := 0; k < 3; k++ {
		p2[k] = centroid[k] + t1[k]*10
		p3[k] = centroid[k] + t2[k]*10
	}
	return p1, p2, p3
}

func mean(coords [][3]float64) [3]float64 {
	var m [3]float64
	for _, c := range coords {
		for k := 0; k < 3; k++ {
			m[k] += c[k]
		}
	}
	for k := 0; k < 3; k++ {
		m[k] /= float64(len(coords))
	}
	return m
}

func cross(a, b [3]float64) [3]float64 {
	return [3]float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func unit(v [3]float64) [3]float64 {
	n := math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
	for k := 0; k < 3; k++ {
		v[k] /= n
	}
	return v
}

// unitUp normalizes v and flips it to point along positive z, the
// convention the docking protocol expects for an upward-facing surface.
func unitUp(v [3]float64) [3]float64 {
	if v[2] < 0 {
		for k := 0; k < 3; k++ {
			v[k] = -v[k]
		}
	}
	return unit(v)
}
