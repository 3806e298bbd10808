package main

import (
	"flag"
	"fmt"

	chem "github.com/rmera/gochem"

	"github.com/konhoe/BioM-AI/cmd/util"
)

var flagMethod = "pca"

func init() {
	flag.StringVar(&flagMethod, "method", flagMethod,
		"Surface-normal method: pca (plane fit), z-axis (assume a flat\n"+
			"slab along z) or centroid (top/bottom atom layers).")

	util.FlagUse("verbose")
}

func main() {
	util.FlagParse("surface-pdb [out-file]",
		"Compute a surface geometry descriptor from a slab structure: the\n"+
			"surface centroid and two in-plane points 10 Angstroms along the\n"+
			"tangent directions, in the three-point format the docking\n"+
			"protocol consumes. Default output file: surface_vectors.txt.")
	util.AssertLeastNArg(1)

	path := util.AbsPath(util.Arg(0))
	util.AssertIsFile(path)
	out := "surface_vectors.txt"
	if util.NArg() > 1 {
		out = util.AbsPath(util.Arg(1))
	}

	mol, err := chem.PDBFileRead(path, false)
	util.Assert(err, "Could not read structure '%s'", path)
	if mol.Len() == 0 || len(mol.Coords) == 0 {
		util.Fatalf("'%s' contains no coordinates.", path)
	}

	coords := make([][3]float64, mol.Len())
	frame := mol.Coords[0]
	for i := range coords {
		coords[i] = [3]float64{frame.At(i, 0), frame.At(i, 1), frame.At(i, 2)}
	}

	var normal, centroid [3]float64
	switch flagMethod {
	case "pca":
		normal, centroid = normalPCA(coords)
	case "z-axis":
		normal, centroid = normalZAxis(coords)
	case "centroid":
		normal, centroid = normalCentroid(coords)
	default:
		util.Fatalf("Unknown method '%s'; want pca, z-axis or centroid.",
			flagMethod)
	}

	p1, p2, p3 := surfacePoints(normal, centroid)
	f := util.CreateFile(out)
	for _, p := range [][3]float64{p1, p2, p3} {
		fmt.Fprintf(f, "%8.3f %8.3f %8.3f\n", p[0], p[1], p[2])
	}
	util.Assert(f.Close())

	util.Verbosef("Surface vectors written to '%s' (%d atoms, method %s).",
		out, len(coords), flagMethod)
	util.Verbosef("Surface normal: (%.6f, %.6f, %.6f).",
		normal[0], normal[1], normal[2])
}
