package main

import (
	"flag"
	"strings"

	"github.com/konhoe/BioM-AI/cmd/util"
	"github.com/konhoe/BioM-AI/pdb"
)

var (
	flagSurfaceRes   = ""
	flagSurfaceChain = "Z"
	flagRenumber     = false
	flagStart        = 1
)

func init() {
	flag.StringVar(&flagSurfaceRes, "surface-res", flagSurfaceRes,
		"Comma-separated surface residue names (e.g. TI4,PSF,CAL). Required.")
	flag.StringVar(&flagSurfaceChain, "surface-chain", flagSurfaceChain,
		"The chain identifier assigned to the surface section.")
	flag.BoolVar(&flagRenumber, "renumber", flagRenumber,
		"Renumber surface residues contiguously.")
	flag.IntVar(&flagStart, "start", flagStart,
		"First residue number when renumbering.")

	util.FlagUse("verbose")
	util.FlagParse("in-pdb out-pdb",
		"Rewrite a raw protein+surface structure into the layout the\n"+
			"docking protocol expects: protein section first, surface\n"+
			"re-chained (and optionally renumbered) after it.")
	util.AssertNArg(2)
}

func main() {
	if flagSurfaceRes == "" {
		util.Fatalf("-surface-res is required.")
	}
	opts := pdb.FixOptions{
		SurfaceRes:   strings.Split(flagSurfaceRes, ","),
		SurfaceChain: chainIdent(flagSurfaceChain),
		Renumber:     flagRenumber,
		StartResSeq:  flagStart,
	}

	in := util.OpenFile(util.AbsPath(util.Arg(0)))
	defer in.Close()
	out := util.CreateFile(util.AbsPath(util.Arg(1)))

	util.Assert(pdb.FixSurface(out, in, opts),
		"Could not fix '%s'", util.Arg(0))
	util.Assert(out.Close())
	util.Verbosef("Fixed structure written to '%s'.", util.Arg(1))
}

func chainIdent(s string) byte {
	if len(s) != 1 {
		util.Fatalf("Chain identifier must be a single character, got '%s'.", s)
	}
	return s[0]
}
