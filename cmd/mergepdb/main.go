package main

import (
	"github.com/konhoe/BioM-AI/cmd/util"
	"github.com/konhoe/BioM-AI/pdb"
)

func init() {
	util.FlagUse("verbose")
	util.FlagParse("slab-pdb protein-pdb [out-pdb]",
		"Merge a surface slab and a protein into one docking input. The\n"+
			"slab's coordinate records come first, then the protein's (with\n"+
			"its SSBOND records). Without out-pdb, the output name is derived\n"+
			"from the inputs: merged_<protein>_<metal>.pdb.")
	util.AssertLeastNArg(2)
}

func main() {
	slab := util.AbsPath(util.Arg(0))
	util.AssertIsFile(slab)
	protein := util.AbsPath(util.Arg(1))
	util.AssertIsFile(protein)

	out := pdb.MergedName(slab, protein)
	if util.NArg() > 2 {
		out = util.AbsPath(util.Arg(2))
	}

	f := util.CreateFile(out)
	util.Assert(pdb.Merge(f, slab, protein),
		"Could not merge '%s' and '%s'", slab, protein)
	util.Assert(f.Close())
	util.Verbosef("Merged structure written to '%s'.", out)
}
