package main

import (
	"os"

	"github.com/konhoe/BioM-AI/apps/rosetta"
	"github.com/konhoe/BioM-AI/cmd/util"
	"github.com/konhoe/BioM-AI/workspace"
)

func init() {
	util.FlagUse("rosetta", "experiments", "weights", "verbose")
	util.FlagParse("structure-file chain-id [nstruct]",
		"Clean one chain out of a structure file and relax it with the\n"+
			"toolkit's FastRelax protocol, constrained to the input\n"+
			"coordinates. Results land in a fresh relax_<name>_<timestamp>\n"+
			"workspace under the experiments directory.")
	util.AssertLeastNArg(2)
}

func main() {
	structure := util.AbsPath(util.Arg(0))
	util.AssertIsFile(structure)

	if len(util.Arg(1)) != 1 {
		util.Fatalf("Chain identifier must be a single character, got '%s'.",
			util.Arg(1))
	}
	chain := util.Arg(1)[0]

	nstruct := 1
	if util.NArg() > 2 {
		nstruct = util.ParseInt(util.Arg(2))
		util.Assert(rosetta.ValidNstruct(nstruct))
	}

	tk := util.Toolkit()
	bin, err := tk.Bin("relax")
	util.Assert(err)
	db, err := tk.Database()
	util.Assert(err)

	clean := rosetta.CleanDefault
	clean.Verbose = util.FlagVerbose
	cleaned, err := clean.Run(tk, structure, chain)
	util.Assert(err)
	util.Verbosef("Cleaned structure at '%s'.", cleaned)

	ws, err := workspace.New(util.FlagExperiments, "relax", structure)
	util.Assert(err)
	util.Verbosef("Workspace '%s'.", ws.Dir)

	staged, err := ws.Stage(cleaned)
	util.Assert(err)

	conf := rosetta.RelaxDefault
	conf.Nstruct = nstruct
	conf.Weights = util.FlagWeights
	conf.Seed = rosetta.NewSeed()

	flagsPath := ws.Join("relax.flags")
	util.Assert(conf.Flags(db, staged).WriteFile(flagsPath))

	run := rosetta.RunConfig{
		Dir:     ws.Dir,
		LogPath: ws.LogPath("relax"),
		Echo:    util.FlagVerbose,
	}
	util.Assert(run.Run(bin, flagsPath))

	util.Assert(rosetta.Summarize(os.Stdout, ws.ScoreTable(), run.LogPath, 5))
}
