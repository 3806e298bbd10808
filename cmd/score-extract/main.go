package main

import (
	"os"
	"path/filepath"

	"github.com/konhoe/BioM-AI/apps/rosetta"
	"github.com/konhoe/BioM-AI/cmd/util"
	"github.com/konhoe/BioM-AI/workspace"
)

func init() {
	util.FlagUse("rosetta", "weights", "verbose")
	util.FlagParse("experiment-dir",
		"Re-score the structures in an existing experiment directory's\n"+
			"output/ with the toolkit's scoring application. A pre-existing\n"+
			"score table is backed up with a timestamp suffix, never\n"+
			"overwritten.")
	util.AssertNArg(1)
}

func main() {
	dir := util.AbsPath(util.Arg(0))
	util.AssertIsDir(dir)
	outDir := filepath.Join(dir, "output")
	util.AssertIsDir(outDir)

	pdbs, err := filepath.Glob(filepath.Join(outDir, "*.pdb"))
	util.Assert(err)
	if len(pdbs) == 0 {
		util.Fatalf("Nothing to score: '%s' contains no .pdb files.", outDir)
	}

	scorePath := filepath.Join(outDir, "score.sc")
	backup, err := workspace.Backup(scorePath)
	util.Assert(err)
	if backup != "" {
		util.Verbosef("Previous score table moved to '%s'.", backup)
	}

	tk := util.Toolkit()
	bin, err := tk.Bin("score_jd2")
	util.Assert(err)
	db, err := tk.Database()
	util.Assert(err)

	conf := rosetta.RescoreDefault
	conf.Weights = util.FlagWeights
	for _, path := range pdbs {
		conf.Structures = append(conf.Structures,
			filepath.Join("output", filepath.Base(path)))
	}

	// Params staged by the original docking run, minus centroid-only
	// definitions, carry over to full-atom re-scoring.
	inDir := filepath.Join(dir, "input")
	if info, err := os.Stat(inDir); err == nil && info.IsDir() {
		params, err := workspace.CollectParams(inDir)
		util.Assert(err)
		for _, path := range params {
			conf.ExtraParams = append(conf.ExtraParams,
				filepath.Join("input", filepath.Base(path)))
		}
	}

	util.Assert(os.MkdirAll(filepath.Join(dir, "logs"), 0777))

	flagsPath := filepath.Join(dir, "rescore.flags")
	util.Assert(conf.Flags(db).WriteFile(flagsPath))

	run := rosetta.RunConfig{
		Dir:     dir,
		LogPath: filepath.Join(dir, "logs", "score_jd2.log"),
		Echo:    util.FlagVerbose,
	}
	util.Assert(run.Run(bin, flagsPath))

	util.Assert(rosetta.Summarize(os.Stdout, scorePath, run.LogPath, 5))
}
