package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/konhoe/BioM-AI/apps/rosetta"
	"github.com/konhoe/BioM-AI/cmd/util"
	"github.com/konhoe/BioM-AI/workspace"
)

func init() {
	util.FlagUse("rosetta", "experiments", "params-db", "weights", "verbose")
}

func main() {
	util.FlagParse("merged-structure params-dir|DB [nstruct] [protein-name]",
		"Dock the protein in a merged protein+surface structure onto the\n"+
			"modeled surface. params-dir holds the '.params' files for the\n"+
			"surface residue types; pass DB to use the -params-db library,\n"+
			"or the toolkit database when no library is configured.\n"+
			"protein-name (default albumin) selects the surface vector and\n"+
			"fragment library files.")
	util.AssertLeastNArg(2)

	structure := util.AbsPath(util.Arg(0))
	util.AssertIsFile(structure)

	paramsDir, useDB := resolveParamsDir(util.Arg(1), util.FlagParamsDB)
	if !useDB {
		paramsDir = util.AbsPath(paramsDir)
		util.AssertIsDir(paramsDir)
	}

	nstruct := 1
	if util.NArg() > 2 {
		nstruct = util.ParseInt(util.Arg(2))
		util.Assert(rosetta.ValidNstruct(nstruct))
	}
	protein := "albumin"
	if util.NArg() > 3 {
		protein = util.Arg(3)
	}

	tk := util.Toolkit()
	bin, err := tk.Bin("surface_docking")
	util.Assert(err)
	db, err := tk.Database()
	util.Assert(err)

	entry := util.PDBRead(structure)
	conf := rosetta.SurfaceDockDefault
	conf.Nstruct = nstruct
	conf.Weights = util.FlagWeights
	conf.Seed = rosetta.NewSeed()
	conf.Partners = fmt.Sprintf("%c_%c", entry.ProteinChain(), entry.HetChain())
	util.Verbosef("Docking partners %s.", conf.Partners)

	ws, err := workspace.New(util.FlagExperiments, "surfdock", structure)
	util.Assert(err)
	util.Verbosef("Workspace '%s'.", ws.Dir)

	staged, err := ws.Stage(structure)
	util.Assert(err)

	conf.SurfaceVectors = stageVectors(ws, bin, db, staged, structure, paramsDir, protein, useDB)
	conf.Frag3, conf.Frag9 = stageFrags(ws, structure, paramsDir, protein, useDB)

	if !useDB {
		matched, missing := workspace.SelectParams(paramsDir, entry.HetResidues())
		for _, token := range missing {
			util.Warnf("WARNING: no params file for residue '%s' in '%s' "+
				"(tried %s.params and %s0.params).",
				token, paramsDir, token, token)
		}
		for _, path := range matched {
			rel, err := ws.Stage(path)
			util.Assert(err)
			conf.ExtraParams = append(conf.ExtraParams, rel)
		}
	}

	flagsPath := ws.Join("surface_docking.flags")
	util.Assert(conf.Flags(db, staged).WriteFile(flagsPath))

	run := rosetta.RunConfig{
		Dir:     ws.Dir,
		LogPath: ws.LogPath("surface_docking"),
		Echo:    util.FlagVerbose,
	}
	job, err := run.Start(bin, flagsPath)
	util.Assert(err)
	util.Warnf("surface_docking running (pid %d); output streaming to '%s'.",
		job.PID(), run.LogPath)
	util.Assert(job.Wait())

	util.Assert(rosetta.Summarize(os.Stdout, ws.ScoreTable(), run.LogPath, 5))
}

// resolveParamsDir maps the positional params argument to a params
// library directory. A literal "DB" defers to the configured params
// library when one is set, and to the toolkit database otherwise.
func resolveParamsDir(arg, library string) (dir string, useDB bool) {
	if arg != "DB" {
		return arg, false
	}
	if library != "" {
		return library, false
	}
	return "", true
}

// stageVectors stages the surface geometry descriptor: a user-provided
// file at one of the conventional library locations wins; otherwise the
// docking binary generates one in the workspace. Returns the
// workspace-relative descriptor path.
func stageVectors(ws *workspace.Workspace, bin, db, staged, structure,
	paramsDir, protein string, useDB bool) string {

	srcDir := filepath.Dir(structure)
	candidates := []string{
		filepath.Join(srcDir, protein+".surf"),
		filepath.Join(srcDir, "surface_vectors.txt"),
	}
	if !useDB {
		candidates = append(candidates, filepath.Join(paramsDir, protein+".surf"))
	}

	if found, err := rosetta.FirstExisting(candidates...); err == nil {
		rel, err := ws.Stage(found)
		util.Assert(err)
		util.Verbosef("Using surface vectors from '%s'.", found)
		return rel
	}

	util.Warnf("No surface vector file found for '%s'; generating one.", protein)
	rel := filepath.Join("input", "surface_vectors.txt")
	gen := rosetta.RunConfig{
		Dir:     ws.Dir,
		LogPath: ws.LogPath("gen_vectors"),
		Echo:    util.FlagVerbose,
	}
	util.Assert(rosetta.GenerateVectors(gen, bin, db, staged, ws.Join(rel)))
	return rel
}

// stageFrags stages the protein's fragment library pair when both files
// exist; otherwise the run proceeds fragment-free, which the flags file
// records by omitting the fragment directives.
func stageFrags(ws *workspace.Workspace, structure, paramsDir,
	protein string, useDB bool) (frag3, frag9 string) {

	dirs := []string{filepath.Dir(structure)}
	if !useDB {
		dirs = append(dirs, paramsDir)
	}
	for _, dir := range dirs {
		f3 := filepath.Join(dir, protein+".frag3")
		f9 := filepath.Join(dir, protein+".frag9")
		if _, err := rosetta.FirstExisting(f3); err != nil {
			continue
		}
		if _, err := rosetta.FirstExisting(f9); err != nil {
			continue
		}
		rel3, err := ws.Stage(f3)
		util.Assert(err)
		rel9, err := ws.Stage(f9)
		util.Assert(err)
		util.Verbosef("Staged fragment libraries from '%s'.", dir)
		return rel3, rel9
	}
	util.Warnf("No %s.frag3/%s.frag9 pair found; docking fragment-free.",
		protein, protein)
	return "", ""
}
