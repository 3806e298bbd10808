package rosetta

// RescoreConfig holds the parameters for re-scoring a batch of already
// generated structures with the 'score_jd2' application.
type RescoreConfig struct {
	// Structures are the workspace-relative paths of the structures to
	// score.
	Structures []string

	// FullAtom scores in full-atom mode. Centroid-only residue types
	// cannot be staged alongside it.
	FullAtom bool

	// ExtraParams lists workspace-relative '.params' files for residue
	// types absent from the toolkit database.
	ExtraParams []string

	Weights string
}

// RescoreDefault mirrors how we re-score docking output directories.
var RescoreDefault = RescoreConfig{
	FullAtom: true,
	Weights:  "ref2015",
}

// Flags renders the score_jd2 flags file. The fresh score table lands at
// output/score.sc in the experiment directory, which is the working
// directory of the run.
func (conf RescoreConfig) Flags(database string) *FlagsFile {
	f := NewFlagsFile("score_jd2 flags generated by BioM-AI")
	f.Add("database", database)
	f.Add("in:file:s", conf.Structures...)
	if conf.FullAtom {
		f.Add("in:file:fullatom")
	}
	if len(conf.ExtraParams) > 0 {
		f.Add("in:file:extra_res_fa", conf.ExtraParams...)
	}
	f.Add("score:weights", conf.Weights)
	f.Add("out:path:all", "output")
	f.Add("out:file:scorefile", "score.sc")
	return f
}
