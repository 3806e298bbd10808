package rosetta

import "strconv"

// RelaxConfig holds the parameters for the 'relax' application.
type RelaxConfig struct {
	Nstruct int

	// FastRelax selects the FastRelax protocol over classic relax.
	FastRelax bool

	// ConstrainToStart restrains backbone atoms to their input
	// coordinates, so relaxing cannot drift the fold.
	ConstrainToStart bool

	// Weights is the scoring weight-set identifier.
	Weights string

	// Seed is the -jran value. Use NewSeed() for a fresh run.
	Seed int64
}

// RelaxDefault mirrors how we always run relax on cleaned inputs.
var RelaxDefault = RelaxConfig{
	Nstruct:          1,
	FastRelax:        true,
	ConstrainToStart: true,
	Weights:          "ref2015",
}

// Flags renders the relax flags file for a structure staged in the run
// workspace. The structure path and all output paths are relative to the
// workspace root, which is the working directory of the run.
func (conf RelaxConfig) Flags(database, structure string) *FlagsFile {
	f := NewFlagsFile("relax flags generated by BioM-AI")
	f.Add("database", database)
	f.Add("in:file:s", structure)
	f.Add("nstruct", strconv.Itoa(conf.Nstruct))
	if conf.FastRelax {
		f.Add("relax:fast")
	}
	if conf.ConstrainToStart {
		f.Add("relax:constrain_relax_to_start_coords")
	}
	f.Add("score:weights", conf.Weights)
	f.Add("out:path:all", "output")
	f.Add("out:file:scorefile", "score.sc")
	f.Add("run:constant_seed")
	f.Addf("run:jran", "%d", conf.Seed)
	return f
}
