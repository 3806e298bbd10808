package rosetta

import "strconv"

// SurfaceDockConfig holds the parameters for the 'surface_docking'
// application, which docks a protein partner onto a modeled material
// surface.
type SurfaceDockConfig struct {
	Nstruct int

	// Partners is the docking partner chain pair, e.g. "A_Z" for
	// protein chain A against surface chain Z.
	Partners string

	// SurfaceVectors is the workspace-relative path of the surface
	// geometry descriptor file.
	SurfaceVectors string

	// PackExpansion enables the extra rotamer sampling switches
	// (ex1, ex2aro) during side-chain packing.
	PackExpansion bool

	// Frag3 and Frag9 are workspace-relative fragment library paths.
	// Either both are set or both are empty; with neither, the protocol
	// runs fragment-free.
	Frag3, Frag9 string

	// ExtraParams lists workspace-relative '.params' files for residue
	// types absent from the toolkit database.
	ExtraParams []string

	Weights string
	Seed    int64
}

// SurfaceDockDefault mirrors how we run surface docking on merged
// protein+slab inputs.
var SurfaceDockDefault = SurfaceDockConfig{
	Nstruct:       1,
	PackExpansion: true,
	Weights:       "ref2015",
}

// WithFrags reports whether a fragment pair is staged.
func (conf SurfaceDockConfig) WithFrags() bool {
	return conf.Frag3 != "" && conf.Frag9 != ""
}

// Flags renders the surface_docking flags file. All file paths are
// relative to the workspace root.
func (conf SurfaceDockConfig) Flags(database, structure string) *FlagsFile {
	f := NewFlagsFile("surface_docking flags generated by BioM-AI")
	f.Add("database", database)
	f.Add("in:file:s", structure)
	f.Add("nstruct", strconv.Itoa(conf.Nstruct))
	f.Add("docking:partners", conf.Partners)
	f.Add("surface_vector_file", conf.SurfaceVectors)
	if conf.WithFrags() {
		f.Add("in:file:frag3", conf.Frag3)
		f.Add("in:file:frag9", conf.Frag9)
	}
	if len(conf.ExtraParams) > 0 {
		f.Add("in:file:extra_res_fa", conf.ExtraParams...)
	}
	if conf.PackExpansion {
		f.Add("packing:ex1")
		f.Add("packing:ex2aro")
	}
	f.Add("score:weights", conf.Weights)
	f.Add("out:path:all", "output")
	f.Add("out:file:scorefile", "score.sc")
	f.Add("run:constant_seed")
	f.Addf("run:jran", "%d", conf.Seed)
	return f
}
