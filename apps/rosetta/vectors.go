package rosetta

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// GenerateVectors runs the surface docking application in its
// vector-generation mode to produce a surface geometry descriptor for a
// staged structure, then relocates the descriptor to dest. Depending on
// the toolkit build, the descriptor appears as either
// '<basename>.surf' or 'surface_vectors.txt' in the working directory;
// whichever was produced wins.
func GenerateVectors(run RunConfig, binary, database, structure, dest string) error {
	flags := NewFlagsFile("surface vector generation flags generated by BioM-AI")
	flags.Add("database", database)
	flags.Add("in:file:s", structure)
	flags.Add("surface_docking:generate_surface_vectors")
	flagsPath := filepath.Join(run.Dir, "gen_vectors.flags")
	if err := flags.WriteFile(flagsPath); err != nil {
		return err
	}

	if err := run.Run(binary, flagsPath); err != nil {
		return fmt.Errorf("surface vector generation failed: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(structure), filepath.Ext(structure))
	produced, err := FirstExisting(
		filepath.Join(run.Dir, base+".surf"),
		filepath.Join(run.Dir, "surface_vectors.txt"),
	)
	if err != nil {
		return fmt.Errorf("surface vector generation produced no "+
			"descriptor file (see %s): %w", run.LogPath, err)
	}
	if err := os.Rename(produced, dest); err != nil {
		return fmt.Errorf("could not relocate surface vectors: %w", err)
	}
	return nil
}
