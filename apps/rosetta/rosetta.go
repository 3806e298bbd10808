package rosetta

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnvRoot names the environment variable pointing at the Rosetta
// installation root. It is read once, at FromEnv.
const EnvRoot = "ROSETTA3"

// DefaultRoot is where development machines keep Rosetta when $ROSETTA3
// is unset.
const DefaultRoot = "/opt/rosetta"

// binSuffixes are the build-variant suffixes of compiled Rosetta
// applications, in preference order.
var binSuffixes = []string{
	".static.linuxgccrelease",
	".default.linuxgccrelease",
	".linuxgccrelease",
	".static.macosclangrelease",
	".macosclangrelease",
	"",
}

// Toolkit is a Rosetta installation root. The zero value is not useful;
// use New or FromEnv.
type Toolkit struct {
	Root string
}

// New returns a Toolkit for an explicit installation root.
func New(root string) Toolkit {
	return Toolkit{Root: root}
}

// FromEnv resolves the installation root from $ROSETTA3, falling back to
// DefaultRoot. This is the only place the environment is consulted.
func FromEnv() Toolkit {
	if root := os.Getenv(EnvRoot); root != "" {
		return Toolkit{Root: root}
	}
	return Toolkit{Root: DefaultRoot}
}

// Database returns the toolkit's database directory, probing the layouts
// of both source checkouts (main/database) and flattened installs
// (database).
func (t Toolkit) Database() (string, error) {
	return FirstExisting(
		filepath.Join(t.Root, "main", "database"),
		filepath.Join(t.Root, "database"),
	)
}

// Bin locates a compiled Rosetta application by name, probing every
// build-variant suffix under both bin directory layouts and returning
// the first candidate that exists as a regular file. The error on
// failure names every candidate tried.
func (t Toolkit) Bin(name string) (string, error) {
	dirs := []string{
		filepath.Join(t.Root, "main", "source", "bin"),
		filepath.Join(t.Root, "source", "bin"),
	}
	var candidates []string
	for _, dir := range dirs {
		for _, suffix := range binSuffixes {
			candidates = append(candidates, filepath.Join(dir, name+suffix))
		}
	}
	for _, c := range candidates {
		if info, err := os.Stat(c); err == nil && info.Mode().IsRegular() {
			return c, nil
		}
	}
	return "", fmt.Errorf("rosetta: no '%s' binary found; tried:\n  %s",
		name, strings.Join(candidates, "\n  "))
}

// CleanTool locates the PDB cleaning script shipped with the toolkit's
// protein tools.
func (t Toolkit) CleanTool() (string, error) {
	return FirstExisting(
		filepath.Join(t.Root, "main", "tools", "protein_tools", "scripts", "clean_pdb.py"),
		filepath.Join(t.Root, "tools", "protein_tools", "scripts", "clean_pdb.py"),
		filepath.Join(t.Root, "tools", "scripts", "clean_pdb.py"),
	)
}

// FirstExisting returns the first of candidates that exists on disk.
// On failure the error lists every candidate tried, so the operator can
// see exactly where the lookup searched.
func FirstExisting(candidates ...string) (string, error) {
	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return c, nil
		}
	}
	return "", fmt.Errorf("none of the candidate paths exist:\n  %s",
		strings.Join(candidates, "\n  "))
}
