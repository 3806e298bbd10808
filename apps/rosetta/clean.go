package rosetta

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/cmd"
)

// CleanConfig wraps the toolkit's PDB cleaning script. The script strips
// non-standard records and extracts one chain, writing
// '<basename>_<chain>.pdb' beside the input.
type CleanConfig struct {
	// Exec is the path to clean_pdb.py. If empty, Run resolves it from
	// the toolkit.
	Exec string

	// Python is the interpreter used to run the script.
	Python string

	// When true, the script's stdout and stderr are mapped to the
	// current process's stdout and stderr.
	Verbose bool
}

// CleanDefault provides sane defaults for cleaning.
var CleanDefault = CleanConfig{
	Python:  "python3",
	Verbose: true,
}

// Run cleans one chain out of a structure file and returns the path of
// the cleaned copy. The script does not reliably propagate failure
// through its exit status, so the cleaned file's existence is the
// success signal: if it is absent after the script finishes, Run reports
// failure regardless of the exit code.
func (conf CleanConfig) Run(t Toolkit, structure string, chain byte) (string, error) {
	script := conf.Exec
	if script == "" {
		var err error
		if script, err = t.CleanTool(); err != nil {
			return "", err
		}
	}

	c := cmd.New(conf.Python, script, structure, fmt.Sprintf("%c", chain))
	c.Cmd.Dir = filepath.Dir(structure)
	if conf.Verbose {
		fmt.Fprintf(os.Stderr, "%s\n", c)
		c.Cmd.Stdout = os.Stdout
		c.Cmd.Stderr = os.Stderr
	}
	if err := c.Cmd.Run(); err != nil {
		return "", fmt.Errorf("clean_pdb failed on '%s': %w", structure, err)
	}

	base := strings.TrimSuffix(filepath.Base(structure), filepath.Ext(structure))
	cleaned := filepath.Join(filepath.Dir(structure),
		fmt.Sprintf("%s_%c.pdb", base, chain))
	if _, err := os.Stat(cleaned); err != nil {
		return "", fmt.Errorf(
			"clean_pdb produced no output (expected '%s'); the input may "+
				"lack chain %c", cleaned, chain)
	}
	return cleaned, nil
}
