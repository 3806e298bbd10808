package pdb

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Merge writes a single docking input by concatenating the coordinate
// records of a surface slab file and a protein file. Slab records come
// first, then the protein's (SSBOND records from the protein are kept,
// since the toolkit needs them to rebuild disulfides). TER and END
// records from both inputs are dropped and a single END terminates the
// output.
func Merge(w io.Writer, slabPath, proteinPath string) error {
	if err := copyRecords(w, slabPath, false); err != nil {
		return err
	}
	if err := copyRecords(w, proteinPath, true); err != nil {
		return err
	}
	_, err := io.WriteString(w, "END\n")
	return err
}

func copyRecords(w io.Writer, path string, keepSSBond bool) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		keep := IsCoordinate(line) ||
			(keepSSBond && strings.HasPrefix(line, "SSBOND"))
		if !keep {
			continue
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// MergedName derives the conventional output name for a merged structure,
// 'merged_<protein>_<metal>.pdb'. The metal name comes from the slab file
// basename: '<metal>_slab.pdb', the legacy 'fix_<metal>.pdb', or failing
// both, the leading token before the first underscore. The protein name
// is the protein file basename's leading token.
func MergedName(slabPath, proteinPath string) string {
	metal := metalName(filepath.Base(slabPath))
	protein := leadingToken(filepath.Base(proteinPath))
	return fmt.Sprintf("merged_%s_%s.pdb", protein, metal)
}

func metalName(base string) string {
	if strings.HasSuffix(base, "_slab.pdb") {
		return strings.TrimSuffix(base, "_slab.pdb")
	}
	if strings.HasPrefix(base, "fix_") {
		return leadingToken(strings.TrimPrefix(base, "fix_"))
	}
	return leadingToken(base)
}

func leadingToken(base string) string {
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if i := strings.IndexByte(base, '_'); i >= 0 {
		return base[:i]
	}
	return base
}
