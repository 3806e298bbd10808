package pdb

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// FixOptions controls how a raw surface+protein PDB is rewritten into
// the layout the docking protocol expects: protein section first, then
// the surface section under a single chain identifier, with TER records
// between sections.
type FixOptions struct {
	// SurfaceRes names the residues that make up the modeled surface
	// (e.g. TI4, PSF, CAL). Required.
	SurfaceRes []string

	// SurfaceChain is the chain identifier assigned to every surface
	// record. Defaults to 'Z'.
	SurfaceChain byte

	// Renumber reassigns surface residue sequence numbers contiguously,
	// starting at StartResSeq (default 1). Each distinct residue (by
	// residue name and original sequence number) gets one number, which
	// is reused if records of that residue reappear later in the file.
	Renumber    bool
	StartResSeq int
}

// FixSurface reads a PDB stream and writes it back with the protein
// section before the surface section, the surface re-chained (and
// optionally renumbered), and TER/END records normalized. Every
// coordinate record that is not a surface residue goes to the protein
// section, whatever its chain; nothing is dropped. Non-coordinate
// records that precede the first coordinate record (REMARK, CRYST1, ...)
// are preserved at the top; all other non-coordinate records are dropped.
// Fixed-width columns of coordinate records are preserved.
func FixSurface(w io.Writer, r io.Reader, opts FixOptions) error {
	if len(opts.SurfaceRes) == 0 {
		return fmt.Errorf("pdb: no surface residue names given")
	}
	if opts.SurfaceChain == 0 {
		opts.SurfaceChain = 'Z'
	}
	if opts.StartResSeq == 0 {
		opts.StartResSeq = 1
	}

	surface := make(map[string]bool, len(opts.SurfaceRes))
	for _, res := range opts.SurfaceRes {
		surface[strings.TrimSpace(res)] = true
	}

	var header, protLines, surfLines []string
	sawCoord := false

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if !IsCoordinate(line) {
			if !sawCoord && !strings.HasPrefix(line, "TER") &&
				!strings.HasPrefix(line, "END") {
				header = append(header, line)
			}
			continue
		}
		sawCoord = true
		if surface[ResidueName(line)] {
			surfLines = append(surfLines, line)
		} else {
			protLines = append(protLines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	for _, line := range header {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	for _, line := range protLines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	if len(protLines) > 0 {
		if _, err := io.WriteString(w, "TER\n"); err != nil {
			return err
		}
	}

	next := opts.StartResSeq
	assigned := make(map[string]int)
	for _, line := range surfLines {
		if len(line) < 80 {
			line += strings.Repeat(" ", 80-len(line))
		}
		if opts.Renumber {
			key := ResidueName(line) + line[22:26]
			resSeq, ok := assigned[key]
			if !ok {
				resSeq = next
				assigned[key] = resSeq
				next++
			}
			line = overwrite(line, opts.SurfaceChain, resSeq)
		} else {
			line = overwrite(line, opts.SurfaceChain, 0)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	if len(surfLines) > 0 {
		if _, err := io.WriteString(w, "TER\n"); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "END\n")
	return err
}

// overwrite sets the chain identifier column and, when resSeq > 0, the
// residue sequence columns of a coordinate record, padding the line to
// the standard 80 columns first so the fixed-width layout survives.
func overwrite(line string, chain byte, resSeq int) string {
	if len(line) < 80 {
		line += strings.Repeat(" ", 80-len(line))
	}
	b := []byte(line)
	b[21] = chain
	if resSeq > 0 {
		copy(b[22:26], fmt.Sprintf("%4d", resSeq))
	}
	return strings.TrimRight(string(b), " ")
}
