package pdb

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"
	"path"
	"strings"
)

// AminoThreeToOne is a map from three letter amino acids to their
// corresponding single letter representation.
var AminoThreeToOne = map[string]byte{
	"ALA": 'A', "ARG": 'R', "ASN": 'N', "ASP": 'D', "CYS": 'C',
	"GLU": 'E', "GLN": 'Q', "GLY": 'G', "HIS": 'H', "ILE": 'I',
	"LEU": 'L', "LYS": 'K', "MET": 'M', "PHE": 'F', "PRO": 'P',
	"SER": 'S', "THR": 'T', "TRP": 'W', "TYR": 'Y', "VAL": 'V',
	"SEC": 'U', "PYL": 'O',
}

// waters lists the residue names used for water in the PDB files we see.
// Water is never a ligand, so these are excluded from heteroatom residue
// scans.
var waters = map[string]bool{
	"HOH": true, "WAT": true, "DOD": true, "SOL": true,
	"H2O": true, "TIP": true, "TP3": true,
}

// Entry represents the subset of a PDB file this project cares about:
// which chains exist, whether they hold protein or heteroatom records,
// and the distinct heteroatom residue names. Coordinates are never
// interpreted; structure files are otherwise opaque inputs for the
// external toolkit.
type Entry struct {
	Path string

	// Chains in the order they first appear in the file.
	Chains []*Chain

	// Distinct non-water heteroatom residue names, in the order they
	// first appear. These drive '.params' file selection.
	HetNames []string

	chains  map[byte]*Chain
	hetSeen map[string]bool
}

// Chain records what kinds of records a chain identifier carried.
type Chain struct {
	Ident byte

	// Protein is true if the chain has at least one ATOM record with a
	// standard amino acid residue name.
	Protein bool

	// Het is true if the chain has at least one non-water HETATM record.
	Het bool
}

// Read scans a PDB file and returns an Entry describing its chains and
// heteroatom residues. Only ATOM and HETATM records are inspected; all
// other records are ignored. If the file name ends with ".gz", gzip
// decompression is used.
func Read(fileName string) (*Entry, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var reader io.Reader = f
	if path.Ext(fileName) == ".gz" {
		if reader, err = gzip.NewReader(f); err != nil {
			return nil, err
		}
	}

	entry := &Entry{
		Path:    fileName,
		chains:  make(map[byte]*Chain),
		hetSeen: make(map[string]bool),
	}

	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		line := scanner.Text()
		if !IsCoordinate(line) {
			continue
		}
		entry.parseCoordinate(line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return entry, nil
}

// IsCoordinate returns true for ATOM and HETATM records.
func IsCoordinate(line string) bool {
	return strings.HasPrefix(line, "ATOM  ") || strings.HasPrefix(line, "HETATM")
}

// parseCoordinate reads the residue name (columns 18-20) and the chain
// identifier (column 22) out of a fixed-width coordinate record.
func (e *Entry) parseCoordinate(line string) {
	if len(line) < 22 {
		return
	}
	residue := ResidueName(line)
	chain := e.getOrMakeChain(line[21])

	if strings.HasPrefix(line, "ATOM  ") {
		if _, ok := AminoThreeToOne[residue]; ok {
			chain.Protein = true
		}
		return
	}

	// HETATM record.
	if waters[residue] {
		return
	}
	chain.Het = true
	if residue != "" && !e.hetSeen[residue] {
		e.hetSeen[residue] = true
		e.HetNames = append(e.HetNames, residue)
	}
}

// ResidueName extracts the residue name columns of a coordinate record.
func ResidueName(line string) string {
	if len(line) < 20 {
		return ""
	}
	return strings.TrimSpace(line[17:20])
}

// ChainIdent extracts the chain identifier column of a coordinate record.
// A space means the record carries no chain identifier.
func ChainIdent(line string) byte {
	if len(line) < 22 {
		return ' '
	}
	return line[21]
}

// getOrMakeChain looks for a chain corresponding to the chain identifier.
// If one exists, it is returned. Otherwise it is created and appended to
// the file-order chain list.
func (e *Entry) getOrMakeChain(ident byte) *Chain {
	if chain, ok := e.chains[ident]; ok {
		return chain
	}
	chain := &Chain{Ident: ident}
	e.chains[ident] = chain
	e.Chains = append(e.Chains, chain)
	return chain
}

// ProteinChain returns the identifier of the first chain holding protein
// ATOM records. If the file has none, 'A' is returned as the conventional
// fallback.
func (e *Entry) ProteinChain() byte {
	for _, chain := range e.Chains {
		if chain.Protein {
			return chain.Ident
		}
	}
	return 'A'
}

// HetChain returns the identifier of the first chain holding non-water
// HETATM records. If the file has none, 'Z' is returned, matching the
// chain identifier our surface-preparation tools assign.
func (e *Entry) HetChain() byte {
	for _, chain := range e.Chains {
		if chain.Het {
			return chain.Ident
		}
	}
	return 'Z'
}

// HetResidues returns the distinct non-water heteroatom residue names in
// the order they first appear in the file.
func (e *Entry) HetResidues() []string {
	return e.HetNames
}
