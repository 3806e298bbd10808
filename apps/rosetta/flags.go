package rosetta

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// FlagsFile builds the '@file' flags files Rosetta applications consume:
// '#'-prefixed comments and '-key value...' directives, one per line, in
// insertion order. Rendering is deterministic; all variation between runs
// comes from the values put in, never from the builder.
type FlagsFile struct {
	lines []string
}

// NewFlagsFile starts a flags file with a leading comment identifying
// what generated it.
func NewFlagsFile(comment string) *FlagsFile {
	f := &FlagsFile{}
	f.Comment(comment)
	return f
}

// Comment appends a '#' comment line.
func (f *FlagsFile) Comment(format string, v ...interface{}) {
	f.lines = append(f.lines, "# "+fmt.Sprintf(format, v...))
}

// Add appends a '-key value...' directive. Values are inserted literally;
// paths must already be in their final on-disk form.
func (f *FlagsFile) Add(key string, values ...string) {
	line := "-" + key
	if len(values) > 0 {
		line += " " + strings.Join(values, " ")
	}
	f.lines = append(f.lines, line)
}

// Addf appends a directive with a single formatted value.
func (f *FlagsFile) Addf(key, format string, v ...interface{}) {
	f.Add(key, fmt.Sprintf(format, v...))
}

func (f *FlagsFile) String() string {
	return strings.Join(f.lines, "\n") + "\n"
}

// WriteFile writes the flags file once. Flags files are immutable after
// this; they are the single record of how a run was invoked.
func (f *FlagsFile) WriteFile(path string) error {
	return os.WriteFile(path, []byte(f.String()), 0666)
}

// NewSeed derives a stochastic seed from the wall clock. Runs started in
// different seconds get different seeds; runs started in the same second
// collide, which is accepted.
func NewSeed() int64 {
	return time.Now().Unix()
}

// ValidNstruct rejects decoy counts the toolkit would choke on. Every
// run produces at least one structure.
func ValidNstruct(n int) error {
	if n < 1 {
		return fmt.Errorf("nstruct must be at least 1, got %d", n)
	}
	return nil
}
