// Package workspace creates and stages the per-run experiment
// directories every pipeline works in. A workspace is created once,
// never reused, and never cleaned up by the pipelines; everything a run
// reads or writes lives under it, apart from the shared read-only
// toolkit installation and input libraries.
package workspace

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Stamp is the second-resolution timestamp layout used in workspace
// names and backup suffixes. Two runs with the same input started in the
// same second collide; that risk is accepted.
const Stamp = "20060102_150405"

// Workspace is one run's directory tree:
// <base>/<tag>_<name>_<timestamp>/{input,output,logs}.
type Workspace struct {
	// Dir is the absolute workspace root.
	Dir string
}

// New creates a fresh workspace under base, named from the pipeline tag
// and the input file's basename (extension stripped). It fails if the
// directory already exists or cannot be created.
func New(base, tag, inputPath string) (*Workspace, error) {
	return newAt(base, tag, inputPath, time.Now())
}

func newAt(base, tag, inputPath string, now time.Time) (*Workspace, error) {
	name := strings.TrimSuffix(filepath.Base(inputPath),
		filepath.Ext(inputPath))
	dir, err := filepath.Abs(filepath.Join(base,
		fmt.Sprintf("%s_%s_%s", tag, name, now.Format(Stamp))))
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(dir); err == nil {
		return nil, fmt.Errorf("workspace '%s' already exists; "+
			"a previous run in the same second owns it", dir)
	}
	for _, sub := range []string{"input", "output", "logs"} {
		if err := os.MkdirAll(filepath.Join(dir, sub), 0777); err != nil {
			return nil, fmt.Errorf("could not create workspace '%s': %w", dir, err)
		}
	}
	return &Workspace{Dir: dir}, nil
}

// Join resolves a workspace-relative path to an absolute one.
func (ws *Workspace) Join(elem ...string) string {
	return filepath.Join(append([]string{ws.Dir}, elem...)...)
}

// LogPath returns the absolute path of a named log file under logs/.
func (ws *Workspace) LogPath(name string) string {
	return ws.Join("logs", name+".log")
}

// ScoreTable returns the absolute path where the run's score table
// lands.
func (ws *Workspace) ScoreTable() string {
	return ws.Join("output", "score.sc")
}

// Stage copies a file into the workspace's input directory and returns
// its workspace-relative path, which is the form the generated flags
// files use (runs execute with the workspace root as working directory).
func (ws *Workspace) Stage(src string) (string, error) {
	rel := filepath.Join("input", filepath.Base(src))
	if err := copyFile(src, ws.Join(rel)); err != nil {
		return "", fmt.Errorf("could not stage '%s': %w", src, err)
	}
	return rel, nil
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// Backup renames an existing file out of the way with a timestamped
// '.bak' suffix and returns the backup name. If the file does not exist
// there is nothing to do and Backup returns "".
func Backup(path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		return "", nil
	}
	backup := fmt.Sprintf("%s.%s.bak", path, time.Now().Format(Stamp))
	if err := os.Rename(path, backup); err != nil {
		return "", fmt.Errorf("could not back up '%s': %w", path, err)
	}
	return backup, nil
}
