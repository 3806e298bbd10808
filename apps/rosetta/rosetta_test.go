package rosetta

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestBinFirstCandidateWins(t *testing.T) {
	root := t.TempDir()
	bin := filepath.Join(root, "main", "source", "bin")
	if err := os.MkdirAll(bin, 0777); err != nil {
		t.Fatal(err)
	}
	// Both a static and a default build are installed; static is
	// preferred.
	for _, name := range []string{
		"relax.static.linuxgccrelease",
		"relax.default.linuxgccrelease",
	} {
		if err := os.WriteFile(filepath.Join(bin, name), nil, 0777); err != nil {
			t.Fatal(err)
		}
	}

	got, err := New(root).Bin("relax")
	if err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(bin, "relax.static.linuxgccrelease")
	if got != want {
		t.Errorf("Bin: got %q, want %q", got, want)
	}
}

func TestBinMissingNamesCandidates(t *testing.T) {
	_, err := New(t.TempDir()).Bin("surface_docking")
	if err == nil {
		t.Fatal("expected an error for a missing binary")
	}
	msg := err.Error()
	for _, needle := range []string{
		"surface_docking.static.linuxgccrelease",
		"surface_docking.default.linuxgccrelease",
	} {
		if !strings.Contains(msg, needle) {
			t.Errorf("error does not name candidate %q:\n%s", needle, msg)
		}
	}
}

func TestBinIgnoresDirectories(t *testing.T) {
	root := t.TempDir()
	// A directory that shadows the binary name must not be selected.
	dir := filepath.Join(root, "source", "bin", "relax.static.linuxgccrelease")
	if err := os.MkdirAll(dir, 0777); err != nil {
		t.Fatal(err)
	}
	if _, err := New(root).Bin("relax"); err == nil {
		t.Fatal("expected an error when only a directory matches")
	}
}

func TestDatabaseProbesBothLayouts(t *testing.T) {
	root := t.TempDir()
	want := filepath.Join(root, "database")
	if err := os.MkdirAll(want, 0777); err != nil {
		t.Fatal(err)
	}
	got, err := New(root).Database()
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("Database: got %q, want %q", got, want)
	}
}

func TestFirstExisting(t *testing.T) {
	dir := t.TempDir()
	second := filepath.Join(dir, "second")
	if err := os.WriteFile(second, nil, 0666); err != nil {
		t.Fatal(err)
	}

	got, err := FirstExisting(filepath.Join(dir, "first"), second)
	if err != nil {
		t.Fatal(err)
	}
	if got != second {
		t.Errorf("FirstExisting: got %q, want %q", got, second)
	}

	if _, err := FirstExisting(filepath.Join(dir, "nope")); err == nil {
		t.Fatal("expected an error when no candidate exists")
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvRoot, "/scratch/rosetta")
	if tk := FromEnv(); tk.Root != "/scratch/rosetta" {
		t.Errorf("FromEnv with env set: got %q", tk.Root)
	}
	t.Setenv(EnvRoot, "")
	if tk := FromEnv(); tk.Root != DefaultRoot {
		t.Errorf("FromEnv fallback: got %q, want %q", tk.Root, DefaultRoot)
	}
}
