package util

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAbsPathAbsoluteUnchanged(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "albumin.pdb")
	if err := os.WriteFile(target, nil, 0666); err != nil {
		t.Fatal(err)
	}
	canonicalDir, err := filepath.EvalSymlinks(dir)
	if err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(canonicalDir, "albumin.pdb")
	if got := AbsPath(target); got != want {
		t.Errorf("AbsPath(%q): got %q, want %q", target, got, want)
	}
}

func TestAbsPathRelativeResolvesAgainstCwd(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "albumin.pdb"), nil, 0666); err != nil {
		t.Fatal(err)
	}

	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)

	got := AbsPath("albumin.pdb")
	if !filepath.IsAbs(got) {
		t.Errorf("AbsPath of a relative path should be absolute, got %q", got)
	}
	if filepath.Base(got) != "albumin.pdb" {
		t.Errorf("basename must be preserved, got %q", got)
	}
	// The canonical form must match resolving the directory directly,
	// symlinks and all (t.TempDir is a symlink target on some systems).
	wantDir, err := filepath.EvalSymlinks(dir)
	if err != nil {
		t.Fatal(err)
	}
	if got != filepath.Join(wantDir, "albumin.pdb") {
		t.Errorf("AbsPath: got %q, want %q", got,
			filepath.Join(wantDir, "albumin.pdb"))
	}
}

func TestAbsPathTargetNeedNotExist(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "not-created-yet.pdb")
	got := AbsPath(target)
	if filepath.Base(got) != "not-created-yet.pdb" {
		t.Errorf("AbsPath of a to-be-created path: got %q", got)
	}
}
