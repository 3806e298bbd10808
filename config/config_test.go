package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadAbsentFileIsEmpty(t *testing.T) {
	t.Setenv(EnvPath, "")
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Rosetta != "" || cfg.Experiments != "" {
		t.Errorf("absent config should be empty, got %+v", cfg)
	}
}

func TestLoadExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lab.yaml")
	content := "rosetta: /lab/rosetta\nexperiments: /scratch/experiments\nweights: ref2015\n"
	if err := os.WriteFile(path, []byte(content), 0666); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvPath, path)

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Rosetta != "/lab/rosetta" {
		t.Errorf("rosetta: got %q", cfg.Rosetta)
	}
	if cfg.Experiments != "/scratch/experiments" {
		t.Errorf("experiments: got %q", cfg.Experiments)
	}
}

func TestLoadExplicitMissingFileFails(t *testing.T) {
	t.Setenv(EnvPath, filepath.Join(t.TempDir(), "nope.yaml"))
	if _, err := Load(); err == nil {
		t.Fatal("an explicitly named missing config file should be an error")
	}
}
