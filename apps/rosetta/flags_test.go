package rosetta

import (
	"strings"
	"testing"
)

func TestFlagsFileRendering(t *testing.T) {
	f := NewFlagsFile("test flags")
	f.Add("database", "/opt/rosetta/main/database")
	f.Add("in:file:s", "input/merged.pdb")
	f.Add("relax:fast")
	f.Add("in:file:extra_res_fa", "input/TI4.params", "input/PSF.params")

	want := strings.Join([]string{
		"# test flags",
		"-database /opt/rosetta/main/database",
		"-in:file:s input/merged.pdb",
		"-relax:fast",
		"-in:file:extra_res_fa input/TI4.params input/PSF.params",
	}, "\n") + "\n"
	if got := f.String(); got != want {
		t.Errorf("rendered flags:\n%s\nwant:\n%s", got, want)
	}
}

func TestRelaxFlags(t *testing.T) {
	conf := RelaxDefault
	conf.Nstruct = 5
	conf.Seed = 1234567
	out := conf.Flags("/db", "input/albumin_A.pdb").String()

	for _, want := range []string{
		"-in:file:s input/albumin_A.pdb",
		"-nstruct 5",
		"-relax:fast",
		"-relax:constrain_relax_to_start_coords",
		"-score:weights ref2015",
		"-out:path:all output",
		"-run:constant_seed",
		"-run:jran 1234567",
	} {
		if !strings.Contains(out, want+"\n") {
			t.Errorf("relax flags missing %q:\n%s", want, out)
		}
	}
}

func TestSurfaceDockFlags(t *testing.T) {
	conf := SurfaceDockDefault
	conf.Partners = "A_Z"
	conf.SurfaceVectors = "input/surface_vectors.txt"
	conf.ExtraParams = []string{"input/TI4.params"}
	conf.Seed = 42
	out := conf.Flags("/db", "input/merged.pdb").String()

	for _, want := range []string{
		"-docking:partners A_Z",
		"-surface_vector_file input/surface_vectors.txt",
		"-in:file:extra_res_fa input/TI4.params",
		"-packing:ex1",
		"-packing:ex2aro",
	} {
		if !strings.Contains(out, want+"\n") {
			t.Errorf("surface docking flags missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "frag3") {
		t.Errorf("fragment-free run must not reference fragment files:\n%s", out)
	}

	conf.Frag3, conf.Frag9 = "input/aa.frag3", "input/aa.frag9"
	if !conf.WithFrags() {
		t.Fatal("WithFrags should be true with both fragment files set")
	}
	out = conf.Flags("/db", "input/merged.pdb").String()
	if !strings.Contains(out, "-in:file:frag3 input/aa.frag3\n") ||
		!strings.Contains(out, "-in:file:frag9 input/aa.frag9\n") {
		t.Errorf("fragment flags missing:\n%s", out)
	}
}

func TestRescoreFlags(t *testing.T) {
	conf := RescoreDefault
	conf.Structures = []string{"output/s_0001.pdb", "output/s_0002.pdb"}
	out := conf.Flags("/db").String()

	if !strings.Contains(out, "-in:file:s output/s_0001.pdb output/s_0002.pdb\n") {
		t.Errorf("rescore flags missing structure list:\n%s", out)
	}
	if !strings.Contains(out, "-in:file:fullatom\n") {
		t.Errorf("rescore flags missing fullatom switch:\n%s", out)
	}
	if strings.Contains(out, "jran") {
		t.Errorf("re-scoring is deterministic and takes no seed:\n%s", out)
	}
}

func TestValidNstruct(t *testing.T) {
	for _, n := range []int{1, 2, 500} {
		if err := ValidNstruct(n); err != nil {
			t.Errorf("ValidNstruct(%d): unexpected error %v", n, err)
		}
	}
	for _, n := range []int{0, -1, -500} {
		if err := ValidNstruct(n); err == nil {
			t.Errorf("ValidNstruct(%d): expected an error", n)
		}
	}
}
