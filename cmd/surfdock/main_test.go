package main

import "testing"

func TestResolveParamsDir(t *testing.T) {
	tests := []struct {
		arg, library string
		wantDir      string
		wantDB       bool
	}{
		{"/data/params", "", "/data/params", false},
		{"/data/params", "/lib/params", "/data/params", false},
		{"DB", "", "", true},
		{"DB", "/lib/params", "/lib/params", false},
	}
	for _, test := range tests {
		dir, useDB := resolveParamsDir(test.arg, test.library)
		if dir != test.wantDir || useDB != test.wantDB {
			t.Errorf("resolveParamsDir(%q, %q): got (%q, %v), want (%q, %v)",
				test.arg, test.library, dir, useDB, test.wantDir, test.wantDB)
		}
	}
}
