package workspace

import (
	"os"
	"path/filepath"
	"strings"
)

// SelectParams maps heteroatom residue tokens to '.params' files in a
// library directory. For each token it tries '<token>.params' and then
// the '<token>0.params' naming convention some libraries use. Matched
// files are returned as paths; tokens with no file land in missing and
// are the caller's to warn about — an unmatched token never aborts a
// run.
func SelectParams(dir string, tokens []string) (matched, missing []string) {
	for _, token := range tokens {
		found := false
		for _, name := range []string{token + ".params", token + "0.params"} {
			path := filepath.Join(dir, name)
			if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
				matched = append(matched, path)
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, token)
		}
	}
	return matched, missing
}

// CollectParams returns every '.params' file in a directory except
// centroid-only definitions, which are invalid for full-atom scoring.
// Both centroid naming conventions are excluded: a '_centroid' base-name
// suffix and a '.cen.params' extension.
func CollectParams(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var params []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".params") {
			continue
		}
		if isCentroid(name) {
			continue
		}
		params = append(params, filepath.Join(dir, name))
	}
	return params, nil
}

func isCentroid(name string) bool {
	return strings.HasSuffix(name, ".cen.params") ||
		strings.HasSuffix(strings.TrimSuffix(name, ".params"), "_centroid")
}
