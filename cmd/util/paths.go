package util

import "path/filepath"

// AbsPath canonicalizes a user-supplied path: relative paths are resolved
// against the working directory and the directory part has symlinks
// resolved, so the same file names the same canonical path no matter
// where a pipeline is launched from. The basename is preserved untouched
// and the target itself need not exist yet, so paths-to-be-created work
// too.
func AbsPath(path string) string {
	abs, err := filepath.Abs(path)
	Assert(err, "Could not resolve path '%s'", path)
	dir := filepath.Dir(abs)
	if resolved, err := filepath.EvalSymlinks(dir); err == nil {
		abs = filepath.Join(resolved, filepath.Base(abs))
	}
	return abs
}
