package fs

import (
	"os"
	"path/filepath"
)

// ResolveAbsPath returns a cleaned absolute path, resolving symlinks when the
// path exists so later comparisons are reliable.
func ResolveAbsPath(p string) (string, error) {
	if p == "" {
		return "", nil
	}
	abs, err := filepath.Abs(filepath.Clean(p))
	if err != nil {
		return "", err
	}
	if _, err := os.Lstat(abs); err == nil {
		if resolved, err := filepath.EvalSymlinks(abs); err == nil {
			return resolved, nil
		}
	}
	return abs, nil
}

// SameFilePath reports whether both paths refer to the same file, using
// os.SameFile when both exist and falling back to cleaned-string comparison.
func SameFilePath(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	ai, errA := os.Stat(a)
	bi, errB := os.Stat(b)
	if errA == nil && errB == nil {
		return os.SameFile(ai, bi)
	}
	return filepath.Clean(a) == filepath.Clean(b)
}
