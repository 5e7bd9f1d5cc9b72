// Package run manages per-invocation scratch space: a working directory for
// intermediate files and a namer producing collision-free paths inside it.
package run

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// NewWorkdir creates a unique per-run working directory.
//
// With an empty baseDir a system temp directory is created and the returned
// cleanup removes it. With a baseDir given, a unique subdirectory is created
// inside it and cleanup is a no-op so the run's files can be inspected.
func NewWorkdir(baseDir, prefix string) (runDir string, cleanup func(), err error) {
	if baseDir == "" {
		d, err := os.MkdirTemp("", "srted-"+prefix+"-")
		if err != nil {
			return "", nil, err
		}
		return d, func() { _ = os.RemoveAll(d) }, nil
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return "", nil, err
	}
	d, err := os.MkdirTemp(baseDir, "srted-"+prefix+"-")
	if err != nil {
		return "", nil, err
	}
	return d, func() {}, nil
}

// TempNamer produces paths for intermediate artifacts inside a working
// directory, derived from the original input's base name plus a step label
// and a high-resolution timestamp.
type TempNamer struct {
	workDir string
	base    string
	ext     string
}

// NewTempNamer creates a TempNamer rooted at workDir. originalInputPath only
// contributes a readable base name and extension.
func NewTempNamer(workDir, originalInputPath string) TempNamer {
	baseFile := filepath.Base(originalInputPath)
	ext := filepath.Ext(baseFile)
	base := strings.TrimSuffix(baseFile, ext)
	if ext == "" {
		ext = ".tmp"
	}
	return TempNamer{workDir: workDir, base: base, ext: ext}
}

// Step returns a fresh path inside the working directory for the given step.
func (n TempNamer) Step(step string) string {
	now := time.Now().UTC()
	ts := now.Format("20060102150405") + fmt.Sprintf("%09d", now.Nanosecond())
	return filepath.Join(n.workDir, fmt.Sprintf("%s.%s.%s%s", n.base, ts, step, n.ext))
}
