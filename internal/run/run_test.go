package run

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWorkdir_TempCleansUp(t *testing.T) {
	d, cleanup, err := NewWorkdir("", "test")
	if err != nil {
		t.Fatalf("NewWorkdir: %v", err)
	}
	if _, err := os.Stat(d); err != nil {
		t.Fatalf("workdir should exist: %v", err)
	}
	cleanup()
	if _, err := os.Stat(d); !os.IsNotExist(err) {
		t.Fatalf("workdir should be removed, got %v", err)
	}
}

func TestNewWorkdir_BasePersists(t *testing.T) {
	base := t.TempDir()
	d, cleanup, err := NewWorkdir(base, "test")
	if err != nil {
		t.Fatalf("NewWorkdir: %v", err)
	}
	cleanup()
	if _, err := os.Stat(d); err != nil {
		t.Fatalf("workdir inside a base dir must survive cleanup: %v", err)
	}
	if filepath.Dir(d) != base {
		t.Fatalf("workdir %q not inside base %q", d, base)
	}
}

func TestTempNamer_Step(t *testing.T) {
	n := NewTempNamer("/work", "/subs/movie.srt")
	p := n.Step("sanitize")
	if filepath.Dir(p) != "/work" {
		t.Fatalf("path %q not inside workdir", p)
	}
	name := filepath.Base(p)
	if !strings.HasPrefix(name, "movie.") || !strings.HasSuffix(name, ".sanitize.srt") {
		t.Fatalf("unexpected name %q", name)
	}
	if p == n.Step("sanitize") {
		t.Fatalf("consecutive steps should not collide")
	}
}
