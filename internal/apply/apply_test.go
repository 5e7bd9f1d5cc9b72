package apply

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/srtlab/srted/internal/run"
)

const messy = " 1\n00:00:02,000 --> 00:00:03,000  \nsecond\n\n\n2\n00:00:01,000 --> 00:00:01,500\nfirst\n\n"

func TestRun_DryRun_WritesTempAndKeepsOriginal(t *testing.T) {
	workdir, cleanup, err := run.NewWorkdir("", "test")
	if err != nil {
		t.Fatalf("NewWorkdir: %v", err)
	}
	defer cleanup()

	input := filepath.Join(workdir, "in.srt")
	if err := os.WriteFile(input, []byte(messy), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	res, err := Run(context.Background(), Options{
		InputPath: input,
		DryRun:    true,
		WorkDir:   workdir,
		Sanitize:  true,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.WrittenPath == input {
		t.Fatalf("dry run should not write to input path")
	}
	if res.Records != 2 {
		t.Fatalf("expected 2 records, got %d", res.Records)
	}

	b, err := os.ReadFile(input)
	if err != nil {
		t.Fatalf("ReadFile input: %v", err)
	}
	if string(b) != messy {
		t.Fatalf("original file changed in dry-run")
	}
}

func TestRun_SanitizeAndSortInPlace(t *testing.T) {
	workdir, cleanup, err := run.NewWorkdir("", "test")
	if err != nil {
		t.Fatalf("NewWorkdir: %v", err)
	}
	defer cleanup()

	input := filepath.Join(workdir, "in.srt")
	if err := os.WriteFile(input, []byte(messy), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	res, err := Run(context.Background(), Options{
		InputPath:    input,
		WorkDir:      workdir,
		Sanitize:     true,
		Sort:         true,
		CreateBackup: true,
		BackupExt:    ".bak",
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.WrittenPath != input {
		t.Fatalf("expected in-place write, got %q", res.WrittenPath)
	}

	want := "1\n00:00:01,000 --> 00:00:01,500\nfirst\n\n2\n00:00:02,000 --> 00:00:03,000\nsecond\n"
	b, err := os.ReadFile(input)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(b) != want {
		t.Fatalf("output mismatch\nexpected:\n%s\nactual:\n%s", want, string(b))
	}

	bak, err := os.ReadFile(input + ".bak")
	if err != nil {
		t.Fatalf("expected backup: %v", err)
	}
	if string(bak) != messy {
		t.Fatalf("backup contents mismatch")
	}
}

func TestRun_NoChanges_DoesNotCreateBackup(t *testing.T) {
	workdir, cleanup, err := run.NewWorkdir("", "test")
	if err != nil {
		t.Fatalf("NewWorkdir: %v", err)
	}
	defer cleanup()

	clean := "1\n00:00:01,000 --> 00:00:02,000\nHello\n"
	input := filepath.Join(workdir, "in.srt")
	if err := os.WriteFile(input, []byte(clean), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := Run(context.Background(), Options{
		InputPath:    input,
		WorkDir:      workdir,
		Sanitize:     true,
		CreateBackup: true,
		BackupExt:    ".bak",
	}); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if _, err := os.Stat(input + ".bak"); err == nil {
		t.Fatalf("did not expect a backup when nothing changed")
	}
}

func TestRun_Shift(t *testing.T) {
	workdir, cleanup, err := run.NewWorkdir("", "test")
	if err != nil {
		t.Fatalf("NewWorkdir: %v", err)
	}
	defer cleanup()

	input := filepath.Join(workdir, "in.srt")
	orig := "1\n00:00:01,000 --> 00:00:02,000\nHello\n"
	if err := os.WriteFile(input, []byte(orig), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := Run(context.Background(), Options{
		InputPath: input,
		WorkDir:   workdir,
		Shift:     1500 * time.Millisecond,
	}); err != nil {
		t.Fatalf("Run: %v", err)
	}

	b, _ := os.ReadFile(input)
	want := "1\n00:00:02,500 --> 00:00:03,500\nHello\n"
	if string(b) != want {
		t.Fatalf("output mismatch\nexpected:\n%s\nactual:\n%s", want, string(b))
	}
}

func TestRun_MissingInput(t *testing.T) {
	workdir, cleanup, err := run.NewWorkdir("", "test")
	if err != nil {
		t.Fatalf("NewWorkdir: %v", err)
	}
	defer cleanup()

	if _, err := Run(context.Background(), Options{
		InputPath: filepath.Join(workdir, "missing.srt"),
		WorkDir:   workdir,
		Sanitize:  true,
	}); err == nil {
		t.Fatalf("expected error for missing input")
	}
}
