// Package apply runs engine operations against a subtitle file on disk:
// read, transform in memory, write to a scratch file, then atomically replace
// the destination (with optional backup) only when content actually changed.
package apply

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/srtlab/srted/internal/editor"
	"github.com/srtlab/srted/internal/fs"
	"github.com/srtlab/srted/internal/run"
)

type Options struct {
	InputPath  string
	OutputPath string
	DryRun     bool
	WorkDir    string

	// Operations, applied in this order.
	Shift    time.Duration
	Sanitize bool
	Sort     bool
	Renumber bool

	CreateBackup bool
	BackupExt    string
}

type Result struct {
	WrittenPath string
	Records     int
}

func Run(ctx context.Context, opts Options) (Result, error) {
	_ = ctx
	if opts.InputPath == "" {
		return Result{}, errors.New("input path is required")
	}
	if opts.WorkDir == "" {
		return Result{}, errors.New("workdir is required (create one with run.NewWorkdir)")
	}
	if opts.CreateBackup && opts.BackupExt == "" {
		return Result{}, errors.New("backup ext is required")
	}

	slog.Info("processing subtitles file", "input_path", opts.InputPath)

	data, err := os.ReadFile(opts.InputPath)
	if err != nil {
		return Result{}, err
	}

	ed := editor.New(string(data))
	if opts.Shift != 0 {
		if err := ed.ShiftBy(opts.Shift); err != nil {
			return Result{}, err
		}
	}
	if opts.Sanitize {
		ed.Sanitize()
	}
	if opts.Sort {
		ed.Sort()
	} else if opts.Renumber {
		ed.Renumber()
	}
	records := len(ed.Records())

	namer := run.NewTempNamer(opts.WorkDir, opts.InputPath)
	tmpOutputPath := namer.Step("apply")
	if err := os.WriteFile(tmpOutputPath, []byte(ed.String()), 0o644); err != nil {
		return Result{}, err
	}

	outputPath := opts.OutputPath
	if opts.DryRun {
		// In dry-run, the temp file is the final artifact.
		return Result{WrittenPath: tmpOutputPath, Records: records}, nil
	}
	if outputPath == "" {
		// Non-dry-run default is in-place overwrite.
		outputPath = opts.InputPath
	}

	// Skip the replacement when the destination already holds this content.
	outputEquals, _ := fs.FilesEqual(outputPath, tmpOutputPath)
	if outputEquals {
		slog.Info("output identical to existing file; not overwriting", "path", outputPath)
		return Result{WrittenPath: outputPath, Records: records}, nil
	}

	if opts.CreateBackup && fs.SameFilePath(outputPath, opts.InputPath) {
		backupFilePath := opts.InputPath + opts.BackupExt
		_ = os.Remove(backupFilePath)
		if err := fs.RenameOrMove(opts.InputPath, backupFilePath); err != nil {
			return Result{}, err
		}
	}
	if err := fs.RenameOrMove(tmpOutputPath, outputPath); err != nil {
		return Result{}, err
	}
	return Result{WrittenPath: outputPath, Records: records}, nil
}
