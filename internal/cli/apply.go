package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/srtlab/srted/internal/apply"
	"github.com/srtlab/srted/internal/fs"
	"github.com/srtlab/srted/internal/logging"
	"github.com/srtlab/srted/internal/run"
)

// addApplyFlags registers the flags shared by every file-rewriting command.
func addApplyFlags(cmd *cobra.Command) {
	cmd.Flags().StringP(flagOutput, flagOutputShorthand, "", "Output file path (optional; defaults to overwriting input)")
	cmd.Flags().Bool(flagDryRun, false, "Write output to a temporary file and do not overwrite the original")
	cmd.Flags().Bool(flagSkipBackup, false, "Do not create a backup when overwriting the input file")
	cmd.Flags().StringP(flagWorkdir, flagWorkdirShorthand, "", "Working directory base. If set, a unique subdirectory is created per run")
}

// runApply executes the shared read-transform-replace pipeline. set fills in
// the command-specific operations on the prepared options.
func runApply(cmd *cobra.Command, inputPath string, set func(*apply.Options)) error {
	if err := resolveBoolFlagFromEnv(cmd, flagDryRun, envDryRun); err != nil {
		return err
	}
	if err := resolveStringFlagFromEnv(cmd, flagWorkdir, envWorkdir); err != nil {
		return err
	}

	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	outputPath, _ := cmd.Flags().GetString(flagOutput)
	dryRun, _ := cmd.Flags().GetBool(flagDryRun)
	workdir, _ := cmd.Flags().GetString(flagWorkdir)
	skipBackup, _ := cmd.Flags().GetBool(flagSkipBackup)

	if inputPath == "-" {
		return errors.New("stdin is not supported yet; pass a subtitle file path")
	}
	absInput, err := fs.ResolveAbsPath(inputPath)
	if err != nil {
		return err
	}
	inputPath = absInput

	if outputPath != "" {
		absOut, err := fs.ResolveAbsPath(outputPath)
		if err != nil {
			return err
		}
		outputPath = absOut
	}

	if workdir == "" {
		workdir = cfg.Workdir
	}
	if workdir != "" {
		absWorkdir, err := fs.ResolveAbsPath(workdir)
		if err != nil {
			return err
		}
		workdir = absWorkdir
	}

	runWorkdir, cleanup, err := run.NewWorkdir(workdir, cmd.Name())
	if err != nil {
		return err
	}
	log.Debug("using workdir", "workdir", runWorkdir)
	if !dryRun { // Only defer cleanup if not dry-run, so we can inspect files afterwards.
		defer cleanup()
	}

	opts := apply.Options{
		InputPath:    inputPath,
		OutputPath:   outputPath,
		DryRun:       dryRun,
		WorkDir:      runWorkdir,
		BackupExt:    cfg.BackupExt,
		CreateBackup: !dryRun && !skipBackup && !cfg.SkipBackup,
	}
	set(&opts)

	log.Debug("running "+cmd.Name(), "opts", opts)

	result, err := apply.Run(ctx, opts)
	if err != nil {
		return err
	}

	log.Info("subtitles written", "path", result.WrittenPath, "records", result.Records)
	return nil
}
