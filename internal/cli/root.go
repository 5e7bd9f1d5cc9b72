package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/srtlab/srted/internal/config"
	"github.com/srtlab/srted/internal/logging"
)

var verbose bool

// version and commit are set at build time via -ldflags.
// If left empty, they show as "dev".
var version = ""
var commit = ""

// cfg holds the file-based defaults, loaded once in the root pre-run.
var cfg = config.Default()

var rootCmd = &cobra.Command{
	Use:           "srted",
	Short:         "Edit SubRip subtitle documents: sanitize, sort, shift and renumber",
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Allow configuring verbosity via env var when the flag isn't provided.
		if err := resolveBoolFlagFromEnv(cmd, flagVerbose, envVerbose); err != nil {
			return err
		}

		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger := logging.New(os.Stderr, level)
		slog.SetDefault(logger)
		cmd.SetContext(logging.WithLogger(cmd.Context(), logger))

		configPath := config.Path()
		if p, ok := envString(envConfig); ok {
			configPath = p
		}
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// Cobra already formatted errors; keep it simple.
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, flagVerbose, flagVerboseShorthand, false, "Enable verbose (debug) logging")

	v := version
	if v == "" {
		v = "dev"
	}
	if commit != "" {
		rootCmd.Version = v + " (" + commit + ")"
	} else {
		rootCmd.Version = v
	}
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.AddCommand(sanitizeCmd)
	rootCmd.AddCommand(sortCmd)
	rootCmd.AddCommand(shiftCmd)
	rootCmd.AddCommand(renumberCmd)
	rootCmd.AddCommand(showCmd)
}
