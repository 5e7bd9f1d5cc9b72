package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/srtlab/srted/internal/apply"
)

const envShiftBy = "SRTED_SHIFT_BY"

var shiftCmd = &cobra.Command{
	Use:   "shift [flags] <input-file>",
	Short: "Shift every record by a duration, preserving durations",
	Long: `Shift moves the start and stop times of every record by the same
duration (e.g. --by 1.5s or --by -500ms). A negative shift is clamped so no
timestamp goes below zero.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := resolveDurationFlagFromEnv(cmd, flagBy, envShiftBy); err != nil {
			return err
		}
		by, _ := cmd.Flags().GetDuration(flagBy)
		if by == 0 {
			return errors.New("--by is required and must be non-zero")
		}
		return runApply(cmd, args[0], func(opts *apply.Options) {
			opts.Shift = by
		})
	},
}

func init() {
	addApplyFlags(shiftCmd)
	shiftCmd.Flags().Duration(flagBy, 0, "Duration to shift by, e.g. 1.5s or -500ms")
}
