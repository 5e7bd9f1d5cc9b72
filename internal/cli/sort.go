package cli

import (
	"github.com/spf13/cobra"

	"github.com/srtlab/srted/internal/apply"
)

var sortCmd = &cobra.Command{
	Use:   "sort [flags] <input-file>",
	Short: "Sort records by start time and renumber them",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApply(cmd, args[0], func(opts *apply.Options) {
			opts.Sort = true
		})
	},
}

func init() {
	addApplyFlags(sortCmd)
}
