package cli

import (
	"github.com/spf13/cobra"

	"github.com/srtlab/srted/internal/apply"
)

var renumberCmd = &cobra.Command{
	Use:   "renumber [flags] <input-file>",
	Short: "Renumber records consecutively from 1 in document order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApply(cmd, args[0], func(opts *apply.Options) {
			opts.Renumber = true
		})
	},
}

func init() {
	addApplyFlags(renumberCmd)
}
