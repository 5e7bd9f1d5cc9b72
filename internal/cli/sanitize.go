package cli

import (
	"github.com/spf13/cobra"

	"github.com/srtlab/srted/internal/apply"
)

var sanitizeCmd = &cobra.Command{
	Use:   "sanitize [flags] <input-file>",
	Short: "Normalize whitespace and separators to the canonical layout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doSort, _ := cmd.Flags().GetBool(flagSort)
		doRenumber, _ := cmd.Flags().GetBool(flagRenumber)
		return runApply(cmd, args[0], func(opts *apply.Options) {
			opts.Sanitize = true
			opts.Sort = doSort
			opts.Renumber = doRenumber
		})
	},
}

func init() {
	addApplyFlags(sanitizeCmd)
	sanitizeCmd.Flags().Bool(flagSort, false, "Also sort records by start time (implies renumbering)")
	sanitizeCmd.Flags().Bool(flagRenumber, false, "Also renumber records consecutively from 1")
}
