package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/srtlab/srted/internal/srt"
)

var showCmd = &cobra.Command{
	Use:   "show <input-file>",
	Short: "Print a summary of the records in a subtitle file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		recs := srt.ScanAll(data)
		out := cmd.OutOrStdout()
		if len(recs) == 0 {
			fmt.Fprintln(out, "no records")
			return nil
		}

		fmt.Fprintf(out, "%d records, %s to %s\n\n",
			len(recs),
			srt.FormatTimestamp(recs[0].Start),
			srt.FormatTimestamp(recs[len(recs)-1].Stop))
		for _, r := range recs {
			text := strings.ReplaceAll(r.Text, "\n", " / ")
			if text == "" {
				text = "(no text)"
			}
			fmt.Fprintf(out, "%4d  %s%s%s  %s\n",
				r.ID,
				srt.FormatTimestamp(r.Start), srt.TimeSeparator, srt.FormatTimestamp(r.Stop),
				text)
		}
		return nil
	},
}
