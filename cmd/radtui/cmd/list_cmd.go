package cmd

import (
	"github.com/spf13/cobra"

	"radtui/internal/parser"
	"radtui/internal/report"
)

var listFormat string

// listCmd prints the managed records without modifying the file.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the managed records",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		format, err := report.ParseFormat(listFormat)
		if err != nil {
			return err
		}
		_, records, err := parser.ParseFile(cfg.UsersFile, cfg.Markers)
		if err != nil {
			return err
		}
		return report.Write(cmd.OutOrStdout(), records, format)
	},
}

func init() {
	listCmd.Flags().StringVar(&listFormat, "format", string(report.FormatText), "output format: text, markdown or html")
	rootCmd.AddCommand(listCmd)
}
