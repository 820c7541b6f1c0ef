package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is overridden at build time with -ldflags "-X radtui/cmd/radtui/cmd.Version=...".
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the radtui version",
	Args:  cobra.NoArgs,
	// No configuration is needed to report the version.
	PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "radtui %s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
