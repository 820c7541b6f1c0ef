package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// restartCmd restarts the RADIUS service so it rereads the users file.
var restartCmd = &cobra.Command{
	Use:   "restart",
	Short: "Restart the RADIUS service",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := newRestarter().Restart(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s service restarted successfully!\n", cfg.Service.Name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(restartCmd)
}
