package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"radtui/internal/core"
	"radtui/pkg/record"
)

var deleteMAC string

// deleteCmd removes the first record with the given MAC and saves the file.
var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete the record with the given MAC and save the users file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		mac := record.NormalizeMAC(deleteMAC)
		if !record.IsValidMAC(mac) {
			return fmt.Errorf("%w: %q", record.ErrInvalidMAC, deleteMAC)
		}

		file, store, err := openStore()
		if err != nil {
			return err
		}

		i := store.IndexOfMAC(mac)
		if i < 0 {
			return fmt.Errorf("no record with MAC %s in %s", mac, file.Path())
		}
		r, err := store.Get(i)
		if err != nil {
			return err
		}
		if err := store.Delete(i); err != nil {
			return err
		}
		if err := core.Save(file, store); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", r)
		return nil
	},
}

func init() {
	deleteCmd.Flags().StringVar(&deleteMAC, "mac", "", "MAC address of the record to delete")
	_ = deleteCmd.MarkFlagRequired("mac")
	rootCmd.AddCommand(deleteCmd)
}
