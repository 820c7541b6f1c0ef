package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"radtui/internal/core"
	"radtui/internal/logger"
	"radtui/pkg/record"
)

var addOpts struct {
	mac  string
	vlan string
	name string
}

// addCmd appends one record and saves the file.
var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a record and save the users file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		r, err := record.New(addOpts.mac, addOpts.vlan, addOpts.name)
		if err != nil {
			return err
		}

		file, store, err := openStore()
		if err != nil {
			return err
		}

		log := logger.WithComponent("cli")
		if i := store.IndexOfMAC(r.MAC); i >= 0 {
			log.Warn().Str("mac", r.MAC).Int("index", i).Msg("MAC already present, adding another record")
		}

		store.Add(r)
		if err := core.Save(file, store); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Added %s\n", r)
		return nil
	},
}

func init() {
	addCmd.Flags().StringVar(&addOpts.mac, "mac", "", "MAC address (xx:xx:xx:xx:xx:xx)")
	addCmd.Flags().StringVar(&addOpts.vlan, "vlan", "", "VLAN id")
	addCmd.Flags().StringVar(&addOpts.name, "name", "", "device name")
	_ = addCmd.MarkFlagRequired("mac")
	_ = addCmd.MarkFlagRequired("vlan")
	rootCmd.AddCommand(addCmd)
}
