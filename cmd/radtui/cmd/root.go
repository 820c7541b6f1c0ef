package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"radtui/internal/config"
	"radtui/internal/core"
	"radtui/internal/logger"
	"radtui/internal/service"
	"radtui/internal/tui"
)

var (
	configFile string
	overrides  config.Overrides

	// cfg is resolved by setup before any subcommand runs.
	cfg *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "radtui",
	Short: "Edit the MAC/VLAN records of a FreeRADIUS users file",
	Long: `radtui manages the block of MAC-authentication records between the
"## BEGIN CURSES ##" and "## END CURSES ##" markers of a FreeRADIUS users file.
Without a subcommand it opens an interactive editor; everything outside the
markers is left untouched.`,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runEditor,
}

// setup resolves the configuration and initializes logging.
func setup(cmd *cobra.Command, _ []string) error {
	c, err := config.Load(configFile)
	if err != nil {
		return err
	}
	overrides.Apply(c)
	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := logger.Init(c.Log); err != nil {
		return err
	}
	cfg = c

	log := logger.WithComponent("cli")
	log.Debug().Str("command", cmd.Name()).Str("users_file", cfg.UsersFile).Msg("configuration loaded")
	return nil
}

func runEditor(_ *cobra.Command, _ []string) error {
	file, store, err := openStore()
	if err != nil {
		return err
	}

	// The editor owns the terminal; log lines on stdout/stderr would tear
	// the screen.
	if logger.IsTerminalOutput(cfg.Log.Output) {
		quiet := cfg.Log
		quiet.Output = logger.OutputDiscard
		if err := logger.Init(quiet); err != nil {
			return err
		}
	}

	return tui.Run(tui.Options{
		File:        file,
		Store:       store,
		Restarter:   newRestarter(),
		ServiceName: cfg.Service.Name,
	})
}

// openStore loads the configured users file.
func openStore() (core.UsersFile, *core.Store, error) {
	file := core.NewDiskUsersFile(cfg.UsersFile)
	store, err := core.Open(file, cfg.Markers)
	if err != nil {
		return nil, nil, err
	}
	return file, store, nil
}

func newRestarter() *service.Restarter {
	return service.NewRestarter(cfg.Service.Name, cfg.Service.Command, cfg.Service.Timeout, nil)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	logger.Close()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "path to a YAML configuration file")
	overrides.BindFlags(rootCmd.PersistentFlags())
}
