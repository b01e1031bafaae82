package main

import (
	"github.com/spf13/cobra"

	"github.com/tessellated-io/txclient/config"
)

var configFile string

// NewRootCmd creates the txclient root command.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "txclient",
		Short: "Sign, broadcast and confirm Cosmos SDK transactions",
		Long: `txclient signs transactions with a local mnemonic, estimates their gas, broadcasts
them to a node and waits until they are included in a block.

Run 'txclient init <chain>' to write a starting configuration.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&configFile, "config", config.DefaultConfigFile, "path to the configuration file")

	cmd.AddCommand(
		NewInitCmd(),
		NewAccountCmd(),
		NewSendCmd(),
	)

	return cmd
}
