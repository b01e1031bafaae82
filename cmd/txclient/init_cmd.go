package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tessellated-io/txclient/chains"
	"github.com/tessellated-io/txclient/config"
	"github.com/tessellated-io/txclient/log"
)

// NewInitCmd creates the init subcommand.
func NewInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init <chain>",
		Short: "Write a commented configuration file for a known chain",
		Long: fmt.Sprintf(`Write a configuration file seeded with defaults for a known chain.
An existing file is never overwritten.

Known chains: %s`, strings.Join(chains.NewOfflineChainRegistry().ChainNames(), ", ")),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := log.NewLogger("info")

			cfg, err := config.DefaultForChain(args[0])
			if err != nil {
				return err
			}

			wrote, err := cfg.Write(configFile, logger)
			if err != nil {
				return err
			}
			if wrote {
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s. Place your mnemonic in %s before sending transactions.\n", configFile, cfg.MnemonicFile)
			}
			return nil
		},
	}
}
