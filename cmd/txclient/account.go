package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewAccountCmd creates the account subcommand.
func NewAccountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "account [address]",
		Short: "Show the account number and sequence of an address",
		Long:  "Show the account number and sequence of an address. Defaults to the configured wallet.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}

			client, err := newTxClient(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}

			address := client.Wallet().Address()
			if len(args) == 1 {
				address = args[0]
			}

			account, err := client.AccountInfo(cmd.Context(), address)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if account == nil {
				fmt.Fprintf(out, "%s does not exist on chain %s yet\n", address, client.Transport().ChainID())
				return nil
			}
			fmt.Fprintf(out, "address:        %s\n", account.Address)
			fmt.Fprintf(out, "account number: %d\n", account.AccountNumber)
			fmt.Fprintf(out, "sequence:       %d\n", account.Sequence)
			return nil
		},
	}
}
