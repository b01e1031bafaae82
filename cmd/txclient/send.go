package main

import (
	"fmt"

	"github.com/spf13/cobra"

	sdk "github.com/cosmos/cosmos-sdk/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"

	"github.com/tessellated-io/txclient/coding"
	"github.com/tessellated-io/txclient/cosmos/tx"
)

var (
	sendMemo     string
	sendSimulate bool
)

// NewSendCmd creates the send subcommand.
func NewSendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "send <to_address> <amount>",
		Short: "Send tokens from the configured wallet",
		Example: `  txclient send cosmos1... 1000uatom
  txclient send cosmos1... 1000uatom --simulate=false --memo "rent"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}

			amount, err := sdk.ParseCoinsNormalized(args[1])
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[1], err)
			}

			client, err := newTxClient(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}

			simulate := cfg.Simulate
			if cmd.Flags().Changed("simulate") {
				simulate = sendSimulate
			}

			msg := &banktypes.MsgSend{
				FromAddress: client.Wallet().Address(),
				ToAddress:   args[0],
				Amount:      amount,
			}

			hash, response, err := tx.Tx[banktypes.MsgSendResponse](cmd.Context(), client, msg, sendMemo, simulate)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "included: %s\nresponse: %s\n", coding.FormatTxHash(hash), response.String())
			return nil
		},
	}

	cmd.Flags().StringVar(&sendMemo, "memo", "", "transaction memo")
	cmd.Flags().BoolVar(&sendSimulate, "simulate", true, "simulate to estimate gas, overriding the config file")

	return cmd
}
