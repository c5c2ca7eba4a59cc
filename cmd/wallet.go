package cmd

import (
	"codemart/internal/wallet"
	"fmt"

	"github.com/spf13/cobra"
)

func newConnectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "connect",
		Short: "Connect the wallet and switch it to Sepolia.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context(), needs{})
			if err != nil {
				return err
			}
			defer a.Close()

			conn, err := a.connector.Connect(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Account: %s\n", conn.Account)
			fmt.Fprintf(out, "Network: %s (%s)\n", conn.ChainID, a.networkStatus(conn.OnTargetNetwork))
			if conn.NetworkErr != nil {
				fmt.Fprintf(out, "Network error: %s\n", conn.NetworkErr)
			}
			return nil
		},
	}
}

func newAccountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "account",
		Short: "Show the connected account without prompting the wallet.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context(), needs{})
			if err != nil {
				return err
			}
			defer a.Close()

			account, ok := a.connector.ConnectedAccount(cmd.Context())
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "Not connected")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), account)
			return nil
		},
	}
}

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Print wallet account and network changes until interrupted.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context(), needs{})
			if err != nil {
				return err
			}
			defer a.Close()

			if !a.connector.IsAvailable() {
				return wallet.ErrProviderUnavailable
			}

			ctx := cmd.Context()
			accounts := a.connector.WatchAccounts(ctx)
			networks := a.connector.WatchNetwork(ctx)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Watching wallet, press Ctrl+C to stop")
			for accounts != nil || networks != nil {
				select {
				case change, ok := <-accounts:
					if !ok {
						accounts = nil
						continue
					}
					if change.Connected {
						fmt.Fprintf(out, "account: %s\n", change.Account)
					} else {
						fmt.Fprintln(out, "account: disconnected")
					}
				case change, ok := <-networks:
					if !ok {
						networks = nil
						continue
					}
					fmt.Fprintf(out, "network: %s (%s)\n", change.ChainID, a.networkStatus(change.OnTargetNetwork))
				}
			}
			return nil
		},
	}
}

func (a *app) networkStatus(onTarget bool) string {
	if onTarget {
		return a.connector.Network().ChainName
	}
	return "wrong network"
}
