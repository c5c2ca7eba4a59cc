package cmd

import (
	"codemart/internal/core"
	"fmt"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func newPurchaseCmd() *cobra.Command {
	var again bool

	purchaseCmd := &cobra.Command{
		Use:   "purchase <listing-id>",
		Short: "Pay the seller from the connected account and record the purchase.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context(), needs{purchases: true})
			if err != nil {
				return err
			}
			defer a.Close()

			l, err := a.market.Listing(args[0])
			if err != nil {
				return err
			}

			buyer, err := a.account(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if core.HasPurchased(l, buyer) && !again {
				fmt.Fprintln(out, "You already own this snippet. Use --again to pay for it again.")
				return nil
			}

			result, err := a.market.Purchase(cmd.Context(), l, buyer)
			if result.TxHash != "" {
				fmt.Fprintf(out, "Transaction: %s\n", a.market.TransactionURL(result.TxHash))
			}
			if err != nil {
				if result.State == core.FailedAtRecording {
					fmt.Fprintf(out, "Run: codemart reconcile %s %s\n", l.ID, result.TxHash)
				}
				return err
			}
			if result.ListingUpdateErr != nil {
				fmt.Fprintf(out, "Run: codemart reconcile %s %s\n", l.ID, result.TxHash)
			}

			fmt.Fprintln(out)
			fmt.Fprintln(out, result.Listing.Code)
			return nil
		},
	}

	purchaseCmd.Flags().BoolVar(&again, "again", false, "buy even if the account already owns the snippet")
	return purchaseCmd
}

func newReconcileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reconcile <listing-id> <tx-hash>",
		Short: "Record a purchase whose payment went through but was not saved.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context(), needs{purchases: true, node: true})
			if err != nil {
				return err
			}
			defer a.Close()

			buyer, err := a.account(cmd.Context())
			if err != nil {
				return err
			}

			result, err := a.market.Reconcile(cmd.Context(), args[0], buyer, args[1])
			if err != nil {
				return err
			}

			if result.AlreadyRecorded {
				fmt.Fprintln(cmd.OutOrStdout(), "Purchase was already recorded")
			}
			return nil
		},
	}
}

func newHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history <listing-id>",
		Short: "Show the recorded purchases of a listing.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context(), needs{purchases: true, receipts: true})
			if err != nil {
				return err
			}
			defer a.Close()

			entries, err := a.market.PurchaseHistory(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			t := newTable(cmd.OutOrStdout())
			t.AppendHeader(table.Row{"Date", "Buyer", "Price", "Status", "Transaction"})
			for _, e := range entries {
				t.AppendRow(table.Row{
					e.Record.CreatedAt.Format(time.DateTime),
					e.Record.BuyerAddress,
					e.Record.Price + " SEP",
					e.Status(),
					a.market.TransactionURL(e.Record.TransactionHash),
				})
			}
			t.Render()
			return nil
		},
	}
}
