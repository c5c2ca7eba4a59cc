package cmd

import (
	"codemart/internal/core"
	"codemart/internal/listing"
	"codemart/internal/wallet"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func newListingsCmd() *cobra.Command {
	listingsCmd := &cobra.Command{
		Use:     "listings",
		Aliases: []string{"ls"},
		Short:   "Browse and manage code listings.",
	}

	listingsCmd.AddCommand(
		newListingsListCmd(),
		newListingsShowCmd(),
		newListingsCreateCmd(),
		newListingsDeleteCmd(),
		newListingsLanguagesCmd(),
	)
	return listingsCmd
}

func newListingsListCmd() *cobra.Command {
	var (
		filter listing.Filter
		mine   bool
	)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List code snippets for sale.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context(), needs{})
			if err != nil {
				return err
			}
			defer a.Close()

			account, _ := a.connector.ConnectedAccount(cmd.Context())
			if mine {
				if account == "" {
					return core.ErrWalletNotConnected
				}
				filter.Seller = account
			}

			listings, err := a.market.Listings(filter)
			if err != nil {
				return err
			}
			if len(listings) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No code snippets found")
				return nil
			}

			renderListings(cmd.OutOrStdout(), listings, account)
			return nil
		},
	}

	listCmd.Flags().StringVarP(&filter.Term, "search", "s", "", "match title, description or tags")
	listCmd.Flags().StringVarP(&filter.Language, "language", "l", "", "only show this language")
	listCmd.Flags().StringVar(&filter.Seller, "seller", "", "only show listings by this address")
	listCmd.Flags().BoolVar(&mine, "mine", false, "only show listings by the connected account")
	return listCmd
}

func newListingsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <listing-id>",
		Short: "Show a listing. The code is shown to its seller and purchasers.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context(), needs{})
			if err != nil {
				return err
			}
			defer a.Close()

			l, err := a.market.Listing(args[0])
			if err != nil {
				return err
			}
			account, _ := a.connector.ConnectedAccount(cmd.Context())

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n\n%s\n\n", l.Title, l.Description)
			fmt.Fprintf(out, "Language: %s\n", l.Language)
			fmt.Fprintf(out, "Price:    %s SEP\n", l.Price)
			fmt.Fprintf(out, "Seller:   %s\n", l.Seller)
			fmt.Fprintf(out, "Listed:   %s\n", formatMillis(l.CreatedAt))
			if len(l.Tags) > 0 {
				fmt.Fprintf(out, "Tags:     %s\n", strings.Join(l.Tags, ", "))
			}
			fmt.Fprintf(out, "Sales:    %d\n\n", len(l.Purchasers))

			if l.SoldBy(account) || core.HasPurchased(l, account) {
				fmt.Fprintln(out, l.Code)
				return nil
			}
			fmt.Fprintf(out, "Purchase this snippet to see the code: codemart purchase %s\n", l.ID)
			return nil
		},
	}
}

func newListingsCreateCmd() *cobra.Command {
	var (
		draft    listing.Draft
		codeFile string
	)

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "List a code snippet for sale under the connected account.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if codeFile != "" {
				code, err := os.ReadFile(codeFile)
				if err != nil {
					return fmt.Errorf("read code file: %w", err)
				}
				draft.Code = string(code)
			}

			a, err := openApp(cmd.Context(), needs{})
			if err != nil {
				return err
			}
			defer a.Close()

			seller, err := a.account(cmd.Context())
			if err != nil {
				return err
			}

			l, err := a.market.CreateListing(draft, seller)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), l.ID)
			return nil
		},
	}

	flags := createCmd.Flags()
	flags.StringVar(&draft.Title, "title", "", "listing title")
	flags.StringVar(&draft.Description, "description", "", "what the snippet does")
	flags.StringVar(&draft.Language, "language", "", fmt.Sprintf("one of: %s", strings.Join(listing.LanguageOptions, ", ")))
	flags.StringVar(&draft.Price, "price", "", "price in SEP, e.g. 0.05")
	flags.StringSliceVar(&draft.Tags, "tag", nil, fmt.Sprintf("tag, up to %d", listing.MaxTags))
	flags.StringVar(&draft.Code, "code", "", "the code itself")
	flags.StringVar(&codeFile, "code-file", "", "read the code from a file")
	createCmd.MarkFlagsMutuallyExclusive("code", "code-file")
	return createCmd
}

func newListingsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <listing-id>",
		Short: "Delete one of your listings.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context(), needs{})
			if err != nil {
				return err
			}
			defer a.Close()

			seller, err := a.account(cmd.Context())
			if err != nil {
				return err
			}

			err = a.market.DeleteListing(args[0], seller)
			if errors.Is(err, core.ErrNotSeller) {
				return fmt.Errorf("%w: connected as %s", err, wallet.FormatAddress(seller))
			}
			return err
		},
	}
}

func newListingsLanguagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List the languages that have code for sale.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context(), needs{})
			if err != nil {
				return err
			}
			defer a.Close()

			all, err := a.market.Listings(listing.Filter{})
			if err != nil {
				return err
			}
			for _, language := range listing.Languages(all) {
				fmt.Fprintln(cmd.OutOrStdout(), language)
			}
			return nil
		},
	}
}
