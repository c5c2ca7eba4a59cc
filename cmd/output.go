package cmd

import (
	"codemart/internal/listing"
	"codemart/internal/wallet"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

func newTable(out io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	return t
}

func renderListings(out io.Writer, listings []listing.Listing, account string) {
	t := newTable(out)
	t.AppendHeader(table.Row{"ID", "Title", "Language", "Price", "Seller", "Tags", "Sales", "Owned"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Title", WidthMax: 40, WidthMaxEnforcer: text.WrapSoft},
		{Name: "Price", Align: text.AlignRight},
		{Name: "Sales", Align: text.AlignRight},
	})

	for _, l := range listings {
		owned := ""
		if l.SoldBy(account) {
			owned = "seller"
		} else if l.PurchasedBy(account) {
			owned = "yes"
		}
		t.AppendRow(table.Row{
			l.ID,
			l.Title,
			l.Language,
			l.Price + " SEP",
			wallet.FormatAddress(l.Seller),
			strings.Join(l.Tags, ", "),
			len(l.Purchasers),
			owned,
		})
	}
	t.AppendFooter(table.Row{fmt.Sprintf("%d listings", len(listings))})
	t.Render()
}

func formatMillis(ms int64) string {
	return time.UnixMilli(ms).Format(time.DateTime)
}
