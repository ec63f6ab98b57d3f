package get

import (
	"context"

	"tableflip.dev/weighbridge/pkg/ledger"
	"tableflip.dev/weighbridge/pkg/printers"
	"tableflip.dev/weighbridge/pkg/search"
)

// Get prints the manifest, filtered and highlighted by an optional query.
type Get struct {
	Query    string
	Station  string
	Currency string
	Ledger   *ledger.Ledger
}

func (n *Get) Do(ctx context.Context) error {
	if n.Ledger == nil {
		n.Ledger = ledger.New()
	}
	n.Ledger.SetQuery(n.Query)

	view := n.Ledger.View()

	pp := printers.PrettyPrint{Currency: n.Currency}
	pp.NewLine()
	if n.Station != "" {
		pp.Title(n.Station)
	}
	pp.TitleWithCount("Manifest", len(view))
	pp.Manifest(search.Compile(n.Query), view...)
	return nil
}
