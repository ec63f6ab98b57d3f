package add

import (
	"context"

	"tableflip.dev/weighbridge/pkg/ledger"
	"tableflip.dev/weighbridge/pkg/printers"
	"tableflip.dev/weighbridge/pkg/search"
)

// Add records one weighing from the command line.
type Add struct {
	Plate  string
	Gross  string
	Empty  string
	Date   string
	Charge string
	Check  string

	Currency string
	Ledger   *ledger.Ledger
}

func (n *Add) Do(ctx context.Context) error {
	if n.Ledger == nil {
		n.Ledger = ledger.New()
	}

	n.Ledger.SetField(ledger.FieldPlate, n.Plate)
	n.Ledger.SetField(ledger.FieldGross, n.Gross)
	n.Ledger.SetField(ledger.FieldEmpty, n.Empty)
	n.Ledger.SetField(ledger.FieldDate, n.Date)
	n.Ledger.SetField(ledger.FieldCharge, n.Charge)
	n.Ledger.SetField(ledger.FieldCheck, n.Check)

	if _, err := n.Ledger.Submit(); err != nil {
		return err
	}

	pp := printers.PrettyPrint{Currency: n.Currency}
	pp.NewLine()
	pp.TitleWithCount("Manifest", len(n.Ledger.Entries()))
	pp.Manifest(search.Query{}, n.Ledger.Entries()...)
	return nil
}
