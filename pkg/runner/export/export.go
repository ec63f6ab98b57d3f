package export

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/weighbridge/pkg/archive"
	"tableflip.dev/weighbridge/pkg/ledger"
)

// Export writes the currently filtered view to the archive. This is the
// print pass-through: the session only exposes its displayed data, the
// sink never feeds anything back.
type Export struct {
	Query   string
	Ledger  *ledger.Ledger
	Archive archive.Archive
}

func (n *Export) Do(ctx context.Context) error {
	if n.Ledger == nil {
		n.Ledger = ledger.New()
	}
	if n.Archive == nil {
		return errors.New("can not export, no archive")
	}
	n.Ledger.SetQuery(n.Query)

	view := n.Ledger.View()
	if err := n.Archive.Save(view...); err != nil {
		return err
	}

	switch len(view) {
	case 1:
		fmt.Println("archived 1 entry")
	default:
		fmt.Printf("archived %d entries\n", len(view))
	}
	return nil
}
