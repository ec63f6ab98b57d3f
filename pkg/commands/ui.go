package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tableflip.dev/weighbridge/pkg/archive"
	"tableflip.dev/weighbridge/pkg/ledger"
	teaui "tableflip.dev/weighbridge/pkg/runner/tea"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
weighbridge ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := archive.LoadConfig()
			if err != nil {
				return err
			}
			arc, err := archive.Load(cfg)
			if err != nil {
				// The UI still works without an export sink.
				fmt.Fprintf(os.Stderr, "archive unavailable: %v\n", err)
				arc = nil
			}
			return teaui.Run(ledger.New(), arc, cfg.Station(), cfg.Currency())
		},
	}

	topLevel.AddCommand(cmd)
}
