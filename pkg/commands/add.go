package commands

import (
	"context"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"tableflip.dev/weighbridge/pkg/archive"
	"tableflip.dev/weighbridge/pkg/commands/options"
	"tableflip.dev/weighbridge/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	eo := &options.EntryOptions{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a weighing",
		Example: `
weighbridge add --plate "30A 777 AA" --gross 32000 --empty 12000 --charge 30000 --check CHK-0092
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := archive.LoadConfig()
			if err != nil {
				return err
			}
			s := add.Add{
				Plate:    eo.Plate,
				Gross:    eo.Gross,
				Empty:    eo.Empty,
				Date:     eo.Date,
				Charge:   eo.Charge,
				Check:    eo.Check,
				Currency: cfg.Currency(),
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddEntryArgs(cmd, eo)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
