package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"tableflip.dev/weighbridge/pkg/archive"
	"tableflip.dev/weighbridge/pkg/commands/options"
	"tableflip.dev/weighbridge/pkg/runner/export"
)

func addPrint(topLevel *cobra.Command) {
	qo := &options.QueryOptions{}

	cmd := &cobra.Command{
		Use:     "print [query]",
		Aliases: []string{"export"},
		Short:   "Archive the filtered manifest",
		Example: `
weighbridge print
weighbridge print chk-0092
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				qo.Query = strings.Join(args, " ")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			arc, err := archive.Load(nil)
			if err != nil {
				return err
			}
			s := export.Export{
				Query:   qo.Query,
				Archive: arc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddQueryArgs(cmd, qo)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
