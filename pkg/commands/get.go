package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"tableflip.dev/weighbridge/pkg/archive"
	"tableflip.dev/weighbridge/pkg/commands/options"
	"tableflip.dev/weighbridge/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	qo := &options.QueryOptions{}

	cmd := &cobra.Command{
		Use:   "get [query]",
		Short: "Print the manifest, optionally filtered",
		Example: `
weighbridge get
weighbridge get chk-0092
weighbridge get --query "30a 777"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				qo.Query = strings.Join(args, " ")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := archive.LoadConfig()
			if err != nil {
				return err
			}
			s := get.Get{
				Query:    qo.Query,
				Station:  cfg.Station(),
				Currency: cfg.Currency(),
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddQueryArgs(cmd, qo)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
