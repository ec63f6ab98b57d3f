// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// EntryOptions captures the weighing fields for commands that record an
// entry. Everything is raw text; the session coerces and validates.
type EntryOptions struct {
	Plate  string
	Gross  string
	Empty  string
	Date   string
	Charge string
	Check  string
}

// AddEntryArgs wires the weighing field flags on the provided command.
func AddEntryArgs(cmd *cobra.Command, o *EntryOptions) {
	cmd.Flags().StringVar(&o.Plate, "plate", "",
		"Vehicle plate number (required).")
	cmd.Flags().StringVar(&o.Gross, "gross", "",
		"Loaded weight in kilograms.")
	cmd.Flags().StringVar(&o.Empty, "empty", "",
		"Empty weight in kilograms.")
	cmd.Flags().StringVar(&o.Date, "date", "",
		"Weighing date (YYYY-MM-DD), defaults to today.")
	cmd.Flags().StringVar(&o.Charge, "charge", "",
		"Charge amount.")
	cmd.Flags().StringVar(&o.Check, "check", "",
		"Reference check number.")
}

// QueryOptions captures the search flag shared by view commands.
type QueryOptions struct {
	Query string
}

// AddQueryArgs wires the search flag on the provided command.
func AddQueryArgs(cmd *cobra.Command, o *QueryOptions) {
	cmd.Flags().StringVarP(&o.Query, "query", "q", "",
		"Filter entries by a case-insensitive substring.")
}
