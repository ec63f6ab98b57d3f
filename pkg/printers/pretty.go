package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/weighbridge/pkg/manifest"
	"tableflip.dev/weighbridge/pkg/search"
)

// PrettyPrint renders manifest tables to the terminal.
type PrettyPrint struct {
	Currency string
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" entry")
	default:
		_, _ = c.Println(" entries")
	}
}

// Manifest prints the entries as a table, marking every occurrence of the
// query in red.
func (pp *PrettyPrint) Manifest(q search.Query, entries ...*manifest.Entry) {
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" no matching entries\n\n")
		return
	}

	table := uitable.New()
	table.MaxColWidth = 40
	table.AddRow("PLATE NUMBER", "GROSS (KG)", "EMPTY (KG)", "NET (KG)", "DATE", "CHARGE", "CHECK #")
	for _, e := range entries {
		table.AddRow(
			pp.mark(q, e.PlateNumber),
			pp.mark(q, fmt.Sprintf("%d", e.GrossKg)),
			pp.mark(q, fmt.Sprintf("%d", e.EmptyKg)),
			pp.mark(q, fmt.Sprintf("%d", e.NetKg)),
			pp.mark(q, e.Date.String()),
			pp.mark(q, FormatAmount(e.Charge, pp.Currency)),
			pp.mark(q, e.CheckNumber),
		)
	}
	_, _ = fmt.Fprintln(color.Output, table)
	_, _ = fmt.Fprintln(color.Output, "")
}

func (pp *PrettyPrint) mark(q search.Query, value string) string {
	r := color.New(color.FgRed)
	b := strings.Builder{}
	for _, s := range q.Highlight(value) {
		if s.Matched {
			b.WriteString(r.Sprint(s.Text))
		} else {
			b.WriteString(s.Text)
		}
	}
	return b.String()
}
