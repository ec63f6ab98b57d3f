// Package teaui hosts the Bubble Tea program for the weighbridge UI: one
// screen with the entry form, the search box, and the manifest table.
package teaui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/weighbridge/pkg/archive"
	"tableflip.dev/weighbridge/pkg/ledger"
	"tableflip.dev/weighbridge/pkg/manifest"
	"tableflip.dev/weighbridge/pkg/printers"
	"tableflip.dev/weighbridge/pkg/search"
)

// Model states
type mode int

const (
	modeNormal mode = iota
	modeInsert
	modeSearch
)

// form field order, top to bottom
var formFields = []ledger.Field{
	ledger.FieldPlate,
	ledger.FieldGross,
	ledger.FieldEmpty,
	ledger.FieldDate,
	ledger.FieldCharge,
	ledger.FieldCheck,
}

var formLabels = []string{
	"Plate Number",
	"Gross (Kg)",
	"Empty (Kg)",
	"Date",
	"Charge",
	"Check Number",
}

var formPlaceholders = []string{
	"e.g. 30A 777 AA",
	"32000",
	"12000",
	"YYYY-MM-DD",
	"30000",
	"CHK-0000",
}

// Model contains UI state. All authoritative data lives in the ledger;
// the model only holds input widgets and cursors.
type Model struct {
	led *ledger.Ledger
	arc archive.Archive

	station  string
	currency string

	mode   mode
	cursor int

	inputs   []textinput.Model
	focusIdx int
	searchIn textinput.Model

	status string

	termWidth  int
	termHeight int
}

// New creates a new UI model over the session.
func New(led *ledger.Ledger, arc archive.Archive, station, currency string) Model {
	inputs := make([]textinput.Model, len(formFields))
	for i := range inputs {
		ti := textinput.New()
		ti.Placeholder = formPlaceholders[i]
		ti.CharLimit = 64
		ti.Prompt = ""
		inputs[i] = ti
	}

	si := textinput.New()
	si.Placeholder = "Search manifest..."
	si.CharLimit = 64
	si.Prompt = "/ "

	m := Model{
		led:      led,
		arc:      arc,
		station:  station,
		currency: currency,
		mode:     modeNormal,
		inputs:   inputs,
		searchIn: si,
		status:   "NORMAL: j/k move, enter select, a add, e edit, d delete, c clear selection, r reload, p print, / search, q quit",
	}
	m.syncInputsFromDraft()
	m.searchIn.SetValue(led.Query())
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and keybindings
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
	case tea.KeyPressMsg:
		switch m.mode {
		case modeInsert:
			switch msg.String() {
			case "esc":
				m.leaveInsert()
				m.status = "Edit cancelled"
			case "enter":
				m.submit()
			case "tab", "down":
				m.focusField((m.focusIdx + 1) % len(m.inputs), &cmds)
			case "shift+tab", "up":
				m.focusField((m.focusIdx+len(m.inputs)-1)%len(m.inputs), &cmds)
			default:
				var cmd tea.Cmd
				m.inputs[m.focusIdx], cmd = m.inputs[m.focusIdx].Update(msg)
				cmds = append(cmds, cmd)
				m.led.SetField(formFields[m.focusIdx], m.inputs[m.focusIdx].Value())
			}
		case modeSearch:
			switch msg.String() {
			case "esc", "enter":
				m.mode = modeNormal
				m.searchIn.Blur()
				m.status = fmt.Sprintf("%d matching entries", len(m.led.View()))
			default:
				var cmd tea.Cmd
				m.searchIn, cmd = m.searchIn.Update(msg)
				cmds = append(cmds, cmd)
				m.led.SetQuery(m.searchIn.Value())
				m.cursor = 0
			}
		case modeNormal:
			switch msg.String() {
			case "j", "down":
				if m.cursor < len(m.led.View())-1 {
					m.cursor++
				}
			case "k", "up":
				if m.cursor > 0 {
					m.cursor--
				}
			case "g":
				m.cursor = 0
			case "G":
				if n := len(m.led.View()); n > 0 {
					m.cursor = n - 1
				}
			case "enter", " ":
				if e := m.rowAtCursor(); e != nil {
					m.led.Select(e.ID)
					m.status = fmt.Sprintf("Selected %s", e.PlateNumber)
				}
			case "a":
				m.led.ClearDraft()
				m.enterInsert(&cmds)
				m.status = "INSERT: new entry, enter submits, esc cancels"
			case "e":
				if m.led.EditSelected() {
					m.enterInsert(&cmds)
					m.status = "INSERT: editing selected entry"
				} else {
					m.status = "Nothing selected to edit"
				}
			case "d":
				if sel := m.led.Selected(); sel != nil {
					plate := sel.PlateNumber
					m.led.DeleteSelected()
					m.syncInputsFromDraft()
					m.clampCursor()
					m.status = fmt.Sprintf("Deleted %s", plate)
				} else {
					m.status = "Nothing selected to delete"
				}
			case "c":
				m.led.ClearSelection()
				m.status = "Selection cleared"
			case "r":
				m.led.Reload()
				m.syncInputsFromDraft()
				m.searchIn.Reset()
				m.cursor = 0
				m.status = "Reloaded seed manifest"
			case "p":
				m.export()
			case "/":
				m.mode = modeSearch
				if cmd := m.searchIn.Focus(); cmd != nil {
					cmds = append(cmds, cmd)
				}
				cmds = append(cmds, textinput.Blink)
				m.status = "SEARCH: type to filter, esc or enter to leave"
			case "q", "ctrl+c":
				cmds = append(cmds, tea.Quit)
			}
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) rowAtCursor() *manifest.Entry {
	view := m.led.View()
	if m.cursor < 0 || m.cursor >= len(view) {
		return nil
	}
	return view[m.cursor]
}

func (m *Model) clampCursor() {
	if n := len(m.led.View()); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) enterInsert(cmds *[]tea.Cmd) {
	m.mode = modeInsert
	m.syncInputsFromDraft()
	m.focusField(0, cmds)
	*cmds = append(*cmds, textinput.Blink)
}

func (m *Model) leaveInsert() {
	m.mode = modeNormal
	m.inputs[m.focusIdx].Blur()
}

func (m *Model) focusField(idx int, cmds *[]tea.Cmd) {
	m.inputs[m.focusIdx].Blur()
	m.focusIdx = idx
	m.inputs[idx].CursorEnd()
	if cmd := m.inputs[idx].Focus(); cmd != nil {
		*cmds = append(*cmds, cmd)
	}
}

func (m *Model) syncInputsFromDraft() {
	d := m.led.Draft()
	values := []string{d.Plate, d.Gross, d.Empty, d.Date, d.Charge, d.Check}
	for i := range m.inputs {
		m.inputs[i].SetValue(values[i])
	}
}

func (m *Model) submit() {
	wasEditing := m.led.Draft().Editing()
	e, err := m.led.Submit()
	if err != nil {
		// Rejected submits leave the draft and the manifest untouched.
		m.status = "Plate number is required"
		return
	}
	m.leaveInsert()
	m.syncInputsFromDraft()
	m.moveCursorTo(e.ID)
	if wasEditing {
		m.status = fmt.Sprintf("Updated %s", e.PlateNumber)
	} else {
		m.status = fmt.Sprintf("Recorded %s", e.PlateNumber)
	}
}

func (m *Model) moveCursorTo(id string) {
	for i, e := range m.led.View() {
		if e.ID == id {
			m.cursor = i
			return
		}
	}
	m.cursor = 0
}

func (m *Model) export() {
	if m.arc == nil {
		m.status = "No archive configured"
		return
	}
	view := m.led.View()
	if err := m.arc.Save(view...); err != nil {
		m.status = "ERR: " + err.Error()
		return
	}
	m.status = fmt.Sprintf("Archived %d entries", len(view))
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	subtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	alarmStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Width(14)
	headerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	selectedStyle = lipgloss.NewStyle().Reverse(true)
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	panelStyle    = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)
)

var columnWidths = []int{14, 11, 11, 11, 12, 14, 10}

var columnHeaders = []string{"PLATE NUMBER", "GROSS (KG)", "EMPTY (KG)", "NET (KG)", "DATE", "CHARGE", "CHECK #"}

// View renders the whole screen from the current ledger state.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n")
	b.WriteString(m.viewForm())
	b.WriteString("\n")
	b.WriteString(m.viewTable())
	b.WriteString("\n")

	modeStr := map[mode]string{modeNormal: "NORMAL", modeInsert: "INSERT", modeSearch: "SEARCH"}[m.mode]
	b.WriteString(statusStyle.Render(fmt.Sprintf("[%s] %s", modeStr, m.status)))
	return b.String()
}

func (m Model) viewHeader() string {
	title := titleStyle.Render(m.station)
	// The alarm flag is environmental state; nothing in the session
	// switches it off.
	badge := ""
	if m.led.AlarmActive() {
		badge = alarmStyle.Render("⏺ ALARM ACTIVE")
	}
	line := lipgloss.JoinHorizontal(lipgloss.Top, title, "   ", badge)
	return line + "\n" + m.searchIn.View() + "\n"
}

func (m Model) viewForm() string {
	var rows []string
	for i := range m.inputs {
		rows = append(rows, labelStyle.Render(formLabels[i])+" "+m.inputs[i].View())
	}
	rows = append(rows, labelStyle.Render("Net (Kg)")+" "+subtitleStyle.Render(fmt.Sprintf("%d", m.led.LiveNet())))
	action := "submit entry"
	if m.led.Draft().Editing() {
		action = "update entry"
	}
	rows = append(rows, statusStyle.Render("enter: "+action))
	return panelStyle.Render(strings.Join(rows, "\n"))
}

func (m Model) viewTable() string {
	var b strings.Builder
	for i, h := range columnHeaders {
		b.WriteString(headerStyle.Render(pad(h, columnWidths[i])))
		b.WriteString(" ")
	}
	b.WriteString("\n")

	rows := m.led.Rows()
	if len(rows) == 0 {
		b.WriteString(statusStyle.Render("no matching entries"))
		b.WriteString("\n")
		return b.String()
	}

	q := search.Compile(m.led.Query())
	for i, row := range rows {
		selected := row.Entry.ID == m.led.SelectedID()
		cursor := i == m.cursor
		prefix := "  "
		if cursor {
			prefix = "» "
		}
		b.WriteString(prefix)

		// Cells come back in manifest field order; the table shows
		// plate, weights, date, charge, check. The charge column is
		// re-highlighted over its currency form.
		cells := [][]search.Span{
			row.Cells[0],
			row.Cells[3],
			row.Cells[4],
			row.Cells[5],
			row.Cells[2],
			q.Highlight(printers.FormatAmount(row.Entry.Charge, m.currency)),
			row.Cells[1],
		}
		for c, spans := range cells {
			b.WriteString(renderSpans(spans, columnWidths[c], selected))
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}
	return b.String()
}

func renderSpans(spans []search.Span, width int, selected bool) string {
	var plain strings.Builder
	for _, s := range spans {
		plain.WriteString(s.Text)
	}
	padding := width - len([]rune(plain.String()))

	var b strings.Builder
	for _, s := range spans {
		style := lipgloss.NewStyle()
		if selected {
			style = selectedStyle
		}
		if s.Matched {
			style = style.Foreground(lipgloss.Color("196"))
		}
		b.WriteString(style.Render(s.Text))
	}
	for ; padding > 0; padding-- {
		b.WriteString(" ")
	}
	return b.String()
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
