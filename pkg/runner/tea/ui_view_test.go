package teaui

import (
	"strings"
	"testing"

	"github.com/muesli/reflow/ansi"

	"tableflip.dev/weighbridge/pkg/ledger"
)

func newTestModel() Model {
	return New(ledger.New(), nil, "Desert Weigh Station", "UZS")
}

func TestViewRendersHeaderFormAndTable(t *testing.T) {
	m := newTestModel()

	view := stripANSI(m.View())
	if !strings.Contains(view, "Desert Weigh Station") {
		t.Fatalf("expected station name in header; view=%q", view)
	}
	if !strings.Contains(view, "ALARM ACTIVE") {
		t.Fatalf("expected always-on alarm badge; view=%q", view)
	}
	for _, label := range formLabels {
		if !strings.Contains(view, label) {
			t.Errorf("expected form label %q", label)
		}
	}
	if !strings.Contains(view, "30A 777 AA") || !strings.Contains(view, "80B 905 BB") {
		t.Fatalf("expected seed plates in the table; view=%q", view)
	}
	if !strings.Contains(view, "UZS 30,000") {
		t.Fatalf("expected currency-formatted charge; view=%q", view)
	}
	if !strings.Contains(view, "[NORMAL]") {
		t.Fatalf("expected normal mode status line; view=%q", view)
	}
}

func TestViewShowsLiveNetWhileTyping(t *testing.T) {
	m := newTestModel()
	m.led.SetField(ledger.FieldGross, "32000")
	m.led.SetField(ledger.FieldEmpty, "12000")

	view := stripANSI(m.View())
	if !strings.Contains(view, "20000") {
		t.Fatalf("expected live net readout of 20000; view=%q", view)
	}
}

func TestViewFiltersTableByQuery(t *testing.T) {
	m := newTestModel()
	m.led.SetQuery("chk-0092")

	view := stripANSI(m.View())
	if !strings.Contains(view, "30A 777 AA") {
		t.Fatalf("expected matching entry; view=%q", view)
	}
	if strings.Contains(view, "80B 905 BB") {
		t.Fatalf("expected non-matching entry hidden; view=%q", view)
	}
}

func TestViewEmptyFilterMessage(t *testing.T) {
	m := newTestModel()
	m.led.SetQuery("no such caravan")

	view := stripANSI(m.View())
	if !strings.Contains(view, "no matching entries") {
		t.Fatalf("expected empty table message; view=%q", view)
	}
}

func TestViewSubmitLabelFollowsEditTarget(t *testing.T) {
	m := newTestModel()
	if view := stripANSI(m.View()); !strings.Contains(view, "submit entry") {
		t.Fatalf("expected submit label in create mode; view=%q", view)
	}

	m.led.Select("1")
	if !m.led.EditSelected() {
		t.Fatalf("edit selected failed")
	}
	m.syncInputsFromDraft()
	if view := stripANSI(m.View()); !strings.Contains(view, "update entry") {
		t.Fatalf("expected update label while editing; view=%q", view)
	}
}

func stripANSI(s string) string {
	var b strings.Builder
	ansiSeq := false
	for _, r := range s {
		if r == ansi.Marker {
			ansiSeq = true
			continue
		}
		if ansiSeq {
			if ansi.IsTerminator(r) {
				ansiSeq = false
			}
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
