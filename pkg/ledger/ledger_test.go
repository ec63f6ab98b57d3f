package ledger

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"tableflip.dev/weighbridge/pkg/manifest"
)

func newTestLedger() *Ledger {
	l := New()
	l.now = func() manifest.Date { return manifest.MustParseDate("2024-07-01") }
	seq := 0
	l.newID = func() string {
		seq++
		return fmt.Sprintf("test-%d", seq)
	}
	return l
}

func (l *Ledger) fill(t *testing.T, plate, gross, empty, date, charge, check string) {
	t.Helper()
	l.SetField(FieldPlate, plate)
	l.SetField(FieldGross, gross)
	l.SetField(FieldEmpty, empty)
	l.SetField(FieldDate, date)
	l.SetField(FieldCharge, charge)
	l.SetField(FieldCheck, check)
}

func TestSubmitCreatesNormalizedEntry(t *testing.T) {
	l := newTestLedger()
	l.fill(t, "30a 777 aa", "32000", "12000", "", "30000", " chk-0200 ")

	e, err := l.Submit()
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if e.PlateNumber != "30A 777 AA" {
		t.Errorf("plate = %q, want upper-cased", e.PlateNumber)
	}
	if e.NetKg != 20000 {
		t.Errorf("net = %d, want 20000", e.NetKg)
	}
	if e.CheckNumber != "CHK-0200" {
		t.Errorf("check = %q, want trimmed and upper-cased", e.CheckNumber)
	}
	if e.Date.String() != "2024-07-01" {
		t.Errorf("blank date should default to today, got %s", e.Date)
	}
	if got := l.Entries()[0]; got != e {
		t.Errorf("new entry should be first in the manifest")
	}
	if l.SelectedID() != e.ID {
		t.Errorf("selection should move to the committed entry")
	}
	if d := l.Draft(); d != (Draft{}) {
		t.Errorf("draft should clear after submit, got %#v", d)
	}
}

func TestSubmitBlankPlateRejected(t *testing.T) {
	l := newTestLedger()
	l.fill(t, "   ", "32000", "12000", "2024-06-20", "1000", "CHK-1")
	before := l.Entries()
	draftBefore := l.Draft()

	if _, err := l.Submit(); err != ErrPlateRequired {
		t.Fatalf("err = %v, want ErrPlateRequired", err)
	}
	after := l.Entries()
	if len(after) != len(before) {
		t.Fatalf("manifest mutated on rejected submit")
	}
	for i := range before {
		if after[i] != before[i] {
			t.Fatalf("manifest mutated on rejected submit")
		}
	}
	if l.Draft() != draftBefore {
		t.Fatalf("draft must stay intact on rejected submit")
	}
}

func TestSubmitCoercesMalformedNumbers(t *testing.T) {
	l := newTestLedger()
	l.fill(t, "90C 123 CC", "heavy", "-4", "not-a-date", "free", "")

	e, err := l.Submit()
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if e.GrossKg != 0 || e.EmptyKg != 0 || e.NetKg != 0 {
		t.Errorf("weights = %d/%d/%d, want all zero", e.GrossKg, e.EmptyKg, e.NetKg)
	}
	if !e.Charge.Equal(decimal.Zero) {
		t.Errorf("charge = %s, want 0", e.Charge)
	}
	if e.Date.String() != "2024-07-01" {
		t.Errorf("malformed date should fall back to today, got %s", e.Date)
	}
}

func TestSecondSubmitCreatesNewEntry(t *testing.T) {
	l := newTestLedger()
	l.fill(t, "30A 777 AA", "32000", "12000", "2024-06-20", "30000", "CHK-1")
	first, err := l.Submit()
	if err != nil {
		t.Fatalf("first submit: %v", err)
	}

	// The successful submit cleared the draft and its edit target, so an
	// identical second submit creates a distinct entry rather than
	// updating the first one.
	l.fill(t, "30A 777 AA", "32000", "12000", "2024-06-20", "30000", "CHK-1")
	second, err := l.Submit()
	if err != nil {
		t.Fatalf("second submit: %v", err)
	}
	if first.ID == second.ID {
		t.Fatalf("second submit reused id %s", first.ID)
	}
	if len(l.Entries()) != len(manifest.Seed())+2 {
		t.Fatalf("expected two new entries, have %d total", len(l.Entries()))
	}
}

func TestEditSelectedRoundTrip(t *testing.T) {
	l := newTestLedger()
	original := l.Find("2").Clone()

	l.Select("2")
	if !l.EditSelected() {
		t.Fatalf("edit selected failed")
	}
	if got := l.Draft().EditTargetID(); got != "2" {
		t.Fatalf("edit target = %q, want 2", got)
	}

	e, err := l.Submit()
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !e.Equal(original) {
		t.Fatalf("round trip mismatch:\n got %#v\nwant %#v", e, original)
	}
	// Position preserved: entry 2 is still second.
	if l.Entries()[1].ID != "2" {
		t.Fatalf("update must not change relative order")
	}
}

func TestUpdateAbsentIDIsNoop(t *testing.T) {
	l := newTestLedger()
	before := len(l.Entries())
	if l.Update("ghost", manifest.Seed()[0]) {
		t.Fatalf("update of absent id reported success")
	}
	if len(l.Entries()) != before {
		t.Fatalf("update of absent id mutated the manifest")
	}
}

func TestDeletePreservesOrderOfRemainder(t *testing.T) {
	l := newTestLedger()
	l.fill(t, "NEW 1", "1", "0", "", "0", "")
	if _, err := l.Submit(); err != nil {
		t.Fatalf("submit: %v", err)
	}

	l.Delete("1")
	ids := []string{}
	for _, e := range l.Entries() {
		ids = append(ids, e.ID)
	}
	if len(ids) != 2 || ids[0] != "test-1" || ids[1] != "2" {
		t.Fatalf("ids after delete = %v", ids)
	}

	l.Delete("ghost") // no-op
	if len(l.Entries()) != 2 {
		t.Fatalf("delete of absent id mutated the manifest")
	}
}

func TestDeleteSelectedClearsEditSession(t *testing.T) {
	l := newTestLedger()
	l.Select("1")
	if !l.EditSelected() {
		t.Fatalf("edit selected failed")
	}

	l.DeleteSelected()

	if l.Find("1") != nil {
		t.Fatalf("entry 1 still present")
	}
	if l.SelectedID() != "" {
		t.Fatalf("selection should clear with the deleted entry")
	}
	d := l.Draft()
	if d != (Draft{}) {
		t.Fatalf("draft should clear when its edit target is deleted, got %#v", d)
	}
	if d.EditTargetID() != "" {
		t.Fatalf("edit target should be dropped")
	}
}

func TestDeleteSelectedWithoutSelectionIsNoop(t *testing.T) {
	l := newTestLedger()
	l.DeleteSelected()
	if len(l.Entries()) != len(manifest.Seed()) {
		t.Fatalf("delete without selection mutated the manifest")
	}

	l.Select("ghost")
	l.DeleteSelected()
	if len(l.Entries()) != len(manifest.Seed()) {
		t.Fatalf("delete with stale selection mutated the manifest")
	}
	if l.EditSelected() {
		t.Fatalf("edit with stale selection should be a no-op")
	}
}

func TestReloadRestoresSeed(t *testing.T) {
	l := newTestLedger()
	l.fill(t, "99Z 000 ZZ", "5000", "1000", "", "100", "CHK-X")
	if _, err := l.Submit(); err != nil {
		t.Fatalf("submit: %v", err)
	}
	l.Delete("2")
	l.Select("1")
	l.SetQuery("chk")
	l.SetField(FieldPlate, "half typed")

	l.Reload()

	seed := manifest.Seed()
	got := l.Entries()
	if len(got) != len(seed) {
		t.Fatalf("entries = %d, want %d", len(got), len(seed))
	}
	for i := range seed {
		if !got[i].Equal(seed[i]) {
			t.Errorf("entry %d = %#v, want seed %#v", i, got[i], seed[i])
		}
	}
	if l.SelectedID() != "" || l.Query() != "" {
		t.Errorf("selection and query should clear on reload")
	}
	if l.Draft() != (Draft{}) {
		t.Errorf("draft should clear on reload")
	}
}

func TestViewFiltersAndRowsHighlight(t *testing.T) {
	l := newTestLedger()
	l.SetQuery("cHk-0092")

	view := l.View()
	if len(view) != 1 || view[0].ID != "1" {
		t.Fatalf("view = %d entries, want only entry 1", len(view))
	}

	rows := l.Rows()
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	check := rows[0].Cells[1] // check number column
	if len(check) != 1 || !check[0].Matched || check[0].Text != "CHK-0092" {
		t.Fatalf("check spans = %#v, want whole value matched", check)
	}
}

func TestLiveNetMatchesSubmittedNet(t *testing.T) {
	l := newTestLedger()
	l.fill(t, "30A 777 AA", "32000", "12000", "", "0", "")
	live := l.LiveNet()
	e, err := l.Submit()
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if live != e.NetKg {
		t.Fatalf("live net %d != committed net %d", live, e.NetKg)
	}
}

func TestSelectionIndependentOfDraft(t *testing.T) {
	l := newTestLedger()
	l.Select("2")
	l.SetField(FieldPlate, "AB 1")
	if l.SelectedID() != "2" {
		t.Fatalf("editing the draft must not move the selection")
	}
	l.ClearSelection()
	if l.SelectedID() != "" {
		t.Fatalf("clear selection failed")
	}
	if l.Draft().Plate != "AB 1" {
		t.Fatalf("clearing the selection must not touch the draft")
	}
}

func TestWatchEmitsEvents(t *testing.T) {
	l := newTestLedger()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch := l.Watch(ctx)

	l.SetQuery("chk")
	l.Select("1")
	l.fill(t, "AA 1", "10", "5", "", "0", "")
	if _, err := l.Submit(); err != nil {
		t.Fatalf("submit: %v", err)
	}

	seen := map[EventType]bool{}
	deadline := time.After(time.Second)
	for len(seen) < 4 {
		select {
		case evt := <-ch:
			seen[evt.Type] = true
		case <-deadline:
			t.Fatalf("timed out, saw %v", seen)
		}
	}
}

func TestWatchChannelClosesOnCancel(t *testing.T) {
	l := newTestLedger()
	ctx, cancel := context.WithCancel(context.Background())
	ch := l.Watch(ctx)
	cancel()

	deadline := time.After(time.Second)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatalf("channel did not close after cancel")
		}
	}
}
