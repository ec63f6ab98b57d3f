// Package ledger owns the session state of the weighbridge: the ordered
// manifest, the in-progress draft, the row selection, and the search
// query. It is the single consistency unit behind every UI; presentation
// layers hold nothing authoritative, only what the ledger last returned.
package ledger

import (
	"github.com/google/uuid"

	"tableflip.dev/weighbridge/pkg/manifest"
	"tableflip.dev/weighbridge/pkg/scale"
	"tableflip.dev/weighbridge/pkg/search"
)

// Ledger is the session store. All operations are synchronous and run to
// completion; a Ledger is owned by a single goroutine for the duration of
// a session. Only the watcher registry is safe for concurrent use.
type Ledger struct {
	entries    []*manifest.Entry
	draft      Draft
	selectedID string
	query      string

	now   func() manifest.Date
	newID func() string

	watchers watcherList
}

// New returns a session loaded with the seed manifest.
func New() *Ledger {
	return &Ledger{
		entries: manifest.Seed(),
		now:     manifest.Today,
		newID:   uuid.NewString,
	}
}

// Entries returns the full manifest in most-recent-first order.
func (l *Ledger) Entries() []*manifest.Entry {
	out := make([]*manifest.Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Find returns the entry with the given id, or nil.
func (l *Ledger) Find(id string) *manifest.Entry {
	for _, e := range l.entries {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// Create normalizes and prepends a new entry, minting an id when none is
// supplied. New entries always appear first.
func (l *Ledger) Create(e *manifest.Entry) {
	e.Normalize()
	if e.ID == "" {
		e.ID = l.newID()
	}
	l.entries = append([]*manifest.Entry{e}, l.entries...)
	l.notify(EventEntriesChanged)
}

// Update replaces the entry with the matching id in place, preserving its
// position. Absent ids are a silent no-op; the return reports whether a
// replacement happened.
func (l *Ledger) Update(id string, e *manifest.Entry) bool {
	for i, existing := range l.entries {
		if existing.ID == id {
			e.ID = id
			e.Normalize()
			l.entries[i] = e
			l.notify(EventEntriesChanged)
			return true
		}
	}
	return false
}

// Delete removes the entry with the matching id; absent ids are a no-op.
// Deleting the active edit target clears the edit session, and deleting
// the selected entry clears the selection.
func (l *Ledger) Delete(id string) {
	for i, e := range l.entries {
		if e.ID == id {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			if l.draft.editTargetID == id {
				l.ClearDraft()
			}
			if l.selectedID == id {
				l.Select("")
			}
			l.notify(EventEntriesChanged)
			return
		}
	}
}

// Reload replaces the manifest with the seed set and clears the
// selection, the draft, and the search query.
func (l *Ledger) Reload() {
	l.entries = manifest.Seed()
	l.draft = Draft{}
	l.selectedID = ""
	l.query = ""
	l.notify(EventEntriesChanged)
}

// Select sets the active selection; a blank id clears it. Stale ids are
// legal and simply miss on lookup.
func (l *Ledger) Select(id string) {
	if l.selectedID == id {
		return
	}
	l.selectedID = id
	l.notify(EventSelectionChanged)
}

// ClearSelection drops the active selection.
func (l *Ledger) ClearSelection() {
	l.Select("")
}

// SelectedID returns the selected entry id, blank when nothing is
// selected.
func (l *Ledger) SelectedID() string {
	return l.selectedID
}

// Selected returns the selected entry, nil when the selection is empty or
// stale.
func (l *Ledger) Selected() *manifest.Entry {
	if l.selectedID == "" {
		return nil
	}
	return l.Find(l.selectedID)
}

// EditSelected loads the draft from the selected entry and marks it as
// the edit target. With no or a stale selection it is a no-op.
func (l *Ledger) EditSelected() bool {
	e := l.Selected()
	if e == nil {
		return false
	}
	l.draft.LoadFromEntry(e)
	l.notify(EventDraftChanged)
	return true
}

// DeleteSelected removes the selected entry; a no-op without one.
func (l *Ledger) DeleteSelected() {
	if l.selectedID == "" {
		return
	}
	l.Delete(l.selectedID)
}

// SetQuery updates the search text. The query evolves independently of
// selection and draft.
func (l *Ledger) SetQuery(q string) {
	if l.query == q {
		return
	}
	l.query = q
	l.notify(EventQueryChanged)
}

// Query returns the current search text.
func (l *Ledger) Query() string {
	return l.query
}

// View returns the entries matching the current query, in manifest order.
// A blank query yields the full manifest.
func (l *Ledger) View() []*manifest.Entry {
	return search.Filter(l.entries, l.query)
}

// Row pairs a visible entry with the highlight spans of its textual
// fields, in manifest.Fields order.
type Row struct {
	Entry *manifest.Entry
	Cells [][]search.Span
}

// Rows returns the filtered view with per-field highlight spans, always
// recomputed from the current manifest and query.
func (l *Ledger) Rows() []Row {
	q := search.Compile(l.query)
	view := l.View()
	rows := make([]Row, 0, len(view))
	for _, e := range view {
		fields := e.Fields()
		cells := make([][]search.Span, len(fields))
		for i, f := range fields {
			cells[i] = q.Highlight(f)
		}
		rows = append(rows, Row{Entry: e, Cells: cells})
	}
	return rows
}

// SetField stores raw text for one draft field, unvalidated.
func (l *Ledger) SetField(f Field, raw string) {
	l.draft.SetField(f, raw)
	l.notify(EventDraftChanged)
}

// Draft returns a copy of the in-progress form state.
func (l *Ledger) Draft() Draft {
	return l.draft
}

// ClearDraft resets the draft and drops the edit target, returning the
// form to create mode.
func (l *Ledger) ClearDraft() {
	l.draft = Draft{}
	l.notify(EventDraftChanged)
}

// LiveNet is the net weight recomputed from the raw draft text, for the
// read-only readout while the operator types. It agrees exactly with the
// value committed at submission.
func (l *Ledger) LiveNet() int {
	return scale.Net(scale.ParseKilograms(l.draft.Gross), scale.ParseKilograms(l.draft.Empty))
}

// Submit validates the draft and commits it: an update when an edit
// target is set, otherwise a create. On success the draft clears, the
// edit target drops, and the selection moves to the committed entry. On
// rejection nothing changes.
func (l *Ledger) Submit() (*manifest.Entry, error) {
	e, err := l.draft.entry(l.now)
	if err != nil {
		return nil, err
	}
	if target := l.draft.editTargetID; target != "" {
		e.ID = target
		l.Update(target, e)
	} else {
		l.Create(e)
	}
	l.draft = Draft{}
	l.selectedID = e.ID
	l.notify(EventDraftChanged)
	l.notify(EventSelectionChanged)
	return e, nil
}

// AlarmActive reports the station alarm flag. It is environmental state
// surfaced to presentation; no ledger operation governs it.
func (l *Ledger) AlarmActive() bool {
	return true
}
