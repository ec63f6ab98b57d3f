package ledger

import (
	"context"
	"sync"
)

// EventType describes the nature of a session change notification.
type EventType int

const (
	// EventEntriesChanged indicates the manifest changed (an entry was
	// created, replaced, removed, or the seed set was reloaded).
	EventEntriesChanged EventType = iota

	// EventDraftChanged indicates the form state or edit target changed.
	EventDraftChanged

	// EventSelectionChanged indicates the row selection moved or cleared.
	EventSelectionChanged

	// EventQueryChanged indicates the search text changed; observers
	// should recompute their filtered view.
	EventQueryChanged
)

// Event is emitted on every ledger mutation.
type Event struct {
	Type EventType
}

type watcherList struct {
	mu  sync.Mutex
	chs []chan Event
}

// Watch streams change events until ctx is cancelled. Observers should
// drain the returned channel; events are dropped rather than block a slow
// observer. The channel closes once ctx is done.
func (l *Ledger) Watch(ctx context.Context) <-chan Event {
	ch := make(chan Event, 16)

	l.watchers.mu.Lock()
	l.watchers.chs = append(l.watchers.chs, ch)
	l.watchers.mu.Unlock()

	go func() {
		<-ctx.Done()
		l.watchers.mu.Lock()
		for i, c := range l.watchers.chs {
			if c == ch {
				l.watchers.chs = append(l.watchers.chs[:i], l.watchers.chs[i+1:]...)
				break
			}
		}
		l.watchers.mu.Unlock()
		close(ch)
	}()

	return ch
}

func (l *Ledger) notify(t EventType) {
	l.watchers.mu.Lock()
	defer l.watchers.mu.Unlock()
	for _, ch := range l.watchers.chs {
		select {
		case ch <- Event{Type: t}:
		default:
		}
	}
}
