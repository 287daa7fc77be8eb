package board

import (
	"context"
	"sync"

	"stockboard/internal/quote"
)

// State is the phase of the current refresh cycle.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateReady
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// Snapshot is one published board view. Quotes already carries the search
// filter and sort order applied, so consumers never see a half-updated list.
type Snapshot struct {
	State   State
	Quotes  []quote.Quote
	Err     string
	Search  string
	SortKey SortKey
	SortAsc bool
}

// Fetcher produces the full quote list for one refresh cycle.
type Fetcher func(ctx context.Context) ([]quote.Quote, error)

// Store holds the quote list and view settings and notifies subscribers on
// every change. Refreshes are generation-counted: a newer refresh supersedes
// an in-flight one, whose late result is discarded whether it carries data or
// an error.
//
// Deliveries are serialized: pubMu is held from building a snapshot through
// invoking the listeners, so subscribers always observe snapshots in the
// order the state changed. Listeners must not call back into the Store.
type Store struct {
	fetch Fetcher

	// pubMu orders snapshot delivery; acquired before mu, held across the
	// listener calls.
	pubMu sync.Mutex

	mu        sync.Mutex
	state     State
	quotes    []quote.Quote // full unfiltered list
	errMsg    string
	search    string
	sortKey   SortKey
	sortAsc   bool
	gen       uint64
	listeners []func(Snapshot)
}

func NewStore(fetch Fetcher) *Store {
	return &Store{fetch: fetch, state: StateIdle, sortKey: SortSymbol, sortAsc: true}
}

// Subscribe registers fn to receive every published snapshot.
func (s *Store) Subscribe(fn func(Snapshot)) {
	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	s.mu.Unlock()
}

// Snapshot returns the current view.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Refresh runs one fetch cycle: Loading is published immediately, then either
// Ready with the new list or Failed with the error message. It blocks until
// the cycle settles; callers wanting supersede semantics run each refresh on
// its own goroutine.
func (s *Store) Refresh(ctx context.Context) {
	s.pubMu.Lock()
	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.state = StateLoading
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.publish(snap)
	s.pubMu.Unlock()

	qs, err := s.fetch(ctx)

	s.pubMu.Lock()
	defer s.pubMu.Unlock()
	s.mu.Lock()
	if gen != s.gen {
		// a newer refresh started while this one was in flight; drop it
		s.mu.Unlock()
		return
	}
	if err != nil {
		s.state = StateFailed
		s.errMsg = err.Error()
	} else {
		s.state = StateReady
		s.errMsg = ""
		s.quotes = qs
	}
	snap = s.snapshotLocked()
	s.mu.Unlock()
	s.publish(snap)
}

// SetSearch changes the search term. Pure view change, no refetch.
func (s *Store) SetSearch(term string) {
	s.pubMu.Lock()
	defer s.pubMu.Unlock()
	s.mu.Lock()
	s.search = term
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.publish(snap)
}

// SortBy sorts the view on key. Repeating the current key flips the
// direction; a new key starts ascending. Pure view change, no refetch.
func (s *Store) SortBy(key SortKey) {
	s.pubMu.Lock()
	defer s.pubMu.Unlock()
	s.mu.Lock()
	if key == s.sortKey {
		s.sortAsc = !s.sortAsc
	} else {
		s.sortKey = key
		s.sortAsc = true
	}
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.publish(snap)
}

func (s *Store) snapshotLocked() Snapshot {
	view := Filter(s.quotes, s.search)
	Sort(view, s.sortKey, s.sortAsc)
	return Snapshot{
		State:   s.state,
		Quotes:  view,
		Err:     s.errMsg,
		Search:  s.search,
		SortKey: s.sortKey,
		SortAsc: s.sortAsc,
	}
}

// publish delivers snap to every listener. Callers hold pubMu, which keeps
// concurrent publishers from delivering out of order.
func (s *Store) publish(snap Snapshot) {
	s.mu.Lock()
	listeners := make([]func(Snapshot), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()
	for _, fn := range listeners {
		fn(snap)
	}
}
