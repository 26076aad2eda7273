package trace

// Ledger is a counting Tracer for tests. It records how many values were
// allocated and freed and which allocation ids are still live, so a test
// can assert that every create was paired with exactly one release path.
//
// Typical use:
//
//	led := trace.NewLedger()
//	h := shared.New(&thing{}, shared.WithTracer(led))
//	... exercise handles ...
//	require.Zero(t, led.Live())
type Ledger struct {
	allocs   int64
	frees    int64
	hits     int64
	misses   int64
	live     map[uint64]Kind
	lastSeen map[uint64]int64 // last reported use-count per id
}

// NewLedger returns an empty Ledger.
func NewLedger() *Ledger {
	return &Ledger{
		live:     make(map[uint64]Kind),
		lastSeen: make(map[uint64]int64),
	}
}

// Alloc records a fresh allocation as live.
func (l *Ledger) Alloc(kind Kind, id uint64) {
	l.allocs++
	l.live[id] = kind
}

// Retain records the post-transition use-count for id.
func (l *Ledger) Retain(id uint64, count int64) { l.lastSeen[id] = count }

// Release records the post-transition use-count for id.
func (l *Ledger) Release(id uint64, count int64) { l.lastSeen[id] = count }

// Free marks id as no longer live.
func (l *Ledger) Free(id uint64) {
	l.frees++
	delete(l.live, id)
}

// CastHit counts successful cast views.
func (l *Ledger) CastHit(uint64) { l.hits++ }

// CastMiss counts rejected downcasts.
func (l *Ledger) CastMiss(uint64) { l.misses++ }

// Allocs reports how many values were ever allocated.
func (l *Ledger) Allocs() int64 { return l.allocs }

// Frees reports how many values were disposed.
func (l *Ledger) Frees() int64 { return l.frees }

// Live reports how many allocations have not been freed yet.
// Zero after a run means no leak and no double-free.
func (l *Ledger) Live() int { return len(l.live) }

// CastHits reports how many casts produced a counted view.
func (l *Ledger) CastHits() int64 { return l.hits }

// CastMisses reports how many downcasts were rejected.
func (l *Ledger) CastMisses() int64 { return l.misses }

// Count returns the last use-count reported for id, or 0 if id never
// saw a retain or release.
func (l *Ledger) Count(id uint64) int64 { return l.lastSeen[id] }
