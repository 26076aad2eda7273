package trace

// Disposer is the cleanup hook for owned values. A value implementing
// Disposer has Dispose called exactly once, when its last handle releases
// it. Dispose must not fail; types wrapping other resources call the
// wrapped part's Dispose last, so the outermost cleanup runs first.
type Disposer interface {
	Dispose()
}

// Kind identifies which handle family an allocation belongs to.
type Kind int

const (
	// KindUnique marks values owned by a unique.Handle.
	KindUnique Kind = iota

	// KindShared marks values owned by a shared control block.
	KindShared
)

// String returns "unique" or "shared".
func (k Kind) String() string {
	if k == KindUnique {
		return "unique"
	}

	return "shared"
}

// Tracer observes handle lifecycle events. Implementations must be
// cheap: tracers run inline on every transition.
//
// The id is a monotonically increasing allocation identifier, never
// reused within a process. For Retain and Release, count is the
// use-count after the transition.
type Tracer interface {
	Alloc(kind Kind, id uint64)
	Retain(id uint64, count int64)
	Release(id uint64, count int64)
	Free(id uint64)
	CastHit(id uint64)
	CastMiss(id uint64)
}

// allocID is the process-wide allocation counter. Plain integer: the
// ownership model is single-threaded by contract.
var allocID uint64

// NextID returns the next allocation identifier. IDs start at 1 and are
// never reused within a process.
func NextID() uint64 {
	allocID++

	return allocID
}

// Nop returns a Tracer that ignores every event.
func Nop() Tracer { return nopTracer{} }

type nopTracer struct{}

func (nopTracer) Alloc(Kind, uint64)    {}
func (nopTracer) Retain(uint64, int64)  {}
func (nopTracer) Release(uint64, int64) {}
func (nopTracer) Free(uint64)           {}
func (nopTracer) CastHit(uint64)        {}
func (nopTracer) CastMiss(uint64)       {}
