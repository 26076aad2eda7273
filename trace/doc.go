// Package trace defines the lifecycle observer used by the unique and
// shared handle packages, plus two ready-made implementations.
//
// 🚀 What is trace?
//
//	Every handle constructor accepts a Tracer via WithTracer(...). The
//	Tracer receives one event per lifecycle transition:
//	  • Alloc    — a fresh owned value was bound (unique handle or control block)
//	  • Retain   — a shared control block gained a live handle
//	  • Release  — a handle let go of its control block
//	  • Free     — the owned value was disposed and its bookkeeping freed
//	  • CastHit  — a downcast (or upcast) produced a new counted view
//	  • CastMiss — a downcast found the wrong concrete type; nothing changed
//
// ✨ Implementations:
//   - Nop()          — default; ignores everything
//   - NewLedger()    — counting sentinel for tests: Allocs, Frees, Live
//   - NewZapTracer() — structured logging via go.uber.org/zap
//
// The package also defines Disposer, the cleanup hook the handle packages
// invoke when an owned value is destroyed. Dispose returns nothing:
// cleanup must not fail, and composed types chain their own cleanup
// before the embedded part's cleanup to preserve destruction order.
//
// All counters are plain integers. The ownership model is single-threaded
// and synchronous; a concurrent variant would need atomic counters, which
// is an extension, not a requirement.
package trace
