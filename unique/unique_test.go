package unique_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ownptr/ownptr/trace"
	"github.com/ownptr/ownptr/unique"
)

// sentinel counts constructions and disposals so tests can verify the
// create/release pairing.
type sentinel struct {
	alive *int
}

func newSentinel(alive *int) sentinel {
	*alive++

	return sentinel{alive: alive}
}

func (s sentinel) Dispose() { *s.alive-- }

// TestNewAndGet covers the basic bind-then-dereference path.
func TestNewAndGet(t *testing.T) {
	h := unique.New(42)
	v, err := h.Get()
	require.NoError(t, err)
	require.Equal(t, 42, *v)
	require.False(t, h.Empty())

	*v = 7
	require.Equal(t, 7, *h.MustGet())
}

// TestGet_EmptyHandle verifies the null-dereference condition.
func TestGet_EmptyHandle(t *testing.T) {
	h := unique.New("x")
	h.Release()

	if _, err := h.Get(); !errors.Is(err, unique.ErrNilDeref) {
		t.Errorf("empty handle: want ErrNilDeref, got %v", err)
	}
	require.Panics(t, func() { h.MustGet() })

	var nilHandle *unique.Handle[string]
	require.True(t, nilHandle.Empty())
	_, err := nilHandle.Get()
	require.ErrorIs(t, err, unique.ErrNilDeref)
}

// TestRelease_DisposesOnce checks disposal fires exactly once even when
// Release is called repeatedly.
func TestRelease_DisposesOnce(t *testing.T) {
	alive := 0
	h := unique.New(newSentinel(&alive))
	require.Equal(t, 1, alive)

	h.Release()
	require.Equal(t, 0, alive)

	h.Release() // no-op on an empty handle
	require.Equal(t, 0, alive)
}

// TestReset replaces the owned value, disposing the previous one first.
func TestReset(t *testing.T) {
	alive := 0
	h := unique.New(newSentinel(&alive))

	next := newSentinel(&alive)
	require.Equal(t, 2, alive)

	h.Reset(&next)
	require.Equal(t, 1, alive) // old value disposed, new one adopted

	h.Reset(nil)
	require.Equal(t, 0, alive)
	require.True(t, h.Empty())
}

// TestMoveTo verifies ownership transfer: source empties, destination's
// previous value is disposed, and the value survives the move intact.
func TestMoveTo(t *testing.T) {
	alive := 0
	src := unique.New(newSentinel(&alive))
	dst := unique.New(newSentinel(&alive))
	require.Equal(t, 2, alive)

	want := src.MustGet()
	src.MoveTo(dst)

	require.Equal(t, 1, alive) // dst's old value disposed, moved value alive
	require.True(t, src.Empty())
	require.Same(t, want, dst.MustGet())

	if _, err := src.Get(); !errors.Is(err, unique.ErrNilDeref) {
		t.Errorf("moved-from handle: want ErrNilDeref, got %v", err)
	}

	dst.Release()
	require.Equal(t, 0, alive)
}

// TestMoveTo_SelfAndNil are both defined as no-ops.
func TestMoveTo_SelfAndNil(t *testing.T) {
	alive := 0
	h := unique.New(newSentinel(&alive))

	h.MoveTo(h)
	require.False(t, h.Empty())
	require.Equal(t, 1, alive)

	h.MoveTo(nil)
	require.False(t, h.Empty())

	h.Release()
	require.Equal(t, 0, alive)
}

// TestWithTracer_LedgerPairing asserts every allocation is freed when
// handles are driven through move, reset, and release.
func TestWithTracer_LedgerPairing(t *testing.T) {
	led := trace.NewLedger()

	a := unique.New(1, unique.WithTracer(led))
	b := unique.New(2, unique.WithTracer(led))
	require.Equal(t, int64(2), led.Allocs())

	a.MoveTo(b) // frees b's original value
	require.Equal(t, int64(1), led.Frees())

	b.Release()
	require.Zero(t, led.Live())
	require.Equal(t, led.Allocs(), led.Frees())
}

// TestDispose_PointerReceiver ensures pointer-receiver Dispose hooks on
// the owned value are found.
func TestDispose_PointerReceiver(t *testing.T) {
	h := unique.New(ptrSentinel{})
	p := h.MustGet()
	h.Release()
	require.True(t, p.disposed)
}

type ptrSentinel struct {
	disposed bool
}

func (p *ptrSentinel) Dispose() { p.disposed = true }
