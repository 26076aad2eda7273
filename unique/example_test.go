package unique_test

import (
	"fmt"

	"github.com/ownptr/ownptr/unique"
)

// chattyResource announces its disposal, mirroring a value that owns
// something worth cleaning up.
type chattyResource struct {
	name string
}

func (c *chattyResource) Dispose() { fmt.Printf("%s disposed\n", c.name) }

// ExampleHandle_MoveTo demonstrates ownership transfer: the destination's
// previous value is disposed, the source empties, and the moved value
// survives under its new owner.
func ExampleHandle_MoveTo() {
	src := unique.New(chattyResource{name: "first"})
	dst := unique.New(chattyResource{name: "second"})

	src.MoveTo(dst)
	fmt.Println("source empty:", src.Empty())
	fmt.Println("destination holds:", dst.MustGet().name)

	dst.Release()
	// Output:
	// second disposed
	// source empty: true
	// destination holds: first
	// first disposed
}

// ExampleHandle_Get shows the null-dereference condition on a released handle.
func ExampleHandle_Get() {
	h := unique.New(7)
	h.Release()

	if _, err := h.Get(); err != nil {
		fmt.Println("error:", err)
	}
	// Output:
	// error: unique: dereference of empty handle
}
