package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ownptr/ownptr/seq"
	"github.com/ownptr/ownptr/shared"
	"github.com/ownptr/ownptr/trace"
	"github.com/ownptr/ownptr/unique"
)

var (
	demoSize  int
	demoSeed  int64
	demoBound int
	demoTrace bool
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Walk through slices, exclusive handles, and shared handles",
	Long: `Fill a slice, randomize it, search it, print values from it, then
demonstrate exclusive-ownership handles (move semantics) and
shared-ownership handles (use-counting, upcast, downcast).`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

func init() {
	demoCmd.Flags().IntVar(&demoSize, "size", 20, "number of elements to fill")
	demoCmd.Flags().Int64Var(&demoSeed, "seed", 1, "seed for the randomize step")
	demoCmd.Flags().IntVar(&demoBound, "bound", 10, "exclusive upper bound for random values")
	demoCmd.Flags().BoolVar(&demoTrace, "trace", false, "log handle lifecycle events")
}

// greeter is the demo's base capability set; plain and loud are its
// concrete variants. Dispose chains run the variant's cleanup before the
// embedded plain part's cleanup.
type greeter interface {
	Greeting() string
}

type plain struct {
	out io.Writer
}

func (p *plain) Greeting() string { return "I am a plain value" }

func (p *plain) Dispose() { _, _ = fmt.Fprintln(p.out, "plain value disposed") }

type loud struct {
	plain
}

func (l *loud) Greeting() string { return "I am a loud value" }

func (l *loud) Dispose() {
	_, _ = fmt.Fprintln(l.out, "loud value disposed")
	l.plain.Dispose()
}

func runDemo(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	heading := color.New(color.FgCyan, color.Bold)

	tracer := trace.Nop()
	if demoTrace {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("build logger: %w", err)
		}
		defer func() { _ = logger.Sync() }()
		tracer = trace.NewZapTracer(logger)
	}

	if err := sliceDemo(out, heading); err != nil {
		return err
	}

	_, _ = heading.Fprintln(out, "---- Exclusive handles:")
	uniqueDemo(out, tracer)

	_, _ = heading.Fprintln(out, "---- Shared handles:")
	sharedDemo(out, tracer)

	return nil
}

// sliceDemo fills, randomizes, searches, and prints a slice of ints.
func sliceDemo(out io.Writer, heading *color.Color) error {
	_, _ = heading.Fprintln(out, "---- Slices:")

	vals, err := seq.Fill[int](demoSize)
	if err != nil {
		return err
	}
	if err = seq.Randomize(vals, seq.WithSeed(demoSeed), seq.WithBound(demoBound)); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(out, "what is in the slice?")
	_, _ = fmt.Fprintln(out, vals)

	if v, idx, ok := seq.FindFirst(vals, seq.Even[int]); ok {
		_, _ = fmt.Fprintf(out, "first even number %d found at index %d\n", v, idx)
	} else {
		_, _ = fmt.Fprintln(out, "the slice did not contain any even numbers")
	}

	_, _ = fmt.Fprintln(out, "printing the first values, one per line:")
	head := make([]any, 0, 5)
	for _, v := range vals[:min(5, len(vals))] {
		head = append(head, v)
	}

	return seq.PrintValues(out, head...)
}

// uniqueDemo shows exclusive ownership: one live owner, move-only
// transfer, disposal on release and on being overwritten as a move target.
func uniqueDemo(out io.Writer, tracer trace.Tracer) {
	a := unique.New(plain{out: out}, unique.WithTracer(tracer))
	_, _ = fmt.Fprintln(out, a.MustGet().Greeting())

	b := unique.New(loud{plain: plain{out: out}}, unique.WithTracer(tracer))
	_, _ = fmt.Fprintln(out, b.MustGet().Greeting())

	_, _ = fmt.Fprintln(out, "moving a into a fresh handle:")
	dst := unique.New(plain{out: out}, unique.WithTracer(tracer))
	a.MoveTo(dst) // dst's previous value is disposed here
	_, _ = fmt.Fprintln(out, "source handle empty after move:", a.Empty())

	b.Release()
	dst.Release()

	_, _ = fmt.Fprintln(out, "dynamic dispatch through a base-typed handle:")
	c := unique.New[greeter](&loud{plain: plain{out: out}}, unique.WithTracer(tracer))
	_, _ = fmt.Fprintln(out, (*c.MustGet()).Greeting())
	c.Release()
}

// sharedDemo shows use-counting across aliasing handles, then walks a
// value up and back down its capability hierarchy.
func sharedDemo(out io.Writer, tracer trace.Tracer) {
	a := shared.New[greeter](&plain{out: out}, shared.WithTracer(tracer))
	b := a.Clone()
	_, _ = fmt.Fprintf(out, "a and b alias one value, use count %d\n", a.UseCount())
	_, _ = fmt.Fprintln(out, "a says:", a.MustGet().Greeting())
	_, _ = fmt.Fprintln(out, "b says:", b.MustGet().Greeting())
	a.Release()
	b.Release() // value disposed at this release

	_, _ = fmt.Fprintln(out, "---- handle casting:")
	d := shared.New(&loud{plain: plain{out: out}}, shared.WithTracer(tracer))
	up := shared.Upcast[greeter](d)
	_, _ = fmt.Fprintln(out, "up the hierarchy:", up.MustGet().Greeting())

	if down, ok := shared.Downcast[*loud](up); ok {
		_, _ = fmt.Fprintln(out, "down the hierarchy:", down.MustGet().Greeting())
		down.Release()
	}

	if _, ok := shared.Downcast[*plain](up); !ok {
		_, _ = fmt.Fprintln(out, "downcast to the wrong variant was rejected")
	}

	_, _ = fmt.Fprintf(out, "how many handles reference the loud value? %d\n", d.UseCount())
	up.Release()
	d.Release()
}
