// Package driver wires lrsio, transform and enumerate into the one job a
// CLI invocation runs: read a polyhedron, apply the requested transforms,
// dispatch to the matching enumerator, write the result, and report
// stats and elapsed time. Grounded on LrsDriver.run in the original
// source, restructured around explicit io.Reader/io.Writer instead of a
// file path and os.Stdout, and mapped onto cobra's RunE instead of a
// hand-rolled args switch.
package driver

import (
	"fmt"
	"io"
	"time"

	"github.com/plan-systems/klog"

	"q.log/lrsgo/enumerate"
	"q.log/lrsgo/lrsio"
	"q.log/lrsgo/polyhedron"
	"q.log/lrsgo/transform"
)

// Options mirrors LrsDat: the driver's own configuration, independent of
// how it was parsed (flags, tests, or otherwise).
type Options struct {
	Mode         polyhedron.Mode
	MaxDepth     int
	IntegerInput bool
	PrintCobasis bool
	Threads      int // reserved, ignored by the core
	Seed         int64
	Eliminate    []int
	Project      []int
	Linearity    []int
	Redund       bool
	MinRep       bool

	// DotWriter, if non-nil, receives the lex arborescence discovered
	// during an H->V run in Graphviz dot format. Diagnostic only: never
	// consulted by the enumerator itself.
	DotWriter io.Writer
}

// ExitIOError, ExitArgError and ExitUnrecoverable are the non-zero exit
// codes spec.md §6 specifies; success is 0.
const (
	ExitOK            = 0
	ExitIOError       = 1
	ExitArgError      = 2
	ExitUnrecoverable = -1
)

// Run executes one enumeration job: read from in, enumerate per opts,
// write to out, and return the process exit code spec.md §6's table
// specifies.
func Run(opts Options, in io.Reader, out, errOut io.Writer) int {
	t0 := time.Now()

	input, err := lrsio.ReadPolyhedron(in)
	if err != nil {
		fmt.Fprintf(errOut, "I/O error: %v\n", err)
		return ExitIOError
	}
	klog.V(2).Infof("read %d x %d, mode=%v", input.M.Rows(), input.M.Cols(), input.Mode)

	h := polyhedron.NewH(input.M)
	h = transform.MarkLinearity(h, opts.Linearity)
	h = transform.Eliminate(h, opts.Eliminate)
	h = transform.Project(h, opts.Project)
	if opts.MinRep {
		h = transform.MinRep(h)
	} else if opts.Redund {
		h = transform.Redund(h)
	}

	var result *polyhedron.Result
	switch opts.Mode {
	case polyhedron.VE:
		result, err = enumerate.FromH(h, opts.MaxDepth)
	case polyhedron.CH:
		result, err = enumerate.FromV(polyhedron.NewV(h.M))
	default:
		fmt.Fprintf(errOut, "Argument error: unknown mode %v\n", opts.Mode)
		return ExitArgError
	}
	if err != nil {
		fmt.Fprintf(errOut, "*unrecoverable error: %v\n", err)
		return ExitUnrecoverable
	}

	if err := lrsio.WriteResult(out, result, opts.Mode); err != nil {
		fmt.Fprintf(errOut, "I/O error: %v\n", err)
		return ExitIOError
	}

	if opts.PrintCobasis && result.Stats.LastCobasis != nil {
		fmt.Fprintf(out, "printcobasis 1\n%v\n", result.Stats.LastCobasis)
	}

	if opts.DotWriter != nil && opts.Mode == polyhedron.VE {
		if err := enumerate.WriteDOT(opts.DotWriter, enumerate.Arborescence(result.Stats)); err != nil {
			fmt.Fprintf(errOut, "I/O error: %v\n", err)
			return ExitIOError
		}
	}

	secs := time.Since(t0).Seconds()
	fmt.Fprintf(out, "*elapsed time: %.3f seconds\n", secs)

	return ExitOK
}
