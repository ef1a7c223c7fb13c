// Command lrsgo is the CLI entry point: read an H- or V-representation,
// enumerate its dual, and print the result in lrs-style text. Grounded on
// Main.java/LrsDriver.run, restructured around a cobra.Command instead of
// a manual args switch.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/plan-systems/klog"
	"github.com/spf13/cobra"

	"q.log/lrsgo/cmd/lrsgo/driver"
	"q.log/lrsgo/polyhedron"
)

func main() {
	flag.Set("logtostderr", "true")
	fset := flag.NewFlagSet("", flag.ContinueOnError)
	klog.InitFlags(fset)
	fset.Set("logtostderr", "true")
	klog.SetFormatter(&klog.FmtConstWidth{FileNameCharWidth: 16, UseColor: true})
	defer klog.Flush()

	os.Exit(newRootCmd().Execute2())
}

type rootCmd struct {
	*cobra.Command

	modeFlag     string
	maxDepth     int
	integerInput bool
	printCobasis bool
	threads      int
	seed         int64
	eliminate    []int
	project      []int
	linearity    []int
	redund       bool
	minrep       bool
	dotPath      string
}

// Execute2 runs the command tree and returns the process exit code,
// distinguishing cobra's own argument-parsing failures (exit 2) from the
// code driver.Run reports.
func (r *rootCmd) Execute2() int {
	code := 0
	r.RunE = func(cmd *cobra.Command, args []string) error {
		opts, err := r.toOptions(args)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Argument error:", err)
			code = driver.ExitArgError
			return nil
		}
		f, err := os.Open(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, "File not found:", args[0])
			code = driver.ExitIOError
			return nil
		}
		defer f.Close()

		if r.dotPath != "" {
			dotFile, err := os.Create(r.dotPath)
			if err != nil {
				fmt.Fprintln(os.Stderr, "Cannot create dot file:", err)
				code = driver.ExitIOError
				return nil
			}
			defer dotFile.Close()
			opts.DotWriter = dotFile
		}

		code = driver.Run(opts, f, os.Stdout, os.Stderr)
		return nil
	}
	if err := r.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Argument error:", err)
		return driver.ExitArgError
	}
	return code
}

func (r *rootCmd) toOptions(args []string) (driver.Options, error) {
	if len(args) != 1 {
		return driver.Options{}, fmt.Errorf("expected exactly one input file, got %d", len(args))
	}
	mode := polyhedron.VE
	switch r.modeFlag {
	case "VE", "ve", "":
		mode = polyhedron.VE
	case "CH", "ch":
		mode = polyhedron.CH
	default:
		return driver.Options{}, fmt.Errorf("unknown mode %q (want VE or CH)", r.modeFlag)
	}
	return driver.Options{
		Mode:         mode,
		MaxDepth:     r.maxDepth,
		IntegerInput: r.integerInput,
		PrintCobasis: r.printCobasis,
		Threads:      r.threads,
		Seed:         r.seed,
		Eliminate:    r.eliminate,
		Project:      r.project,
		Linearity:    r.linearity,
		Redund:       r.redund,
		MinRep:       r.minrep,
	}, nil
}

func newRootCmd() *rootCmd {
	r := &rootCmd{}
	r.Command = &cobra.Command{
		Use:   "lrsgo [flags] <input-file>",
		Short: "Exact-arithmetic convex polyhedron enumerator",
		Long: "lrsgo reads an lrs-style H- or V-representation and enumerates its dual\n" +
			"representation (vertices and extreme rays, or facets) using exact\n" +
			"rational arithmetic.",
	}
	flags := r.Command.Flags()
	flags.StringVar(&r.modeFlag, "mode", "VE", "VE (H->V) or CH (V->H)")
	flags.IntVar(&r.maxDepth, "max-depth", 0, "cap on reverse-search DFS depth (0 = unlimited)")
	flags.BoolVar(&r.integerInput, "integer-input", false, "declare input as integer data (stored in the options; does not change the output)")
	flags.BoolVar(&r.printCobasis, "print-cobasis", false, "print the final cobasis alongside the result")
	flags.IntVar(&r.threads, "threads", 1, "reserved, ignored by the core")
	flags.Int64Var(&r.seed, "seed", 1, "reserved, ignored by the core")
	flags.IntSliceVar(&r.eliminate, "eliminate", nil, "column indices to eliminate")
	flags.IntSliceVar(&r.project, "project", nil, "column indices to keep (projection)")
	flags.IntSliceVar(&r.linearity, "linearity", nil, "row indices to mark as equalities")
	flags.BoolVar(&r.redund, "redund", false, "remove redundant inequalities")
	flags.BoolVar(&r.minrep, "minrep", false, "minimize representation")
	flags.StringVar(&r.dotPath, "dot", "", "write the lex arborescence discovered during VE mode to this file in Graphviz dot format")
	return r
}
