// Copyright (c) 2024 The ibdd Authors
//
// MIT License

// Command ibdd runs a trace file through the ibdd engine and reports how
// large the resulting diagrams are and how long synthesis took, the
// small benchmarking tool spec.md §6.5 asks for, in the shape of the
// cobra-based command-line tools in the example corpus (see
// util/cpb/main.go).
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sys/unix"

	"github.com/gobdd/ibdd"
	"github.com/gobdd/ibdd/dot"
	"github.com/gobdd/ibdd/trace"
)

var (
	verbose    bool
	dotOutFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ibdd [trace-file]",
	Short: "Synthesize a circuit trace file into a Shared ROBDD and report timing",
	Long: `ibdd reads a circuit description in trace format (the format
used by the ISCAS85 benchmark suite), builds one BDD per primary output
using an ibdd.Engine, and prints the number of primary inputs, the number
of distinct interior nodes reachable from all outputs (the shared leaf
is not counted), the user+system CPU time spent in
synthesis, and the process's peak resident set size.`,
	Args: cobra.ExactArgs(1),
	RunE: run,
}

func init() {
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.Flags().StringVar(&dotOutFile, "dot", "", "write a Graphviz DOT rendering of all outputs to this file")
}

func run(cmd *cobra.Command, args []string) error {
	if verbose {
		ibdd.SetLogLevel(logrus.DebugLevel)
	}

	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	circuit, err := trace.Parse(f)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", args[0], err)
	}

	var before unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &before); err != nil {
		return fmt.Errorf("getrusage: %w", err)
	}
	start := time.Now()

	e, err := ibdd.New(len(circuit.Inputs))
	if err != nil {
		return err
	}
	edges, err := trace.Build(e, circuit)
	if err != nil {
		return fmt.Errorf("synthesizing %s: %w", circuit.Name, err)
	}

	elapsed := time.Since(start)
	var after unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &after); err != nil {
		return fmt.Errorf("getrusage: %w", err)
	}

	seen := map[int32]struct{}{}
	outs := make([]ibdd.Edge, 0, len(circuit.Outputs))
	for _, name := range circuit.Outputs {
		out := edges[name]
		outs = append(outs, out)
		e.Walk(out, func(idx int32) { seen[idx] = struct{}{} })
	}
	total := len(seen)

	fmt.Printf("module:        %s\n", circuit.Name)
	fmt.Printf("primary inputs: %d\n", len(circuit.Inputs))
	fmt.Printf("primary outputs: %d\n", len(circuit.Outputs))
	fmt.Printf("total nodes:    %d\n", total)
	fmt.Printf("wall time:      %s\n", elapsed)
	fmt.Printf("cpu time:       %s\n", rusageDelta(before.Utime, after.Utime)+rusageDelta(before.Stime, after.Stime))
	fmt.Printf("peak rss:       %d KB\n", after.Maxrss)

	stats := e.Stats()
	fmt.Printf("node slots:     %d (used %d, free %d)\n", stats.NodeSlots, stats.NodesInUse, stats.FreeNodes)
	fmt.Printf("gc runs:        %d (freed %d)\n", stats.CollectRuns, stats.NodesFreed)

	if dotOutFile != "" {
		out, err := os.Create(dotOutFile)
		if err != nil {
			return err
		}
		defer out.Close()
		if err := dot.WriteAll(out, e, outs); err != nil {
			return err
		}
	}

	return nil
}

func rusageDelta(a, b unix.Timeval) time.Duration {
	sec := b.Sec - a.Sec
	usec := int64(b.Usec) - int64(a.Usec)
	return time.Duration(sec)*time.Second + time.Duration(usec)*time.Microsecond
}
