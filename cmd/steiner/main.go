package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/arborist-go/steinertree/core"
	"github.com/arborist-go/steinertree/csr"
	"github.com/arborist-go/steinertree/dijkstra"
	"github.com/arborist-go/steinertree/emv"
	"github.com/arborist-go/steinertree/stp"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout))
}

// config is the parsed CLI surface. Kept separate from flag globals so
// run is testable without touching package-level state.
type config struct {
	in       string
	seed     int64
	erickson bool
	dijkstra bool
	list     bool
	workers  int
	fib      bool
}

func run(args []string, stdin io.Reader, stdout io.Writer) int {
	fs := flag.NewFlagSet("steiner", flag.ContinueOnError)
	fs.SetOutput(stdout)

	var c config
	fs.StringVar(&c.in, "in", "", "input graph in DIMACS STP format (required unless stdin is piped)")
	fs.Int64Var(&c.seed, "seed", 123456789, "RNG seed (affects only the -dijkstra demo command)")
	fs.BoolVar(&c.erickson, "el", false, "run the EMV/Erickson-Monma-Veinott Steiner tree DP")
	fs.BoolVar(&c.erickson, "erickson", false, "alias for -el")
	fs.BoolVar(&c.dijkstra, "dijkstra", false, "run one Dijkstra from a random source")
	fs.BoolVar(&c.list, "list", false, "emit the reconstructed Steiner tree edge list")
	fs.IntVar(&c.workers, "workers", runtime.NumCPU(), "worker pool size T for the EMV DP")
	fs.BoolVar(&c.fib, "fib", false, "use a Fibonacci heap instead of the indexed binary heap")

	fs.Usage = func() {
		fmt.Fprintln(stdout, "usage: steiner -in <path> {-el|-erickson|-dijkstra} [-list] [-seed N] [-workers N] [-fib]")
		fs.PrintDefaults()
	}

	switch err := fs.Parse(args); {
	case errors.Is(err, flag.ErrHelp):
		return 0
	case err != nil:
		return 2
	}

	if !c.erickson && !c.dijkstra {
		fs.Usage()
		return 2
	}

	r, closeFn, err := openInput(c.in, stdin)
	if err != nil {
		log.Printf("steiner: %v", err)
		return 1
	}
	defer closeFn()

	g, err := stp.Parse(r)
	if err != nil {
		log.Printf("steiner: %v", err)
		return 1
	}

	printInput(stdout, g)
	printTerminals(stdout, g)

	if c.dijkstra {
		if err := runDijkstraDemo(stdout, g, c.seed); err != nil {
			log.Printf("steiner: %v", err)
			return 1
		}
	} else {
		if err := runErickson(stdout, g, c); err != nil {
			log.Printf("steiner: %v", err)
			return 1
		}
	}

	printFooter(stdout, c.workers)
	return 0
}

// openInput opens c.in, or falls back to stdin when -in was not given.
func openInput(path string, stdin io.Reader) (io.Reader, func(), error) {
	if path == "" {
		return stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, func() {}, fmt.Errorf("opening -in %q: %w", path, err)
	}
	return f, func() { _ = f.Close() }, nil
}

func printInput(w io.Writer, g *core.Graph) {
	costStr := "none"
	if cost, ok := g.KnownCost(); ok {
		costStr = fmt.Sprintf("%d", cost)
	}
	fmt.Fprintf(w, "input: n = %d, m = %d, k = %d, cost = %s\n", g.N(), g.M(), g.K(), costStr)
}

func printTerminals(w io.Writer, g *core.Graph) {
	ids := make([]string, g.K())
	for i, t := range g.Terminals() {
		ids[i] = fmt.Sprintf("%d", t+1) // back to 1-based for the wire format
	}
	fmt.Fprintf(w, "terminals: %s\n", strings.Join(ids, " "))
}

// runErickson builds the CSR adjacency, runs emv.Solve, and prints the
// "erickson: ..." timing/cost line and, with -list, the solution line
// (spec.md §6's "Standard output" contract).
func runErickson(w io.Writer, g *core.Graph, c config) error {
	kernelStart := time.Now()
	// ParallelBuild is re-run inside emv.Solve; this stand-alone build only
	// times the separate "kernel" phase and its adjacency is discarded,
	// since Solve takes no prebuilt adjacency and builds its own.
	if _, err := csr.ParallelBuild(g, c.workers); err != nil {
		return err
	}
	kernelMS := time.Since(kernelStart).Milliseconds()

	var opts []emv.Option
	opts = append(opts, emv.WithWorkers(c.workers))
	if c.fib {
		opts = append(opts, emv.WithFibonacciHeap())
	}
	if c.list {
		opts = append(opts, emv.WithSolution())
	}

	solveStart := time.Now()
	res, err := emv.Solve(g, opts...)
	totalMS := time.Since(solveStart).Milliseconds()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "erickson: [kernel: %dms] ... done. [%dms] [cost: %d]\n", kernelMS, totalMS, res.Cost)

	if c.list {
		entries := make([]string, len(res.Edges))
		for i, e := range res.Edges {
			entries[i] = fmt.Sprintf("%q", fmt.Sprintf("%d %d", e.U+1, e.V+1))
		}
		fmt.Fprintf(w, "solution: [%s]\n", strings.Join(entries, ", "))
	}
	return nil
}

// runDijkstraDemo runs one Dijkstra from a seed-chosen random source
// (spec.md §6's "-dijkstra: run one Dijkstra from a random source").
func runDijkstraDemo(w io.Writer, g *core.Graph, seed int64) error {
	adj, err := csr.Build(g)
	if err != nil {
		return err
	}
	rng := rand.New(rand.NewSource(seed))
	source := rng.Intn(g.N())

	view := csr.NewView(adj)
	scratch := dijkstra.NewScratch(adj.N())

	start := time.Now()
	if err := dijkstra.Run(view, source, scratch); err != nil {
		return err
	}
	elapsed := time.Since(start).Milliseconds()

	fmt.Fprintf(w, "dijkstra: source = %d\n", source+1)
	fmt.Fprintf(w, "dijkstra: ... done. [%dms] [cost: %d]\n", elapsed, scratch.Dist[g.Terminals()[0]])
	return nil
}

func printFooter(w io.Writer, workers int) {
	host, err := os.Hostname()
	if err != nil {
		host = "unknown"
	}
	fmt.Fprintf(w, "host: %s\n", host)
	fmt.Fprintf(w, "build: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Fprintf(w, "num threads: %d\n", workers)
	fmt.Fprintf(w, "compiler: %s\n", runtime.Version())
}
