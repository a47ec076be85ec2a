// Command symreg demonstrates the cellular genetic program engine on
// symbolic-regression datasets: for each gzip/tsv dataset found in -data, and
// each built-in topology, it runs -reps independent repetitions of -gens
// generations over a population of -pop trees, writing one text report per
// dataset under -out.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	progressbar "github.com/schollz/progressbar/v3"

	"github.com/cbarrick/cgp"
	"github.com/cbarrick/cgp/alter"
	"github.com/cbarrick/cgp/cellular"
	"github.com/cbarrick/cgp/eval"
	"github.com/cbarrick/cgp/graph"
	"github.com/cbarrick/cgp/op"
	"github.com/cbarrick/cgp/problem"
	"github.com/cbarrick/cgp/sel"
	"github.com/cbarrick/cgp/stream"
	"github.com/cbarrick/cgp/tree"
)

const (
	logDir      = "logs"
	logFileName = "symreg.log"
)

// setupLogging configures log output based on the debug flag: silent by
// default, appended to logs/symreg.log when debug is set. Returns the open
// log file (or nil) for the caller to close.
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "symreg: cannot create log directory: %v\n", err)
		log.SetOutput(io.Discard)
		return nil
	}

	logFile, err := os.OpenFile(filepath.Join(logDir, logFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "symreg: cannot open log file: %v\n", err)
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(logFile)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Printf("=== symreg started ===")
	return logFile
}

// topologyBuilder names a builtin topology constructor. Some generators need
// randomness; all are handed the same seeded rng so a run is reproducible.
type topologyBuilder struct {
	name  string
	build func(n int, rng *rand.Rand) cgp.GraphMap
}

var builtinTopologies = []topologyBuilder{
	{"grid", func(n int, _ *rand.Rand) cgp.GraphMap { return graph.Grid(n) }},
	{"erdos-renyi", func(n int, rng *rand.Rand) cgp.GraphMap { return graph.ErdosRenyi(n, 0.05, rng) }},
	{"watts-strogatz", func(n int, rng *rand.Rand) cgp.GraphMap { return graph.WattsStrogatz(n, 4, 0.1, rng) }},
	{"barabasi-albert", func(n int, rng *rand.Rand) cgp.GraphMap { return graph.BarabasiAlbert(n, 3, rng) }},
	{"layered-dag", func(n int, rng *rand.Rand) cgp.GraphMap {
		layers := 10
		for layers > 1 && n%layers != 0 {
			layers--
		}
		return graph.LayeredDAG(layers, n/layers, 0.3, rng)
	}},
	{"hub", func(n int, rng *rand.Rand) cgp.GraphMap { return graph.MultipleInAndOut(n, 0.1, 0.1, 2, rng) }},
}

func main() {
	dataDir := flag.String("data", "data", "directory of gzip-compressed tab-separated datasets")
	outDir := flag.String("out", "outputs", "directory to write per-dataset reports")
	reps := flag.Int("reps", 5, "repetitions per dataset/topology pair")
	gens := flag.Int("gens", 100, "generations per repetition")
	pop := flag.Int("pop", 100, "population size")
	seed := flag.Int64("seed", 42, "base RNG seed")
	debug := flag.Bool("debug", false, "enable debug logging to logs/symreg.log")
	flag.Parse()

	logFile := setupLogging(*debug)
	if logFile != nil {
		defer logFile.Close()
	}

	if err := run(*dataDir, *outDir, *reps, *gens, *pop, *seed); err != nil {
		fmt.Fprintln(os.Stderr, "symreg:", err)
		os.Exit(1)
	}
}

func run(dataDir, outDir string, reps, gens, pop int, seed int64) error {
	datasets, err := discoverDatasets(dataDir)
	if err != nil {
		return err
	}
	if len(datasets) == 0 {
		return fmt.Errorf("no *.tsv.gz datasets found under %s", dataDir)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	totalRuns := len(datasets) * len(builtinTopologies) * reps
	bar := progressbar.Default(int64(totalRuns), "evolving")

	for _, path := range datasets {
		samples, err := loadDataset(path)
		if err != nil {
			return err
		}
		if len(samples) == 0 {
			log.Printf("symreg: skipping empty dataset %s", path)
			continue
		}

		report, err := runDataset(path, samples, reps, gens, pop, seed, bar)
		if err != nil {
			return err
		}

		name := strings.TrimSuffix(filepath.Base(path), ".tsv.gz")
		reportPath := filepath.Join(outDir, name+".txt")
		if err := os.WriteFile(reportPath, []byte(report), 0o644); err != nil {
			return err
		}
	}

	fmt.Println("\nsymreg: finished")
	return nil
}

// runDataset runs every built-in topology, reps times each, over samples,
// and renders a text report summarizing the best tree found per topology.
func runDataset(path string, samples []problem.Sample, reps, gens, pop int, seed int64, bar *progressbar.ProgressBar) (string, error) {
	numVars := len(samples[0].Inputs)
	var sb strings.Builder
	fmt.Fprintf(&sb, "dataset: %s (%d samples, %d variables)\n", path, len(samples), numVars)

	for topoIdx, tb := range builtinTopologies {
		var bestResults []cgp.EvolutionResult[tree.Tree]

		for rep := 0; rep < reps; rep++ {
			runSeed := seed + int64(topoIdx)*1_000_003 + int64(rep)*97
			topoRNG := rand.New(rand.NewSource(runSeed))
			topo := tb.build(pop, topoRNG)

			result, err := runOne(samples, numVars, topo, gens, runSeed)
			if err != nil {
				return "", fmt.Errorf("topology %s rep %d: %w", tb.name, rep, err)
			}
			bestResults = append(bestResults, result)

			if err := bar.Add(1); err != nil {
				log.Printf("symreg: progress bar: %v", err)
			}
		}

		best := stream.ToBestEvolutionResult(bestResults)
		_, bestPheno := best.Best()
		fit, _ := bestPheno.Fitness()
		fmt.Fprintf(&sb, "  %-16s best MSE=%.6g  tree=%s\n", tb.name, fit, bestPheno.Genotype.String())
	}

	return sb.String(), nil
}

// runOne evolves one topology/seed pair for gens generations and returns the
// best-fitness generation reached across the run.
func runOne(samples []problem.Sample, numVars int, topo cgp.GraphMap, gens int, seed int64) (cgp.EvolutionResult[tree.Tree], error) {
	set := op.Set{
		Functions: op.Arithmetic(),
		Terminals: variableTerminals(numVars),
	}
	cfg := tree.Config{
		MaxDepth:        6,
		Set:             set,
		GrowProbability: 0.3,
		Valid:           func(t tree.Tree) bool { return t.Size() <= 127 },
	}
	prob := problem.Regression{Samples: samples, Config: cfg}

	n := topo.Size()
	alterer := alter.NewChain[tree.Tree](
		alter.SingleNodeCrossover{Prob: 0.1},
		alter.SubtreeMutator{Prob: 1.0 / float64(n), Config: cfg},
	)

	engineCfg := cellular.NewConfig[tree.Tree](
		topo,
		prob,
		sel.NewTournament[tree.Tree](3),
		alterer,
		eval.New[tree.Tree](runtime.GOMAXPROCS(0)),
		cgp.Minimize,
		cellular.WithSeed[tree.Tree](seed),
	)
	engine, err := cellular.New[tree.Tree](engineCfg)
	if err != nil {
		return cgp.EvolutionResult[tree.Tree]{}, err
	}

	initRNG := rand.New(rand.NewSource(seed))
	initPop := make(cgp.Population[tree.Tree], n)
	for i := range initPop {
		initPop[i] = cgp.NewPhenotype(prob.NewGenotype(initRNG), 0)
	}

	ctx := context.Background()
	s := stream.New[tree.Tree](ctx, engine, cgp.EvolutionStart[tree.Tree]{Population: initPop, Generation: 0})
	results, err := stream.Limit(s, gens)
	if err != nil {
		return cgp.EvolutionResult[tree.Tree]{}, err
	}
	return stream.ToBestEvolutionResult(results), nil
}

func variableTerminals(numVars int) []op.Terminal {
	terminals := make([]op.Terminal, 0, numVars+1)
	for i := 0; i < numVars; i++ {
		terminals = append(terminals, op.AsTerminal(op.Variable(i)))
	}
	terminals = append(terminals, op.UniformEphemeral(-5, 5))
	return terminals
}
