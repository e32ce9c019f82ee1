// Command boolsmt is a DIMACS CNF driver for the boolsmt Boolean core: it
// loads a CNF instance, solves it with no theory attached, and reports the
// outcome and search statistics, in the style of a plain SAT solver binary.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"strings"
	"time"

	"github.com/rhartert/boolsmt/internal/dimacs"
	"github.com/rhartert/boolsmt/sat"
)

var (
	flagCPUProfile = flag.Bool("cpuprof", false, "save pprof CPU profile to cpuprof")
	flagMemProfile = flag.Bool("memprof", false, "save pprof memory profile to memprof")
	flagGzip       = flag.Bool("gzip", false, "treat the instance file as gzip-compressed")
	flagWatch      = flag.String("watch", "", "watch this directory for new .cnf/.cnf.gz files instead of solving a single instance")
	flagSeed       = flag.Uint64("seed", 0, "random seed for tie-breaking decisions")
	flagTimeout    = flag.Duration("timeout", 0, "give up and report unknown after this long (0 disables the limit)")
)

type config struct {
	instanceFile string
	gzip         bool
	memProfile   bool
	cpuProfile   bool
	watchDir     string
	seed         uint64
	timeout      time.Duration
}

func parseConfig() (*config, error) {
	flag.Parse()

	cfg := &config{
		gzip:       *flagGzip,
		memProfile: *flagMemProfile,
		cpuProfile: *flagCPUProfile,
		watchDir:   *flagWatch,
		seed:       *flagSeed,
		timeout:    *flagTimeout,
	}

	if cfg.watchDir != "" {
		return cfg, nil
	}
	if flag.NArg() == 0 || flag.Arg(0) == "" {
		return nil, fmt.Errorf("missing instance file (or pass -watch DIR)")
	}
	cfg.instanceFile = flag.Arg(0)
	return cfg, nil
}

func solveOne(cfg *config, path string) error {
	opts := sat.DefaultOptions
	opts.RandomSeed = cfg.seed
	if cfg.timeout > 0 {
		opts.Timeout = cfg.timeout
	}
	s := sat.NewSolver(opts)

	gzipped := cfg.gzip || strings.HasSuffix(path, ".gz")
	if err := dimacs.LoadDIMACS(path, gzipped, s); err != nil {
		return fmt.Errorf("could not load instance %q: %w", path, err)
	}

	fmt.Printf("c instance:   %s\n", path)
	fmt.Printf("c variables:  %d\n", s.NumVariables())
	fmt.Printf("c clauses:    %d\n", s.NumConstraints())

	start := time.Now()
	status := s.Solve(nil)
	elapsed := time.Since(start)

	fmt.Printf("c time (sec): %f\n", elapsed.Seconds())
	fmt.Printf("c conflicts:  %d (%.2f /sec)\n", s.TotalConflicts, float64(s.TotalConflicts)/elapsed.Seconds())
	fmt.Printf("c restarts:   %d\n", s.TotalRestarts)
	fmt.Printf("s %s\n", dimacsStatusLine(status))

	if status == sat.Sat && len(s.Models) > 0 {
		printModel(s.Models[len(s.Models)-1])
	}

	return nil
}

func dimacsStatusLine(status sat.Status) string {
	switch status {
	case sat.Sat:
		return "SATISFIABLE"
	case sat.Unsat:
		return "UNSATISFIABLE"
	default:
		return "UNKNOWN"
	}
}

func printModel(model []bool) {
	var sb strings.Builder
	sb.WriteString("v")
	// Variable 0 is the solver's predefined constant true and has no DIMACS
	// counterpart; every other variable id v corresponds to DIMACS variable
	// v (see internal/dimacs's varIDs mapping).
	for v := 1; v < len(model); v++ {
		if model[v] {
			fmt.Fprintf(&sb, " %d", v)
		} else {
			fmt.Fprintf(&sb, " -%d", v)
		}
	}
	sb.WriteString(" 0")
	fmt.Println(sb.String())
}

func run(cfg *config) error {
	if cfg.watchDir != "" {
		fmt.Printf("c watching %s for new instances (ctrl-c to stop)\n", cfg.watchDir)
		closer, err := dimacs.WatchDirectory(cfg.watchDir, func(path string) {
			if err := solveOne(cfg, path); err != nil {
				log.Printf("error solving %q: %s", path, err)
			}
		})
		if err != nil {
			return err
		}
		defer closer.Close()
		select {} // run until killed; -watch has no natural end condition
	}

	return solveOne(cfg, cfg.instanceFile)
}

func main() {
	cfg, err := parseConfig()
	if err != nil {
		log.Fatal(err)
	}

	if cfg.cpuProfile {
		f, err := os.Create("cpuprof")
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	if err := run(cfg); err != nil {
		log.Fatal(err)
	}

	if cfg.memProfile {
		f, err := os.Create("memprof")
		if err != nil {
			log.Fatal(err)
		}
		pprof.WriteHeapProfile(f)
		f.Close()
	}
}
