package main

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/joshuapare/arenakit/alloc"
	"github.com/joshuapare/arenakit/arena"
)

var (
	stressOps     int
	stressSeed    int64
	stressMaxSize int
	stressLimit   int
	stressFile    string
)

func init() {
	cmd := newStressCmd()
	cmd.Flags().IntVar(&stressOps, "ops", 100000, "Number of allocator operations to run")
	cmd.Flags().Int64Var(&stressSeed, "seed", 1, "Seed for the workload generator")
	cmd.Flags().IntVar(&stressMaxSize, "max-size", 1024, "Largest single allocation in bytes")
	cmd.Flags().IntVar(&stressLimit, "limit", 64<<20, "Arena capacity in bytes")
	cmd.Flags().StringVar(&stressFile, "file", "", "Back the arena with this file instead of memory")
	rootCmd.AddCommand(cmd)
}

func newStressCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stress",
		Short: "Run a randomized allocation workload",
		Long: `The stress command runs a randomized mix of allocate, release, and
resize operations against a fresh arena, verifies heap consistency when the
run completes, and reports allocator statistics.

When the arena fills up, the workload drains half of its outstanding blocks
and continues, so the run also exercises reuse under pressure.

Example:
  arenactl stress --ops 500000
  arenactl stress --seed 7 --max-size 4096 --json
  arenactl stress --file /tmp/heap.arena --limit 16777216`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStress()
		},
	}
	return cmd
}

// StressReport is the summary printed after a stress run.
type StressReport struct {
	Ops        int           `json:"ops"`
	Seed       int64         `json:"seed"`
	Duration   time.Duration `json:"duration_ns"`
	Live       int           `json:"live_blocks"`
	Drains     int           `json:"drains"`
	ArenaBytes int           `json:"arena_bytes"`
	Consistent bool          `json:"consistent"`
	Stats      alloc.Stats   `json:"stats"`
}

func runStress() error {
	var (
		ar  arena.Arena
		fa  *arena.File
		err error
	)
	if stressFile != "" {
		printVerbose("Backing arena with file: %s\n", stressFile)
		fa, err = arena.NewFile(stressFile, stressLimit)
		if err != nil {
			return fmt.Errorf("failed to open arena file: %w", err)
		}
		defer fa.Close()
		ar = fa
	} else {
		ar = arena.NewMem(stressLimit)
	}

	a := alloc.New(ar)
	if err := a.Init(); err != nil {
		return fmt.Errorf("failed to initialize heap: %w", err)
	}

	rng := rand.New(rand.NewSource(stressSeed))
	var live []alloc.Ref
	drains := 0
	start := time.Now()

	for i := 0; i < stressOps; i++ {
		switch op := rng.Intn(10); {
		case op < 5 || len(live) == 0:
			ref, p, err := a.Allocate(1 + rng.Intn(stressMaxSize))
			if errors.Is(err, alloc.ErrArenaExhausted) {
				live = drainHalf(a, rng, live)
				drains++
				continue
			}
			if err != nil {
				return err
			}
			for j := range p {
				p[j] = byte(ref)
			}
			live = append(live, ref)

		case op < 8:
			j := rng.Intn(len(live))
			if err := a.Release(live[j]); err != nil {
				return err
			}
			live[j] = live[len(live)-1]
			live = live[:len(live)-1]

		default:
			j := rng.Intn(len(live))
			ref, _, err := a.Resize(live[j], 1+rng.Intn(stressMaxSize))
			if errors.Is(err, alloc.ErrArenaExhausted) {
				live = drainHalf(a, rng, live)
				drains++
				continue
			}
			if err != nil {
				return err
			}
			live[j] = ref
		}
	}

	report := StressReport{
		Ops:        stressOps,
		Seed:       stressSeed,
		Duration:   time.Since(start),
		Live:       len(live),
		Drains:     drains,
		ArenaBytes: ar.High() + 1,
		Consistent: a.Check("stress"),
		Stats:      a.Stats(),
	}

	if fa != nil {
		if err := fa.Flush(); err != nil {
			return fmt.Errorf("failed to flush arena file: %w", err)
		}
	}

	if jsonOut {
		return printJSON(report)
	}
	printReport(report)
	if !report.Consistent {
		return fmt.Errorf("heap inconsistent after %d operations (seed %d)",
			report.Ops, report.Seed)
	}
	return nil
}

// drainHalf releases a random half of the outstanding blocks.
func drainHalf(a *alloc.Allocator, rng *rand.Rand, live []alloc.Ref) []alloc.Ref {
	rng.Shuffle(len(live), func(i, j int) {
		live[i], live[j] = live[j], live[i]
	})
	keep := len(live) / 2
	for _, ref := range live[keep:] {
		if err := a.Release(ref); err != nil {
			fmt.Fprintf(os.Stderr, "Error: release during drain: %v\n", err)
		}
	}
	return live[:keep]
}

func printReport(r StressReport) {
	p := message.NewPrinter(language.English)
	s := r.Stats

	printInfo("Stress run complete\n")
	p.Printf("  ops:             %d (seed %d, %v)\n", r.Ops, r.Seed, r.Duration.Round(time.Millisecond))
	p.Printf("  arena:           %d bytes\n", r.ArenaBytes)
	p.Printf("  live blocks:     %d\n", r.Live)
	p.Printf("  drains:          %d\n", r.Drains)
	p.Printf("  allocations:     %d (%d bytes)\n", s.AllocCalls, s.BytesAllocated)
	p.Printf("  releases:        %d (%d bytes)\n", s.FreeCalls, s.BytesFreed)
	p.Printf("  resizes:         %d\n", s.ResizeCalls)
	p.Printf("  grows:           %d (%d bytes)\n", s.GrowCalls, s.GrowBytes)
	p.Printf("  splits:          %d\n", s.SplitCount)
	p.Printf("  coalesces:       %d fwd / %d back / %d both\n",
		s.CoalesceForward, s.CoalesceBackward, s.CoalesceBoth)
	fitTotal := s.FitFastPath + s.FitSlowPath
	if fitTotal > 0 {
		p.Printf("  free-list hits:  %d of %d (%.1f%%)\n",
			s.FitFastPath, fitTotal, 100*float64(s.FitFastPath)/float64(fitTotal))
	}
	if r.Consistent {
		printInfo("  heap check:      ok\n")
	} else {
		printInfo("  heap check:      FAILED\n")
	}
}
