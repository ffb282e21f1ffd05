// Command benchkernels measures transform throughput across sizes and
// base factors, comparing the codelet-assisted fast path against the
// staged generic butterfly.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"runtime"
	"strconv"
	"strings"
	"time"

	algofht "github.com/cwbudde/algo-fht"
	"github.com/cwbudde/algo-fht/internal/cpu"
)

const modeInPlace = "inplace"

type benchResult struct {
	mode        string
	nsPerOp     float64
	cyclesPerOp float64
	mbPerS      float64
}

func main() {
	var (
		sizeList = flag.String("sizes", "1024,4096,16384,65536", "comma-separated row lengths")
		baseList = flag.String("bases", "1,12,20,28,40", "comma-separated base factors")
		iters    = flag.Int("iters", 200, "benchmark iterations")
		warmup   = flag.Int("warmup", 10, "warmup iterations")
		mode     = flag.String("mode", "forward", "benchmark mode: forward, inplace, all")
		seed     = flag.Int64("seed", 1, "rng seed")
	)
	flag.Parse()

	sizes := parseInts(*sizeList)
	if len(sizes) == 0 {
		fmt.Println("no sizes specified")
		return
	}

	bases := parseBases(*baseList)
	if len(bases) == 0 {
		fmt.Println("no valid bases specified")
		return
	}

	rnd := rand.New(rand.NewSource(*seed))

	fmt.Printf("iters=%d warmup=%d\n", *iters, *warmup)
	fmt.Printf("%8s  %6s  %8s  %12s  %12s  %10s\n", "size", "base", "mode", "ns/op", "cycles/op", "MB/s")

	for _, base := range bases {
		for _, n := range sizes {
			for _, runMode := range resolveModes(*mode) {
				res, err := benchmarkSize(rnd, n, base, *iters, *warmup, runMode)
				if err != nil {
					fmt.Printf("%8d  %6s  %8s  skipped: %v\n", n, base, runMode, err)
					continue
				}

				fmt.Printf("%8d  %6s  %8s  %12.1f  %12.1f  %10.1f\n", n, base, res.mode, res.nsPerOp, res.cyclesPerOp, res.mbPerS)
			}
		}
	}
}

func benchmarkSize(rnd *rand.Rand, n int, base algofht.Base, iters, warmup int, mode string) (benchResult, error) {
	plan, err := algofht.NewVariantPlan[float64](n, base)
	if err != nil {
		return benchResult{}, err
	}

	src := make([]float64, n, plan.PaddedLen())
	for i := range src {
		src[i] = rnd.NormFloat64()
	}

	dst := make([]float64, n)

	run := func() error {
		if mode == modeInPlace {
			return plan.InPlace(src, 1)
		}

		return plan.Forward(dst, src, 1)
	}

	for i := 0; i < warmup; i++ {
		if err := run(); err != nil {
			return benchResult{}, err
		}
	}

	runtime.GC()

	start := time.Now()
	startCycles := cpu.Cycles()

	for i := 0; i < iters; i++ {
		if err := run(); err != nil {
			return benchResult{}, err
		}
	}

	cycles := cpu.CyclesSince(startCycles)
	elapsed := time.Since(start)
	nsPerOp := float64(elapsed.Nanoseconds()) / float64(iters)
	bytes := float64(n * 8)

	return benchResult{
		mode:        mode,
		nsPerOp:     nsPerOp,
		cyclesPerOp: float64(cycles) / float64(iters),
		mbPerS:      bytes / nsPerOp * 1e9 / (1 << 20),
	}, nil
}

func resolveModes(mode string) []string {
	switch mode {
	case "all":
		return []string{"forward", modeInPlace}
	case modeInPlace, "forward":
		return []string{mode}
	default:
		return []string{"forward"}
	}
}

func parseInts(list string) []int {
	parts := strings.Split(list, ",")

	out := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 1 {
			continue
		}

		out = append(out, n)
	}

	return out
}

func parseBases(list string) []algofht.Base {
	parts := strings.Split(list, ",")

	out := make([]algofht.Base, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			continue
		}

		base := algofht.Base(n)
		if !base.Valid() {
			continue
		}

		out = append(out, base)
	}

	return out
}
