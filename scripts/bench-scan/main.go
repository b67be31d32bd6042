// bench-scan measures folder listing and analysis throughput on synthetic
// frame sequences, including the heap cost of materializing wide gap spans.
//
// Usage:
//
//	go run ./scripts/bench-scan --frames 100000 --gap-every 100 --runs 3
//	go run ./scripts/bench-scan --dir /renders/shot_010 --runs 5
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/dwikygilang/framecheck/internal/scan"
	"github.com/dwikygilang/framecheck/pkg/sequence"
)

type measurement struct {
	list    time.Duration
	analyze time.Duration
	found   int
	missing int
}

func main() {
	dir := flag.String("dir", "", "Existing folder to measure (empty = synthesize one)")
	frames := flag.Int("frames", 100000, "Number of frames to synthesize")
	gapEvery := flag.Int("gap-every", 100, "Drop every Nth frame from the synthetic sequence (0 = no gaps)")
	runs := flag.Int("runs", 3, "Measurement runs")

	flag.Parse()

	target := *dir
	if target == "" {
		synthesized, err := synthesize(*frames, *gapEvery)
		if err != nil {
			log.Fatalf("synthesize: %v", err)
		}

		defer os.RemoveAll(synthesized)

		target = synthesized
	}

	takeSnapshot := func(label string) {
		runtime.GC()
		runtime.GC()

		var m runtime.MemStats
		runtime.ReadMemStats(&m)
		log.Printf("  [heap] %-20s inuse=%6.1f MB  sys=%6.1f MB",
			label, float64(m.HeapInuse)/1e6, float64(m.HeapSys)/1e6)
	}

	takeSnapshot("before_runs")

	var results []measurement

	for i := range *runs {
		start := time.Now()

		names, err := scan.List(target)
		if err != nil {
			log.Fatalf("list: %v", err)
		}

		listDur := time.Since(start)

		start = time.Now()
		report := sequence.Analyze(names, sequence.Options{})
		analyzeDur := time.Since(start)

		results = append(results, measurement{
			list:    listDur,
			analyze: analyzeDur,
			found:   report.FoundCount,
			missing: len(report.Missing),
		})

		log.Printf("run %d/%d: list=%s analyze=%s found=%d missing=%d",
			i+1, *runs, listDur, analyzeDur, report.FoundCount, len(report.Missing))
	}

	takeSnapshot("after_runs")

	fmt.Println()
	fmt.Println("=== Scan Timing ===")
	fmt.Printf("%-6s %14s %14s %10s %10s\n", "Run", "List", "Analyze", "Found", "Missing")
	fmt.Println("------+--------------+--------------+----------+----------")

	var totalList, totalAnalyze time.Duration

	for i, r := range results {
		totalList += r.list
		totalAnalyze += r.analyze
		fmt.Printf("%-6d %14s %14s %10d %10d\n", i+1, r.list, r.analyze, r.found, r.missing)
	}

	fmt.Println()
	fmt.Printf("avg list=%s avg analyze=%s over %d run(s)\n",
		totalList/time.Duration(len(results)),
		totalAnalyze/time.Duration(len(results)),
		len(results))
}

// synthesize writes a frame sequence with periodic gaps and returns the
// folder path. The caller removes it.
func synthesize(frames, gapEvery int) (string, error) {
	dir, err := os.MkdirTemp("", "bench-scan-")
	if err != nil {
		return "", fmt.Errorf("mkdir temp: %w", err)
	}

	written := 0

	for i := 1; i <= frames; i++ {
		if gapEvery > 0 && i%gapEvery == 0 {
			continue
		}

		name := filepath.Join(dir, fmt.Sprintf("frame_%07d.png", i))
		if err := os.WriteFile(name, nil, 0o600); err != nil {
			os.RemoveAll(dir)

			return "", fmt.Errorf("write %s: %w", name, err)
		}

		written++
	}

	log.Printf("synthesized %d files in %s (every %dth frame dropped)", written, dir, gapEvery)

	return dir, nil
}
