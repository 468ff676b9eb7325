package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/aretw0/notex"
)

func main() {
	count := flag.Int("count", 1000, "Number of notes to generate")
	keep := flag.Bool("keep", false, "Keep the benchmark directory after running")
	flag.Parse()

	// 1. Setup Namespace
	benchDir, err := os.MkdirTemp("", "notex_bench_")
	if err != nil {
		panic(err)
	}
	defer func() {
		if !*keep {
			os.RemoveAll(benchDir)
		} else {
			fmt.Printf("Keeping bench dir: %s\n", benchDir)
		}
	}()

	fmt.Printf("Generating %d notes in %s...\n", *count, benchDir)
	startGen := time.Now()

	// Direct writes simulate an existing directory filled by another tool.
	created := time.Now().Format("2006-01-02 15:04:05")
	for i := 1; i <= *count; i++ {
		content := fmt.Sprintf("Benchmark Note %d\nMedium\n%s\nThis is a test note.\nIt has two lines.", i, created)
		filename := filepath.Join(benchDir, fmt.Sprintf("note_%d.txt", i))
		if err := os.WriteFile(filename, []byte(content), 0644); err != nil {
			panic(err)
		}
	}
	fmt.Printf("Generation took: %v\n", time.Since(startGen))

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelWarn}))
	ctx := context.TODO()

	// Run 1: Load every file
	fmt.Println("Running Open (Load)...")
	startLoad := time.Now()
	store, err := notex.Open(ctx, benchDir, notex.WithLogger(logger))
	if err != nil {
		panic(err)
	}
	loadDuration := time.Since(startLoad)
	fmt.Printf("Load Result: %v (Items: %d)\n", loadDuration, store.Len())

	// Run 2: Create through the store (atomic write + index update per note)
	fmt.Println("Running Create...")
	startCreate := time.Now()
	for i := 0; i < *count; i++ {
		if _, err := store.Create(ctx, fmt.Sprintf("Created %d", i), notex.PriorityLow, "body"); err != nil {
			panic(err)
		}
	}
	createDuration := time.Since(startCreate)

	// Run 3: Reopen, simulating a new CLI command run.
	fmt.Println("Running Open (Reload)...")
	startReload := time.Now()
	store2, err := notex.Open(ctx, benchDir, notex.WithLogger(logger))
	if err != nil {
		panic(err)
	}
	reloadDuration := time.Since(startReload)

	fmt.Printf("--------------------------------------------------\n")
	fmt.Printf("Benchmark Result (%d notes):\n", *count)
	fmt.Printf("  Load:   %v\n", loadDuration)
	fmt.Printf("  Create: %v (%v/note)\n", createDuration, createDuration/time.Duration(max(*count, 1)))
	fmt.Printf("  Reload: %v (Items: %d)\n", reloadDuration, store2.Len())
	fmt.Printf("--------------------------------------------------\n")
}
