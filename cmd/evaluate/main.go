// Package main evaluates a full grid snapshot:
// decode → adjacency index → engine → ranked purchase recommendations.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"parcel-econ-lab/internal/cache"
	"parcel-econ-lab/internal/config"
	"parcel-econ-lab/internal/domain"
	"parcel-econ-lab/internal/engine"
	"parcel-econ-lab/internal/grid"
	"parcel-econ-lab/internal/observability"
	"parcel-econ-lab/internal/snapshotio"
	"parcel-econ-lab/internal/storage/memory"
)

func main() {
	snapshotPath := flag.String("snapshot", "", "Path to snapshot JSON (required)")
	configPath := flag.String("config", "", "Path to economic config YAML (defaults apply when empty)")
	top := flag.Int("top", 20, "Number of recommendations to print")
	now := flag.Int64("now", time.Now().Unix(), "Evaluation time as unix seconds")
	verbose := flag.Bool("verbose", false, "Verbose output")
	flag.Parse()

	logger := log.New(os.Stderr, "[evaluate] ", log.LstdFlags)

	if *snapshotPath == "" {
		fmt.Fprintln(os.Stderr, "Usage: evaluate -snapshot <file> [-config <file>] [-top N]")
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatalf("config: %v", err)
	}

	snap, err := snapshotio.LoadFile(*snapshotPath)
	if err != nil {
		logger.Fatalf("snapshot: %v", err)
	}
	logger.Printf("snapshot %s: %d parcels, %d auctions, %d quotes",
		snap.Version[:12], len(snap.Parcels), len(snap.Auctions), len(snap.Quotes))

	// Install the snapshot the way a poll loop would, so the run exercises
	// the same replace path.
	store := memory.NewSnapshotStore()
	if err := store.Replace(context.Background(), snap); err != nil {
		logger.Fatalf("store: %v", err)
	}
	current, err := store.Current(context.Background())
	if err != nil {
		logger.Fatalf("store: %v", err)
	}

	// Quotes outlive individual snapshots in the poll loop; keep them in
	// their own store.
	quotes := memory.NewQuoteStore()
	for _, q := range current.Quotes {
		if err := quotes.Upsert(context.Background(), q); err != nil {
			logger.Fatalf("quotes: %v", err)
		}
	}

	metrics := observability.NewMetrics("parcel_econ_lab", nil)
	eng := engine.New(engine.Options{
		Snapshot: current,
		Config:   cfg,
		Index:    grid.BuildNeighborIndex(current),
		Cache:    cache.New(),
		Metrics:  metrics,
	})

	started := time.Now()
	recs := eng.EvaluateAll(*now)
	logger.Printf("evaluated %d candidates in %s", len(recs), time.Since(started))

	printed := 0
	fmt.Println("rank  location  (row,col)  price        bid          net          verdict")
	for _, rec := range recs {
		if printed >= *top {
			break
		}
		if !rec.IsRecommended && !*verbose {
			continue
		}
		row, col := grid.Decode(rec.Location)
		verdict := rec.Reason
		if rec.IsRecommended {
			verdict = "BUY: " + verdict
		}
		fmt.Printf("%4d  %8d  (%3d,%3d)  %-11.4f  %-11.4f  %-11.4f  %s\n",
			printed+1, rec.Location, row, col, rec.CurrentPrice, rec.RecommendedPrice, rec.NetProfit, verdict)
		printed++
	}
	if printed == 0 {
		fmt.Println("no recommended purchases in this snapshot")
	}

	if *verbose {
		all, err := quotes.All(context.Background())
		if err != nil {
			logger.Fatalf("quotes: %v", err)
		}
		for _, q := range all {
			fmt.Printf("quote %-8s %s  ratio %.6f  decimals %d\n",
				q.Symbol, q.TokenID, q.RatioOrDefault(), q.Decimals)
		}
		for loc := range current.Parcels {
			if status := eng.NukableStatus(loc); status != domain.NukableNone {
				row, col := grid.Decode(loc)
				fmt.Printf("nukable watch: (%d,%d) %s\n", row, col, status)
			}
		}
	}
}
