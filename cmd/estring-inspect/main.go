package main

// main.go implements the estring inspector CLI: it fetches the diagnostic
// snapshot from a target process's estring.Handler() endpoint and prints it
// either as pretty text or JSON, once or on a repeating interval.
//
// The target Go service is expected to expose:
//   GET /debug/estring/snapshot  — JSON payload, see pkg/estring.RegistrySnapshot.
//
// © 2025 estring authors. MIT License.

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
)

var version = "dev"

type options struct {
	target   string
	path     string
	json     bool
	watch    bool
	interval time.Duration
	version  bool
}

func parseFlags() *options {
	o := &options{}
	flag.StringVar(&o.target, "target", "http://localhost:6060", "base URL of the instrumented process")
	flag.StringVar(&o.path, "path", "/debug/estring/snapshot", "snapshot endpoint path")
	flag.BoolVar(&o.json, "json", false, "print raw JSON instead of a formatted table")
	flag.BoolVar(&o.watch, "watch", false, "poll the target repeatedly")
	flag.DurationVar(&o.interval, "interval", 2*time.Second, "polling interval when -watch is set")
	flag.BoolVar(&o.version, "version", false, "print the CLI version and exit")
	flag.Parse()
	return o
}

func main() {
	opts := parseFlags()

	if opts.version {
		fmt.Println(version)
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sig
		cancel()
	}()

	if opts.watch {
		ticker := time.NewTicker(opts.interval)
		defer ticker.Stop()
		for {
			if err := dumpOnce(ctx, opts); err != nil {
				fmt.Fprintln(os.Stderr, "error:", err)
			}
			select {
			case <-ticker.C:
				continue
			case <-ctx.Done():
				return
			}
		}
	}

	if err := dumpOnce(ctx, opts); err != nil {
		fatal(err)
	}
}

type shardSnapshot struct {
	Shard              int   `json:"shard"`
	Entries            int   `json:"entries"`
	ArenaCount         int   `json:"arena_count"`
	ArenaUsedBytes     int64 `json:"arena_used_bytes"`
	ArenaCapacityBytes int64 `json:"arena_capacity_bytes"`
}

type registrySnapshot struct {
	Shards       []shardSnapshot `json:"shards"`
	TotalEntries int             `json:"total_entries"`
	TotalBytes   int64           `json:"total_bytes"`
}

func dumpOnce(ctx context.Context, opts *options) error {
	snap, err := fetchSnapshot(ctx, opts.target, opts.path)
	if err != nil {
		return err
	}
	if opts.json {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(snap)
	}
	return prettyPrint(snap)
}

func fetchSnapshot(ctx context.Context, base, path string) (*registrySnapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+path, nil)
	if err != nil {
		return nil, err
	}
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", res.Status)
	}
	var snap registrySnapshot
	if err := json.NewDecoder(res.Body).Decode(&snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

func prettyPrint(snap *registrySnapshot) error {
	fmt.Printf("Shards touched: %d\n", len(snap.Shards))
	fmt.Printf("Total entries:  %d\n", snap.TotalEntries)
	fmt.Printf("Total reserved: %s\n", humanize.Bytes(uint64(snap.TotalBytes)))
	fmt.Println()
	for _, s := range snap.Shards {
		fmt.Printf("  shard %-3d entries=%-8d arenas=%-3d used=%-10s cap=%s\n",
			s.Shard, s.Entries, s.ArenaCount,
			humanize.Bytes(uint64(s.ArenaUsedBytes)),
			humanize.Bytes(uint64(s.ArenaCapacityBytes)))
	}
	return nil
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "estring-inspect:", err)
	os.Exit(1)
}
