// pathbench synthesizes a chunked world, builds the transition graph and
// hammers the engine with random path queries across parallel workers.
// Each worker owns an independent engine instance over the shared
// immutable world, matching the engine's concurrency contract.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/chunkpath/config"
	"github.com/udisondev/chunkpath/geo"
	"github.com/udisondev/chunkpath/hpath"
	"github.com/udisondev/chunkpath/internal/mapgen"
)

const DefaultConfigPath = "config/pathbench.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var (
		configPath = flag.String("config", DefaultConfigPath, "engine config path")
		queries    = flag.Int("queries", 10000, "path queries per worker")
		workers    = flag.Int("workers", 4, "parallel workers, one engine instance each")
		seed       = flag.Int64("seed", 1, "world generation seed")
		wallChance = flag.Float64("walls", 0.42, "initial wall probability")
	)
	flag.Parse()

	if p := os.Getenv("CHUNKPATH_CONFIG"); p != "" && *configPath == DefaultConfigPath {
		*configPath = p
	}
	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))

	slog.Info("pathbench starting",
		"grid", fmt.Sprintf("%dx%d", cfg.GridWidth, cfg.GridHeight),
		"chunk", fmt.Sprintf("%dx%d", cfg.ChunkWidth, cfg.ChunkHeight),
		"algorithm", cfg.LocalAlgorithm,
		"seed", *seed)

	world := mapgen.Generate(mapgen.Options{
		Width:       cfg.GridWidth,
		Height:      cfg.GridHeight,
		WallChance:  *wallChance,
		Iterations:  4,
		Seed:        *seed,
		BorderWalls: true,
	})
	store := mapgen.NewStore(world, cfg.GridWidth, cfg.GridHeight, geo.Transform{
		ChunkWidth:  cfg.ChunkWidth,
		ChunkHeight: cfg.ChunkHeight,
		TileSize:    cfg.TileSize,
	})

	// One throwaway instance to build and inspect the graph; the worker
	// instances rebuild from the same immutable world and will arrive at
	// the identical graph (rebuilds are deterministic).
	probe, err := hpath.New(cfg, store.Chunk)
	if err != nil {
		return fmt.Errorf("initializing engine: %w", err)
	}
	stats := probe.RebuildGraph().Stats()
	slog.Info("transition graph",
		"points", stats.Points,
		"edges", stats.Edges,
		"isolated", stats.Isolated,
		"max_degree", stats.MaxDegree)

	var found, unreachable atomic.Int64
	started := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	for w := range *workers {
		g.Go(func() error {
			engine, err := hpath.New(cfg, store.Chunk)
			if err != nil {
				return fmt.Errorf("worker %d init: %w", w, err)
			}
			engine.RebuildGraph()

			rng := rand.New(rand.NewSource(*seed + int64(w) + 1))
			for q := 0; q < *queries; q++ {
				if gctx.Err() != nil {
					return gctx.Err()
				}

				start := randomWorld(rng, cfg)
				end := randomWorld(rng, cfg)
				segs, err := engine.FindPath(start, end)
				if err != nil {
					return fmt.Errorf("worker %d query %d: %w", w, q, err)
				}
				if segs != nil {
					found.Add(1)
				} else {
					unreachable.Add(1)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	elapsed := time.Since(started)
	total := found.Load() + unreachable.Load()
	slog.Info("pathbench done",
		"queries", total,
		"found", found.Load(),
		"unreachable", unreachable.Load(),
		"elapsed", elapsed,
		"per_query", elapsed/time.Duration(max(total, 1)))
	return nil
}

func randomWorld(rng *rand.Rand, cfg config.Config) geo.World {
	return geo.World{
		X: rng.Float64() * float64(cfg.GridWidth) * cfg.TileSize,
		Y: rng.Float64() * float64(cfg.GridHeight) * cfg.TileSize,
	}
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
