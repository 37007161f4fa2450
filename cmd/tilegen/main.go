package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/OCharnyshevich/tilegen/internal/config"
	"github.com/OCharnyshevich/tilegen/internal/report"
	"github.com/OCharnyshevich/tilegen/internal/storage"
	"github.com/OCharnyshevich/tilegen/pkg/gen"
	"github.com/OCharnyshevich/tilegen/pkg/tilemap"
)

func main() {
	cfg := config.DefaultConfig()
	var src string

	flag.StringVar(&src, "config", "", "config file path or go-getter URL (default <out>/config.json)")
	flag.IntVar(&cfg.MapSize, "size", cfg.MapSize, "map size in chunks per side (1-100)")
	flag.StringVar(&cfg.Seed, "seed", cfg.Seed, "seed text, 0x-prefixed hex seed, or empty for random")
	flag.StringVar(&cfg.Generation.NoiseSource, "noise", cfg.Generation.NoiseSource, "coherent noise: perlin, simplex, opensimplex, aquilax")
	flag.StringVar(&cfg.OutDir, "out", cfg.OutDir, "output directory for the run report")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")
	flag.Parse()

	explicit := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	var level slog.LevelVar
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: &level}))
	if l, err := cfg.Level(); err == nil {
		level.Set(l)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, cfg, src, explicit, &level, log); err != nil {
		log.Error("tilegen failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, src string, explicit map[string]bool, level *slog.LevelVar, log *slog.Logger) error {
	st, err := storage.New(cfg.OutDir, log)
	if err != nil {
		return err
	}

	fromFile := config.DefaultConfig()
	if src != "" {
		err = st.FetchConfig(ctx, src, fromFile)
	} else {
		err = st.LoadConfig(fromFile)
	}
	if err != nil {
		return err
	}
	config.Merge(cfg, fromFile, explicit)

	l, err := cfg.Level()
	if err != nil {
		return err
	}
	level.Set(l)

	if cfg.OutDir != st.Dir() {
		if st, err = storage.New(cfg.OutDir, log); err != nil {
			return err
		}
	}

	seed, err := cfg.ResolveSeed()
	if err != nil {
		return fmt.Errorf("resolve seed: %w", err)
	}
	cfg.Generation.Seed = seed

	tm, err := tilemap.New(cfg.MapSize)
	if err != nil {
		return err
	}

	start := time.Now()
	if err := gen.NewGenerator(cfg.Generation, log).Generate(tm); err != nil {
		return err
	}

	sum := report.Summarize(tm)
	sum.Seed = "0x" + seed.String()
	sum.Elapsed = time.Since(start)
	sum.Generation = cfg.Generation
	log.Info("summary", sum.LogArgs()...)

	return st.SaveReport(sum)
}
