// Package gen turns an empty tile map into terrain. Generation is a fixed
// pipeline of passes, each drawing from its own PRNG stream split off a
// single master seed, so a map is a pure function of seed, config and size.
package gen

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/OCharnyshevich/tilegen/pkg/rng"
	"github.com/OCharnyshevich/tilegen/pkg/tilemap"
)

// Pass is one pipeline stage. Apply mutates the map in place.
type Pass interface {
	Name() string
	Apply(tm *tilemap.TileMap)
}

// Generator runs the pass pipeline for one Config.
type Generator struct {
	cfg *Config
	log *slog.Logger
}

// NewGenerator creates a Generator. A nil logger discards output.
func NewGenerator(cfg *Config, log *slog.Logger) *Generator {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Generator{cfg: cfg, log: log}
}

// Generate validates the config and fills tm. Every tile and biome is
// overwritten.
func Generate(tm *tilemap.TileMap, cfg *Config) error {
	return NewGenerator(cfg, nil).Generate(tm)
}

// Generate validates the config and runs every pass over tm in order.
func (g *Generator) Generate(tm *tilemap.TileMap) error {
	if err := g.cfg.Validate(); err != nil {
		return fmt.Errorf("invalid generation config: %w", err)
	}
	start := time.Now()
	passes, err := g.Passes()
	if err != nil {
		return err
	}
	g.log.Debug("passes ready", "count", len(passes), "elapsed", time.Since(start))

	for _, p := range passes {
		t := time.Now()
		p.Apply(tm)
		g.log.Debug("pass complete", "pass", p.Name(), "elapsed", time.Since(t))
	}
	g.log.Info("map generated",
		"size", tm.Size(),
		"seed", g.cfg.Seed.String(),
		"elapsed", time.Since(start),
	)
	return nil
}

// Passes builds the pipeline in run order. The master stream is split once
// per stream a pass consumes, in the same order every time.
func (g *Generator) Passes() ([]Pass, error) {
	cfg := g.cfg
	master := rng.New(cfg.Seed)

	temperature := master.Split()
	humidity := master.Split()
	biome, err := NewBiomePass(cfg, temperature, humidity)
	if err != nil {
		return nil, err
	}
	base, err := NewBaseTypePass(cfg, master.Split())
	if err != nil {
		return nil, err
	}
	mountains := NewMountainPass(cfg, master.Split())
	islands := NewIslandPass(cfg, master.Split())

	oilRNG := master.Split()
	oil := NewOilPass(cfg, oilRNG, master.Split())
	mineralRNG := master.Split()
	minerals := NewMineralPass(cfg, mineralRNG, master.Split())
	// Coal draws no positions; its first stream is reserved.
	_ = master.Split()
	coal := NewCoalPass(cfg, master.Split())

	return []Pass{
		biome,
		base,
		mountains,
		islands,
		NewHoleFillPass(cfg),
		NewDeepwaterPass(cfg),
		oil,
		minerals,
		coal,
	}, nil
}
