package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/ersonp/persona-core/internal/application/handlers"
	"github.com/ersonp/persona-core/internal/domain/entities"
	"github.com/ersonp/persona-core/internal/domain/services"
	"github.com/ersonp/persona-core/internal/infrastructure/config"
	"github.com/ersonp/persona-core/internal/infrastructure/namegen"
	"github.com/ersonp/persona-core/internal/infrastructure/random"
)

// Deps holds high-level dependencies for commands.
// Only handlers are exposed - services are internal.
type Deps struct {
	Config          *config.Config
	Seed            int64
	GenerateHandler *handlers.GenerateHandler
	TaxonomyHandler *handlers.TaxonomyHandler
}

// internalDeps holds all dependencies including low-level components.
// Used internally by helper functions.
type internalDeps struct {
	Deps
	rng       *rand.Rand
	source    *namegen.Generator
	stats     *services.StatService
	needs     *services.NeedService
	assembler *services.AssemblerService
}

// withDeps loads config and builds dependencies, then calls the provided
// function.
func withDeps(fn func(*Deps) error) error {
	return withInternalDeps(func(d *internalDeps) error {
		return fn(&d.Deps)
	})
}

// withInternalDeps provides access to all dependencies including low-level
// components. Used by commands that need direct service access.
func withInternalDeps(fn func(*internalDeps) error) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Flag beats config file; zero means "pick one".
	seed := globalSeed
	if seed == 0 {
		seed = cfg.Generation.Seed
	}
	if seed == 0 {
		seed, err = random.NewSeed()
		if err != nil {
			return fmt.Errorf("seeding generator: %w", err)
		}
	}
	rng := rand.New(rand.NewSource(seed))

	if cfg.Name.Separator != nil {
		entities.SetSeparator(*cfg.Name.Separator)
	}
	entities.SetCaseSensitive(cfg.Name.CaseSensitive)

	needs := services.NewNeedService()
	needs.LoadDefaults()
	for category, subtypes := range cfg.Taxonomy {
		t, err := entities.ParseNeedType(category)
		if err != nil {
			return fmt.Errorf("taxonomy config: %w", err)
		}
		needs.Register(t, subtypes...)
	}

	source := namegen.New(rng)
	stats := services.NewStatService(rng)
	assembler := services.NewAssemblerService(source, stats, needs, rng)

	deps := &internalDeps{
		Deps: Deps{
			Config:          cfg,
			Seed:            seed,
			GenerateHandler: handlers.NewGenerateHandler(assembler),
			TaxonomyHandler: handlers.NewTaxonomyHandler(needs),
		},
		rng:       rng,
		source:    source,
		stats:     stats,
		needs:     needs,
		assembler: assembler,
	}

	return fn(deps)
}

// withRNG provides direct access to the seeded random source.
func withRNG(fn func(*rand.Rand) error) error {
	return withInternalDeps(func(d *internalDeps) error {
		return fn(d.rng)
	})
}
