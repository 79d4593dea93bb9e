package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"poe-recomb-sim/internal/cache"
	"poe-recomb-sim/internal/cli"
	"poe-recomb-sim/internal/env"
	"poe-recomb-sim/internal/loader"
	"poe-recomb-sim/internal/report"
	"poe-recomb-sim/internal/simulation"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func loadScenarios(flags cli.Flags) ([]loader.Scenario, error) {
	scenarios := []loader.Scenario{exampleScenario}
	if flags.File != "" {
		file, err := loader.Load(flags.File)
		if err != nil {
			return nil, err
		}
		scenarios = file.Scenarios

		if flags.Scenario != "" {
			scenario, ok := file.Find(flags.Scenario)
			if !ok {
				return nil, fmt.Errorf("%w: no scenario named %q in %s", loader.ErrInvalidScenario, flags.Scenario, flags.File)
			}
			scenarios = []loader.Scenario{scenario}
		}
	}

	for i := range scenarios {
		scenarios[i].ReportBase = scenarios[i].ReportBase || flags.ReportBase
	}

	return scenarios, nil
}

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	environment, err := env.Get()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get environment variables")
	}
	zerolog.SetGlobalLevel(environment.Level())

	flags := cli.GetFlags()

	scenarios, err := loadScenarios(flags)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load scenarios")
	}

	selectionCache := cache.NewMemoryCache()
	if !environment.Memoize {
		selectionCache = cache.NewNoopCache()
	}
	logger := log.Logger
	sim := simulation.New(simulation.Config{Cache: selectionCache, Logger: &logger})

	workerCount := min(environment.Workers, len(scenarios))
	log.Debug().Msgf("Simulating %d scenarios on %d workers", len(scenarios), workerCount)

	results, err := processScenarios(context.Background(), sim, scenarios, workerCount)
	if err != nil {
		log.Fatal().Err(err).Msg("Simulation failed")
	}

	if flags.JSON {
		views := make(map[string]report.View, len(results))
		for _, r := range results {
			views[r.Scenario.Name] = report.NewView(r.Result)
		}

		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(views); err != nil {
			log.Fatal().Err(err).Msg("Failed to write results")
		}
		return
	}

	for _, r := range results {
		if len(results) > 1 {
			fmt.Printf("== %s ==\n", r.Scenario.Name)
		}
		if err := report.WriteText(os.Stdout, r.Result); err != nil {
			log.Fatal().Err(err).Msg("Failed to write results")
		}
	}

	hits, misses := sim.CacheStats()
	log.Debug().Msgf("Selection cache: %d hits, %d misses, %d entries", hits, misses, selectionCache.Length())
}
