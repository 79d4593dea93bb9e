package main

import (
	"poe-recomb-sim/internal/cache"
	"poe-recomb-sim/internal/env"
	"poe-recomb-sim/internal/router"
	"poe-recomb-sim/internal/simulation"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	environment, err := env.Get()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get environment variables")
	}
	zerolog.SetGlobalLevel(environment.Level())

	selectionCache, err := cache.NewLruCache(environment.CacheSize)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create selection cache")
	}
	if !environment.Memoize {
		selectionCache = cache.NewNoopCache()
	}
	logger := log.Logger
	sim := simulation.New(simulation.Config{Cache: selectionCache, Logger: &logger})

	cfg := router.Config{Simulator: sim}
	r := router.NewRouter(cfg)

	log.Info().Msgf("Listening on :%s", environment.APIPort)
	err = r.Start(":" + environment.APIPort)
	if err != nil {
		log.Fatal().Err(err).Msg("Server stopped")
	}
}
