package main

import (
	"context"
	"fmt"
	"poe-recomb-sim/internal/loader"
	"poe-recomb-sim/internal/simulation"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type TaskResult struct {
	Scenario loader.Scenario
	Result   *simulation.Result
}

// processScenarios simulates every scenario on at most workerCount goroutines.
// Results keep the order of scenarios; the first failure cancels the rest.
func processScenarios(ctx context.Context, sim *simulation.Simulator, scenarios []loader.Scenario, workerCount int) ([]TaskResult, error) {
	results := make([]TaskResult, len(scenarios))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workerCount)

	for i, scenario := range scenarios {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			item1, item2, err := scenario.Pair()
			if err != nil {
				return err
			}

			log.Debug().Msgf("Simulating scenario %s: %s + %s", scenario.Name, item1, item2)
			result, err := sim.Simulate(item1, item2, scenario.ReportBase)
			if err != nil {
				return fmt.Errorf("scenario %q: %w", scenario.Name, err)
			}

			results[i] = TaskResult{Scenario: scenario, Result: result}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
