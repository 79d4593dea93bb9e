package main

import (
	"context"
	"poe-recomb-sim/internal/cli"
	"poe-recomb-sim/internal/loader"
	"poe-recomb-sim/internal/models"
	"poe-recomb-sim/internal/simulation"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessScenarios_KeepsOrder(t *testing.T) {
	scenarios := []loader.Scenario{
		exampleScenario,
		{Name: "plain", Items: []loader.ItemSpec{
			{Base: "C", ILvl: 10, Prefixes: []loader.AffixSpec{{Desired: true}}},
			{Base: "D", ILvl: 12},
		}},
		{Name: "report-base", ReportBase: true, Items: exampleScenario.Items},
	}

	results, err := processScenarios(context.Background(), simulation.NewSimulator(), scenarios, 2)
	require.NoError(t, err)
	require.Len(t, results, 3)

	for i, r := range results {
		assert.Equal(t, scenarios[i].Name, r.Scenario.Name)
		assert.InDelta(t, 1.0, r.Result.Total(), 1e-9)
	}
	assert.Len(t, results[2].Result.Bases, 2)
}

func TestProcessScenarios_Failure(t *testing.T) {
	scenarios := []loader.Scenario{
		exampleScenario,
		{Name: "broken", Items: []loader.ItemSpec{{Base: "C", ILvl: 10}}},
	}

	_, err := processScenarios(context.Background(), simulation.NewSimulator(), scenarios, 1)
	assert.ErrorIs(t, err, loader.ErrInvalidScenario)
}

func TestExampleScenario(t *testing.T) {
	item1, item2, err := exampleScenario.Pair()
	require.NoError(t, err)

	assert.Equal(t, "0p2e/2s1e (A[84])", item1.String())
	assert.Equal(t, "2p1e/0s2e (B[86])", item2.String())
	assert.Equal(t, 86, simulation.CalcILvl(item1.ILvl, item2.ILvl))
	assert.Equal(t, 3, item1.Prefixes.Add(item2.Prefixes).Count(models.NewPrefix("", false, true)))
}

func TestLoadScenarios_ReportBaseFlag(t *testing.T) {
	scenarios, err := loadScenarios(cli.Flags{ReportBase: true})
	require.NoError(t, err)
	require.Len(t, scenarios, 1)
	assert.True(t, scenarios[0].ReportBase)
	assert.False(t, exampleScenario.ReportBase)
}
