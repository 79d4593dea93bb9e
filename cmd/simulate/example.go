package main

import "poe-recomb-sim/internal/loader"

// exampleScenario is run when no scenario file is given: a crafted-named item
// recombined with a multimod item.
var exampleScenario = loader.Scenario{
	Name:       "example",
	ReportBase: false,
	Items: []loader.ItemSpec{
		{
			Base: "A",
			ILvl: 84,
			Prefixes: []loader.AffixSpec{
				{Exclusive: true, Count: 2}, // Crafted Named
			},
			Suffixes: []loader.AffixSpec{
				{Desired: true, Count: 2},
				{Exclusive: true}, // Multimod
			},
		},
		{
			Base: "B",
			ILvl: 86,
			Prefixes: []loader.AffixSpec{
				{Desired: true, Count: 2},
				{Exclusive: true}, // Crafted Named
			},
			Suffixes: []loader.AffixSpec{
				{Exclusive: true}, // Multimod
				{Exclusive: true}, // Crafted Named
			},
		},
	},
}
