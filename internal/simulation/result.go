package simulation

import "poe-recomb-sim/internal/models"

type BaseOutcome struct {
	Base        models.Item
	Probability float64
	// Items already carries the base probability.
	Items *Distribution[models.Item]
}

type Result struct {
	RunID      string
	Item1      models.Item
	Item2      models.Item
	Prefixes   models.PrefixBag
	Suffixes   models.SuffixBag
	ReportBase bool
	Candidates []Outcome[models.Item]
	Bases      []BaseOutcome
}

// Outcomes merges the outcomes of every base.
func (r *Result) Outcomes() *Distribution[models.Item] {
	outcomes := NewDistribution[models.Item]()
	for _, b := range r.Bases {
		outcomes.Merge(b.Items, 1.0)
	}
	return outcomes
}

func (r *Result) Total() float64 {
	return r.Outcomes().Total()
}

// DesiredAtLeast is the chance of ending with at least prefixes desired
// prefixes and suffixes desired suffixes.
func (r *Result) DesiredAtLeast(prefixes int, suffixes int) float64 {
	chance := 0.0
	for _, o := range r.Outcomes().Entries() {
		if o.Value.Prefixes.DesiredCount() >= prefixes && o.Value.Suffixes.DesiredCount() >= suffixes {
			chance += o.Probability
		}
	}
	return chance
}
