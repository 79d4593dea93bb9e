package simulation

import (
	"fmt"
	"math"
	"poe-recomb-sim/internal/models"

	"github.com/google/uuid"
)

const (
	PlaceholderBaseName = "X"
	PlaceholderILvl     = 100
)

// CalcILvl is the item level of the recombined base.
func CalcILvl(ilvl1 int, ilvl2 int) int {
	return int(math.Floor(math.Min(float64(ilvl1+ilvl2)/2+2, float64(max(ilvl1, ilvl2)))))
}

// MakeBases returns the two candidate bases, one per source item, each at the
// recombined item level.
func MakeBases(item1 models.Item, item2 models.Item) (*Distribution[models.Item], error) {
	ilvl := CalcILvl(item1.ILvl, item2.ILvl)
	bases := NewDistribution[models.Item]()

	for _, source := range []models.Item{item1, item2} {
		base, err := models.NewItem(source.BaseName, ilvl, models.NewPrefixBag(), models.NewSuffixBag(), source.PrefixLimit, source.SuffixLimit)
		if err != nil {
			return nil, err
		}
		bases.Add(base, 0.5)
	}

	return bases, nil
}

// MakeAffixes resolves the affixes of base. Prefixes-first and suffixes-first
// orderings are equally likely.
func (s *Simulator) MakeAffixes(base models.Item, prefixes models.PrefixBag, suffixes models.SuffixBag) (*Distribution[models.Item], error) {
	items := NewDistribution[models.Item]()

	prefixFirst, err := selectAffixes(s, prefixes, suffixes)
	if err != nil {
		return nil, err
	}
	for _, o := range prefixFirst.Entries() {
		item, err := models.NewItem(base.BaseName, base.ILvl, o.Value.First, o.Value.Second, base.PrefixLimit, base.SuffixLimit)
		if err != nil {
			return nil, err
		}
		items.Add(item, 0.5*o.Probability)
	}

	suffixFirst, err := selectAffixes(s, suffixes, prefixes)
	if err != nil {
		return nil, err
	}
	for _, o := range suffixFirst.Entries() {
		item, err := models.NewItem(base.BaseName, base.ILvl, o.Value.Second, o.Value.First, base.PrefixLimit, base.SuffixLimit)
		if err != nil {
			return nil, err
		}
		items.Add(item, 0.5*o.Probability)
	}

	return items, nil
}

func MakeAffixes(base models.Item, prefixes models.PrefixBag, suffixes models.SuffixBag) (*Distribution[models.Item], error) {
	return NewSimulator().MakeAffixes(base, prefixes, suffixes)
}

// Simulate computes every item that recombining item1 and item2 can produce.
// Unless reportBase is set, the outcomes are resolved on a single placeholder
// base and only the candidate bases' levels are kept.
func (s *Simulator) Simulate(item1 models.Item, item2 models.Item, reportBase bool) (*Result, error) {
	if err := item1.Validate(); err != nil {
		return nil, fmt.Errorf("item 1: %w", err)
	}
	if err := item2.Validate(); err != nil {
		return nil, fmt.Errorf("item 2: %w", err)
	}

	result := &Result{
		RunID:      uuid.New().String(),
		Item1:      item1,
		Item2:      item2,
		Prefixes:   item1.Prefixes.Add(item2.Prefixes),
		Suffixes:   item1.Suffixes.Add(item2.Suffixes),
		ReportBase: reportBase,
	}

	candidates, err := MakeBases(item1, item2)
	if err != nil {
		return nil, err
	}
	result.Candidates = candidates.Entries()

	bases := candidates
	if !reportBase {
		placeholder, err := models.NewBaseItem(PlaceholderBaseName, PlaceholderILvl)
		if err != nil {
			return nil, err
		}
		bases = NewDistribution[models.Item]()
		bases.Add(placeholder, 1.0)
	}

	for _, base := range bases.Entries() {
		items, err := s.MakeAffixes(base.Value, result.Prefixes, result.Suffixes)
		if err != nil {
			return nil, fmt.Errorf("base %s: %w", base.Value.BaseString(), err)
		}

		result.Bases = append(result.Bases, BaseOutcome{
			Base:        base.Value,
			Probability: base.Probability,
			Items:       items.Scaled(base.Probability),
		})
	}

	if e := s.logger.Debug(); e.Enabled() {
		hits, misses := s.CacheStats()
		e.Str("run_id", result.RunID).
			Str("item1", item1.String()).
			Str("item2", item2.String()).
			Int("outcomes", result.Outcomes().Len()).
			Int64("cache_hits", hits).
			Int64("cache_misses", misses).
			Msg("simulation complete")
	}

	return result, nil
}

func Simulate(item1 models.Item, item2 models.Item, reportBase bool) (*Result, error) {
	return NewSimulator().Simulate(item1, item2, reportBase)
}
