package simulation

import (
	"fmt"
	"poe-recomb-sim/internal/models"
)

// MakeAffixSelections returns the chance of drawing each distinct bag of count
// affixes from pool without replacement, every copy in the pool being equally
// likely. Drawing an exclusive affix removes every other exclusive affix from
// the rest of the draw.
func MakeAffixSelections[T models.AffixType](count int, pool models.AffixBag[T]) *Distribution[models.AffixBag[T]] {
	return makeAffixSelections(NewSimulator(), count, pool)
}

func makeAffixSelections[T models.AffixType](s *Simulator, count int, pool models.AffixBag[T]) *Distribution[models.AffixBag[T]] {
	size := pool.Len()
	if count <= 0 || size == 0 {
		selections := NewDistribution[models.AffixBag[T]]()
		selections.Add(models.NewAffixBag[T](), 1.0)
		return selections
	}

	key := selectionCacheKey(count, pool)
	if cached, ok := s.lookup(key); ok {
		return cached.(*Distribution[models.AffixBag[T]])
	}

	selections := NewDistribution[models.AffixBag[T]]()
	// copies of the same affix lead to identical sub-draws, so each distinct
	// affix is expanded once and weighted by its number of copies
	for _, affix := range pool.Distinct() {
		chance := float64(pool.Count(affix)) / float64(size)
		picked := models.NewAffixBag(affix)

		if count == 1 {
			selections.Add(picked, chance)
			continue
		}

		remaining := pool.Without(affix)
		if affix.Base().Exclusive {
			remaining = remaining.WithoutExclusive()
		}

		for _, next := range makeAffixSelections(s, count-1, remaining).Entries() {
			selections.Add(picked.Add(next.Value), chance*next.Probability)
		}
	}

	s.cache.Store(key, selections)
	return selections
}

// SelectAffixes draws from first and then from second. The number of affixes
// drawn from each pool is rolled from AffixChances using the pool's size. If
// the first draw holds an exclusive affix, no exclusive affix can be drawn from
// second.
func SelectAffixes[T1 models.AffixType, T2 models.AffixType](first models.AffixBag[T1], second models.AffixBag[T2]) (*Distribution[Pair[models.AffixBag[T1], models.AffixBag[T2]]], error) {
	return selectAffixes(NewSimulator(), first, second)
}

func selectAffixes[T1 models.AffixType, T2 models.AffixType](s *Simulator, first models.AffixBag[T1], second models.AffixBag[T2]) (*Distribution[Pair[models.AffixBag[T1], models.AffixBag[T2]]], error) {
	firstChances, err := CountChances(first.Len())
	if err != nil {
		return nil, fmt.Errorf("first affixes: %w", err)
	}
	// the second count is rolled on the full pool, even when exclusives are
	// filtered out of it below
	secondChances, err := CountChances(second.Len())
	if err != nil {
		return nil, fmt.Errorf("second affixes: %w", err)
	}

	firstSelections := NewDistribution[models.AffixBag[T1]]()
	for count, countChance := range firstChances {
		if countChance == 0 {
			continue
		}
		firstSelections.Merge(makeAffixSelections(s, count, first), countChance)
	}

	withoutExclusive := second.WithoutExclusive()
	selections := NewDistribution[Pair[models.AffixBag[T1], models.AffixBag[T2]]]()
	for _, f := range firstSelections.Entries() {
		pool := second
		if f.Value.HasExclusive() {
			pool = withoutExclusive
		}

		for count, countChance := range secondChances {
			if countChance == 0 {
				continue
			}
			for _, sel := range makeAffixSelections(s, count, pool).Entries() {
				selection := Pair[models.AffixBag[T1], models.AffixBag[T2]]{First: f.Value, Second: sel.Value}
				selections.Add(selection, f.Probability*countChance*sel.Probability)
			}
		}
	}

	return selections, nil
}
