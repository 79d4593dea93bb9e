package simulation

import (
	"poe-recomb-sim/internal/cache"
	"poe-recomb-sim/internal/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	plain     = models.Affix{}
	desired   = models.Affix{Desired: true}
	exclusive = models.Affix{Exclusive: true}
)

func bag(affixes ...models.Affix) models.AffixBag[models.Affix] {
	return models.NewAffixBag(affixes...)
}

func assertDistribution[K Keyed](t *testing.T, expected map[string]float64, actual *Distribution[K]) {
	t.Helper()

	got := make(map[string]float64, actual.Len())
	for _, e := range actual.Entries() {
		got[e.Value.Key()] = e.Probability
	}

	assert.Len(t, got, len(expected))
	for key, p := range expected {
		assert.InDelta(t, p, got[key], 1e-9, key)
	}
}

func TestMakeAffixSelections(t *testing.T) {
	tests := []struct {
		name     string
		count    int
		pool     models.AffixBag[models.Affix]
		expected map[string]float64
	}{
		{
			name:  "whole pool",
			count: 2,
			pool:  bag(desired, plain),
			expected: map[string]float64{
				bag(desired, plain).Key(): 1,
			},
		},
		{
			name:  "duplicate copies merge",
			count: 2,
			pool:  bag(desired, plain, plain),
			expected: map[string]float64{
				bag(desired, plain).Key(): 2.0 / 3.0,
				bag(plain, plain).Key():   1.0 / 3.0,
			},
		},
		{
			name:  "single exclusive",
			count: 2,
			pool:  bag(desired, plain, exclusive),
			expected: map[string]float64{
				bag(desired, exclusive).Key(): 1.0 / 3.0,
				bag(plain, exclusive).Key():   1.0 / 3.0,
				bag(plain, desired).Key():     1.0 / 3.0,
			},
		},
		{
			name:  "empty pool",
			count: 2,
			pool:  bag(),
			expected: map[string]float64{
				bag().Key(): 1,
			},
		},
		{
			name:  "zero count",
			count: 0,
			pool:  bag(desired, plain),
			expected: map[string]float64{
				bag().Key(): 1,
			},
		},
		{
			name:  "single pick counts copies",
			count: 1,
			pool:  bag(desired, desired, plain),
			expected: map[string]float64{
				bag(desired).Key(): 2.0 / 3.0,
				bag(plain).Key():   1.0 / 3.0,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertDistribution(t, tt.expected, MakeAffixSelections(tt.count, tt.pool))
		})
	}
}

func TestMakeAffixSelections_ExclusivePruning(t *testing.T) {
	excl1 := models.Affix{Name: "crafted", Exclusive: true}
	excl2 := models.Affix{Name: "multimod", Exclusive: true}
	pool := bag(excl1, excl2, plain)

	selections := MakeAffixSelections(2, pool)
	for _, e := range selections.Entries() {
		exclusives := e.Value.Filter(func(a models.Affix) bool { return a.Exclusive }).Len()
		assert.LessOrEqual(t, exclusives, 1, e.Value.Key())
	}

	assertDistribution(t, map[string]float64{
		bag(excl1, plain).Key(): 0.5,
		bag(excl2, plain).Key(): 0.5,
	}, selections)
}

func TestMakeAffixSelections_ExhaustedPool(t *testing.T) {
	pool := bag(exclusive, models.Affix{Name: "other", Exclusive: true}, plain)

	// after an exclusive pick only the plain affix is left, so the draw
	// comes up short of three
	selections := MakeAffixSelections(3, pool)
	assert.InDelta(t, 1.0, selections.Total(), 1e-9)
	for _, e := range selections.Entries() {
		assert.Equal(t, 2, e.Value.Len())
	}
}

func TestMakeAffixSelections_SumsToOne(t *testing.T) {
	pools := []models.AffixBag[models.Affix]{
		bag(plain),
		bag(desired, desired, plain),
		bag(exclusive, exclusive, desired, plain),
		bag(exclusive, models.Affix{Name: "b", Exclusive: true}, desired, desired, plain, plain),
		bag(exclusive, exclusive, exclusive, exclusive, exclusive, exclusive),
	}

	for _, pool := range pools {
		for count := 0; count <= pool.Len(); count++ {
			total := MakeAffixSelections(count, pool).Total()
			assert.InDelta(t, 1.0, total, 1e-9, "count %d pool %s", count, pool.Key())
		}
	}
}

func TestMakeAffixSelections_Memoised(t *testing.T) {
	s := New(Config{Cache: cache.NewMemoryCache()})
	pool := bag(desired, plain, exclusive, plain)

	first := makeAffixSelections(s, 3, pool)
	_, misses := s.CacheStats()
	assert.Greater(t, misses, int64(0))

	second := makeAffixSelections(s, 3, pool)
	hits, missesAfter := s.CacheStats()
	assert.Greater(t, hits, int64(0))
	assert.Equal(t, misses, missesAfter)
	assert.Same(t, first, second)

	uncached := makeAffixSelections(New(Config{Cache: cache.NewNoopCache()}), 3, pool)
	assertDistribution(t, map[string]float64{
		bag(desired, plain, exclusive).Key(): first.Get(bag(desired, plain, exclusive)),
		bag(desired, plain, plain).Key():     first.Get(bag(desired, plain, plain)),
		bag(plain, plain, exclusive).Key():   first.Get(bag(plain, plain, exclusive)),
	}, uncached)
}

func TestSelectAffixes(t *testing.T) {
	first := bag(plain, exclusive)
	second := bag(plain, exclusive)

	selected, err := SelectAffixes(first, second)
	require.NoError(t, err)

	pair := func(a, b models.AffixBag[models.Affix]) string {
		return Pair[models.AffixBag[models.Affix], models.AffixBag[models.Affix]]{First: a, Second: b}.Key()
	}

	assertDistribution(t, map[string]float64{
		pair(bag(plain, exclusive), bag(plain)): 0.33,
		pair(bag(plain), bag(plain)):            0.67 * 0.5 * 0.67 * 0.5,
		pair(bag(plain), bag(exclusive)):        0.67 * 0.5 * 0.67 * 0.5,
		pair(bag(plain), bag(plain, exclusive)): 0.67 * 0.5 * 0.33,
		pair(bag(exclusive), bag(plain)):        0.67 * 0.5,
	}, selected)
	assert.InDelta(t, 1.0, selected.Total(), 1e-9)
}

func TestSelectAffixes_MixedTypes(t *testing.T) {
	prefixes := models.NewPrefixBag(models.NewPrefix("a", true, false))
	suffixes := models.NewSuffixBag()

	selected, err := SelectAffixes(prefixes, suffixes)
	require.NoError(t, err)

	assert.Equal(t, 2, selected.Len())
	assert.InDelta(t, 0.59, selected.Get(Pair[models.PrefixBag, models.SuffixBag]{First: prefixes, Second: suffixes}), 1e-9)
	assert.InDelta(t, 0.41, selected.Get(Pair[models.PrefixBag, models.SuffixBag]{First: models.NewPrefixBag(), Second: suffixes}), 1e-9)
}

func TestSelectAffixes_PoolTooLarge(t *testing.T) {
	pool := bag(plain, plain, plain, plain, plain, plain, plain)

	_, err := SelectAffixes(pool, bag())
	assert.ErrorIs(t, err, ErrUnsupportedPoolSize)

	_, err = SelectAffixes(bag(), pool)
	assert.ErrorIs(t, err, ErrUnsupportedPoolSize)
}
