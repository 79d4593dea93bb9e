package models

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Affix is a single item modifier. Two affixes with the same fields are
// indistinguishable.
type Affix struct {
	Name      string `json:"name" yaml:"name"`
	Desired   bool   `json:"desired" yaml:"desired"`
	Exclusive bool   `json:"exclusive" yaml:"exclusive"`
}

// Base returns the plain affix. Prefix and Suffix inherit it, so generic code
// can read the shared fields of any AffixType.
func (a Affix) Base() Affix {
	return a
}

// Key is a stable, injective string form of the affix.
func (a Affix) Key() string {
	return fmt.Sprintf("%s:%t:%t", strconv.Quote(a.Name), a.Desired, a.Exclusive)
}

// Prefix and Suffix tag an affix with the side of the item it rolls on.
type Prefix struct {
	Affix
}

type Suffix struct {
	Affix
}

func NewPrefix(name string, desired bool, exclusive bool) Prefix {
	return Prefix{Affix{Name: name, Desired: desired, Exclusive: exclusive}}
}

func NewSuffix(name string, desired bool, exclusive bool) Suffix {
	return Suffix{Affix{Name: name, Desired: desired, Exclusive: exclusive}}
}

// AffixType is satisfied by Affix, Prefix and Suffix; Base is the accessor
// bag operations use to reach Desired and Exclusive.
type AffixType interface {
	comparable
	Base() Affix
}

// AffixBag is an unordered collection of affixes with multiplicity. Bags are
// never modified in place; every operation returns a new bag.
type AffixBag[T AffixType] struct {
	counts map[T]int
}

type PrefixBag = AffixBag[Prefix]
type SuffixBag = AffixBag[Suffix]

func NewAffixBag[T AffixType](affixes ...T) AffixBag[T] {
	counts := make(map[T]int, len(affixes))
	for _, a := range affixes {
		counts[a]++
	}
	return AffixBag[T]{counts: counts}
}

func NewPrefixBag(prefixes ...Prefix) PrefixBag {
	return NewAffixBag(prefixes...)
}

func NewSuffixBag(suffixes ...Suffix) SuffixBag {
	return NewAffixBag(suffixes...)
}

// fromCounts drops every entry whose count is not positive.
func fromCounts[T AffixType](counts map[T]int) AffixBag[T] {
	normalised := make(map[T]int, len(counts))
	for a, n := range counts {
		if n > 0 {
			normalised[a] = n
		}
	}
	return AffixBag[T]{counts: normalised}
}

// Len counts every copy.
func (b AffixBag[T]) Len() int {
	total := 0
	for _, n := range b.counts {
		total += n
	}
	return total
}

// IsEmpty reports whether the bag holds no affixes.
func (b AffixBag[T]) IsEmpty() bool {
	return len(b.counts) == 0
}

// Count is the number of copies of affix.
func (b AffixBag[T]) Count(affix T) int {
	return b.counts[affix]
}

// Distinct returns every distinct affix once, ordered by Key.
func (b AffixBag[T]) Distinct() []T {
	distinct := make([]T, 0, len(b.counts))
	for a := range b.counts {
		distinct = append(distinct, a)
	}
	sort.Slice(distinct, func(i, j int) bool {
		return distinct[i].Base().Key() < distinct[j].Base().Key()
	})
	return distinct
}

// All returns every copy in the bag, grouped by affix and ordered by Key.
func (b AffixBag[T]) All() []T {
	all := make([]T, 0, b.Len())
	for _, a := range b.Distinct() {
		for i := 0; i < b.counts[a]; i++ {
			all = append(all, a)
		}
	}
	return all
}

// Add sums the counts of both bags.
func (b AffixBag[T]) Add(other AffixBag[T]) AffixBag[T] {
	counts := make(map[T]int, len(b.counts)+len(other.counts))
	for a, n := range b.counts {
		counts[a] += n
	}
	for a, n := range other.counts {
		counts[a] += n
	}
	return fromCounts(counts)
}

// Sub removes the affixes in other. Removing more copies than are present
// leaves zero copies rather than failing.
func (b AffixBag[T]) Sub(other AffixBag[T]) AffixBag[T] {
	counts := make(map[T]int, len(b.counts))
	for a, n := range b.counts {
		counts[a] = n - other.counts[a]
	}
	return fromCounts(counts)
}

// Without removes a single copy of affix.
func (b AffixBag[T]) Without(affix T) AffixBag[T] {
	return b.Sub(NewAffixBag(affix))
}

// With adds a single copy of affix.
func (b AffixBag[T]) With(affix T) AffixBag[T] {
	return b.Add(NewAffixBag(affix))
}

// Filter keeps the affixes for which keep returns true, with their counts.
func (b AffixBag[T]) Filter(keep func(T) bool) AffixBag[T] {
	counts := make(map[T]int, len(b.counts))
	for a, n := range b.counts {
		if keep(a) {
			counts[a] = n
		}
	}
	return fromCounts(counts)
}

// WithoutExclusive drops every exclusive affix.
func (b AffixBag[T]) WithoutExclusive() AffixBag[T] {
	return b.Filter(func(a T) bool {
		return !a.Base().Exclusive
	})
}

func (b AffixBag[T]) HasExclusive() bool {
	for a := range b.counts {
		if a.Base().Exclusive {
			return true
		}
	}
	return false
}

func (b AffixBag[T]) DesiredCount() int {
	desired := 0
	for a, n := range b.counts {
		if a.Base().Desired {
			desired += n
		}
	}
	return desired
}

func (b AffixBag[T]) ExtraCount() int {
	return b.Len() - b.DesiredCount()
}

// Equal reports whether both bags hold the same affixes with the same counts.
func (b AffixBag[T]) Equal(other AffixBag[T]) bool {
	if len(b.counts) != len(other.counts) {
		return false
	}
	for a, n := range b.counts {
		if other.counts[a] != n {
			return false
		}
	}
	return true
}

// Key is identical for bags with identical contents, regardless of the order
// the bags were built in.
func (b AffixBag[T]) Key() string {
	distinct := b.Distinct()
	parts := make([]string, 0, len(distinct))
	for _, a := range distinct {
		parts = append(parts, fmt.Sprintf("%s*%d", a.Base().Key(), b.counts[a]))
	}
	return "[" + strings.Join(parts, ",") + "]"
}

// AffixString summarises the bag as "{desired}{desiredID}{extra}{extraID}",
// leaving out the extra part when there are no undesired affixes.
func (b AffixBag[T]) AffixString(desiredID string, extraID string) string {
	s := fmt.Sprintf("%d%s", b.DesiredCount(), desiredID)
	if extra := b.ExtraCount(); extra != 0 {
		s += fmt.Sprintf("%d%s", extra, extraID)
	}
	return s
}

func (b AffixBag[T]) String() string {
	return b.AffixString("D", "e")
}

// Affixes is All with the side tag dropped.
func (b AffixBag[T]) Affixes() []Affix {
	all := b.All()
	affixes := make([]Affix, 0, len(all))
	for _, a := range all {
		affixes = append(affixes, a.Base())
	}
	return affixes
}

func (b AffixBag[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.Affixes())
}
