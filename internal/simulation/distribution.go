package simulation

import "sort"

type Keyed interface {
	Key() string
}

type Outcome[K Keyed] struct {
	Value       K
	Probability float64
}

// Distribution maps outcomes to probability mass. Outcomes with equal keys
// share a single entry.
type Distribution[K Keyed] struct {
	entries map[string]*Outcome[K]
}

func NewDistribution[K Keyed]() *Distribution[K] {
	return &Distribution[K]{entries: make(map[string]*Outcome[K])}
}

func (d *Distribution[K]) Add(value K, probability float64) {
	key := value.Key()
	if e, ok := d.entries[key]; ok {
		e.Probability += probability
		return
	}
	d.entries[key] = &Outcome[K]{Value: value, Probability: probability}
}

func (d *Distribution[K]) Get(value K) float64 {
	if e, ok := d.entries[value.Key()]; ok {
		return e.Probability
	}
	return 0
}

func (d *Distribution[K]) Len() int {
	return len(d.entries)
}

func (d *Distribution[K]) Total() float64 {
	total := 0.0
	for _, e := range d.Entries() {
		total += e.Probability
	}
	return total
}

// Merge adds every outcome of other, scaled by weight.
func (d *Distribution[K]) Merge(other *Distribution[K], weight float64) {
	for _, e := range other.Entries() {
		d.Add(e.Value, e.Probability*weight)
	}
}

func (d *Distribution[K]) Scaled(weight float64) *Distribution[K] {
	scaled := NewDistribution[K]()
	scaled.Merge(d, weight)
	return scaled
}

// Entries returns the outcomes ordered by descending probability, ties broken
// by key.
func (d *Distribution[K]) Entries() []Outcome[K] {
	keys := make([]string, 0, len(d.entries))
	for k := range d.entries {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		pi, pj := d.entries[keys[i]].Probability, d.entries[keys[j]].Probability
		if pi != pj {
			return pi > pj
		}
		return keys[i] < keys[j]
	})

	entries := make([]Outcome[K], 0, len(keys))
	for _, k := range keys {
		entries = append(entries, *d.entries[k])
	}
	return entries
}

// Pair is a joint outcome of two draws.
type Pair[A Keyed, B Keyed] struct {
	First  A
	Second B
}

func (p Pair[A, B]) Key() string {
	return p.First.Key() + "|" + p.Second.Key()
}
