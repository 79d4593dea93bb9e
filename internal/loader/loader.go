package loader

import (
	"errors"
	"fmt"
	"os"
	"poe-recomb-sim/internal/models"

	"gopkg.in/yaml.v3"
)

var ErrInvalidScenario = errors.New("invalid scenario")

type AffixSpec struct {
	Name      string `yaml:"name" json:"name"`
	Desired   bool   `yaml:"desired" json:"desired"`
	Exclusive bool   `yaml:"exclusive" json:"exclusive"`
	// Count repeats the affix; zero means once.
	Count int `yaml:"count,omitempty" json:"count,omitempty"`
}

type ItemSpec struct {
	Base        string      `yaml:"base" json:"base"`
	ILvl        int         `yaml:"ilvl" json:"ilvl"`
	PrefixLimit *int        `yaml:"prefix_limit,omitempty" json:"prefix_limit,omitempty"`
	SuffixLimit *int        `yaml:"suffix_limit,omitempty" json:"suffix_limit,omitempty"`
	Prefixes    []AffixSpec `yaml:"prefixes" json:"prefixes"`
	Suffixes    []AffixSpec `yaml:"suffixes" json:"suffixes"`
}

type Scenario struct {
	Name       string     `yaml:"name" json:"name"`
	ReportBase bool       `yaml:"report_base" json:"report_base"`
	Items      []ItemSpec `yaml:"items" json:"items"`
}

type File struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// expand repeats each affix by its count. A side holding more than limit
// affixes is rejected before any copies are made.
func expand(specs []AffixSpec, limit int) ([]models.Affix, error) {
	total := 0
	for _, s := range specs {
		count := s.Count
		if count < 0 {
			return nil, fmt.Errorf("%w: affix %q has negative count %d", ErrInvalidScenario, s.Name, count)
		}
		if count == 0 {
			count = 1
		}
		if count > limit-total {
			return nil, fmt.Errorf("%w: affix %q overflows the slot limit %d", models.ErrInvalidItem, s.Name, limit)
		}
		total += count
	}

	affixes := make([]models.Affix, 0, total)
	for _, s := range specs {
		count := max(s.Count, 1)
		for i := 0; i < count; i++ {
			affixes = append(affixes, models.Affix{Name: s.Name, Desired: s.Desired, Exclusive: s.Exclusive})
		}
	}
	return affixes, nil
}

func limitOrDefault(limit *int, fallback int) int {
	if limit == nil {
		return fallback
	}
	return *limit
}

func (s ItemSpec) ToItem() (models.Item, error) {
	prefixLimit := limitOrDefault(s.PrefixLimit, models.DefaultPrefixLimit)
	suffixLimit := limitOrDefault(s.SuffixLimit, models.DefaultSuffixLimit)

	prefixAffixes, err := expand(s.Prefixes, prefixLimit)
	if err != nil {
		return models.Item{}, err
	}
	suffixAffixes, err := expand(s.Suffixes, suffixLimit)
	if err != nil {
		return models.Item{}, err
	}

	prefixes := make([]models.Prefix, 0, len(prefixAffixes))
	for _, a := range prefixAffixes {
		prefixes = append(prefixes, models.Prefix{Affix: a})
	}
	suffixes := make([]models.Suffix, 0, len(suffixAffixes))
	for _, a := range suffixAffixes {
		suffixes = append(suffixes, models.Suffix{Affix: a})
	}

	return models.NewItem(
		s.Base,
		s.ILvl,
		models.NewPrefixBag(prefixes...),
		models.NewSuffixBag(suffixes...),
		prefixLimit,
		suffixLimit,
	)
}

// Pair builds the two source items of the scenario.
func (s Scenario) Pair() (models.Item, models.Item, error) {
	if len(s.Items) != 2 {
		return models.Item{}, models.Item{}, fmt.Errorf("%w: %q lists %d items, expected 2", ErrInvalidScenario, s.Name, len(s.Items))
	}

	item1, err := s.Items[0].ToItem()
	if err != nil {
		return models.Item{}, models.Item{}, fmt.Errorf("scenario %q item 1: %w", s.Name, err)
	}
	item2, err := s.Items[1].ToItem()
	if err != nil {
		return models.Item{}, models.Item{}, fmt.Errorf("scenario %q item 2: %w", s.Name, err)
	}

	return item1, item2, nil
}

func Parse(data []byte) (File, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return File{}, fmt.Errorf("%w: %v", ErrInvalidScenario, err)
	}
	if len(file.Scenarios) == 0 {
		return File{}, fmt.Errorf("%w: no scenarios", ErrInvalidScenario)
	}

	for i := range file.Scenarios {
		if file.Scenarios[i].Name == "" {
			file.Scenarios[i].Name = fmt.Sprintf("scenario-%d", i+1)
		}
	}

	return file, nil
}

func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, err
	}
	return Parse(data)
}

// Find returns the scenario called name.
func (f File) Find(name string) (Scenario, bool) {
	for _, s := range f.Scenarios {
		if s.Name == name {
			return s, true
		}
	}
	return Scenario{}, false
}
