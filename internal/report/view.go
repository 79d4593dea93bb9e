package report

import (
	"fmt"
	"poe-recomb-sim/internal/models"
	"poe-recomb-sim/internal/simulation"
)

type ItemView struct {
	Summary     string         `json:"summary"`
	BaseName    string         `json:"base_name"`
	ILvl        int            `json:"ilvl"`
	PrefixLimit int            `json:"prefix_limit"`
	SuffixLimit int            `json:"suffix_limit"`
	Prefixes    []models.Affix `json:"prefixes"`
	Suffixes    []models.Affix `json:"suffixes"`
}

type OutcomeView struct {
	Probability float64  `json:"probability"`
	Percent     string   `json:"percent"`
	Item        ItemView `json:"item"`
}

type BaseView struct {
	BaseName    string        `json:"base_name"`
	ILvl        int           `json:"ilvl"`
	Probability float64       `json:"probability"`
	Outcomes    []OutcomeView `json:"outcomes,omitempty"`
}

// View is the JSON form of a simulation result.
type View struct {
	RunID          string     `json:"run_id"`
	Items          []ItemView `json:"items"`
	TotalPrefixes  int        `json:"total_prefixes"`
	TotalSuffixes  int        `json:"total_suffixes"`
	ReportBase     bool       `json:"report_base"`
	CandidateBases []BaseView `json:"candidate_bases"`
	Bases          []BaseView `json:"bases"`
	Total          float64    `json:"total"`
}

func NewItemView(item models.Item) ItemView {
	return ItemView{
		Summary:     item.AffixString(),
		BaseName:    item.BaseName,
		ILvl:        item.ILvl,
		PrefixLimit: item.PrefixLimit,
		SuffixLimit: item.SuffixLimit,
		Prefixes:    item.Prefixes.Affixes(),
		Suffixes:    item.Suffixes.Affixes(),
	}
}

func NewView(r *simulation.Result) View {
	view := View{
		RunID:          r.RunID,
		Items:          []ItemView{NewItemView(r.Item1), NewItemView(r.Item2)},
		TotalPrefixes:  r.Prefixes.Len(),
		TotalSuffixes:  r.Suffixes.Len(),
		ReportBase:     r.ReportBase,
		CandidateBases: make([]BaseView, 0, len(r.Candidates)),
		Bases:          make([]BaseView, 0, len(r.Bases)),
		Total:          r.Total(),
	}

	for _, c := range r.Candidates {
		view.CandidateBases = append(view.CandidateBases, BaseView{
			BaseName:    c.Value.BaseName,
			ILvl:        c.Value.ILvl,
			Probability: c.Probability,
		})
	}

	for _, b := range r.Bases {
		base := BaseView{
			BaseName:    b.Base.BaseName,
			ILvl:        b.Base.ILvl,
			Probability: b.Probability,
			Outcomes:    make([]OutcomeView, 0, b.Items.Len()),
		}
		for _, o := range b.Items.Entries() {
			base.Outcomes = append(base.Outcomes, OutcomeView{
				Probability: o.Probability,
				Percent:     fmt.Sprintf("%.2f", o.Probability*100.0),
				Item:        NewItemView(o.Value),
			})
		}
		view.Bases = append(view.Bases, base)
	}

	return view
}
