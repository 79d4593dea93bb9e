package models

import (
	"errors"
	"fmt"
	"strconv"
)

const (
	DefaultPrefixLimit = 3
	DefaultSuffixLimit = 3
)

// ErrInvalidItem is returned when an item breaks its slot limits.
var ErrInvalidItem = errors.New("invalid item")

type Item struct {
	BaseName    string    `json:"base_name"`
	ILvl        int       `json:"ilvl"`
	Prefixes    PrefixBag `json:"prefixes"`
	Suffixes    SuffixBag `json:"suffixes"`
	PrefixLimit int       `json:"prefix_limit"`
	SuffixLimit int       `json:"suffix_limit"`
}

// NewItem builds an item, failing with ErrInvalidItem when either side holds
// more affixes than its limit allows.
func NewItem(baseName string, ilvl int, prefixes PrefixBag, suffixes SuffixBag, prefixLimit int, suffixLimit int) (Item, error) {
	item := Item{
		BaseName:    baseName,
		ILvl:        ilvl,
		Prefixes:    prefixes,
		Suffixes:    suffixes,
		PrefixLimit: prefixLimit,
		SuffixLimit: suffixLimit,
	}

	err := item.Validate()
	if err != nil {
		return Item{}, err
	}

	return item, nil
}

// NewBaseItem is an item without affixes using the default slot limits.
func NewBaseItem(baseName string, ilvl int) (Item, error) {
	return NewItem(baseName, ilvl, NewPrefixBag(), NewSuffixBag(), DefaultPrefixLimit, DefaultSuffixLimit)
}

func (item Item) Validate() error {
	if item.ILvl < 0 {
		return fmt.Errorf("%w: negative item level %d", ErrInvalidItem, item.ILvl)
	}
	if item.PrefixLimit < 0 || item.SuffixLimit < 0 {
		return fmt.Errorf("%w: negative slot limit %d/%d", ErrInvalidItem, item.PrefixLimit, item.SuffixLimit)
	}
	if n := item.Prefixes.Len(); n > item.PrefixLimit {
		return fmt.Errorf("%w: too many prefixes (%d > %d)", ErrInvalidItem, n, item.PrefixLimit)
	}
	if n := item.Suffixes.Len(); n > item.SuffixLimit {
		return fmt.Errorf("%w: too many suffixes (%d > %d)", ErrInvalidItem, n, item.SuffixLimit)
	}
	return nil
}

func (item Item) WithPrefixes(prefixes PrefixBag) (Item, error) {
	return NewItem(item.BaseName, item.ILvl, prefixes, item.Suffixes, item.PrefixLimit, item.SuffixLimit)
}

func (item Item) WithSuffixes(suffixes SuffixBag) (Item, error) {
	return NewItem(item.BaseName, item.ILvl, item.Prefixes, suffixes, item.PrefixLimit, item.SuffixLimit)
}

func (item Item) HasExclusive() bool {
	return item.Prefixes.HasExclusive() || item.Suffixes.HasExclusive()
}

// BaseString renders the base as "Name[ilvl]".
func (item Item) BaseString() string {
	return fmt.Sprintf("%s[%d]", item.BaseName, item.ILvl)
}

func (item Item) AffixString() string {
	return MakePrefixSuffixString(item.Prefixes, item.Suffixes)
}

func (item Item) String() string {
	return fmt.Sprintf("%s (%s)", item.AffixString(), item.BaseString())
}

func (item Item) Key() string {
	return strconv.Quote(item.BaseName) + fmt.Sprintf("[%d]%d/%d|", item.ILvl, item.PrefixLimit, item.SuffixLimit) +
		item.Prefixes.Key() + "|" + item.Suffixes.Key()
}

// MakePrefixSuffixString renders e.g. "2p1e/3s".
func MakePrefixSuffixString(prefixes PrefixBag, suffixes SuffixBag) string {
	return prefixes.AffixString("p", "e") + "/" + suffixes.AffixString("s", "e")
}
