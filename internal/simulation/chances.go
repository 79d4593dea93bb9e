package simulation

import (
	"errors"
	"fmt"
)

const (
	MaxPoolSize   = 6
	MaxNewAffixes = 3
)

var ErrUnsupportedPoolSize = errors.New("unsupported affix pool size")

// AffixChances[total affixes][new affixes] = chance
var AffixChances = [MaxPoolSize + 1][MaxNewAffixes + 1]float64{
	//0mod 1mod  2mod  3mod
	{1.00, 0.00, 0.00, 0.00}, // 0 affixes
	{0.41, 0.59, 0.00, 0.00}, // 1 affix
	{0.00, 0.67, 0.33, 0.00}, // 2 affixes
	{0.00, 0.39, 0.52, 0.10}, // 3 affixes
	{0.00, 0.11, 0.59, 0.31}, // 4 affixes
	{0.00, 0.00, 0.43, 0.57}, // 5 affixes
	{0.00, 0.00, 0.28, 0.72}, // 6 affixes
}

// CountChances returns the chance of rolling 0..MaxNewAffixes affixes onto a
// side whose two source items carry total affixes between them.
func CountChances(total int) ([MaxNewAffixes + 1]float64, error) {
	if total < 0 || total > MaxPoolSize {
		return [MaxNewAffixes + 1]float64{}, fmt.Errorf("%w: %d (max %d)", ErrUnsupportedPoolSize, total, MaxPoolSize)
	}
	return AffixChances[total], nil
}
