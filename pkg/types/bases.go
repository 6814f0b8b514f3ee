package types

import "errors"

// Base indices. Base 4 is the unreduced elementwise sum of bases 1-3.
const (
	BaseDay   = 1
	BaseMonth = 2
	BaseYear  = 3
	BaseSum   = 4

	BaseCount     = 4
	PositionCount = 7
)

// BaseSet errors.
var (
	ErrInvalidBase     = errors.New("base index out of range")
	ErrInvalidPosition = errors.New("position index out of range")
	ErrBaseNotPermuted = errors.New("base sequence is not a permutation of 1..7")
	ErrSumBaseMismatch = errors.New("sum base does not equal base1+base2+base3")
)

// BaseSet holds the four 7-element sequences derived from a birth date.
// Bases 1-3 are each a permutation of 1..7; base 4 is the positionwise
// sum of the first three (range 3..21, never reduced). A BaseSet is
// created once by the generator and immutable thereafter.
type BaseSet struct {
	Base1 [PositionCount]int `json:"base1"`
	Base2 [PositionCount]int `json:"base2"`
	Base3 [PositionCount]int `json:"base3"`
	Base4 [PositionCount]int `json:"base4"`
}

// Sequence returns the sequence for a 1-based base index.
// Returns ErrInvalidBase for indices outside 1..4.
func (b BaseSet) Sequence(base int) ([PositionCount]int, error) {
	switch base {
	case BaseDay:
		return b.Base1, nil
	case BaseMonth:
		return b.Base2, nil
	case BaseYear:
		return b.Base3, nil
	case BaseSum:
		return b.Base4, nil
	default:
		return [PositionCount]int{}, ErrInvalidBase
	}
}

// ValueAt returns the value at a 1-based (base, position) pair.
// Returns ErrInvalidBase or ErrInvalidPosition on out-of-range indices.
func (b BaseSet) ValueAt(base, position int) (int, error) {
	seq, err := b.Sequence(base)
	if err != nil {
		return 0, err
	}
	if position < 1 || position > PositionCount {
		return 0, ErrInvalidPosition
	}
	return seq[position-1], nil
}

// Validate checks the BaseSet invariants: bases 1-3 are permutations of
// 1..7 and base 4 is their positionwise sum.
func (b BaseSet) Validate() error {
	for _, seq := range [][PositionCount]int{b.Base1, b.Base2, b.Base3} {
		var seen [PositionCount + 1]bool
		for _, v := range seq {
			if v < 1 || v > PositionCount || seen[v] {
				return ErrBaseNotPermuted
			}
			seen[v] = true
		}
	}
	for i := 0; i < PositionCount; i++ {
		if b.Base4[i] != b.Base1[i]+b.Base2[i]+b.Base3[i] {
			return ErrSumBaseMismatch
		}
	}
	return nil
}

// BirthInfo carries display metadata produced alongside a BaseSet.
// The zodiac fields are informational only; they never feed matching.
type BirthInfo struct {
	Date         string `json:"date"` // YYYY-MM-DD
	WeekdayLabel string `json:"weekday_label"`
	DayValue     int    `json:"day_value"`
	Month        int    `json:"month"`
	BuddhistYear int    `json:"buddhist_year"`
	ZodiacAnimal string `json:"zodiac_animal"`
	ZodiacStart  int    `json:"zodiac_start"`
}

// PositionAnalysis describes one column of the chart: the three values
// from bases 1-3 at that position, their sum, and whether any repeat.
type PositionAnalysis struct {
	Position int    `json:"position"`
	Values   [3]int `json:"values"`
	Sum      int    `json:"sum"`
	Repeated bool   `json:"repeated"`
}

// Chart is the full output of the base generator: the sequences, the
// birth metadata, per-position analysis, and traditional names for
// special sum-base values where one exists.
type Chart struct {
	Info     BirthInfo                  `json:"info"`
	Bases    BaseSet                    `json:"bases"`
	Analysis [PositionCount]PositionAnalysis `json:"analysis"`
	SumNames [PositionCount]string      `json:"sum_names"`
}
