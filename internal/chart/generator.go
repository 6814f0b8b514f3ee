package chart

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/horasat/pkg/types"
)

// buddhistEraOffset converts between Gregorian and Buddhist-era years.
// Years above beInputThreshold are treated as already Buddhist-era and
// converted back before the offset is applied, so the conversion happens
// exactly once.
const (
	buddhistEraOffset = 543
	beInputThreshold  = 2300
)

// Generator produces base sequences from birth input. Pure and
// deterministic: identical input yields an identical Chart. Safe for
// concurrent use; it only reads the shared Tables.
type Generator struct {
	tables *Tables
	log    *zap.Logger
}

// NewGenerator creates a Generator over the given tables. A nil logger
// is replaced with a no-op logger.
func NewGenerator(tables *Tables, log *zap.Logger) *Generator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Generator{tables: tables, log: log}
}

// Generate derives the four base sequences and display metadata from the
// birth input. An explicit weekday label that contradicts the date's
// civil weekday returns ErrWeekdayMismatch; it is never auto-corrected.
func (g *Generator) Generate(in types.BirthInput) (types.Chart, error) {
	if in.Date.IsZero() {
		return types.Chart{}, types.ErrDateZero
	}

	derived := int(in.Date.Weekday()) + 1 // Sunday=1 .. Saturday=7

	dayValue := derived
	if in.WeekdayLabel != "" {
		explicit, ok := g.tables.WeekdayStart(in.WeekdayLabel)
		if !ok {
			return types.Chart{}, fmt.Errorf("%w: %q", types.ErrUnknownWeekday, in.WeekdayLabel)
		}
		if explicit != derived {
			return types.Chart{}, fmt.Errorf("%w: %q vs %s", types.ErrWeekdayMismatch,
				in.WeekdayLabel, in.Date.Format("2006-01-02"))
		}
		dayValue = explicit
	}
	label, _ := g.tables.WeekdayLabel(dayValue)

	month := int(in.Date.Month())
	monthValue, ok := g.tables.MonthStart(month)
	if !ok {
		return types.Chart{}, types.ErrInvalidPosition
	}

	gregYear := in.Date.Year()
	if gregYear > beInputThreshold {
		gregYear -= buddhistEraOffset
	}
	beYear := gregYear + buddhistEraOffset

	animal, start := g.tables.Zodiac(beYear)
	yearValue := (start-1)%types.PositionCount + 1

	bases := types.BaseSet{
		Base1: rotation(dayValue),
		Base2: rotation(monthValue),
		Base3: rotation(yearValue),
	}
	for i := 0; i < types.PositionCount; i++ {
		bases.Base4[i] = bases.Base1[i] + bases.Base2[i] + bases.Base3[i]
	}

	chart := types.Chart{
		Info: types.BirthInfo{
			Date:         in.Date.Format("2006-01-02"),
			WeekdayLabel: label,
			DayValue:     dayValue,
			Month:        month,
			BuddhistYear: beYear,
			ZodiacAnimal: animal,
			ZodiacStart:  start,
		},
		Bases: bases,
	}
	for i := 0; i < types.PositionCount; i++ {
		values := [3]int{bases.Base1[i], bases.Base2[i], bases.Base3[i]}
		chart.Analysis[i] = types.PositionAnalysis{
			Position: i + 1,
			Values:   values,
			Sum:      bases.Base4[i],
			Repeated: values[0] == values[1] || values[0] == values[2] || values[1] == values[2],
		}
		chart.SumNames[i] = g.tables.SumName(bases.Base4[i])
	}

	g.log.Debug("generated chart",
		zap.String("date", chart.Info.Date),
		zap.String("weekday", label),
		zap.String("zodiac", animal))

	return chart, nil
}

// rotation returns the cyclic rotation of 1..7 beginning at start.
func rotation(start int) [types.PositionCount]int {
	var seq [types.PositionCount]int
	for k := 0; k < types.PositionCount; k++ {
		seq[k] = (start-1+k)%types.PositionCount + 1
	}
	return seq
}
