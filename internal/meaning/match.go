package meaning

import "github.com/mesh-intelligence/horasat/pkg/types"

// Match is the resolved (base, position, value) triple of a successful
// match against a BaseSet.
type Match struct {
	Base     int
	Position int
	Value    int
}

// MatchEngine decides whether a reading's attributes are compatible with
// a computed BaseSet. Pure predicate: out-of-range indices short-circuit
// to "no match", never to an error.
type MatchEngine struct{}

// NewMatchEngine creates a MatchEngine.
func NewMatchEngine() *MatchEngine {
	return &MatchEngine{}
}

// Matches reports whether attrs are compatible with the BaseSet and, on
// success, which (base, position, value) the match resolved to. Entirely
// absent attributes match permissively at the first position of the day
// base; callers decide which tier admits that.
func (m *MatchEngine) Matches(attrs types.ExtractedAttributes, bases types.BaseSet) (Match, bool) {
	switch {
	case attrs.Base.Valid:
		base := attrs.Base.Int
		seq, err := bases.Sequence(base)
		if err != nil {
			return Match{}, false
		}
		if attrs.Position.Valid {
			pos := attrs.Position.Int
			if pos < 1 || pos > types.PositionCount {
				return Match{}, false
			}
			actual := seq[pos-1]
			if attrs.Value.Valid && !valueMatches(attrs.Value.Int, actual) {
				return Match{}, false
			}
			return Match{Base: base, Position: pos, Value: actual}, true
		}
		if attrs.Value.Valid {
			for i, actual := range seq {
				if valueMatches(attrs.Value.Int, actual) {
					return Match{Base: base, Position: i + 1, Value: actual}, true
				}
			}
			return Match{}, false
		}
		return Match{Base: base, Position: 1, Value: seq[0]}, true

	case attrs.Position.Valid:
		pos := attrs.Position.Int
		if pos < 1 || pos > types.PositionCount {
			return Match{}, false
		}
		for base := types.BaseDay; base <= types.BaseSum; base++ {
			actual, err := bases.ValueAt(base, pos)
			if err != nil {
				return Match{}, false
			}
			if !attrs.Value.Valid || valueMatches(attrs.Value.Int, actual) {
				return Match{Base: base, Position: pos, Value: actual}, true
			}
		}
		return Match{}, false

	case attrs.Value.Valid:
		for base := types.BaseDay; base <= types.BaseSum; base++ {
			seq, _ := bases.Sequence(base)
			for i, actual := range seq {
				if valueMatches(attrs.Value.Int, actual) {
					return Match{Base: base, Position: i + 1, Value: actual}, true
				}
			}
		}
		return Match{}, false

	default:
		return Match{Base: types.BaseDay, Position: 1, Value: bases.Base1[0]}, true
	}
}

// valueMatches reports whether a claimed value is compatible with the
// actual sequence value: exact equality, or equal non-zero residues
// mod 9. Exact equality is checked first so 9 vs 9 matches directly
// rather than falling into the zero-residue case.
func valueMatches(value, actual int) bool {
	if value == actual {
		return true
	}
	return value%9 == actual%9 && value%9 != 0
}
