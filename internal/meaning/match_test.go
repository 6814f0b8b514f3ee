package meaning

import (
	"testing"

	"github.com/mesh-intelligence/horasat/pkg/types"
)

// testBases is a fixed BaseSet for match tests:
//
//	Base1: 3 4 5 6 7 1 2
//	Base2: 1 2 3 4 5 6 7
//	Base3: 5 6 7 1 2 3 4
//	Base4: 9 12 15 11 14 10 13
func testBases() types.BaseSet {
	b := types.BaseSet{
		Base1: [7]int{3, 4, 5, 6, 7, 1, 2},
		Base2: [7]int{1, 2, 3, 4, 5, 6, 7},
		Base3: [7]int{5, 6, 7, 1, 2, 3, 4},
	}
	for i := 0; i < types.PositionCount; i++ {
		b.Base4[i] = b.Base1[i] + b.Base2[i] + b.Base3[i]
	}
	return b
}

func attrs(base, position, value int) types.ExtractedAttributes {
	var a types.ExtractedAttributes
	if base != 0 {
		a.Base = types.SomeInt(base)
	}
	if position != 0 {
		a.Position = types.SomeInt(position)
	}
	if value != 0 {
		a.Value = types.SomeInt(value)
	}
	return a
}

func TestMatches(t *testing.T) {
	m := NewMatchEngine()
	bases := testBases()

	tests := []struct {
		name      string
		attrs     types.ExtractedAttributes
		wantMatch Match
		wantOK    bool
	}{
		{
			name:      "full triple exact match",
			attrs:     attrs(1, 1, 3),
			wantMatch: Match{Base: 1, Position: 1, Value: 3},
			wantOK:    true,
		},
		{
			name:   "full triple value mismatch",
			attrs:  attrs(1, 1, 4),
			wantOK: false,
		},
		{
			name:      "mod-9 residue match: 12 claims, 3 actual",
			attrs:     attrs(1, 1, 12),
			wantMatch: Match{Base: 1, Position: 1, Value: 3},
			wantOK:    true,
		},
		{
			name:      "9 vs 9 matches exactly despite zero residue",
			attrs:     attrs(4, 1, 9),
			wantMatch: Match{Base: 4, Position: 1, Value: 9},
			wantOK:    true,
		},
		{
			name:   "claimed 9 never matches through residue",
			attrs:  attrs(4, 5, 9), // actual 14; 9 mod 9 is 0
			wantOK: false,
		},
		{
			name:      "base and value scan positions",
			attrs:     attrs(2, 0, 6),
			wantMatch: Match{Base: 2, Position: 6, Value: 6},
			wantOK:    true,
		},
		{
			name:      "base alone matches permissively at position 1",
			attrs:     attrs(3, 0, 0),
			wantMatch: Match{Base: 3, Position: 1, Value: 5},
			wantOK:    true,
		},
		{
			name:      "position alone resolves at the first base",
			attrs:     attrs(0, 4, 0),
			wantMatch: Match{Base: 1, Position: 4, Value: 6},
			wantOK:    true,
		},
		{
			name:      "position and value scan bases in order",
			attrs:     attrs(0, 2, 6),
			wantMatch: Match{Base: 3, Position: 2, Value: 6},
			wantOK:    true,
		},
		{
			name:      "value alone scans all bases",
			attrs:     attrs(0, 0, 12),
			wantMatch: Match{Base: 1, Position: 1, Value: 3},
			wantOK:    true,
		},
		{
			name:      "no attributes match permissively at base 1 position 1",
			attrs:     types.ExtractedAttributes{},
			wantMatch: Match{Base: 1, Position: 1, Value: 3},
			wantOK:    true,
		},
		{
			name:   "out-of-range base never matches",
			attrs:  attrs(5, 1, 3),
			wantOK: false,
		},
		{
			name:   "out-of-range position never matches",
			attrs:  attrs(1, 8, 3),
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := m.Matches(tt.attrs, bases)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.wantMatch {
				t.Errorf("match = %+v, want %+v", got, tt.wantMatch)
			}
		})
	}
}

func TestValueMatches(t *testing.T) {
	tests := []struct {
		value, actual int
		want          bool
	}{
		{3, 3, true},
		{12, 3, true},  // 12 % 9 == 3
		{3, 12, true},  // symmetric
		{9, 9, true},   // exact, despite residue 0
		{9, 18, false}, // residue 0 never matches across values
		{18, 9, false},
		{4, 3, false},
	}
	for _, tt := range tests {
		if got := valueMatches(tt.value, tt.actual); got != tt.want {
			t.Errorf("valueMatches(%d,%d) = %v, want %v", tt.value, tt.actual, got, tt.want)
		}
	}
}
