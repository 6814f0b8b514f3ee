// Package meaning implements the reading-match pipeline: attribute
// extraction from free-text headings, match and scoring engines, the
// three-tier extraction pipeline, and the result cache.
// See docs/ARCHITECTURE.md § Meaning Pipeline.
package meaning

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/horasat/internal/chart"
	"github.com/mesh-intelligence/horasat/pkg/types"
)

// Heading patterns. Parenthesised tokens carry house labels; a digit
// after a colon or standing alone carries the value.
var (
	parenRe      = regexp.MustCompile(`\(([^)]+)\)`)
	colonValueRe = regexp.MustCompile(`[:：]\s*([0-9]+)`)
	standaloneRe = regexp.MustCompile(`(?:^|[^0-9])([1-9])(?:[^0-9]|$)`)
)

// baseNameTokens maps literal base-name tokens to base indices. Ordered:
// longer, more specific tokens are tried first so "ฐานเดือน" wins over
// the bare "เดือน".
var baseNameTokens = []struct {
	token string
	base  int
}{
	{"ฐานวัน", types.BaseDay},
	{"ฐานเดือน", types.BaseMonth},
	{"ฐานปี", types.BaseYear},
	{"ฐานรวม", types.BaseSum},
	{"เดือน", types.BaseMonth},
	{"รวม", types.BaseSum},
	{"วัน", types.BaseDay},
	{"ปี", types.BaseYear},
	{"month", types.BaseMonth},
	{"year", types.BaseYear},
	{"day", types.BaseDay},
	{"sum", types.BaseSum},
}

// AttributeExtractor recovers a best-guess (base, position, value)
// triple from a reading's free text. It is a lossy compensator for a
// corpus where most records carry attributes only in the heading; every
// result is a guess and callers must treat it as one.
type AttributeExtractor struct {
	tables *chart.Tables
}

// NewAttributeExtractor creates an extractor over the shared tables.
func NewAttributeExtractor(tables *chart.Tables) *AttributeExtractor {
	return &AttributeExtractor{tables: tables}
}

// Extract derives attributes from the reading's heading, falling back to
// the first line of the body for the value. It never fails; unresolved
// fields come back absent or defaulted per the cross-fill rules.
func (e *AttributeExtractor) Extract(r types.ReadingRecord) types.ExtractedAttributes {
	var attrs types.ExtractedAttributes

	// Rule 1: the first parenthesised token recognized as a house label
	// fixes base and position together. Later tokens are ignored even
	// when they would also resolve.
	for _, m := range parenRe.FindAllStringSubmatch(r.Heading, -1) {
		token := strings.TrimSpace(m[1])
		if base, position, ok := e.tables.LookupLabel(token); ok {
			attrs.Base = types.SomeInt(base)
			attrs.Position = types.SomeInt(position)
			break
		}
	}

	// Rule 2: a literal base-name token fixes the base alone.
	if !attrs.Base.Valid {
		lower := strings.ToLower(r.Heading)
		for _, t := range baseNameTokens {
			if strings.Contains(lower, t.token) {
				attrs.Base = types.SomeInt(t.base)
				break
			}
		}
	}

	// Rule 3: value from the heading, else from the first body line.
	attrs.Value = findValue(r.Heading)
	if !attrs.Value.Valid {
		line := r.Body
		if i := strings.IndexByte(line, '\n'); i >= 0 {
			line = line[:i]
		}
		attrs.Value = findValue(line)
	}

	// Cross-fill. A value in position range stands in for a missing
	// position; a known position without a base defaults to the day
	// base; a bare value defaults both.
	switch {
	case attrs.Base.Valid && !attrs.Position.Valid:
		if attrs.Value.Valid && attrs.Value.Int >= 1 && attrs.Value.Int <= types.PositionCount {
			attrs.Position = types.SomeInt(attrs.Value.Int)
		}
	case attrs.Position.Valid && !attrs.Base.Valid:
		attrs.Base = types.SomeInt(types.BaseDay)
	case !attrs.Base.Valid && !attrs.Position.Valid && attrs.Value.Valid:
		attrs.Base = types.SomeInt(types.BaseDay)
		attrs.Position = types.SomeInt(1)
	}

	return attrs
}

// findValue looks for a digit after a colon first, then any standalone
// integer 1..9.
func findValue(s string) types.OptionalInt {
	if m := colonValueRe.FindStringSubmatch(s); m != nil {
		if v, err := strconv.Atoi(m[1]); err == nil && v >= 1 && v <= 9 {
			return types.SomeInt(v)
		}
	}
	if m := standaloneRe.FindStringSubmatch(s); m != nil {
		v, _ := strconv.Atoi(m[1])
		return types.SomeInt(v)
	}
	return types.OptionalInt{}
}

// Resolve returns the attributes to match a reading on: the structured
// columns when any are present, the extracted guess otherwise.
func (e *AttributeExtractor) Resolve(r types.ReadingRecord) types.ExtractedAttributes {
	if r.Base.Valid || r.Position.Valid || r.Value.Valid {
		return types.ExtractedAttributes{Base: r.Base, Position: r.Position, Value: r.Value}
	}
	return e.Extract(r)
}
