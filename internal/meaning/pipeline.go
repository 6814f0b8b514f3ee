package meaning

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/horasat/internal/chart"
	"github.com/mesh-intelligence/horasat/pkg/types"
)

// Tier thresholds and fixed tier scores.
const (
	// directThreshold: the category tier runs only when the direct tier
	// found fewer matches than this.
	directThreshold = 10
	// flexibleMinimum: the flexible tier runs only when the pooled
	// direct+category tiers stayed below this.
	flexibleMinimum = 3

	// categoryScore is the fixed elevated score of category-tier hits.
	categoryScore = 0.90
	// flexibleScore is the fixed low score of flexible-tier hits.
	flexibleScore = 0.45

	// Question re-ranking bonuses per shared token.
	headingTokenBonus = 0.02
	bodyTokenBonus    = 0.01
)

// Pipeline runs the progressive three-tier extraction strategy over the
// reading corpus. Tiers pool: later tiers add to earlier results, never
// replace them. The corpus is fetched once per extraction.
type Pipeline struct {
	tables     *chart.Tables
	store      types.ReadingStore
	extractor  *AttributeExtractor
	matcher    *MatchEngine
	scorer     *ScoringEngine
	log        *zap.Logger
	maxResults int
}

// NewPipeline creates a Pipeline over the shared tables and a reading
// store. maxResults caps the result length; zero means the default.
// A nil logger is replaced with a no-op logger.
func NewPipeline(tables *chart.Tables, store types.ReadingStore, maxResults int, log *zap.Logger) *Pipeline {
	if maxResults <= 0 {
		maxResults = types.DefaultMaxResults
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Pipeline{
		tables:     tables,
		store:      store,
		extractor:  NewAttributeExtractor(tables),
		matcher:    NewMatchEngine(),
		scorer:     NewScoringEngine(),
		log:        log,
		maxResults: maxResults,
	}
}

// Extract resolves the corpus against the BaseSet and returns the
// deduplicated, score-ordered, capped result. An empty result is valid
// output, not an error. Store failures propagate unchanged; a failure
// while processing a single reading skips that reading only.
func (p *Pipeline) Extract(bases types.BaseSet, question string) (types.ExtractionResult, error) {
	readings, err := p.store.GetAll()
	if err != nil {
		return types.ExtractionResult{}, fmt.Errorf("fetch corpus: %w", err)
	}

	// Tier 1: direct matching. Readings whose attributes are entirely
	// unresolvable are set aside for the flexible tier.
	var pool []types.Meaning
	var unresolved []types.ReadingRecord
	for _, r := range readings {
		m, ok, resolved := p.matchOne(r, bases)
		if !resolved {
			unresolved = append(unresolved, r)
			continue
		}
		if ok {
			pool = append(pool, m)
		}
	}
	directCount := len(pool)

	// Tier 2: category lookup per house, at a fixed elevated score.
	if directCount < directThreshold {
		tier2, err := p.categoryTier(bases)
		if err != nil {
			return types.ExtractionResult{}, err
		}
		pool = append(pool, tier2...)
	}

	// Tier 3: flexible heuristics. Allowed to produce nothing.
	if len(pool) < flexibleMinimum {
		tier3, err := p.flexibleTier(bases, unresolved)
		if err != nil {
			return types.ExtractionResult{}, err
		}
		pool = append(pool, tier3...)
	}

	items := dedupeByHeading(pool)
	sort.SliceStable(items, func(i, j int) bool { return items[i].Score > items[j].Score })
	if len(items) > p.maxResults {
		items = items[:p.maxResults]
	}

	if question != "" {
		rerankByQuestion(items, question)
	}

	p.log.Debug("extraction complete",
		zap.Int("corpus", len(readings)),
		zap.Int("direct", directCount),
		zap.Int("result", len(items)))

	return types.ExtractionResult{Items: items}, nil
}

// matchOne resolves one reading's attributes and runs the match engine.
// resolved is false when the reading carries no usable attributes at
// all. A panic while processing the reading skips it.
func (p *Pipeline) matchOne(r types.ReadingRecord, bases types.BaseSet) (m types.Meaning, ok, resolved bool) {
	defer func() {
		if rec := recover(); rec != nil {
			p.log.Warn("skipping reading",
				zap.String("reading_id", r.ID),
				zap.Any("cause", rec))
			m, ok, resolved = types.Meaning{}, false, true
		}
	}()

	attrs := p.extractor.Resolve(r)
	if !attrs.Base.Valid && !attrs.Position.Valid && !attrs.Value.Valid {
		return types.Meaning{}, false, false
	}

	match, hit := p.matcher.Matches(attrs, bases)
	if !hit {
		return types.Meaning{}, false, true
	}
	score := p.scorer.Score(match.Base, match.Position, types.SomeInt(match.Value))
	return p.buildMeaning(r, match, score), true, true
}

// categoryTier fetches readings tagged with each in-range house label
// and emits them at the fixed category score.
func (p *Pipeline) categoryTier(bases types.BaseSet) ([]types.Meaning, error) {
	var out []types.Meaning
	for base := types.BaseDay; base <= types.BaseSum; base++ {
		for position := 1; position <= types.PositionCount; position++ {
			label, err := p.tables.LabelFor(base, position)
			if err != nil {
				return nil, err
			}
			readings, err := p.store.GetByCategory(label)
			if err != nil {
				return nil, fmt.Errorf("fetch category %q: %w", label, err)
			}
			value, _ := bases.ValueAt(base, position)
			for _, r := range readings {
				match := Match{Base: base, Position: position, Value: value}
				out = append(out, p.buildMeaning(r, match, categoryScore))
			}
		}
	}
	return out, nil
}

// flexibleTier applies the looser heuristics: structured readings in
// good-influence houses, and permissive admission of readings whose
// attributes could not be resolved at all.
func (p *Pipeline) flexibleTier(bases types.BaseSet, unresolved []types.ReadingRecord) ([]types.Meaning, error) {
	var out []types.Meaning
	for base := types.BaseDay; base <= types.BaseSum; base++ {
		for position := 1; position <= types.PositionCount; position++ {
			label, err := p.tables.LabelFor(base, position)
			if err != nil {
				return nil, err
			}
			if p.tables.InfluenceFor(label) != chart.InfluenceGood {
				continue
			}
			readings, err := p.store.GetByBaseAndPosition(base, position)
			if err != nil {
				return nil, fmt.Errorf("fetch base %d position %d: %w", base, position, err)
			}
			value, _ := bases.ValueAt(base, position)
			for _, r := range readings {
				match := Match{Base: base, Position: position, Value: value}
				out = append(out, p.buildMeaning(r, match, flexibleScore))
			}
		}
	}

	for _, r := range unresolved {
		match, _ := p.matcher.Matches(types.ExtractedAttributes{}, bases)
		out = append(out, p.buildMeaning(r, match, flexibleScore))
	}
	return out, nil
}

// buildMeaning assembles the output item for a matched reading.
func (p *Pipeline) buildMeaning(r types.ReadingRecord, m Match, score float64) types.Meaning {
	label, _ := p.tables.LabelFor(m.Base, m.Position)
	return types.Meaning{
		Base:      m.Base,
		Position:  m.Position,
		Value:     m.Value,
		Label:     label,
		Heading:   r.Heading,
		Body:      r.Body,
		Category:  r.Category,
		Influence: p.tables.InfluenceFor(label),
		Score:     score,
	}
}

// dedupeByHeading keeps the highest-scoring item per heading, preserving
// first-seen order between groups.
func dedupeByHeading(items []types.Meaning) []types.Meaning {
	best := make(map[string]int, len(items))
	var out []types.Meaning
	for _, item := range items {
		if i, seen := best[item.Heading]; seen {
			if item.Score > out[i].Score {
				out[i] = item
			}
			continue
		}
		best[item.Heading] = len(out)
		out = append(out, item)
	}
	return out
}

// rerankByQuestion adds a shared-token bonus against the question and
// re-sorts. Heading overlap weighs more than body overlap.
func rerankByQuestion(items []types.Meaning, question string) {
	tokens := strings.Fields(strings.ToLower(question))
	if len(tokens) == 0 {
		return
	}
	for i := range items {
		heading := strings.ToLower(items[i].Heading)
		body := strings.ToLower(items[i].Body)
		for _, tok := range tokens {
			if strings.Contains(heading, tok) {
				items[i].Score += headingTokenBonus
			}
			if strings.Contains(body, tok) {
				items[i].Score += bodyTokenBonus
			}
		}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].Score > items[j].Score })
}
