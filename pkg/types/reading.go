package types

// OptionalInt is an integer attribute that may be absent. Absent fields
// stay absent through the pipeline; zero is never used as a sentinel.
type OptionalInt struct {
	Int   int
	Valid bool
}

// SomeInt returns a present OptionalInt.
func SomeInt(v int) OptionalInt {
	return OptionalInt{Int: v, Valid: true}
}

// ReadingRecord is one stored interpretive text. Records sourced from the
// corpus are read-only. The base/position/value columns are present on
// some records; for the rest those attributes must be inferred from the
// heading text.
type ReadingRecord struct {
	ID       string      `json:"reading_id"`
	Heading  string      `json:"heading"`
	Body     string      `json:"body"`
	Base     OptionalInt `json:"-"`
	Position OptionalInt `json:"-"`
	Value    OptionalInt `json:"-"`
	Category string      `json:"category"` // house label tag, may be empty
}

// ExtractedAttributes is the best-guess (base, position, value) triple
// recovered from a reading's free text. Results are guesses: any field
// may be absent or defaulted, and callers must treat them accordingly.
type ExtractedAttributes struct {
	Base     OptionalInt
	Position OptionalInt
	Value    OptionalInt
}

// Meaning is one reading resolved against a BaseSet: the record, the
// (base, position, value) triple it matched on, its relevance score, and
// the influence classification of the house it fell in.
type Meaning struct {
	Base      int     `json:"base"`
	Position  int     `json:"position"`
	Value     int     `json:"value"`
	Label     string  `json:"label"` // house label for (base, position)
	Heading   string  `json:"heading"`
	Body      string  `json:"body"`
	Category  string  `json:"category"`
	Influence string  `json:"influence"`
	Score     float64 `json:"score"`
}

// ExtractionResult is the ordered output of the extraction pipeline:
// deduplicated by heading, sorted by score descending, length-capped.
type ExtractionResult struct {
	Items []Meaning `json:"items"`
}
