package truncate

// Strategy defines how text is truncated.
type Strategy int

const (
	// FromEnd removes content from the end (default).
	FromEnd Strategy = iota

	// FromMiddle removes content from the middle, keeping start and end.
	FromMiddle

	// FromStart removes content from the start.
	FromStart
)

// String returns the strategy name.
func (s Strategy) String() string {
	switch s {
	case FromEnd:
		return "end"
	case FromMiddle:
		return "middle"
	case FromStart:
		return "start"
	default:
		return "unknown"
	}
}

// DefaultEndSuffix is the default suffix for end truncation.
const DefaultEndSuffix = "..."

// DefaultMiddleSuffix is the default suffix for middle truncation.
const DefaultMiddleSuffix = "\n...[content truncated]...\n"

// DefaultStartSuffix is the default suffix for start truncation.
const DefaultStartSuffix = "..."

// Truncator truncates text to fit within a byte budget, marking the cut
// with a suffix. The suffix is counted against the budget.
type Truncator struct {
	strategy Strategy
	suffix   string
}

// New creates a truncator with the given strategy.
func New(strategy Strategy) *Truncator {
	suffix := DefaultEndSuffix
	switch strategy {
	case FromMiddle:
		suffix = DefaultMiddleSuffix
	case FromStart:
		suffix = DefaultStartSuffix
	}
	return &Truncator{
		strategy: strategy,
		suffix:   suffix,
	}
}

// NewFromEnd creates a truncator that removes content from the end.
func NewFromEnd() *Truncator {
	return New(FromEnd)
}

// NewFromMiddle creates a truncator that removes content from the middle.
func NewFromMiddle() *Truncator {
	return New(FromMiddle)
}

// NewFromStart creates a truncator that removes content from the start.
func NewFromStart() *Truncator {
	return New(FromStart)
}

// WithSuffix sets a custom suffix for truncation.
// An empty suffix makes the truncator cut silently.
func (t *Truncator) WithSuffix(suffix string) *Truncator {
	t.suffix = suffix
	return t
}

// Truncate reduces the text to at most maxBytes bytes.
// Returns the truncated text and whether truncation occurred.
//
// The result never contains a partial UTF-8 sequence introduced by the cut.
// If the suffix alone does not fit, the suffix itself is clipped.
func (t *Truncator) Truncate(text string, maxBytes int) (string, bool) {
	maxBytes = max(maxBytes, 0)
	if len(text) <= maxBytes {
		return text, false
	}

	switch t.strategy {
	case FromEnd:
		return t.truncateEnd(text, maxBytes), true
	case FromMiddle:
		return t.truncateMiddle(text, maxBytes), true
	case FromStart:
		return t.truncateStart(text, maxBytes), true
	default:
		return t.truncateEnd(text, maxBytes), true
	}
}

// Strategy returns the truncator's strategy.
func (t *Truncator) Strategy() Strategy {
	return t.strategy
}

// Suffix returns the truncator's suffix.
func (t *Truncator) Suffix() string {
	return t.suffix
}
