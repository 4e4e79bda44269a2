package mainerror

// Option configures an Error during construction via From, FromText or Errorf.
type Option func(*Error)

const (
	// DefaultCauseMarker prefixes every cause line of a report.
	DefaultCauseMarker = "caused by: "

	// DefaultMaxDepth is the number of cause links followed before a report is truncated.
	DefaultMaxDepth = 64
)

// WithCauseMarker replaces the "caused by: " marker written before each cause.
func WithCauseMarker(marker string) Option { return func(e *Error) { e.marker = marker } }

// WithMaxDepth caps the number of cause links followed when rendering.
// Values below zero are treated as zero (only the top-level message is shown).
func WithMaxDepth(depth int) Option {
	return func(e *Error) { e.maxDepth = max(depth, 0) }
}

// WithCompactMessages trims, from each link's message, the text it repeats
// from its cause. fmt.Errorf("open config: %w", err) then renders as
// "open config" followed by a "caused by:" line for err, and pass-through
// wrappers whose message equals their cause's are skipped.
func WithCompactMessages() Option { return func(e *Error) { e.compact = true } }
