package lcfrs

import "errors"

// Sentinel errors returned by Parse. A non-nil error always pairs with
// chart.NONE as the returned goal item (spec: "no partial chart is ever
// returned as successful").
var (
	// ErrNotCovered indicates a sentence token has no matching lexical rule
	// (and, if tags were supplied, no tag fallback either).
	ErrNotCovered = errors.New("lcfrs: not covered")

	// ErrNoParse indicates the agenda emptied without ever admitting the
	// goal item (start label over the full sentence span).
	ErrNoParse = errors.New("lcfrs: no parse")

	// ErrSentenceTooLong indicates the sentence exceeds the wide span's
	// addressable width (SLOTS*64-1 positions). This is an invariant
	// violation in the caller, not an ordinary parse failure.
	ErrSentenceTooLong = errors.New("lcfrs: sentence exceeds wide span capacity")
)
