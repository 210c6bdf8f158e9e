package lcfrs

import (
	"fmt"

	"github.com/talent-works/disco-dop/chart"
	"github.com/talent-works/disco-dop/grammar"
)

// InfDropThreshold is the FOM rejection cutoff in -log space (spec
// constant, preserved verbatim): candidates whose score exceeds this are
// discarded before admission, since the underlying probability has
// already underflowed double precision.
const InfDropThreshold = 300.0

// EstimateKind selects the shape of the outside-estimate tensor consulted
// by the optional figure-of-merit.
type EstimateKind int

const (
	// SX indexes the estimate tensor by (left, right, 0).
	SX EstimateKind = iota
	// SXlrgaps indexes the estimate tensor by (length, left+right, gaps).
	SXlrgaps
)

// EstimateTensor is the outside-estimate lookup consulted by the FOM.
// Grammar-side estimate construction is out of scope for this engine;
// callers supply whatever tensor their driver built.
type EstimateTensor interface {
	At(label grammar.Label, a, b, c int) float64
}

// Estimates pairs an EstimateKind with the tensor it indexes.
type Estimates struct {
	Kind   EstimateKind
	Tensor EstimateTensor
}

// Options configures a single Parse call. Use DefaultOptions as the
// starting point and layer Option values over it, mirroring
// dijkstra.Options / dijkstra.DefaultOptions.
type Options struct {
	// Tags, if non-nil, must have one entry per sentence token and
	// constrains which lexical/POS label may cover that position.
	Tags []string

	// Exhaustive, if true, continues the agenda loop after the goal item
	// is first admitted, retaining every suboptimal edge discovered for
	// every item (needed for k-best enumeration beyond the Viterbi
	// derivation). If false, Parse stops at the first admission of the
	// goal item.
	Exhaustive bool

	// Whitelist restricts which (label, span) chart items may be
	// admitted. A nil Whitelist (the default) restricts nothing.
	Whitelist chart.Whitelist

	// Splitprune enables whitelist pruning of discontinuous labels by
	// contiguous component, per spec §4.2 "splitprune mode".
	Splitprune bool

	// Markorigin selects per-component-position whitelist lookup
	// (WhitelistSplit) instead of a shared lookup (WhitelistSplitShared)
	// within splitprune mode.
	Markorigin bool

	// Estimates, if non-nil, adds an outside figure-of-merit to every
	// candidate's score and drops candidates scoring above
	// InfDropThreshold before admission.
	Estimates *Estimates

	// Beamwidth, if nonzero, caps the number of unary/binary-expansion
	// candidates admitted per distinct derived span (first-come,
	// not score-ordered — spec calls this "explicitly experimental/lossy").
	Beamwidth int
}

// Option is a functional option for Parse, following dijkstra.Option.
type Option func(*Options)

// DefaultOptions returns the zero-configuration Options: no tags, first-
// parse mode (not exhaustive), no whitelist, no estimate, no beam cap.
func DefaultOptions() Options {
	return Options{}
}

// WithTags supplies the per-position POS constraint.
func WithTags(tags []string) Option {
	return func(o *Options) { o.Tags = tags }
}

// WithExhaustive switches Parse from first-parse to exhaustive mode.
func WithExhaustive(exhaustive bool) Option {
	return func(o *Options) { o.Exhaustive = exhaustive }
}

// WithWhitelist installs a pruning table.
func WithWhitelist(w chart.Whitelist) Option {
	return func(o *Options) { o.Whitelist = w }
}

// WithSplitprune enables splitprune-mode whitelist projection for
// discontinuous labels.
func WithSplitprune(splitprune bool) Option {
	return func(o *Options) { o.Splitprune = splitprune }
}

// WithMarkorigin selects per-position splitprune lookup over shared
// lookup. Has no effect unless Splitprune is also set.
func WithMarkorigin(markorigin bool) Option {
	return func(o *Options) { o.Markorigin = markorigin }
}

// WithEstimates installs an outside figure-of-merit.
func WithEstimates(e Estimates) Option {
	return func(o *Options) { o.Estimates = &e }
}

// WithBeamwidth sets the first-come admission cap per derived span. Zero
// (the default) disables the cap. Panics on a negative value, mirroring
// dijkstra.WithMaxDistance's guard against a structurally invalid option.
func WithBeamwidth(beamwidth int) Option {
	return func(o *Options) {
		if beamwidth < 0 {
			panic("lcfrs: Beamwidth must be non-negative")
		}
		o.Beamwidth = beamwidth
	}
}

// Stats carries the diagnostic counters spec §6 describes as part of
// Parse's "diagnostic message": max/final agenda size, admitted items,
// distinct labels touched, total edges recorded, whitelist-blocked items,
// and reentry warnings (spec §9 Open Questions: instrument the defensive
// "not in agenda, better inside than chart" branch as a counter).
type Stats struct {
	MaxAgendaSize   int
	FinalAgendaSize int
	Admitted        int
	LabelsTouched   int
	TotalEdges      int
	Blocked         int
	ReentryWarnings int
}

// String renders Stats as the single-line diagnostic message spec §4.2
// describes ("a diagnostic message including agenda/chart/blocked
// counters").
func (s Stats) String() string {
	return fmt.Sprintf(
		"agenda(max=%d,final=%d) admitted=%d labels=%d edges=%d blocked=%d reentries=%d",
		s.MaxAgendaSize, s.FinalAgendaSize, s.Admitted, s.LabelsTouched, s.TotalEdges, s.Blocked, s.ReentryWarnings,
	)
}
