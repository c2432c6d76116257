// Package comparison implements a configurable semantic/structural
// comparison engine for decoded PFCP messages, matching two messages
// modulo spec-allowed variance (sequence numbers, SEIDs, IE ordering,
// timestamp drift) instead of requiring byte-for-byte identity.
package comparison

import "github.com/your-org/pfcp-codec/ie"

// IEMultiplicityMode controls how repeated instances of the same IE type
// are matched against each other.
type IEMultiplicityMode int

const (
	// ExactMatch requires the same multiset of values: every left instance
	// must pair with a distinct, equal right instance, order-independent.
	ExactMatch IEMultiplicityMode = iota
	// SetEquality requires the same ordered sequence of values.
	SetEquality
	// Lenient is satisfied if each side has at least one matching instance.
	Lenient
)

// OptionalIEMode controls how IE-presence mismatches between the two
// messages are resolved.
type OptionalIEMode int

const (
	// Strict requires identical presence: an IE type present on one side
	// only is always a difference.
	Strict OptionalIEMode = iota
	// IgnoreMissing compares only IE types present on both sides.
	IgnoreMissing
	// RequireLeft allows right to carry IE types left lacks, but not the
	// reverse (validates "right is a superset of left").
	RequireLeft
	// RequireRight allows left to carry IE types right lacks, but not the
	// reverse (validates "left is a superset of right").
	RequireRight
)

// Options configures a Compare call. The zero value differs from Default
// only in DeepCompareGrouped, which it leaves false; IEMultiplicityMode and
// OptionalIEMode zero values are ExactMatch/Strict, the same as Default.
type Options struct {
	// Header field filtering.
	IgnoreSequence bool
	IgnoreSEID     bool
	IgnorePriority bool

	// Timestamp handling.
	IgnoreTimestamps       bool
	TimestampToleranceSecs int
	HasTimestampTolerance  bool

	// IE filtering.
	IgnoredIETypes map[ie.Type]bool
	FocusIETypes   map[ie.Type]bool
	HasFocus       bool

	// IE ordering and multiplicity.
	StrictIEOrder      bool
	IEMultiplicityMode IEMultiplicityMode

	// Optional IE handling.
	OptionalIEMode OptionalIEMode

	// Grouped IE handling.
	DeepCompareGrouped bool

	// Semantic comparison.
	UseSemanticComparison bool
	SemanticIETypes       map[ie.Type]bool

	// Diff generation.
	GenerateDiff            bool
	MaxReportedDifferences  int
	HasMaxReportedDifferences bool
	IncludePayloadInDiff    bool
}

// Default returns the baseline comparison policy: header fields compared,
// no timestamp leniency, every IE compared byte-wise with exact
// multiplicity and strict presence, grouped IEs recursed into. GenerateDiff
// is left false; Compare does not read it and always fills Differences.
func Default() Options {
	return Options{
		DeepCompareGrouped: true,
		IEMultiplicityMode: ExactMatch,
		OptionalIEMode:     Strict,
	}
}

// shouldCompare reports whether t should take part in the comparison at
// all, per the ignore/focus filters.
func (o Options) shouldCompare(t ie.Type) bool {
	if o.IgnoredIETypes[t] {
		return false
	}
	if o.IgnoreTimestamps && ie.IsTimestamp(t) {
		return false
	}
	if o.HasFocus {
		return o.FocusIETypes[t]
	}
	return true
}

// useSemanticFor reports whether t should be compared with its
// type-specific semantic comparator rather than raw payload equality.
func (o Options) useSemanticFor(t ie.Type) bool {
	return o.UseSemanticComparison || o.SemanticIETypes[t]
}
