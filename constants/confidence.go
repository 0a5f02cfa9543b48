package constants

// Confidence is not a statistical score: the pipeline assigns fixed values
// that encode "a registered format matched" vs "nothing matched". Keep these
// ordered MatchedConfidence > ReviewThreshold > UnmatchedConfidence.
const (
	// MatchedConfidence is assigned when an active format matched the text.
	MatchedConfidence float32 = 0.85

	// UnmatchedConfidence is assigned when no active format matched; it must
	// sit below every threshold used for auto-acceptance.
	UnmatchedConfidence float32 = 0.15

	// ReviewThreshold is the cutoff below which a prediction is flagged for
	// human review.
	ReviewThreshold float32 = 0.60
)

// Defaults applied when a format carries no rule for an optional field.
const (
	DefaultBreakHours    float64 = 1
	DefaultOvertimeHours float64 = 0
)
