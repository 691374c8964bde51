package classifier

// Scoring weights per match tier.
const (
	DefaultPhraseWeight  = 10.0
	DefaultEntityWeight  = 8.0
	DefaultKeywordWeight = 5.0
	DefaultCodeWeight    = 3.0
)

// Confidence normalization and relevance thresholds.
const (
	DefaultWordScale           = 0.3 // per-word contribution to the confidence denominator
	DefaultMinDenominator      = 5.0 // floor so short messages are not over-rewarded
	DefaultRelevanceConfidence = 0.3
	DefaultMinDistinctTerms    = 2
)

// Reason templates
const (
	ReasonEmpty        = "Empty or invalid message"
	ReasonNoMatch      = "No relevant content detected"
	ReasonRelevant     = "%s content detected: %s"
	ReasonRelevantMore = " and %d more"
	ReasonWeak         = "Weak %s signals: %s"

	maxReasonTerms = 3
)
