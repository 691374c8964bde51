package classifier

// Result is the outcome of classifying one message against a lexicon.
// Matched categories and terms are deduplicated and kept in first-seen order.
type Result struct {
	IsRelevant        bool     `json:"isRelevant"`
	Confidence        float64  `json:"confidence"`
	MatchedCategories []string `json:"matchedCategories"`
	MatchedTerms      []string `json:"matchedTerms"`
	Reason            string   `json:"reason"`
}

// Weights are the score added per matched term in each tier.
type Weights struct {
	Phrase  float64
	Entity  float64
	Keyword float64
	Code    float64
}

// Thresholds control confidence normalization and the relevance verdict.
type Thresholds struct {
	WordScale           float64
	MinDenominator      float64
	RelevanceConfidence float64
	MinDistinctTerms    int
}

// DefaultWeights returns the tuned tier weights.
func DefaultWeights() Weights {
	return Weights{
		Phrase:  DefaultPhraseWeight,
		Entity:  DefaultEntityWeight,
		Keyword: DefaultKeywordWeight,
		Code:    DefaultCodeWeight,
	}
}

// DefaultThresholds returns the tuned normalization and relevance thresholds.
func DefaultThresholds() Thresholds {
	return Thresholds{
		WordScale:           DefaultWordScale,
		MinDenominator:      DefaultMinDenominator,
		RelevanceConfidence: DefaultRelevanceConfidence,
		MinDistinctTerms:    DefaultMinDistinctTerms,
	}
}
