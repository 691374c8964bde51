package router

import "strings"

// RecommendThresholds tune the advisory strategy recommendation.
type RecommendThresholds struct {
	WorkflowConfidence float64
	ShortMessageWords  int
	GeneralConfidence  float64
	LongMessageWords   int
	HybridConfidence   float64
	HybridCategories   int
	SequentialMin      float64
	SequentialMax      float64
	FallbackConfidence float64
}

// DefaultRecommendThresholds returns the tuned recommendation thresholds.
func DefaultRecommendThresholds() RecommendThresholds {
	return RecommendThresholds{
		WorkflowConfidence: 0.8,
		ShortMessageWords:  20,
		GeneralConfidence:  0.2,
		LongMessageWords:   50,
		HybridConfidence:   0.4,
		HybridCategories:   2,
		SequentialMin:      0.3,
		SequentialMax:      0.7,
		FallbackConfidence: 0.5,
	}
}

// Recommendation is an advisory strategy with the signals it was based on.
type Recommendation struct {
	Strategy   Strategy `json:"strategy"`
	WordCount  int      `json:"wordCount"`
	Confidence float64  `json:"confidence"`
	Categories int      `json:"categories"`
}

// Recommend suggests a strategy from message length and domain signals. It is
// advisory and never changes what Route decides.
func (e *Engine) Recommend(message string) Recommendation {
	res := e.domain.Classify(message)
	words := len(strings.Fields(message))
	return Recommendation{
		Strategy:   RecommendStrategy(words, res.Confidence, len(res.MatchedCategories), e.recommend),
		WordCount:  words,
		Confidence: res.Confidence,
		Categories: len(res.MatchedCategories),
	}
}

// RecommendStrategy applies the recommendation thresholds in order.
func RecommendStrategy(words int, confidence float64, categories int, t RecommendThresholds) Strategy {
	switch {
	case confidence > t.WorkflowConfidence && words < t.ShortMessageWords:
		return StrategyWorkflowOnly
	case confidence < t.GeneralConfidence && categories == 0:
		return StrategyGeneralOnly
	case words > t.LongMessageWords && confidence > t.HybridConfidence && categories > t.HybridCategories:
		return StrategyHybrid
	case confidence > t.SequentialMin && confidence < t.SequentialMax:
		return StrategySequential
	case confidence > t.FallbackConfidence:
		return StrategyWorkflowOnly
	default:
		return StrategyGeneralOnly
	}
}
