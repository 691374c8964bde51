package router_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"concierge-router/internal/router"
)

func TestRecommendStrategy(t *testing.T) {
	th := router.DefaultRecommendThresholds()

	tests := []struct {
		name       string
		words      int
		confidence float64
		categories int
		want       router.Strategy
	}{
		{"short and confident", 10, 0.9, 1, router.StrategyWorkflowOnly},
		{"nothing matched", 10, 0.1, 0, router.StrategyGeneralOnly},
		{"long and broad", 60, 0.5, 3, router.StrategyHybrid},
		{"long but narrow", 60, 0.5, 2, router.StrategySequential},
		{"middling confidence", 30, 0.5, 1, router.StrategySequential},
		{"fallback workflow", 30, 0.75, 1, router.StrategyWorkflowOnly},
		{"long and confident", 25, 0.9, 1, router.StrategyWorkflowOnly},
		{"low with a category", 10, 0.1, 1, router.StrategyGeneralOnly},
		{"sequential lower bound is exclusive", 10, 0.3, 1, router.StrategyGeneralOnly},
		{"sequential upper bound is exclusive", 30, 0.7, 1, router.StrategyWorkflowOnly},
		{"short but not over threshold", 10, 0.8, 1, router.StrategyWorkflowOnly},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, router.RecommendStrategy(tt.words, tt.confidence, tt.categories, th))
		})
	}
}

func TestEngine_Recommend(t *testing.T) {
	e := router.New(nil, nil, nil)

	got := e.Recommend("Search for available Gulfstream aircraft for charter")
	assert.Equal(t, router.Recommendation{
		Strategy:   router.StrategyWorkflowOnly,
		WordCount:  7,
		Confidence: 1,
		Categories: 2,
	}, got)

	empty := e.Recommend("")
	assert.Equal(t, router.StrategyGeneralOnly, empty.Strategy)
	assert.Zero(t, empty.WordCount)
}

func TestEngine_RecommendIsAdvisory(t *testing.T) {
	e := router.New(nil, nil, nil, router.WithRecommendThresholds(router.RecommendThresholds{
		FallbackConfidence: -1,
	}))
	msg := "What's the weather like today?"

	assert.Equal(t, router.StrategyWorkflowOnly, e.Recommend(msg).Strategy)
	assert.Equal(t, router.StrategyGeneralOnly, e.Route(msg, "", nil).Strategy)
}
