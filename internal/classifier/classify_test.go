package classifier_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"concierge-router/internal/classifier"
)

func filler(n int) string {
	return strings.TrimSpace(strings.Repeat("word ", n))
}

func TestClassify(t *testing.T) {
	c := classifier.New(nil)

	tests := []struct {
		name           string
		message        string
		wantRelevant   bool
		wantConfidence float64
		wantTerms      []string
		wantCategories []string
		wantReason     string
	}{
		{
			name:           "empty",
			message:        "",
			wantTerms:      []string{},
			wantCategories: []string{},
			wantReason:     classifier.ReasonEmpty,
		},
		{
			name:           "whitespace only",
			message:        "  \n\t ",
			wantTerms:      []string{},
			wantCategories: []string{},
			wantReason:     classifier.ReasonEmpty,
		},
		{
			name:           "unrelated question",
			message:        "What's the weather like today?",
			wantTerms:      []string{},
			wantCategories: []string{},
			wantReason:     classifier.ReasonNoMatch,
		},
		{
			name:           "phrase entity and keywords",
			message:        "Search for available Gulfstream aircraft for charter",
			wantRelevant:   true,
			wantConfidence: 1,
			wantTerms:      []string{"aircraft for charter", "gulfstream", "aircraft", "charter"},
			wantCategories: []string{"aircraft types", "charter services"},
			wantReason:     "Aviation content detected: aircraft for charter, gulfstream, aircraft and 1 more",
		},
		{
			name:           "exactly three terms has no tail",
			message:        "private jet flight",
			wantRelevant:   true,
			wantConfidence: 1,
			wantTerms:      []string{"private jet", "jet", "flight"},
			wantCategories: []string{"aircraft types", "charter services"},
			wantReason:     "Aviation content detected: private jet, jet, flight",
		},
		{
			name:           "single weak keyword in a long message",
			message:        filler(60) + " pilot",
			wantRelevant:   false,
			wantConfidence: 5 / (61 * 0.3),
			wantTerms:      []string{"pilot"},
			wantCategories: []string{"crew and operations"},
			wantReason:     "Weak aviation signals: pilot",
		},
		{
			name:           "two weak codes are relevant by distinct count",
			message:        filler(70) + " TEB HPN",
			wantRelevant:   true,
			wantConfidence: 6 / (72 * 0.3),
			wantTerms:      []string{"TEB", "HPN"},
			wantCategories: []string{},
			wantReason:     "Aviation content detected: TEB, HPN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.message)
			assert.Equal(t, tt.wantRelevant, got.IsRelevant)
			assert.InDelta(t, tt.wantConfidence, got.Confidence, 1e-9)
			assert.Equal(t, tt.wantTerms, got.MatchedTerms)
			assert.Equal(t, tt.wantCategories, got.MatchedCategories)
			assert.Equal(t, tt.wantReason, got.Reason)
		})
	}
}

func TestClassify_TermScoresInEveryTier(t *testing.T) {
	c := classifier.New(nil, classifier.WithThresholds(classifier.Thresholds{
		WordScale:           1,
		MinDenominator:      100,
		RelevanceConfidence: 0.3,
		MinDistinctTerms:    2,
	}))

	// netjets (entity 8) + jet card (phrase 10) + jet (keyword 5)
	got := c.Classify("netjets jet card")
	assert.InDelta(t, 23.0/100, got.Confidence, 1e-9)
	assert.Equal(t, []string{"jet card", "netjets", "jet"}, got.MatchedTerms)
}

func TestClassify_DuplicateTermsDeduplicated(t *testing.T) {
	got := classifier.New(nil).Classify("jet jet Jet and TEB TEB")
	assert.Equal(t, []string{"jet", "TEB"}, got.MatchedTerms)
	assert.Equal(t, []string{"aircraft types"}, got.MatchedCategories)
}

func TestClassify_OrdinaryCapitalsAreNotRelevant(t *testing.T) {
	c := classifier.New(nil)

	for _, msg := range []string{
		"Tell me about NASA",
		"WHAT IS THE TIME",
		"My diet has been lax lately",
		"Is the IRS open today?",
	} {
		t.Run(msg, func(t *testing.T) {
			got := c.Classify(msg)
			assert.False(t, got.IsRelevant)
			assert.Zero(t, got.Confidence)
			assert.Empty(t, got.MatchedTerms)
		})
	}
}

func TestClassify_Options(t *testing.T) {
	msg := filler(70) + " TEB HPN"

	strict := classifier.New(nil, classifier.WithThresholds(classifier.Thresholds{
		WordScale:           classifier.DefaultWordScale,
		MinDenominator:      classifier.DefaultMinDenominator,
		RelevanceConfidence: 0.9,
		MinDistinctTerms:    3,
	}))
	assert.False(t, strict.Classify(msg).IsRelevant)

	zero := classifier.New(nil, classifier.WithWeights(classifier.Weights{}))
	got := zero.Classify("private jet")
	assert.Zero(t, got.Confidence)
	assert.True(t, got.IsRelevant, "distinct terms still count")
}

func TestClassify_Deterministic(t *testing.T) {
	c := classifier.New(nil)
	msg := "Need a light jet from TEB to PBI with NetJets, customs clearance included"

	first := c.Classify(msg)
	for i := 0; i < 20; i++ {
		require.Equal(t, first, c.Classify(msg))
	}
}

func TestClassify_MonotonicConfidence(t *testing.T) {
	c := classifier.New(nil)
	msg := filler(40) + " flight"
	prev := c.Classify(msg).Confidence

	for _, phrase := range []string{"empty leg", "jet card", "block hours", "tail number", "landing fee"} {
		msg += " " + phrase
		got := c.Classify(msg).Confidence
		assert.GreaterOrEqual(t, got, prev, "appending %q decreased confidence", phrase)
		prev = got
	}
}

func TestClassify_ConfidenceBounded(t *testing.T) {
	c := classifier.New(nil)
	for _, msg := range []string{
		"private jet private jet empty leg gulfstream g650 TEB LFPB charter flight",
		"jet",
		"a",
	} {
		got := c.Classify(msg)
		assert.GreaterOrEqual(t, got.Confidence, 0.0)
		assert.LessOrEqual(t, got.Confidence, 1.0)
	}
}

func TestClassify_Concurrent(t *testing.T) {
	c := classifier.New(nil)
	msg := "Search for available Gulfstream aircraft for charter"
	want := c.Classify(msg)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, want, c.Classify(msg))
		}()
	}
	wg.Wait()
}
