package subintent_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"concierge-router/internal/subintent"
)

func strPtr(s string) *string { return &s }

func TestClassify(t *testing.T) {
	c := subintent.Default()

	tests := []struct {
		name    string
		message string
		want    subintent.Result
	}{
		{
			name:    "empty",
			message: "",
			want:    subintent.Result{Intent: subintent.IntentGeneric},
		},
		{
			name:    "whitespace",
			message: " \t\n",
			want:    subintent.Result{Intent: subintent.IntentGeneric},
		},
		{
			name:    "person search with title and location",
			message: "Find executive assistants at private equity firms in New York",
			want: subintent.Result{
				IsMatch: true,
				Intent:  subintent.IntentPersonSearch,
				Parameters: subintent.Parameters{
					Title:     strPtr("executive assistants"),
					Locations: []string{"New York"},
				},
				RequiresExternalFetch: true,
				Confidence:            0.9,
			},
		},
		{
			name:    "person search based in",
			message: "Looking for CTOs based in San Francisco or from Austin.",
			want: subintent.Result{
				IsMatch: true,
				Intent:  subintent.IntentPersonSearch,
				Parameters: subintent.Parameters{
					Title:     strPtr("CTOs"),
					Locations: []string{"San Francisco", "Austin"},
				},
				RequiresExternalFetch: true,
				Confidence:            0.8,
			},
		},
		{
			name:    "organization search with size",
			message: "Show me companies with 50+ employees in Denver",
			want: subintent.Result{
				IsMatch: true,
				Intent:  subintent.IntentOrganizationSearch,
				Parameters: subintent.Parameters{
					CompanySize: strPtr("50+"),
				},
				RequiresExternalFetch: true,
				Confidence:            0.7,
			},
		},
		{
			name:    "organization search with size range",
			message: "Which firms have 50 - 200 employees?",
			want: subintent.Result{
				IsMatch:               true,
				Intent:                subintent.IntentOrganizationSearch,
				Parameters:            subintent.Parameters{CompanySize: strPtr("50-200")},
				RequiresExternalFetch: true,
				Confidence:            0.7,
			},
		},
		{
			name:    "organization search without size",
			message: "Tell me about the company",
			want: subintent.Result{
				IsMatch:               true,
				Intent:                subintent.IntentOrganizationSearch,
				RequiresExternalFetch: true,
				Confidence:            0.7,
			},
		},
		{
			name:    "sequence management",
			message: "Pause my outreach sequence for next week",
			want: subintent.Result{
				IsMatch:               true,
				Intent:                subintent.IntentSequenceManagement,
				RequiresExternalFetch: true,
				Confidence:            0.6,
			},
		},
		{
			name:    "lead generation with secondary keywords",
			message: "Export new leads from Apollo",
			want: subintent.Result{
				IsMatch:               true,
				Intent:                subintent.IntentLeadGeneration,
				RequiresExternalFetch: true,
				Confidence:            0.9,
			},
		},
		{
			name:    "aviation query is generic",
			message: "Search for available Gulfstream aircraft for charter",
			want:    subintent.Result{Intent: subintent.IntentGeneric},
		},
		{
			name:    "whole words only",
			message: "Who is the leader in private aviation?",
			want:    subintent.Result{Intent: subintent.IntentGeneric},
		},
		{
			name:    "person noun without trigger",
			message: "Our executives fly every week",
			want:    subintent.Result{Intent: subintent.IntentGeneric},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.message))
		})
	}
}

func TestClassify_FirstRuleWins(t *testing.T) {
	got := subintent.Default().Classify("Find contacts at companies running outreach campaigns")
	assert.Equal(t, subintent.IntentPersonSearch, got.Intent)
}

func TestClassify_LowConfidenceNeverFetches(t *testing.T) {
	c, err := subintent.New(subintent.WithRules([]subintent.Rule{
		{
			Intent:         subintent.IntentCampaignAnalysis,
			Terms:          []string{"roi"},
			BaseConfidence: 0.2,
			RequiresFetch:  true,
		},
	}))
	require.NoError(t, err)

	got := c.Classify("what was the campaign ROI")
	assert.Equal(t, subintent.IntentCampaignAnalysis, got.Intent)
	assert.InDelta(t, 0.2, got.Confidence, 1e-9)
	assert.False(t, got.IsMatch)
	assert.False(t, got.RequiresExternalFetch)
}

func TestClassify_WithoutSecondaryKeywords(t *testing.T) {
	c, err := subintent.New(subintent.WithSecondaryKeywords(nil))
	require.NoError(t, err)

	got := c.Classify("Find executive assistants at private equity firms in New York")
	assert.InDelta(t, subintent.PersonSearchConfidence, got.Confidence, 1e-9)
}

func TestNew_InvalidRules(t *testing.T) {
	tests := []struct {
		name string
		rule subintent.Rule
		want error
	}{
		{"unknown intent", subintent.Rule{Intent: "weather", Terms: []string{"rain"}}, subintent.ErrInvalidIntent},
		{"generic intent", subintent.Rule{Intent: subintent.IntentGeneric, Terms: []string{"hi"}}, subintent.ErrGenericRule},
		{"no terms", subintent.Rule{Intent: subintent.IntentLeadGeneration}, subintent.ErrEmptyRule},
		{"blank terms", subintent.Rule{Intent: subintent.IntentLeadGeneration, Terms: []string{" ", ""}, BaseConfidence: 0.7}, subintent.ErrEmptyRule},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := subintent.New(subintent.WithRules([]subintent.Rule{tt.rule}))
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestIntentType(t *testing.T) {
	for _, it := range subintent.AllIntentTypes() {
		assert.True(t, it.IsValid(), it.String())
	}
	assert.False(t, subintent.IntentType("unknown").IsValid())
	assert.Len(t, subintent.AllIntentTypes(), 6)
}

func TestParameters_Keys(t *testing.T) {
	assert.Empty(t, subintent.Parameters{}.Keys())
	p := subintent.Parameters{Title: strPtr("cto"), Locations: []string{"Paris"}, CompanySize: strPtr("10+")}
	assert.Equal(t, []string{subintent.ParamTitle, subintent.ParamLocations, subintent.ParamCompanySize}, p.Keys())
}

func TestClassify_DeterministicAndConcurrent(t *testing.T) {
	c := subintent.Default()
	msg := "Find VPs of sales at SaaS companies in Boston"
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
