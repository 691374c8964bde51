package classifier

import (
	"fmt"
	"math"
	"strings"
)

// Classify scores message against the lexicon. It never fails: empty input
// yields a non-relevant result with zero confidence.
func (c *Classifier) Classify(message string) Result {
	trimmed := strings.TrimSpace(message)
	if trimmed == "" {
		return Result{
			MatchedCategories: []string{},
			MatchedTerms:      []string{},
			Reason:            ReasonEmpty,
		}
	}
	normalized := strings.ToLower(trimmed)

	terms := newOrderedSet()
	categories := newOrderedSet()
	var score float64

	for _, p := range c.lex.MatchPhrases(normalized) {
		score += c.weights.Phrase
		terms.add(p)
	}
	for _, e := range c.lex.MatchEntities(normalized) {
		score += c.weights.Entity
		terms.add(e)
	}
	for _, k := range c.lex.MatchKeywords(normalized) {
		score += c.weights.Keyword
		terms.add(k.Keyword)
		categories.add(k.Category)
	}
	for _, code := range c.lex.MatchCodes(trimmed) {
		score += c.weights.Code
		terms.add(code)
	}

	wordCount := len(strings.Fields(normalized))
	denominator := math.Max(float64(wordCount)*c.thresholds.WordScale, c.thresholds.MinDenominator)
	confidence := 0.0
	if denominator > 0 {
		confidence = math.Min(score/denominator, 1)
	}

	matched := terms.items()
	relevant := confidence >= c.thresholds.RelevanceConfidence || len(matched) >= c.thresholds.MinDistinctTerms

	return Result{
		IsRelevant:        relevant,
		Confidence:        confidence,
		MatchedCategories: categories.items(),
		MatchedTerms:      matched,
		Reason:            c.reason(relevant, matched),
	}
}

func (c *Classifier) reason(relevant bool, matched []string) string {
	if len(matched) == 0 {
		return ReasonNoMatch
	}
	if !relevant {
		return fmt.Sprintf(ReasonWeak, strings.ToLower(c.lex.Domain()), strings.Join(matched, ", "))
	}

	shown := matched
	if len(shown) > maxReasonTerms {
		shown = shown[:maxReasonTerms]
	}
	reason := fmt.Sprintf(ReasonRelevant, c.lex.Domain(), strings.Join(shown, ", "))
	if extra := len(matched) - len(shown); extra > 0 {
		reason += fmt.Sprintf(ReasonRelevantMore, extra)
	}
	return reason
}

// orderedSet deduplicates strings while keeping first-seen order.
type orderedSet struct {
	seen  map[string]bool
	order []string
}

func newOrderedSet() *orderedSet {
	return &orderedSet{seen: make(map[string]bool)}
}

func (s *orderedSet) add(v string) {
	if s.seen[v] {
		return
	}
	s.seen[v] = true
	s.order = append(s.order, v)
}

func (s *orderedSet) items() []string {
	if s.order == nil {
		return []string{}
	}
	return s.order
}
