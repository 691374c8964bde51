package subintent

import (
	"math"
	"strings"
)

// Classify runs the ordered rules over message and extracts parameters for
// the winning intent. It never fails: input matching no rule is generic.
func (c *Classifier) Classify(message string) Result {
	original := strings.TrimSpace(message)
	normalized := strings.ToLower(original)

	rule, ok := c.match(normalized)
	if !ok {
		return Result{Intent: IntentGeneric}
	}

	confidence := rule.BaseConfidence
	if c.secondary != nil {
		hits := len(c.secondary.FindAllStringIndex(normalized, -1))
		confidence += SecondaryKeywordBoost * float64(hits)
	}
	confidence = math.Round(math.Min(confidence, MaxConfidence)*100) / 100

	isMatch := confidence > MatchThreshold
	return Result{
		IsMatch:               isMatch,
		Intent:                rule.Intent,
		Parameters:            extract(rule.Intent, original),
		RequiresExternalFetch: rule.RequiresFetch && isMatch,
		Confidence:            confidence,
	}
}

func (c *Classifier) match(normalized string) (compiledRule, bool) {
	if normalized == "" {
		return compiledRule{}, false
	}
	for _, r := range c.rules {
		if r.triggers != nil && !r.triggers.MatchString(normalized) {
			continue
		}
		if r.terms.MatchString(normalized) {
			return r, true
		}
	}
	return compiledRule{}, false
}
