package subintent

import (
	"fmt"
	"regexp"
	"strings"
)

// Classifier detects structured-data requests and extracts filter candidates.
// It is immutable after New and safe for concurrent use.
type Classifier struct {
	rules     []compiledRule
	secondary *regexp.Regexp
}

type compiledRule struct {
	Rule
	triggers *regexp.Regexp
	terms    *regexp.Regexp
}

type options struct {
	rules     []Rule
	secondary []string
}

// Option overrides a default rule set or keyword list.
type Option func(*options)

// WithRules replaces the ordered rule list.
func WithRules(rules []Rule) Option {
	return func(o *options) { o.rules = rules }
}

// WithSecondaryKeywords replaces the confidence-boosting keywords.
func WithSecondaryKeywords(keywords []string) Option {
	return func(o *options) { o.secondary = keywords }
}

// New compiles the rule list into a Classifier.
func New(opts ...Option) (*Classifier, error) {
	o := options{
		rules:     DefaultRules(),
		secondary: SecondaryKeywords,
	}
	for _, opt := range opts {
		opt(&o)
	}

	c := &Classifier{secondary: wordsPattern(o.secondary)}
	for i, r := range o.rules {
		if !r.Intent.IsValid() {
			return nil, fmt.Errorf("rule %d: %w: %q", i, ErrInvalidIntent, r.Intent)
		}
		if r.Intent == IntentGeneric {
			return nil, fmt.Errorf("rule %d: %w", i, ErrGenericRule)
		}
		terms := wordsPattern(r.Terms)
		if terms == nil {
			return nil, fmt.Errorf("rule %d (%s): %w", i, r.Intent, ErrEmptyRule)
		}
		c.rules = append(c.rules, compiledRule{
			Rule:     r,
			triggers: wordsPattern(r.Triggers),
			terms:    terms,
		})
	}
	return c, nil
}

// MustNew is like New but panics on an invalid rule list.
func MustNew(opts ...Option) *Classifier {
	c, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return c
}

var defaultClassifier = MustNew()

// Default returns the classifier built from DefaultRules.
func Default() *Classifier {
	return defaultClassifier
}

// wordsPattern compiles words into one whole-word alternation. It returns nil
// for an empty list.
func wordsPattern(words []string) *regexp.Regexp {
	var quoted []string
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		quoted = append(quoted, regexp.QuoteMeta(w))
	}
	if len(quoted) == 0 {
		return nil
	}
	return regexp.MustCompile(`\b(?:` + strings.Join(quoted, "|") + `)\b`)
}
