package classifier

import "concierge-router/internal/lexicon"

// Classifier scores free text for relevance to a lexicon's subject matter.
// It holds no mutable state and is safe for concurrent use.
type Classifier struct {
	lex        *lexicon.Lexicon
	weights    Weights
	thresholds Thresholds
}

// Option overrides a tuned default.
type Option func(*Classifier)

// WithWeights replaces the tier weights.
func WithWeights(w Weights) Option {
	return func(c *Classifier) { c.weights = w }
}

// WithThresholds replaces the normalization and relevance thresholds.
func WithThresholds(t Thresholds) Option {
	return func(c *Classifier) { c.thresholds = t }
}

// New creates a Classifier. A nil lexicon selects lexicon.Default().
func New(lex *lexicon.Lexicon, opts ...Option) *Classifier {
	if lex == nil {
		lex = lexicon.Default()
	}
	c := &Classifier{
		lex:        lex,
		weights:    DefaultWeights(),
		thresholds: DefaultThresholds(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Lexicon returns the lexicon the classifier scores against.
func (c *Classifier) Lexicon() *lexicon.Lexicon {
	return c.lex
}
