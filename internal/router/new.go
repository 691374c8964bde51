package router

import (
	"time"

	"concierge-router/internal/classifier"
	"concierge-router/internal/mode"
	"concierge-router/internal/model"
	"concierge-router/internal/subintent"
)

// Router turns a message into a routing decision.
type Router interface {
	Route(message, modeID string, history []model.Turn) Decision
	Recommend(message string) Recommendation
}

// DomainClassifier scores messages for domain relevance.
type DomainClassifier interface {
	Classify(message string) classifier.Result
}

// IntentClassifier detects structured-data intents.
type IntentClassifier interface {
	Classify(message string) subintent.Result
}

// Engine is the rule-based Router. It is immutable after New and safe for
// concurrent use.
type Engine struct {
	domain    DomainClassifier
	intents   IntentClassifier
	modes     mode.Resolver
	now       func() time.Time
	recommend RecommendThresholds
}

// Ensure Engine implements Router interface
var _ Router = (*Engine)(nil)

// Option configures an Engine.
type Option func(*Engine)

// WithClock sets the time source for payload timestamps.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithRecommendThresholds overrides the advisory recommendation thresholds.
func WithRecommendThresholds(t RecommendThresholds) Option {
	return func(e *Engine) { e.recommend = t }
}

// New creates an Engine. Nil collaborators fall back to the built-in
// lexicon classifier, the default sub-intent rules and the builtin modes.
func New(domain DomainClassifier, intents IntentClassifier, modes mode.Resolver, opts ...Option) *Engine {
	if domain == nil {
		domain = classifier.New(nil)
	}
	if intents == nil {
		intents = subintent.Default()
	}
	if modes == nil {
		modes = mode.NewRegistry(nil)
	}
	e := &Engine{
		domain:    domain,
		intents:   intents,
		modes:     modes,
		now:       time.Now,
		recommend: DefaultRecommendThresholds(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}
