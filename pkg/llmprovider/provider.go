package llmprovider

import "context"

// Provider is one text-generation backend in the fallback chain.
type Provider interface {
	// GenerateText answers prompt, with web search augmentation when the
	// backend supports it and webSearch is set.
	GenerateText(ctx context.Context, prompt string, webSearch bool) (string, error)

	// Name returns the provider name (e.g., "gemini", "deepseek")
	Name() string

	// Model returns the model being used
	Model() string
}

// TextGenerator is the subset of a client the chain needs.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string, webSearch bool) (string, error)
	Model() string
}

type namedProvider struct {
	TextGenerator
	name string
}

func (p namedProvider) Name() string { return p.name }

// Named attaches a provider name to a client.
func Named(name string, g TextGenerator) Provider {
	return namedProvider{TextGenerator: g, name: name}
}
