package chat

import (
	"context"

	"concierge-router/internal/mode"
	"concierge-router/pkg/workflow"
)

// UseCase defines the business logic interface for the chat domain.
type UseCase interface {
	// Route classifies a message and returns the routing decision without
	// calling any downstream processor.
	Route(ctx context.Context, input RouteInput) (RouteOutput, error)

	// Handle routes a message and dispatches it to the processors the
	// decision designates.
	Handle(ctx context.Context, input MessageInput) (MessageOutput, error)

	// Modes lists the configured operating modes.
	Modes(ctx context.Context) []mode.Mode

	// ResetSession forgets the stored history of a session.
	ResetSession(ctx context.Context, sessionID string) error
}

// GeneralAgent is the conversational model.
type GeneralAgent interface {
	GenerateText(ctx context.Context, prompt string, webSearch bool) (string, error)
}

// WorkflowBackend is the domain automation webhook.
type WorkflowBackend interface {
	Trigger(ctx context.Context, payload any) (workflow.Response, error)
}
