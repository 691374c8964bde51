package chat

import (
	"concierge-router/internal/model"
	"concierge-router/internal/router"
)

// RouteInput is the input for routing a message.
// History is optional; when empty the session's stored history is used.
type RouteInput struct {
	SessionID string
	Message   string
	Mode      string
	History   []model.Turn
}

// RouteOutput is the routing decision plus the advisory recommendation.
type RouteOutput struct {
	Mode           string
	Decision       router.Decision
	Recommendation router.Recommendation
}

// MessageInput is the input for handling a message end to end.
type MessageInput struct {
	SessionID string
	Message   string
	Mode      string
	History   []model.Turn
}

// MessageOutput is the reply produced for a handled message.
type MessageOutput struct {
	Mode         string
	Reply        string
	WorkflowData string
	// Degraded is set when a hybrid reply was written without live data.
	Degraded bool
	Decision router.Decision
}
