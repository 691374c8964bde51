package chat

import "errors"

// Domain-specific errors for the chat package.
var (
	ErrMessageTooLong      = errors.New("message is too long")
	ErrEmptySessionID      = errors.New("session id is empty")
	ErrAgentUnavailable    = errors.New("general agent is not configured")
	ErrWorkflowUnavailable = errors.New("workflow backend is not configured")
	ErrAgentFailed         = errors.New("general agent failed")
	ErrWorkflowFailed      = errors.New("workflow backend failed")
)
