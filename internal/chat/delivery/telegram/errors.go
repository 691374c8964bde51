package telegram

import (
	"errors"

	"concierge-router/internal/chat"
)

// Replies sent to the chat when a message cannot be answered.
const (
	replyTooLong     = "That message is too long. Please shorten it and try again."
	replyUnavailable = "The concierge is not available right now. Please try again later."
	replyFailed      = "Something went wrong while handling your request. Please try again."
)

// errorMessage returns a user-facing reply for the given error.
func errorMessage(err error) string {
	switch {
	case errors.Is(err, chat.ErrMessageTooLong):
		return replyTooLong
	case errors.Is(err, chat.ErrAgentUnavailable), errors.Is(err, chat.ErrWorkflowUnavailable):
		return replyUnavailable
	default:
		return replyFailed
	}
}
