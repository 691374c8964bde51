package model

// Turn is one prior message in a conversation.
type Turn struct {
	Role    string `json:"role"`    // "user" or "assistant"
	Content string `json:"content"` // Message text
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)
