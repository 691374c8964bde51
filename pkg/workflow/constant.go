package workflow

import "time"

const (
	DefaultTimeout       = 20 * time.Second
	DefaultRetryAttempts = 3
	DefaultRetryDelay    = 500 * time.Millisecond

	// HeaderRequestID correlates a webhook call with the inbound request.
	HeaderRequestID = "X-Request-ID"
	// HeaderSecret carries the shared webhook secret.
	HeaderSecret = "X-Webhook-Secret"

	maxErrorBody = 512
)

// Log prefixes
const (
	LogPrefixTrigger = "pkg.workflow.Trigger"
)
