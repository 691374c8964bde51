package usecase

import "time"

// Log prefixes
const (
	LogPrefixRoute           = "internal.chat.usecase.Route"
	LogPrefixHandle          = "internal.chat.usecase.Handle"
	LogPrefixTriggerWorkflow = "internal.chat.usecase.triggerWorkflow"
	LogPrefixAskAgent        = "internal.chat.usecase.askAgent"
)

// Defaults
const (
	DefaultMaxMessageLength = 4000
	DefaultSessionSize      = 10000
	DefaultSessionTTL       = 30 * time.Minute
	DefaultSessionMaxTurns  = 20
)

// Hybrid prompt tails
const (
	PromptWorkflowData = `Workflow data:
"""
%s
"""`
	PromptWorkflowUnavailable = `Workflow data: unavailable. Live data could not be retrieved; ` +
		`tell the user the search will be retried shortly and answer with general guidance only.`
)

// Metric names
const (
	metricNamespace = "concierge"
	metricSubsystem = "router"

	targetGeneral  = "general"
	targetWorkflow = "workflow"
)
