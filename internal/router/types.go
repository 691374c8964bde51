package router

import (
	"concierge-router/internal/classifier"
	"concierge-router/internal/subintent"
)

// Strategy names which downstream processors handle a message.
type Strategy string

const (
	StrategyGeneralOnly  Strategy = "general-only"
	StrategyWorkflowOnly Strategy = "workflow-only"
	StrategyHybrid       Strategy = "hybrid"
	StrategySequential   Strategy = "sequential"
)

// AllStrategies returns every strategy.
func AllStrategies() []Strategy {
	return []Strategy{StrategyGeneralOnly, StrategyWorkflowOnly, StrategyHybrid, StrategySequential}
}

func (s Strategy) String() string {
	return string(s)
}

// IsValid reports whether s is a known strategy.
func (s Strategy) IsValid() bool {
	switch s {
	case StrategyGeneralOnly, StrategyWorkflowOnly, StrategyHybrid, StrategySequential:
		return true
	}
	return false
}

// HybridMode qualifies a hybrid decision.
type HybridMode string

const HybridStructuredInsights HybridMode = "structured-insights"

// RouteSource tells the workflow backend which processing path a payload takes.
type RouteSource string

const (
	SourceDomainRoute RouteSource = "domain-route"
	SourceHybrid      RouteSource = "hybrid-structured-insights"
)

// Decision is the complete, immutable routing outcome for one message.
type Decision struct {
	TargetGeneral  bool              `json:"targetGeneral"`
	TargetWorkflow bool              `json:"targetWorkflow"`
	Strategy       Strategy          `json:"strategy"`
	Reasoning      string            `json:"reasoning"`
	Domain         classifier.Result `json:"domainClassification"`
	SubIntent      subintent.Result  `json:"subIntent"`
	Instructions   Instructions      `json:"instructions"`
}

// Instructions carry what each targeted processor needs.
type Instructions struct {
	GeneralPrompt   string           `json:"generalPrompt,omitempty"`
	WorkflowPayload *WorkflowPayload `json:"workflowPayload,omitempty"`
	FollowUpActions []string         `json:"followUpActions"`
	HybridMode      HybridMode       `json:"hybridMode,omitempty"`
	WebSearch       bool             `json:"webSearch"`
}

// WorkflowPayload is the JSON body sent to the workflow backend.
type WorkflowPayload struct {
	Message    string                `json:"message"`
	Mode       string                `json:"mode"`
	Timestamp  string                `json:"timestamp"`
	Source     RouteSource           `json:"source"`
	Domain     *classifier.Result    `json:"domainClassification,omitempty"`
	SubIntent  *subintent.Result     `json:"subIntent,omitempty"`
	IntentType subintent.IntentType  `json:"intentType,omitempty"`
	Parameters *subintent.Parameters `json:"parameters,omitempty"`
	Confidence float64               `json:"confidence"`
}
