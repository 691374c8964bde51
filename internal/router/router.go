package router

import (
	"fmt"

	"concierge-router/internal/classifier"
	"concierge-router/internal/mode"
	"concierge-router/internal/model"
	"concierge-router/internal/subintent"
)

// input is everything a routing rule may look at.
type input struct {
	message string
	mode    mode.Mode
	history []model.Turn
	domain  classifier.Result
	intent  subintent.Result
}

// rule is one step of the decision ladder.
type rule struct {
	strategy Strategy
	applies  func(in input) bool
	decide   func(e *Engine, in input) Decision
}

// rules is evaluated top to bottom; the first rule that applies decides.
// The last rule always applies.
var rules = []rule{
	{
		strategy: StrategyHybrid,
		applies:  func(in input) bool { return in.intent.IsMatch && in.intent.RequiresExternalFetch },
		decide:   (*Engine).hybrid,
	},
	{
		strategy: StrategyWorkflowOnly,
		applies:  func(in input) bool { return in.domain.IsRelevant && in.mode.IsDomainRouted },
		decide:   (*Engine).workflowOnly,
	},
	{
		strategy: StrategyGeneralOnly,
		applies:  func(input) bool { return true },
		decide:   (*Engine).generalOnly,
	},
}

// Route classifies message and picks a strategy for the resolved mode.
// It performs no I/O and never fails.
func (e *Engine) Route(message, modeID string, history []model.Turn) Decision {
	in := input{
		message: message,
		mode:    e.modes.Resolve(modeID),
		history: history,
		domain:  e.domain.Classify(message),
		intent:  e.intents.Classify(message),
	}
	for _, r := range rules {
		if r.applies(in) {
			return r.decide(e, in)
		}
	}
	return e.generalOnly(in)
}

func (e *Engine) hybrid(in input) Decision {
	subject := intentSubject(in.intent.Intent)
	domain, intent, params := in.domain, in.intent, in.intent.Parameters

	return Decision{
		TargetGeneral:  true,
		TargetWorkflow: true,
		Strategy:       StrategyHybrid,
		Reasoning:      fmt.Sprintf(ReasoningHybrid, in.intent.Intent, in.intent.Confidence),
		Domain:         in.domain,
		SubIntent:      in.intent,
		Instructions: Instructions{
			GeneralPrompt: buildPrompt(in.message, in.history,
				fmt.Sprintf(PromptHybridInstructions, subject), webSearchLine(in.mode.WebSearch)),
			WorkflowPayload: &WorkflowPayload{
				Message:    in.message,
				Mode:       in.mode.ID,
				Timestamp:  e.timestamp(),
				Source:     SourceHybrid,
				Domain:     &domain,
				SubIntent:  &intent,
				IntentType: in.intent.Intent,
				Parameters: &params,
				Confidence: in.intent.Confidence,
			},
			FollowUpActions: []string{ActionFetchStructuredData, ActionGenerateCommentary, ActionProvideNextSteps},
			HybridMode:      HybridStructuredInsights,
			WebSearch:       in.mode.WebSearch,
		},
	}
}

func (e *Engine) workflowOnly(in input) Decision {
	domain := in.domain

	return Decision{
		TargetWorkflow: true,
		Strategy:       StrategyWorkflowOnly,
		Reasoning:      fmt.Sprintf(ReasoningWorkflow, in.domain.Confidence, in.domain.Reason),
		Domain:         in.domain,
		SubIntent:      in.intent,
		Instructions: Instructions{
			WorkflowPayload: &WorkflowPayload{
				Message:    in.message,
				Mode:       in.mode.ID,
				Timestamp:  e.timestamp(),
				Source:     SourceDomainRoute,
				Domain:     &domain,
				Confidence: in.domain.Confidence,
			},
			FollowUpActions: []string{ActionProcessDomain, ActionReturnWorkflow},
		},
	}
}

func (e *Engine) generalOnly(in input) Decision {
	reasoning := fmt.Sprintf(ReasoningGeneral, in.domain.Confidence, in.domain.Reason)
	if in.domain.IsRelevant && !in.mode.IsDomainRouted {
		reasoning = fmt.Sprintf(ReasoningDomainNotRouted, in.mode.ID, in.domain.Confidence, in.domain.Reason)
	}

	actions := []string{ActionGenerateResponse}
	if in.mode.WebSearch {
		actions = []string{ActionWebSearch, ActionGenerateResponse}
	}

	return Decision{
		TargetGeneral: true,
		Strategy:      StrategyGeneralOnly,
		Reasoning:     reasoning,
		Domain:        in.domain,
		SubIntent:     in.intent,
		Instructions: Instructions{
			GeneralPrompt:   buildPrompt(in.message, in.history, PromptGeneralInstructions, webSearchLine(in.mode.WebSearch)),
			FollowUpActions: actions,
			WebSearch:       in.mode.WebSearch,
		},
	}
}

func (e *Engine) timestamp() string {
	return e.now().UTC().Format(TimestampLayout)
}

// intentSubject names the data a structured intent fetches.
func intentSubject(t subintent.IntentType) string {
	switch t {
	case subintent.IntentPersonSearch:
		return "people"
	case subintent.IntentOrganizationSearch:
		return "company"
	case subintent.IntentCampaignAnalysis:
		return "campaign performance"
	case subintent.IntentSequenceManagement:
		return "sequence"
	case subintent.IntentLeadGeneration:
		return "lead"
	case subintent.IntentGeneric:
		return "requested"
	}
	return "requested"
}
