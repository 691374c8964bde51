package usecase

import (
	"context"
	"fmt"

	"concierge-router/internal/chat"
	"concierge-router/internal/model"
	"concierge-router/internal/router"
)

// Handle routes the message, then runs the processors the decision names.
// Hybrid decisions fetch workflow data first and let the general agent
// narrate it; when the fetch fails the agent answers without live data.
func (uc *implUseCase) Handle(ctx context.Context, input chat.MessageInput) (chat.MessageOutput, error) {
	routed, err := uc.Route(ctx, chat.RouteInput(input))
	if err != nil {
		return chat.MessageOutput{}, err
	}

	d := routed.Decision
	out := chat.MessageOutput{Mode: routed.Mode, Decision: d}

	switch d.Strategy {
	case router.StrategyWorkflowOnly:
		data, err := uc.triggerWorkflow(ctx, d.Instructions.WorkflowPayload)
		if err != nil {
			return chat.MessageOutput{}, err
		}
		out.Reply = data
		out.WorkflowData = data

	case router.StrategyHybrid:
		prompt := d.Instructions.GeneralPrompt
		data, err := uc.triggerWorkflow(ctx, d.Instructions.WorkflowPayload)
		if err != nil {
			uc.l.Warnf(ctx, "%s: hybrid continues without workflow data: %v", LogPrefixHandle, err)
			out.Degraded = true
			prompt += "\n\n" + PromptWorkflowUnavailable
		} else {
			out.WorkflowData = data
			prompt += "\n\n" + fmt.Sprintf(PromptWorkflowData, data)
		}

		reply, err := uc.askAgent(ctx, prompt, d.Instructions.WebSearch)
		if err != nil {
			return chat.MessageOutput{}, err
		}
		out.Reply = reply

	case router.StrategyGeneralOnly, router.StrategySequential:
		reply, err := uc.askAgent(ctx, d.Instructions.GeneralPrompt, d.Instructions.WebSearch)
		if err != nil {
			return chat.MessageOutput{}, err
		}
		out.Reply = reply

	default:
		return chat.MessageOutput{}, fmt.Errorf("%s: unknown strategy %q", LogPrefixHandle, d.Strategy)
	}

	if input.SessionID != "" {
		uc.sessions.append(input.SessionID,
			model.Turn{Role: model.RoleUser, Content: input.Message},
			model.Turn{Role: model.RoleAssistant, Content: out.Reply},
		)
	}

	uc.l.Infof(ctx, "%s: strategy=%s degraded=%t reply_len=%d", LogPrefixHandle, d.Strategy, out.Degraded, len(out.Reply))
	return out, nil
}

func (uc *implUseCase) triggerWorkflow(ctx context.Context, payload *router.WorkflowPayload) (string, error) {
	if uc.workflow == nil {
		return "", chat.ErrWorkflowUnavailable
	}

	resp, err := uc.workflow.Trigger(ctx, payload)
	if err != nil {
		uc.metrics.collaboratorFailed(targetWorkflow)
		uc.l.Errorf(ctx, "%s: %v", LogPrefixTriggerWorkflow, err)
		return "", fmt.Errorf("%w: %v", chat.ErrWorkflowFailed, err)
	}
	return resp.Text(), nil
}

func (uc *implUseCase) askAgent(ctx context.Context, prompt string, webSearch bool) (string, error) {
	if uc.agent == nil {
		return "", chat.ErrAgentUnavailable
	}

	reply, err := uc.agent.GenerateText(ctx, prompt, webSearch)
	if err != nil {
		uc.metrics.collaboratorFailed(targetGeneral)
		uc.l.Errorf(ctx, "%s: %v", LogPrefixAskAgent, err)
		return "", fmt.Errorf("%w: %v", chat.ErrAgentFailed, err)
	}
	return reply, nil
}
