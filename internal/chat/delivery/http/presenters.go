package http

import (
	"errors"
	"strings"

	"concierge-router/internal/chat"
	"concierge-router/internal/mode"
	"concierge-router/internal/model"
	"concierge-router/internal/router"
)

var errEmptyMessage = errors.New("message is required")

// --- Request DTOs ---

type turnReq struct {
	Role    string `json:"role"    binding:"required,oneof=user assistant"`
	Content string `json:"content"`
}

type messageReq struct {
	SessionID string    `json:"session_id" binding:"max=128"`
	Message   string    `json:"message"`
	Mode      string    `json:"mode"       binding:"max=64"`
	History   []turnReq `json:"history"    binding:"omitempty,max=50,dive"`
}

func (r *messageReq) normalize() {
	r.SessionID = strings.TrimSpace(r.SessionID)
	r.Mode = strings.TrimSpace(r.Mode)
}

func (r messageReq) history() []model.Turn {
	if len(r.History) == 0 {
		return nil
	}
	turns := make([]model.Turn, len(r.History))
	for i, t := range r.History {
		turns[i] = model.Turn{Role: t.Role, Content: t.Content}
	}
	return turns
}

func (r messageReq) toRouteInput() chat.RouteInput {
	return chat.RouteInput{
		SessionID: r.SessionID,
		Message:   r.Message,
		Mode:      r.Mode,
		History:   r.history(),
	}
}

func (r messageReq) toMessageInput() chat.MessageInput {
	return chat.MessageInput(r.toRouteInput())
}

// --- Response DTOs ---

type routeResp struct {
	Mode           string                `json:"mode"`
	Decision       router.Decision       `json:"decision"`
	Recommendation router.Recommendation `json:"recommendation"`
}

func (h *handler) newRouteResp(out chat.RouteOutput) routeResp {
	return routeResp{
		Mode:           out.Mode,
		Decision:       out.Decision,
		Recommendation: out.Recommendation,
	}
}

type messageResp struct {
	Mode         string          `json:"mode"`
	Strategy     router.Strategy `json:"strategy"`
	Reply        string          `json:"reply"`
	WorkflowData string          `json:"workflow_data,omitempty"`
	Degraded     bool            `json:"degraded"`
	Reasoning    string          `json:"reasoning"`
}

func (h *handler) newMessageResp(out chat.MessageOutput) messageResp {
	return messageResp{
		Mode:         out.Mode,
		Strategy:     out.Decision.Strategy,
		Reply:        out.Reply,
		WorkflowData: out.WorkflowData,
		Degraded:     out.Degraded,
		Reasoning:    out.Decision.Reasoning,
	}
}

type modesResp struct {
	Modes []mode.Mode `json:"modes"`
}

func (h *handler) newModesResp(modes []mode.Mode) modesResp {
	return modesResp{Modes: modes}
}
