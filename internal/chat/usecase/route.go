package usecase

import (
	"context"
	"unicode/utf8"

	"concierge-router/internal/chat"
	"concierge-router/internal/mode"
)

// Route classifies the message and returns the decision with the advisory
// recommendation. No downstream processor is called.
func (uc *implUseCase) Route(ctx context.Context, input chat.RouteInput) (chat.RouteOutput, error) {
	if utf8.RuneCountInString(input.Message) > uc.cfg.MaxMessageLength {
		return chat.RouteOutput{}, chat.ErrMessageTooLong
	}

	modeID := input.Mode
	if modeID == "" {
		modeID = uc.cfg.DefaultMode
	}

	history := input.History
	if len(history) == 0 && input.SessionID != "" {
		history = uc.sessions.history(input.SessionID)
	}

	decision := uc.router.Route(input.Message, modeID, history)
	recommendation := uc.router.Recommend(input.Message)
	uc.metrics.observe(decision)

	uc.l.Infof(ctx, "%s: mode=%s strategy=%s domain_confidence=%.2f intent=%s recommended=%s",
		LogPrefixRoute, modeID, decision.Strategy, decision.Domain.Confidence,
		decision.SubIntent.Intent, recommendation.Strategy)

	return chat.RouteOutput{
		Mode:           modeID,
		Decision:       decision,
		Recommendation: recommendation,
	}, nil
}

// Modes lists the configured operating modes.
func (uc *implUseCase) Modes(ctx context.Context) []mode.Mode {
	return uc.modes.List()
}

// ResetSession forgets the stored history of a session.
func (uc *implUseCase) ResetSession(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return chat.ErrEmptySessionID
	}
	uc.sessions.clear(sessionID)
	uc.l.Infof(ctx, "internal.chat.usecase.ResetSession: cleared session %s", sessionID)
	return nil
}
