package app

import (
	"context"
	"sync"

	"travelbook/internal/domain"
)

// Assistant wraps the agent service and remembers the session id so
// callers just send messages; the backend sees one continuous
// conversation per Assistant.
type Assistant struct {
	agent domain.AgentService

	mu      sync.Mutex
	session *string
}

func NewAssistant(agent domain.AgentService) *Assistant {
	return &Assistant{agent: agent}
}

func (a *Assistant) Send(ctx context.Context, message string) (domain.ChatResult, error) {
	a.mu.Lock()
	session := a.session
	a.mu.Unlock()

	res, err := a.agent.Chat(ctx, domain.ChatRequest{Message: message, SessionID: session})
	if err != nil {
		return domain.ChatResult{}, err
	}
	if res.SessionID != "" {
		a.mu.Lock()
		a.session = &res.SessionID
		a.mu.Unlock()
	}
	return res, nil
}

// Reset drops the session id; the next Send starts a new conversation.
func (a *Assistant) Reset() {
	a.mu.Lock()
	a.session = nil
	a.mu.Unlock()
}

// History returns the backend transcript of the current session, or nil
// when no conversation has started.
func (a *Assistant) History(ctx context.Context) ([]domain.ChatMessage, error) {
	a.mu.Lock()
	session := a.session
	a.mu.Unlock()
	if session == nil {
		return nil, nil
	}
	return a.agent.SessionHistory(ctx, *session)
}
