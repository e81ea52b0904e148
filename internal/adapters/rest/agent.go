package rest

import (
	"context"
	"net/url"

	"travelbook/internal/domain"
)

// AgentService talks to the booking assistant. The backend owns the
// conversation; the client only threads the session id between calls.
type AgentService struct{ c *Client }

func NewAgentService(c *Client) *AgentService { return &AgentService{c: c} }

func (s *AgentService) Chat(ctx context.Context, req domain.ChatRequest) (domain.ChatResult, error) {
	in := struct {
		Message   string  `json:"message"`
		SessionID *string `json:"sessionId,omitempty"`
	}{req.Message, req.SessionID}

	var out chatResponse
	if err := s.c.post(ctx, "agent.chat", "/agent/chat", in, &out, true); err != nil {
		return domain.ChatResult{}, err
	}
	return chatFromResponse(out), nil
}

func (s *AgentService) SessionHistory(ctx context.Context, sessionID string) ([]domain.ChatMessage, error) {
	var out []chatMessageResponse
	path := "/agent/session/" + url.PathEscape(sessionID) + "/history"
	if err := s.c.get(ctx, "agent.history", path, nil, &out, true); err != nil {
		return nil, err
	}
	msgs := make([]domain.ChatMessage, 0, len(out))
	for _, dto := range out {
		msgs = append(msgs, messageFromResponse(dto))
	}
	return msgs, nil
}
