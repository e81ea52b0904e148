package graphql

import (
	"context"
	"encoding/json"
	"fmt"

	"travelbook/internal/domain"
)

// AgentService talks to the booking assistant. The backend owns the
// conversation; the client only threads the session id between calls.
type AgentService struct{ c *Client }

func NewAgentService(c *Client) *AgentService { return &AgentService{c: c} }

func (s *AgentService) Chat(ctx context.Context, req domain.ChatRequest) (domain.ChatResult, error) {
	vars := map[string]any{"message": req.Message}
	if req.SessionID != nil {
		vars["sessionId"] = *req.SessionID
	}

	data, err := s.c.Mutate(ctx, "chatWithAgent", mChatWithAgent, vars, true)
	if err != nil {
		return domain.ChatResult{}, err
	}
	var out struct {
		Chat *chatPayload `json:"chatWithAgent"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return domain.ChatResult{}, err
	}
	if out.Chat == nil {
		return domain.ChatResult{}, fmt.Errorf("failed to chat with agent")
	}
	return chatFromPayload(*out.Chat), nil
}

func (s *AgentService) SessionHistory(ctx context.Context, sessionID string) ([]domain.ChatMessage, error) {
	data, err := s.c.Query(ctx, "getSessionHistory", qGetSessionHistory, map[string]any{
		"sessionId": sessionID,
	}, true)
	if err != nil {
		return nil, err
	}
	var out struct {
		History []chatMessagePayload `json:"getSessionHistory"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	if out.History == nil {
		return nil, fmt.Errorf("failed to fetch session history")
	}
	msgs := make([]domain.ChatMessage, 0, len(out.History))
	for _, dto := range out.History {
		msgs = append(msgs, messageFromPayload(dto))
	}
	return msgs, nil
}
