package app_test

import (
	"context"
	"testing"

	"travelbook/internal/app"
	"travelbook/internal/domain"
)

type fakeAgent struct {
	sessions []*string
	history  []domain.ChatMessage
}

func (f *fakeAgent) Chat(ctx context.Context, req domain.ChatRequest) (domain.ChatResult, error) {
	f.sessions = append(f.sessions, req.SessionID)
	return domain.ChatResult{Response: "ok", SessionID: "sess-1"}, nil
}

func (f *fakeAgent) SessionHistory(ctx context.Context, sessionID string) ([]domain.ChatMessage, error) {
	return f.history, nil
}

func TestAssistant_ThreadsSession(t *testing.T) {
	agent := &fakeAgent{}
	a := app.NewAssistant(agent)
	ctx := context.Background()

	if _, err := a.Send(ctx, "beach trip"); err != nil {
		t.Fatalf("first send: %v", err)
	}
	if _, err := a.Send(ctx, "cheaper"); err != nil {
		t.Fatalf("second send: %v", err)
	}

	if agent.sessions[0] != nil {
		t.Fatalf("first turn must not carry a session, got %v", *agent.sessions[0])
	}
	if agent.sessions[1] == nil || *agent.sessions[1] != "sess-1" {
		t.Fatalf("second turn must carry sess-1, got %v", agent.sessions[1])
	}

	a.Reset()
	if _, err := a.Send(ctx, "new topic"); err != nil {
		t.Fatalf("send after reset: %v", err)
	}
	if agent.sessions[2] != nil {
		t.Fatal("reset must start a fresh conversation")
	}
}

func TestAssistant_HistoryWithoutSession(t *testing.T) {
	a := app.NewAssistant(&fakeAgent{history: []domain.ChatMessage{{Role: domain.RoleUser}}})

	msgs, err := a.History(context.Background())
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if msgs != nil {
		t.Fatal("no session yet, history must be nil")
	}
}
