package domain

import "time"

type MessageRole string

const (
	RoleUser  MessageRole = "user"
	RoleAgent MessageRole = "agent"
)

// ChatMessage is one conversational turn with the booking assistant.
type ChatMessage struct {
	Role      MessageRole
	Content   string
	Timestamp time.Time
}

// ChatResult carries the assistant's reply, the session id to supply on
// the next call, and any suggested stays.
type ChatResult struct {
	Response  string
	SessionID string
	Hotels    []Stay
}
