// ABOUTME: Request DTOs for the chat endpoint
// ABOUTME: Huma validates lengths and roles before the handler runs

package requests

import "portfolio-api/core/domain"

// ChatTurn is one prior message in the conversation
type ChatTurn struct {
	Role    string `json:"role" enum:"user,assistant" doc:"Who sent the message"`
	Content string `json:"content" maxLength:"2000" doc:"Message text"`
}

// ChatRequest is the body of POST /chat
type ChatRequest struct {
	// Message is the visitor's new message
	Message string `json:"message" minLength:"1" maxLength:"2000" doc:"Visitor message"`

	// History is the conversation so far, oldest first
	History []ChatTurn `json:"history,omitempty" maxItems:"50" doc:"Previous turns, oldest first"`
}

// ToDomainHistory converts the history turns into domain messages
func (r *ChatRequest) ToDomainHistory() []domain.ChatMessage {
	history := make([]domain.ChatMessage, 0, len(r.History))
	for _, turn := range r.History {
		history = append(history, domain.ChatMessage{Role: turn.Role, Content: turn.Content})
	}
	return history
}
