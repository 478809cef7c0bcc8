// ABOUTME: Chat handler for the Huma API
// ABOUTME: Forwards visitor messages to the language model without exposing the API key

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"portfolio-api/api/dto/requests"
	"portfolio-api/api/dto/responses"
	"portfolio-api/core/interfaces"
)

// ChatHandler handles chat requests
type ChatHandler struct {
	chatService interfaces.ChatService
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatService interfaces.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// RegisterRoutes registers the chat route
func (h *ChatHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "chat",
		Method:      http.MethodPost,
		Path:        "/chat",
		Summary:     "Send a chat message",
		Description: "Sends the message and recent history to the configured language model and returns its reply.",
		Tags:        []string{"Chat"},
		Errors:      []int{http.StatusBadRequest, http.StatusBadGateway, http.StatusServiceUnavailable},
	}, h.Chat)
}

// ChatInput defines the input for the Chat operation
type ChatInput struct {
	Body requests.ChatRequest
}

// ChatOutput defines the output for the Chat operation
type ChatOutput struct {
	Body responses.ChatResponse
}

// Chat handles POST /chat
func (h *ChatHandler) Chat(ctx context.Context, input *ChatInput) (*ChatOutput, error) {
	reply, err := h.chatService.Reply(ctx, input.Body.Message, input.Body.ToDomainHistory())
	if err != nil {
		return nil, toHumaError(err)
	}
	return &ChatOutput{Body: responses.ChatResponse{Reply: reply}}, nil
}
