// ABOUTME: Chat service forwards visitor messages to an OpenAI-compatible completions API
// ABOUTME: Keeps the API key server-side and maps upstream failures to typed errors

package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"portfolio-api/core/domain"
	coreerrors "portfolio-api/core/errors"
	"portfolio-api/core/interfaces"
)

const (
	apiName = "chat"

	// PlaceholderAPIKey is the sample key shipped in env templates; it is never sent
	PlaceholderAPIKey = "your-openrouter-api-key-here"

	// FallbackReply is returned when the model answers with no choices
	FallbackReply = "I'm sorry, I couldn't process that request. Please try again."

	// MaxMessageLength is the longest accepted visitor message, in runes
	MaxMessageLength = 2000

	// MaxHistory is how many prior turns are forwarded
	MaxHistory = 10

	maxResponseBytes = 1 << 20
)

// DefaultSystemPrompt introduces the assistant when none is configured
const DefaultSystemPrompt = "You are the assistant on a personal portfolio site. " +
	"Help visitors learn about the owner's background, skills, projects and experience. " +
	"Keep answers short and friendly."

// Config holds the completions API settings
type Config struct {
	BaseURL      string
	Endpoint     string
	APIKey       string
	Model        string
	SystemPrompt string

	// Temperature is sent as-is, including 0; nil uses the default
	Temperature *float64

	MaxTokens int
	Timeout      time.Duration
}

// DefaultConfig returns defaults without a base URL
func DefaultConfig() Config {
	return Config{
		Endpoint:     "/v1/chat/completions",
		Model:        "gpt-3.5-turbo",
		SystemPrompt: DefaultSystemPrompt,
		Temperature:  Float64(0.7),
		MaxTokens:    200,
		Timeout:      30 * time.Second,
	}
}

// Float64 returns a pointer to v, for Config.Temperature
func Float64(v float64) *float64 {
	return &v
}

// Configured reports whether a base URL is set
func (c Config) Configured() bool {
	return c.BaseURL != ""
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	if c.Endpoint == "" {
		c.Endpoint = d.Endpoint
	}
	if !strings.HasPrefix(c.Endpoint, "/") {
		c.Endpoint = "/" + c.Endpoint
	}
	if c.Model == "" {
		c.Model = d.Model
	}
	if c.SystemPrompt == "" {
		c.SystemPrompt = d.SystemPrompt
	}
	if c.Temperature == nil || *c.Temperature < 0 {
		c.Temperature = d.Temperature
	}
	if c.MaxTokens <= 0 {
		c.MaxTokens = d.MaxTokens
	}
	if c.Timeout <= 0 {
		c.Timeout = d.Timeout
	}
	return c
}

type completionRequest struct {
	Model       string               `json:"model"`
	Messages    []domain.ChatMessage `json:"messages"`
	Temperature float64              `json:"temperature"`
	MaxTokens   int                  `json:"max_tokens"`
}

type completionResponse struct {
	Choices []struct {
		Message domain.ChatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Service is the chat proxy
type Service struct {
	cfg  Config
	deps interfaces.Dependencies
}

// NewService creates a chat service
func NewService(cfg Config, deps interfaces.Dependencies) *Service {
	return &Service{
		cfg:  cfg.withDefaults(),
		deps: deps.WithDefaults(),
	}
}

// Configured reports whether the proxy can forward requests
func (s *Service) Configured() bool {
	return s.cfg.Configured()
}

// Reply sends the visitor message, preceded by the system prompt and prior turns
func (s *Service) Reply(ctx context.Context, message string, history []domain.ChatMessage) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", &coreerrors.ValidationError{Field: "message", Message: "message cannot be empty"}
	}
	if utf8.RuneCountInString(message) > MaxMessageLength {
		return "", &coreerrors.ValidationError{Field: "message", Message: "message is too long"}
	}
	if !s.cfg.Configured() {
		return "", &coreerrors.ConfigurationError{Component: apiName, Missing: []string{"CHAT_API_BASE_URL"}}
	}
	if s.deps.HTTPClient == nil {
		return "", errors.New("HTTP client not configured")
	}

	body, err := json.Marshal(completionRequest{
		Model:       s.cfg.Model,
		Messages:    s.buildMessages(message, history),
		Temperature: *s.cfg.Temperature,
		MaxTokens:   s.cfg.MaxTokens,
	})
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	start := time.Now()
	reply, err := s.send(ctx, body)
	status := domain.StatusOK
	if err != nil {
		status = domain.StatusFailed
		s.deps.Logger.Error("Chat completion failed", map[string]interface{}{
			"model": s.cfg.Model,
			"error": err.Error(),
		})
	}
	s.deps.Metrics.ObserveFetch(apiName, string(status), time.Since(start))
	return reply, err
}

func (s *Service) send(ctx context.Context, body []byte) (string, error) {
	headers := map[string]string{}
	if s.cfg.APIKey != "" && s.cfg.APIKey != PlaceholderAPIKey {
		headers["Authorization"] = "Bearer " + s.cfg.APIKey
	}

	resp, err := s.deps.HTTPClient.Post(ctx, s.cfg.BaseURL+s.cfg.Endpoint, bytes.NewReader(body), headers)
	if err != nil {
		return "", coreerrors.WrapError(err, "chat request failed")
	}
	defer resp.Body().Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body(), maxResponseBytes))
	if err != nil {
		return "", coreerrors.WrapError(err, "failed to read chat response")
	}

	var parsed completionResponse
	decodeErr := json.Unmarshal(data, &parsed)

	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		msg := http.StatusText(resp.StatusCode())
		if decodeErr == nil && parsed.Error != nil && parsed.Error.Message != "" {
			msg = parsed.Error.Message
		}
		return "", &coreerrors.ExternalAPIError{StatusCode: resp.StatusCode(), Message: msg, API: apiName}
	}
	if decodeErr != nil {
		return "", &coreerrors.ExternalAPIError{StatusCode: resp.StatusCode(), Message: "malformed response", API: apiName}
	}

	if len(parsed.Choices) == 0 || strings.TrimSpace(parsed.Choices[0].Message.Content) == "" {
		return FallbackReply, nil
	}
	return parsed.Choices[0].Message.Content, nil
}

// buildMessages keeps only user and assistant turns from history, newest last
func (s *Service) buildMessages(message string, history []domain.ChatMessage) []domain.ChatMessage {
	turns := make([]domain.ChatMessage, 0, len(history))
	for _, m := range history {
		if (m.Role == domain.RoleUser || m.Role == domain.RoleAssistant) && strings.TrimSpace(m.Content) != "" {
			turns = append(turns, m)
		}
	}
	if len(turns) > MaxHistory {
		turns = turns[len(turns)-MaxHistory:]
	}

	messages := make([]domain.ChatMessage, 0, len(turns)+2)
	messages = append(messages, domain.ChatMessage{Role: domain.RoleSystem, Content: s.cfg.SystemPrompt})
	messages = append(messages, turns...)
	messages = append(messages, domain.ChatMessage{Role: domain.RoleUser, Content: message})
	return messages
}
