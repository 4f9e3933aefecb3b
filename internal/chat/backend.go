package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/aaravmahajanofficial/supplements-storefront/internal/models"
	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
)

const (
	ProviderHTTP   = "http"
	ProviderOpenAI = "openai"
)

var ErrEmptyReply = errors.New("chat: backend returned an empty reply")

// Backend produces the assistant reply for a conversation and its context.
type Backend interface {
	Reply(ctx context.Context, req *models.BackendChatRequest) (string, error)
}

// HTTPBackend calls a remote service implementing POST /backend/chat.
type HTTPBackend struct {
	endpoint   string
	httpClient *http.Client
}

func NewHTTPBackend(endpoint string, httpClient *http.Client) *HTTPBackend {
	return &HTTPBackend{endpoint: endpoint, httpClient: httpClient}
}

func (b *HTTPBackend) Reply(ctx context.Context, req *models.BackendChatRequest) (string, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to encode chat request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, b.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build chat request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := b.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("chat backend unreachable: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("failed to read chat reply: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("chat backend returned %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var reply models.BackendChatReply
	if err := json.Unmarshal(raw, &reply); err != nil {
		return "", fmt.Errorf("failed to decode chat reply: %w", err)
	}

	if strings.TrimSpace(reply.Reply) == "" {
		return "", ErrEmptyReply
	}

	return reply.Reply, nil
}

// OpenAIBackend answers with the chat completions API. The context becomes the system message.
type OpenAIBackend struct {
	client openai.Client
	model  string
}

func NewOpenAIBackend(apiKey, baseURL, model string, httpClient *http.Client) *OpenAIBackend {
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}

	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	if httpClient != nil {
		opts = append(opts, option.WithHTTPClient(httpClient))
	}

	return &OpenAIBackend{client: openai.NewClient(opts...), model: model}
}

func (b *OpenAIBackend) Reply(ctx context.Context, req *models.BackendChatRequest) (string, error) {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(req.Messages)+1)
	messages = append(messages, openai.SystemMessage(req.Context))

	for _, m := range req.Messages {
		if m.Role == models.ChatRoleAssistant {
			messages = append(messages, openai.AssistantMessage(m.Content))
			continue
		}

		messages = append(messages, openai.UserMessage(m.Content))
	}

	resp, err := b.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(b.model),
		Messages:    messages,
		MaxTokens:   openai.Int(800),
		Temperature: openai.Float(0.4),
	})
	if err != nil {
		return "", fmt.Errorf("openai completion failed: %w", err)
	}

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", ErrEmptyReply
	}

	return resp.Choices[0].Message.Content, nil
}
