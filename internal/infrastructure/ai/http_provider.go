package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/tifan9/termfolio/internal/domain"
	"github.com/tifan9/termfolio/internal/ports"
)

type httpProvider struct {
	name       string
	model      domain.ModelDefinition
	httpClient *http.Client
	adapter    providerAdapter
}

type providerAdapter struct {
	defaultEndpoint string
	buildRequest    func(domain.ModelDefinition, []promptMessage) ([]byte, error)
	parseResponse   func([]byte) (string, error)
	setHeaders      func(*http.Request, domain.ModelDefinition) error
}

func newHTTPProvider(name string, model domain.ModelDefinition, client *http.Client, adapter providerAdapter) ports.Provider {
	return &httpProvider{
		name:       name,
		model:      model,
		httpClient: client,
		adapter:    adapter,
	}
}

func (p *httpProvider) Name() string {
	return p.name
}

func (p *httpProvider) Model() domain.ModelDefinition {
	return p.model
}

func (p *httpProvider) Generate(ctx context.Context, req ports.ProviderRequest) (ports.ProviderResponse, error) {
	messages, err := renderPromptMessages(req.Persona, req.Question)
	if err != nil {
		return ports.ProviderResponse{}, err
	}

	requestBody, err := p.adapter.buildRequest(p.model, messages)
	if err != nil {
		return ports.ProviderResponse{}, err
	}

	endpoint := valueOrDefault(p.model.Endpoint, p.adapter.defaultEndpoint)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(requestBody))
	if err != nil {
		return ports.ProviderResponse{}, err
	}

	httpReq.Header.Set("content-type", "application/json")
	if err := p.adapter.setHeaders(httpReq, p.model); err != nil {
		return ports.ProviderResponse{}, err
	}

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return ports.ProviderResponse{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return ports.ProviderResponse{}, fmt.Errorf("%s: %s", p.name, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return ports.ProviderResponse{}, err
	}

	content, err := p.adapter.parseResponse(body)
	if err != nil {
		return ports.ProviderResponse{}, err
	}

	return ports.ProviderResponse{Reply: strings.TrimSpace(content)}, nil
}

func anthropicAdapter() providerAdapter {
	return providerAdapter{
		defaultEndpoint: "https://api.anthropic.com/v1/messages",
		buildRequest:    buildAnthropicRequest,
		parseResponse:   parseAnthropicResponse,
		setHeaders:      setAnthropicHeaders,
	}
}

func openaiAdapter() providerAdapter {
	return providerAdapter{
		defaultEndpoint: "https://api.openai.com/v1/chat/completions",
		buildRequest:    buildChatCompletionRequest,
		parseResponse:   parseChatCompletionResponse,
		setHeaders:      setOpenAIHeaders,
	}
}

func ollamaAdapter() providerAdapter {
	return providerAdapter{
		defaultEndpoint: "http://localhost:11434/v1/chat/completions",
		buildRequest:    buildChatCompletionRequest,
		parseResponse:   parseChatCompletionResponse,
		setHeaders:      setOllamaHeaders,
	}
}

type anthropicRequest struct {
	Model       string             `json:"model"`
	MaxTokens   int                `json:"max_tokens"`
	Temperature float64            `json:"temperature,omitempty"`
	System      string             `json:"system,omitempty"`
	Messages    []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string             `json:"role"`
	Content []anthropicContent `json:"content"`
}

type anthropicContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

func buildAnthropicRequest(model domain.ModelDefinition, messages []promptMessage) ([]byte, error) {
	systemPrompt, chatMessages := splitSystemMessages(messages)

	return json.Marshal(anthropicRequest{
		Model:       valueOrDefault(model.ModelID, "claude-3-5-sonnet-20240620"),
		MaxTokens:   valueOrDefaultInt(model.MaxTokens, domain.DefaultMaxTokens),
		Temperature: valueOrDefaultFloat(model.Temperature, domain.DefaultTemperature),
		System:      systemPrompt,
		Messages:    chatMessages,
	})
}

func splitSystemMessages(messages []promptMessage) (string, []anthropicMessage) {
	var systemLines []string
	var chatMessages []anthropicMessage

	for _, msg := range messages {
		if strings.EqualFold(msg.Role, "system") {
			systemLines = append(systemLines, msg.Content)
			continue
		}
		chatMessages = append(chatMessages, anthropicMessage{
			Role:    msg.Role,
			Content: []anthropicContent{{Type: "text", Text: msg.Content}},
		})
	}

	return strings.TrimSpace(strings.Join(systemLines, "\n")), chatMessages
}

func parseAnthropicResponse(body []byte) (string, error) {
	var response struct {
		Content []struct {
			Text string `json:"text"`
		} `json:"content"`
	}

	if err := json.Unmarshal(body, &response); err != nil {
		return "", err
	}

	if len(response.Content) == 0 {
		return "", nil
	}
	return response.Content[0].Text, nil
}

func setAnthropicHeaders(req *http.Request, model domain.ModelDefinition) error {
	apiKey := resolveAuth(model.AuthEnvVar, "ANTHROPIC_API_KEY")
	if apiKey == "" {
		return fmt.Errorf("missing API key: set %s or ANTHROPIC_API_KEY", model.AuthEnvVar)
	}
	req.Header.Set("x-api-key", apiKey)
	req.Header.Set("anthropic-version", "2023-06-01")
	return nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float64       `json:"temperature,omitempty"`
}

func buildChatCompletionRequest(model domain.ModelDefinition, messages []promptMessage) ([]byte, error) {
	chatMessages := make([]chatMessage, 0, len(messages))
	for _, msg := range messages {
		chatMessages = append(chatMessages, chatMessage{
			Role:    strings.ToLower(msg.Role),
			Content: msg.Content,
		})
	}

	return json.Marshal(chatCompletionRequest{
		Model:       valueOrDefault(model.ModelID, "gpt-4o"),
		Messages:    chatMessages,
		MaxTokens:   valueOrDefaultInt(model.MaxTokens, domain.DefaultMaxTokens),
		Temperature: valueOrDefaultFloat(model.Temperature, domain.DefaultTemperature),
	})
}

func parseChatCompletionResponse(body []byte) (string, error) {
	var response struct {
		Choices []struct {
			Message chatMessage `json:"message"`
		} `json:"choices"`
	}

	if err := json.Unmarshal(body, &response); err != nil {
		return "", err
	}

	if len(response.Choices) == 0 {
		return "", nil
	}
	return response.Choices[0].Message.Content, nil
}

func setOpenAIHeaders(req *http.Request, model domain.ModelDefinition) error {
	apiKey := resolveAuth(model.AuthEnvVar, "OPENAI_API_KEY")
	if apiKey == "" {
		return fmt.Errorf("missing API key: set %s or OPENAI_API_KEY", model.AuthEnvVar)
	}
	req.Header.Set("authorization", "Bearer "+apiKey)

	if org := resolveAuth(model.OrgEnvVar, "OPENAI_ORG_ID"); org != "" {
		req.Header.Set("OpenAI-Organization", org)
	}
	return nil
}

func setOllamaHeaders(*http.Request, domain.ModelDefinition) error {
	return nil
}
