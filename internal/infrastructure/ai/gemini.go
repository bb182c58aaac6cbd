package ai

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"

	"github.com/tifan9/termfolio/internal/domain"
	"github.com/tifan9/termfolio/internal/ports"
)

// geminiProvider calls Google's Gemini API through the genai SDK.
type geminiProvider struct {
	model      domain.ModelDefinition
	httpClient *http.Client
}

func newGeminiProvider(model domain.ModelDefinition, client *http.Client) ports.Provider {
	return &geminiProvider{model: model, httpClient: client}
}

func (p *geminiProvider) Name() string {
	return "gemini"
}

func (p *geminiProvider) Model() domain.ModelDefinition {
	return p.model
}

func (p *geminiProvider) Generate(ctx context.Context, req ports.ProviderRequest) (ports.ProviderResponse, error) {
	apiKey := resolveAuth(p.model.AuthEnvVar, "GEMINI_API_KEY")
	if apiKey == "" {
		return ports.ProviderResponse{}, fmt.Errorf("missing API key: set %s or GEMINI_API_KEY", p.model.AuthEnvVar)
	}

	cfg := &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: p.httpClient,
	}
	if p.model.Endpoint != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: p.model.Endpoint}
	}
	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return ports.ProviderResponse{}, fmt.Errorf("gemini client: %w", err)
	}

	messages, err := renderPromptMessages(req.Persona, req.Question)
	if err != nil {
		return ports.ProviderResponse{}, err
	}
	system, user := flattenMessages(messages)

	resp, err := client.Models.GenerateContent(ctx,
		valueOrDefault(p.model.ModelID, "gemini-2.0-flash"),
		genai.Text(user),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
			MaxOutputTokens:   int32(valueOrDefaultInt(p.model.MaxTokens, domain.DefaultMaxTokens)),
			Temperature:       genai.Ptr(float32(valueOrDefaultFloat(p.model.Temperature, domain.DefaultTemperature))),
		},
	)
	if err != nil {
		return ports.ProviderResponse{}, fmt.Errorf("gemini: %w", err)
	}

	return ports.ProviderResponse{Reply: strings.TrimSpace(resp.Text())}, nil
}

func flattenMessages(messages []promptMessage) (string, string) {
	var system, user []string
	for _, msg := range messages {
		if strings.EqualFold(msg.Role, "system") {
			system = append(system, msg.Content)
		} else {
			user = append(user, msg.Content)
		}
	}
	return strings.Join(system, "\n"), strings.Join(user, "\n")
}
