package ai

import (
	"fmt"
	"net/http"

	"github.com/tifan9/termfolio/internal/domain"
	"github.com/tifan9/termfolio/internal/ports"
)

type Factory struct {
	httpClient *http.Client
}

func NewFactory() *Factory {
	return &Factory{
		httpClient: &http.Client{Timeout: domain.DefaultHTTPClientTimeout},
	}
}

// NewFactoryWithClient lets callers (and tests) supply the HTTP client.
func NewFactoryWithClient(client *http.Client) *Factory {
	return &Factory{httpClient: client}
}

func (f *Factory) ForModel(model domain.ModelDefinition) (ports.Provider, error) {
	providerKind := model.Kind()

	switch providerKind {
	case domain.ProviderKindAnthropic:
		return newHTTPProvider("anthropic", model, f.httpClient, anthropicAdapter()), nil
	case domain.ProviderKindOpenAI:
		return newHTTPProvider("openai", model, f.httpClient, openaiAdapter()), nil
	case domain.ProviderKindOllama:
		return newHTTPProvider("ollama", model, f.httpClient, ollamaAdapter()), nil
	case domain.ProviderKindGemini:
		return newGeminiProvider(model, f.httpClient), nil
	default:
		return nil, fmt.Errorf("unsupported provider kind: %s", providerKind)
	}
}

var _ ports.ProviderFactory = (*Factory)(nil)
