package ai

import (
	"os"

	"github.com/tifan9/termfolio/internal/domain"
)

func resolveAuth(primary string, fallback string) string {
	if primary != "" {
		if value := os.Getenv(primary); value != "" {
			return value
		}
	}
	if fallback == "" {
		return ""
	}
	return os.Getenv(fallback)
}

// HasCredentials reports whether the model can be called. Local ollama
// endpoints need no key.
func HasCredentials(model domain.ModelDefinition) bool {
	switch model.Kind() {
	case domain.ProviderKindOllama:
		return true
	case domain.ProviderKindOpenAI:
		return resolveAuth(model.AuthEnvVar, "OPENAI_API_KEY") != ""
	case domain.ProviderKindAnthropic:
		return resolveAuth(model.AuthEnvVar, "ANTHROPIC_API_KEY") != ""
	case domain.ProviderKindGemini:
		return resolveAuth(model.AuthEnvVar, "GEMINI_API_KEY") != ""
	default:
		return false
	}
}

func valueOrDefault(value string, def string) string {
	if value == "" {
		return def
	}
	return value
}

func valueOrDefaultInt(value int, def int) int {
	if value == 0 {
		return def
	}
	return value
}

func valueOrDefaultFloat(value float64, def float64) float64 {
	if value == 0 {
		return def
	}
	return value
}
