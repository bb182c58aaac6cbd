// Package domain defines core business entities and value objects for termfolio.
//
// This file contains language model definitions used by the /ask assistant.
// The domain layer is independent of infrastructure concerns.
package domain

import "strings"

// ProviderKind names the wire protocol a remote model speaks.
type ProviderKind string

const (
	ProviderKindOpenAI    ProviderKind = "openai"
	ProviderKindAnthropic ProviderKind = "anthropic"
	ProviderKindOllama    ProviderKind = "ollama"
	ProviderKindGemini    ProviderKind = "gemini"
	ProviderKindUnknown   ProviderKind = "unknown"
)

// ModelDefinition describes a remote language model declared in the config file.
type ModelDefinition struct {
	Name        string       `yaml:"name"`
	Provider    ProviderKind `yaml:"provider"`
	Endpoint    string       `yaml:"endpoint"`
	AuthEnvVar  string       `yaml:"auth_env_var"`
	OrgEnvVar   string       `yaml:"org_env_var"`
	ModelID     string       `yaml:"model_id"`
	MaxTokens   int          `yaml:"max_tokens"`
	Temperature float64      `yaml:"temperature"`
}

// Kind returns the declared provider, inferring it from the endpoint when unset.
func (m ModelDefinition) Kind() ProviderKind {
	if m.Provider != "" {
		return ProviderKind(strings.ToLower(string(m.Provider)))
	}
	nameLower := strings.ToLower(m.Name)
	switch {
	case strings.Contains(m.Endpoint, "anthropic.com"):
		return ProviderKindAnthropic
	case strings.Contains(m.Endpoint, "openai.com"):
		return ProviderKindOpenAI
	case strings.Contains(m.Endpoint, "googleapis.com"), strings.Contains(nameLower, "gemini"):
		return ProviderKindGemini
	case strings.Contains(nameLower, "ollama"), strings.Contains(m.Endpoint, "11434"):
		return ProviderKindOllama
	default:
		return ProviderKindUnknown
	}
}

// FindModelByName searches for a model by its name.
func (c *Config) FindModelByName(name string) (ModelDefinition, bool) {
	for _, model := range c.Models {
		if model.Name == name {
			return model, true
		}
	}
	return ModelDefinition{}, false
}

// DefaultModel returns the configured assistant model, if any.
func (c *Config) DefaultModel() (ModelDefinition, bool) {
	if c.Assistant.DefaultModel == "" {
		return ModelDefinition{}, false
	}
	return c.FindModelByName(c.Assistant.DefaultModel)
}
