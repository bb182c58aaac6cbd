package domain

import "testing"

func TestAnswerRulesFirstMatchWins(t *testing.T) {
	rules := AnswerRules{
		Rules: []AnswerRule{
			{Topic: "skills", Keywords: []string{"skill"}, Response: "Networking"},
			{Topic: "experience", Keywords: []string{"experience", "work"}, Response: "IOM"},
		},
		Fallback: "Ask me something else.",
	}

	tests := []struct {
		question string
		text     string
		topic    string
	}{
		{"What SKILLS do you have?", "Networking", "skills"},
		{"tell me about your work", "IOM", "experience"},
		{"skills and experience", "Networking", "skills"},
		{"favourite colour", "Ask me something else.", ""},
	}
	for _, tt := range tests {
		text, topic := rules.Answer(tt.question)
		if text != tt.text || topic != tt.topic {
			t.Errorf("Answer(%q) = (%q, %q), want (%q, %q)", tt.question, text, topic, tt.text, tt.topic)
		}
	}
}

func TestAnswerRuleIgnoresEmptyKeyword(t *testing.T) {
	if (AnswerRule{Keywords: []string{""}}).Matches("anything") {
		t.Fatal("empty keyword must not match")
	}
	if !(AnswerRules{}).Empty() {
		t.Fatal("zero rules should be empty")
	}
}

func TestModelKindInference(t *testing.T) {
	tests := []struct {
		model ModelDefinition
		want  ProviderKind
	}{
		{ModelDefinition{Provider: "OpenAI"}, ProviderKindOpenAI},
		{ModelDefinition{Endpoint: "https://api.anthropic.com/v1/messages"}, ProviderKindAnthropic},
		{ModelDefinition{Name: "gemini-2.0-flash"}, ProviderKindGemini},
		{ModelDefinition{Endpoint: "http://localhost:11434/api/chat"}, ProviderKindOllama},
		{ModelDefinition{Name: "mystery"}, ProviderKindUnknown},
	}
	for _, tt := range tests {
		if got := tt.model.Kind(); got != tt.want {
			t.Errorf("Kind(%+v) = %q, want %q", tt.model, got, tt.want)
		}
	}

	cfg := Config{Assistant: AssistantSettings{DefaultModel: "b"}, Models: []ModelDefinition{{Name: "a"}, {Name: "b"}}}
	if m, ok := cfg.DefaultModel(); !ok || m.Name != "b" {
		t.Fatalf("unexpected default model %+v", m)
	}
	cfg.Assistant.DefaultModel = ""
	if _, ok := cfg.DefaultModel(); ok {
		t.Fatal("empty default_model should report none")
	}
}
