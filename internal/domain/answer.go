package domain

import "strings"

// AnswerRule maps question keywords to a canned response.
type AnswerRule struct {
	Topic    string   `yaml:"topic"`
	Keywords []string `yaml:"keywords"`
	Response string   `yaml:"response"`
}

// Matches reports whether any keyword occurs in the question, case-insensitively.
func (r AnswerRule) Matches(question string) bool {
	q := strings.ToLower(question)
	for _, kw := range r.Keywords {
		if kw != "" && strings.Contains(q, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

// AnswerRules is an ordered rule list evaluated first-match-wins.
type AnswerRules struct {
	Rules    []AnswerRule `yaml:"rules"`
	Fallback string       `yaml:"fallback"`
}

// Answer returns the first matching response, or Fallback.
func (a AnswerRules) Answer(question string) (string, string) {
	for _, rule := range a.Rules {
		if rule.Matches(question) {
			return rule.Response, rule.Topic
		}
	}
	return a.Fallback, ""
}

// Empty reports whether no rules and no fallback are defined.
func (a AnswerRules) Empty() bool {
	return len(a.Rules) == 0 && a.Fallback == ""
}
