package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/tifan9/termfolio/internal/domain"
)

// Validate ensures config structure is consistent.
func Validate(cfg domain.Config) error {
	if err := validateServer(cfg.Server); err != nil {
		return err
	}
	if cfg.Storage.Path == "" {
		return fmt.Errorf("storage.path must be set")
	}
	if err := validateModels(cfg); err != nil {
		return err
	}
	if err := validateMail(cfg.Mail); err != nil {
		return err
	}
	if err := validateTerminal(cfg.Terminal); err != nil {
		return err
	}
	switch strings.ToLower(cfg.Logging.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug|info|warn|error, got %s", cfg.Logging.Level)
	}
	return nil
}

func validateServer(server domain.ServerSettings) error {
	if server.Addr == "" {
		return fmt.Errorf("server.addr must be set")
	}
	if server.AskRatePerMinute < 0 {
		return fmt.Errorf("server.ask_rate_per_minute must be >= 0")
	}
	if server.ContactRatePerMinute < 0 {
		return fmt.Errorf("server.contact_rate_per_minute must be >= 0")
	}
	if server.ReadTimeoutSeconds < 0 {
		return fmt.Errorf("server.read_timeout must be >= 0")
	}
	return nil
}

func validateModels(cfg domain.Config) error {
	seen := make(map[string]struct{}, len(cfg.Models))
	for _, model := range cfg.Models {
		if model.Name == "" {
			return fmt.Errorf("models: every model needs a name")
		}
		if _, dup := seen[model.Name]; dup {
			return fmt.Errorf("models: duplicate model %s", model.Name)
		}
		seen[model.Name] = struct{}{}
		if model.Kind() == domain.ProviderKindUnknown {
			return fmt.Errorf("model %s: cannot infer provider, set provider explicitly", model.Name)
		}
		if model.Kind() != domain.ProviderKindGemini && model.Endpoint == "" {
			return fmt.Errorf("model %s: endpoint must be set", model.Name)
		}
	}
	if cfg.Assistant.DefaultModel == "" {
		return nil
	}
	if _, ok := cfg.FindModelByName(cfg.Assistant.DefaultModel); !ok {
		return fmt.Errorf("default model %s not found in models list", cfg.Assistant.DefaultModel)
	}
	if cfg.Assistant.TimeoutSeconds < 0 {
		return fmt.Errorf("assistant.timeout must be >= 0")
	}
	return nil
}

func validateMail(mail domain.MailSettings) error {
	switch strings.ToLower(mail.Provider) {
	case "", "none":
		return nil
	case "sendgrid":
	default:
		return fmt.Errorf("mail.provider must be sendgrid|none, got %s", mail.Provider)
	}
	if mail.To == "" {
		return fmt.Errorf("mail.to must be set when mail.provider is %s", mail.Provider)
	}
	if mail.APIKeyEnv == "" {
		return fmt.Errorf("mail.api_key_env must be set when mail.provider is %s", mail.Provider)
	}
	return nil
}

func validateTerminal(term domain.TerminalSettings) error {
	if term.APIURL == "" {
		return fmt.Errorf("terminal.api_url must be set")
	}
	if u, err := url.Parse(term.APIURL); err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("terminal.api_url must be an absolute URL, got %s", term.APIURL)
	}
	if term.TypewriterDelayMS <= 0 {
		return fmt.Errorf("terminal.typewriter_delay_ms must be > 0")
	}
	if strings.TrimSpace(term.SessionLabel) == "" {
		return fmt.Errorf("terminal.session_label must be set")
	}
	return nil
}
