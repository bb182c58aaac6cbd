package doctor

import (
	"context"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"

	appconfig "github.com/tifan9/termfolio/internal/application/config"
	"github.com/tifan9/termfolio/internal/domain"
	"github.com/tifan9/termfolio/internal/ports"
)

// Service runs environment diagnostics.
type Service struct {
	ConfigProvider ports.ConfigProvider
	Repository     ports.PortfolioRepository
	Mailer         ports.Mailer
	StoragePath    func() string
	// Answerer is the answerer selected at startup.
	Answerer ports.Answerer
}

// Run executes checks and returns a report.
func (s *Service) Run(ctx context.Context) (domain.HealthReport, error) {
	var checks []domain.HealthCheck

	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		checks = append(checks, fail("Config file", fmt.Sprintf("load failed: %v", err)))
		return domain.HealthReport{Checks: checks}, err
	}
	checks = append(checks, ok("Config file", fmt.Sprintf("loaded format %s", cfg.ConfigFormatVersion)))

	if err := appconfig.Validate(cfg); err != nil {
		checks = append(checks, fail("Config validation", err.Error()))
	} else {
		checks = append(checks, ok("Config validation", "passed"))
	}

	checks = append(checks, s.storageCheck(ctx))
	checks = append(checks, apiCheck(cfg))

	if s.Answerer != nil {
		checks = append(checks, ok("Assistant", fmt.Sprintf("answering with %s", s.Answerer.Name())))
	}

	if s.Mailer != nil {
		if s.Mailer.Enabled() {
			checks = append(checks, ok("Mail relay", fmt.Sprintf("%s -> %s", cfg.Mail.Provider, cfg.Mail.To)))
		} else {
			checks = append(checks, warn("Mail relay", "disabled; contacts are stored but not relayed"))
		}
	}

	return domain.HealthReport{Checks: checks}, nil
}

func (s *Service) storageCheck(ctx context.Context) domain.HealthCheck {
	if s.Repository == nil {
		return warn("Storage", "repository not initialized")
	}
	path := ""
	if s.StoragePath != nil {
		path = s.StoragePath()
	}
	if path == ":memory:" {
		return warn("Storage", "using in-memory store; data is lost on restart")
	}
	if _, err := s.Repository.CV(ctx); err != nil {
		return warn("Storage", fmt.Sprintf("%s: no CV stored (run `termfolio seed`)", path))
	}
	if info, err := os.Stat(path); err == nil {
		return ok("Storage", fmt.Sprintf("%s (%s)", path, humanize.Bytes(uint64(info.Size()))))
	}
	return ok("Storage", path)
}

func apiCheck(cfg domain.Config) domain.HealthCheck {
	model, found := cfg.DefaultModel()
	if !found {
		return warn("API keys", "no assistant model configured; /ask uses keyword rules")
	}
	switch model.Kind() {
	case domain.ProviderKindAnthropic:
		if envMissing(model.AuthEnvVar, "ANTHROPIC_API_KEY") {
			return warn("API keys", "ANTHROPIC_API_KEY missing; /ask uses keyword rules")
		}
	case domain.ProviderKindOpenAI:
		if envMissing(model.AuthEnvVar, "OPENAI_API_KEY") {
			return warn("API keys", "OPENAI_API_KEY missing; /ask uses keyword rules")
		}
	case domain.ProviderKindGemini:
		if envMissing(model.AuthEnvVar, "GEMINI_API_KEY") {
			return warn("API keys", "GEMINI_API_KEY missing; /ask uses keyword rules")
		}
	}
	return ok("API keys", fmt.Sprintf("detected for %s", model.Name))
}

func envMissing(primary, fallback string) bool {
	if primary != "" && os.Getenv(primary) != "" {
		return false
	}
	if fallback != "" && os.Getenv(fallback) != "" {
		return false
	}
	return true
}

func ok(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthOK, Details: details}
}

func warn(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthWarn, Details: details}
}

func fail(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthError, Details: details}
}
