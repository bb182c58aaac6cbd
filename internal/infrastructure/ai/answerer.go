package ai

import (
	"context"
	"fmt"
	"time"

	"github.com/tifan9/termfolio/internal/domain"
	"github.com/tifan9/termfolio/internal/ports"
)

// emptyReplySuffix tags the canned empty-reply answer so it is never cached.
const emptyReplySuffix = ":empty"

// RemoteAnswerer asks a language model in the owner's voice and falls back to
// rules on any failure.
type RemoteAnswerer struct {
	provider ports.Provider
	persona  func(context.Context) (domain.CV, error)
	fallback ports.Answerer
	timeout  time.Duration
	logger   ports.Logger
}

// NewRemoteAnswerer builds a model-backed answerer. persona supplies the CV
// used in the prompt and may fail, in which case an empty CV is used.
func NewRemoteAnswerer(provider ports.Provider, persona func(context.Context) (domain.CV, error), fallback ports.Answerer, timeout time.Duration, logger ports.Logger) *RemoteAnswerer {
	if timeout <= 0 {
		timeout = domain.DefaultAssistantTimeout
	}
	return &RemoteAnswerer{
		provider: provider,
		persona:  persona,
		fallback: fallback,
		timeout:  timeout,
		logger:   logger,
	}
}

func (r *RemoteAnswerer) Name() string {
	return fmt.Sprintf("%s:%s", r.provider.Name(), r.provider.Model().Name)
}

func (r *RemoteAnswerer) Answer(ctx context.Context, question string) (domain.Answer, error) {
	var cv domain.CV
	if r.persona != nil {
		if loaded, err := r.persona(ctx); err == nil {
			cv = loaded
		}
	}

	callCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	resp, err := r.provider.Generate(callCtx, ports.ProviderRequest{Question: question, Persona: cv})
	if err != nil {
		if r.logger != nil {
			r.logger.Warn("model call failed, using keyword rules", map[string]interface{}{
				"provider": r.provider.Name(),
				"error":    err.Error(),
			})
		}
		return r.fallback.Answer(ctx, question)
	}

	if resp.Reply == "" {
		return domain.Answer{Text: domain.EmptyModelReply, Source: r.Name() + emptyReplySuffix}, nil
	}
	return domain.Answer{Text: resp.Reply, Source: r.Name()}, nil
}

// SelectAnswerer returns a remote answerer when the configured default model
// has credentials, and the rule answerer otherwise.
func SelectAnswerer(cfg domain.Config, factory ports.ProviderFactory, rules ports.Answerer, persona func(context.Context) (domain.CV, error), logger ports.Logger) ports.Answerer {
	model, ok := cfg.DefaultModel()
	if !ok {
		return rules
	}
	if !HasCredentials(model) {
		if logger != nil {
			logger.Info("no credentials for assistant model, answering from rules", map[string]interface{}{"model": model.Name})
		}
		return rules
	}
	provider, err := factory.ForModel(model)
	if err != nil {
		if logger != nil {
			logger.Warn("assistant model unavailable, answering from rules", map[string]interface{}{"model": model.Name, "error": err.Error()})
		}
		return rules
	}
	timeout := time.Duration(cfg.Assistant.TimeoutSeconds) * time.Second
	return NewRemoteAnswerer(provider, persona, rules, timeout, logger)
}

var _ ports.Answerer = (*RemoteAnswerer)(nil)
