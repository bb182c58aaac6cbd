package ai

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tifan9/termfolio/internal/domain"
	"github.com/tifan9/termfolio/internal/infrastructure/cache"
	"github.com/tifan9/termfolio/internal/ports"
)

type countingProvider struct {
	stubProvider
	calls int
}

func (c *countingProvider) Generate(ctx context.Context, req ports.ProviderRequest) (ports.ProviderResponse, error) {
	c.calls++
	return c.stubProvider.Generate(ctx, req)
}

func TestCachingAnswererReusesModelAnswers(t *testing.T) {
	provider := &countingProvider{stubProvider: stubProvider{reply: "I fix networks."}}
	remote := NewRemoteAnswerer(provider, personaOK, NewRuleAnswerer(domain.AnswerRules{}), 0, nil)
	answerer := NewCachingAnswerer(remote, cache.NewFileCache(t.TempDir(), time.Hour, 10), cache.Key, nil)

	for _, q := range []string{"What do you do?", "  what do YOU do? "} {
		answer, err := answerer.Answer(context.Background(), q)
		if err != nil {
			t.Fatalf("Answer error: %v", err)
		}
		if answer.Text != "I fix networks." {
			t.Fatalf("unexpected answer %+v", answer)
		}
	}
	if provider.calls != 1 {
		t.Fatalf("expected one model call, got %d", provider.calls)
	}
	if answerer.Name() != "stub:stub-model" {
		t.Fatalf("unexpected name %q", answerer.Name())
	}
}

func TestCachingAnswererSkipsRuleFallback(t *testing.T) {
	provider := &countingProvider{stubProvider: stubProvider{err: errors.New("down")}}
	remote := NewRemoteAnswerer(provider, personaOK, NewRuleAnswerer(domain.AnswerRules{}), 0, nil)
	answerer := NewCachingAnswerer(remote, cache.NewFileCache(t.TempDir(), time.Hour, 10), cache.Key, nil)

	for i := 0; i < 2; i++ {
		if _, err := answerer.Answer(context.Background(), "experience"); err != nil {
			t.Fatalf("Answer error: %v", err)
		}
	}
	if provider.calls != 2 {
		t.Fatalf("fallback answers must not be cached, got %d model calls", provider.calls)
	}
}

func TestCachingAnswererSkipsEmptyReply(t *testing.T) {
	provider := &countingProvider{}
	remote := NewRemoteAnswerer(provider, personaOK, NewRuleAnswerer(domain.AnswerRules{}), 0, nil)
	answerer := NewCachingAnswerer(remote, cache.NewFileCache(t.TempDir(), time.Hour, 10), cache.Key, nil)

	for i := 0; i < 2; i++ {
		answer, err := answerer.Answer(context.Background(), "hmm")
		if err != nil {
			t.Fatalf("Answer error: %v", err)
		}
		if answer.Text != domain.EmptyModelReply {
			t.Fatalf("expected empty-reply text, got %q", answer.Text)
		}
	}
	if provider.calls != 2 {
		t.Fatalf("empty replies must not be cached, got %d model calls", provider.calls)
	}
}
