package ai

import (
	"context"

	"github.com/tifan9/termfolio/internal/domain"
	"github.com/tifan9/termfolio/internal/ports"
)

// CachingAnswerer reuses earlier model answers. Answers that came from the
// rule fallback are not stored, so a recovered model gets asked again.
type CachingAnswerer struct {
	inner  ports.Answerer
	cache  ports.AnswerCache
	key    func(string) string
	logger ports.Logger
}

// NewCachingAnswerer wraps inner with cache. key maps a question to its cache key.
func NewCachingAnswerer(inner ports.Answerer, cache ports.AnswerCache, key func(string) string, logger ports.Logger) *CachingAnswerer {
	return &CachingAnswerer{inner: inner, cache: cache, key: key, logger: logger}
}

func (c *CachingAnswerer) Name() string { return c.inner.Name() }

func (c *CachingAnswerer) Answer(ctx context.Context, question string) (domain.Answer, error) {
	key := c.key(question)
	if entry, ok, err := c.cache.Get(key); err != nil {
		c.warn("answer cache read failed", err)
	} else if ok {
		return entry.Answer, nil
	}

	answer, err := c.inner.Answer(ctx, question)
	if err != nil {
		return answer, err
	}
	if answer.Source == c.inner.Name() {
		if err := c.cache.Set(domain.CachedAnswer{Key: key, Question: question, Answer: answer}); err != nil {
			c.warn("answer cache write failed", err)
		}
	}
	return answer, nil
}

func (c *CachingAnswerer) warn(msg string, err error) {
	if c.logger != nil {
		c.logger.Warn(msg, map[string]interface{}{"error": err.Error()})
	}
}

var _ ports.Answerer = (*CachingAnswerer)(nil)
