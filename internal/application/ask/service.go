// Package ask answers visitor questions about the portfolio owner.
package ask

import (
	"context"
	"errors"
	"strings"

	"github.com/tifan9/termfolio/internal/domain"
	"github.com/tifan9/termfolio/internal/ports"
)

// ErrQuestionRequired is returned for blank questions.
var ErrQuestionRequired = domain.ValidationError{Field: "question", Message: "Question is required"}

// Service delegates to the configured answerer.
type Service struct {
	Answerer ports.Answerer
	Logger   ports.Logger
}

// Ask answers a single question. The answerer is expected to degrade to rules
// on its own, so errors here are unexpected.
func (s *Service) Ask(ctx context.Context, question string) (domain.Answer, error) {
	if s.Answerer == nil {
		return domain.Answer{}, errors.New("ask.Service dependencies not satisfied")
	}
	question = strings.TrimSpace(question)
	if question == "" {
		return domain.Answer{}, ErrQuestionRequired
	}

	answer, err := s.Answerer.Answer(ctx, question)
	if err != nil {
		return domain.Answer{}, err
	}
	if s.Logger != nil {
		s.Logger.Debug("question answered", map[string]interface{}{
			"answerer": s.Answerer.Name(),
			"source":   answer.Source,
		})
	}
	return answer, nil
}
