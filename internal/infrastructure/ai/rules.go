package ai

import (
	"context"
	"strings"

	"github.com/tifan9/termfolio/internal/domain"
	"github.com/tifan9/termfolio/internal/ports"
)

// RuleAnswerer answers from keyword rules without any network access.
type RuleAnswerer struct {
	rules domain.AnswerRules
	load  func(context.Context) (domain.AnswerRules, error)
}

// NewRuleAnswerer wraps rules. Empty rules fall back to the built-in set.
func NewRuleAnswerer(rules domain.AnswerRules) *RuleAnswerer {
	if rules.Empty() {
		rules = DefaultRules()
	}
	return &RuleAnswerer{rules: rules}
}

// NewStoredRuleAnswerer reads rules through load on every question, so a
// reseed takes effect without a restart. fallback answers when load fails
// or returns nothing.
func NewStoredRuleAnswerer(load func(context.Context) (domain.AnswerRules, error), fallback domain.AnswerRules) *RuleAnswerer {
	r := NewRuleAnswerer(fallback)
	r.load = load
	return r
}

func (r *RuleAnswerer) Name() string {
	return "rules"
}

func (r *RuleAnswerer) Answer(ctx context.Context, question string) (domain.Answer, error) {
	text, topic := r.current(ctx).Answer(strings.TrimSpace(question))
	source := "rules"
	if topic != "" {
		source = "rules:" + topic
	}
	return domain.Answer{Text: text, Source: source}, nil
}

func (r *RuleAnswerer) current(ctx context.Context) domain.AnswerRules {
	if r.load == nil {
		return r.rules
	}
	rules, err := r.load(ctx)
	if err != nil || rules.Empty() {
		return r.rules
	}
	return rules
}

// DefaultRules is used when the seed portfolio carries no answer rules.
func DefaultRules() domain.AnswerRules {
	return domain.AnswerRules{
		Rules: []domain.AnswerRule{
			{
				Topic:    "experience",
				Keywords: []string{"experience", "work"},
				Response: "I have experience as a Field Support Officer at IOM, IT Support at Career Access Africa, and Web Developer at KADC. I specialize in web development, network administration, and IT support.",
			},
			{
				Topic:    "skills",
				Keywords: []string{"skill", "technology"},
				Response: "My technical skills include web development (HTML, CSS, PHP, Java, JavaScript), MySQL Database, Network Configuration, and Server Management. I also have strong soft skills in teamwork, problem-solving, and communication.",
			},
			{
				Topic:    "education",
				Keywords: []string{"education", "study"},
				Response: "I'm pursuing a Bachelor's degree in Networks and Communication Systems at AUCA, with additional training in Frontend Development, Linux Administration, and Cyber Security.",
			},
			{
				Topic:    "contact",
				Keywords: []string{"contact", "reach"},
				Response: "You can reach me at uwasesophie101@gmail.com or +250783199810. Feel free to use the /contact command to send me a message!",
			},
			{
				Topic:    "location",
				Keywords: []string{"rwanda", "kigali"},
				Response: "Yes, I'm based in Kigali, Rwanda. I've worked with several local organizations including Career Access Africa and Kigali Adventist Dental Clinic.",
			},
		},
		Fallback: "I'm Sophie Uwase, a passionate Web Developer and IT Professional from Rwanda. For specific information, try asking about my experience, skills, education, or contact details. You can also use /cv to see my full resume.",
	}
}

var _ ports.Answerer = (*RuleAnswerer)(nil)
