package terminal

import (
	"context"
	"errors"
	"strings"

	"github.com/tifan9/termfolio/internal/ports"
)

// Effect is the asynchronous half of a command. It must not touch the
// session; it returns a Completion that the session owner applies.
type Effect func(ctx context.Context) Completion

// Completion applies an effect's result to the session.
type Completion func(*Session)

// Scrollback texts.
const (
	msgIntroOpening   = "Opening introduction video..."
	msgContactOpening = "Opening contact form..."
	msgContactSent    = "Message sent successfully! Sophie will get back to you soon."
	msgHelpHint       = "Type /help to see available commands."
	msgAskUsage       = "Usage: /ask <question>"
	msgCVFailed       = "Failed to load CV data"
	msgJournalFailed  = "Failed to load journal entries"
	msgProfilesFailed = "Failed to load profiles"
	msgAskFailed      = "Failed to process question"
	msgContactFailed  = "Failed to send message"
)

const askPrefix = CmdAsk + " "

// Dispatcher resolves submitted lines against the registry.
type Dispatcher struct {
	registry *Registry
	api      ports.PortfolioAPI
	render   Renderer
	logger   ports.Logger
}

// NewDispatcher wires a dispatcher. A nil registry uses DefaultRegistry and
// a nil renderer uses HTMLRenderer.
func NewDispatcher(registry *Registry, api ports.PortfolioAPI, render Renderer, logger ports.Logger) *Dispatcher {
	if registry == nil {
		registry = DefaultRegistry()
	}
	if render == nil {
		render = HTMLRenderer{}
	}
	return &Dispatcher{registry: registry, api: api, render: render, logger: logger}
}

// Registry returns the command set the dispatcher resolves against.
func (d *Dispatcher) Registry() *Registry { return d.registry }

// Execute handles one submitted line. Synchronous commands update s before
// returning; asynchronous ones return an Effect whose Completion appends
// exactly one block. A nil Effect means there is nothing left to do.
func (d *Dispatcher) Execute(s *Session, raw string) Effect {
	line := strings.TrimSpace(raw)
	if line == "" {
		return nil
	}

	s.Append(d.render.Prompt(s.Label, line))
	s.History.Record(line)

	lowered := strings.ToLower(line)
	if cmd, ok := d.registry.Lookup(lowered); ok {
		switch cmd.Token {
		case CmdHelp:
			s.Append(d.render.Help(d.registry.Commands()))
			return nil
		case CmdCV:
			return d.fetchCV()
		case CmdJournal:
			return d.fetchJournal()
		case CmdProfiles:
			return d.fetchProfiles()
		case CmdIntro:
			s.Append(d.render.Notice(msgIntroOpening))
			s.IntroOpen = true
			return nil
		case CmdContact:
			s.Append(d.render.Notice(msgContactOpening))
			s.Contact.Open()
			return nil
		case CmdClear:
			s.Clear()
			return nil
		case CmdAsk:
			s.Append(d.render.Error(msgAskUsage, msgHelpHint))
			return nil
		}
	}

	if len(line) > len(askPrefix) && strings.EqualFold(line[:len(askPrefix)], askPrefix) {
		if question := strings.TrimSpace(line[len(askPrefix):]); question != "" {
			return d.ask(question)
		}
	}

	s.Append(d.render.Error("Command not found: "+line, msgHelpHint))
	return nil
}

// SubmitContact validates the open contact form. A wrong captcha returns an
// error and no effect, so nothing reaches the network. On success the
// Effect posts the form; its Completion resolves the flow and, when the
// post succeeded, appends the confirmation line.
func (d *Dispatcher) SubmitContact(s *Session) (Effect, error) {
	req, err := s.Contact.Submit()
	if err != nil {
		return nil, err
	}
	return func(ctx context.Context) Completion {
		_, err := d.api.SubmitContact(ctx, req)
		if err != nil {
			d.logFailure("contact", err)
			return func(s *Session) { s.Contact.Resolve(err, msgContactFailed) }
		}
		block := d.render.Success(msgContactSent)
		return func(s *Session) {
			s.Contact.Resolve(nil, "")
			s.Append(block)
		}
	}, nil
}

// ExecuteNow runs Execute and applies any effect inline.
func (d *Dispatcher) ExecuteNow(ctx context.Context, s *Session, raw string) {
	Apply(ctx, s, d.Execute(s, raw))
}

// Apply runs effect and applies its completion to s. A nil effect is a no-op.
func Apply(ctx context.Context, s *Session, effect Effect) {
	if effect == nil {
		return
	}
	if done := effect(ctx); done != nil {
		done(s)
	}
}

func (d *Dispatcher) fetchCV() Effect {
	return func(ctx context.Context) Completion {
		cv, err := d.api.CV(ctx)
		if err != nil {
			d.logFailure(CmdCV, err)
			return d.appendBlock(d.render.Error(msgCVFailed, ""))
		}
		return d.appendBlock(d.render.CV(cv))
	}
}

func (d *Dispatcher) fetchJournal() Effect {
	return func(ctx context.Context) Completion {
		entries, err := d.api.Journal(ctx)
		if err != nil {
			d.logFailure(CmdJournal, err)
			return d.appendBlock(d.render.Error(msgJournalFailed, ""))
		}
		return d.appendBlock(d.render.Journal(entries))
	}
}

func (d *Dispatcher) fetchProfiles() Effect {
	return func(ctx context.Context) Completion {
		profiles, err := d.api.Profiles(ctx)
		if err != nil {
			d.logFailure(CmdProfiles, err)
			return d.appendBlock(d.render.Error(msgProfilesFailed, ""))
		}
		return d.appendBlock(d.render.Profiles(profiles))
	}
}

func (d *Dispatcher) ask(question string) Effect {
	return func(ctx context.Context) Completion {
		answer, err := d.api.Ask(ctx, question)
		if err != nil {
			d.logFailure(CmdAsk, err)
			return d.appendBlock(d.render.Error(msgAskFailed, ""))
		}
		return d.appendBlock(d.render.Answer(answer))
	}
}

func (d *Dispatcher) appendBlock(b Block) Completion {
	return func(s *Session) { s.Append(b) }
}

func (d *Dispatcher) logFailure(command string, err error) {
	if d.logger == nil || errors.Is(err, context.Canceled) {
		return
	}
	d.logger.Warn("command failed", map[string]interface{}{
		"command": command,
		"error":   err.Error(),
	})
}
