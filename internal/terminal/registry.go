// Package terminal implements the portfolio shell: command registry, history
// recall, suggestions, the typewriter reveal, the contact flow and the
// dispatcher that turns submitted lines into scrollback.
package terminal

import "strings"

// Command tokens.
const (
	CmdHelp     = "/help"
	CmdCV       = "/cv"
	CmdIntro    = "/intro"
	CmdProfiles = "/profiles"
	CmdContact  = "/contact"
	CmdJournal  = "/journal"
	CmdAsk      = "/ask"
	CmdClear    = "/clear"
)

// Command is one registry entry.
type Command struct {
	Token       string
	Description string
}

// Registry is an immutable, ordered set of commands.
type Registry struct {
	commands []Command
	index    map[string]int
}

// NewRegistry builds a registry. Insertion order is the help order; later
// duplicates of a token are ignored.
func NewRegistry(commands ...Command) *Registry {
	r := &Registry{index: make(map[string]int, len(commands))}
	for _, cmd := range commands {
		key := strings.ToLower(cmd.Token)
		if _, exists := r.index[key]; exists {
			continue
		}
		r.index[key] = len(r.commands)
		r.commands = append(r.commands, cmd)
	}
	return r
}

// DefaultRegistry returns the portfolio command set.
func DefaultRegistry() *Registry {
	return NewRegistry(
		Command{Token: CmdHelp, Description: "Show available commands"},
		Command{Token: CmdCV, Description: "Display CV and experience"},
		Command{Token: CmdIntro, Description: "Play introduction video"},
		Command{Token: CmdProfiles, Description: "Show social media profiles"},
		Command{Token: CmdContact, Description: "Open contact form"},
		Command{Token: CmdJournal, Description: "Display blog posts"},
		Command{Token: CmdAsk, Description: "Ask questions about Sophie"},
		Command{Token: CmdClear, Description: "Clear terminal screen"},
	)
}

// Commands returns a copy of the registry in insertion order.
func (r *Registry) Commands() []Command {
	out := make([]Command, len(r.commands))
	copy(out, r.commands)
	return out
}

// Lookup finds a command by exact token, ignoring case.
func (r *Registry) Lookup(token string) (Command, bool) {
	i, ok := r.index[strings.ToLower(token)]
	if !ok {
		return Command{}, false
	}
	return r.commands[i], true
}

// Match returns every command whose token contains partial, ignoring case,
// in registry order. An empty partial matches nothing.
func (r *Registry) Match(partial string) []Command {
	if partial == "" {
		return nil
	}
	needle := strings.ToLower(partial)
	var out []Command
	for _, cmd := range r.commands {
		if strings.Contains(strings.ToLower(cmd.Token), needle) {
			out = append(out, cmd)
		}
	}
	return out
}
