package terminal

import (
	"fmt"
	"html"
	"strings"

	"github.com/tifan9/termfolio/internal/domain"
)

// HTMLRenderer produces the markup used by the web scrollback. All portfolio
// data is escaped.
type HTMLRenderer struct{}

const (
	classPrompt = "mb-2"
	classBlock  = "mb-4"
)

func (HTMLRenderer) Prompt(label, line string) Block {
	return Block{
		Content: fmt.Sprintf(`<span class="text-terminal-green">%s$</span> %s`, esc(label), esc(line)),
		Class:   classPrompt,
	}
}

func (HTMLRenderer) Help(commands []Command) Block {
	var b strings.Builder
	b.WriteString(`<div class="text-terminal-blue mb-2">Available Commands:</div>`)
	for _, cmd := range commands {
		fmt.Fprintf(&b, `<div class="mb-1"><span class="text-terminal-green">%s</span> - %s</div>`, esc(cmd.Token), esc(cmd.Description))
	}
	return Block{Content: b.String(), Class: classBlock}
}

func (HTMLRenderer) CV(cv domain.CV) Block {
	var b strings.Builder
	fmt.Fprintf(&b, `<div class="text-terminal-blue text-lg mb-3">%s - CV</div>`, esc(cv.Name))
	fmt.Fprintf(&b, `<div class="mb-3"><span class="text-terminal-green">Contact:</span> %s | %s</div>`, esc(cv.Contact.Email), esc(cv.Contact.Phone))

	b.WriteString(`<div class="text-terminal-purple mb-2">Experience:</div>`)
	for _, exp := range cv.Experience {
		b.WriteString(`<div class="mb-3 pl-4">`)
		fmt.Fprintf(&b, `<div class="text-white font-semibold">%s - %s</div>`, esc(exp.Role), esc(exp.Organization))
		fmt.Fprintf(&b, `<div class="text-gray-400 text-sm">%s | %s</div>`, esc(exp.Location), esc(exp.Period))
		for _, achievement := range exp.Achievements {
			fmt.Fprintf(&b, `<div class="text-sm mt-1">• %s</div>`, esc(achievement))
		}
		b.WriteString(`</div>`)
	}

	b.WriteString(`<div class="text-terminal-purple mb-2">Skills:</div>`)
	b.WriteString(`<div class="pl-4 mb-2">`)
	fmt.Fprintf(&b, `<div class="mb-1"><span class="text-terminal-green">Technical:</span> %s</div>`, escJoin(cv.Skills.Technical))
	fmt.Fprintf(&b, `<div class="mb-1"><span class="text-terminal-green">Soft Skills:</span> %s</div>`, escJoin(cv.Skills.Soft))
	fmt.Fprintf(&b, `<div><span class="text-terminal-green">Languages:</span> %s</div>`, escJoin(cv.Skills.Languages))
	b.WriteString(`</div>`)
	return Block{Content: b.String(), Class: classBlock}
}

func (HTMLRenderer) Journal(entries []domain.JournalEntry) Block {
	var b strings.Builder
	b.WriteString(`<div class="text-terminal-blue mb-3">Recent Journal Entries:</div>`)
	for _, entry := range entries {
		b.WriteString(`<div class="mb-4 pl-4 border-l-2 border-terminal-green">`)
		fmt.Fprintf(&b, `<div class="text-white font-semibold">%s</div>`, esc(entry.Title))
		fmt.Fprintf(&b, `<div class="text-gray-400 text-sm mb-2">%s</div>`, esc(entry.Date))
		fmt.Fprintf(&b, `<div class="text-sm">%s</div>`, esc(entry.Content))
		b.WriteString(`</div>`)
	}
	return Block{Content: b.String(), Class: classBlock}
}

func (HTMLRenderer) Profiles(profiles domain.ProfileSet) Block {
	var b strings.Builder
	b.WriteString(`<div class="text-terminal-blue mb-2">Social Media Profiles:</div>`)
	for _, p := range profiles {
		fmt.Fprintf(&b, `<div class="mb-1">• <a href="%s" target="_blank" class="text-terminal-green hover:underline">%s</a></div>`, esc(p.URL), esc(p.Label))
	}
	return Block{Content: b.String(), Class: classBlock}
}

func (HTMLRenderer) Answer(text string) Block {
	return Block{
		Content: fmt.Sprintf(`<div class="text-terminal-blue mb-2">AI Assistant:</div><div class="pl-4">%s</div>`, esc(text)),
		Class:   classBlock,
	}
}

func (HTMLRenderer) Notice(text string) Block {
	return Block{Content: fmt.Sprintf(`<div class="text-terminal-blue mb-2">%s</div>`, esc(text)), Class: classBlock}
}

func (HTMLRenderer) Success(text string) Block {
	return Block{Content: fmt.Sprintf(`<div class="text-terminal-green">%s</div>`, esc(text)), Class: classBlock}
}

func (HTMLRenderer) Error(message, hint string) Block {
	content := fmt.Sprintf(`<div class="text-terminal-red">%s</div>`, esc(message))
	if hint != "" {
		content += fmt.Sprintf(`<div class="text-gray-400">%s</div>`, esc(hint))
	}
	return Block{Content: content, Class: classBlock}
}

func esc(s string) string { return html.EscapeString(s) }

func escJoin(items []string) string {
	escaped := make([]string, len(items))
	for i, item := range items {
		escaped[i] = esc(item)
	}
	return strings.Join(escaped, ", ")
}

var _ Renderer = HTMLRenderer{}
