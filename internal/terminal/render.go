package terminal

import "github.com/tifan9/termfolio/internal/domain"

// Renderer formats scrollback blocks for a particular display.
type Renderer interface {
	Prompt(label, line string) Block
	Help(commands []Command) Block
	CV(cv domain.CV) Block
	Journal(entries []domain.JournalEntry) Block
	Profiles(profiles domain.ProfileSet) Block
	Answer(text string) Block
	Notice(text string) Block
	Success(text string) Block
	// Error renders a failure line with an optional hint line below it.
	Error(message, hint string) Block
}
