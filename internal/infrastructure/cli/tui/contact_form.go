package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tifan9/termfolio/internal/terminal"
)

const (
	fieldName = iota
	fieldEmail
	fieldMessage
	fieldCaptcha
	fieldCount
)

var fieldLabels = [fieldCount]string{"Name", "Email", "Message", "CAPTCHA"}

// contactForm holds the inputs of the contact panel.
type contactForm struct {
	inputs [fieldCount]textinput.Model
	focus  int
}

func newContactForm() contactForm {
	var f contactForm
	placeholders := [fieldCount]string{"Your name", "you@example.com", "Your message", "Answer"}
	for i := range f.inputs {
		in := textinput.New()
		in.Prompt = ""
		in.Placeholder = placeholders[i]
		in.CharLimit = 2000
		f.inputs[i] = in
	}
	f.inputs[fieldName].Focus()
	return f
}

func (f *contactForm) load(form terminal.ContactForm) {
	values := [fieldCount]string{form.Name, form.Email, form.Message, form.Captcha}
	for i, v := range values {
		if f.inputs[i].Value() != v {
			f.inputs[i].SetValue(v)
		}
	}
}

func (f *contactForm) store(form *terminal.ContactForm) {
	form.Name = f.inputs[fieldName].Value()
	form.Email = f.inputs[fieldEmail].Value()
	form.Message = f.inputs[fieldMessage].Value()
	form.Captcha = f.inputs[fieldCaptcha].Value()
}

func (f *contactForm) setFocus(i int) {
	f.inputs[f.focus].Blur()
	f.focus = (i + fieldCount) % fieldCount
	f.inputs[f.focus].Focus()
}

func (f *contactForm) View(st Styles, flow *terminal.ContactFlow) string {
	lines := []string{st.Title.Render("Contact Sophie"), ""}
	for i, in := range f.inputs {
		label := fieldLabels[i] + ":"
		if i == fieldCaptcha {
			label = "CAPTCHA: What is " + st.Active.Render(flow.Challenge().Question()) + "?"
		}
		if i == f.focus {
			label = st.Label.Render("> ") + label
		} else {
			label = "  " + label
		}
		lines = append(lines, label, "  "+in.View())
	}
	lines = append(lines, "")
	switch {
	case flow.State() == terminal.ContactSubmitting:
		lines = append(lines, st.Muted.Render("Sending..."))
	case flow.Err() != "":
		lines = append(lines, st.Error.Render(flow.Err()))
	}
	lines = append(lines, st.Muted.Render("tab: next field  enter: submit on last field  ctrl+s: submit  esc: close"))
	return st.Panel.Render(strings.Join(lines, "\n"))
}

func (m *Model) updateContactForm(msg tea.KeyMsg) tea.Cmd {
	flow := m.session.Contact
	if flow.State() == terminal.ContactSubmitting {
		return nil
	}

	switch msg.Type {
	case tea.KeyEsc:
		flow.Close()
		m.refresh()
		return nil
	case tea.KeyTab, tea.KeyDown:
		m.form.setFocus(m.form.focus + 1)
		return nil
	case tea.KeyShiftTab, tea.KeyUp:
		m.form.setFocus(m.form.focus - 1)
		return nil
	case tea.KeyEnter:
		if m.form.focus < fieldCaptcha {
			m.form.setFocus(m.form.focus + 1)
			return nil
		}
		return m.submitContact()
	case tea.KeyCtrlS:
		return m.submitContact()
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	m.form.store(&flow.Form)
	return cmd
}

func (m *Model) submitContact() tea.Cmd {
	m.form.store(&m.session.Contact.Form)
	effect, err := m.dispatcher.SubmitContact(m.session)
	m.syncForm()
	if err != nil {
		m.form.setFocus(fieldCaptcha)
		return nil
	}
	return m.run(effect)
}
