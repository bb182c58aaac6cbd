package ai

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/tifan9/termfolio/internal/domain"
)

type promptMessage struct {
	Role    string
	Content string
}

type templateData struct {
	Name        string
	CurrentRole string
	Education   string
	Skills      string
	Previous    []string
	Question    string
}

const personaTemplate = `You are {{.Name}}, a passionate Web Developer and IT Professional from Rwanda. Based on the following CV information, answer the question naturally and personally.

Name: {{.Name}}
{{if .CurrentRole}}Current Role: {{.CurrentRole}}
{{end}}{{if .Education}}Education: {{.Education}}
{{end}}{{if .Skills}}Skills: {{.Skills}}
{{end}}{{if .Previous}}
Previous Experience:
{{range .Previous}}- {{.}}
{{end}}{{end}}
Answer as {{.Name}} in first person, keeping it friendly and professional.`

var personaTmpl = template.Must(template.New("persona").Parse(personaTemplate))

// renderPromptMessages builds the persona system prompt from the CV and
// appends the visitor's question as the user message.
func renderPromptMessages(cv domain.CV, question string) ([]promptMessage, error) {
	data := buildTemplateData(cv, question)

	var buf bytes.Buffer
	if err := personaTmpl.Execute(&buf, data); err != nil {
		return nil, err
	}

	return []promptMessage{
		{Role: "system", Content: strings.TrimSpace(buf.String())},
		{Role: "user", Content: fmt.Sprintf("Question: %s", strings.TrimSpace(question))},
	}, nil
}

func buildTemplateData(cv domain.CV, question string) templateData {
	data := templateData{
		Name:     valueOrDefault(cv.Name, "the portfolio owner"),
		Question: question,
	}
	if current, ok := cv.CurrentRole(); ok {
		data.CurrentRole = describeRole(current)
		for _, exp := range cv.Experience[1:] {
			data.Previous = append(data.Previous, describeRole(exp))
		}
	}
	if len(cv.Education) > 0 {
		edu := cv.Education[0]
		data.Education = strings.TrimSpace(fmt.Sprintf("%s at %s", edu.Title(), edu.Institution))
	}
	data.Skills = strings.Join(cv.Skills.Technical, ", ")
	return data
}

func describeRole(exp domain.Experience) string {
	if exp.Organization == "" {
		return exp.Role
	}
	return fmt.Sprintf("%s at %s", exp.Role, exp.Organization)
}
