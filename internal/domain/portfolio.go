package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrNotFound reports that a requested portfolio record does not exist.
var ErrNotFound = errors.New("not found")

// CV is the biographical document served by GET /api/cv.
type CV struct {
	Name       string       `json:"name" yaml:"name"`
	Contact    CVContact    `json:"contact" yaml:"contact"`
	Experience []Experience `json:"experience" yaml:"experience"`
	Education  []Education  `json:"education,omitempty" yaml:"education"`
	Skills     Skills       `json:"skills" yaml:"skills"`
	References []Reference  `json:"references,omitempty" yaml:"references"`
}

// CVContact holds the owner's public contact details.
type CVContact struct {
	Phone string `json:"phone" yaml:"phone"`
	Email string `json:"email" yaml:"email"`
}

// Experience is one position in the CV.
type Experience struct {
	Role         string   `json:"role" yaml:"role"`
	Organization string   `json:"organization" yaml:"organization"`
	Location     string   `json:"location" yaml:"location"`
	Period       string   `json:"period" yaml:"period"`
	Achievements []string `json:"achievements" yaml:"achievements"`
}

// Education is a degree, program, certificate or bootcamp. Exactly one of the
// first four fields is usually set.
type Education struct {
	Degree      string   `json:"degree,omitempty" yaml:"degree"`
	Program     string   `json:"program,omitempty" yaml:"program"`
	Certificate string   `json:"certificate,omitempty" yaml:"certificate"`
	Bootcamp    string   `json:"bootcamp,omitempty" yaml:"bootcamp"`
	Institution string   `json:"institution" yaml:"institution"`
	Location    string   `json:"location,omitempty" yaml:"location"`
	Period      string   `json:"period,omitempty" yaml:"period"`
	Courses     []string `json:"courses,omitempty" yaml:"courses"`
}

// Title returns whichever qualification name is present.
func (e Education) Title() string {
	for _, v := range []string{e.Degree, e.Program, e.Certificate, e.Bootcamp} {
		if v != "" {
			return v
		}
	}
	return ""
}

// Skills groups the skill lists.
type Skills struct {
	Technical []string `json:"technical" yaml:"technical"`
	Soft      []string `json:"soft" yaml:"soft"`
	Languages []string `json:"languages" yaml:"languages"`
}

// Reference is a professional referee.
type Reference struct {
	Name         string `json:"name" yaml:"name"`
	Role         string `json:"role,omitempty" yaml:"role"`
	Organization string `json:"organization,omitempty" yaml:"organization"`
	Email        string `json:"email,omitempty" yaml:"email"`
	Phone        string `json:"phone,omitempty" yaml:"phone"`
}

// CurrentRole returns the first (most recent) experience entry.
func (cv CV) CurrentRole() (Experience, bool) {
	if len(cv.Experience) == 0 {
		return Experience{}, false
	}
	return cv.Experience[0], true
}

// JournalEntry is a short blog post.
type JournalEntry struct {
	ID        string    `json:"id" yaml:"id"`
	Title     string    `json:"title" yaml:"title"`
	Content   string    `json:"content" yaml:"content"`
	Date      string    `json:"date" yaml:"date"`
	CreatedAt time.Time `json:"createdAt" yaml:"created_at"`
}

// Profile is one labelled link.
type Profile struct {
	Label string `json:"label" yaml:"label"`
	URL   string `json:"url" yaml:"url"`
}

// ProfileSet is an ordered label→URL mapping. It encodes as a JSON object
// whose key order matches the slice order.
type ProfileSet []Profile

// MarshalJSON writes the set as an object, preserving order.
func (p ProfileSet) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, profile := range p {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(profile.Label)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(profile.URL)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads an object, keeping keys in document order.
func (p *ProfileSet) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("profiles: expected object, got %v", tok)
	}
	out := ProfileSet{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		label, ok := tok.(string)
		if !ok {
			return fmt.Errorf("profiles: expected string key, got %v", tok)
		}
		var url string
		if err := dec.Decode(&url); err != nil {
			return fmt.Errorf("profiles: value for %q: %w", label, err)
		}
		out = append(out, Profile{Label: label, URL: url})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*p = out
	return nil
}

// Portfolio bundles everything the seed file provides.
type Portfolio struct {
	CV       CV             `yaml:"cv"`
	Journal  []JournalEntry `yaml:"journal"`
	Profiles ProfileSet     `yaml:"profiles"`
	Answers  AnswerRules    `yaml:"answers"`
}
