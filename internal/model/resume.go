package model

import (
	"errors"
	"fmt"
)

// Go models for the resume payload shared by the form draft, the API and
// both templates. JSON keys match resume.schema.json.

type Template string

const (
	TemplateModern  Template = "modern"
	TemplateClassic Template = "classic"
)

var ErrInvalidTemplate = errors.New("invalid template")

// ParseTemplate maps the wire value to a Template. Empty selects modern.
func ParseTemplate(s string) (Template, error) {
	switch Template(s) {
	case "":
		return TemplateModern, nil
	case TemplateModern, TemplateClassic:
		return Template(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidTemplate, s)
}

func (t Template) Valid() bool {
	return t == TemplateModern || t == TemplateClassic
}

type PersonalInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Website  string `json:"website,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
}

type Experience struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

type Education struct {
	ID        string `json:"id"`
	Degree    string `json:"degree"`
	School    string `json:"school"`
	Location  string `json:"location"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	GPA       string `json:"gpa,omitempty"`
}

// Content is everything a user edits: the part of a resume that is saved,
// previewed and exported.
type Content struct {
	Template     Template     `json:"template"`
	PersonalInfo PersonalInfo `json:"personalInfo"`
	Experience   []Experience `json:"experience"`
	Education    []Education  `json:"education"`
	Skills       string       `json:"skills"`
}

// Normalize fills defaults so stored and returned content never carries nil
// lists or an empty template.
func (c *Content) Normalize() error {
	t, err := ParseTemplate(string(c.Template))
	if err != nil {
		return err
	}
	c.Template = t
	if c.Experience == nil {
		c.Experience = []Experience{}
	}
	if c.Education == nil {
		c.Education = []Education{}
	}
	return nil
}

// Clone returns a copy that shares no slices with c.
func (c Content) Clone() Content {
	out := c
	if c.Experience != nil {
		out.Experience = make([]Experience, len(c.Experience))
		copy(out.Experience, c.Experience)
	}
	if c.Education != nil {
		out.Education = make([]Education, len(c.Education))
		copy(out.Education, c.Education)
	}
	return out
}

// EmptyContent is the state of a form that has never been saved.
func EmptyContent() Content {
	return Content{
		Template:   TemplateModern,
		Experience: []Experience{},
		Education:  []Education{},
	}
}
