// Package render turns resume content into the HTML documents used for
// preview, print and PDF export. Both template variants consume the same
// view so they cannot disagree on dates, skills or fallbacks.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"resume-builder/internal/model"
)

//go:embed templates/*.html
var templateFS embed.FS

type Renderer struct {
	templates map[model.Template]*template.Template
	labels    Labels
}

// New parses the embedded templates. It fails only if a template is broken.
func New(labels Labels) (*Renderer, error) {
	r := &Renderer{templates: map[model.Template]*template.Template{}, labels: labels}
	for _, t := range []model.Template{model.TemplateModern, model.TemplateClassic} {
		name := string(t) + ".html"
		tpl, err := template.New(name).ParseFS(templateFS, "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		r.templates[t] = tpl
	}
	return r, nil
}

// Render executes the template variant over c.
func (r *Renderer) Render(variant model.Template, c model.Content) (string, error) {
	tpl, ok := r.templates[variant]
	if !ok {
		return "", fmt.Errorf("%w: %q", model.ErrInvalidTemplate, variant)
	}
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, r.view(c)); err != nil {
		return "", err
	}
	return buf.String(), nil
}

type experienceView struct {
	model.Experience
	Range string
}

type educationView struct {
	model.Education
	Range string
}

type view struct {
	Name         string
	Info         model.PersonalInfo
	WebsiteHref  string
	WebsiteLabel string
	Experience   []experienceView
	Education    []educationView
	Skills       []string
	Labels       Labels
}

func (r *Renderer) view(c model.Content) view {
	v := view{
		Name:   c.PersonalInfo.Name,
		Info:   c.PersonalInfo,
		Skills: SplitSkills(c.Skills),
		Labels: r.labels,
	}
	if v.Name == "" {
		v.Name = r.labels.YourName
	}
	v.WebsiteHref, v.WebsiteLabel = websiteLink(c.PersonalInfo.Website)
	for _, e := range c.Experience {
		v.Experience = append(v.Experience, experienceView{Experience: e, Range: ExperienceRange(e, r.labels)})
	}
	for _, e := range c.Education {
		v.Education = append(v.Education, educationView{Education: e, Range: EducationRange(e)})
	}
	return v
}
