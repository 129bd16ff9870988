// Package draft holds the working copy of a resume while it is being
// edited. Nothing reaches storage until Save sends the whole draft; the
// last save wins.
package draft

import (
	"context"
	"errors"
	"fmt"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"

	"github.com/google/uuid"
)

var (
	ErrUnknownEntry = errors.New("unknown entry")
	ErrUnknownField = errors.New("unknown field")
)

// Backend is where drafts are loaded from and saved to.
type Backend interface {
	Fetch(ctx context.Context, userID string) (*domain.Resume, error)
	Save(ctx context.Context, userID string, c model.Content) (*domain.Resume, error)
}

type Draft struct {
	userID  string
	content model.Content
	newID   func() string
}

// New returns an empty draft for userID.
func New(userID string) *Draft {
	return &Draft{userID: userID, content: model.EmptyContent(), newID: uuid.NewString}
}

func (d *Draft) UserID() string { return d.userID }

// Content returns a copy of the current draft.
func (d *Draft) Content() model.Content { return d.content.Clone() }

// Load replaces the draft with the saved resume, if there is one. When
// nothing is saved the draft keeps its current state.
func (d *Draft) Load(ctx context.Context, b Backend) error {
	res, err := b.Fetch(ctx, d.userID)
	if err != nil {
		return fmt.Errorf("load draft: %w", err)
	}
	if res == nil {
		return nil
	}
	c := res.Content.Clone()
	if err := c.Normalize(); err != nil {
		if !errors.Is(err, model.ErrInvalidTemplate) {
			return fmt.Errorf("load draft: %w", err)
		}
		// a template this client does not know falls back to modern
		c.Template = model.TemplateModern
		if err := c.Normalize(); err != nil {
			return fmt.Errorf("load draft: %w", err)
		}
	}
	d.content = c
	return nil
}

// Save sends the whole draft and returns what the backend stored.
func (d *Draft) Save(ctx context.Context, b Backend) (*domain.Resume, error) {
	return b.Save(ctx, d.userID, d.content.Clone())
}

func (d *Draft) SetTemplate(t model.Template) error {
	if !t.Valid() {
		return fmt.Errorf("%w: %q", model.ErrInvalidTemplate, t)
	}
	d.content.Template = t
	return nil
}

func (d *Draft) SetSkills(skills string) { d.content.Skills = skills }

func (d *Draft) SetPersonalInfo(info model.PersonalInfo) { d.content.PersonalInfo = info }

// SetPersonalField sets one personal-info field by its JSON name.
func (d *Draft) SetPersonalField(field, value string) error {
	p := &d.content.PersonalInfo
	switch field {
	case "name":
		p.Name = value
	case "email":
		p.Email = value
	case "phone":
		p.Phone = value
	case "location":
		p.Location = value
	case "website":
		p.Website = value
	case "linkedin":
		p.LinkedIn = value
	default:
		return fmt.Errorf("%w: personalInfo.%s", ErrUnknownField, field)
	}
	return nil
}

// AddExperience appends an empty experience entry and returns its id.
func (d *Draft) AddExperience() string {
	id := d.newID()
	d.content.Experience = append(d.content.Experience, model.Experience{ID: id})
	return id
}

func (d *Draft) RemoveExperience(id string) error {
	for i, e := range d.content.Experience {
		if e.ID == id {
			d.content.Experience = append(d.content.Experience[:i:i], d.content.Experience[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: experience %s", ErrUnknownEntry, id)
}

// UpdateExperience sets one field, by JSON name, of the entry with id.
func (d *Draft) UpdateExperience(id, field, value string) error {
	for i := range d.content.Experience {
		e := &d.content.Experience[i]
		if e.ID != id {
			continue
		}
		switch field {
		case "title":
			e.Title = value
		case "company":
			e.Company = value
		case "location":
			e.Location = value
		case "startDate":
			e.StartDate = value
		case "endDate":
			e.EndDate = value
		case "description":
			e.Description = value
		default:
			return fmt.Errorf("%w: experience.%s", ErrUnknownField, field)
		}
		return nil
	}
	return fmt.Errorf("%w: experience %s", ErrUnknownEntry, id)
}

// AddEducation appends an empty education entry and returns its id.
func (d *Draft) AddEducation() string {
	id := d.newID()
	d.content.Education = append(d.content.Education, model.Education{ID: id})
	return id
}

func (d *Draft) RemoveEducation(id string) error {
	for i, e := range d.content.Education {
		if e.ID == id {
			d.content.Education = append(d.content.Education[:i:i], d.content.Education[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: education %s", ErrUnknownEntry, id)
}

// UpdateEducation sets one field, by JSON name, of the entry with id.
func (d *Draft) UpdateEducation(id, field, value string) error {
	for i := range d.content.Education {
		e := &d.content.Education[i]
		if e.ID != id {
			continue
		}
		switch field {
		case "degree":
			e.Degree = value
		case "school":
			e.School = value
		case "location":
			e.Location = value
		case "startDate":
			e.StartDate = value
		case "endDate":
			e.EndDate = value
		case "gpa":
			e.GPA = value
		default:
			return fmt.Errorf("%w: education.%s", ErrUnknownField, field)
		}
		return nil
	}
	return fmt.Errorf("%w: education %s", ErrUnknownEntry, id)
}
