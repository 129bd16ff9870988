package draft

import (
	"context"
	"errors"
	"testing"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBackend struct {
	stored   map[string]*domain.Resume
	saves    int
	fetchErr error
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{stored: map[string]*domain.Resume{}}
}

func (f *fakeBackend) Fetch(_ context.Context, userID string) (*domain.Resume, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return f.stored[userID], nil
}

func (f *fakeBackend) Save(_ context.Context, userID string, c model.Content) (*domain.Resume, error) {
	f.saves++
	res := &domain.Resume{ID: uuid.New(), UserID: userID, Content: c}
	f.stored[userID] = res
	return res, nil
}

func TestNewDraftStartsEmpty(t *testing.T) {
	d := New("u1")
	c := d.Content()
	assert.Equal(t, model.TemplateModern, c.Template)
	assert.Empty(t, c.Experience)
	assert.Empty(t, c.Education)
	assert.Empty(t, c.Skills)
	assert.Equal(t, model.PersonalInfo{}, c.PersonalInfo)
}

func TestLoadOverwritesWhenSaved(t *testing.T) {
	b := newFakeBackend()
	b.stored["u1"] = &domain.Resume{UserID: "u1", Content: model.Content{
		Template:     model.TemplateClassic,
		PersonalInfo: model.PersonalInfo{Name: "Jane"},
		Experience:   []model.Experience{{ID: "x", Title: "Engineer"}},
		Skills:       "Go",
	}}

	d := New("u1")
	d.SetSkills("local edit")
	require.NoError(t, d.Load(context.Background(), b))

	c := d.Content()
	assert.Equal(t, model.TemplateClassic, c.Template)
	assert.Equal(t, "Jane", c.PersonalInfo.Name)
	assert.Equal(t, "Go", c.Skills)
	assert.Len(t, c.Experience, 1)
	assert.NotNil(t, c.Education)
}

func TestLoadNormalizesStoredContent(t *testing.T) {
	b := newFakeBackend()
	b.stored["user-1"] = &domain.Resume{UserID: "user-1", Content: model.Content{Template: "fancy", Skills: "Go"}}

	d := New("user-1")
	require.NoError(t, d.Load(context.Background(), b))
	got := d.Content()
	assert.Equal(t, model.TemplateModern, got.Template)
	assert.NotNil(t, got.Experience)
	assert.NotNil(t, got.Education)
	assert.Equal(t, "Go", got.Skills)

	b.stored["user-1"].Content = model.Content{}
	require.NoError(t, d.Load(context.Background(), b))
	assert.Equal(t, model.EmptyContent(), d.Content())
}

func TestLoadKeepsDefaultsWhenNothingSaved(t *testing.T) {
	d := New("u1")
	require.NoError(t, d.Load(context.Background(), newFakeBackend()))
	assert.Equal(t, model.EmptyContent(), d.Content())
}

func TestLoadFailureLeavesDraftUntouched(t *testing.T) {
	b := newFakeBackend()
	b.fetchErr = errors.New("offline")

	d := New("u1")
	d.SetSkills("Go")
	err := d.Load(context.Background(), b)
	assert.ErrorIs(t, err, b.fetchErr)
	assert.Equal(t, "Go", d.Content().Skills)
}

func TestExperienceLifecycle(t *testing.T) {
	d := New("u1")
	first := d.AddExperience()
	second := d.AddExperience()
	require.NotEqual(t, first, second)

	require.NoError(t, d.UpdateExperience(first, "title", "Engineer"))
	require.NoError(t, d.UpdateExperience(first, "company", "Acme"))
	require.NoError(t, d.UpdateExperience(first, "startDate", "2020-01"))
	require.NoError(t, d.UpdateExperience(second, "description", "Second job"))

	c := d.Content()
	require.Len(t, c.Experience, 2)
	assert.Equal(t, model.Experience{ID: first, Title: "Engineer", Company: "Acme", StartDate: "2020-01"}, c.Experience[0])
	assert.Equal(t, "Second job", c.Experience[1].Description)

	require.NoError(t, d.RemoveExperience(first))
	c = d.Content()
	require.Len(t, c.Experience, 1)
	assert.Equal(t, second, c.Experience[0].ID)
}

func TestEducationLifecycle(t *testing.T) {
	d := New("u1")
	id := d.AddEducation()

	require.NoError(t, d.UpdateEducation(id, "degree", "BSc"))
	require.NoError(t, d.UpdateEducation(id, "gpa", "3.7"))
	assert.Equal(t, model.Education{ID: id, Degree: "BSc", GPA: "3.7"}, d.Content().Education[0])

	require.NoError(t, d.RemoveEducation(id))
	assert.Empty(t, d.Content().Education)
}

func TestUnknownEntriesAndFieldsLeaveStateUnchanged(t *testing.T) {
	d := New("u1")
	id := d.AddExperience()
	eduID := d.AddEducation()
	before := d.Content()

	assert.ErrorIs(t, d.UpdateExperience("missing", "title", "x"), ErrUnknownEntry)
	assert.ErrorIs(t, d.UpdateExperience(id, "salary", "x"), ErrUnknownField)
	assert.ErrorIs(t, d.RemoveExperience("missing"), ErrUnknownEntry)
	assert.ErrorIs(t, d.UpdateEducation(eduID, "title", "x"), ErrUnknownField)
	assert.ErrorIs(t, d.RemoveEducation("missing"), ErrUnknownEntry)
	assert.ErrorIs(t, d.SetPersonalField("age", "30"), ErrUnknownField)
	assert.ErrorIs(t, d.SetTemplate("fancy"), model.ErrInvalidTemplate)

	assert.Equal(t, before, d.Content())
}

func TestRapidAdditionsGetUniqueIDs(t *testing.T) {
	d := New("u1")
	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		id := d.AddExperience()
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestPersonalInfoAndTemplate(t *testing.T) {
	d := New("u1")
	d.SetPersonalInfo(model.PersonalInfo{Name: "Jane", Email: "jane@example.com"})
	require.NoError(t, d.SetPersonalField("linkedin", "janedoe"))
	require.NoError(t, d.SetTemplate(model.TemplateClassic))

	c := d.Content()
	assert.Equal(t, model.PersonalInfo{Name: "Jane", Email: "jane@example.com", LinkedIn: "janedoe"}, c.PersonalInfo)
	assert.Equal(t, model.TemplateClassic, c.Template)
}

func TestSaveSendsWholeDraft(t *testing.T) {
	b := newFakeBackend()
	d := New("u1")
	id := d.AddExperience()
	require.NoError(t, d.UpdateExperience(id, "title", "Engineer"))
	d.SetSkills("Go, SQL")

	res, err := d.Save(context.Background(), b)
	require.NoError(t, err)
	assert.Equal(t, 1, b.saves)
	assert.Equal(t, d.Content(), res.Content)

	// the backend holds a copy, later edits stay local until the next save
	d.SetSkills("changed")
	assert.Equal(t, "Go, SQL", b.stored["u1"].Skills)
}

func TestContentReturnsCopy(t *testing.T) {
	d := New("u1")
	d.AddExperience()
	c := d.Content()
	c.Experience[0].Title = "mutated"
	assert.Empty(t, d.Content().Experience[0].Title)
}
