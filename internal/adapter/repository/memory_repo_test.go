package repository

import (
	"context"
	"testing"
	"time"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResume(userID, skills string, at time.Time) *domain.Resume {
	c := model.EmptyContent()
	c.Skills = skills
	c.Experience = []model.Experience{{ID: "e1", Title: "Engineer"}}
	return &domain.Resume{ID: uuid.New(), UserID: userID, Content: c, CreatedAt: at, UpdatedAt: at}
}

func TestMemoryRepoUpsertKeepsOneRowPerUser(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepo()
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	first, err := repo.Upsert(ctx, newResume("u1", "Go", t0))
	require.NoError(t, err)

	second, err := repo.Upsert(ctx, newResume("u1", "Go, SQL", t0.Add(time.Hour)))
	require.NoError(t, err)

	assert.Equal(t, 1, repo.Count())
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, t0, second.CreatedAt)
	assert.Equal(t, t0.Add(time.Hour), second.UpdatedAt)
	assert.Equal(t, "Go, SQL", second.Skills)

	_, err = repo.Upsert(ctx, newResume("u2", "", t0))
	require.NoError(t, err)
	assert.Equal(t, 2, repo.Count())
}

func TestMemoryRepoFindByUserAbsent(t *testing.T) {
	res, err := NewMemoryRepo().FindByUser(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, res)
}

func TestMemoryRepoReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepo()
	in := newResume("u1", "Go", time.Now())

	_, err := repo.Upsert(ctx, in)
	require.NoError(t, err)
	in.Experience[0].Title = "changed after save"

	got, err := repo.FindByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Engineer", got.Experience[0].Title)

	got.Experience[0].Title = "changed after fetch"
	again, err := repo.FindByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Engineer", again.Experience[0].Title)
}
