package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

const resumeColumns = `id::text, user_id, template, personal_info, experience, education, skills, created_at, updated_at`

// ResumesRepo stores one resume row per user in Postgres.
type ResumesRepo struct {
	pool *pgxpool.Pool
}

func NewResumesRepo(pool *pgxpool.Pool) *ResumesRepo {
	return &ResumesRepo{pool: pool}
}

// FindByUser returns the user's resume, or nil when none was saved yet.
func (r *ResumesRepo) FindByUser(ctx context.Context, userID string) (*domain.Resume, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+resumeColumns+` FROM resumes WHERE user_id = $1 LIMIT 1`, userID)
	res, err := scanResume(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return res, err
}

// Upsert inserts the resume or, when the user already has one, replaces its
// content in place. id and created_at of an existing row are kept.
func (r *ResumesRepo) Upsert(ctx context.Context, res *domain.Resume) (*domain.Resume, error) {
	personalB, err := json.Marshal(res.PersonalInfo)
	if err != nil {
		return nil, err
	}
	expB, err := json.Marshal(res.Experience)
	if err != nil {
		return nil, err
	}
	eduB, err := json.Marshal(res.Education)
	if err != nil {
		return nil, err
	}

	row := r.pool.QueryRow(ctx, `INSERT INTO resumes (id, user_id, template, personal_info, experience, education, skills, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		ON CONFLICT (user_id) DO UPDATE SET template = EXCLUDED.template, personal_info = EXCLUDED.personal_info, experience = EXCLUDED.experience, education = EXCLUDED.education, skills = EXCLUDED.skills, updated_at = EXCLUDED.updated_at
		RETURNING `+resumeColumns,
		res.ID, res.UserID, string(res.Template), personalB, expB, eduB, res.Skills, res.CreatedAt, res.UpdatedAt)
	return scanResume(row)
}

func scanResume(row pgx.Row) (*domain.Resume, error) {
	var (
		res                   domain.Resume
		id, template          string
		personalB, expB, eduB []byte
	)
	if err := row.Scan(&id, &res.UserID, &template, &personalB, &expB, &eduB, &res.Skills, &res.CreatedAt, &res.UpdatedAt); err != nil {
		return nil, err
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("resume id %q: %w", id, err)
	}
	res.ID = parsed
	res.Template = model.Template(template)
	if err := unmarshalColumn(personalB, &res.PersonalInfo); err != nil {
		return nil, fmt.Errorf("personal_info: %w", err)
	}
	if err := unmarshalColumn(expB, &res.Experience); err != nil {
		return nil, fmt.Errorf("experience: %w", err)
	}
	if err := unmarshalColumn(eduB, &res.Education); err != nil {
		return nil, fmt.Errorf("education: %w", err)
	}
	if err := res.Normalize(); err != nil {
		return nil, err
	}
	return &res, nil
}

// unmarshalColumn decodes a JSONB column; NULL leaves v untouched.
func unmarshalColumn(raw []byte, v interface{}) error {
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, v)
}
