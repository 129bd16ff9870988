package migration

import (
	"context"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/rs/zerolog/log"
)

// RunMigrations executes all necessary database migrations on startup.
// Every statement is idempotent, so it is safe to run on each boot.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	log.Info().Msg("starting database migrations")

	for _, m := range migrations {
		if err := m.Up(ctx, pool); err != nil {
			log.Error().Err(err).Str("name", m.Name).Msg("migration failed")
			return err
		}
		log.Info().Str("name", m.Name).Msg("migration completed")
	}

	log.Info().Msg("all migrations completed successfully")
	return nil
}

// Migration represents a database migration
type Migration struct {
	Name string
	Up   func(ctx context.Context, pool *pgxpool.Pool) error
}

var migrations = []Migration{
	{Name: "create_users", Up: execStatement(createUsers)},
	{Name: "create_resumes", Up: execStatement(createResumes)},
	{Name: "add_resumes_template_check", Up: addTemplateCheck},
}

// users are written by the auth system; the table lives here so a fresh
// database has the whole schema.
const createUsers = `
	CREATE TABLE IF NOT EXISTS users (
		id         TEXT PRIMARY KEY,
		email      TEXT NOT NULL UNIQUE,
		name       TEXT NOT NULL DEFAULT '',
		password   TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
`

// user_id is UNIQUE: the upsert in ResumesRepo conflicts on it.
const createResumes = `
	CREATE TABLE IF NOT EXISTS resumes (
		id            UUID PRIMARY KEY,
		user_id       TEXT NOT NULL UNIQUE,
		template      TEXT NOT NULL DEFAULT 'modern',
		personal_info JSONB NOT NULL DEFAULT '{}'::jsonb,
		experience    JSONB NOT NULL DEFAULT '[]'::jsonb,
		education     JSONB NOT NULL DEFAULT '[]'::jsonb,
		skills        TEXT NOT NULL DEFAULT '',
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	);
`

func execStatement(query string) func(ctx context.Context, pool *pgxpool.Pool) error {
	return func(ctx context.Context, pool *pgxpool.Pool) error {
		_, err := pool.Exec(ctx, query)
		return err
	}
}

const templateCheckExists = `SELECT EXISTS (
	SELECT 1 FROM pg_constraint
	WHERE conrelid = 'resumes'::regclass AND conname = 'resumes_template_check'
)`

// addTemplateCheck restricts template to the known variants. Postgres has
// no ADD CONSTRAINT IF NOT EXISTS, so the catalog is checked first.
func addTemplateCheck(ctx context.Context, pool *pgxpool.Pool) error {
	var exists bool
	if err := pool.QueryRow(ctx, templateCheckExists).Scan(&exists); err != nil {
		return err
	}
	if exists {
		log.Debug().Msg("resumes_template_check already present")
		return nil
	}
	_, err := pool.Exec(ctx, `ALTER TABLE resumes ADD CONSTRAINT resumes_template_check CHECK (template IN ('modern', 'classic'))`)
	return err
}
