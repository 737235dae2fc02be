package migration

import (
	"context"
	"database/sql"

	"launchdash/internal"
	"launchdash/internal/errors"
)

// Execer is the subset of *sqlx.DB the runner needs.
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// Migrator defines the interface for database migration operations
type Migrator interface {
	Run(ctx context.Context, db Execer) error
	Version() string
}

// Step is one idempotent schema change.
type Step struct {
	Name string
	SQL  string
}

// MigrationRunner handles database schema migrations
type MigrationRunner struct {
	version string
	steps   []Step
	log     *internal.Logger
}

// NewRunner creates a new migration runner
func NewRunner() *MigrationRunner {
	return &MigrationRunner{
		version: "1.1.0",
		steps:   Steps(),
		log:     internal.DefaultLogger.WithComponent("Migration"),
	}
}

// Version returns the migration version
func (r *MigrationRunner) Version() string {
	return r.version
}

// Run executes all database migrations in order. Every step is safe to re-run.
func (r *MigrationRunner) Run(ctx context.Context, db Execer) error {
	for _, step := range r.steps {
		r.log.Debug("applying %s", step.Name)
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			return errors.Wrapf(errors.DatabaseError(step.Name, err), "failed to apply migration %s", step.Name)
		}
	}
	r.log.Info("schema at version %s (%d steps)", r.version, len(r.steps))
	return nil
}

// Steps returns the schema steps in application order.
func Steps() []Step {
	return []Step{
		{
			Name: "create_launch_imports",
			SQL: `
		CREATE TABLE IF NOT EXISTS launch_imports (
			id UUID PRIMARY KEY,
			source TEXT NOT NULL,
			record_count INTEGER NOT NULL,
			imported_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		},
		{
			Name: "create_launch_records",
			SQL: `
		CREATE TABLE IF NOT EXISTS launch_records (
			id BIGSERIAL PRIMARY KEY,
			import_id UUID REFERENCES launch_imports(id) ON DELETE SET NULL,
			flight_number INTEGER NOT NULL DEFAULT 0,
			launch_site TEXT NOT NULL,
			payload_mass_kg DOUBLE PRECISION NOT NULL CHECK (payload_mass_kg >= 0),
			class SMALLINT NOT NULL CHECK (class IN (0, 1)),
			booster_version TEXT NOT NULL DEFAULT '',
			booster_version_category TEXT NOT NULL DEFAULT ''
		)`,
		},
		{
			Name: "index_launch_records_site",
			SQL:  `CREATE INDEX IF NOT EXISTS idx_launch_records_site ON launch_records(launch_site)`,
		},
	}
}
