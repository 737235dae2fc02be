package postgres

import (
	"context"
	"fmt"

	"launchdash/domain/core"
	"launchdash/domain/launch"
	"launchdash/internal/errors"
	"launchdash/ports"

	"github.com/jmoiron/sqlx"
)

// insertBatchSize keeps each bulk insert well under the Postgres bind-parameter limit.
const insertBatchSize = 500

// launchRow is the launch_records row shape used for bulk inserts.
type launchRow struct {
	ImportID core.ID `db:"import_id"`
	launch.Record
}

// LaunchRepository stores launch records in the launch_records table.
type LaunchRepository struct {
	db *sqlx.DB
}

var _ ports.LaunchStore = (*LaunchRepository)(nil)

// NewLaunchRepository creates a new launch repository
func NewLaunchRepository(db *sqlx.DB) *LaunchRepository {
	return &LaunchRepository{db: db}
}

// Describe names the source in logs.
func (r *LaunchRepository) Describe() string { return "postgres:launch_records" }

// Load returns all launch records in insertion order.
func (r *LaunchRepository) Load(ctx context.Context) ([]launch.Record, error) {
	query := `SELECT
		flight_number, launch_site, payload_mass_kg, class, booster_version, booster_version_category
	FROM launch_records ORDER BY id`

	var records []launch.Record
	if err := r.db.SelectContext(ctx, &records, query); err != nil {
		return nil, errors.DatabaseError("failed to load launch records", err)
	}
	return records, nil
}

// Count returns the number of stored launch records.
func (r *LaunchRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM launch_records`); err != nil {
		return 0, errors.DatabaseError("failed to count launch records", err)
	}
	return n, nil
}

// ReplaceAll deletes every stored record and inserts records in one transaction.
// The import is logged in launch_imports under a fresh ID.
func (r *LaunchRepository) ReplaceAll(ctx context.Context, records []launch.Record) error {
	return r.ReplaceAllFrom(ctx, "unknown", records)
}

// ReplaceAllFrom is ReplaceAll with the import source recorded.
func (r *LaunchRepository) ReplaceAllFrom(ctx context.Context, source string, records []launch.Record) error {
	for i, rec := range records {
		if err := rec.Validate(); err != nil {
			return errors.WithCode(errors.CodeDatasetInvalid, fmt.Errorf("record %d: %w", i, err))
		}
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.DatabaseError("failed to begin transaction", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM launch_records`); err != nil {
		return errors.DatabaseError("failed to clear launch records", err)
	}

	importID := core.NewID()
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO launch_imports (id, source, record_count) VALUES ($1, $2, $3)`,
		importID, source, len(records),
	); err != nil {
		return errors.DatabaseError("failed to record import", err)
	}

	insert := `INSERT INTO launch_records (
		import_id, flight_number, launch_site, payload_mass_kg, class, booster_version, booster_version_category
	) VALUES (
		:import_id, :flight_number, :launch_site, :payload_mass_kg, :class, :booster_version, :booster_version_category
	)`

	for start := 0; start < len(records); start += insertBatchSize {
		end := min(start+insertBatchSize, len(records))
		batch := make([]launchRow, 0, end-start)
		for _, rec := range records[start:end] {
			batch = append(batch, launchRow{ImportID: importID, Record: rec})
		}
		if _, err := tx.NamedExecContext(ctx, insert, batch); err != nil {
			return errors.DatabaseError(fmt.Sprintf("failed to insert launch records %d-%d", start, end), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.DatabaseError("failed to commit launch import", err)
	}
	return nil
}
