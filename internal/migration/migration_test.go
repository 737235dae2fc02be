package migration

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"testing"

	"launchdash/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingExecer struct {
	statements []string
	failOn     string
}

func (e *recordingExecer) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	if e.failOn != "" && strings.Contains(query, e.failOn) {
		return nil, fmt.Errorf("relation already locked")
	}
	e.statements = append(e.statements, query)
	return nil, nil
}

func TestSteps_AreIdempotent(t *testing.T) {
	names := make(map[string]bool)
	for _, step := range Steps() {
		assert.False(t, names[step.Name], "duplicate step %s", step.Name)
		names[step.Name] = true
		assert.Contains(t, step.SQL, "IF NOT EXISTS", "step %s", step.Name)
	}
}

func TestRun_AppliesStepsInOrder(t *testing.T) {
	db := &recordingExecer{}
	runner := NewRunner()

	require.NoError(t, runner.Run(context.Background(), db))
	require.Len(t, db.statements, len(Steps()))
	assert.Contains(t, db.statements[0], "launch_imports")
	assert.Contains(t, db.statements[1], "launch_records")
	assert.Equal(t, "1.1.0", runner.Version())
}

func TestRun_StopsOnFailure(t *testing.T) {
	db := &recordingExecer{failOn: "CREATE TABLE IF NOT EXISTS launch_records"}

	err := NewRunner().Run(context.Background(), db)
	require.Error(t, err)
	assert.Equal(t, errors.CodeDatabaseError, errors.GetCode(err))
	assert.Contains(t, err.Error(), "create_launch_records")
	assert.Len(t, db.statements, 1)
}
