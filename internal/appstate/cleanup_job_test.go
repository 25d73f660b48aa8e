package appstate

import (
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanupJobName(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	job := NewCleanupJob(newTestRepo(t, db, fixedNow), zerolog.Nop())
	assert.Equal(t, "app_state_cleanup", job.Name())
}

func TestCleanupJobRun(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	writer := newTestRepo(t, db, fixedNow)
	require.NoError(t, writer.Store("old", 1, time.Minute))
	require.NoError(t, writer.Store("keep", 2, NoExpiry))

	job := NewCleanupJob(newTestRepo(t, db, fixedNow.Add(time.Hour)), zerolog.Nop())
	require.NoError(t, job.Run())

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM app_state").Scan(&count))
	assert.Equal(t, 1, count)
}

func TestCleanupJobRun_Error(t *testing.T) {
	db := setupTestDB(t)
	job := NewCleanupJob(newTestRepo(t, db, fixedNow), zerolog.Nop())
	db.Close()

	assert.Error(t, job.Run())
}

type countingRecorder struct{ total int64 }

func (c *countingRecorder) RecordExpiredDeleted(n int64) { c.total += n }

func TestCleanupJobRun_Recorder(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	writer := newTestRepo(t, db, fixedNow)
	require.NoError(t, writer.Store("a", 1, time.Minute))
	require.NoError(t, writer.Store("b", 2, time.Minute))

	rec := &countingRecorder{}
	job := NewCleanupJob(newTestRepo(t, db, fixedNow.Add(time.Hour)), zerolog.Nop())
	job.SetRecorder(rec)

	require.NoError(t, job.Run())
	assert.Equal(t, int64(2), rec.total)
}
