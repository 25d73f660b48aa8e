package appstate

import (
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creditgo/creditgo/internal/domain"
)

const testSchema = `
CREATE TABLE app_state (
    namespace  TEXT    NOT NULL,
    key        TEXT    NOT NULL,
    data       TEXT    NOT NULL,
    updated_at INTEGER NOT NULL,
    expires_at INTEGER NOT NULL DEFAULT 0,
    PRIMARY KEY (namespace, key)
);
CREATE INDEX idx_app_state_expires ON app_state(expires_at);
`

func setupTestDB(t *testing.T) *sql.DB {
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	// Every new connection to :memory: is a fresh database
	db.SetMaxOpenConns(1)

	_, err = db.Exec(testSchema)
	require.NoError(t, err)

	return db
}

func newTestRepo(t *testing.T, db *sql.DB, now time.Time) *Repository {
	repo := NewRepository(db, "creditgo-storage", zerolog.New(nil).Level(zerolog.Disabled))
	repo.now = func() time.Time { return now }
	return repo
}

var fixedNow = time.Date(2026, time.January, 15, 12, 0, 0, 0, time.UTC)

func TestStore_NoExpiry(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := newTestRepo(t, db, fixedNow)
	require.NoError(t, repo.Store("k", map[string]int{"a": 1}, NoExpiry))

	var data string
	var updatedAt, expires int64
	err := db.QueryRow("SELECT data, updated_at, expires_at FROM app_state WHERE namespace = ? AND key = ?",
		"creditgo-storage", "k").Scan(&data, &updatedAt, &expires)
	require.NoError(t, err)

	assert.JSONEq(t, `{"a":1}`, data)
	assert.Equal(t, fixedNow.Unix(), updatedAt)
	assert.Equal(t, int64(0), expires)
}

func TestStore_ReplacesExistingValue(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := newTestRepo(t, db, fixedNow)
	require.NoError(t, repo.Store("k", "first", NoExpiry))
	require.NoError(t, repo.Store("k", "second", NoExpiry))

	raw, err := repo.Get("k")
	require.NoError(t, err)
	assert.JSONEq(t, `"second"`, string(raw))

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM app_state").Scan(&count))
	assert.Equal(t, 1, count)
}

func TestStore_UnmarshalableData(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := newTestRepo(t, db, fixedNow)
	err := repo.Store("k", make(chan int), NoExpiry)
	assert.Error(t, err)
}

func TestGetIfFresh(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	writer := newTestRepo(t, db, fixedNow)
	require.NoError(t, writer.Store("short", 1, time.Hour))
	require.NoError(t, writer.Store("forever", 2, NoExpiry))

	later := newTestRepo(t, db, fixedNow.Add(2*time.Hour))

	raw, err := later.GetIfFresh("short")
	require.NoError(t, err)
	assert.Nil(t, raw, "expired entries are not fresh")

	raw, err = later.Get("short")
	require.NoError(t, err)
	assert.Equal(t, json.RawMessage("1"), raw, "Get ignores expiry")

	raw, err = later.GetIfFresh("forever")
	require.NoError(t, err)
	assert.Equal(t, json.RawMessage("2"), raw)
}

func TestGet_MissingKey(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := newTestRepo(t, db, fixedNow)

	raw, err := repo.Get("missing")
	assert.NoError(t, err)
	assert.Nil(t, raw)

	raw, err = repo.GetIfFresh("missing")
	assert.NoError(t, err)
	assert.Nil(t, raw)
}

func TestNamespacesAreIsolated(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	a := newTestRepo(t, db, fixedNow)
	b := NewRepository(db, "other", zerolog.Nop())

	require.NoError(t, a.Store("k", "a", NoExpiry))

	raw, err := b.Get("k")
	require.NoError(t, err)
	assert.Nil(t, raw)
	assert.Equal(t, "other", b.Namespace())
}

func TestDelete(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := newTestRepo(t, db, fixedNow)
	require.NoError(t, repo.Store("k", 1, NoExpiry))

	require.NoError(t, repo.Delete("k"))
	require.NoError(t, repo.Delete("k"), "deleting twice is fine")

	raw, err := repo.Get("k")
	require.NoError(t, err)
	assert.Nil(t, raw)
}

func TestDeleteExpired(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	writer := newTestRepo(t, db, fixedNow)
	require.NoError(t, writer.Store("expired-1", 1, time.Minute))
	require.NoError(t, writer.Store("expired-2", 2, time.Hour))
	require.NoError(t, writer.Store("fresh", 3, 48*time.Hour))
	require.NoError(t, writer.Store("forever", 4, NoExpiry))

	cleaner := newTestRepo(t, db, fixedNow.Add(2*time.Hour))
	deleted, err := cleaner.DeleteExpired()
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	var remaining int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM app_state").Scan(&remaining))
	assert.Equal(t, 2, remaining)
}

func TestSaveAndLoadState(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := newTestRepo(t, db, fixedNow)

	expenses := 120000.0
	state := domain.AppState{
		User: domain.User{
			ID:              "user-1",
			FirstName:       "Ada",
			EmploymentType:  domain.EmploymentSalaried,
			MonthlyIncome:   300000,
			MonthlyExpenses: &expenses,
		},
		FinancialProfile: &domain.FinancialProfile{
			SafeMonthlyRepayment: 45000,
			MaxMonthlyRepayment:  60000,
			CreditScore:          35,
			Tier:                 "bronze",
		},
		Transactions: []domain.Transaction{
			{ID: "txn_1", Type: domain.TransactionCredit, Amount: 300000, Date: fixedNow},
		},
		IsOnboardingComplete: true,
		UpdatedAt:            fixedNow,
	}

	require.NoError(t, repo.SaveState("user-1", state, NoExpiry))

	loaded, err := repo.LoadState("user-1")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, state.User.FirstName, loaded.User.FirstName)
	assert.Equal(t, 120000.0, *loaded.User.MonthlyExpenses)
	assert.Equal(t, 45000.0, loaded.FinancialProfile.SafeMonthlyRepayment)
	assert.True(t, loaded.Transactions[0].Date.Equal(fixedNow))

	missing, err := repo.LoadState("user-2")
	require.NoError(t, err)
	assert.Nil(t, missing)

	require.NoError(t, repo.DeleteState("user-1"))
	gone, err := repo.LoadState("user-1")
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestLoadState_CorruptData(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	_, err := db.Exec("INSERT INTO app_state (namespace, key, data, updated_at) VALUES (?, ?, ?, ?)",
		"creditgo-storage", "user:bad", "{not json", fixedNow.Unix())
	require.NoError(t, err)

	repo := newTestRepo(t, db, fixedNow)
	_, err = repo.LoadState("bad")
	assert.Error(t, err)
}

func TestExpiresAt(t *testing.T) {
	assert.Equal(t, int64(0), expiresAt(fixedNow, NoExpiry))
	assert.Equal(t, int64(0), expiresAt(fixedNow, -time.Hour))
	assert.Equal(t, fixedNow.Add(DemoStateTTL).Unix(), expiresAt(fixedNow, DemoStateTTL))
}
