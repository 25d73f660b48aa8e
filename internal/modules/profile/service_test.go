package profile

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creditgo/creditgo/internal/appstate"
	"github.com/creditgo/creditgo/internal/database"
	"github.com/creditgo/creditgo/internal/domain"
	"github.com/creditgo/creditgo/internal/modules/credit"
)

type savedState struct {
	state domain.AppState
	ttl   time.Duration
}

type memoryStore struct {
	states  map[string]savedState
	loadErr error
	saveErr error
	delErr  error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{states: make(map[string]savedState)}
}

func (m *memoryStore) SaveState(userID string, state domain.AppState, ttl time.Duration) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.states[userID] = savedState{state: state, ttl: ttl}
	return nil
}

func (m *memoryStore) LoadState(userID string) (*domain.AppState, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	saved, ok := m.states[userID]
	if !ok {
		return nil, nil
	}
	state := saved.state
	return &state, nil
}

func (m *memoryStore) DeleteState(userID string) error {
	if m.delErr != nil {
		return m.delErr
	}
	delete(m.states, userID)
	return nil
}

type recordingMetrics struct {
	messages, credits, debits int
	profiles                  int
	lastScore                 int
	storeErrors               int
}

func (r *recordingMetrics) RecordParse(messages, credits, debits int) {
	r.messages += messages
	r.credits += credits
	r.debits += debits
}

func (r *recordingMetrics) RecordProfile(score int, _ float64, _ time.Duration) {
	r.profiles++
	r.lastScore = score
}

func (r *recordingMetrics) RecordStoreError() { r.storeErrors++ }

func newTestService(store StateStore, metrics MetricsRecorder, cfg ServiceConfig) *Service {
	svc := NewService(store, NewBuilder(fixedClock), metrics, cfg, zerolog.New(nil).Level(zerolog.Disabled))
	svc.now = fixedClock
	return svc
}

func verifiedUser() domain.User {
	return domain.User{
		FirstName:            "Ada",
		EmploymentType:       domain.EmploymentSalaried,
		MonthlyIncome:        300000,
		IsIdentityVerified:   true,
		IsEmploymentVerified: true,
	}
}

func TestCompute_WithoutMessages(t *testing.T) {
	metrics := &recordingMetrics{}
	svc := newTestService(newMemoryStore(), metrics, ServiceConfig{})

	result := svc.Compute(Request{User: domain.User{MonthlyIncome: 300000}})

	assert.Nil(t, result.Analysis)
	assert.Equal(t, 45000.0, result.Profile.SafeMonthlyRepayment)
	assert.Equal(t, credit.TierBronze, result.Tier.Tier)
	assert.Equal(t, 0, metrics.messages)
	assert.Equal(t, 1, metrics.profiles)
	assert.Equal(t, 35, metrics.lastScore)
}

func TestCompute_MessagesWithNoTransactions(t *testing.T) {
	metrics := &recordingMetrics{}
	svc := newTestService(newMemoryStore(), metrics, ServiceConfig{})

	without := svc.Compute(Request{User: domain.User{MonthlyIncome: 300000}})
	with := svc.Compute(Request{
		User:     domain.User{MonthlyIncome: 300000},
		Messages: []domain.RawMessage{{Body: "hello, see you at 5", Date: fixedClock()}},
	})

	require.NotNil(t, with.Analysis)
	assert.Empty(t, with.Analysis.Transactions)
	assert.Equal(t, 300000.0, with.Profile.TotalIncome)
	assert.Equal(t, 45000.0, with.Profile.SafeMonthlyRepayment)
	assert.Equal(t, 60000.0, with.Profile.MaxMonthlyRepayment)
	assert.Equal(t, without.Profile.CreditScore, with.Profile.CreditScore)
	assert.Equal(t, 1, metrics.messages)
}

func TestCompute_DemoMessages(t *testing.T) {
	metrics := &recordingMetrics{}
	svc := newTestService(newMemoryStore(), metrics, ServiceConfig{})

	result := svc.Compute(Request{User: verifiedUser(), UseDemoMessages: true})

	require.NotNil(t, result.Analysis)
	assert.True(t, result.usedDemo)
	assert.Len(t, result.Analysis.Transactions, 11)
	assert.Equal(t, 100, result.Profile.CreditScore)
	assert.Equal(t, credit.TierPlatinum, result.Tier.Tier)
	assert.Equal(t, "Platinum", result.Tier.Name)

	assert.Equal(t, 11, metrics.messages)
	assert.Equal(t, 8, metrics.credits)
	assert.Equal(t, 3, metrics.debits)
}

func TestCompute_SuppliedMessagesWinOverDemo(t *testing.T) {
	svc := newTestService(newMemoryStore(), nil, ServiceConfig{})

	result := svc.Compute(Request{
		User:            verifiedUser(),
		UseDemoMessages: true,
		Messages: []domain.RawMessage{
			{Body: "Acct credited with NGN 50,000.00 from Upwork", Date: fixedClock()},
		},
	})

	require.NotNil(t, result.Analysis)
	assert.False(t, result.usedDemo)
	assert.Len(t, result.Analysis.Transactions, 1)
}

func TestCompute_BankFilter(t *testing.T) {
	svc := newTestService(newMemoryStore(), nil, ServiceConfig{})
	messages := []domain.RawMessage{
		{Body: "You received 2,000 naira gift voucher", Address: "PROMO", Date: fixedClock()},
	}

	unfiltered := svc.Compute(Request{Messages: messages})
	filtered := svc.Compute(Request{Messages: messages, BankFilter: true})

	require.NotNil(t, unfiltered.Analysis)
	require.NotNil(t, filtered.Analysis)
	assert.Len(t, unfiltered.Analysis.Transactions, 1)
	assert.Empty(t, filtered.Analysis.Transactions)
}

func TestRecompute_StoresState(t *testing.T) {
	store := newMemoryStore()
	svc := newTestService(store, nil, ServiceConfig{StateTTL: 48 * time.Hour, DemoStateTTL: appstate.DemoStateTTL})

	state, result, err := svc.Recompute("user-1", Request{User: verifiedUser(), UseDemoMessages: true})
	require.NoError(t, err)

	assert.Equal(t, "user-1", state.User.ID)
	assert.True(t, state.User.CreatedAt.Equal(fixedClock()))
	assert.True(t, state.UpdatedAt.Equal(fixedClock()))
	assert.True(t, state.IsOnboardingComplete)
	assert.Equal(t, domain.VerificationStatus{Identity: true, Employment: true, Income: true, SMSPermission: true}, state.VerificationStatus)
	assert.Len(t, state.Transactions, 11)
	require.NotNil(t, state.FinancialProfile)
	assert.Equal(t, result.Profile, *state.FinancialProfile)

	saved := store.states["user-1"]
	assert.Equal(t, appstate.DemoStateTTL, saved.ttl)
}

func TestRecompute_UsesStateTTLWithoutDemo(t *testing.T) {
	store := newMemoryStore()
	svc := newTestService(store, nil, ServiceConfig{StateTTL: 48 * time.Hour, DemoStateTTL: appstate.DemoStateTTL})

	state, _, err := svc.Recompute("user-2", Request{User: verifiedUser()})
	require.NoError(t, err)

	assert.Equal(t, 48*time.Hour, store.states["user-2"].ttl)
	assert.NotNil(t, state.Transactions)
	assert.Empty(t, state.Transactions)
	assert.False(t, state.VerificationStatus.SMSPermission)
	assert.False(t, state.VerificationStatus.Income)
}

func TestRecompute_PreservesCreatedAt(t *testing.T) {
	store := newMemoryStore()
	svc := newTestService(store, nil, ServiceConfig{})

	first, _, err := svc.Recompute("user-3", Request{User: verifiedUser()})
	require.NoError(t, err)

	later := fixedClock().Add(72 * time.Hour)
	svc.now = func() time.Time { return later }

	user := verifiedUser()
	user.MonthlyIncome = 600000
	second, _, err := svc.Recompute("user-3", Request{User: user})
	require.NoError(t, err)

	assert.True(t, second.User.CreatedAt.Equal(first.User.CreatedAt))
	assert.True(t, second.UpdatedAt.Equal(later))
	assert.Equal(t, 600000.0, second.User.MonthlyIncome)
}

func TestRecompute_StoreErrors(t *testing.T) {
	boom := errors.New("disk full")

	t.Run("load", func(t *testing.T) {
		store := newMemoryStore()
		store.loadErr = boom
		metrics := &recordingMetrics{}
		svc := newTestService(store, metrics, ServiceConfig{})

		state, _, err := svc.Recompute("u", Request{User: verifiedUser()})
		assert.Nil(t, state)
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, 1, metrics.storeErrors)
	})

	t.Run("save", func(t *testing.T) {
		store := newMemoryStore()
		store.saveErr = boom
		metrics := &recordingMetrics{}
		svc := newTestService(store, metrics, ServiceConfig{})

		state, result, err := svc.Recompute("u", Request{User: verifiedUser()})
		assert.Nil(t, state)
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, 1, metrics.storeErrors)
		// The profile is still computed
		assert.Equal(t, 1, metrics.profiles)
		assert.NotZero(t, result.Profile.CreditScore)
	})
}

func TestGetAndDelete(t *testing.T) {
	store := newMemoryStore()
	svc := newTestService(store, nil, ServiceConfig{})

	_, err := svc.Get("missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, _, err = svc.Recompute("user-4", Request{User: verifiedUser()})
	require.NoError(t, err)

	state, err := svc.Get("user-4")
	require.NoError(t, err)
	assert.Equal(t, "user-4", state.User.ID)

	require.NoError(t, svc.Delete("user-4"))
	_, err = svc.Get("user-4")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetAndDelete_StoreErrors(t *testing.T) {
	boom := errors.New("locked")
	store := newMemoryStore()
	store.loadErr = boom
	store.delErr = boom
	metrics := &recordingMetrics{}
	svc := newTestService(store, metrics, ServiceConfig{})

	_, err := svc.Get("u")
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, svc.Delete("u"), boom)
	assert.Equal(t, 2, metrics.storeErrors)
}

func TestService_WithSQLiteRepository(t *testing.T) {
	db, err := database.New(database.Config{
		Path: filepath.Join(t.TempDir(), "app_state.db"),
		Name: database.NameAppState,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.Migrate())

	log := zerolog.New(nil).Level(zerolog.Disabled)
	repo := appstate.NewRepository(db.Conn(), "creditgo-storage", log)
	svc := newTestService(repo, nil, ServiceConfig{})

	saved, _, err := svc.Recompute("user-5", Request{User: verifiedUser(), UseDemoMessages: true})
	require.NoError(t, err)

	loaded, err := svc.Get("user-5")
	require.NoError(t, err)
	assert.Equal(t, saved.FinancialProfile.CreditScore, loaded.FinancialProfile.CreditScore)
	assert.Equal(t, saved.FinancialProfile.SafeMonthlyRepayment, loaded.FinancialProfile.SafeMonthlyRepayment)
	assert.Len(t, loaded.Transactions, len(saved.Transactions))
	assert.True(t, loaded.User.CreatedAt.Equal(saved.User.CreatedAt))

	require.NoError(t, svc.Delete("user-5"))
	_, err = svc.Get("user-5")
	assert.ErrorIs(t, err, ErrNotFound)
}
