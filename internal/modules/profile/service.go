package profile

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/creditgo/creditgo/internal/domain"
	"github.com/creditgo/creditgo/internal/modules/analysis"
	"github.com/creditgo/creditgo/internal/modules/credit"
	"github.com/creditgo/creditgo/internal/modules/sms"
	"github.com/creditgo/creditgo/internal/utils"
)

// ErrNotFound is returned when no state is stored for a user
var ErrNotFound = errors.New("profile not found")

// StateStore persists application state per user; *appstate.Repository satisfies it.
type StateStore interface {
	SaveState(userID string, state domain.AppState, ttl time.Duration) error
	LoadState(userID string) (*domain.AppState, error)
	DeleteState(userID string) error
}

// MetricsRecorder receives engine measurements; *metrics.Collector satisfies it.
type MetricsRecorder interface {
	RecordParse(messages, credits, debits int)
	RecordProfile(score int, safeRepayment float64, duration time.Duration)
	RecordStoreError()
}

// ServiceConfig tunes state retention
type ServiceConfig struct {
	StateTTL     time.Duration // Zero keeps state until deleted
	DemoStateTTL time.Duration // Applied instead when the demo messages were used
}

// Request describes one profile computation.
// Messages take precedence over UseDemoMessages.
type Request struct {
	User            domain.User         `json:"user"`
	Messages        []domain.RawMessage `json:"messages,omitempty"`
	UseDemoMessages bool                `json:"use_demo_messages"`
	BankFilter      bool                `json:"bank_filter"`
}

// Result is a computed profile together with the evidence it was built from
type Result struct {
	Profile  domain.FinancialProfile     `json:"profile"`
	Tier     credit.CreditTier           `json:"tier"`
	Analysis *domain.TransactionAnalysis `json:"analysis,omitempty"`
	usedDemo bool
}

// Service runs parse, analyze and build for a user and keeps the resulting state
type Service struct {
	store   StateStore
	builder *Builder
	metrics MetricsRecorder
	cfg     ServiceConfig
	log     zerolog.Logger
	now     func() time.Time
}

// NewService creates a profile service. metrics may be nil.
func NewService(store StateStore, builder *Builder, metrics MetricsRecorder, cfg ServiceConfig, log zerolog.Logger) *Service {
	if builder == nil {
		builder = NewBuilder(nil)
	}
	return &Service{
		store:   store,
		builder: builder,
		metrics: metrics,
		cfg:     cfg,
		log:     log.With().Str("service", "profile").Logger(),
		now:     time.Now,
	}
}

// Compute builds a profile without touching the store
func (s *Service) Compute(req Request) Result {
	defer utils.OperationTimer("compute_profile", s.log)()
	start := time.Now()

	messages, usedDemo := req.Messages, false
	if len(messages) == 0 && req.UseDemoMessages {
		messages, usedDemo = sms.DemoMessages(), true
	}

	var txAnalysis *domain.TransactionAnalysis
	if len(messages) > 0 {
		var transactions []domain.Transaction
		if req.BankFilter {
			transactions = sms.ParseBankMessages(messages)
		} else {
			transactions = sms.Parse(messages)
		}
		s.recordParse(len(messages), transactions)

		a := analysis.Analyze(transactions)
		txAnalysis = &a
	}

	p := s.builder.Build(InputFrom(req.User.Inputs(), txAnalysis))

	if s.metrics != nil {
		s.metrics.RecordProfile(p.CreditScore, p.SafeMonthlyRepayment, time.Since(start))
	}

	return Result{
		Profile:  p,
		Tier:     credit.GetCreditTier(p.CreditScore),
		Analysis: txAnalysis,
		usedDemo: usedDemo,
	}
}

// Recompute builds a fresh profile for userID and replaces the stored state.
func (s *Service) Recompute(userID string, req Request) (*domain.AppState, Result, error) {
	result := s.Compute(req)
	now := s.now()

	user := req.User
	user.ID = userID

	existing, err := s.store.LoadState(userID)
	if err != nil {
		s.recordStoreError()
		return nil, result, fmt.Errorf("failed to load state for %s: %w", userID, err)
	}
	switch {
	case existing != nil && !existing.User.CreatedAt.IsZero():
		user.CreatedAt = existing.User.CreatedAt
	case user.CreatedAt.IsZero():
		user.CreatedAt = now
	}

	profile := result.Profile
	state := domain.AppState{
		User:             user,
		FinancialProfile: &profile,
		Transactions:     []domain.Transaction{},
		VerificationStatus: domain.VerificationStatus{
			Identity:      user.IsIdentityVerified,
			Employment:    user.IsEmploymentVerified,
			SMSPermission: result.Analysis != nil,
		},
		IsOnboardingComplete: true,
		UpdatedAt:            now,
	}
	if result.Analysis != nil {
		state.Transactions = result.Analysis.Transactions
		state.VerificationStatus.Income = len(result.Analysis.Transactions) > 0
	}

	ttl := s.cfg.StateTTL
	if result.usedDemo && s.cfg.DemoStateTTL > 0 {
		ttl = s.cfg.DemoStateTTL
	}

	if err := s.store.SaveState(userID, state, ttl); err != nil {
		s.recordStoreError()
		return nil, result, fmt.Errorf("failed to save state for %s: %w", userID, err)
	}

	s.log.Info().
		Str("user_id", userID).
		Int("credit_score", profile.CreditScore).
		Str("tier", profile.Tier).
		Int("transactions", len(state.Transactions)).
		Bool("demo", result.usedDemo).
		Msg("Profile recomputed")

	return &state, result, nil
}

// Get returns the stored state for a user, or ErrNotFound
func (s *Service) Get(userID string) (*domain.AppState, error) {
	state, err := s.store.LoadState(userID)
	if err != nil {
		s.recordStoreError()
		return nil, fmt.Errorf("failed to load state for %s: %w", userID, err)
	}
	if state == nil {
		return nil, ErrNotFound
	}
	return state, nil
}

// Delete removes the stored state for a user
func (s *Service) Delete(userID string) error {
	if err := s.store.DeleteState(userID); err != nil {
		s.recordStoreError()
		return fmt.Errorf("failed to delete state for %s: %w", userID, err)
	}
	s.log.Info().Str("user_id", userID).Msg("Profile deleted")
	return nil
}

func (s *Service) recordParse(messages int, transactions []domain.Transaction) {
	if s.metrics == nil {
		return
	}
	credits, debits := 0, 0
	for _, tx := range transactions {
		if tx.Type == domain.TransactionCredit {
			credits++
		} else {
			debits++
		}
	}
	s.metrics.RecordParse(messages, credits, debits)
}

func (s *Service) recordStoreError() {
	if s.metrics != nil {
		s.metrics.RecordStoreError()
	}
}
