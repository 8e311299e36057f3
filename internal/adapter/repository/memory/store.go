// Package memory is an in-process ledger store. It backs local development
// runs (store: memory) and the reconciliation tests.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/dreambox-backend/internal/domain"
)

// Store keeps every record in maps guarded by a single mutex.
// Transactions hold the mutex for their whole duration and work on a copy
// of the state that replaces the live state only on commit.
type Store struct {
	mu    sync.Mutex
	state *state
}

type state struct {
	lockedGoals      map[uuid.UUID]domain.LockedGoal
	flexibleGoals    map[uuid.UUID]domain.FlexibleGoal
	emergencyFunds   map[uuid.UUID]domain.EmergencyFund   // keyed by owner
	flexibleAccounts map[uuid.UUID]domain.FlexibleAccount // keyed by owner
	intents          map[string]domain.DepositIntent      // keyed by reference
}

var (
	_ domain.GoalRepository    = (*Store)(nil)
	_ domain.BalanceRepository = (*Store)(nil)
	_ domain.IntentRepository  = (*Store)(nil)
	_ domain.LedgerStore       = (*Store)(nil)
)

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{state: newState()}
}

func newState() *state {
	return &state{
		lockedGoals:      make(map[uuid.UUID]domain.LockedGoal),
		flexibleGoals:    make(map[uuid.UUID]domain.FlexibleGoal),
		emergencyFunds:   make(map[uuid.UUID]domain.EmergencyFund),
		flexibleAccounts: make(map[uuid.UUID]domain.FlexibleAccount),
		intents:          make(map[string]domain.DepositIntent),
	}
}

// clone copies the maps. Values are copied too, except pointer fields which
// are never mutated in place.
func (s *state) clone() *state {
	c := newState()
	for k, v := range s.lockedGoals {
		c.lockedGoals[k] = v
	}
	for k, v := range s.flexibleGoals {
		c.flexibleGoals[k] = v
	}
	for k, v := range s.emergencyFunds {
		c.emergencyFunds[k] = v
	}
	for k, v := range s.flexibleAccounts {
		c.flexibleAccounts[k] = v
	}
	for k, v := range s.intents {
		c.intents[k] = v
	}
	return c
}

// Ping always succeeds
func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

// CreateLockedGoal creates a new locked goal
func (s *Store) CreateLockedGoal(ctx context.Context, goal *domain.LockedGoal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.state.lockedGoals[goal.ID]; ok {
		return fmt.Errorf("failed to create locked goal: id %s already exists", goal.ID)
	}
	s.state.lockedGoals[goal.ID] = *goal
	return nil
}

// GetLockedGoal retrieves a locked goal owned by ownerID
func (s *Store) GetLockedGoal(ctx context.Context, ownerID, goalID uuid.UUID) (*domain.LockedGoal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state.lockedGoal(ownerID, goalID)
}

// ListLockedGoals retrieves all locked goals of an owner, oldest first
func (s *Store) ListLockedGoals(ctx context.Context, ownerID uuid.UUID) ([]*domain.LockedGoal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	goals := make([]*domain.LockedGoal, 0)
	for _, g := range s.state.lockedGoals {
		if g.OwnerID == ownerID {
			goals = append(goals, &g)
		}
	}
	sort.Slice(goals, func(i, j int) bool { return goals[i].CreatedAt.Before(goals[j].CreatedAt) })
	return goals, nil
}

// CreateFlexibleGoal creates a new flexible goal
func (s *Store) CreateFlexibleGoal(ctx context.Context, goal *domain.FlexibleGoal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.state.flexibleGoals[goal.ID]; ok {
		return fmt.Errorf("failed to create flexible goal: id %s already exists", goal.ID)
	}
	s.state.flexibleGoals[goal.ID] = *goal
	return nil
}

// ListFlexibleGoals retrieves all flexible goals of an owner, oldest first
func (s *Store) ListFlexibleGoals(ctx context.Context, ownerID uuid.UUID) ([]*domain.FlexibleGoal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	goals := make([]*domain.FlexibleGoal, 0)
	for _, g := range s.state.flexibleGoals {
		if g.OwnerID == ownerID {
			goals = append(goals, &g)
		}
	}
	sort.Slice(goals, func(i, j int) bool { return goals[i].CreatedAt.Before(goals[j].CreatedAt) })
	return goals, nil
}

// GetEmergencyFund retrieves the owner's emergency fund
func (s *Store) GetEmergencyFund(ctx context.Context, ownerID uuid.UUID) (*domain.EmergencyFund, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fund, ok := s.state.emergencyFunds[ownerID]
	if !ok {
		return nil, fmt.Errorf("emergency fund for owner %s: %w", ownerID, domain.ErrAccountNotFound)
	}
	return &fund, nil
}

// GetFlexibleAccount retrieves the owner's flexible account
func (s *Store) GetFlexibleAccount(ctx context.Context, ownerID uuid.UUID) (*domain.FlexibleAccount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.state.flexibleAccounts[ownerID]
	if !ok {
		return nil, fmt.Errorf("flexible account for owner %s: %w", ownerID, domain.ErrAccountNotFound)
	}
	return &account, nil
}

// Create creates a new unsettled intent
func (s *Store) Create(ctx context.Context, intent *domain.DepositIntent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.state.intents[intent.Reference]; ok {
		return fmt.Errorf("reference %s: %w", intent.Reference, domain.ErrDuplicateReference)
	}
	s.state.intents[intent.Reference] = *intent
	return nil
}

// GetByReference retrieves an intent scoped to its owner
func (s *Store) GetByReference(ctx context.Context, ownerID uuid.UUID, reference string) (*domain.DepositIntent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state.intent(ownerID, reference)
}

// UpdateReference re-keys an unsettled intent
func (s *Store) UpdateReference(ctx context.Context, intentID uuid.UUID, reference string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.state.intents[reference]; ok {
		return fmt.Errorf("reference %s: %w", reference, domain.ErrDuplicateReference)
	}
	for old, intent := range s.state.intents {
		if intent.ID != intentID || intent.Settled {
			continue
		}
		intent.Reference = reference
		delete(s.state.intents, old)
		s.state.intents[reference] = intent
		return nil
	}
	return fmt.Errorf("unsettled intent %s: %w", intentID, domain.ErrIntentNotFound)
}

// WithinTx runs fn against a private copy of the state and publishes it if fn succeeds
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context, tx domain.LedgerTx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	tx := &ledgerTx{state: s.state.clone()}
	if err := fn(ctx, tx); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.state = tx.state
	return nil
}

func (s *state) lockedGoal(ownerID, goalID uuid.UUID) (*domain.LockedGoal, error) {
	goal, ok := s.lockedGoals[goalID]
	if !ok || goal.OwnerID != ownerID {
		return nil, fmt.Errorf("locked goal %s: %w", goalID, domain.ErrGoalNotFound)
	}
	return &goal, nil
}

func (s *state) intent(ownerID uuid.UUID, reference string) (*domain.DepositIntent, error) {
	intent, ok := s.intents[reference]
	if !ok || intent.OwnerID != ownerID {
		return nil, fmt.Errorf("reference %s: %w", reference, domain.ErrIntentNotFound)
	}
	return &intent, nil
}

// ledgerTx implements domain.LedgerTx on a staged state
type ledgerTx struct {
	state *state
}

func (t *ledgerTx) LockIntent(ctx context.Context, ownerID uuid.UUID, reference string) (*domain.DepositIntent, error) {
	return t.state.intent(ownerID, reference)
}

func (t *ledgerTx) LockLockedGoal(ctx context.Context, ownerID, goalID uuid.UUID) (*domain.LockedGoal, error) {
	return t.state.lockedGoal(ownerID, goalID)
}

func (t *ledgerTx) CreditLockedGoal(ctx context.Context, goalID uuid.UUID, amount decimal.Decimal) (decimal.Decimal, error) {
	goal, ok := t.state.lockedGoals[goalID]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: locked goal %s vanished during settlement", domain.ErrInvariantViolation, goalID)
	}
	goal.CurrentAmount = goal.CurrentAmount.Add(amount)
	t.state.lockedGoals[goalID] = goal
	return goal.CurrentAmount, nil
}

func (t *ledgerTx) CreditEmergencyFund(ctx context.Context, ownerID uuid.UUID, amount decimal.Decimal, percentage int) (*domain.EmergencyFund, error) {
	fund, ok := t.state.emergencyFunds[ownerID]
	if !ok {
		fund = domain.EmergencyFund{ID: uuid.New(), OwnerID: ownerID, Balance: decimal.Zero, Percentage: percentage}
	}
	fund.Balance = fund.Balance.Add(amount)
	t.state.emergencyFunds[ownerID] = fund
	return &fund, nil
}

func (t *ledgerTx) CreditFlexibleAccount(ctx context.Context, ownerID uuid.UUID, amount decimal.Decimal) (*domain.FlexibleAccount, error) {
	account, ok := t.state.flexibleAccounts[ownerID]
	if !ok {
		account = domain.FlexibleAccount{ID: uuid.New(), OwnerID: ownerID, Balance: decimal.Zero}
	}
	account.Balance = account.Balance.Add(amount)
	t.state.flexibleAccounts[ownerID] = account
	return &account, nil
}

func (t *ledgerTx) MarkIntentSettled(ctx context.Context, intentID uuid.UUID, settledAt time.Time) error {
	for ref, intent := range t.state.intents {
		if intent.ID != intentID {
			continue
		}
		if intent.Settled {
			return fmt.Errorf("%w: intent %s settled twice", domain.ErrInvariantViolation, intentID)
		}
		intent.Settled = true
		intent.SettledAt = &settledAt
		t.state.intents[ref] = intent
		return nil
	}
	return fmt.Errorf("%w: intent %s vanished during settlement", domain.ErrInvariantViolation, intentID)
}
