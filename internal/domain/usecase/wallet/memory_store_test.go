package wallet

import (
	"context"
	"sync"
	"time"

	"github.com/amirhossein-jamali/credit-wallet/internal/domain/entity"
	errs "github.com/amirhossein-jamali/credit-wallet/internal/domain/error"
	coreport "github.com/amirhossein-jamali/credit-wallet/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-wallet/internal/domain/port/persistence"
)

// fakeClock is a mutable time source for deterministic day-boundary tests
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(start time.Time) *fakeClock {
	return &fakeClock{now: start}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Since(t time.Time) time.Duration {
	return c.Now().Sub(t)
}

func (c *fakeClock) WithTimeout(ctx context.Context, _ time.Duration) (context.Context, context.CancelFunc) {
	return context.WithCancel(ctx)
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// quietLogger discards all output; concurrency tests generate a lot of it
type quietLogger struct {
	level coreport.LogLevel
}

func (l *quietLogger) SetLevel(level coreport.LogLevel) { l.level = level }
func (l *quietLogger) GetLevel() coreport.LogLevel      { return l.level }
func (l *quietLogger) Debug(string, map[string]any)     {}
func (l *quietLogger) Info(string, map[string]any)      {}
func (l *quietLogger) Warn(string, map[string]any)      {}
func (l *quietLogger) Error(string, map[string]any)     {}
func (l *quietLogger) Flush() error                     { return nil }

type memUser struct {
	credits        int64
	welcomeClaimed bool
}

// memStore is an in-memory wallet store used to exercise the full service
// under real goroutine concurrency without a database
type memStore struct {
	mu      sync.Mutex
	users   map[uint64]*memUser
	entries []entity.Transaction
	nextID  uint64
}

func newMemStore() *memStore {
	return &memStore{users: make(map[uint64]*memUser)}
}

func (s *memStore) addUser(id uint64, credits int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[id] = &memUser{credits: credits}
}

func (s *memStore) snapshot() (map[uint64]memUser, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	users := make(map[uint64]memUser, len(s.users))
	for id, u := range s.users {
		users[id] = *u
	}
	return users, len(s.entries)
}

func (s *memStore) restore(users map[uint64]memUser, entryCount int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = make(map[uint64]*memUser, len(users))
	for id, u := range users {
		copied := u
		s.users[id] = &copied
	}
	s.entries = s.entries[:entryCount]
}

func (s *memStore) ledgerSum(userID uint64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var sum int64
	for _, e := range s.entries {
		if e.UserID == userID {
			sum += e.Amount
		}
	}
	return sum
}

func (s *memStore) countByType(userID uint64, entryType entity.EntryType) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, e := range s.entries {
		if e.UserID == userID && e.Type == entryType {
			count++
		}
	}
	return count
}

func (s *memStore) credits(userID uint64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.users[userID].credits
}

// memUnitOfWork serializes whole transactions with a mutex, which is the
// in-memory analogue of the row lock the real store takes, and rolls back by
// restoring a snapshot taken at Begin.
type memUnitOfWork struct {
	store *memStore
	clock coreport.TimeProvider

	txMu      sync.Mutex
	snapUsers map[uint64]memUser
	snapCount int
}

func newMemUnitOfWork(store *memStore, clock coreport.TimeProvider) *memUnitOfWork {
	return &memUnitOfWork{store: store, clock: clock}
}

func (u *memUnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	u.txMu.Lock()
	u.snapUsers, u.snapCount = u.store.snapshot()
	return ctx, nil
}

func (u *memUnitOfWork) Commit(context.Context) error {
	u.snapUsers = nil
	u.txMu.Unlock()
	return nil
}

func (u *memUnitOfWork) Rollback(context.Context) error {
	u.store.restore(u.snapUsers, u.snapCount)
	u.snapUsers = nil
	u.txMu.Unlock()
	return nil
}

func (u *memUnitOfWork) GetUserRepository(context.Context) persistence.UserRepository {
	return &memUserRepository{store: u.store, clock: u.clock}
}

func (u *memUnitOfWork) GetTransactionRepository(context.Context) persistence.TransactionRepository {
	return &memTransactionRepository{store: u.store}
}

type memUserRepository struct {
	store *memStore
	clock coreport.TimeProvider
}

func (r *memUserRepository) GetByID(_ context.Context, id uint64) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	row, ok := r.store.users[id]
	if !ok {
		return nil, errs.ErrUserNotFound
	}
	user := &entity.User{ID: id, WelcomeClaimed: row.welcomeClaimed}
	user.SetCredits(row.credits, r.clock)
	return user, nil
}

func (r *memUserRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*entity.User, error) {
	return r.GetByID(ctx, id)
}

func (r *memUserRepository) Create(_ context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, exists := r.store.users[user.ID]; exists {
		return errs.ErrDuplicateUser
	}
	r.store.users[user.ID] = &memUser{credits: user.Credits(), welcomeClaimed: user.WelcomeClaimed}
	return nil
}

func (r *memUserRepository) AdjustCredits(_ context.Context, userID uint64, delta int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	row, ok := r.store.users[userID]
	if !ok {
		return errs.ErrUserNotFound
	}
	row.credits += delta
	return nil
}

func (r *memUserRepository) DebitCredits(_ context.Context, userID uint64, amount int64) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	row, ok := r.store.users[userID]
	if !ok {
		return false, errs.ErrUserNotFound
	}
	if row.credits < amount {
		return false, nil
	}
	row.credits -= amount
	return true, nil
}

func (r *memUserRepository) MarkWelcomeClaimed(_ context.Context, userID uint64) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	row, ok := r.store.users[userID]
	if !ok {
		return false, errs.ErrUserNotFound
	}
	if row.welcomeClaimed {
		return false, nil
	}
	row.welcomeClaimed = true
	return true, nil
}

type memTransactionRepository struct {
	store *memStore
}

func (r *memTransactionRepository) Create(_ context.Context, txn *entity.Transaction) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.nextID++
	txn.ID = r.store.nextID
	r.store.entries = append(r.store.entries, *txn)
	return nil
}

func (r *memTransactionRepository) ListByUser(_ context.Context, userID uint64, limit int) ([]entity.Transaction, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var result []entity.Transaction
	for i := len(r.store.entries) - 1; i >= 0; i-- {
		if r.store.entries[i].UserID != userID {
			continue
		}
		result = append(result, r.store.entries[i])
		if limit > 0 && len(result) == limit {
			break
		}
	}
	return result, nil
}

func (r *memTransactionRepository) HasEntrySince(_ context.Context, userID uint64, entryType entity.EntryType, since time.Time) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, e := range r.store.entries {
		if e.UserID == userID && e.Type == entryType && !e.CreatedAt.Before(since) {
			return true, nil
		}
	}
	return false, nil
}
