package wallet

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/credit-wallet/internal/domain/entity"
)

// newMemService wires the service against the in-memory store so the real
// operation code runs under real goroutine concurrency
func newMemService(t *testing.T, clock *fakeClock, cfg Config) (*Service, *memStore) {
	t.Helper()

	store := newMemStore()
	uow := newMemUnitOfWork(store, clock)

	service, err := NewService(uow, clock, &quietLogger{}, nil, cfg)
	require.NoError(t, err)
	return service, store
}

func TestConcurrentConsumption(t *testing.T) {
	clock := newFakeClock(time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC))
	service, store := newMemService(t, clock, Config{DailyAllowance: 3, WelcomeGrant: 10})

	ctx := context.Background()
	userID := uint64(1)
	store.addUser(userID, 0)

	// 10 goroutines each try to consume 1 credit; today's allowance of 3 is
	// granted exactly once on first contact, so exactly 3 debits may succeed
	const callers = 10
	results := make([]*Result, callers)
	errs := make([]error, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = service.Consume(ctx, userID, "chat_message", 1)
		}(i)
	}
	wg.Wait()

	successes := 0
	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		require.NotNil(t, results[i])
		if results[i].Success {
			successes++
		} else {
			assert.Equal(t, "Insufficient credits", results[i].Message)
		}
	}

	assert.Equal(t, 3, successes)
	assert.Equal(t, int64(0), store.credits(userID))
	assert.Equal(t, 1, store.countByType(userID, entity.EntryDailyGrant))
	assert.Equal(t, 3, store.countByType(userID, entity.EntryConsumption))
	assert.Equal(t, store.credits(userID), store.ledgerSum(userID))
}

func TestConcurrentStatusCallsGrantOnce(t *testing.T) {
	clock := newFakeClock(time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC))
	service, store := newMemService(t, clock, Config{DailyAllowance: 3, WelcomeGrant: 10})

	ctx := context.Background()
	userID := uint64(1)
	store.addUser(userID, 0)

	const callers = 5
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := service.GetStatus(ctx, userID)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, store.countByType(userID, entity.EntryDailyGrant))
	assert.Equal(t, int64(3), store.credits(userID))
	assert.Equal(t, store.credits(userID), store.ledgerSum(userID))
}

func TestConcurrentWelcomeClaims(t *testing.T) {
	clock := newFakeClock(time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC))
	service, store := newMemService(t, clock, Config{DailyAllowance: 3, WelcomeGrant: 10})

	ctx := context.Background()
	userID := uint64(1)
	store.addUser(userID, 0)

	const callers = 5
	results := make([]*Result, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			result, err := service.ClaimWelcome(ctx, userID)
			assert.NoError(t, err)
			results[i] = result
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, result := range results {
		if result != nil && result.Success {
			successes++
		}
	}

	assert.Equal(t, 1, successes)
	assert.Equal(t, int64(10), store.credits(userID))
	assert.Equal(t, 1, store.countByType(userID, entity.EntryManualAdjustment))
	assert.Equal(t, store.credits(userID), store.ledgerSum(userID))
}

func TestWalletLifecycleAcrossDays(t *testing.T) {
	clock := newFakeClock(time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC))
	service, store := newMemService(t, clock, Config{DailyAllowance: 3, WelcomeGrant: 10})

	ctx := context.Background()
	userID := uint64(1)
	store.addUser(userID, 0)

	// First contact of the day grants the allowance
	status, err := service.GetStatus(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), status.Credits)
	assert.False(t, status.WelcomeClaimed)

	// Welcome grant stacks on top of the allowance
	result, err := service.ClaimWelcome(ctx, userID)
	require.NoError(t, err)
	assert.True(t, result.Success)

	status, err = service.GetStatus(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(13), status.Credits)
	assert.True(t, status.WelcomeClaimed)

	// Spend five credits one at a time
	for i := 0; i < 5; i++ {
		result, err = service.Consume(ctx, userID, "chat_message", 1)
		require.NoError(t, err)
		assert.True(t, result.Success)
	}

	status, err = service.GetStatus(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(8), status.Credits)

	// Same day: no second allowance
	assert.Equal(t, 1, store.countByType(userID, entity.EntryDailyGrant))

	// Next day: a fresh allowance arrives on first contact
	clock.Advance(24 * time.Hour)
	status, err = service.GetStatus(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(11), status.Credits)
	assert.Equal(t, 2, store.countByType(userID, entity.EntryDailyGrant))

	// The ledger always reconciles with the balance
	assert.Equal(t, store.credits(userID), store.ledgerSum(userID))

	history, err := service.GetTransactions(ctx, userID, 0)
	require.NoError(t, err)
	assert.Len(t, history, 8)
	assert.Equal(t, entity.EntryDailyGrant, history[0].Type)
}
