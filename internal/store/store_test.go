package store

import (
	"context"
	"errors"
	"math"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loketh/ledger/internal/domain"
)

// StoreTestSuite provides the interface for running store tests against different implementations
type StoreTestSuite struct {
	Store Store
	// InitDB should be called before each test to initialize the database
	InitDB func(t *testing.T) Store
	// CleanupDB should be called after each test to clean up the database
	CleanupDB func(t *testing.T)
}

var (
	organizerA = common.HexToAddress("0x00000000000000000000000000000000000000a1")
	organizerB = common.HexToAddress("0x00000000000000000000000000000000000000a2")
	buyerB     = common.HexToAddress("0x00000000000000000000000000000000000000b1")
	buyerC     = common.HexToAddress("0x00000000000000000000000000000000000000c1")
	buyerD     = common.HexToAddress("0x00000000000000000000000000000000000000d1")
	tokenUSD   = common.HexToAddress("0x00000000000000000000000000000000000005d1")
	tokenDAI   = common.HexToAddress("0x00000000000000000000000000000000000005d2")
	admin      = common.HexToAddress("0x0000000000000000000000000000000000000ad1")
)

const testNow int64 = 1_700_000_000

// =============================================================================
// Test Data Builders
// =============================================================================

// buildTestEvent creates an event input starting 1000s and ending 2000s after testNow
func buildTestEvent(organizer domain.Account, price int64, quota uint64) CreateEventInput {
	return CreateEventInput{
		Name:      "Conf",
		Organizer: organizer,
		StartTime: testNow + 1000,
		EndTime:   testNow + 2000,
		Price:     big.NewInt(price),
		Quota:     quota,
		Currency:  domain.NativeCurrency(),
	}
}

func reserve(eventID uint64, buyer domain.Account, now int64) ReserveTicketInput {
	return ReserveTicketInput{EventID: eventID, Buyer: buyer, Now: now, HoldTTL: 5 * time.Minute}
}

// buyTicket reserves and confirms in one go
func buyTicket(t *testing.T, store Store, eventID uint64, buyer domain.Account) *domain.Purchase {
	t.Helper()
	ctx := context.Background()
	hold, err := store.ReserveTicket(ctx, reserve(eventID, buyer, testNow))
	require.NoError(t, err)
	purchase, err := store.ConfirmTicket(ctx, hold.ID, "")
	require.NoError(t, err)
	return purchase
}

// =============================================================================
// Event store
// =============================================================================

func testCreateEvent(t *testing.T, store Store) {
	ctx := context.Background()

	total, err := store.TotalEvents(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), total)

	t.Run("ids are sequential starting at one", func(t *testing.T) {
		for i := uint64(1); i <= 3; i++ {
			organizer := organizerA
			if i == 2 {
				organizer = organizerB
			}
			event, err := store.CreateEvent(ctx, buildTestEvent(organizer, 100, 2))
			require.NoError(t, err)
			assert.Equal(t, i, event.ID)
		}

		total, err := store.TotalEvents(ctx)
		require.NoError(t, err)
		assert.Equal(t, uint64(3), total)
	})

	t.Run("stored record starts with empty counters", func(t *testing.T) {
		event, err := store.GetEvent(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "Conf", event.Name)
		assert.Equal(t, organizerA, event.Organizer)
		assert.Equal(t, testNow+1000, event.StartTime)
		assert.Equal(t, testNow+2000, event.EndTime)
		assert.Equal(t, "100", event.Price.String())
		assert.Equal(t, uint64(2), event.Quota)
		assert.Equal(t, uint64(0), event.SoldCount)
		assert.Equal(t, 0, event.Collected.Sign())
		assert.True(t, event.Currency.IsNative())
		assert.Equal(t, domain.NATIVE_CURRENCY, event.Currency.Name)
	})

	t.Run("organizer index", func(t *testing.T) {
		count, err := store.EventsOf(ctx, organizerA)
		require.NoError(t, err)
		assert.Equal(t, uint64(2), count)

		ids, err := store.EventsOfOwner(ctx, organizerA)
		require.NoError(t, err)
		assert.Equal(t, []uint64{1, 3}, ids)

		ids, err = store.EventsOfOwner(ctx, buyerB)
		require.NoError(t, err)
		assert.Empty(t, ids)

		owns, err := store.OrganizerOwns(ctx, organizerB, 2)
		require.NoError(t, err)
		assert.True(t, owns)

		owns, err = store.OrganizerOwns(ctx, organizerB, 1)
		require.NoError(t, err)
		assert.False(t, owns)

		owns, err = store.OrganizerOwns(ctx, organizerB, 99)
		require.NoError(t, err)
		assert.False(t, owns)
	})

	t.Run("token currency round trips", func(t *testing.T) {
		input := buildTestEvent(organizerA, 50, 1)
		input.Currency = domain.TokenCurrency("USD", tokenUSD)
		event, err := store.CreateEvent(ctx, input)
		require.NoError(t, err)

		got, err := store.GetEvent(ctx, event.ID)
		require.NoError(t, err)
		assert.False(t, got.Currency.IsNative())
		assert.Equal(t, "USD", got.Currency.Name)
		assert.Equal(t, tokenUSD, got.Currency.Token)
	})

	t.Run("large amounts are kept exactly", func(t *testing.T) {
		input := buildTestEvent(organizerA, 0, 1)
		input.Price, _ = new(big.Int).SetString("100000000000000000000000000000", 10)
		event, err := store.CreateEvent(ctx, input)
		require.NoError(t, err)

		got, err := store.GetEvent(ctx, event.ID)
		require.NoError(t, err)
		assert.Equal(t, "100000000000000000000000000000", got.Price.String())
	})
}

func testGetEventOutOfRange(t *testing.T, store Store) {
	ctx := context.Background()

	_, err := store.GetEvent(ctx, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidEventID)

	_, err = store.GetEvent(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrInvalidEventID)

	_, err = store.CreateEvent(ctx, buildTestEvent(organizerA, 1, 1))
	require.NoError(t, err)

	_, err = store.GetEvent(ctx, 2)
	assert.ErrorIs(t, err, domain.ErrInvalidEventID)

	_, err = store.EventPurchases(ctx, 2)
	assert.ErrorIs(t, err, domain.ErrInvalidEventID)
}

func testGetEventReturnsSnapshot(t *testing.T, store Store) {
	ctx := context.Background()

	_, err := store.CreateEvent(ctx, buildTestEvent(organizerA, 100, 1))
	require.NoError(t, err)

	snapshot, err := store.GetEvent(ctx, 1)
	require.NoError(t, err)
	snapshot.Price.SetInt64(1)
	snapshot.SoldCount = 1

	event, err := store.GetEvent(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "100", event.Price.String())
	assert.Equal(t, uint64(0), event.SoldCount)
}

// =============================================================================
// Token registry
// =============================================================================

func testTokens(t *testing.T, store Store) {
	ctx := context.Background()

	count, err := store.TokenCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), count)

	require.NoError(t, store.CreateToken(ctx, domain.TokenEntry{Name: "USD", Address: tokenUSD, AddedBy: admin}))
	require.NoError(t, store.CreateToken(ctx, domain.TokenEntry{Name: "DAI", Address: tokenDAI, AddedBy: admin}))

	t.Run("duplicate name", func(t *testing.T) {
		err := store.CreateToken(ctx, domain.TokenEntry{Name: "USD", Address: buyerB, AddedBy: admin})
		assert.ErrorIs(t, err, domain.ErrAlreadyRegistered)
	})

	t.Run("duplicate address", func(t *testing.T) {
		err := store.CreateToken(ctx, domain.TokenEntry{Name: "USDC", Address: tokenUSD, AddedBy: admin})
		assert.ErrorIs(t, err, domain.ErrAddressInUse)
	})

	t.Run("lookups", func(t *testing.T) {
		token, err := store.GetToken(ctx, "USD")
		require.NoError(t, err)
		require.NotNil(t, token)
		assert.Equal(t, tokenUSD, token.Address)
		assert.Equal(t, admin, token.AddedBy)

		token, err = store.GetToken(ctx, "EUR")
		require.NoError(t, err)
		assert.Nil(t, token)

		token, err = store.GetTokenByAddress(ctx, tokenDAI)
		require.NoError(t, err)
		require.NotNil(t, token)
		assert.Equal(t, "DAI", token.Name)

		token, err = store.GetTokenByAddress(ctx, buyerB)
		require.NoError(t, err)
		assert.Nil(t, token)
	})

	t.Run("enumeration in registration order", func(t *testing.T) {
		count, err := store.TokenCount(ctx)
		require.NoError(t, err)
		assert.Equal(t, uint64(2), count)

		name, err := store.TokenNameAt(ctx, 0)
		require.NoError(t, err)
		assert.Equal(t, "USD", name)

		name, err = store.TokenNameAt(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "DAI", name)

		_, err = store.TokenNameAt(ctx, 2)
		assert.ErrorIs(t, err, domain.ErrInvalidTokenIndex)

		_, err = store.TokenNameAt(ctx, math.MaxUint64)
		assert.ErrorIs(t, err, domain.ErrInvalidTokenIndex)

		_, err = store.TokenNameAt(ctx, math.MaxInt32+1)
		assert.ErrorIs(t, err, domain.ErrInvalidTokenIndex)
	})
}

// =============================================================================
// Purchases
// =============================================================================

func testReserveAndConfirm(t *testing.T, store Store) {
	ctx := context.Background()

	_, err := store.CreateEvent(ctx, buildTestEvent(organizerA, 100, 2))
	require.NoError(t, err)

	hold, err := store.ReserveTicket(ctx, reserve(1, buyerB, testNow))
	require.NoError(t, err)
	assert.NotEmpty(t, hold.ID)
	assert.Equal(t, uint64(1), hold.EventID)
	assert.Equal(t, buyerB, hold.Participant)
	assert.Equal(t, organizerA, hold.Organizer)
	assert.Equal(t, "100", hold.Price.String())
	assert.True(t, hold.Currency.IsNative())

	// A hold is not a ticket yet
	event, err := store.GetEvent(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), event.SoldCount)
	has, err := store.HasTicket(ctx, buyerB, 1)
	require.NoError(t, err)
	assert.False(t, has)

	purchase, err := store.ConfirmTicket(ctx, hold.ID, "")
	require.NoError(t, err)
	assert.Equal(t, uint64(1), purchase.EventID)
	assert.Equal(t, buyerB, purchase.Participant)

	event, err = store.GetEvent(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), event.SoldCount)
	assert.Equal(t, "100", event.Collected.String())

	has, err = store.HasTicket(ctx, buyerB, 1)
	require.NoError(t, err)
	assert.True(t, has)

	count, err := store.TicketsOf(ctx, buyerB)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), count)

	ids, err := store.TicketsOfOwner(ctx, buyerB)
	require.NoError(t, err)
	assert.Equal(t, []uint64{1}, ids)

	// Confirming twice does nothing
	_, err = store.ConfirmTicket(ctx, hold.ID, "")
	assert.ErrorIs(t, err, domain.ErrHoldExpired)
	assert.True(t, domain.IsStateConflictError(err))

	_, err = store.ConfirmTicket(ctx, "00000000-0000-0000-0000-000000000000", "")
	assert.ErrorIs(t, err, domain.ErrHoldExpired)

	second := buyTicket(t, store, 1, buyerC)
	assert.Greater(t, second.Sequence, purchase.Sequence)

	purchases, err := store.EventPurchases(ctx, 1)
	require.NoError(t, err)
	require.Len(t, purchases, 2)
	assert.Equal(t, buyerB, purchases[0].Participant)
	assert.Equal(t, buyerC, purchases[1].Participant)

	event, err = store.GetEvent(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), event.SoldCount)
	assert.Equal(t, "200", event.Collected.String())
}

func testReservationGuards(t *testing.T, store Store) {
	ctx := context.Background()

	_, err := store.CreateEvent(ctx, buildTestEvent(organizerA, 100, 2))
	require.NoError(t, err)

	tests := []struct {
		name  string
		input ReserveTicketInput
		err   error
	}{
		{"event id zero", reserve(0, buyerB, testNow), domain.ErrInvalidEventID},
		{"event id past total", reserve(2, buyerB, testNow), domain.ErrInvalidEventID},
		{"organizer buys own event", reserve(1, organizerA, testNow), domain.ErrSelfPurchase},
		{"at end time", reserve(1, buyerB, testNow+2000), domain.ErrAlreadyEnded},
		{"after end time", reserve(1, buyerB, testNow+5000), domain.ErrAlreadyEnded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := store.ReserveTicket(ctx, tt.input)
			assert.ErrorIs(t, err, tt.err)
		})
	}

	t.Run("self purchase is reported before ended", func(t *testing.T) {
		_, err := store.ReserveTicket(ctx, reserve(1, organizerA, testNow+5000))
		assert.ErrorIs(t, err, domain.ErrSelfPurchase)
	})

	t.Run("before start time is allowed", func(t *testing.T) {
		hold, err := store.ReserveTicket(ctx, reserve(1, buyerD, testNow))
		require.NoError(t, err)
		require.NoError(t, store.ReleaseTicket(ctx, hold.ID))
	})

	t.Run("a new attempt replaces the earlier hold of the buyer", func(t *testing.T) {
		stale, err := store.ReserveTicket(ctx, reserve(1, buyerB, testNow))
		require.NoError(t, err)

		hold, err := store.ReserveTicket(ctx, reserve(1, buyerB, testNow))
		require.NoError(t, err)

		_, err = store.ConfirmTicket(ctx, stale.ID, "")
		assert.ErrorIs(t, err, domain.ErrHoldExpired)

		_, err = store.ConfirmTicket(ctx, hold.ID, "")
		require.NoError(t, err)
	})

	t.Run("owned ticket blocks a second purchase", func(t *testing.T) {
		_, err := store.ReserveTicket(ctx, reserve(1, buyerB, testNow))
		assert.ErrorIs(t, err, domain.ErrAlreadyPurchased)
	})

	t.Run("holds do not take quota", func(t *testing.T) {
		first, err := store.ReserveTicket(ctx, reserve(1, buyerC, testNow))
		require.NoError(t, err)

		// an unpaid hold of C must not turn D away
		second, err := store.ReserveTicket(ctx, reserve(1, buyerD, testNow))
		require.NoError(t, err)

		_, err = store.ConfirmTicket(ctx, second.ID, "")
		require.NoError(t, err)

		// the quota is checked again when confirming
		_, err = store.ConfirmTicket(ctx, first.ID, "")
		assert.ErrorIs(t, err, domain.ErrSoldOut)

		_, err = store.ReserveTicket(ctx, reserve(1, buyerC, testNow))
		assert.ErrorIs(t, err, domain.ErrSoldOut)
	})

	t.Run("already purchased is reported before sold out", func(t *testing.T) {
		_, err := store.ReserveTicket(ctx, reserve(1, buyerD, testNow))
		assert.ErrorIs(t, err, domain.ErrAlreadyPurchased)
	})

	event, err := store.GetEvent(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), event.SoldCount)
	assert.Equal(t, "200", event.Collected.String())
}

func testReleaseTicket(t *testing.T, store Store) {
	ctx := context.Background()

	_, err := store.CreateEvent(ctx, buildTestEvent(organizerA, 100, 1))
	require.NoError(t, err)

	hold, err := store.ReserveTicket(ctx, reserve(1, buyerB, testNow))
	require.NoError(t, err)

	require.NoError(t, store.ReleaseTicket(ctx, hold.ID))
	// releasing twice is a no-op
	require.NoError(t, store.ReleaseTicket(ctx, hold.ID))

	_, err = store.ConfirmTicket(ctx, hold.ID, "")
	assert.ErrorIs(t, err, domain.ErrHoldExpired)

	buyTicket(t, store, 1, buyerC)

	event, err := store.GetEvent(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), event.SoldCount)
	assert.Equal(t, "100", event.Collected.String())

	has, err := store.HasTicket(ctx, buyerB, 1)
	require.NoError(t, err)
	assert.False(t, has)
}

func testHoldExpiry(t *testing.T, store Store) {
	ctx := context.Background()

	_, err := store.CreateEvent(ctx, buildTestEvent(organizerA, 100, 2))
	require.NoError(t, err)

	live, err := store.ReserveTicket(ctx, reserve(1, buyerB, testNow))
	require.NoError(t, err)
	stale, err := store.ReserveTicket(ctx, reserve(1, buyerC, testNow))
	require.NoError(t, err)

	_, err = store.ConfirmTicket(ctx, live.ID, "")
	require.NoError(t, err)

	// The next reservation prunes the lapsed hold of C
	hold, err := store.ReserveTicket(ctx, reserve(1, buyerD, testNow+300))
	require.NoError(t, err)

	_, err = store.ConfirmTicket(ctx, stale.ID, "")
	assert.ErrorIs(t, err, domain.ErrHoldExpired)

	_, err = store.ConfirmTicket(ctx, hold.ID, "")
	require.NoError(t, err)

	event, err := store.GetEvent(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), event.SoldCount)
}

func testPaymentRefs(t *testing.T, store Store) {
	ctx := context.Background()

	_, err := store.CreateEvent(ctx, buildTestEvent(organizerA, 100, 5))
	require.NoError(t, err)
	_, err = store.CreateEvent(ctx, buildTestEvent(organizerB, 100, 5))
	require.NoError(t, err)

	const ref = "0x00000000000000000000000000000000000000000000000000000000000000aa"

	hold, err := store.ReserveTicket(ctx, reserve(1, buyerB, testNow))
	require.NoError(t, err)
	_, err = store.ConfirmTicket(ctx, hold.ID, ref)
	require.NoError(t, err)

	t.Run("a payment pays for one ticket only", func(t *testing.T) {
		hold, err := store.ReserveTicket(ctx, reserve(1, buyerC, testNow))
		require.NoError(t, err)
		_, err = store.ConfirmTicket(ctx, hold.ID, ref)
		assert.ErrorIs(t, err, domain.ErrPaymentProofUsed)
	})

	t.Run("across events too", func(t *testing.T) {
		hold, err := store.ReserveTicket(ctx, reserve(2, buyerB, testNow))
		require.NoError(t, err)
		_, err = store.ConfirmTicket(ctx, hold.ID, ref)
		assert.ErrorIs(t, err, domain.ErrPaymentProofUsed)
	})

	t.Run("purchases without a reference do not collide", func(t *testing.T) {
		buyTicket(t, store, 2, buyerC)
		buyTicket(t, store, 2, buyerD)
	})

	event, err := store.GetEvent(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), event.SoldCount)
	assert.Equal(t, "100", event.Collected.String())
}

func testWithEventLock(t *testing.T, store Store) {
	ctx := context.Background()

	err := store.WithEventLock(ctx, 1, func(context.Context) error { return nil })
	assert.ErrorIs(t, err, domain.ErrInvalidEventID)

	_, err = store.CreateEvent(ctx, buildTestEvent(organizerA, 100, 1))
	require.NoError(t, err)

	var purchase *domain.Purchase
	err = store.WithEventLock(ctx, 1, func(ctx context.Context) error {
		hold, err := store.ReserveTicket(ctx, reserve(1, buyerB, testNow))
		if err != nil {
			return err
		}
		purchase, err = store.ConfirmTicket(ctx, hold.ID, "")
		return err
	})
	require.NoError(t, err)
	require.NotNil(t, purchase)

	boom := errors.New("boom")
	err = store.WithEventLock(ctx, 1, func(context.Context) error { return boom })
	assert.ErrorIs(t, err, boom)

	// the section is released after an error
	err = store.WithEventLock(ctx, 1, func(ctx context.Context) error {
		_, err := store.ReserveTicket(ctx, reserve(1, buyerC, testNow))
		return err
	})
	assert.ErrorIs(t, err, domain.ErrSoldOut)
}

// =============================================================================
// Withdrawals
// =============================================================================

func testWithdrawal(t *testing.T, store Store) {
	ctx := context.Background()

	_, err := store.CreateEvent(ctx, buildTestEvent(organizerA, 100, 3))
	require.NoError(t, err)

	ended := testNow + 2000

	t.Run("guards", func(t *testing.T) {
		_, err := store.BeginWithdrawal(ctx, 0, organizerA, ended)
		assert.ErrorIs(t, err, domain.ErrInvalidEventID)

		_, err = store.BeginWithdrawal(ctx, 2, organizerA, ended)
		assert.ErrorIs(t, err, domain.ErrInvalidEventID)

		_, err = store.BeginWithdrawal(ctx, 1, buyerB, ended)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)

		_, err = store.BeginWithdrawal(ctx, 1, buyerB, testNow)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)

		_, err = store.BeginWithdrawal(ctx, 1, organizerA, ended-1)
		assert.ErrorIs(t, err, domain.ErrTooEarly)

		_, err = store.BeginWithdrawal(ctx, 1, organizerA, ended)
		assert.ErrorIs(t, err, domain.ErrNothingToWithdraw)
	})

	buyTicket(t, store, 1, buyerB)
	buyTicket(t, store, 1, buyerC)

	t.Run("drains the jar", func(t *testing.T) {
		w, err := store.BeginWithdrawal(ctx, 1, organizerA, ended)
		require.NoError(t, err)
		assert.Equal(t, "200", w.Amount.String())
		assert.Equal(t, organizerA, w.Recipient)
		assert.True(t, w.Currency.IsNative())

		event, err := store.GetEvent(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 0, event.Collected.Sign())
		assert.Equal(t, uint64(2), event.SoldCount)

		_, err = store.BeginWithdrawal(ctx, 1, organizerA, ended)
		assert.ErrorIs(t, err, domain.ErrNothingToWithdraw)
	})

	t.Run("restore after failed payout", func(t *testing.T) {
		require.NoError(t, store.RestoreCollected(ctx, 1, big.NewInt(200)))

		w, err := store.BeginWithdrawal(ctx, 1, organizerA, ended)
		require.NoError(t, err)
		assert.Equal(t, "200", w.Amount.String())
	})

	t.Run("later purchases refill the jar", func(t *testing.T) {
		buyTicket(t, store, 1, buyerD)

		w, err := store.BeginWithdrawal(ctx, 1, organizerA, ended)
		require.NoError(t, err)
		assert.Equal(t, "100", w.Amount.String())
	})
}

func testPendingTransfers(t *testing.T, store Store) {
	ctx := context.Background()

	_, err := store.CreateEvent(ctx, buildTestEvent(organizerA, 100, 3))
	require.NoError(t, err)
	buyTicket(t, store, 1, buyerB)
	buyTicket(t, store, 1, buyerC)

	transfers, err := store.PendingTransfers(ctx)
	require.NoError(t, err)
	assert.Empty(t, transfers)

	_, err = store.RecordPendingTransfer(ctx, PendingTransfer{Kind: TransferPayout, EventID: 9, Amount: big.NewInt(1)})
	assert.ErrorIs(t, err, domain.ErrInvalidEventID)

	w, err := store.BeginWithdrawal(ctx, 1, organizerA, testNow+2000)
	require.NoError(t, err)

	payout, err := store.RecordPendingTransfer(ctx, PendingTransfer{
		Kind:      TransferPayout,
		EventID:   1,
		Account:   organizerA,
		Amount:    w.Amount,
		Currency:  w.Currency,
		TxHash:    "0x01",
		CreatedAt: testNow,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, payout.ID)

	usd := domain.TokenCurrency("USD", tokenUSD)
	pull, err := store.RecordPendingTransfer(ctx, PendingTransfer{
		Kind:      TransferPull,
		EventID:   1,
		Account:   buyerD,
		Amount:    big.NewInt(100),
		Currency:  usd,
		TxHash:    "0x02",
		CreatedAt: testNow + 1,
	})
	require.NoError(t, err)

	transfers, err = store.PendingTransfers(ctx)
	require.NoError(t, err)
	require.Len(t, transfers, 2)
	assert.Equal(t, payout.ID, transfers[0].ID)
	assert.Equal(t, TransferPayout, transfers[0].Kind)
	assert.Equal(t, organizerA, transfers[0].Account)
	assert.Equal(t, "200", transfers[0].Amount.String())
	assert.True(t, transfers[0].Currency.IsNative())
	assert.Equal(t, "0x01", transfers[0].TxHash)
	assert.Equal(t, pull.ID, transfers[1].ID)
	assert.Equal(t, usd, transfers[1].Currency)

	t.Run("revert restores the jar once", func(t *testing.T) {
		_, err := store.RevertPayout(ctx, pull.ID)
		assert.Error(t, err, "only payouts are reverted")

		reverted, err := store.RevertPayout(ctx, payout.ID)
		require.NoError(t, err)
		assert.True(t, reverted)

		reverted, err = store.RevertPayout(ctx, payout.ID)
		require.NoError(t, err)
		assert.False(t, reverted)

		event, err := store.GetEvent(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "200", event.Collected.String())
	})

	t.Run("resolve deletes once", func(t *testing.T) {
		resolved, err := store.ResolvePendingTransfer(ctx, pull.ID)
		require.NoError(t, err)
		assert.True(t, resolved)

		resolved, err = store.ResolvePendingTransfer(ctx, pull.ID)
		require.NoError(t, err)
		assert.False(t, resolved)

		transfers, err := store.PendingTransfers(ctx)
		require.NoError(t, err)
		assert.Empty(t, transfers)
	})
}

// RunStoreTests runs all store tests against the given implementation
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"CreateEvent", testCreateEvent},
		{"GetEventOutOfRange", testGetEventOutOfRange},
		{"GetEventReturnsSnapshot", testGetEventReturnsSnapshot},
		{"Tokens", testTokens},
		{"ReserveAndConfirm", testReserveAndConfirm},
		{"ReservationGuards", testReservationGuards},
		{"ReleaseTicket", testReleaseTicket},
		{"HoldExpiry", testHoldExpiry},
		{"PaymentRefs", testPaymentRefs},
		{"WithEventLock", testWithEventLock},
		{"Withdrawal", testWithdrawal},
		{"PendingTransfers", testPendingTransfers},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}
