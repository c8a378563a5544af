package ledger_test

import (
	"context"
	"math/big"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loketh/ledger/internal/domain"
	"github.com/loketh/ledger/internal/ledger"
	"github.com/loketh/ledger/internal/logger"
	"github.com/loketh/ledger/internal/mocks"
	"github.com/loketh/ledger/internal/payment"
	"github.com/loketh/ledger/internal/registry"
	"github.com/loketh/ledger/internal/store"
)

func TestMain(m *testing.M) {
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	os.Exit(m.Run())
}

var (
	admin     = common.HexToAddress("0x0000000000000000000000000000000000000ad1")
	custody   = common.HexToAddress("0x00000000000000000000000000000000000000c0")
	organizer = common.HexToAddress("0x00000000000000000000000000000000000000a1")
	buyer     = common.HexToAddress("0x00000000000000000000000000000000000000b1")
	buyer2    = common.HexToAddress("0x00000000000000000000000000000000000000b2")
	tokenUSD  = common.HexToAddress("0x00000000000000000000000000000000000005d1")
)

const testStart = int64(1_700_000_000)

type testLedgerMocks struct {
	ctrl      *gomock.Controller
	clock     *mocks.MockClock
	publisher *mocks.MockPublisher
	store     store.Store
	registry  registry.TokenRegistry
	tokens    *payment.MemoryTokens
	usd       *payment.MemoryToken
	bank      *payment.MemoryBank
	tracker   *payment.MemoryTracker
	ledger    ledger.Ledger

	mu            sync.Mutex
	now           int64
	notifications []*domain.Notification
}

func setupTestLedger(t *testing.T) *testLedgerMocks {
	return setupTestLedgerWithStore(t, store.NewMemoryStore())
}

func setupTestLedgerWithStore(t *testing.T, st store.Store) *testLedgerMocks {
	ctrl := gomock.NewController(t)

	tm := &testLedgerMocks{
		ctrl:      ctrl,
		clock:     mocks.NewMockClock(ctrl),
		publisher: mocks.NewMockPublisher(ctrl),
		store:     st,
		tokens:    payment.NewMemoryTokens(),
		usd:       payment.NewMemoryToken(custody),
		bank:      payment.NewMemoryBank(),
		tracker:   payment.NewMemoryTracker(),
		now:       testStart,
	}
	tm.tokens.Add(tokenUSD, tm.usd)

	tm.clock.EXPECT().Now().DoAndReturn(func() time.Time {
		tm.mu.Lock()
		defer tm.mu.Unlock()
		return time.Unix(tm.now, 0)
	}).AnyTimes()

	tm.publisher.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n *domain.Notification) error {
			tm.mu.Lock()
			defer tm.mu.Unlock()
			tm.notifications = append(tm.notifications, n)
			return nil
		}).AnyTimes()

	tm.registry = registry.NewTokenRegistry(admin, tm.store, tm.publisher, tm.clock)
	tm.ledger = ledger.New(
		ledger.Config{Custody: custody, HoldTTL: time.Minute},
		tm.store, tm.registry, tm.tokens, tm.bank, tm.tracker, tm.publisher, tm.clock,
	)

	return tm
}

func (tm *testLedgerMocks) tearDown() {
	tm.ctrl.Finish()
}

func (tm *testLedgerMocks) setNow(now int64) {
	tm.mu.Lock()
	defer tm.mu.Unlock()
	tm.now = now
}

func (tm *testLedgerMocks) notificationsOf(typ domain.NotificationType) []*domain.Notification {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	var out []*domain.Notification
	for _, n := range tm.notifications {
		if n.Type == typ {
			out = append(out, n)
		}
	}
	return out
}

func (tm *testLedgerMocks) createEvent(t *testing.T, price int64, quota uint64, currency string) *domain.Event {
	t.Helper()

	event, err := tm.ledger.CreateEvent(context.Background(), ledger.CreateEventInput{
		Organizer: organizer,
		Name:      "Conf",
		StartTime: testStart + 1000,
		EndTime:   testStart + 2000,
		Price:     big.NewInt(price),
		Quota:     quota,
		Currency:  currency,
	})
	require.NoError(t, err)
	return event
}

func (tm *testLedgerMocks) registerUSD(t *testing.T) {
	t.Helper()

	_, err := tm.registry.RegisterToken(context.Background(), admin, "USD", tokenUSD)
	require.NoError(t, err)
}

// buy attaches amount and, when it is positive, a native deposit of amount made by who
func (tm *testLedgerMocks) buy(eventID uint64, who common.Address, amount int64) (*domain.Purchase, error) {
	input := ledger.BuyTicketInput{
		EventID: eventID,
		Buyer:   who,
		Payment: big.NewInt(amount),
	}
	if amount > 0 {
		input.PaymentTx = tm.bank.Deposit(who, big.NewInt(amount))
	}
	return tm.ledger.BuyTicket(context.Background(), input)
}

func TestCreateEvent_AssignsSequentialIDs(t *testing.T) {
	tm := setupTestLedger(t)
	defer tm.tearDown()

	for i := uint64(1); i <= 3; i++ {
		event := tm.createEvent(t, 100, 1, domain.NATIVE_CURRENCY)
		assert.Equal(t, i, event.ID)
		assert.Equal(t, uint64(0), event.SoldCount)
		assert.Equal(t, 0, event.Collected.Sign())
		assert.True(t, event.Currency.IsNative())
	}

	total, err := tm.ledger.TotalEvents(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(3), total)

	ids, err := tm.ledger.EventsOfOwner(context.Background(), organizer)
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 2, 3}, ids)

	count, err := tm.ledger.EventsOf(context.Background(), organizer)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), count)

	owns, err := tm.ledger.OrganizerOwns(context.Background(), organizer, 2)
	require.NoError(t, err)
	assert.True(t, owns)

	created := tm.notificationsOf(domain.NotificationEventCreated)
	require.Len(t, created, 3)
	assert.Equal(t, uint64(1), created[0].EventID)
	assert.Equal(t, organizer, *created[0].Organizer)
}

func TestCreateEvent_ValidationOrder(t *testing.T) {
	tm := setupTestLedger(t)
	defer tm.tearDown()

	valid := ledger.CreateEventInput{
		Organizer: organizer,
		Name:      "Conf",
		StartTime: testStart + 1000,
		EndTime:   testStart + 2000,
		Price:     big.NewInt(100),
		Quota:     10,
		Currency:  domain.NATIVE_CURRENCY,
	}

	tests := []struct {
		name   string
		modify func(in *ledger.CreateEventInput)
		err    error
	}{
		{
			name: "zero quota reported first",
			modify: func(in *ledger.CreateEventInput) {
				in.Quota = 0
				in.StartTime = testStart
				in.EndTime = testStart
				in.Currency = "NOPE"
			},
			err: domain.ErrInvalidQuota,
		},
		{
			name: "start time equal to now",
			modify: func(in *ledger.CreateEventInput) {
				in.StartTime = testStart
				in.EndTime = testStart - 1
				in.Currency = "NOPE"
			},
			err: domain.ErrInvalidStartTime,
		},
		{
			name: "start time in the past",
			modify: func(in *ledger.CreateEventInput) {
				in.StartTime = testStart - 10
			},
			err: domain.ErrInvalidStartTime,
		},
		{
			name: "end equal to start",
			modify: func(in *ledger.CreateEventInput) {
				in.EndTime = in.StartTime
				in.Currency = "NOPE"
			},
			err: domain.ErrInvalidEndTime,
		},
		{
			name: "unregistered currency",
			modify: func(in *ledger.CreateEventInput) {
				in.Currency = "NOPE"
			},
			err: domain.ErrInvalidCurrency,
		},
		{
			name: "negative price",
			modify: func(in *ledger.CreateEventInput) {
				in.Price = big.NewInt(-1)
			},
			err: domain.ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.modify(&in)

			_, err := tm.ledger.CreateEvent(context.Background(), in)
			assert.ErrorIs(t, err, tt.err)
		})
	}

	total, err := tm.ledger.TotalEvents(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(0), total)
	assert.Empty(t, tm.notificationsOf(domain.NotificationEventCreated))
}

func TestCreateEvent_TokenCurrency(t *testing.T) {
	tm := setupTestLedger(t)
	defer tm.tearDown()

	tm.registerUSD(t)
	event := tm.createEvent(t, 50, 1, "USD")

	assert.False(t, event.Currency.IsNative())
	assert.Equal(t, "USD", event.Currency.Name)
	assert.Equal(t, tokenUSD, event.Currency.Token)
}

func TestGetEvent_InvalidID(t *testing.T) {
	tm := setupTestLedger(t)
	defer tm.tearDown()

	tm.createEvent(t, 100, 1, domain.NATIVE_CURRENCY)

	_, err := tm.ledger.GetEvent(context.Background(), 0)
	assert.ErrorIs(t, err, domain.ErrInvalidEventID)

	_, err = tm.ledger.GetEvent(context.Background(), 2)
	assert.ErrorIs(t, err, domain.ErrInvalidEventID)

	event, err := tm.ledger.GetEvent(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Conf", event.Name)
}

func TestNativeScenario(t *testing.T) {
	tm := setupTestLedger(t)
	defer tm.tearDown()
	ctx := context.Background()

	event := tm.createEvent(t, 100, 1, domain.NATIVE_CURRENCY)
	require.Equal(t, uint64(1), event.ID)

	_, err := tm.buy(1, buyer, 100)
	require.NoError(t, err)

	event, err = tm.ledger.GetEvent(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), event.SoldCount)
	assert.Equal(t, big.NewInt(100), event.Collected)

	has, err := tm.ledger.HasTicket(ctx, buyer, 1)
	require.NoError(t, err)
	assert.True(t, has)

	_, err = tm.buy(1, buyer2, 100)
	assert.ErrorIs(t, err, domain.ErrSoldOut)

	tm.setNow(testStart + 2001)

	w, err := tm.ledger.WithdrawMoney(ctx, 1, organizer)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(100), w.Amount)
	assert.Equal(t, big.NewInt(100), tm.bank.BalanceOf(organizer))

	event, err = tm.ledger.GetEvent(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, event.Collected.Sign())

	_, err = tm.ledger.WithdrawMoney(ctx, 1, organizer)
	assert.ErrorIs(t, err, domain.ErrNothingToWithdraw)

	issued := tm.notificationsOf(domain.NotificationTicketIssued)
	require.Len(t, issued, 1)
	assert.Equal(t, buyer, *issued[0].Participant)

	withdrawn := tm.notificationsOf(domain.NotificationMoneyWithdrawn)
	require.Len(t, withdrawn, 1)
	assert.Equal(t, organizer, *withdrawn[0].Recipient)
	assert.Equal(t, "100", withdrawn[0].Amount)
}

func TestTokenScenario(t *testing.T) {
	tm := setupTestLedger(t)
	defer tm.tearDown()
	ctx := context.Background()

	tm.registerUSD(t)
	event := tm.createEvent(t, 50, 10, "USD")

	tm.usd.Mint(buyer, big.NewInt(80))
	tm.usd.Approve(buyer, custody, big.NewInt(50))

	_, err := tm.buy(event.ID, buyer, 0)
	require.NoError(t, err)

	custodyBalance, _ := tm.usd.BalanceOf(ctx, custody)
	buyerBalance, _ := tm.usd.BalanceOf(ctx, buyer)
	assert.Equal(t, big.NewInt(50), custodyBalance)
	assert.Equal(t, big.NewInt(30), buyerBalance)

	has, err := tm.ledger.HasTicket(ctx, buyer, event.ID)
	require.NoError(t, err)
	assert.True(t, has)

	tm.usd.Mint(buyer2, big.NewInt(100))
	_, err = tm.buy(event.ID, buyer2, 0)
	assert.ErrorIs(t, err, domain.ErrInsufficientAllowance)
	assert.True(t, domain.IsPaymentError(err))

	tm.setNow(testStart + 2000)
	_, err = tm.ledger.WithdrawMoney(ctx, event.ID, organizer)
	require.NoError(t, err)

	organizerBalance, _ := tm.usd.BalanceOf(ctx, organizer)
	assert.Equal(t, big.NewInt(50), organizerBalance)
}

func TestBuyTicket_TokenGuards(t *testing.T) {
	tm := setupTestLedger(t)
	defer tm.tearDown()
	ctx := context.Background()

	tm.registerUSD(t)
	event := tm.createEvent(t, 50, 10, "USD")

	tm.usd.Mint(buyer, big.NewInt(10))
	tm.usd.Approve(buyer, custody, big.NewInt(50))

	_, err := tm.buy(event.ID, buyer, 50)
	assert.ErrorIs(t, err, domain.ErrNativePaymentNotAccepted)

	_, err = tm.buy(event.ID, buyer, 0)
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)

	got, err := tm.ledger.GetEvent(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), got.SoldCount)
	assert.Equal(t, 0, got.Collected.Sign())

	// a failed purchase does not block a retry
	tm.usd.Mint(buyer, big.NewInt(40))
	_, err = tm.buy(event.ID, buyer, 0)
	assert.NoError(t, err)
}

func TestBuyTicket_ExactNativePayment(t *testing.T) {
	tm := setupTestLedger(t)
	defer tm.tearDown()
	ctx := context.Background()

	event := tm.createEvent(t, 100, 5, domain.NATIVE_CURRENCY)

	for _, amount := range []int64{0, 99, 101, 1000} {
		_, err := tm.buy(event.ID, buyer, amount)
		assert.ErrorIs(t, err, domain.ErrWrongAmount, "payment %d", amount)
	}

	got, err := tm.ledger.GetEvent(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), got.SoldCount)
	assert.Equal(t, 0, got.Collected.Sign())

	tickets, err := tm.ledger.TicketsOf(ctx, buyer)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), tickets)
}

func TestBuyTicket_Guards(t *testing.T) {
	tm := setupTestLedger(t)
	defer tm.tearDown()

	event := tm.createEvent(t, 100, 5, domain.NATIVE_CURRENCY)

	_, err := tm.buy(0, buyer, 100)
	assert.ErrorIs(t, err, domain.ErrInvalidEventID)

	_, err = tm.buy(event.ID+1, buyer, 100)
	assert.ErrorIs(t, err, domain.ErrInvalidEventID)

	_, err = tm.buy(event.ID, organizer, 100)
	assert.ErrorIs(t, err, domain.ErrSelfPurchase)

	_, err = tm.buy(event.ID, buyer, 100)
	require.NoError(t, err)

	_, err = tm.buy(event.ID, buyer, 100)
	assert.ErrorIs(t, err, domain.ErrAlreadyPurchased)

	_, err = tm.ledger.BuyTicket(context.Background(), ledger.BuyTicketInput{
		EventID: event.ID,
		Buyer:   buyer2,
		Payment: big.NewInt(-1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}

func TestBuyTicket_NativePaymentProof(t *testing.T) {
	tm := setupTestLedger(t)
	defer tm.tearDown()
	ctx := context.Background()

	first := tm.createEvent(t, 100, 5, domain.NATIVE_CURRENCY)
	second := tm.createEvent(t, 100, 5, domain.NATIVE_CURRENCY)

	buy := func(eventID uint64, who common.Address, paymentTx string) error {
		_, err := tm.ledger.BuyTicket(ctx, ledger.BuyTicketInput{
			EventID:   eventID,
			Buyer:     who,
			Payment:   big.NewInt(100),
			PaymentTx: paymentTx,
		})
		return err
	}

	err := buy(first.ID, buyer, "")
	assert.ErrorIs(t, err, domain.ErrPaymentProofRequired)
	assert.True(t, domain.IsPaymentError(err))

	// a declared amount is not a payment
	err = buy(first.ID, buyer, "0x00000000000000000000000000000000000000000000000000000000000000ff")
	assert.ErrorIs(t, err, domain.ErrInvalidPaymentProof)

	othersDeposit := tm.bank.Deposit(buyer2, big.NewInt(100))
	err = buy(first.ID, buyer, othersDeposit)
	assert.ErrorIs(t, err, domain.ErrInvalidPaymentProof)

	cheapDeposit := tm.bank.Deposit(buyer, big.NewInt(99))
	err = buy(first.ID, buyer, cheapDeposit)
	assert.ErrorIs(t, err, domain.ErrInvalidPaymentProof)

	deposit := tm.bank.Deposit(buyer, big.NewInt(100))
	require.NoError(t, buy(first.ID, buyer, deposit))

	// the same transaction can not pay for a second ticket
	err = buy(second.ID, buyer, deposit)
	assert.ErrorIs(t, err, domain.ErrPaymentProofUsed)

	got, err := tm.ledger.GetEvent(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), got.SoldCount)
	assert.Equal(t, 0, got.Collected.Sign())

	has, err := tm.ledger.HasTicket(ctx, buyer, second.ID)
	require.NoError(t, err)
	assert.False(t, has)
}

func TestBuyTicket_FreeNativeEventNeedsNoPayment(t *testing.T) {
	tm := setupTestLedger(t)
	defer tm.tearDown()

	event := tm.createEvent(t, 0, 5, domain.NATIVE_CURRENCY)

	_, err := tm.buy(event.ID, buyer, 0)
	require.NoError(t, err)
}

func TestBuyTicket_TimingGate(t *testing.T) {
	tm := setupTestLedger(t)
	defer tm.tearDown()

	event := tm.createEvent(t, 100, 5, domain.NATIVE_CURRENCY)

	tm.setNow(event.EndTime - 1)
	_, err := tm.buy(event.ID, buyer, 100)
	assert.NoError(t, err)

	tm.setNow(event.EndTime)
	_, err = tm.buy(event.ID, buyer2, 100)
	assert.ErrorIs(t, err, domain.ErrAlreadyEnded)
}

func TestBuyTicket_QuotaConservation(t *testing.T) {
	tm := setupTestLedger(t)
	defer tm.tearDown()
	ctx := context.Background()

	const quota = 3
	event := tm.createEvent(t, 10, quota, domain.NATIVE_CURRENCY)

	for i := 0; i < quota; i++ {
		who := common.BigToAddress(big.NewInt(int64(0x1000 + i)))
		_, err := tm.buy(event.ID, who, 10)
		require.NoError(t, err)
	}

	before, err := tm.ledger.GetEvent(ctx, event.ID)
	require.NoError(t, err)

	_, err = tm.buy(event.ID, buyer, 10)
	assert.ErrorIs(t, err, domain.ErrSoldOut)

	after, err := tm.ledger.GetEvent(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, before.SoldCount, after.SoldCount)
	assert.Equal(t, before.Collected, after.Collected)
	assert.Equal(t, uint64(quota), after.SoldCount)
	assert.Equal(t, big.NewInt(10*quota), after.Collected)
}

func TestWithdrawMoney_Guards(t *testing.T) {
	tm := setupTestLedger(t)
	defer tm.tearDown()
	ctx := context.Background()

	event := tm.createEvent(t, 100, 5, domain.NATIVE_CURRENCY)

	_, err := tm.ledger.WithdrawMoney(ctx, 0, organizer)
	assert.ErrorIs(t, err, domain.ErrInvalidEventID)

	_, err = tm.ledger.WithdrawMoney(ctx, event.ID, buyer)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = tm.ledger.WithdrawMoney(ctx, event.ID, organizer)
	assert.ErrorIs(t, err, domain.ErrTooEarly)

	tm.setNow(event.EndTime - 1)
	_, err = tm.ledger.WithdrawMoney(ctx, event.ID, organizer)
	assert.ErrorIs(t, err, domain.ErrTooEarly)

	tm.setNow(event.EndTime)
	_, err = tm.ledger.WithdrawMoney(ctx, event.ID, organizer)
	assert.ErrorIs(t, err, domain.ErrNothingToWithdraw)
}

func TestWithdrawMoney_DrainsOnlyNewAccumulation(t *testing.T) {
	tm := setupTestLedger(t)
	defer tm.tearDown()
	ctx := context.Background()

	// sales close at the end boundary, so the clock steps back to sell again
	event := tm.createEvent(t, 100, 5, domain.NATIVE_CURRENCY)

	_, err := tm.buy(event.ID, buyer, 100)
	require.NoError(t, err)

	tm.setNow(event.EndTime)
	w, err := tm.ledger.WithdrawMoney(ctx, event.ID, organizer)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(100), w.Amount)

	tm.setNow(event.EndTime - 1)
	_, err = tm.buy(event.ID, buyer2, 100)
	require.NoError(t, err)

	tm.setNow(event.EndTime)
	w, err = tm.ledger.WithdrawMoney(ctx, event.ID, organizer)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(100), w.Amount)
	assert.Equal(t, big.NewInt(200), tm.bank.BalanceOf(organizer))
}
