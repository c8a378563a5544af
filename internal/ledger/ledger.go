package ledger

import (
	"context"
	"math/big"
	"time"

	"github.com/loketh/ledger/internal/adapter"
	"github.com/loketh/ledger/internal/domain"
	"github.com/loketh/ledger/internal/messaging"
	"github.com/loketh/ledger/internal/payment"
	"github.com/loketh/ledger/internal/registry"
	"github.com/loketh/ledger/internal/store"
)

// DefaultHoldTTL is how long an abandoned reservation is kept before it is pruned
const DefaultHoldTTL = 5 * time.Minute

// Config holds the settlement configuration
type Config struct {
	// Custody is the account receiving token payments
	Custody domain.Account
	// HoldTTL bounds how long an unconfirmed hold survives a crashed purchase
	HoldTTL time.Duration
}

// CreateEventInput is an organizer's request to open a new event
type CreateEventInput struct {
	Organizer domain.Account
	Name      string
	StartTime int64
	EndTime   int64
	Price     *big.Int
	Quota     uint64
	// Currency is the reserved native name or a registered token name
	Currency string
}

// BuyTicketInput is a purchase request. Payment is the attached native amount, possibly zero.
// PaymentTx is the transaction that moved a native price into custody.
type BuyTicketInput struct {
	EventID   uint64
	Buyer     domain.Account
	Payment   *big.Int
	PaymentTx string
}

// ReconcileReport counts what a reconciliation pass did with the pending transfers
type ReconcileReport struct {
	Settled  int
	Reverted int
	Pending  int
	Errors   int
}

// Ledger is the settlement engine over the event store and the ownership index
//
//go:generate mockgen -source=ledger.go -destination=../mocks/ledger.go -package=mocks -mock_names=Ledger=MockLedger
type Ledger interface {
	// CreateEvent validates and stores a new event, returning it with its assigned id
	CreateEvent(ctx context.Context, input CreateEventInput) (*domain.Event, error)
	// GetEvent returns a snapshot of the event
	GetEvent(ctx context.Context, eventID uint64) (*domain.Event, error)
	// TotalEvents returns the number of events created so far
	TotalEvents(ctx context.Context) (uint64, error)

	// BuyTicket collects payment and issues one ticket of the event to the buyer
	BuyTicket(ctx context.Context, input BuyTicketInput) (*domain.Purchase, error)
	// WithdrawMoney pays the jar of an ended event out to its organizer
	WithdrawMoney(ctx context.Context, eventID uint64, caller domain.Account) (*store.Withdrawal, error)
	// Reconcile settles the transfers whose outcome was unknown when their operation returned
	Reconcile(ctx context.Context) (*ReconcileReport, error)

	// EventsOf returns the number of events organized by the account
	EventsOf(ctx context.Context, organizer domain.Account) (uint64, error)
	// EventsOfOwner returns the ids of the events organized by the account
	EventsOfOwner(ctx context.Context, organizer domain.Account) ([]uint64, error)
	// TicketsOf returns the number of tickets held by the account
	TicketsOf(ctx context.Context, participant domain.Account) (uint64, error)
	// TicketsOfOwner returns the event ids of the tickets held by the account
	TicketsOfOwner(ctx context.Context, participant domain.Account) ([]uint64, error)
	// HasTicket reports whether the participant holds a ticket of the event
	HasTicket(ctx context.Context, participant domain.Account, eventID uint64) (bool, error)
	// OrganizerOwns reports whether the account organizes the event
	OrganizerOwns(ctx context.Context, organizer domain.Account, eventID uint64) (bool, error)
}

type ledger struct {
	config    Config
	store     store.Store
	registry  registry.TokenRegistry
	tokens    payment.TokenProvider
	native    payment.NativeBank
	tracker   payment.TransferTracker
	publisher messaging.Publisher
	clock     adapter.Clock
}

// New creates the settlement engine
func New(
	cfg Config,
	st store.Store,
	reg registry.TokenRegistry,
	tokens payment.TokenProvider,
	native payment.NativeBank,
	tracker payment.TransferTracker,
	publisher messaging.Publisher,
	clock adapter.Clock,
) Ledger {
	if cfg.HoldTTL == 0 {
		cfg.HoldTTL = DefaultHoldTTL
	}

	return &ledger{
		config:    cfg,
		store:     st,
		registry:  reg,
		tokens:    tokens,
		native:    native,
		tracker:   tracker,
		publisher: publisher,
		clock:     clock,
	}
}

func (l *ledger) now() int64 {
	return l.clock.Now().Unix()
}

func (l *ledger) EventsOf(ctx context.Context, organizer domain.Account) (uint64, error) {
	return l.store.EventsOf(ctx, organizer)
}

func (l *ledger) EventsOfOwner(ctx context.Context, organizer domain.Account) ([]uint64, error) {
	return l.store.EventsOfOwner(ctx, organizer)
}

func (l *ledger) TicketsOf(ctx context.Context, participant domain.Account) (uint64, error) {
	return l.store.TicketsOf(ctx, participant)
}

func (l *ledger) TicketsOfOwner(ctx context.Context, participant domain.Account) ([]uint64, error) {
	return l.store.TicketsOfOwner(ctx, participant)
}

func (l *ledger) HasTicket(ctx context.Context, participant domain.Account, eventID uint64) (bool, error) {
	return l.store.HasTicket(ctx, participant, eventID)
}

func (l *ledger) OrganizerOwns(ctx context.Context, organizer domain.Account, eventID uint64) (bool, error) {
	return l.store.OrganizerOwns(ctx, organizer, eventID)
}
