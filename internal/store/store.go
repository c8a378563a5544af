package store

import (
	"context"
	"math/big"
	"time"

	"github.com/loketh/ledger/internal/domain"
)

// CreateEventInput is an already validated event. The store only assigns the id.
type CreateEventInput struct {
	Name      string
	Organizer domain.Account
	StartTime int64
	EndTime   int64
	Price     *big.Int
	Quota     uint64
	Currency  domain.Currency
}

// ReserveTicketInput identifies a purchase attempt
type ReserveTicketInput struct {
	EventID uint64
	Buyer   domain.Account
	// Now is the unix time the purchase is evaluated at
	Now int64
	// HoldTTL is how long an unconfirmed hold keeps its quota slot
	HoldTTL time.Duration
}

// Hold is a purchase whose payment is being collected. It does not take a
// quota slot; ConfirmTicket checks the quota again.
type Hold struct {
	ID          string
	EventID     uint64
	Participant domain.Account
	Organizer   domain.Account
	Price       *big.Int
	Currency    domain.Currency
	CreatedAt   int64
}

// Withdrawal is a drained jar whose amount still has to be paid out
type Withdrawal struct {
	EventID   uint64
	Recipient domain.Account
	Amount    *big.Int
	Currency  domain.Currency
}

// TransferKind tells what a pending transfer was moving
type TransferKind string

const (
	// TransferPayout is a jar paid out to its organizer
	TransferPayout TransferKind = "payout"
	// TransferPull is a token price pulled from a buyer into custody
	TransferPull TransferKind = "pull"
	// TransferRefund is a price owed back to a buyer whose ticket was not issued
	TransferRefund TransferKind = "refund"
)

// PendingTransfer is a transfer whose outcome was unknown when its operation returned.
// An empty TxHash means the transfer was never broadcast.
type PendingTransfer struct {
	ID        string
	Kind      TransferKind
	EventID   uint64
	Account   domain.Account
	Amount    *big.Int
	Currency  domain.Currency
	TxHash    string
	CreatedAt int64
}

// Store is the single source of truth of the ledger. Every method is atomic,
// and methods mutating the same event are linearized.
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// CreateEvent stores a new event with the next sequential id and indexes it under its organizer
	CreateEvent(ctx context.Context, input CreateEventInput) (*domain.Event, error)
	// GetEvent returns a snapshot of the event, or ErrInvalidEventID when it does not exist
	GetEvent(ctx context.Context, eventID uint64) (*domain.Event, error)
	// TotalEvents returns the number of events, which is also the last assigned id
	TotalEvents(ctx context.Context) (uint64, error)

	// EventsOf returns the number of events organized by the account
	EventsOf(ctx context.Context, organizer domain.Account) (uint64, error)
	// EventsOfOwner returns the ids of the events organized by the account in creation order
	EventsOfOwner(ctx context.Context, organizer domain.Account) ([]uint64, error)
	// TicketsOf returns the number of tickets bought by the account
	TicketsOf(ctx context.Context, participant domain.Account) (uint64, error)
	// TicketsOfOwner returns the event ids of the tickets bought by the account in purchase order
	TicketsOfOwner(ctx context.Context, participant domain.Account) ([]uint64, error)
	// HasTicket reports whether the participant bought a ticket of the event
	HasTicket(ctx context.Context, participant domain.Account, eventID uint64) (bool, error)
	// OrganizerOwns reports whether the account organizes the event
	OrganizerOwns(ctx context.Context, organizer domain.Account, eventID uint64) (bool, error)
	// EventPurchases returns the confirmed purchases of the event in commit order
	EventPurchases(ctx context.Context, eventID uint64) ([]domain.Purchase, error)

	// CreateToken registers a token. It returns ErrAlreadyRegistered or ErrAddressInUse on conflicts.
	CreateToken(ctx context.Context, entry domain.TokenEntry) error
	// GetToken returns the token registered under the name, or nil
	GetToken(ctx context.Context, name string) (*domain.TokenEntry, error)
	// GetTokenByAddress returns the token registered at the address, or nil
	GetTokenByAddress(ctx context.Context, address domain.Account) (*domain.TokenEntry, error)
	// TokenCount returns the number of registered tokens
	TokenCount(ctx context.Context) (uint64, error)
	// TokenNameAt returns the name of the index-th registered token in registration order
	TokenNameAt(ctx context.Context, index uint64) (string, error)

	// WithEventLock runs fn inside the exclusive purchase section of the event.
	// Store calls made with the ctx passed to fn run inside the section.
	WithEventLock(ctx context.Context, eventID uint64, fn func(ctx context.Context) error) error

	// ReserveTicket checks a purchase against the event and records a hold for it.
	// An earlier hold of the same buyer on the event is dropped.
	ReserveTicket(ctx context.Context, input ReserveTicketInput) (*Hold, error)
	// ConfirmTicket turns a hold into a ticket, increments the sold count and credits the jar.
	// paymentRef, when not empty, is the payment transaction and may pay for one ticket only.
	ConfirmTicket(ctx context.Context, holdID string, paymentRef string) (*domain.Purchase, error)
	// ReleaseTicket drops a hold. Releasing an unknown hold is a no-op.
	ReleaseTicket(ctx context.Context, holdID string) error

	// BeginWithdrawal checks a withdrawal and zeroes the jar, returning the drained amount
	BeginWithdrawal(ctx context.Context, eventID uint64, caller domain.Account, now int64) (*Withdrawal, error)
	// RestoreCollected credits amount back to the jar after a failed payout
	RestoreCollected(ctx context.Context, eventID uint64, amount *big.Int) error

	// RecordPendingTransfer stores a transfer to reconcile later and returns it with its id
	RecordPendingTransfer(ctx context.Context, transfer PendingTransfer) (*PendingTransfer, error)
	// PendingTransfers returns the recorded transfers oldest first
	PendingTransfers(ctx context.Context) ([]PendingTransfer, error)
	// ResolvePendingTransfer deletes a recorded transfer. It reports false when it was already resolved.
	ResolvePendingTransfer(ctx context.Context, id string) (bool, error)
	// RevertPayout deletes a recorded payout and credits its amount back to the jar in one step.
	// It reports false when the payout was already resolved.
	RevertPayout(ctx context.Context, id string) (bool, error)
}

// checkReservation runs the purchase guards after the event id is known to be valid.
// purchased reports a confirmed ticket of the buyer.
func checkReservation(event *domain.Event, buyer domain.Account, now int64, purchased bool) error {
	if event.Organizer == buyer {
		return domain.ErrSelfPurchase
	}
	if event.Ended(now) {
		return domain.ErrAlreadyEnded
	}
	if purchased {
		return domain.ErrAlreadyPurchased
	}
	if event.SoldCount >= event.Quota {
		return domain.ErrSoldOut
	}
	return nil
}

// checkWithdrawal runs the withdrawal guards after the event id is known to be valid
func checkWithdrawal(event *domain.Event, caller domain.Account, now int64) error {
	if event.Organizer != caller {
		return domain.ErrUnauthorized
	}
	if !event.Ended(now) {
		return domain.ErrTooEarly
	}
	if event.Collected == nil || event.Collected.Sign() == 0 {
		return domain.ErrNothingToWithdraw
	}
	return nil
}

// holdExpired reports whether a hold created at createdAt has lapsed at now
func holdExpired(createdAt, now int64, ttl time.Duration) bool {
	if ttl <= 0 {
		return false
	}
	return now-createdAt >= int64(ttl/time.Second)
}
