package domain

import (
	"math/big"
	"time"

	"github.com/oklog/ulid/v2"
)

// NotificationType is the type of a ledger notification
type NotificationType string

const (
	NotificationEventCreated   NotificationType = "event_created"
	NotificationTicketIssued   NotificationType = "ticket_issued"
	NotificationMoneyWithdrawn NotificationType = "money_withdrawn"
	NotificationTokenAdded     NotificationType = "token_added"
)

// Notification is emitted exactly once per successful state transition.
// Only the fields relevant to Type are set.
type Notification struct {
	ID         string           `json:"id"`
	Type       NotificationType `json:"type"`
	OccurredAt time.Time        `json:"occurred_at"`

	EventID      uint64   `json:"event_id,omitempty"`
	Organizer    *Account `json:"organizer,omitempty"`
	Participant  *Account `json:"participant,omitempty"`
	Recipient    *Account `json:"recipient,omitempty"`
	Amount       string   `json:"amount,omitempty"`
	TokenName    string   `json:"token_name,omitempty"`
	TokenAddress *Account `json:"token_address,omitempty"`
	AddedBy      *Account `json:"added_by,omitempty"`
}

func newNotification(t NotificationType, at time.Time) *Notification {
	return &Notification{
		ID:         ulid.MustNewDefault(at).String(),
		Type:       t,
		OccurredAt: at.UTC(),
	}
}

// NewEventCreated builds an EventCreated{id, organizer} notification
func NewEventCreated(at time.Time, eventID uint64, organizer Account) *Notification {
	n := newNotification(NotificationEventCreated, at)
	n.EventID = eventID
	n.Organizer = &organizer
	return n
}

// NewTicketIssued builds a TicketIssued{eventId, participant} notification
func NewTicketIssued(at time.Time, eventID uint64, participant Account) *Notification {
	n := newNotification(NotificationTicketIssued, at)
	n.EventID = eventID
	n.Participant = &participant
	return n
}

// NewMoneyWithdrawn builds a MoneyWithdrawn{eventId, recipient, amount} notification
func NewMoneyWithdrawn(at time.Time, eventID uint64, recipient Account, amount *big.Int) *Notification {
	n := newNotification(NotificationMoneyWithdrawn, at)
	n.EventID = eventID
	n.Recipient = &recipient
	n.Amount = CloneAmount(amount).String()
	return n
}

// NewTokenAdded builds a TokenAdded{name, address, addedBy} notification
func NewTokenAdded(at time.Time, name string, address, addedBy Account) *Notification {
	n := newNotification(NotificationTokenAdded, at)
	n.TokenName = name
	n.TokenAddress = &address
	n.AddedBy = &addedBy
	return n
}
