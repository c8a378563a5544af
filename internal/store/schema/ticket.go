package schema

import "time"

// Ticket represents the tickets table, one row per confirmed purchase.
// The serial id orders purchases and is used as the purchase sequence.
type Ticket struct {
	ID          uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	EventID     uint64 `gorm:"column:event_id;not null;uniqueIndex:idx_tickets_event_participant,priority:1"`
	Participant string `gorm:"column:participant;not null;type:text;uniqueIndex:idx_tickets_event_participant,priority:2;index:idx_tickets_participant"`
	// PaymentRef is the native payment transaction, unique across all tickets
	PaymentRef *string   `gorm:"column:payment_ref;type:text;uniqueIndex:idx_tickets_payment_ref,where:payment_ref IS NOT NULL"`
	CreatedAt  time.Time `gorm:"column:created_at;not null;default:now()"`
}

// TableName specifies the table name for the Ticket model
func (Ticket) TableName() string {
	return "tickets"
}
