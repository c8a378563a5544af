package schema

// TicketHold represents the ticket_holds table. A hold keeps a quota slot while
// the payment of a purchase is being collected.
type TicketHold struct {
	ID          string `gorm:"column:id;primaryKey;type:uuid"`
	EventID     uint64 `gorm:"column:event_id;not null;uniqueIndex:idx_ticket_holds_event_participant,priority:1"`
	Participant string `gorm:"column:participant;not null;type:text;uniqueIndex:idx_ticket_holds_event_participant,priority:2"`
	// CreatedAt is the unix time of the purchase attempt, compared against the hold ttl
	CreatedAt int64 `gorm:"column:created_at;not null"`
}

// TableName specifies the table name for the TicketHold model
func (TicketHold) TableName() string {
	return "ticket_holds"
}
