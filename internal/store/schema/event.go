package schema

import "time"

// Event represents the events table. Name, organizer, schedule, price, quota and
// currency are written once; sold_count and collected move with purchases and withdrawals.
type Event struct {
	// ID is the sequential event id handed out from the event sequence counter (1, 2, 3, ...)
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement:false"`
	// Name is the display name of the event
	Name string `gorm:"column:name;not null;type:text"`
	// Organizer is the checksummed address of the account that created the event
	Organizer string `gorm:"column:organizer;not null;type:text;index:idx_events_organizer"`
	// StartTime and EndTime are unix seconds
	StartTime int64 `gorm:"column:start_time;not null"`
	EndTime   int64 `gorm:"column:end_time;not null"`
	// Price is the ticket price in the smallest unit of the currency
	Price string `gorm:"column:price;not null;type:numeric(78,0)"`
	// Quota is the maximum number of tickets
	Quota uint64 `gorm:"column:quota;not null"`
	// SoldCount is the number of issued tickets
	SoldCount uint64 `gorm:"column:sold_count;not null;default:0"`
	// Collected is the unwithdrawn balance of the event
	Collected string `gorm:"column:collected;not null;type:numeric(78,0);default:0"`
	// CurrencyName is the native currency name or a registered token name
	CurrencyName string `gorm:"column:currency_name;not null;type:text"`
	// CurrencyToken is the token contract address, nil for the native currency
	CurrencyToken *string   `gorm:"column:currency_token;type:text"`
	CreatedAt     time.Time `gorm:"column:created_at;not null;default:now()"`
	UpdatedAt     time.Time `gorm:"column:updated_at;not null;default:now()"`
}

// TableName specifies the table name for the Event model
func (Event) TableName() string {
	return "events"
}
