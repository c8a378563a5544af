package schema

import (
	"time"
)

// Token represents the tokens table - the registry of currencies an event can be priced in
type Token struct {
	// ID is the internal serial key, it orders the registry for enumeration
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Name is the currency name, unique and never the native currency name
	Name string `gorm:"column:name;not null;uniqueIndex:idx_tokens_name;type:text"`
	// Address is the checksummed token contract address, unique across names
	Address string `gorm:"column:address;not null;uniqueIndex:idx_tokens_address;type:text"`
	// AddedBy is the admin account that registered the token
	AddedBy   string    `gorm:"column:added_by;not null;type:text"`
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
}

// TableName specifies the table name for the Token model
func (Token) TableName() string {
	return "tokens"
}
