package schema

// PendingTransfer represents the pending_transfers table, the transfers
// waiting for reconciliation
type PendingTransfer struct {
	ID            string  `gorm:"column:id;primaryKey;type:uuid"`
	Kind          string  `gorm:"column:kind;not null;type:text"`
	EventID       uint64  `gorm:"column:event_id;not null;index:idx_pending_transfers_event"`
	Account       string  `gorm:"column:account;not null;type:text"`
	Amount        string  `gorm:"column:amount;not null;type:numeric(78,0)"`
	CurrencyName  string  `gorm:"column:currency_name;not null;type:text"`
	CurrencyToken *string `gorm:"column:currency_token;type:text"`
	TxHash        string  `gorm:"column:tx_hash;not null;type:text"`
	// CreatedAt is the unix time the transfer was recorded
	CreatedAt int64 `gorm:"column:created_at;not null"`
}

// TableName specifies the table name for the PendingTransfer model
func (PendingTransfer) TableName() string {
	return "pending_transfers"
}
