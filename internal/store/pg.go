package store

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/loketh/ledger/internal/domain"
	"github.com/loketh/ledger/internal/logger"
	"github.com/loketh/ledger/internal/store/schema"
)

const (
	// eventSequenceKey is the key_value_store row holding the last assigned event id
	eventSequenceKey = "event_sequence"

	pgUniqueViolationCode = "23505"

	tokenNameConstraint    = "idx_tokens_name"
	tokenAddressConstraint = "idx_tokens_address"

	ticketPaymentRefConstraint = "idx_tickets_payment_ref"
)

type pgStore struct {
	db *gorm.DB
}

// lockedConnKey carries the connection pinned by WithEventLock
type lockedConnKey struct{}

// dbFor returns the connection pinned by an enclosing WithEventLock, or the pool
func (s *pgStore) dbFor(ctx context.Context) *gorm.DB {
	if conn, ok := ctx.Value(lockedConnKey{}).(*gorm.DB); ok {
		return conn.WithContext(ctx)
	}
	return s.db.WithContext(ctx)
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// It accesses the underlying *sql.DB and sets the pool configuration.
// If any of the pool settings are 0 or empty, reasonable defaults are used:
//   - MaxOpenConns: 20 (if 0)
//   - MaxIdleConns: 5 (if 0)
//   - ConnMaxLifetime: 5 minutes (if 0)
//   - ConnMaxIdleTime: 10 minutes (if 0)
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Notes:
//   - database/sql treats MaxOpenConns=0 as "unlimited"
//   - database/sql treats MaxIdleConns=0 as "no idle connections"
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	// Ensure MaxIdleConns doesn't exceed MaxOpenConns
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolationCode &&
		(constraint == "" || pgErr.ConstraintName == constraint)
}

func toDomainEvent(e *schema.Event) (*domain.Event, error) {
	price, ok := domain.ParseAmount(e.Price)
	if !ok {
		return nil, fmt.Errorf("invalid price of event %d: %q", e.ID, e.Price)
	}
	collected, ok := domain.ParseAmount(e.Collected)
	if !ok {
		return nil, fmt.Errorf("invalid collected amount of event %d: %q", e.ID, e.Collected)
	}

	currency := domain.NativeCurrency()
	if e.CurrencyToken != nil {
		currency = domain.TokenCurrency(e.CurrencyName, common.HexToAddress(*e.CurrencyToken))
	}

	return &domain.Event{
		ID:        e.ID,
		Name:      e.Name,
		Organizer: common.HexToAddress(e.Organizer),
		StartTime: e.StartTime,
		EndTime:   e.EndTime,
		Price:     price,
		Quota:     e.Quota,
		SoldCount: e.SoldCount,
		Collected: collected,
		Currency:  currency,
	}, nil
}

func toDomainToken(t *schema.Token) *domain.TokenEntry {
	return &domain.TokenEntry{
		Name:    t.Name,
		Address: common.HexToAddress(t.Address),
		AddedBy: common.HexToAddress(t.AddedBy),
	}
}

// lockEvent loads the event row with SELECT ... FOR UPDATE, serializing every
// mutation of the same event until the transaction ends
func lockEvent(tx *gorm.DB, eventID uint64) (*schema.Event, error) {
	if eventID < domain.FIRST_EVENT_ID || eventID > math.MaxInt64 {
		return nil, domain.ErrInvalidEventID
	}

	var event schema.Event
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", eventID).
		First(&event).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidEventID
		}
		return nil, fmt.Errorf("failed to lock event: %w", err)
	}
	return &event, nil
}

// CreateEvent stores a new event with the next sequential id
func (s *pgStore) CreateEvent(ctx context.Context, input CreateEventInput) (*domain.Event, error) {
	var created *domain.Event
	err := s.dbFor(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. Lock the sequence row so concurrent creations queue up behind each other
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&schema.KeyValueStore{Key: eventSequenceKey, Value: "0"}).Error; err != nil {
			return fmt.Errorf("failed to initialize event sequence: %w", err)
		}

		var kv schema.KeyValueStore
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("key = ?", eventSequenceKey).
			First(&kv).Error; err != nil {
			return fmt.Errorf("failed to lock event sequence: %w", err)
		}

		last, err := strconv.ParseUint(kv.Value, 10, 64)
		if err != nil {
			return fmt.Errorf("failed to parse event sequence: %w", err)
		}
		id := last + 1

		// 2. Insert the event
		event := schema.Event{
			ID:           id,
			Name:         input.Name,
			Organizer:    input.Organizer.Hex(),
			StartTime:    input.StartTime,
			EndTime:      input.EndTime,
			Price:        domain.CloneAmount(input.Price).String(),
			Quota:        input.Quota,
			SoldCount:    0,
			Collected:    "0",
			CurrencyName: input.Currency.Name,
		}
		if !input.Currency.IsNative() {
			token := input.Currency.Token.Hex()
			event.CurrencyToken = &token
		}
		if err := tx.Create(&event).Error; err != nil {
			return fmt.Errorf("failed to create event: %w", err)
		}

		// 3. Advance the sequence
		if err := tx.Model(&schema.KeyValueStore{}).
			Where("key = ?", eventSequenceKey).
			Update("value", strconv.FormatUint(id, 10)).Error; err != nil {
			return fmt.Errorf("failed to advance event sequence: %w", err)
		}

		created, err = toDomainEvent(&event)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// GetEvent returns a snapshot of the event
func (s *pgStore) GetEvent(ctx context.Context, eventID uint64) (*domain.Event, error) {
	if eventID < domain.FIRST_EVENT_ID || eventID > math.MaxInt64 {
		return nil, domain.ErrInvalidEventID
	}

	var event schema.Event
	err := s.dbFor(ctx).Where("id = ?", eventID).First(&event).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidEventID
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return toDomainEvent(&event)
}

// TotalEvents returns the number of events
func (s *pgStore) TotalEvents(ctx context.Context) (uint64, error) {
	var count int64
	if err := s.dbFor(ctx).Model(&schema.Event{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count events: %w", err)
	}
	return uint64(count), nil //nolint:gosec,G115
}

func (s *pgStore) EventsOf(ctx context.Context, organizer domain.Account) (uint64, error) {
	var count int64
	err := s.dbFor(ctx).Model(&schema.Event{}).
		Where("organizer = ?", organizer.Hex()).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count events of organizer: %w", err)
	}
	return uint64(count), nil //nolint:gosec,G115
}

func (s *pgStore) EventsOfOwner(ctx context.Context, organizer domain.Account) ([]uint64, error) {
	ids := []uint64{}
	err := s.dbFor(ctx).Model(&schema.Event{}).
		Where("organizer = ?", organizer.Hex()).
		Order("id ASC").
		Pluck("id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get events of organizer: %w", err)
	}
	return ids, nil
}

func (s *pgStore) TicketsOf(ctx context.Context, participant domain.Account) (uint64, error) {
	var count int64
	err := s.dbFor(ctx).Model(&schema.Ticket{}).
		Where("participant = ?", participant.Hex()).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count tickets of participant: %w", err)
	}
	return uint64(count), nil //nolint:gosec,G115
}

func (s *pgStore) TicketsOfOwner(ctx context.Context, participant domain.Account) ([]uint64, error) {
	ids := []uint64{}
	err := s.dbFor(ctx).Model(&schema.Ticket{}).
		Where("participant = ?", participant.Hex()).
		Order("id ASC").
		Pluck("event_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get tickets of participant: %w", err)
	}
	return ids, nil
}

func (s *pgStore) HasTicket(ctx context.Context, participant domain.Account, eventID uint64) (bool, error) {
	var count int64
	err := s.dbFor(ctx).Model(&schema.Ticket{}).
		Where("event_id = ? AND participant = ?", eventID, participant.Hex()).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check ticket: %w", err)
	}
	return count > 0, nil
}

func (s *pgStore) OrganizerOwns(ctx context.Context, organizer domain.Account, eventID uint64) (bool, error) {
	var count int64
	err := s.dbFor(ctx).Model(&schema.Event{}).
		Where("id = ? AND organizer = ?", eventID, organizer.Hex()).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check event organizer: %w", err)
	}
	return count > 0, nil
}

// EventPurchases returns the confirmed purchases of the event in commit order
func (s *pgStore) EventPurchases(ctx context.Context, eventID uint64) ([]domain.Purchase, error) {
	if _, err := s.GetEvent(ctx, eventID); err != nil {
		return nil, err
	}

	var tickets []schema.Ticket
	err := s.dbFor(ctx).
		Where("event_id = ?", eventID).
		Order("id ASC").
		Find(&tickets).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get event purchases: %w", err)
	}

	purchases := make([]domain.Purchase, 0, len(tickets))
	for _, t := range tickets {
		purchases = append(purchases, domain.Purchase{
			EventID:     t.EventID,
			Participant: common.HexToAddress(t.Participant),
			Sequence:    t.ID,
		})
	}
	return purchases, nil
}

// CreateToken registers a token
func (s *pgStore) CreateToken(ctx context.Context, entry domain.TokenEntry) error {
	return s.dbFor(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&schema.Token{}).Where("name = ?", entry.Name).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check token name: %w", err)
		}
		if count > 0 {
			return domain.ErrAlreadyRegistered
		}

		if err := tx.Model(&schema.Token{}).Where("address = ?", entry.Address.Hex()).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check token address: %w", err)
		}
		if count > 0 {
			return domain.ErrAddressInUse
		}

		token := schema.Token{
			Name:    entry.Name,
			Address: entry.Address.Hex(),
			AddedBy: entry.AddedBy.Hex(),
		}
		err := tx.Create(&token).Error
		switch {
		case err == nil:
			return nil
		case isUniqueViolation(err, tokenNameConstraint):
			// lost a race against a concurrent registration
			return domain.ErrAlreadyRegistered
		case isUniqueViolation(err, tokenAddressConstraint):
			return domain.ErrAddressInUse
		default:
			return fmt.Errorf("failed to create token: %w", err)
		}
	})
}

func (s *pgStore) GetToken(ctx context.Context, name string) (*domain.TokenEntry, error) {
	var token schema.Token
	err := s.dbFor(ctx).Where("name = ?", name).First(&token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get token: %w", err)
	}
	return toDomainToken(&token), nil
}

func (s *pgStore) GetTokenByAddress(ctx context.Context, address domain.Account) (*domain.TokenEntry, error) {
	var token schema.Token
	err := s.dbFor(ctx).Where("address = ?", address.Hex()).First(&token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get token by address: %w", err)
	}
	return toDomainToken(&token), nil
}

func (s *pgStore) TokenCount(ctx context.Context) (uint64, error) {
	var count int64
	if err := s.dbFor(ctx).Model(&schema.Token{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count tokens: %w", err)
	}
	return uint64(count), nil //nolint:gosec,G115
}

func (s *pgStore) TokenNameAt(ctx context.Context, index uint64) (string, error) {
	// OFFSET takes a signed integer; no registry grows this large
	if index > math.MaxInt32 {
		return "", domain.ErrInvalidTokenIndex
	}

	var names []string
	err := s.dbFor(ctx).Model(&schema.Token{}).
		Order("id ASC").
		Offset(int(index)).
		Limit(1).
		Pluck("name", &names).Error
	if err != nil {
		return "", fmt.Errorf("failed to get token name: %w", err)
	}
	if len(names) == 0 {
		return "", domain.ErrInvalidTokenIndex
	}
	return names[0], nil
}

// WithEventLock takes a session advisory lock keyed by the event id on a pinned
// connection. fn may wait on external transfers, so no transaction stays open.
func (s *pgStore) WithEventLock(ctx context.Context, eventID uint64, fn func(ctx context.Context) error) error {
	if _, err := s.GetEvent(ctx, eventID); err != nil {
		return err
	}

	locked := func(conn *gorm.DB) error {
		if err := conn.Exec("SELECT pg_advisory_lock(?)", int64(eventID)).Error; err != nil {
			return fmt.Errorf("failed to lock event %d: %w", eventID, err)
		}
		defer func() {
			if err := conn.WithContext(context.WithoutCancel(ctx)).
				Exec("SELECT pg_advisory_unlock(?)", int64(eventID)).Error; err != nil {
				logger.ErrorCtx(ctx, fmt.Errorf("failed to unlock event %d: %w", eventID, err))
			}
		}()
		return fn(context.WithValue(ctx, lockedConnKey{}, conn))
	}

	db := s.dbFor(ctx)
	if _, inTx := db.Statement.ConnPool.(gorm.TxCommitter); inTx {
		// already pinned to the transaction's connection
		return locked(db)
	}
	return db.Connection(locked)
}

// ReserveTicket checks a purchase under the event row lock and records a hold for it
func (s *pgStore) ReserveTicket(ctx context.Context, input ReserveTicketInput) (*Hold, error) {
	var hold *Hold
	err := s.dbFor(ctx).Transaction(func(tx *gorm.DB) error {
		row, err := lockEvent(tx, input.EventID)
		if err != nil {
			return err
		}
		event, err := toDomainEvent(row)
		if err != nil {
			return err
		}

		// 1. Prune lapsed holds of this event
		if input.HoldTTL > 0 {
			cutoff := input.Now - int64(input.HoldTTL/time.Second)
			if err := tx.Where("event_id = ? AND created_at <= ?", input.EventID, cutoff).
				Delete(&schema.TicketHold{}).Error; err != nil {
				return fmt.Errorf("failed to prune ticket holds: %w", err)
			}
		}

		// 2. Drop an earlier attempt of the buyer and look for a confirmed ticket
		buyer := input.Buyer.Hex()
		if err := tx.Where("event_id = ? AND participant = ?", input.EventID, buyer).
			Delete(&schema.TicketHold{}).Error; err != nil {
			return fmt.Errorf("failed to drop earlier ticket hold: %w", err)
		}

		var owned int64
		if err := tx.Model(&schema.Ticket{}).
			Where("event_id = ? AND participant = ?", input.EventID, buyer).
			Count(&owned).Error; err != nil {
			return fmt.Errorf("failed to check ticket: %w", err)
		}

		if err := checkReservation(event, input.Buyer, input.Now, owned > 0); err != nil {
			return err
		}

		// 3. Record the hold
		holdRow := schema.TicketHold{
			ID:          uuid.NewString(),
			EventID:     input.EventID,
			Participant: buyer,
			CreatedAt:   input.Now,
		}
		if err := tx.Create(&holdRow).Error; err != nil {
			return fmt.Errorf("failed to create ticket hold: %w", err)
		}

		hold = &Hold{
			ID:          holdRow.ID,
			EventID:     input.EventID,
			Participant: input.Buyer,
			Organizer:   event.Organizer,
			Price:       event.Price,
			Currency:    event.Currency,
			CreatedAt:   input.Now,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return hold, nil
}

// ConfirmTicket turns a hold into a ticket. A rejected confirmation still consumes the hold.
func (s *pgStore) ConfirmTicket(ctx context.Context, holdID string, paymentRef string) (*domain.Purchase, error) {
	if _, err := uuid.Parse(holdID); err != nil {
		return nil, domain.ErrHoldExpired
	}

	var (
		purchase *domain.Purchase
		rejected error
	)
	err := s.dbFor(ctx).Transaction(func(tx *gorm.DB) error {
		var hold schema.TicketHold
		if err := tx.Where("id = ?", holdID).First(&hold).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrHoldExpired
			}
			return fmt.Errorf("failed to get ticket hold: %w", err)
		}

		row, err := lockEvent(tx, hold.EventID)
		if err != nil {
			return err
		}

		// The hold may have been pruned while we waited for the lock
		result := tx.Where("id = ?", holdID).Delete(&schema.TicketHold{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete ticket hold: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrHoldExpired
		}

		// Rejections below commit the hold deletion
		if row.SoldCount >= row.Quota {
			rejected = domain.ErrSoldOut
			return nil
		}

		ticket := schema.Ticket{
			EventID:     hold.EventID,
			Participant: hold.Participant,
		}
		if paymentRef != "" {
			ticket.PaymentRef = &paymentRef
		}
		if err := tx.SavePoint("ticket").Error; err != nil {
			return fmt.Errorf("failed to create savepoint: %w", err)
		}
		err = tx.Create(&ticket).Error
		switch {
		case err == nil:
		case isUniqueViolation(err, ticketPaymentRefConstraint):
			rejected = domain.ErrPaymentProofUsed
		case isUniqueViolation(err, ""):
			rejected = domain.ErrAlreadyPurchased
		default:
			return fmt.Errorf("failed to create ticket: %w", err)
		}
		if rejected != nil {
			return tx.RollbackTo("ticket").Error
		}

		if err := tx.Model(&schema.Event{}).
			Where("id = ?", hold.EventID).
			Updates(map[string]interface{}{
				"sold_count": gorm.Expr("sold_count + 1"),
				"collected":  gorm.Expr("collected + CAST(? AS numeric)", row.Price),
				"updated_at": gorm.Expr("now()"),
			}).Error; err != nil {
			return fmt.Errorf("failed to update event counters: %w", err)
		}

		purchase = &domain.Purchase{
			EventID:     hold.EventID,
			Participant: common.HexToAddress(hold.Participant),
			Sequence:    ticket.ID,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if rejected != nil {
		return nil, rejected
	}
	return purchase, nil
}

// ReleaseTicket drops a hold
func (s *pgStore) ReleaseTicket(ctx context.Context, holdID string) error {
	if _, err := uuid.Parse(holdID); err != nil {
		return nil
	}
	if err := s.dbFor(ctx).Where("id = ?", holdID).Delete(&schema.TicketHold{}).Error; err != nil {
		return fmt.Errorf("failed to release ticket hold: %w", err)
	}
	return nil
}

// BeginWithdrawal checks a withdrawal and zeroes the jar under the event row lock
func (s *pgStore) BeginWithdrawal(ctx context.Context, eventID uint64, caller domain.Account, now int64) (*Withdrawal, error) {
	var withdrawal *Withdrawal
	err := s.dbFor(ctx).Transaction(func(tx *gorm.DB) error {
		row, err := lockEvent(tx, eventID)
		if err != nil {
			return err
		}
		event, err := toDomainEvent(row)
		if err != nil {
			return err
		}

		if err := checkWithdrawal(event, caller, now); err != nil {
			return err
		}

		if err := tx.Model(&schema.Event{}).
			Where("id = ?", eventID).
			Updates(map[string]interface{}{
				"collected":  "0",
				"updated_at": gorm.Expr("now()"),
			}).Error; err != nil {
			return fmt.Errorf("failed to drain event jar: %w", err)
		}

		withdrawal = &Withdrawal{
			EventID:   eventID,
			Recipient: caller,
			Amount:    event.Collected,
			Currency:  event.Currency,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return withdrawal, nil
}

// RestoreCollected credits amount back to the jar
func (s *pgStore) RestoreCollected(ctx context.Context, eventID uint64, amount *big.Int) error {
	result := s.dbFor(ctx).Model(&schema.Event{}).
		Where("id = ?", eventID).
		Updates(map[string]interface{}{
			"collected":  gorm.Expr("collected + CAST(? AS numeric)", domain.CloneAmount(amount).String()),
			"updated_at": gorm.Expr("now()"),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to restore event jar: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrInvalidEventID
	}
	return nil
}

func toSchemaPendingTransfer(t *PendingTransfer) schema.PendingTransfer {
	row := schema.PendingTransfer{
		ID:           t.ID,
		Kind:         string(t.Kind),
		EventID:      t.EventID,
		Account:      t.Account.Hex(),
		Amount:       domain.CloneAmount(t.Amount).String(),
		CurrencyName: t.Currency.Name,
		TxHash:       t.TxHash,
		CreatedAt:    t.CreatedAt,
	}
	if !t.Currency.IsNative() {
		token := t.Currency.Token.Hex()
		row.CurrencyToken = &token
	}
	return row
}

func toPendingTransfer(row *schema.PendingTransfer) (*PendingTransfer, error) {
	amount, ok := domain.ParseAmount(row.Amount)
	if !ok {
		return nil, fmt.Errorf("invalid amount of pending transfer %s: %q", row.ID, row.Amount)
	}

	currency := domain.NativeCurrency()
	if row.CurrencyToken != nil {
		currency = domain.TokenCurrency(row.CurrencyName, common.HexToAddress(*row.CurrencyToken))
	}

	return &PendingTransfer{
		ID:        row.ID,
		Kind:      TransferKind(row.Kind),
		EventID:   row.EventID,
		Account:   common.HexToAddress(row.Account),
		Amount:    amount,
		Currency:  currency,
		TxHash:    row.TxHash,
		CreatedAt: row.CreatedAt,
	}, nil
}

// RecordPendingTransfer stores a transfer to reconcile later
func (s *pgStore) RecordPendingTransfer(ctx context.Context, transfer PendingTransfer) (*PendingTransfer, error) {
	if transfer.EventID < domain.FIRST_EVENT_ID || transfer.EventID > math.MaxInt64 {
		return nil, domain.ErrInvalidEventID
	}

	transfer.ID = uuid.NewString()
	row := toSchemaPendingTransfer(&transfer)
	if err := s.dbFor(ctx).Create(&row).Error; err != nil {
		return nil, fmt.Errorf("failed to record pending transfer: %w", err)
	}
	return toPendingTransfer(&row)
}

// PendingTransfers returns the recorded transfers oldest first
func (s *pgStore) PendingTransfers(ctx context.Context) ([]PendingTransfer, error) {
	var rows []schema.PendingTransfer
	if err := s.dbFor(ctx).Order("created_at ASC, id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get pending transfers: %w", err)
	}

	transfers := make([]PendingTransfer, 0, len(rows))
	for i := range rows {
		t, err := toPendingTransfer(&rows[i])
		if err != nil {
			return nil, err
		}
		transfers = append(transfers, *t)
	}
	return transfers, nil
}

// ResolvePendingTransfer deletes a recorded transfer
func (s *pgStore) ResolvePendingTransfer(ctx context.Context, id string) (bool, error) {
	if _, err := uuid.Parse(id); err != nil {
		return false, nil
	}

	result := s.dbFor(ctx).Where("id = ?", id).Delete(&schema.PendingTransfer{})
	if result.Error != nil {
		return false, fmt.Errorf("failed to resolve pending transfer: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// RevertPayout deletes a recorded payout and restores the jar in one transaction
func (s *pgStore) RevertPayout(ctx context.Context, id string) (bool, error) {
	if _, err := uuid.Parse(id); err != nil {
		return false, nil
	}

	reverted := false
	err := s.dbFor(ctx).Transaction(func(tx *gorm.DB) error {
		var rows []schema.PendingTransfer
		if err := tx.Clauses(clause.Returning{}).
			Where("id = ? AND kind = ?", id, string(TransferPayout)).
			Delete(&rows).Error; err != nil {
			return fmt.Errorf("failed to resolve pending payout: %w", err)
		}
		if len(rows) == 0 {
			return nil
		}

		result := tx.Model(&schema.Event{}).
			Where("id = ?", rows[0].EventID).
			Updates(map[string]interface{}{
				"collected":  gorm.Expr("collected + CAST(? AS numeric)", rows[0].Amount),
				"updated_at": gorm.Expr("now()"),
			})
		if result.Error != nil {
			return fmt.Errorf("failed to restore event jar: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrInvalidEventID
		}

		reverted = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return reverted, nil
}
