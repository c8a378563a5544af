package store

import (
	"context"
	"fmt"
	"math/big"
	"sync"

	"github.com/google/uuid"

	"github.com/loketh/ledger/internal/domain"
)

type ticketKey struct {
	eventID     uint64
	participant domain.Account
}

// eventEntry serializes every mutation of one event and its holds.
// section is the purchase section handed out by WithEventLock.
type eventEntry struct {
	section sync.Mutex
	mu      sync.Mutex
	event   *domain.Event
	holds   map[string]*Hold
}

type memoryStore struct {
	// mu guards the maps below. Lock order is eventEntry.mu before mu.
	mu        sync.RWMutex
	events    []*eventEntry
	eventsOf  map[domain.Account][]uint64
	ticketsOf map[domain.Account][]uint64
	tickets   map[ticketKey]struct{}
	purchases map[uint64][]domain.Purchase
	holdIndex map[string]uint64
	sequence  uint64
	// paymentRefs are the payment transactions that already paid for a ticket
	paymentRefs map[string]struct{}

	pending      map[string]*PendingTransfer
	pendingOrder []string

	tokens      map[string]*domain.TokenEntry
	tokenByAddr map[domain.Account]string
	tokenNames  []string
}

// NewMemoryStore creates an in-process store. State lives as long as the process.
func NewMemoryStore() Store {
	return &memoryStore{
		eventsOf:    make(map[domain.Account][]uint64),
		ticketsOf:   make(map[domain.Account][]uint64),
		tickets:     make(map[ticketKey]struct{}),
		purchases:   make(map[uint64][]domain.Purchase),
		holdIndex:   make(map[string]uint64),
		paymentRefs: make(map[string]struct{}),
		pending:     make(map[string]*PendingTransfer),
		tokens:      make(map[string]*domain.TokenEntry),
		tokenByAddr: make(map[domain.Account]string),
	}
}

func (s *memoryStore) entry(eventID uint64) (*eventEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if eventID < domain.FIRST_EVENT_ID || eventID > uint64(len(s.events)) {
		return nil, domain.ErrInvalidEventID
	}
	return s.events[eventID-1], nil
}

// CreateEvent stores a new event with the next sequential id
func (s *memoryStore) CreateEvent(ctx context.Context, input CreateEventInput) (*domain.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	event := &domain.Event{
		ID:        uint64(len(s.events)) + domain.FIRST_EVENT_ID,
		Name:      input.Name,
		Organizer: input.Organizer,
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
		Price:     domain.CloneAmount(input.Price),
		Quota:     input.Quota,
		Collected: new(big.Int),
		Currency:  input.Currency,
	}

	s.events = append(s.events, &eventEntry{event: event, holds: make(map[string]*Hold)})
	s.eventsOf[input.Organizer] = append(s.eventsOf[input.Organizer], event.ID)

	return event.Clone(), nil
}

// GetEvent returns a snapshot of the event
func (s *memoryStore) GetEvent(ctx context.Context, eventID uint64) (*domain.Event, error) {
	e, err := s.entry(eventID)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.event.Clone(), nil
}

// TotalEvents returns the number of events
func (s *memoryStore) TotalEvents(ctx context.Context) (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return uint64(len(s.events)), nil
}

func (s *memoryStore) EventsOf(ctx context.Context, organizer domain.Account) (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return uint64(len(s.eventsOf[organizer])), nil
}

func (s *memoryStore) EventsOfOwner(ctx context.Context, organizer domain.Account) ([]uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]uint64{}, s.eventsOf[organizer]...), nil
}

func (s *memoryStore) TicketsOf(ctx context.Context, participant domain.Account) (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return uint64(len(s.ticketsOf[participant])), nil
}

func (s *memoryStore) TicketsOfOwner(ctx context.Context, participant domain.Account) ([]uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]uint64{}, s.ticketsOf[participant]...), nil
}

func (s *memoryStore) HasTicket(ctx context.Context, participant domain.Account, eventID uint64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.tickets[ticketKey{eventID: eventID, participant: participant}]
	return ok, nil
}

func (s *memoryStore) OrganizerOwns(ctx context.Context, organizer domain.Account, eventID uint64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if eventID < domain.FIRST_EVENT_ID || eventID > uint64(len(s.events)) {
		return false, nil
	}
	// organizer never changes after creation
	return s.events[eventID-1].event.Organizer == organizer, nil
}

// EventPurchases returns the confirmed purchases of the event in commit order
func (s *memoryStore) EventPurchases(ctx context.Context, eventID uint64) ([]domain.Purchase, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if eventID < domain.FIRST_EVENT_ID || eventID > uint64(len(s.events)) {
		return nil, domain.ErrInvalidEventID
	}
	return append([]domain.Purchase{}, s.purchases[eventID]...), nil
}

// CreateToken registers a token
func (s *memoryStore) CreateToken(ctx context.Context, entry domain.TokenEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tokens[entry.Name]; ok {
		return domain.ErrAlreadyRegistered
	}
	if _, ok := s.tokenByAddr[entry.Address]; ok {
		return domain.ErrAddressInUse
	}

	e := entry
	s.tokens[entry.Name] = &e
	s.tokenByAddr[entry.Address] = entry.Name
	s.tokenNames = append(s.tokenNames, entry.Name)
	return nil
}

func (s *memoryStore) GetToken(ctx context.Context, name string) (*domain.TokenEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.tokens[name]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (s *memoryStore) GetTokenByAddress(ctx context.Context, address domain.Account) (*domain.TokenEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	name, ok := s.tokenByAddr[address]
	if !ok {
		return nil, nil
	}
	cp := *s.tokens[name]
	return &cp, nil
}

func (s *memoryStore) TokenCount(ctx context.Context) (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return uint64(len(s.tokenNames)), nil
}

func (s *memoryStore) TokenNameAt(ctx context.Context, index uint64) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if index >= uint64(len(s.tokenNames)) {
		return "", domain.ErrInvalidTokenIndex
	}
	return s.tokenNames[index], nil
}

func (s *memoryStore) WithEventLock(ctx context.Context, eventID uint64, fn func(ctx context.Context) error) error {
	e, err := s.entry(eventID)
	if err != nil {
		return err
	}

	e.section.Lock()
	defer e.section.Unlock()
	return fn(ctx)
}

// ReserveTicket checks a purchase under the event lock and records a hold for it
func (s *memoryStore) ReserveTicket(ctx context.Context, input ReserveTicketInput) (*Hold, error) {
	e, err := s.entry(input.EventID)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	for id, h := range e.holds {
		if h.Participant == input.Buyer || holdExpired(h.CreatedAt, input.Now, input.HoldTTL) {
			delete(e.holds, id)
			delete(s.holdIndex, id)
		}
	}

	_, purchased := s.tickets[ticketKey{eventID: input.EventID, participant: input.Buyer}]
	if err := checkReservation(e.event, input.Buyer, input.Now, purchased); err != nil {
		return nil, err
	}

	hold := &Hold{
		ID:          uuid.NewString(),
		EventID:     input.EventID,
		Participant: input.Buyer,
		Organizer:   e.event.Organizer,
		Price:       domain.CloneAmount(e.event.Price),
		Currency:    e.event.Currency,
		CreatedAt:   input.Now,
	}
	e.holds[hold.ID] = hold
	s.holdIndex[hold.ID] = input.EventID

	cp := *hold
	cp.Price = domain.CloneAmount(hold.Price)
	return &cp, nil
}

// ConfirmTicket turns a hold into a ticket. The hold is consumed even when confirmation fails.
func (s *memoryStore) ConfirmTicket(ctx context.Context, holdID string, paymentRef string) (*domain.Purchase, error) {
	s.mu.RLock()
	eventID, ok := s.holdIndex[holdID]
	s.mu.RUnlock()
	if !ok {
		return nil, domain.ErrHoldExpired
	}

	e, err := s.entry(eventID)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	hold, ok := e.holds[holdID]
	if !ok {
		return nil, domain.ErrHoldExpired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(e.holds, holdID)
	delete(s.holdIndex, holdID)

	key := ticketKey{eventID: eventID, participant: hold.Participant}
	if _, owned := s.tickets[key]; owned {
		return nil, domain.ErrAlreadyPurchased
	}
	if e.event.SoldCount >= e.event.Quota {
		return nil, domain.ErrSoldOut
	}
	if paymentRef != "" {
		if _, used := s.paymentRefs[paymentRef]; used {
			return nil, domain.ErrPaymentProofUsed
		}
		s.paymentRefs[paymentRef] = struct{}{}
	}

	e.event.SoldCount++
	e.event.Collected = new(big.Int).Add(e.event.Collected, e.event.Price)

	s.sequence++
	purchase := domain.Purchase{EventID: eventID, Participant: hold.Participant, Sequence: s.sequence}
	s.tickets[key] = struct{}{}
	s.ticketsOf[hold.Participant] = append(s.ticketsOf[hold.Participant], eventID)
	s.purchases[eventID] = append(s.purchases[eventID], purchase)

	return &purchase, nil
}

// ReleaseTicket drops a hold
func (s *memoryStore) ReleaseTicket(ctx context.Context, holdID string) error {
	s.mu.RLock()
	eventID, ok := s.holdIndex[holdID]
	s.mu.RUnlock()
	if !ok {
		return nil
	}

	e, err := s.entry(eventID)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(e.holds, holdID)
	delete(s.holdIndex, holdID)
	return nil
}

// BeginWithdrawal checks a withdrawal and zeroes the jar under the event lock
func (s *memoryStore) BeginWithdrawal(ctx context.Context, eventID uint64, caller domain.Account, now int64) (*Withdrawal, error) {
	e, err := s.entry(eventID)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if err := checkWithdrawal(e.event, caller, now); err != nil {
		return nil, err
	}

	amount := e.event.Collected
	e.event.Collected = new(big.Int)

	return &Withdrawal{
		EventID:   eventID,
		Recipient: caller,
		Amount:    amount,
		Currency:  e.event.Currency,
	}, nil
}

// RestoreCollected credits amount back to the jar
func (s *memoryStore) RestoreCollected(ctx context.Context, eventID uint64, amount *big.Int) error {
	e, err := s.entry(eventID)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.event.Collected = new(big.Int).Add(e.event.Collected, domain.CloneAmount(amount))
	return nil
}

func (s *memoryStore) RecordPendingTransfer(ctx context.Context, transfer PendingTransfer) (*PendingTransfer, error) {
	if _, err := s.entry(transfer.EventID); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t := transfer
	t.ID = uuid.NewString()
	t.Amount = domain.CloneAmount(transfer.Amount)
	s.pending[t.ID] = &t
	s.pendingOrder = append(s.pendingOrder, t.ID)

	cp := t
	cp.Amount = domain.CloneAmount(t.Amount)
	return &cp, nil
}

func (s *memoryStore) PendingTransfers(ctx context.Context) ([]PendingTransfer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	transfers := make([]PendingTransfer, 0, len(s.pending))
	for _, id := range s.pendingOrder {
		t := *s.pending[id]
		t.Amount = domain.CloneAmount(t.Amount)
		transfers = append(transfers, t)
	}
	return transfers, nil
}

// take removes a pending transfer, holding mu
func (s *memoryStore) take(id string) (*PendingTransfer, bool) {
	t, ok := s.pending[id]
	if !ok {
		return nil, false
	}
	delete(s.pending, id)
	for i, pid := range s.pendingOrder {
		if pid == id {
			s.pendingOrder = append(s.pendingOrder[:i], s.pendingOrder[i+1:]...)
			break
		}
	}
	return t, true
}

func (s *memoryStore) ResolvePendingTransfer(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.take(id)
	return ok, nil
}

func (s *memoryStore) RevertPayout(ctx context.Context, id string) (bool, error) {
	s.mu.RLock()
	t, ok := s.pending[id]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if t.Kind != TransferPayout {
		return false, fmt.Errorf("pending transfer %s is a %s, not a payout", id, t.Kind)
	}

	e, err := s.entry(t.EventID)
	if err != nil {
		return false, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok = s.take(id)
	if !ok {
		return false, nil
	}
	e.event.Collected = new(big.Int).Add(e.event.Collected, t.Amount)
	return true, nil
}
