package dto

import (
	"github.com/loketh/ledger/internal/domain"
	"github.com/loketh/ledger/internal/store"
)

// CurrencyResponse represents the currency of an event
type CurrencyResponse struct {
	Name   string  `json:"name"`
	Native bool    `json:"native"`
	Token  *string `json:"token,omitempty"`
}

// EventResponse represents an event with its counters
type EventResponse struct {
	ID        uint64           `json:"id"`
	Name      string           `json:"name"`
	Organizer string           `json:"organizer"`
	StartTime int64            `json:"start_time"`
	EndTime   int64            `json:"end_time"`
	Price     string           `json:"price"`
	Quota     uint64           `json:"quota"`
	SoldCount uint64           `json:"sold_count"`
	Collected string           `json:"collected"`
	Currency  CurrencyResponse `json:"currency"`
}

// MapEventToDTO maps a domain event to its response
func MapEventToDTO(e *domain.Event) *EventResponse {
	currency := CurrencyResponse{
		Name:   e.Currency.Name,
		Native: e.Currency.IsNative(),
	}
	if !currency.Native {
		token := e.Currency.Token.Hex()
		currency.Token = &token
	}

	return &EventResponse{
		ID:        e.ID,
		Name:      e.Name,
		Organizer: e.Organizer.Hex(),
		StartTime: e.StartTime,
		EndTime:   e.EndTime,
		Price:     domain.CloneAmount(e.Price).String(),
		Quota:     e.Quota,
		SoldCount: e.SoldCount,
		Collected: domain.CloneAmount(e.Collected).String(),
		Currency:  currency,
	}
}

// TotalEventsResponse represents the number of events
type TotalEventsResponse struct {
	Total uint64 `json:"total"`
}

// PurchaseResponse represents an issued ticket
type PurchaseResponse struct {
	EventID     uint64 `json:"event_id"`
	Participant string `json:"participant"`
	Sequence    uint64 `json:"sequence"`
}

// MapPurchaseToDTO maps a purchase to its response
func MapPurchaseToDTO(p *domain.Purchase) *PurchaseResponse {
	return &PurchaseResponse{
		EventID:     p.EventID,
		Participant: p.Participant.Hex(),
		Sequence:    p.Sequence,
	}
}

// WithdrawalResponse represents a completed withdrawal
type WithdrawalResponse struct {
	EventID   uint64 `json:"event_id"`
	Recipient string `json:"recipient"`
	Amount    string `json:"amount"`
	Currency  string `json:"currency"`
}

// MapWithdrawalToDTO maps a withdrawal to its response
func MapWithdrawalToDTO(w *store.Withdrawal) *WithdrawalResponse {
	return &WithdrawalResponse{
		EventID:   w.EventID,
		Recipient: w.Recipient.Hex(),
		Amount:    domain.CloneAmount(w.Amount).String(),
		Currency:  w.Currency.Name,
	}
}

// AccountEventsResponse represents an ordered list of event ids of an account
type AccountEventsResponse struct {
	Address  string   `json:"address"`
	Count    uint64   `json:"count"`
	EventIDs []uint64 `json:"event_ids"`
}

// MembershipResponse represents a yes/no relationship between an account and an event
type MembershipResponse struct {
	Address string `json:"address"`
	EventID uint64 `json:"event_id"`
	Value   bool   `json:"value"`
}

// TokenResponse represents a registered token
type TokenResponse struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	AddedBy string `json:"added_by"`
}

// MapTokenToDTO maps a token entry to its response
func MapTokenToDTO(t *domain.TokenEntry) *TokenResponse {
	return &TokenResponse{
		Name:    t.Name,
		Address: t.Address.Hex(),
		AddedBy: t.AddedBy.Hex(),
	}
}

// TokenListResponse represents every registered token in registration order
type TokenListResponse struct {
	Count  uint64          `json:"count"`
	Tokens []TokenResponse `json:"tokens"`
}

// ResolveTokenResponse represents the address of a currency name, zero when unregistered
type ResolveTokenResponse struct {
	Name       string `json:"name"`
	Address    string `json:"address"`
	Registered bool   `json:"registered"`
}
