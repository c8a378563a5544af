package dto

import (
	"strings"

	apierrors "github.com/loketh/ledger/internal/api/shared/errors"
	"github.com/loketh/ledger/internal/domain"
	"github.com/loketh/ledger/internal/ledger"
)

// CreateEventRequest represents the request body for creating an event.
// Amounts are base-10 strings in the smallest currency unit.
type CreateEventRequest struct {
	Name      string `json:"name"`
	StartTime int64  `json:"start_time"`
	EndTime   int64  `json:"end_time"`
	Price     string `json:"price"`
	Quota     uint64 `json:"quota"`
	Currency  string `json:"currency"`
}

// ToInput validates the request shape and converts it for the organizer.
// Business rules are checked by the ledger.
func (r *CreateEventRequest) ToInput(organizer domain.Account) (ledger.CreateEventInput, error) {
	price, ok := domain.ParseAmount(r.Price)
	if !ok {
		return ledger.CreateEventInput{}, apierrors.NewValidationError("price must be a non-negative integer")
	}

	return ledger.CreateEventInput{
		Organizer: organizer,
		Name:      r.Name,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Price:     price,
		Quota:     r.Quota,
		Currency:  r.Currency,
	}, nil
}

// BuyTicketRequest represents the request body for buying a ticket.
// Payment is the attached native amount, empty for token priced events.
// PaymentTx is the hash of the buyer's transaction paying Payment to custody.
type BuyTicketRequest struct {
	Payment   string `json:"payment"`
	PaymentTx string `json:"payment_tx"`
}

// ToInput converts the request for the buyer
func (r *BuyTicketRequest) ToInput(eventID uint64, buyer domain.Account) (ledger.BuyTicketInput, error) {
	payment, ok := domain.ParseAmount(r.Payment)
	if !ok {
		return ledger.BuyTicketInput{}, apierrors.NewValidationError("payment must be a non-negative integer")
	}

	return ledger.BuyTicketInput{
		EventID:   eventID,
		Buyer:     buyer,
		Payment:   payment,
		PaymentTx: strings.TrimSpace(r.PaymentTx),
	}, nil
}

// RegisterTokenRequest represents the request body for registering a token
type RegisterTokenRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// Validate validates the request body
func (r *RegisterTokenRequest) Validate() error {
	if r.Address == "" {
		return apierrors.NewValidationError("address is required")
	}
	return nil
}
