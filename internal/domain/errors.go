package domain

import "errors"

// ErrorKind groups failure conditions so callers can map them without
// enumerating every sentinel
type ErrorKind string

const (
	// KindValidation is malformed input caught before any state read
	KindValidation ErrorKind = "validation"
	// KindAuthorization is a caller lacking the required relationship to the target
	KindAuthorization ErrorKind = "authorization"
	// KindStateConflict is a well-formed request that violates a business rule given current state
	KindStateConflict ErrorKind = "state_conflict"
	// KindPayment is a wrong native amount or insufficient token allowance/balance
	KindPayment ErrorKind = "payment"
	// KindExternalCall is an outbound transfer that reverted or failed
	KindExternalCall ErrorKind = "external_call"
	// KindPending is an outbound transfer that was broadcast without a known outcome
	KindPending ErrorKind = "pending"
	// KindUnknown is anything that is not a ledger error (storage, network, ...)
	KindUnknown ErrorKind = "unknown"
)

// Error is a ledger failure with a stable code
type Error struct {
	Kind    ErrorKind
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func newError(kind ErrorKind, code, message string) *Error {
	return &Error{Kind: kind, Code: code, Message: message}
}

var (
	// ErrInvalidEventID is returned when an event id is 0 or greater than the total events
	ErrInvalidEventID = newError(KindValidation, "invalid_event_id", "event ID out of range")
	// ErrInvalidQuota is returned when an event is created with a quota below one
	ErrInvalidQuota = newError(KindValidation, "invalid_quota", "quota must be at least one")
	// ErrInvalidStartTime is returned when an event start time is not in the future
	ErrInvalidStartTime = newError(KindValidation, "invalid_start_time", "start time must be in the future")
	// ErrInvalidEndTime is returned when an event end time is not after its start time
	ErrInvalidEndTime = newError(KindValidation, "invalid_end_time", "end time must be after start time")
	// ErrInvalidCurrency is returned when a currency is neither native nor registered
	ErrInvalidCurrency = newError(KindValidation, "invalid_currency", "currency is not registered")
	// ErrInvalidName is returned when registering an empty or reserved token name
	ErrInvalidName = newError(KindValidation, "invalid_name", "token name is empty or reserved")
	// ErrInvalidAddress is returned for a zero or malformed address
	ErrInvalidAddress = newError(KindValidation, "invalid_address", "address is invalid")
	// ErrAlreadyRegistered is returned when a token name is already mapped
	ErrAlreadyRegistered = newError(KindValidation, "already_registered", "token name already registered")
	// ErrAddressInUse is returned when a token address is already mapped to another name
	ErrAddressInUse = newError(KindValidation, "address_in_use", "token address already registered")
	// ErrInvalidTokenIndex is returned when enumerating past the registered token names
	ErrInvalidTokenIndex = newError(KindValidation, "invalid_token_index", "token index out of range")
	// ErrInvalidAmount is returned for a negative or malformed amount
	ErrInvalidAmount = newError(KindValidation, "invalid_amount", "amount must be a non-negative integer")

	// ErrUnauthorized is returned for non-owner withdrawals and non-admin registry mutations
	ErrUnauthorized = newError(KindAuthorization, "unauthorized", "caller is not authorized")

	// ErrSelfPurchase is returned when an organizer tries to buy their own event
	ErrSelfPurchase = newError(KindStateConflict, "self_purchase", "organizer can not buy their own event")
	// ErrAlreadyEnded is returned when buying a ticket at or after the event end time
	ErrAlreadyEnded = newError(KindStateConflict, "already_ended", "event already ended")
	// ErrAlreadyPurchased is returned when the participant already holds a ticket
	ErrAlreadyPurchased = newError(KindStateConflict, "already_purchased", "participant already bought the ticket")
	// ErrSoldOut is returned when no quota is left
	ErrSoldOut = newError(KindStateConflict, "sold_out", "no quota left")
	// ErrTooEarly is returned when withdrawing before the event end time
	ErrTooEarly = newError(KindStateConflict, "too_early", "event has not ended yet")
	// ErrNothingToWithdraw is returned when the jar is empty
	ErrNothingToWithdraw = newError(KindStateConflict, "nothing_to_withdraw", "no money left in the jar")
	// ErrHoldExpired is returned when confirming a hold that lapsed or was released
	ErrHoldExpired = newError(KindStateConflict, "hold_expired", "ticket hold expired or was released")

	// ErrWrongAmount is returned when the attached native payment differs from the price
	ErrWrongAmount = newError(KindPayment, "wrong_amount", "must pay exactly the price")
	// ErrNativePaymentNotAccepted is returned when native payment is attached to a token-priced purchase
	ErrNativePaymentNotAccepted = newError(KindPayment, "native_payment_not_accepted", "event is priced in a token, native payment must be zero")
	// ErrInsufficientAllowance is returned when the buyer did not approve at least the price
	ErrInsufficientAllowance = newError(KindPayment, "insufficient_allowance", "token allowance below price")
	// ErrInsufficientBalance is returned when the buyer's token balance is below the price
	ErrInsufficientBalance = newError(KindPayment, "insufficient_balance", "token balance below price")
	// ErrPaymentProofRequired is returned when a native purchase carries no payment transaction
	ErrPaymentProofRequired = newError(KindPayment, "payment_proof_required", "native payment transaction hash is required")
	// ErrInvalidPaymentProof is returned when the payment transaction does not pay the price from the buyer to custody
	ErrInvalidPaymentProof = newError(KindPayment, "invalid_payment_proof", "payment transaction does not match the purchase")
	// ErrPaymentProofUsed is returned when the payment transaction already paid for a ticket
	ErrPaymentProofUsed = newError(KindPayment, "payment_proof_used", "payment transaction already used")

	// ErrTransferFailed is returned when an inbound or outbound transfer reverts or fails
	ErrTransferFailed = newError(KindExternalCall, "transfer_failed", "external transfer failed")
	// ErrTransferPending is returned when a transfer was broadcast but its outcome is not known yet.
	// The transfer is recorded and settled by reconciliation.
	ErrTransferPending = newError(KindPending, "transfer_pending", "transfer outcome pending")
)

// KindOf returns the kind of the ledger error in err's chain
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// CodeOf returns the stable code of the ledger error in err's chain, or "" for other errors
func CodeOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// IsValidationError checks if the error is a validation error
func IsValidationError(err error) bool {
	return KindOf(err) == KindValidation
}

// IsAuthorizationError checks if the error is an authorization error
func IsAuthorizationError(err error) bool {
	return KindOf(err) == KindAuthorization
}

// IsStateConflictError checks if the error is a state conflict
func IsStateConflictError(err error) bool {
	return KindOf(err) == KindStateConflict
}

// IsPaymentError checks if the error is a payment error
func IsPaymentError(err error) bool {
	return KindOf(err) == KindPayment
}

// IsPendingError checks if the error is a transfer awaiting reconciliation
func IsPendingError(err error) bool {
	return KindOf(err) == KindPending
}

// IsExternalCallError checks if the error is an external call failure
func IsExternalCallError(err error) bool {
	return KindOf(err) == KindExternalCall
}
