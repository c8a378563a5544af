package payment

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/loketh/ledger/internal/domain"
)

// Token is a fungible token contract as seen from the ledger's custody account.
// TransferFrom and Transfer are untrusted outbound calls.
//
//go:generate mockgen -source=payment.go -destination=../mocks/payment.go -package=mocks -mock_names=Token=MockToken,TokenProvider=MockTokenProvider,NativeBank=MockNativeBank,TransferTracker=MockTransferTracker
type Token interface {
	// BalanceOf returns the token balance of account
	BalanceOf(ctx context.Context, account domain.Account) (*big.Int, error)
	// Allowance returns how much spender may pull from owner
	Allowance(ctx context.Context, owner, spender domain.Account) (*big.Int, error)
	// TransferFrom pulls amount from owner to recipient using the custody allowance.
	// It fails with ErrInsufficientAllowance before ErrInsufficientBalance.
	TransferFrom(ctx context.Context, owner, recipient domain.Account, amount *big.Int) error
	// Transfer sends amount from custody to recipient
	Transfer(ctx context.Context, recipient domain.Account, amount *big.Int) error
}

// TokenProvider returns the token contract deployed at an address
type TokenProvider interface {
	Token(address domain.Account) (Token, error)
}

// NativeBank moves the native currency in and out of custody
type NativeBank interface {
	// Collect verifies that the payment referenced by ref moved exactly amount
	// from payer to custody. It returns the canonical form of ref.
	Collect(ctx context.Context, payer domain.Account, amount *big.Int, ref string) (string, error)
	// Transfer pays amount out of custody to recipient
	Transfer(ctx context.Context, recipient domain.Account, amount *big.Int) error
}

// Outcome is the settled state of a broadcast transfer
type Outcome int

const (
	// OutcomePending means the transfer is not mined yet
	OutcomePending Outcome = iota
	// OutcomeSucceeded means the transfer executed
	OutcomeSucceeded
	// OutcomeFailed means the transfer reverted or was never broadcast
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSucceeded:
		return "succeeded"
	case OutcomeFailed:
		return "failed"
	default:
		return "pending"
	}
}

// TransferTracker looks up the outcome of a broadcast transfer
type TransferTracker interface {
	Outcome(ctx context.Context, txHash string) (Outcome, error)
}

// PendingError is a transfer that was broadcast but whose outcome could not be
// observed. The funds may or may not have moved.
type PendingError struct {
	TxHash string
	Err    error
}

func (e *PendingError) Error() string {
	return fmt.Sprintf("transfer %s pending: %v", e.TxHash, e.Err)
}

func (e *PendingError) Unwrap() error {
	return e.Err
}

// AsPending returns the PendingError in err's chain
func AsPending(err error) (*PendingError, bool) {
	var pe *PendingError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}
