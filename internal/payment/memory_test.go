package payment

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loketh/ledger/internal/domain"
)

var (
	custody = common.HexToAddress("0x00000000000000000000000000000000000c0de1")
	buyer   = common.HexToAddress("0x00000000000000000000000000000000000000b1")
	seller  = common.HexToAddress("0x00000000000000000000000000000000000000a1")
)

func TestMemoryToken_TransferFrom(t *testing.T) {
	ctx := context.Background()

	t.Run("allowance is checked before balance", func(t *testing.T) {
		token := NewMemoryToken(custody)
		err := token.TransferFrom(ctx, buyer, custody, big.NewInt(50))
		assert.ErrorIs(t, err, domain.ErrInsufficientAllowance)
	})

	t.Run("insufficient balance", func(t *testing.T) {
		token := NewMemoryToken(custody)
		token.Approve(buyer, custody, big.NewInt(50))
		token.Mint(buyer, big.NewInt(49))
		err := token.TransferFrom(ctx, buyer, custody, big.NewInt(50))
		assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
	})

	t.Run("allowance for another spender does not count", func(t *testing.T) {
		token := NewMemoryToken(custody)
		token.Approve(buyer, seller, big.NewInt(50))
		token.Mint(buyer, big.NewInt(50))
		err := token.TransferFrom(ctx, buyer, custody, big.NewInt(50))
		assert.ErrorIs(t, err, domain.ErrInsufficientAllowance)
	})

	t.Run("moves balance and consumes allowance", func(t *testing.T) {
		token := NewMemoryToken(custody)
		token.Approve(buyer, custody, big.NewInt(80))
		token.Mint(buyer, big.NewInt(100))

		require.NoError(t, token.TransferFrom(ctx, buyer, custody, big.NewInt(50)))

		balance, _ := token.BalanceOf(ctx, buyer)
		assert.Equal(t, "50", balance.String())
		balance, _ = token.BalanceOf(ctx, custody)
		assert.Equal(t, "50", balance.String())
		allowance, _ := token.Allowance(ctx, buyer, custody)
		assert.Equal(t, "30", allowance.String())

		err := token.TransferFrom(ctx, buyer, custody, big.NewInt(50))
		assert.ErrorIs(t, err, domain.ErrInsufficientAllowance)
	})
}

func TestMemoryToken_Transfer(t *testing.T) {
	ctx := context.Background()
	token := NewMemoryToken(custody)
	token.Mint(custody, big.NewInt(100))

	require.NoError(t, token.Transfer(ctx, seller, big.NewInt(60)))
	balance, _ := token.BalanceOf(ctx, seller)
	assert.Equal(t, "60", balance.String())

	err := token.Transfer(ctx, seller, big.NewInt(41))
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)

	token.OnTransfer = func(ctx context.Context, recipient domain.Account, amount *big.Int) error {
		return errors.New("execution reverted")
	}
	err = token.Transfer(ctx, seller, big.NewInt(1))
	assert.EqualError(t, err, "execution reverted")
	balance, _ = token.BalanceOf(ctx, custody)
	assert.Equal(t, "40", balance.String())
}

func TestMemoryTokens(t *testing.T) {
	tokens := NewMemoryTokens()
	address := common.HexToAddress("0x5d1")
	token := NewMemoryToken(custody)
	tokens.Add(address, token)

	got, err := tokens.Token(address)
	require.NoError(t, err)
	assert.Same(t, token, got)

	_, err = tokens.Token(common.HexToAddress("0x5d2"))
	assert.Error(t, err)
}

func TestMemoryBank(t *testing.T) {
	ctx := context.Background()
	bank := NewMemoryBank()

	require.NoError(t, bank.Transfer(ctx, seller, big.NewInt(100)))
	require.NoError(t, bank.Transfer(ctx, seller, big.NewInt(20)))
	assert.Equal(t, "120", bank.BalanceOf(seller).String())
	assert.Equal(t, "0", bank.BalanceOf(buyer).String())
}

func TestMemoryBank_Collect(t *testing.T) {
	ctx := context.Background()
	bank := NewMemoryBank()
	ref := bank.Deposit(buyer, big.NewInt(50))

	_, err := bank.Collect(ctx, buyer, big.NewInt(50), "")
	assert.ErrorIs(t, err, domain.ErrPaymentProofRequired)

	_, err = bank.Collect(ctx, buyer, big.NewInt(50), "0xdeadbeef")
	assert.ErrorIs(t, err, domain.ErrInvalidPaymentProof)

	_, err = bank.Collect(ctx, seller, big.NewInt(50), ref)
	assert.ErrorIs(t, err, domain.ErrInvalidPaymentProof, "deposit made by someone else")

	_, err = bank.Collect(ctx, buyer, big.NewInt(60), ref)
	assert.ErrorIs(t, err, domain.ErrInvalidPaymentProof, "deposit of another amount")

	got, err := bank.Collect(ctx, buyer, big.NewInt(50), strings.ToUpper(ref[2:]))
	assert.ErrorIs(t, err, domain.ErrInvalidPaymentProof, "hash without prefix")
	assert.Empty(t, got)

	got, err = bank.Collect(ctx, buyer, big.NewInt(50), "0x"+strings.ToUpper(ref[2:]))
	require.NoError(t, err)
	assert.Equal(t, ref, got)
}

func TestMemoryTracker(t *testing.T) {
	ctx := context.Background()
	tracker := NewMemoryTracker()

	outcome, err := tracker.Outcome(ctx, "0x01")
	require.NoError(t, err)
	assert.Equal(t, OutcomePending, outcome)

	tracker.Settle("0x01", OutcomeFailed)
	outcome, _ = tracker.Outcome(ctx, "0x01")
	assert.Equal(t, OutcomeFailed, outcome)
}

func TestAsPending(t *testing.T) {
	cause := &PendingError{TxHash: "0x01", Err: context.DeadlineExceeded}
	wrapped := fmt.Errorf("%w: %w", domain.ErrTransferFailed, cause)

	pending, ok := AsPending(wrapped)
	require.True(t, ok)
	assert.Equal(t, "0x01", pending.TxHash)
	assert.ErrorIs(t, wrapped, context.DeadlineExceeded)

	_, ok = AsPending(errors.New("execution reverted"))
	assert.False(t, ok)
}
