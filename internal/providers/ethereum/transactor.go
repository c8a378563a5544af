package ethereum

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"

	"github.com/loketh/ledger/internal/adapter"
	"github.com/loketh/ledger/internal/logger"
	"github.com/loketh/ledger/internal/payment"
)

// ErrTransactionReverted is returned when a transaction is mined with a failed status
var ErrTransactionReverted = errors.New("transaction reverted")

// TransactorConfig holds the custody transactor configuration
type TransactorConfig struct {
	// PrivateKey is the hex encoded custody key, with or without 0x
	PrivateKey string
	// ReceiptTimeout bounds how long Send waits for the transaction to be mined.
	// A transaction still unmined after it is reported as pending.
	ReceiptTimeout time.Duration
	// PollInterval is the initial receipt polling interval
	PollInterval time.Duration
}

// Transactor signs and sends transactions from the custody account
//
//go:generate mockgen -source=transactor.go -destination=../../mocks/transactor.go -package=mocks -mock_names=Transactor=MockTransactor
type Transactor interface {
	// Address returns the custody account
	Address() common.Address
	// Send submits a transaction and waits until it is mined successfully.
	// Once broadcast, a transaction whose receipt can not be observed fails with *payment.PendingError.
	Send(ctx context.Context, to common.Address, value *big.Int, data []byte) (*types.Receipt, error)
	// Outcome looks up a previously broadcast transaction
	Outcome(ctx context.Context, txHash string) (payment.Outcome, error)
}

type transactor struct {
	client  adapter.EthClient
	key     *ecdsa.PrivateKey
	from    common.Address
	chainID *big.Int
	config  TransactorConfig

	// mu serializes nonce allocation and submission
	mu sync.Mutex
}

// NewTransactor creates a transactor for the custody key
func NewTransactor(ctx context.Context, client adapter.EthClient, cfg TransactorConfig) (Transactor, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.PrivateKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse custody key: %w", err)
	}

	chainID, err := client.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get chain id: %w", err)
	}

	if cfg.ReceiptTimeout == 0 {
		cfg.ReceiptTimeout = 2 * time.Minute
	}
	if cfg.PollInterval == 0 {
		cfg.PollInterval = time.Second
	}

	return &transactor{
		client:  client,
		key:     key,
		from:    crypto.PubkeyToAddress(key.PublicKey),
		chainID: chainID,
		config:  cfg,
	}, nil
}

func (t *transactor) Address() common.Address {
	return t.from
}

// Send submits a transaction and waits until it is mined successfully
func (t *transactor) Send(ctx context.Context, to common.Address, value *big.Int, data []byte) (*types.Receipt, error) {
	if value == nil {
		value = new(big.Int)
	}

	signed, err := t.submit(ctx, to, value, data)
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Transaction submitted",
		zap.String("tx_hash", signed.Hash().Hex()),
		zap.String("to", to.Hex()),
		zap.String("value", value.String()))

	// the transaction is out of our hands, so caller cancellation must not end the wait
	receipt, err := t.waitForReceipt(context.WithoutCancel(ctx), signed.Hash())
	if err != nil {
		return nil, &payment.PendingError{TxHash: signed.Hash().Hex(), Err: err}
	}

	if receipt.Status != types.ReceiptStatusSuccessful {
		return receipt, fmt.Errorf("%w: %s", ErrTransactionReverted, signed.Hash().Hex())
	}

	return receipt, nil
}

func (t *transactor) Outcome(ctx context.Context, txHash string) (payment.Outcome, error) {
	receipt, err := t.client.TransactionReceipt(ctx, common.HexToHash(txHash))
	if err != nil {
		if errors.Is(err, ethereum.NotFound) {
			return payment.OutcomePending, nil
		}
		return payment.OutcomePending, fmt.Errorf("failed to fetch receipt of %s: %w", txHash, err)
	}

	if receipt.Status != types.ReceiptStatusSuccessful {
		return payment.OutcomeFailed, nil
	}
	return payment.OutcomeSucceeded, nil
}

func (t *transactor) submit(ctx context.Context, to common.Address, value *big.Int, data []byte) (*types.Transaction, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	nonce, err := t.client.PendingNonceAt(ctx, t.from)
	if err != nil {
		return nil, fmt.Errorf("failed to get nonce: %w", err)
	}

	gasPrice, err := t.client.SuggestGasPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get gas price: %w", err)
	}

	gas, err := t.client.EstimateGas(ctx, ethereum.CallMsg{
		From:  t.from,
		To:    &to,
		Value: value,
		Data:  data,
	})
	if err != nil {
		// estimation executes the call, a revert shows up here
		return nil, fmt.Errorf("failed to estimate gas: %w", err)
	}

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		GasPrice: gasPrice,
		Gas:      gas,
		To:       &to,
		Value:    value,
		Data:     data,
	})

	signed, err := types.SignTx(tx, types.LatestSignerForChainID(t.chainID), t.key)
	if err != nil {
		return nil, fmt.Errorf("failed to sign transaction: %w", err)
	}

	if err := t.client.SendTransaction(ctx, signed); err != nil {
		return nil, fmt.Errorf("failed to send transaction: %w", err)
	}

	return signed, nil
}

// waitForReceipt polls for the receipt using backoff retry
func (t *transactor) waitForReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	var receipt *types.Receipt

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = t.config.PollInterval
	b.MaxInterval = 15 * time.Second
	b.MaxElapsedTime = t.config.ReceiptTimeout
	b.Multiplier = 1.5

	operation := func() error {
		r, err := t.client.TransactionReceipt(ctx, hash)
		if err != nil {
			if !errors.Is(err, ethereum.NotFound) {
				logger.WarnCtx(ctx, "Failed to fetch receipt, retrying",
					zap.String("tx_hash", hash.Hex()),
					zap.Error(err))
			}
			return fmt.Errorf("receipt not available: %w", err)
		}
		receipt = r
		return nil
	}

	if err := backoff.Retry(operation, backoff.WithContext(b, ctx)); err != nil {
		return nil, fmt.Errorf("timeout or error waiting for receipt of %s: %w", hash.Hex(), err)
	}

	return receipt, nil
}
