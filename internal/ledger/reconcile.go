package ledger

import (
	"context"
	"fmt"
	"math/big"

	"go.uber.org/zap"

	"github.com/loketh/ledger/internal/domain"
	"github.com/loketh/ledger/internal/logger"
	"github.com/loketh/ledger/internal/messaging"
	"github.com/loketh/ledger/internal/payment"
	"github.com/loketh/ledger/internal/store"
)

// recordPending stores a transfer for reconciliation. A payout that can not be
// recorded keeps its jar drained and needs an operator.
func (l *ledger) recordPending(
	ctx context.Context,
	kind store.TransferKind,
	eventID uint64,
	account domain.Account,
	amount *big.Int,
	currency domain.Currency,
	txHash string,
) {
	ctx = context.WithoutCancel(ctx)

	transfer, err := l.store.RecordPendingTransfer(ctx, store.PendingTransfer{
		Kind:      kind,
		EventID:   eventID,
		Account:   account,
		Amount:    amount,
		Currency:  currency,
		TxHash:    txHash,
		CreatedAt: l.now(),
	})
	if err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to record pending transfer: %w", err),
			zap.String("kind", string(kind)),
			zap.String("tx_hash", txHash),
			zap.String("amount", amount.String()))
		return
	}

	logger.WarnCtx(ctx, "Transfer recorded for reconciliation",
		zap.String("transfer_id", transfer.ID),
		zap.String("kind", string(kind)),
		zap.String("tx_hash", txHash))
}

// Reconcile looks up every pending transfer once. Settled payouts are
// announced, failed payouts go back to their jar, pulls that landed without a
// ticket are refunded and failed refunds are sent again. Transfers still
// unmined stay recorded.
func (l *ledger) Reconcile(ctx context.Context) (*ReconcileReport, error) {
	transfers, err := l.store.PendingTransfers(ctx)
	if err != nil {
		return nil, err
	}

	report := &ReconcileReport{}
	for i := range transfers {
		t := &transfers[i]
		tctx := logger.WithTransfer(logger.WithEvent(ctx, t.EventID, "account", t.Account), string(t.Kind), t.TxHash)
		tctx = logger.WithFields(tctx, zap.String("transfer_id", t.ID))

		outcome := payment.OutcomeFailed
		if t.TxHash != "" {
			outcome, err = l.tracker.Outcome(tctx, t.TxHash)
			if err != nil {
				logger.ErrorCtx(tctx, fmt.Errorf("failed to look up transfer outcome: %w", err))
				report.Errors++
				continue
			}
		}

		if outcome == payment.OutcomePending {
			report.Pending++
			continue
		}

		if err := l.settle(tctx, t, outcome, report); err != nil {
			logger.ErrorCtx(tctx, fmt.Errorf("failed to settle pending transfer: %w", err))
			report.Errors++
		}
	}

	if len(transfers) > 0 {
		logger.InfoCtx(ctx, "Reconciliation done",
			zap.Int("settled", report.Settled),
			zap.Int("reverted", report.Reverted),
			zap.Int("pending", report.Pending),
			zap.Int("errors", report.Errors))
	}

	return report, nil
}

// settle applies a known outcome. Every branch first claims the record so a
// concurrent pass can not act on it twice.
func (l *ledger) settle(ctx context.Context, t *store.PendingTransfer, outcome payment.Outcome, report *ReconcileReport) error {
	if t.Kind == store.TransferPayout && outcome == payment.OutcomeFailed {
		reverted, err := l.store.RevertPayout(ctx, t.ID)
		if err != nil {
			return err
		}
		if reverted {
			logger.WarnCtx(ctx, "Payout failed, collected amount restored", zap.String("amount", t.Amount.String()))
			report.Reverted++
		}
		return nil
	}

	claimed, err := l.store.ResolvePendingTransfer(ctx, t.ID)
	if err != nil || !claimed {
		return err
	}

	switch {
	case t.Kind == store.TransferPayout:
		logger.InfoCtx(ctx, "Money withdrawn", zap.String("currency", t.Currency.Name))
		messaging.Emit(ctx, l.publisher, domain.NewMoneyWithdrawn(l.clock.Now(), t.EventID, t.Account, t.Amount))
		report.Settled++
	case t.Kind == store.TransferPull && outcome == payment.OutcomeSucceeded,
		t.Kind == store.TransferRefund && outcome == payment.OutcomeFailed:
		// the buyer's price sits in custody without a ticket
		l.refund(ctx, t.EventID, t.Account, t.Amount, t.Currency)
		report.Reverted++
	default:
		// a failed pull moved nothing, a succeeded refund is done
		report.Settled++
	}
	return nil
}
