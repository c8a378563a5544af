package ledger

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/loketh/ledger/internal/domain"
	"github.com/loketh/ledger/internal/logger"
	"github.com/loketh/ledger/internal/messaging"
	"github.com/loketh/ledger/internal/payment"
	"github.com/loketh/ledger/internal/store"
)

// WithdrawMoney drains the jar of an ended event to its organizer.
// The zeroed jar is committed before the outbound transfer starts. A transfer
// that failed before broadcast credits the amount back; one whose outcome is
// unknown keeps the jar empty until reconciliation.
func (l *ledger) WithdrawMoney(ctx context.Context, eventID uint64, caller domain.Account) (*store.Withdrawal, error) {
	withdrawal, err := l.store.BeginWithdrawal(ctx, eventID, caller, l.now())
	if err != nil {
		return nil, err
	}

	ctx = logger.WithFields(logger.WithEvent(ctx, withdrawal.EventID, "recipient", withdrawal.Recipient),
		zap.String("amount", withdrawal.Amount.String()))

	if err := l.send(ctx, withdrawal.Recipient, withdrawal.Amount, withdrawal.Currency); err != nil {
		if pending, ok := payment.AsPending(err); ok {
			l.recordPending(ctx, store.TransferPayout, withdrawal.EventID, withdrawal.Recipient,
				withdrawal.Amount, withdrawal.Currency, pending.TxHash)
			return nil, fmt.Errorf("%w: %w", domain.ErrTransferPending, err)
		}

		if rerr := l.store.RestoreCollected(context.WithoutCancel(ctx), withdrawal.EventID, withdrawal.Amount); rerr != nil {
			logger.ErrorCtx(ctx, fmt.Errorf("failed to restore collected amount: %w", rerr))
		} else {
			logger.WarnCtx(ctx, "Withdrawal transfer failed, collected amount restored", zap.Error(err))
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrTransferFailed, err)
	}

	logger.InfoCtx(ctx, "Money withdrawn", zap.String("currency", withdrawal.Currency.Name))

	messaging.Emit(ctx, l.publisher,
		domain.NewMoneyWithdrawn(l.clock.Now(), withdrawal.EventID, withdrawal.Recipient, withdrawal.Amount))

	return withdrawal, nil
}
