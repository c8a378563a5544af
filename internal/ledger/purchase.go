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

// BuyTicket reserves, collects the payment and confirms the ticket inside the
// purchase section of the event, so one buyer's failing payment is never seen
// by another. The reservation is released when collection fails.
func (l *ledger) BuyTicket(ctx context.Context, input BuyTicketInput) (*domain.Purchase, error) {
	attached := domain.CloneAmount(input.Payment)
	if attached.Sign() < 0 {
		return nil, domain.ErrInvalidAmount
	}

	var purchase *domain.Purchase
	err := l.store.WithEventLock(ctx, input.EventID, func(ctx context.Context) error {
		var err error
		purchase, err = l.buyTicket(ctx, input, attached)
		return err
	})
	if err != nil {
		return nil, err
	}

	messaging.Emit(ctx, l.publisher, domain.NewTicketIssued(l.clock.Now(), purchase.EventID, purchase.Participant))

	return purchase, nil
}

func (l *ledger) buyTicket(ctx context.Context, input BuyTicketInput, attached *big.Int) (*domain.Purchase, error) {
	hold, err := l.store.ReserveTicket(ctx, store.ReserveTicketInput{
		EventID: input.EventID,
		Buyer:   input.Buyer,
		Now:     l.now(),
		HoldTTL: l.config.HoldTTL,
	})
	if err != nil {
		return nil, err
	}

	ctx = logger.WithEvent(ctx, hold.EventID, "participant", hold.Participant)

	ref, err := l.collectPayment(ctx, hold, attached, input.PaymentTx)
	if err != nil {
		l.release(ctx, hold, err)
		if pending, ok := payment.AsPending(err); ok {
			// the pull may still land, reconciliation refunds it
			l.recordPending(ctx, store.TransferPull, hold.EventID, hold.Participant, hold.Price, hold.Currency, pending.TxHash)
			return nil, fmt.Errorf("%w: %w", domain.ErrTransferPending, err)
		}
		return nil, err
	}

	purchase, err := l.store.ConfirmTicket(ctx, hold.ID, ref)
	if err != nil {
		l.release(ctx, hold, err)
		// a native payment stays in custody and its transaction can be presented again
		if !hold.Currency.IsNative() {
			l.refund(ctx, hold.EventID, hold.Participant, hold.Price, hold.Currency)
		}
		return nil, fmt.Errorf("failed to confirm ticket: %w", err)
	}

	logger.InfoCtx(ctx, "Ticket issued",
		zap.String("amount", hold.Price.String()),
		zap.String("currency", hold.Currency.Name),
		zap.String("payment_tx", ref),
		zap.Uint64("sequence", purchase.Sequence))

	return purchase, nil
}

// collectPayment verifies a native payment or pulls the token price of the held ticket.
// It returns the canonical payment transaction of a native purchase.
func (l *ledger) collectPayment(ctx context.Context, hold *store.Hold, attached *big.Int, paymentTx string) (string, error) {
	if hold.Currency.IsNative() {
		if attached.Cmp(hold.Price) != 0 {
			return "", domain.ErrWrongAmount
		}
		if hold.Price.Sign() == 0 {
			return "", nil
		}

		ref, err := l.native.Collect(ctx, hold.Participant, hold.Price, paymentTx)
		if err != nil {
			if domain.IsPaymentError(err) {
				return "", err
			}
			return "", fmt.Errorf("%w: %w", domain.ErrTransferFailed, err)
		}
		return ref, nil
	}

	if attached.Sign() != 0 {
		return "", domain.ErrNativePaymentNotAccepted
	}

	token, err := l.tokens.Token(hold.Currency.Token)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrTransferFailed, err)
	}

	if err := token.TransferFrom(ctx, hold.Participant, l.config.Custody, hold.Price); err != nil {
		if _, ok := payment.AsPending(err); ok || domain.IsPaymentError(err) {
			return "", err
		}
		return "", fmt.Errorf("%w: %w", domain.ErrTransferFailed, err)
	}

	return "", nil
}

func (l *ledger) release(ctx context.Context, hold *store.Hold, cause error) {
	if err := l.store.ReleaseTicket(context.WithoutCancel(ctx), hold.ID); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to release ticket hold: %w", err),
			zap.String("hold_id", hold.ID))
		return
	}

	logger.WarnCtx(ctx, "Ticket hold released",
		zap.String("hold_id", hold.ID),
		zap.Error(cause))
}

// refund returns a pulled token price. A refund that can not be settled now is
// recorded for reconciliation.
func (l *ledger) refund(ctx context.Context, eventID uint64, participant domain.Account, amount *big.Int, currency domain.Currency) {
	ctx = context.WithoutCancel(ctx)

	err := l.send(ctx, participant, amount, currency)
	if err == nil {
		logger.WarnCtx(ctx, "Token payment refunded",
			zap.String("amount", amount.String()),
			zap.String("token", currency.Token.Hex()))
		return
	}

	txHash := ""
	if pending, ok := payment.AsPending(err); ok {
		txHash = pending.TxHash
	}
	logger.ErrorCtx(ctx, fmt.Errorf("failed to refund token payment: %w", err),
		zap.String("amount", amount.String()),
		zap.String("token", currency.Token.Hex()))
	l.recordPending(ctx, store.TransferRefund, eventID, participant, amount, currency, txHash)
}

// send moves amount out of custody in the given currency
func (l *ledger) send(ctx context.Context, recipient domain.Account, amount *big.Int, currency domain.Currency) error {
	if currency.IsNative() {
		return l.native.Transfer(ctx, recipient, amount)
	}

	token, err := l.tokens.Token(currency.Token)
	if err != nil {
		return err
	}
	return token.Transfer(ctx, recipient, amount)
}
