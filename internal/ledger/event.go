package ledger

import (
	"context"

	"go.uber.org/zap"

	"github.com/loketh/ledger/internal/domain"
	"github.com/loketh/ledger/internal/logger"
	"github.com/loketh/ledger/internal/messaging"
	"github.com/loketh/ledger/internal/store"
)

// CreateEvent validates the input in a fixed order so the reported error is deterministic:
// quota, start time, end time, then currency.
func (l *ledger) CreateEvent(ctx context.Context, input CreateEventInput) (*domain.Event, error) {
	if input.Quota < 1 {
		return nil, domain.ErrInvalidQuota
	}
	if input.StartTime <= l.now() {
		return nil, domain.ErrInvalidStartTime
	}
	if input.EndTime <= input.StartTime {
		return nil, domain.ErrInvalidEndTime
	}

	currency, err := l.registry.ResolveCurrency(ctx, input.Currency)
	if err != nil {
		return nil, err
	}

	price := domain.CloneAmount(input.Price)
	if price.Sign() < 0 {
		return nil, domain.ErrInvalidAmount
	}

	event, err := l.store.CreateEvent(ctx, store.CreateEventInput{
		Name:      input.Name,
		Organizer: input.Organizer,
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
		Price:     price,
		Quota:     input.Quota,
		Currency:  currency,
	})
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Event created",
		zap.Uint64("event_id", event.ID),
		zap.String("organizer", event.Organizer.Hex()),
		zap.String("price", event.Price.String()),
		zap.Uint64("quota", event.Quota),
		zap.String("currency", event.Currency.Name))

	messaging.Emit(ctx, l.publisher, domain.NewEventCreated(l.clock.Now(), event.ID, event.Organizer))

	return event, nil
}

func (l *ledger) GetEvent(ctx context.Context, eventID uint64) (*domain.Event, error) {
	return l.store.GetEvent(ctx, eventID)
}

func (l *ledger) TotalEvents(ctx context.Context) (uint64, error) {
	return l.store.TotalEvents(ctx)
}
