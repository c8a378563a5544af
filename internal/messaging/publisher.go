package messaging

import (
	"context"

	"go.uber.org/zap"

	"github.com/loketh/ledger/internal/domain"
	"github.com/loketh/ledger/internal/logger"
)

// Publisher defines the interface for publishing ledger notifications to the event log
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// Publish publishes a notification to the message broker
	Publish(ctx context.Context, notification *domain.Notification) error
	// Close closes the connection
	Close()
}

// Emit publishes a notification of an already committed transition.
// A failed publish is logged and otherwise ignored.
func Emit(ctx context.Context, p Publisher, n *domain.Notification) {
	if p == nil || n == nil {
		return
	}

	if err := p.Publish(ctx, n); err != nil {
		logger.ErrorCtx(ctx, err,
			zap.String("message", "Failed to publish notification"),
			zap.String("notification_id", n.ID),
			zap.String("type", string(n.Type)),
			zap.Uint64("event_id", n.EventID))
	}
}

type logPublisher struct{}

// NewLogPublisher returns a publisher that only writes notifications to the log.
// It is used when no broker is configured.
func NewLogPublisher() Publisher {
	return &logPublisher{}
}

func (p *logPublisher) Publish(ctx context.Context, n *domain.Notification) error {
	logger.InfoCtx(ctx, "Notification",
		zap.String("notification_id", n.ID),
		zap.String("type", string(n.Type)),
		zap.Any("notification", n))
	return nil
}

func (p *logPublisher) Close() {}
