package gateway

import (
	"context"
	"fmt"

	"github.com/piresc/quizarena/internal/pkg/constants"
	"github.com/piresc/quizarena/internal/pkg/logger"
	"github.com/piresc/quizarena/internal/pkg/models"
)

// Publisher is satisfied by *nats.Client
type Publisher interface {
	Publish(subject string, message interface{}) error
}

// Notifier is satisfied by *websocket.Manager
type Notifier interface {
	NotifyClient(userID string, event string, data interface{})
}

// NATSGateway publishes ledger events to NATS and pushes the new balance to the owner's socket
type NATSGateway struct {
	publisher Publisher
	notifier  Notifier
}

// NewNATSGateway creates a new NATS gateway. notifier may be nil.
func NewNATSGateway(publisher Publisher, notifier Notifier) *NATSGateway {
	return &NATSGateway{publisher: publisher, notifier: notifier}
}

// PublishTransactionCreated announces an applied ledger entry
func (g *NATSGateway) PublishTransactionCreated(ctx context.Context, event *models.CoinTransactionEvent) error {
	if g.notifier != nil {
		g.notifier.NotifyClient(event.UserID, constants.EventCoinsUpdated, event)
	}

	if err := g.publisher.Publish(constants.SubjectCoinTransactionCreated, event); err != nil {
		return fmt.Errorf("failed to publish coin transaction event: %w", err)
	}

	logger.FromContext(ctx).Debug("Published coin transaction event",
		logger.String("transaction_id", event.TransactionID),
		logger.String("type", string(event.Type)))
	return nil
}
