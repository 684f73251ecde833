package gateway

import (
	"context"
	"errors"
	"testing"

	"github.com/piresc/quizarena/internal/pkg/models"
	natspkg "github.com/piresc/quizarena/internal/pkg/nats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	subjects []string
	messages []interface{}
	err      error
}

func (p *recordingPublisher) Publish(subject string, message interface{}) error {
	if p.err != nil {
		return p.err
	}
	p.subjects = append(p.subjects, subject)
	p.messages = append(p.messages, message)
	return nil
}

type recordingNotifier struct {
	userIDs []string
	events  []string
	data    []interface{}
}

func (n *recordingNotifier) NotifyClient(userID string, event string, data interface{}) {
	n.userIDs = append(n.userIDs, userID)
	n.events = append(n.events, event)
	n.data = append(n.data, data)
}

func TestPublishTransactionCreated(t *testing.T) {
	pub := &recordingPublisher{}
	notifier := &recordingNotifier{}
	gw := NewNATSGateway(pub, notifier)
	event := &models.CoinTransactionEvent{TransactionID: "txn-1", UserID: "user-1", Amount: 25, BalanceAfter: 275, Type: models.TransactionBonus}

	require.NoError(t, gw.PublishTransactionCreated(context.Background(), event))
	assert.Equal(t, []string{"coins.transaction.created"}, pub.subjects)
	assert.Equal(t, event, pub.messages[0])

	assert.Equal(t, []string{"user-1"}, notifier.userIDs)
	assert.Equal(t, []string{"coins:updated"}, notifier.events)
	assert.Equal(t, event, notifier.data[0])
}

func TestPublishTransactionCreated_Error(t *testing.T) {
	gw := NewNATSGateway(&recordingPublisher{err: errors.New("nats: connection closed")}, nil)

	err := gw.PublishTransactionCreated(context.Background(), &models.CoinTransactionEvent{TransactionID: "txn-1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to publish coin transaction event")
}

func TestPublishTransactionCreated_DisabledClient(t *testing.T) {
	client, err := natspkg.NewClient("", "quizarena")
	require.NoError(t, err)

	gw := NewNATSGateway(client, nil)
	assert.NoError(t, gw.PublishTransactionCreated(context.Background(), &models.CoinTransactionEvent{TransactionID: "txn-1"}))
}
