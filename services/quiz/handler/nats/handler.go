package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/piresc/quizarena/internal/pkg/constants"
	"github.com/piresc/quizarena/internal/pkg/logger"
	"github.com/piresc/quizarena/internal/pkg/models"
	"github.com/piresc/quizarena/services/quiz"
)

const handleTimeout = 5 * time.Second

// Subscriber is satisfied by *nats.Client
type Subscriber interface {
	Subscribe(subject string, handler nats.MsgHandler) (*nats.Subscription, error)
}

// Handler consumes quiz events from NATS
type Handler struct {
	quizUC     quiz.QuizUC
	subscriber Subscriber
	subs       []*nats.Subscription
}

// NewHandler creates a new NATS handler
func NewHandler(quizUC quiz.QuizUC, subscriber Subscriber) *Handler {
	return &Handler{quizUC: quizUC, subscriber: subscriber}
}

// InitConsumers subscribes to every subject the quiz service listens on
func (h *Handler) InitConsumers() error {
	sub, err := h.subscriber.Subscribe(constants.SubjectQuizSessionCompleted, func(msg *nats.Msg) {
		if err := h.handleSessionCompleted(msg.Data); err != nil {
			logger.Error("Error handling session completed event",
				logger.String("subject", msg.Subject),
				logger.Err(err))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe to session completed events: %w", err)
	}
	if sub != nil {
		h.subs = append(h.subs, sub)
	}
	return nil
}

// handleSessionCompleted stores the player's best finishing rank
func (h *Handler) handleSessionCompleted(data []byte) error {
	var event models.SessionCompletedEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return fmt.Errorf("failed to unmarshal session completed event: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), handleTimeout)
	defer cancel()

	if err := h.quizUC.RecordBestRank(ctx, &event); err != nil {
		return fmt.Errorf("failed to record best rank for session %s: %w", event.SessionID, err)
	}
	return nil
}

// Close unsubscribes from all NATS subscriptions
func (h *Handler) Close() {
	for _, sub := range h.subs {
		_ = sub.Unsubscribe()
	}
}
