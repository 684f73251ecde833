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

// Broadcaster is satisfied by *websocket.Manager
type Broadcaster interface {
	Broadcast(room string, event string, data interface{})
}

// QuizGateway fans session results out to NATS and to websocket rooms
type QuizGateway struct {
	publisher   Publisher
	broadcaster Broadcaster
}

// NewQuizGateway creates a new quiz gateway
func NewQuizGateway(publisher Publisher, broadcaster Broadcaster) *QuizGateway {
	return &QuizGateway{publisher: publisher, broadcaster: broadcaster}
}

// PublishSessionCompleted announces a finished session
func (g *QuizGateway) PublishSessionCompleted(ctx context.Context, event *models.SessionCompletedEvent) error {
	if err := g.publisher.Publish(constants.SubjectQuizSessionCompleted, event); err != nil {
		return fmt.Errorf("failed to publish session completed event: %w", err)
	}

	logger.FromContext(ctx).Debug("Published session completed event",
		logger.String("session_id", event.SessionID),
		logger.String("quiz_id", event.QuizID))
	return nil
}

// BroadcastLeaderboard pushes the current ranking to everyone in the quiz room
func (g *QuizGateway) BroadcastLeaderboard(quizID string, entries []models.LeaderboardEntry) {
	g.broadcaster.Broadcast(fmt.Sprintf(constants.QuizRoom, quizID), constants.EventQuizLeaderboard, map[string]interface{}{
		"quizId":      quizID,
		"leaderboard": entries,
	})
}
