package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/piresc/quizarena/internal/pkg/apperr"
	"github.com/piresc/quizarena/internal/pkg/constants"
	"github.com/piresc/quizarena/internal/pkg/logger"
	"github.com/piresc/quizarena/internal/pkg/models"
	ws "github.com/piresc/quizarena/internal/pkg/websocket"
	"github.com/piresc/quizarena/services/quiz"
	quizhttp "github.com/piresc/quizarena/services/quiz/handler/http"
)

// Handler serves the realtime quiz socket
type Handler struct {
	quizUC  quiz.QuizUC
	manager *ws.Manager
}

// NewHandler creates a new websocket handler
func NewHandler(quizUC quiz.QuizUC, manager *ws.Manager) *Handler {
	return &Handler{quizUC: quizUC, manager: manager}
}

// RegisterRoutes mounts the socket endpoint
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/quiz", h.HandleWebSocket)
}

// HandleWebSocket upgrades the request and serves events until the peer goes away
func (h *Handler) HandleWebSocket(c echo.Context) error {
	ctx := c.Request().Context()
	return h.manager.HandleConnection(c, func(client *ws.Client) error {
		h.serve(ctx, client)
		return nil
	})
}

// serve reads and dispatches one event at a time
func (h *Handler) serve(ctx context.Context, client *ws.Client) {
	for {
		msg, err := client.ReadMessage()
		if err != nil {
			var malformed *ws.MalformedFrameError
			if errors.As(err, &malformed) {
				_ = client.SendError(http.StatusBadRequest, "Malformed message")
				continue
			}
			logger.Debug("Websocket closed", logger.String("user_id", client.UserID), logger.Err(err))
			return
		}

		if err := h.dispatch(ctx, client, msg); err != nil {
			h.sendError(ctx, client, msg.Event, err)
		}
	}
}

func (h *Handler) dispatch(ctx context.Context, client *ws.Client, msg models.WSMessage) error {
	switch msg.Event {
	case constants.EventQuizJoin:
		return h.handleJoin(ctx, client, msg.Data)
	case constants.EventQuizAnswer:
		return h.handleAnswer(ctx, client, msg.Data)
	case constants.EventQuizLifeline:
		return h.handleLifeline(ctx, client, msg.Data)
	default:
		return apperr.Newf(apperr.InvalidArgument, "Unknown event %q", msg.Event)
	}
}

func (h *Handler) handleJoin(ctx context.Context, client *ws.Client, data json.RawMessage) error {
	var req models.WSJoinRequest
	if err := decode(data, &req); err != nil {
		return err
	}
	if strings.TrimSpace(req.QuizID) == "" {
		return apperr.New(apperr.InvalidArgument, "quizId is required")
	}

	result, err := h.quizUC.Join(ctx, req.QuizID, client.UserID)
	if err != nil {
		return err
	}

	h.manager.JoinRoom(client, fmt.Sprintf(constants.QuizRoom, result.Quiz.ID))
	return client.Send(constants.EventQuizJoined, result)
}

func (h *Handler) handleAnswer(ctx context.Context, client *ws.Client, data json.RawMessage) error {
	var req models.SubmitAnswerRequest
	if err := decode(data, &req); err != nil {
		return err
	}
	if msg := quizhttp.ValidateAnswer(req); msg != "" {
		return apperr.New(apperr.InvalidArgument, msg)
	}

	result, err := h.quizUC.SubmitAnswer(ctx, req, client.UserID)
	if err != nil {
		return err
	}
	return client.Send(constants.EventQuizAnswerAck, result)
}

func (h *Handler) handleLifeline(ctx context.Context, client *ws.Client, data json.RawMessage) error {
	var req models.WSLifelineRequest
	if err := decode(data, &req); err != nil {
		return err
	}
	if strings.TrimSpace(req.SessionID) == "" {
		return apperr.New(apperr.InvalidArgument, "sessionId is required")
	}

	result, err := h.quizUC.UseLifeline(ctx, req.SessionID, client.UserID)
	if err != nil {
		return err
	}
	return client.Send(constants.EventQuizLifelineAck, result)
}

func decode(data json.RawMessage, v interface{}) error {
	if len(data) == 0 {
		return apperr.New(apperr.InvalidArgument, "Missing event payload")
	}
	if err := json.Unmarshal(data, v); err != nil {
		return apperr.Wrap(apperr.InvalidArgument, "Invalid event payload", err)
	}
	return nil
}

// sendError reports a failed event on the same socket; the connection stays open
func (h *Handler) sendError(ctx context.Context, client *ws.Client, event string, err error) {
	status, message := apperr.Describe(err)
	if status >= http.StatusInternalServerError {
		logger.ErrorCtx(ctx, "Websocket event failed",
			logger.String("event", event),
			logger.String("user_id", client.UserID),
			logger.Err(err))
	}
	if sendErr := client.SendError(status, message); sendErr != nil {
		logger.Warn("Failed to send websocket error", logger.String("user_id", client.UserID), logger.Err(sendErr))
	}
}
