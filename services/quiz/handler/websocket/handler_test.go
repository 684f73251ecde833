package websocket

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/piresc/quizarena/internal/pkg/apperr"
	"github.com/piresc/quizarena/internal/pkg/constants"
	jwtpkg "github.com/piresc/quizarena/internal/pkg/jwt"
	"github.com/piresc/quizarena/internal/pkg/models"
	ws "github.com/piresc/quizarena/internal/pkg/websocket"
	"github.com/piresc/quizarena/services/quiz/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testJWT = models.JWTConfig{Secret: "quiz-socket-secret", Expiration: time.Hour, Issuer: "quizarena-test"}

func setup(t *testing.T) (*mocks.MockQuizUC, *ws.Manager, *websocket.Conn) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockQuizUC(ctrl)
	manager := ws.NewManager(testJWT, "*")

	e := echo.New()
	NewHandler(mockUC, manager).RegisterRoutes(e)
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)

	token, _, err := jwtpkg.GenerateToken("user-1", constants.RolePlayer, testJWT)
	require.NoError(t, err)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/quiz?token=" + token
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return mockUC, manager, conn
}

func send(t *testing.T, conn *websocket.Conn, event string, data interface{}) {
	require.NoError(t, conn.WriteJSON(map[string]interface{}{"event": event, "data": data}))
}

func read(t *testing.T, conn *websocket.Conn) models.WSMessage {
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var msg models.WSMessage
	require.NoError(t, conn.ReadJSON(&msg))
	return msg
}

func readError(t *testing.T, conn *websocket.Conn) models.WSErrorMessage {
	msg := read(t, conn)
	require.Equal(t, constants.EventQuizError, msg.Event)
	var payload models.WSErrorMessage
	require.NoError(t, json.Unmarshal(msg.Data, &payload))
	return payload
}

func TestJoin_JoinsRoomAndAcks(t *testing.T) {
	mockUC, manager, conn := setup(t)

	mockUC.EXPECT().Join(gomock.Any(), "quiz-1", "user-1").Return(&models.JoinResult{
		Quiz:      &models.QuizLobby{ID: "quiz-1"},
		Session:   &models.QuizSession{ID: "session-1", QuizID: "quiz-1", UserID: "user-1"},
		FreeEntry: models.FreeEntryUsage{Count: 1, Remaining: 2},
	}, nil)

	send(t, conn, constants.EventQuizJoin, map[string]string{"quizId": "quiz-1"})
	msg := read(t, conn)
	assert.Equal(t, constants.EventQuizJoined, msg.Event)

	var result models.JoinResult
	require.NoError(t, json.Unmarshal(msg.Data, &result))
	assert.Equal(t, "session-1", result.Session.ID)
	assert.Equal(t, 1, manager.RoomSize("quiz:quiz-1"))

	manager.Broadcast("quiz:quiz-1", constants.EventQuizLeaderboard, map[string]string{"quizId": "quiz-1"})
	assert.Equal(t, constants.EventQuizLeaderboard, read(t, conn).Event)
}

func TestAnswer_AckAndErrorsKeepConnectionOpen(t *testing.T) {
	mockUC, _, conn := setup(t)

	gomock.InOrder(
		mockUC.EXPECT().SubmitAnswer(gomock.Any(), gomock.Any(), "user-1").
			Return(nil, apperr.New(apperr.StaleQuestion, "This question is no longer active")),
		mockUC.EXPECT().SubmitAnswer(gomock.Any(), models.SubmitAnswerRequest{
			SessionID: "session-1", QuestionID: "q2", SelectedChoiceID: "b", TimeTakenMs: 0,
		}, "user-1").Return(&models.SubmitAnswerResult{IsCorrect: true, Score: 20, Status: models.SessionStatusActive}, nil),
	)

	answer := map[string]interface{}{"sessionId": "session-1", "questionId": "q1", "selectedChoiceId": "b", "timeTakenMs": 0}
	send(t, conn, constants.EventQuizAnswer, answer)
	assert.Equal(t, models.WSErrorMessage{StatusCode: http.StatusBadRequest, Message: "This question is no longer active"}, readError(t, conn))

	answer["questionId"] = "q2"
	send(t, conn, constants.EventQuizAnswer, answer)
	msg := read(t, conn)
	assert.Equal(t, constants.EventQuizAnswerAck, msg.Event)
	assert.JSONEq(t, `{"isCorrect":true,"score":20,"status":"active","nextQuestion":null}`, string(msg.Data))
}

func TestAnswer_ValidatedBeforeDispatch(t *testing.T) {
	_, _, conn := setup(t)

	send(t, conn, constants.EventQuizAnswer, map[string]interface{}{"sessionId": "session-1", "questionId": "q1", "selectedChoiceId": "b", "timeTakenMs": 50000})
	payload := readError(t, conn)
	assert.Equal(t, http.StatusBadRequest, payload.StatusCode)
	assert.Contains(t, payload.Message, "timeTakenMs")
}

func TestLifeline(t *testing.T) {
	mockUC, _, conn := setup(t)

	gomock.InOrder(
		mockUC.EXPECT().UseLifeline(gomock.Any(), "session-1", "user-1").Return(&models.LifelineResult{LifelinesUsed: 3, Cost: 30}, nil),
		mockUC.EXPECT().UseLifeline(gomock.Any(), "session-1", "user-1").Return(nil, apperr.LimitExceededError("Maximum lifelines consumed", 3, 3)),
	)

	send(t, conn, constants.EventQuizLifeline, map[string]string{"sessionId": "session-1"})
	msg := read(t, conn)
	assert.Equal(t, constants.EventQuizLifelineAck, msg.Event)
	assert.JSONEq(t, `{"lifelinesUsed":3,"cost":30}`, string(msg.Data))

	send(t, conn, constants.EventQuizLifeline, map[string]string{"sessionId": "session-1"})
	assert.Equal(t, "Maximum lifelines consumed", readError(t, conn).Message)
}

func TestProtocolErrors(t *testing.T) {
	mockUC, _, conn := setup(t)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("not json")))
	assert.Equal(t, models.WSErrorMessage{StatusCode: http.StatusBadRequest, Message: "Malformed message"}, readError(t, conn))

	send(t, conn, "quiz:dance", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, readError(t, conn).StatusCode)

	send(t, conn, constants.EventQuizJoin, nil)
	assert.Equal(t, http.StatusBadRequest, readError(t, conn).StatusCode)

	send(t, conn, constants.EventQuizJoin, map[string]string{"quizId": " "})
	assert.Equal(t, "quizId is required", readError(t, conn).Message)

	mockUC.EXPECT().Join(gomock.Any(), "quiz-1", "user-1").Return(nil, errors.New("pq: deadlock detected"))
	send(t, conn, constants.EventQuizJoin, map[string]string{"quizId": "quiz-1"})
	assert.Equal(t, models.WSErrorMessage{StatusCode: http.StatusInternalServerError, Message: "Internal server error"}, readError(t, conn))
}

func TestHandshake_RequiresToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	e := echo.New()
	NewHandler(mocks.NewMockQuizUC(ctrl), ws.NewManager(testJWT, "*")).RegisterRoutes(e)
	srv := httptest.NewServer(e)
	defer srv.Close()

	_, resp, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/quiz", nil)
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
