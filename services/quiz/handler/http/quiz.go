package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/piresc/quizarena/internal/pkg/constants"
	"github.com/piresc/quizarena/internal/pkg/middleware"
	"github.com/piresc/quizarena/internal/pkg/models"
	"github.com/piresc/quizarena/internal/utils"
	"github.com/piresc/quizarena/services/quiz"
)

// QuizHandler handles HTTP requests for quizzes and sessions
type QuizHandler struct {
	quizUC quiz.QuizUC
}

// NewQuizHandler creates a new quiz handler
func NewQuizHandler(quizUC quiz.QuizUC) *QuizHandler {
	return &QuizHandler{quizUC: quizUC}
}

// RegisterRoutes mounts the player routes. The lobby reads are public; users must already be authenticated.
func (h *QuizHandler) RegisterRoutes(quizzes, users *echo.Group, jwtAuth echo.MiddlewareFunc) {
	quizzes.GET("", h.ListQuizzes)
	quizzes.POST("/join", h.JoinQuiz, jwtAuth)
	quizzes.POST("/answer", h.SubmitAnswer, jwtAuth)
	quizzes.POST("/lifeline", h.UseLifeline, jwtAuth)
	quizzes.GET("/:quizId", h.GetLobby)
	quizzes.GET("/:quizId/leaderboard", h.GetLeaderboard)

	users.GET("/free-entries", h.GetFreeEntries)
}

// ListQuizzes returns the lobby list
func (h *QuizHandler) ListQuizzes(c echo.Context) error {
	quizzes, err := h.quizUC.ListLobbyQuizzes(c.Request().Context())
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", map[string]interface{}{"quizzes": quizzes})
}

// GetLobby returns one quiz's public detail
func (h *QuizHandler) GetLobby(c echo.Context) error {
	lobby, err := h.quizUC.GetLobby(c.Request().Context(), c.Param("quizId"))
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", map[string]interface{}{"lobby": lobby})
}

// GetLeaderboard returns the top scores of a quiz
func (h *QuizHandler) GetLeaderboard(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return utils.BadRequestResponse(c, "limit must be a positive integer")
		}
		limit = n
	}

	entries, err := h.quizUC.Leaderboard(c.Request().Context(), c.Param("quizId"), limit)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", map[string]interface{}{"leaderboard": entries})
}

// JoinQuiz enters the caller into a quiz
func (h *QuizHandler) JoinQuiz(c echo.Context) error {
	userID := middleware.UserID(c)
	if userID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.JoinRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if strings.TrimSpace(req.QuizID) == "" {
		return utils.BadRequestResponse(c, "quizId is required")
	}

	result, err := h.quizUC.Join(c.Request().Context(), req.QuizID, userID)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Joined quiz", result)
}

// SubmitAnswer records the caller's answer to the current question
func (h *QuizHandler) SubmitAnswer(c echo.Context) error {
	userID := middleware.UserID(c)
	if userID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.SubmitAnswerRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if msg := ValidateAnswer(req); msg != "" {
		return utils.BadRequestResponse(c, msg)
	}

	result, err := h.quizUC.SubmitAnswer(c.Request().Context(), req, userID)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Answer recorded", result)
}

// UseLifeline spends one lifeline in the caller's session
func (h *QuizHandler) UseLifeline(c echo.Context) error {
	userID := middleware.UserID(c)
	if userID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.LifelineRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if strings.TrimSpace(req.SessionID) == "" {
		return utils.BadRequestResponse(c, "sessionId is required")
	}

	result, err := h.quizUC.UseLifeline(c.Request().Context(), req.SessionID, userID)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Lifeline used", result)
}

// GetFreeEntries returns today's free-entry usage of the caller
func (h *QuizHandler) GetFreeEntries(c echo.Context) error {
	userID := middleware.UserID(c)
	if userID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	usage, err := h.quizUC.CountFreeEntriesForToday(c.Request().Context(), userID)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", usage)
}

// ValidateAnswer returns the first problem with req, or "" when it is well formed.
// The websocket gateway applies the same checks.
func ValidateAnswer(req models.SubmitAnswerRequest) string {
	switch {
	case strings.TrimSpace(req.SessionID) == "":
		return "sessionId is required"
	case strings.TrimSpace(req.QuestionID) == "":
		return "questionId is required"
	case strings.TrimSpace(req.SelectedChoiceID) == "":
		return "selectedChoiceId is required"
	case req.TimeTakenMs < 0 || req.TimeTakenMs > constants.MaxTimeTakenMs:
		return "timeTakenMs must be between 0 and " + strconv.Itoa(constants.MaxTimeTakenMs)
	}
	return ""
}
