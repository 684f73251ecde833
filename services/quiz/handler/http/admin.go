package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/quizarena/internal/pkg/middleware"
	"github.com/piresc/quizarena/internal/pkg/models"
	"github.com/piresc/quizarena/internal/utils"
)

// RegisterAdminRoutes mounts question and quiz authoring. admin must already require the admin role.
func (h *QuizHandler) RegisterAdminRoutes(admin *echo.Group) {
	admin.POST("/questions", h.CreateQuestion)
	admin.POST("/quizzes", h.CreateQuiz)
	admin.PATCH("/quizzes/:quizId/status", h.UpdateQuizStatus)
}

// CreateQuestion stores a new question
func (h *QuizHandler) CreateQuestion(c echo.Context) error {
	var req models.CreateQuestionRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	question, err := h.quizUC.CreateQuestion(c.Request().Context(), middleware.UserID(c), req)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Question created", map[string]interface{}{"question": question})
}

// CreateQuiz stores a new draft quiz
func (h *QuizHandler) CreateQuiz(c echo.Context) error {
	var req models.CreateQuizRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	quiz, err := h.quizUC.CreateQuiz(c.Request().Context(), middleware.UserID(c), req)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Quiz created", map[string]interface{}{"quiz": quiz})
}

// UpdateQuizStatus moves a quiz forward in its lifecycle
func (h *QuizHandler) UpdateQuizStatus(c echo.Context) error {
	var req models.UpdateQuizStatusRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if req.Status == "" {
		return utils.BadRequestResponse(c, "status is required")
	}

	quiz, err := h.quizUC.UpdateQuizStatus(c.Request().Context(), c.Param("quizId"), req.Status)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Quiz status updated", map[string]interface{}{"quiz": quiz})
}
