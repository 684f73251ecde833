package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/piresc/quizarena/internal/pkg/apperr"
	"github.com/piresc/quizarena/internal/pkg/constants"
	"github.com/piresc/quizarena/internal/pkg/logger"
	"github.com/piresc/quizarena/internal/pkg/models"
)

var difficulties = map[models.Difficulty]bool{
	models.DifficultyEasy:   true,
	models.DifficultyMedium: true,
	models.DifficultyHard:   true,
}

// CreateQuestion stores a question with exactly one correct choice
func (u *QuizUC) CreateQuestion(ctx context.Context, adminID string, req models.CreateQuestionRequest) (*models.Question, error) {
	if err := validateQuestion(&req); err != nil {
		return nil, err
	}

	now := u.now()
	question := &models.Question{
		ID:               uuid.New().String(),
		Prompt:           strings.TrimSpace(req.Prompt),
		Category:         strings.TrimSpace(req.Category),
		Difficulty:       req.Difficulty,
		TimeLimitSeconds: req.TimeLimitSeconds,
		Choices:          models.Choices(req.Choices),
		Explanation:      req.Explanation,
		Tags:             pq.StringArray(req.Tags),
		IsActive:         true,
		CreatedBy:        adminID,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if question.Tags == nil {
		question.Tags = pq.StringArray{}
	}

	if err := u.quizRepo.CreateQuestion(ctx, question); err != nil {
		return nil, err
	}
	return question, nil
}

func validateQuestion(req *models.CreateQuestionRequest) error {
	if strings.TrimSpace(req.Prompt) == "" {
		return apperr.New(apperr.InvalidArgument, "Prompt is required")
	}
	if strings.TrimSpace(req.Category) == "" {
		return apperr.New(apperr.InvalidArgument, "Category is required")
	}
	if req.Difficulty == "" {
		req.Difficulty = models.DifficultyMedium
	}
	if !difficulties[req.Difficulty] {
		return apperr.New(apperr.InvalidArgument, "Difficulty must be easy, medium or hard")
	}
	if req.TimeLimitSeconds <= 0 {
		req.TimeLimitSeconds = constants.DefaultTimeLimit
	}
	if len(req.Choices) < 2 {
		return apperr.New(apperr.InvalidArgument, "A question needs at least 2 choices")
	}

	seen := make(map[string]bool, len(req.Choices))
	correct := 0
	for _, choice := range req.Choices {
		if choice.ID == "" || strings.TrimSpace(choice.Text) == "" {
			return apperr.New(apperr.InvalidArgument, "Every choice needs an id and text")
		}
		if seen[choice.ID] {
			return apperr.Newf(apperr.InvalidArgument, "Duplicate choice id %q", choice.ID)
		}
		seen[choice.ID] = true
		if choice.IsCorrect {
			correct++
		}
	}
	if correct != 1 {
		return apperr.New(apperr.InvalidArgument, "Exactly one choice must be correct")
	}
	return nil
}

// CreateQuiz stores a draft quiz over existing questions
func (u *QuizUC) CreateQuiz(ctx context.Context, adminID string, req models.CreateQuizRequest) (*models.Quiz, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, apperr.New(apperr.InvalidArgument, "Title is required")
	}
	if req.Type != models.QuizTypeLive && req.Type != models.QuizTypeInstant {
		return nil, apperr.New(apperr.InvalidArgument, "Type must be live or instant")
	}
	if req.EntryFeeCoins < 0 || req.RewardCoins < 0 {
		return nil, apperr.New(apperr.InvalidArgument, "Coin amounts cannot be negative")
	}
	if req.StartTime != nil && req.EndTime != nil && !req.EndTime.After(*req.StartTime) {
		return nil, apperr.New(apperr.InvalidArgument, "End time must be after start time")
	}

	questionIDs, err := u.checkQuestions(ctx, req.QuestionIDs)
	if err != nil {
		return nil, err
	}

	now := u.now()
	startTime := now
	if req.StartTime != nil {
		startTime = *req.StartTime
	}

	quiz := &models.Quiz{
		ID:            uuid.New().String(),
		Title:         strings.TrimSpace(req.Title),
		Description:   req.Description,
		Category:      req.Category,
		Type:          req.Type,
		Status:        models.QuizStatusDraft,
		StartTime:     startTime,
		EndTime:       req.EndTime,
		EntryFeeCoins: req.EntryFeeCoins,
		RewardCoins:   req.RewardCoins,
		QuestionIDs:   questionIDs,
		CreatedBy:     adminID,
		CreatedAt:     now,
		UpdatedAt:     now,
		QuizSettings:  quizSettings(req.Settings),
	}

	if err := u.quizRepo.CreateQuiz(ctx, quiz); err != nil {
		return nil, err
	}

	logger.Info("Quiz created",
		logger.String("quiz_id", quiz.ID),
		logger.String("admin_id", adminID),
		logger.Int("questions", len(questionIDs)))
	return quiz, nil
}

func quizSettings(in *models.QuizSettings) models.QuizSettings {
	lifelineCost := constants.LifelineCost
	settings := models.QuizSettings{
		QuestionsPerGame:  constants.DefaultQuestions,
		QuestionTimeLimit: constants.DefaultTimeLimit,
		AllowLifelines:    true,
		LifelineCost:      &lifelineCost,
	}
	if in == nil {
		return settings
	}

	if in.QuestionsPerGame > 0 {
		settings.QuestionsPerGame = in.QuestionsPerGame
	}
	if in.QuestionTimeLimit > 0 {
		settings.QuestionTimeLimit = in.QuestionTimeLimit
	}
	settings.AllowLifelines = in.AllowLifelines
	if in.LifelineCost != nil && *in.LifelineCost > 0 {
		settings.LifelineCost = in.LifelineCost
	}
	return settings
}

func (u *QuizUC) checkQuestions(ctx context.Context, ids []string) (pq.StringArray, error) {
	unique := make(pq.StringArray, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, raw := range ids {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			return nil, apperr.Newf(apperr.InvalidArgument, "Unknown question %q", raw)
		}
		id := parsed.String()
		if !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}
	if len(unique) == 0 {
		return unique, nil
	}

	existing, err := u.quizRepo.ExistingQuestionIDs(ctx, unique)
	if err != nil {
		return nil, err
	}
	found := make(map[string]bool, len(existing))
	for _, id := range existing {
		found[id] = true
	}
	for _, id := range unique {
		if !found[id] {
			return nil, apperr.Newf(apperr.InvalidArgument, "Unknown question %q", id)
		}
	}
	return unique, nil
}

// UpdateQuizStatus moves a quiz forward along draft, scheduled, live, completed.
// Going live activates the sessions that joined while it was scheduled.
func (u *QuizUC) UpdateQuizStatus(ctx context.Context, quizID string, status models.QuizStatus) (*models.Quiz, error) {
	if !status.Valid() {
		return nil, apperr.New(apperr.InvalidArgument, "Unknown quiz status")
	}

	quiz, err := u.getQuiz(ctx, quizID)
	if err != nil {
		return nil, err
	}
	if !quiz.Status.CanMoveTo(status) {
		return nil, apperr.Newf(apperr.InvalidState, "Quiz cannot move from %s to %s", quiz.Status, status)
	}

	err = u.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := u.quizRepo.UpdateQuizStatus(ctx, quiz.ID, quiz.Status, status); err != nil {
			return err
		}
		if status != models.QuizStatusLive {
			return nil
		}

		activated, err := u.quizRepo.ActivatePendingSessions(ctx, quiz.ID)
		if err != nil {
			return fmt.Errorf("failed to activate sessions: %w", err)
		}
		logger.Info("Quiz went live",
			logger.String("quiz_id", quiz.ID),
			logger.Int64("activated_sessions", activated))
		return nil
	})
	if err != nil {
		return nil, err
	}

	quiz.Status = status
	quiz.UpdatedAt = u.now()
	return quiz, nil
}
