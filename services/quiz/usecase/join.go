package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/piresc/quizarena/internal/pkg/apperr"
	"github.com/piresc/quizarena/internal/pkg/constants"
	"github.com/piresc/quizarena/internal/pkg/logger"
	"github.com/piresc/quizarena/internal/pkg/models"
)

// Join enters a user into a quiz. Joining again returns the existing session
// without charging.
func (u *QuizUC) Join(ctx context.Context, quizID, userID string) (*models.JoinResult, error) {
	quiz, err := u.getQuiz(ctx, quizID)
	if err != nil {
		return nil, err
	}
	if quiz.Status == models.QuizStatusCompleted {
		return nil, apperr.New(apperr.InvalidState, "Quiz already completed")
	}
	if len(quiz.QuestionIDs) == 0 {
		return nil, apperr.New(apperr.NoQuestions, "Quiz has no questions. Please try later.")
	}

	var (
		session       *models.QuizSession
		usedFreeEntry bool
	)
	err = u.locks.WithLock(ctx, "entry:"+userID, func() error {
		existing, err := u.quizRepo.GetSession(ctx, quiz.ID, userID)
		if err == nil {
			session = existing
			return nil
		}
		if !apperr.Is(err, apperr.NotFound) {
			return err
		}

		session, usedFreeEntry, err = u.startSession(ctx, quiz, userID)
		if apperr.Is(err, apperr.Conflict) {
			// another instance inserted first and its transaction paid
			usedFreeEntry = false
			session, err = u.quizRepo.GetSession(ctx, quiz.ID, userID)
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	next, err := u.loadQuestion(ctx, session)
	if err != nil {
		return nil, err
	}

	freeEntry, err := u.CountFreeEntriesForToday(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &models.JoinResult{
		Quiz:          quiz.Lobby(),
		Session:       session,
		NextQuestion:  next,
		FreeEntry:     *freeEntry,
		UsedFreeEntry: usedFreeEntry,
	}, nil
}

// startSession charges the entry fee unless a free entry is left and creates
// the session, both in one transaction
func (u *QuizUC) startSession(ctx context.Context, quiz *models.Quiz, userID string) (*models.QuizSession, bool, error) {
	var (
		session       *models.QuizSession
		usedFreeEntry bool
	)

	err := u.tx.WithinTx(ctx, func(ctx context.Context) error {
		usage, err := u.CountFreeEntriesForToday(ctx, userID)
		if err != nil {
			return err
		}

		usedFreeEntry = quiz.EntryFeeCoins > 0 && usage.Count < constants.FreeEntriesPerDay
		if quiz.EntryFeeCoins > 0 && !usedFreeEntry {
			if _, err := u.walletUC.Deduct(ctx, models.AdjustRequest{
				UserID:      userID,
				Amount:      quiz.EntryFeeCoins,
				Type:        models.TransactionEntry,
				ReferenceID: quiz.ID,
			}); err != nil {
				return err
			}
		}

		status := models.SessionStatusPending
		if quiz.Status == models.QuizStatusLive {
			status = models.SessionStatusActive
		}

		now := u.now()
		session = &models.QuizSession{
			ID:            uuid.New().String(),
			QuizID:        quiz.ID,
			UserID:        userID,
			Status:        status,
			Answers:       models.Answers{},
			QuestionOrder: u.questionOrder(quiz),
			StartedAt:     &now,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		return u.quizRepo.CreateSession(ctx, session)
	})
	if err != nil {
		return nil, false, err
	}

	logger.Info("Quiz session started",
		logger.String("quiz_id", quiz.ID),
		logger.String("session_id", session.ID),
		logger.Bool("free_entry", usedFreeEntry))
	return session, usedFreeEntry, nil
}

// questionOrder picks a fresh random subset of the quiz's questions
func (u *QuizUC) questionOrder(quiz *models.Quiz) pq.StringArray {
	ids := make([]string, len(quiz.QuestionIDs))
	copy(ids, quiz.QuestionIDs)
	u.shuffle(ids)

	if n := quiz.QuestionsPerGame; n > 0 && n < len(ids) {
		ids = ids[:n]
	}
	return pq.StringArray(ids)
}

// loadQuestion returns the question at the session cursor, or nil past the end
func (u *QuizUC) loadQuestion(ctx context.Context, session *models.QuizSession) (*models.ClientQuestion, error) {
	questionID := session.CurrentQuestionID()
	if questionID == "" {
		return nil, nil
	}

	question, err := u.quizRepo.GetQuestionByID(ctx, questionID)
	if err != nil {
		if apperr.Is(err, apperr.NotFound) {
			logger.Warn("Session points at a missing question",
				logger.String("session_id", session.ID),
				logger.String("question_id", questionID))
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load next question: %w", err)
	}
	return question.ToClient(), nil
}
