package usecase

import (
	"context"
	"math"
	"time"

	"github.com/piresc/quizarena/internal/pkg/apperr"
	"github.com/piresc/quizarena/internal/pkg/constants"
	"github.com/piresc/quizarena/internal/pkg/database"
	"github.com/piresc/quizarena/internal/pkg/logger"
	"github.com/piresc/quizarena/internal/pkg/models"
)

// AnswerScore is the score of a correct answer given after timeTakenMs
func AnswerScore(timeTakenMs int) int {
	bonus := constants.SpeedBonusWindow - timeTakenMs
	if bonus < 0 {
		bonus = 0
	}
	return constants.BaseAnswerScore + int(math.Round(float64(bonus)/1000))
}

// SubmitAnswer records the answer to the question at the session cursor.
// The final answer completes the session and pays the quiz reward once.
func (u *QuizUC) SubmitAnswer(ctx context.Context, req models.SubmitAnswerRequest, userID string) (*models.SubmitAnswerResult, error) {
	if !isID(req.SessionID) {
		return nil, apperr.New(apperr.NotFound, "Quiz session not found")
	}

	var result *models.SubmitAnswerResult
	err := u.locks.WithLock(ctx, "session:"+req.SessionID, func() error {
		return u.tx.WithinTx(ctx, func(ctx context.Context) error {
			session, err := u.quizRepo.LockSession(ctx, req.SessionID)
			if err != nil {
				return err
			}
			if session.UserID != userID {
				return apperr.New(apperr.Forbidden, "You cannot answer on this session")
			}
			if !session.Status.Playable() {
				return apperr.New(apperr.InvalidState, "Quiz session is not active")
			}

			expected := session.CurrentQuestionID()
			if expected == "" || expected != req.QuestionID {
				return apperr.New(apperr.StaleQuestion, "This question is no longer active")
			}

			question, err := u.quizRepo.GetQuestionByID(ctx, req.QuestionID)
			if err != nil {
				return err
			}
			choice, ok := question.Choices.Find(req.SelectedChoiceID)
			if !ok {
				return apperr.New(apperr.InvalidChoice, "Invalid answer choice")
			}

			now := u.now()
			session.Answers = append(session.Answers, models.Answer{
				QuestionID:       req.QuestionID,
				SelectedChoiceID: req.SelectedChoiceID,
				IsCorrect:        choice.IsCorrect,
				TimeTakenMs:      req.TimeTakenMs,
			})
			if choice.IsCorrect {
				session.Score += AnswerScore(req.TimeTakenMs)
			}
			session.CurrentQuestionIndex++
			session.UpdatedAt = now

			if session.CurrentQuestionIndex >= len(session.QuestionOrder) {
				if err := u.complete(ctx, session, now); err != nil {
					return err
				}
			} else {
				session.Status = models.SessionStatusActive
			}

			if err := u.quizRepo.UpdateSession(ctx, session); err != nil {
				return err
			}

			var next *models.ClientQuestion
			if session.Status != models.SessionStatusCompleted {
				if next, err = u.loadQuestion(ctx, session); err != nil {
					return err
				}
			}

			result = &models.SubmitAnswerResult{
				IsCorrect:    choice.IsCorrect,
				Score:        session.Score,
				Status:       session.Status,
				NextQuestion: next,
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// complete finishes a session inside the answer transaction. Side effects
// outside the database wait for the commit.
func (u *QuizUC) complete(ctx context.Context, session *models.QuizSession, now time.Time) error {
	session.Status = models.SessionStatusCompleted
	session.CompletedAt = &now

	quiz, err := u.quizRepo.GetQuizByID(ctx, session.QuizID)
	if err != nil {
		return err
	}

	if quiz.RewardCoins > 0 {
		if _, err := u.walletUC.Award(ctx, models.AdjustRequest{
			UserID:      session.UserID,
			Amount:      quiz.RewardCoins,
			Type:        models.TransactionReward,
			ReferenceID: quiz.ID,
		}); err != nil {
			return err
		}
		session.CoinsEarned = quiz.RewardCoins
	}

	if err := u.quizRepo.IncrementTotalQuizzes(ctx, session.UserID); err != nil {
		return err
	}

	event := &models.SessionCompletedEvent{
		SessionID:   session.ID,
		QuizID:      session.QuizID,
		UserID:      session.UserID,
		Score:       session.Score,
		CoinsEarned: session.CoinsEarned,
		CompletedAt: now,
	}
	database.AfterCommit(ctx, func(ctx context.Context) { u.announceCompletion(ctx, event) })
	return nil
}

// announceCompletion ranks the session and tells listeners. Failures are
// logged only: the session is already committed.
func (u *QuizUC) announceCompletion(ctx context.Context, event *models.SessionCompletedEvent) {
	log := logger.FromContext(ctx)

	name, err := u.quizRepo.GetDisplayName(ctx, event.UserID)
	if err != nil {
		log.Warn("Failed to load display name for leaderboard", logger.String("user_id", event.UserID), logger.Err(err))
	}

	if err := u.leaderboardRepo.RecordScore(ctx, event.QuizID, event.UserID, name, event.Score); err != nil {
		log.Warn("Failed to record leaderboard score", logger.String("session_id", event.SessionID), logger.Err(err))
	} else if top, err := u.leaderboardRepo.Top(ctx, event.QuizID, constants.LeaderboardLimit); err != nil {
		log.Warn("Failed to read leaderboard", logger.String("quiz_id", event.QuizID), logger.Err(err))
	} else {
		u.quizGW.BroadcastLeaderboard(event.QuizID, top)
	}

	if err := u.quizGW.PublishSessionCompleted(ctx, event); err != nil {
		log.Warn("Failed to publish session completed event", logger.String("session_id", event.SessionID), logger.Err(err))
	}
}
