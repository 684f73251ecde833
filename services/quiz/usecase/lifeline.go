package usecase

import (
	"context"

	"github.com/piresc/quizarena/internal/pkg/apperr"
	"github.com/piresc/quizarena/internal/pkg/constants"
	"github.com/piresc/quizarena/internal/pkg/models"
)

// UseLifeline charges the quiz's lifeline cost and counts the use
func (u *QuizUC) UseLifeline(ctx context.Context, sessionID, userID string) (*models.LifelineResult, error) {
	if !isID(sessionID) {
		return nil, apperr.New(apperr.NotFound, "Session not found")
	}

	var result *models.LifelineResult
	err := u.locks.WithLock(ctx, "session:"+sessionID, func() error {
		return u.tx.WithinTx(ctx, func(ctx context.Context) error {
			session, err := u.quizRepo.LockSession(ctx, sessionID)
			if err != nil {
				return err
			}
			if session.UserID != userID {
				return apperr.New(apperr.Forbidden, "You cannot use a lifeline on this session")
			}
			if session.LifelinesUsed >= constants.MaxLifelinesPerQuiz {
				return apperr.LimitExceededError("Maximum lifelines consumed", constants.MaxLifelinesPerQuiz, session.LifelinesUsed)
			}
			if !session.Status.Playable() {
				return apperr.New(apperr.InvalidState, "Quiz session is not active")
			}

			quiz, err := u.quizRepo.GetQuizByID(ctx, session.QuizID)
			if err != nil {
				return err
			}
			if !quiz.AllowLifelines {
				return apperr.New(apperr.InvalidState, "Lifelines are disabled for this quiz")
			}

			cost := constants.LifelineCost
			if quiz.LifelineCost != nil && *quiz.LifelineCost > 0 {
				cost = *quiz.LifelineCost
			}

			if _, err := u.walletUC.Deduct(ctx, models.AdjustRequest{
				UserID:      userID,
				Amount:      cost,
				Type:        models.TransactionLifeline,
				ReferenceID: session.ID,
			}); err != nil {
				return err
			}

			session.LifelinesUsed++
			session.UpdatedAt = u.now()
			if err := u.quizRepo.UpdateSession(ctx, session); err != nil {
				return err
			}

			result = &models.LifelineResult{LifelinesUsed: session.LifelinesUsed, Cost: cost}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
