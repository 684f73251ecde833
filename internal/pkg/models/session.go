package models

import (
	"database/sql/driver"
	"time"

	"github.com/lib/pq"
)

// SessionStatus of a player's run through a quiz
type SessionStatus string

const (
	SessionStatusPending   SessionStatus = "pending"
	SessionStatusActive    SessionStatus = "active"
	SessionStatusCompleted SessionStatus = "completed"
	// SessionStatusEliminated is terminal and currently unreachable
	SessionStatusEliminated SessionStatus = "eliminated"
)

// Playable reports whether answers and lifelines are accepted
func (s SessionStatus) Playable() bool {
	return s == SessionStatusPending || s == SessionStatusActive
}

// Answer is one submitted answer
type Answer struct {
	QuestionID       string `json:"questionId"`
	SelectedChoiceID string `json:"selectedChoiceId"`
	IsCorrect        bool   `json:"isCorrect"`
	TimeTakenMs      int    `json:"timeTakenMs"`
}

// Answers is stored as JSONB
type Answers []Answer

// Scan implements sql.Scanner
func (a *Answers) Scan(src interface{}) error {
	return scanJSON(src, a)
}

// Value implements driver.Valuer
func (a Answers) Value() (driver.Value, error) {
	if a == nil {
		return "[]", nil
	}
	return valueJSON([]Answer(a))
}

// QuizSession is the unique (quiz, user) run
type QuizSession struct {
	ID                   string         `json:"id" db:"id"`
	QuizID               string         `json:"quizId" db:"quiz_id"`
	UserID               string         `json:"userId" db:"user_id"`
	Status               SessionStatus  `json:"status" db:"status"`
	Score                int            `json:"score" db:"score"`
	CoinsEarned          int64          `json:"coinsEarned" db:"coins_earned"`
	LifelinesUsed        int            `json:"lifelinesUsed" db:"lifelines_used"`
	Answers              Answers        `json:"answers" db:"answers"`
	QuestionOrder        pq.StringArray `json:"questionOrder" db:"question_order"`
	CurrentQuestionIndex int            `json:"currentQuestionIndex" db:"current_question_index"`
	StartedAt            *time.Time     `json:"startedAt,omitempty" db:"started_at"`
	CompletedAt          *time.Time     `json:"completedAt,omitempty" db:"completed_at"`
	CreatedAt            time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt            time.Time      `json:"updatedAt" db:"updated_at"`
}

// CurrentQuestionID returns the question at the cursor, or "" past the end
func (s *QuizSession) CurrentQuestionID() string {
	if s.CurrentQuestionIndex < 0 || s.CurrentQuestionIndex >= len(s.QuestionOrder) {
		return ""
	}
	return s.QuestionOrder[s.CurrentQuestionIndex]
}

// JoinRequest asks to join a quiz
type JoinRequest struct {
	QuizID string `json:"quizId"`
}

// FreeEntryUsage counts today's sessions against the daily allowance
type FreeEntryUsage struct {
	Count     int `json:"count"`
	Remaining int `json:"remaining"`
}

// JoinResult is returned by a join
type JoinResult struct {
	Quiz          *QuizLobby      `json:"quiz"`
	Session       *QuizSession    `json:"session"`
	NextQuestion  *ClientQuestion `json:"nextQuestion"`
	FreeEntry     FreeEntryUsage  `json:"freeEntry"`
	UsedFreeEntry bool            `json:"usedFreeEntry"`
}

// SubmitAnswerRequest submits the answer for the question at the cursor
type SubmitAnswerRequest struct {
	SessionID        string `json:"sessionId"`
	QuestionID       string `json:"questionId"`
	SelectedChoiceID string `json:"selectedChoiceId"`
	TimeTakenMs      int    `json:"timeTakenMs"`
}

// SubmitAnswerResult is returned after an answer
type SubmitAnswerResult struct {
	IsCorrect    bool            `json:"isCorrect"`
	Score        int             `json:"score"`
	Status       SessionStatus   `json:"status"`
	NextQuestion *ClientQuestion `json:"nextQuestion"`
}

// LifelineRequest spends a lifeline in a session
type LifelineRequest struct {
	SessionID string `json:"sessionId"`
}

// LifelineResult is returned after a lifeline is spent
type LifelineResult struct {
	LifelinesUsed int   `json:"lifelinesUsed"`
	Cost          int64 `json:"cost"`
}

// SessionCompletedEvent is published once per completed session
type SessionCompletedEvent struct {
	SessionID   string    `json:"sessionId"`
	QuizID      string    `json:"quizId"`
	UserID      string    `json:"userId"`
	Score       int       `json:"score"`
	CoinsEarned int64     `json:"coinsEarned"`
	CompletedAt time.Time `json:"completedAt"`
}
