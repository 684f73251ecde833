package models

import (
	"time"

	"github.com/lib/pq"
)

// QuizType distinguishes scheduled live games from on-demand ones
type QuizType string

const (
	QuizTypeLive    QuizType = "live"
	QuizTypeInstant QuizType = "instant"
)

// QuizStatus moves forward only: draft, scheduled, live, completed
type QuizStatus string

const (
	QuizStatusDraft     QuizStatus = "draft"
	QuizStatusScheduled QuizStatus = "scheduled"
	QuizStatusLive      QuizStatus = "live"
	QuizStatusCompleted QuizStatus = "completed"
)

var quizStatusOrder = map[QuizStatus]int{
	QuizStatusDraft:     0,
	QuizStatusScheduled: 1,
	QuizStatusLive:      2,
	QuizStatusCompleted: 3,
}

// Valid reports whether s is a known status
func (s QuizStatus) Valid() bool {
	_, ok := quizStatusOrder[s]
	return ok
}

// CanMoveTo reports whether next is strictly ahead of s
func (s QuizStatus) CanMoveTo(next QuizStatus) bool {
	from, ok := quizStatusOrder[s]
	if !ok {
		return false
	}
	to, ok := quizStatusOrder[next]
	return ok && to > from
}

// QuizSettings are per-quiz gameplay knobs
type QuizSettings struct {
	QuestionsPerGame  int    `json:"questionsPerGame" db:"questions_per_game"`
	QuestionTimeLimit int    `json:"questionTimeLimit" db:"question_time_limit"`
	AllowLifelines    bool   `json:"allowLifelines" db:"allow_lifelines"`
	LifelineCost      *int64 `json:"lifelineCost,omitempty" db:"lifeline_cost"`
}

// Quiz is an admin-authored game
type Quiz struct {
	ID            string         `json:"id" db:"id"`
	Title         string         `json:"title" db:"title"`
	Description   string         `json:"description" db:"description"`
	Category      string         `json:"category" db:"category"`
	Type          QuizType       `json:"type" db:"type"`
	Status        QuizStatus     `json:"status" db:"status"`
	StartTime     time.Time      `json:"startTime" db:"start_time"`
	EndTime       *time.Time     `json:"endTime,omitempty" db:"end_time"`
	EntryFeeCoins int64          `json:"entryFeeCoins" db:"entry_fee_coins"`
	RewardCoins   int64          `json:"rewardCoins" db:"reward_coins"`
	QuestionIDs   pq.StringArray `json:"-" db:"question_ids"`
	CreatedBy     string         `json:"createdBy" db:"created_by"`
	CreatedAt     time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time      `json:"updatedAt" db:"updated_at"`

	QuizSettings `json:"settings"`
}

// QuizSummary is a lobby list entry
type QuizSummary struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Category       string     `json:"category"`
	Type           QuizType   `json:"type"`
	Status         QuizStatus `json:"status"`
	StartTime      time.Time  `json:"startTime"`
	EntryFeeCoins  int64      `json:"entryFeeCoins"`
	RewardCoins    int64      `json:"rewardCoins"`
	TotalQuestions int        `json:"totalQuestions"`
}

// QuizLobby is the public detail view of a quiz
type QuizLobby struct {
	ID            string       `json:"id"`
	Title         string       `json:"title"`
	Description   string       `json:"description"`
	Category      string       `json:"category"`
	Type          QuizType     `json:"type"`
	Status        QuizStatus   `json:"status"`
	StartTime     time.Time    `json:"startTime"`
	EndTime       *time.Time   `json:"endTime,omitempty"`
	EntryFeeCoins int64        `json:"entryFeeCoins"`
	RewardCoins   int64        `json:"rewardCoins"`
	Settings      QuizSettings `json:"settings"`
	QuestionCount int          `json:"questionCount"`
}

// Summary projects a quiz into its lobby list entry
func (q *Quiz) Summary() QuizSummary {
	return QuizSummary{
		ID:             q.ID,
		Title:          q.Title,
		Category:       q.Category,
		Type:           q.Type,
		Status:         q.Status,
		StartTime:      q.StartTime,
		EntryFeeCoins:  q.EntryFeeCoins,
		RewardCoins:    q.RewardCoins,
		TotalQuestions: q.QuestionsPerGame,
	}
}

// Lobby projects a quiz into its public detail view
func (q *Quiz) Lobby() *QuizLobby {
	return &QuizLobby{
		ID:            q.ID,
		Title:         q.Title,
		Description:   q.Description,
		Category:      q.Category,
		Type:          q.Type,
		Status:        q.Status,
		StartTime:     q.StartTime,
		EndTime:       q.EndTime,
		EntryFeeCoins: q.EntryFeeCoins,
		RewardCoins:   q.RewardCoins,
		Settings:      q.QuizSettings,
		QuestionCount: len(q.QuestionIDs),
	}
}

// CreateQuizRequest is the admin payload for a new quiz
type CreateQuizRequest struct {
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	Category      string        `json:"category"`
	Type          QuizType      `json:"type"`
	StartTime     *time.Time    `json:"startTime"`
	EndTime       *time.Time    `json:"endTime"`
	EntryFeeCoins int64         `json:"entryFeeCoins"`
	RewardCoins   int64         `json:"rewardCoins"`
	QuestionIDs   []string      `json:"questionIds"`
	Settings      *QuizSettings `json:"settings"`
}

// UpdateQuizStatusRequest moves a quiz along its lifecycle
type UpdateQuizStatusRequest struct {
	Status QuizStatus `json:"status"`
}

// LeaderboardEntry is one ranked completed session
type LeaderboardEntry struct {
	Rank        int    `json:"rank"`
	UserID      string `json:"userId"`
	DisplayName string `json:"displayName"`
	Score       int    `json:"score"`
}
