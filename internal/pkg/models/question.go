package models

import (
	"database/sql/driver"
	"time"

	"github.com/lib/pq"
)

// Difficulty of a question
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Choice is one answer option
type Choice struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	IsCorrect bool   `json:"isCorrect"`
}

// Choices is stored as JSONB
type Choices []Choice

// Scan implements sql.Scanner
func (c *Choices) Scan(src interface{}) error {
	return scanJSON(src, c)
}

// Value implements driver.Valuer
func (c Choices) Value() (driver.Value, error) {
	if c == nil {
		return "[]", nil
	}
	return valueJSON([]Choice(c))
}

// Find returns the choice with id
func (c Choices) Find(id string) (Choice, bool) {
	for _, choice := range c {
		if choice.ID == id {
			return choice, true
		}
	}
	return Choice{}, false
}

// Question is a multiple-choice prompt owned by an admin
type Question struct {
	ID               string         `json:"id" db:"id"`
	Prompt           string         `json:"prompt" db:"prompt"`
	Category         string         `json:"category" db:"category"`
	Difficulty       Difficulty     `json:"difficulty" db:"difficulty"`
	TimeLimitSeconds int            `json:"timeLimitSeconds" db:"time_limit_seconds"`
	Choices          Choices        `json:"choices" db:"choices"`
	Explanation      string         `json:"explanation,omitempty" db:"explanation"`
	Tags             pq.StringArray `json:"tags" db:"tags"`
	IsActive         bool           `json:"isActive" db:"is_active"`
	CreatedBy        string         `json:"createdBy" db:"created_by"`
	CreatedAt        time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt        time.Time      `json:"updatedAt" db:"updated_at"`
}

// ClientChoice is a choice with its correctness flag stripped
type ClientChoice struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// ClientQuestion is the player-facing view of a question
type ClientQuestion struct {
	ID               string         `json:"id"`
	Prompt           string         `json:"prompt"`
	Category         string         `json:"category"`
	Difficulty       Difficulty     `json:"difficulty"`
	TimeLimitSeconds int            `json:"timeLimitSeconds"`
	Choices          []ClientChoice `json:"choices"`
}

// ToClient strips the answer key
func (q *Question) ToClient() *ClientQuestion {
	choices := make([]ClientChoice, 0, len(q.Choices))
	for _, c := range q.Choices {
		choices = append(choices, ClientChoice{ID: c.ID, Text: c.Text})
	}
	return &ClientQuestion{
		ID:               q.ID,
		Prompt:           q.Prompt,
		Category:         q.Category,
		Difficulty:       q.Difficulty,
		TimeLimitSeconds: q.TimeLimitSeconds,
		Choices:          choices,
	}
}

// CreateQuestionRequest is the admin payload for a new question
type CreateQuestionRequest struct {
	Prompt           string     `json:"prompt"`
	Category         string     `json:"category"`
	Difficulty       Difficulty `json:"difficulty"`
	TimeLimitSeconds int        `json:"timeLimitSeconds"`
	Choices          []Choice   `json:"choices"`
	Explanation      string     `json:"explanation"`
	Tags             []string   `json:"tags"`
}
