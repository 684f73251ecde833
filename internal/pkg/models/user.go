package models

import (
	"time"
)

// User is a player or admin identified by email or phone
type User struct {
	ID               string     `json:"id" db:"id"`
	Email            *string    `json:"email,omitempty" db:"email"`
	Phone            *string    `json:"phone,omitempty" db:"phone"`
	DisplayName      string     `json:"displayName" db:"display_name"`
	Coins            int64      `json:"coins" db:"coins"`
	ReferralCode     string     `json:"referralCode" db:"referral_code"`
	ReferredBy       *string    `json:"referredBy,omitempty" db:"referred_by"`
	DailyStreak      int        `json:"dailyStreak" db:"daily_streak"`
	LastDailyBonusAt *time.Time `json:"lastDailyBonusAt,omitempty" db:"last_daily_bonus_at"`
	Role             string     `json:"role" db:"role"`
	CreatedAt        time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt        time.Time  `json:"updatedAt" db:"updated_at"`

	UserStats `json:"stats"`
}

// UserStats holds cumulative play statistics
type UserStats struct {
	TotalQuizzes int  `json:"totalQuizzes" db:"total_quizzes"`
	Wins         int  `json:"wins" db:"wins"`
	Streak       int  `json:"streak" db:"streak"`
	BestRank     *int `json:"bestRank,omitempty" db:"best_rank"`
}

// Contact returns the email or phone the user signed in with
func (u *User) Contact() string {
	if u.Email != nil {
		return *u.Email
	}
	if u.Phone != nil {
		return *u.Phone
	}
	return ""
}
