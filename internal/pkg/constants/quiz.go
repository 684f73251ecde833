package constants

import "time"

// Coin economy
const (
	DefaultCoinBalance int64 = 250
	DailyLoginBonus    int64 = 25
	ReferrerReward     int64 = 100
	RefereeReward      int64 = 50
	LifelineCost       int64 = 30
)

// Quiz session limits
const (
	MaxLifelinesPerQuiz = 3
	FreeEntriesPerDay   = 3
	LobbyListLimit      = 20
	LobbyLookback       = time.Hour

	BaseAnswerScore   = 10
	SpeedBonusWindow  = 10000 // milliseconds
	MaxTimeTakenMs    = 12000
	DefaultQuestions  = 10
	DefaultTimeLimit  = 10
	LeaderboardLimit  = 10
	MaxLeaderboardTop = 100
)

// Wallet history paging
const (
	DefaultTransactionLimit = 20
	MaxTransactionLimit     = 100
)

// OTP issuance
const (
	OTPLength      = 6
	OTPExpiry      = 5 * time.Minute
	OTPMaxAttempts = 5
	OTPDevCode     = "000000"
)

// Referral codes
const (
	ReferralCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	ReferralCodeLength   = 6
	ReferralCodeAttempts = 5
)

// Roles
const (
	RolePlayer = "player"
	RoleAdmin  = "admin"
)
