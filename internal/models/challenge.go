package models

import (
	"encoding/json"
	"time"
)

// Challenge difficulty tiers
const (
	ChallengeEasy   = "easy"
	ChallengeMedium = "medium"
	ChallengeHard   = "hard"
)

// InterviewChallenge is an interview-practice problem. TestCases is an opaque
// structured blob stored as jsonb and round-tripped verbatim.
type InterviewChallenge struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Difficulty  string          `json:"difficulty"`
	Solution    *string         `json:"solution"`
	TestCases   json.RawMessage `json:"testCases"`
	Tags        []string        `json:"tags"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ChallengeAttempt is a user's submission record for a challenge
type ChallengeAttempt struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	ChallengeID string    `json:"challengeId"`
	Code        *string   `json:"code"`
	Language    string    `json:"language"`
	Passed      bool      `json:"passed"`
	Score       int       `json:"score"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ChallengeInput is the validated payload for creating a challenge
type ChallengeInput struct {
	Title       string          `json:"title" binding:"required,max=300"`
	Description string          `json:"description" binding:"required,max=20000"`
	Difficulty  string          `json:"difficulty" binding:"required,oneof=easy medium hard"`
	Solution    *string         `json:"solution" binding:"omitempty,max=50000"`
	TestCases   json.RawMessage `json:"testCases"`
	Tags        []string        `json:"tags" binding:"omitempty,dive,max=50"`
}

// AttemptInput is the validated payload for submitting an attempt.
// The user id is taken from the session, never from the body.
type AttemptInput struct {
	ChallengeID string  `json:"challengeId" binding:"required"`
	Code        *string `json:"code" binding:"omitempty,max=100000"`
	Language    string  `json:"language" binding:"omitempty,max=50"`
	Passed      bool    `json:"passed"`
	Score       int     `json:"score" binding:"min=0,max=100"`
}
